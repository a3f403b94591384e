package templates

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
)

const razorpayCheckoutScriptURL = "https://checkout.razorpay.com/v1/checkout.js"

// PaymentSummaryPage renders the order summary with the pay action.
func PaymentSummaryPage(order restapi.Order, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card payment">`)
		writeOrderList(h, []restapi.Order{order}, false, loc)
		if CanPay(order) {
			writeActionForm(h, routepath.PaymentStart(order.ID.String()), T(loc, "payment.pay", Money(order.TotalAmount)), "btn btn-primary", "")
		} else {
			h.element("p", "notice notice-info", T(loc, "payment.not_payable"))
		}
		h.raw(`<a class="btn btn-ghost"`)
		h.href(routepath.CustomerOrders)
		h.raw(`>`)
		h.text(T(loc, "payment.back_to_orders"))
		h.raw(`</a></section>`)
	})
}

// CheckoutView carries the gateway widget bootstrap.
type CheckoutView struct {
	OrderID         string
	KeyID           string
	RazorpayOrderID string
	AmountPaise     int64
	Currency        string
	CustomerName    string
	CustomerEmail   string
}

// CheckoutPage renders the gateway checkout bootstrap. The widget posts its
// result to the verify form.
func CheckoutPage(view CheckoutView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="card payment" id="razorpay-checkout"`)
		h.attr("data-key", view.KeyID)
		h.attr("data-order-id", view.RazorpayOrderID)
		h.attr("data-amount", i64toa(view.AmountPaise))
		h.attr("data-currency", view.Currency)
		h.attr("data-name", AppName)
		h.attr("data-description", T(loc, "orders.number", view.OrderID))
		h.attr("data-prefill-name", view.CustomerName)
		h.attr("data-prefill-email", view.CustomerEmail)
		h.attr("data-cancel-url", routepath.Payment(view.OrderID))
		h.raw(`>`)
		h.element("p", "lead", T(loc, "payment.opening_checkout"))
		h.raw(`<form method="post" id="razorpay-verify"`)
		h.attr("action", routepath.PaymentVerify(view.OrderID))
		h.raw(`>`)
		writeHidden(h, "razorpayOrderId", view.RazorpayOrderID)
		writeHidden(h, "razorpayPaymentId", "")
		writeHidden(h, "razorpaySignature", "")
		h.raw(`</form><button type="button" class="btn btn-primary" id="razorpay-open">`)
		h.text(T(loc, "payment.reopen"))
		h.raw(`</button></section><script`)
		h.attr("src", razorpayCheckoutScriptURL)
		h.raw(`></script><script`)
		h.attr("src", routepath.StaticPrefix+"payment.js")
		h.raw(`></script>`)
	})
}

// PaymentSuccessView is the post-payment page state.
type PaymentSuccessView struct {
	Order     restapi.Order
	PaymentID string
}

// PaymentSuccessPage renders the confirmation with receipt and invoice actions.
func PaymentSuccessPage(view PaymentSuccessView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		orderID := view.Order.ID.String()
		h.raw(`<section class="card payment-success">`)
		h.element("h2", "", T(loc, "payment.success.heading"))
		if view.PaymentID != "" {
			h.element("p", "muted", T(loc, "payment.success.payment_id", view.PaymentID))
		}
		writeOrderList(h, []restapi.Order{view.Order}, false, loc)
		h.raw(`<div class="actions">`)
		for _, doc := range []string{routepath.PaymentDocumentReceipt, routepath.PaymentDocumentInvoice} {
			h.raw(`<a class="btn"`)
			h.href(routepath.PaymentDocument(orderID, doc))
			h.raw(`>`)
			h.text(T(loc, "payment.download."+doc))
			h.raw(`</a>`)
			writeActionForm(h, routepath.PaymentDocumentEmail(orderID, doc), T(loc, "payment.email."+doc), "btn btn-ghost", "")
		}
		h.raw(`</div><a class="btn btn-primary"`)
		h.href(routepath.CustomerOrders)
		h.raw(`>`)
		h.text(T(loc, "payment.back_to_orders"))
		h.raw(`</a></section>`)
	})
}
