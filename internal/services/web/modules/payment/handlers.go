package payment

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/javabite/internal/services/web/platform/flash"
	"github.com/louisbranch/javabite/internal/services/web/platform/httpx"
	"github.com/louisbranch/javabite/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/javabite/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/javabite/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func orderID(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("orderID"))
}

func (h handlers) writePaymentPage(w http.ResponseWriter, r *http.Request, titleKey string, build func(webtemplates.Localizer) templ.Component) {
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, titleKey)
	h.WritePage(w, r, title, http.StatusOK, &webtemplates.AppMainHeader{Title: title}, webtemplates.AppMainLayoutOptions{MainClass: "payment"}, build(loc))
}

func (h handlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	order, err := h.service.order(ctx, userID, orderID(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePaymentPage(w, r, "payment.title", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.PaymentSummaryPage(order, loc)
	})
}

func (h handlers) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	viewer := h.ResolveRequestViewer(r)
	id := orderID(r)
	view, err := h.service.start(ctx, userID, id, restapi.User{Name: viewer.DisplayName, Email: viewer.Email})
	if err != nil {
		log.Printf("payment start failed order_id=%s request_id=%s err=%v", id, httpx.RequestIDFrom(r), err)
		h.RedirectWithError(w, r, routepath.Payment(id), err)
		return
	}
	h.writePaymentPage(w, r, "payment.title", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.CheckoutPage(view, loc)
	})
}

func (h handlers) handleVerify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.failed_to_parse_payment_form", "failed to parse payment form"))
		return
	}
	ctx, _ := h.RequestContextAndUserID(r)
	id := orderID(r)
	paymentID, err := h.service.verify(ctx, VerifyRequest{
		OrderID:           id,
		RazorpayOrderID:   httpx.FormValue(r, "razorpayOrderId"),
		RazorpayPaymentID: httpx.FormValue(r, "razorpayPaymentId"),
		RazorpaySignature: httpx.FormValue(r, "razorpaySignature"),
	})
	if err != nil {
		log.Printf("payment verification failed order_id=%s request_id=%s err=%v", id, httpx.RequestIDFrom(r), err)
		h.RedirectWithError(w, r, routepath.Payment(id), err)
		return
	}
	log.Printf("payment verified order_id=%s payment_id=%s", id, paymentID)
	h.RedirectWithNotice(w, r, routepath.PaymentSuccess(id, paymentID), flashnotice.NoticeSuccess("payment.notice.verified"))
}

func (h handlers) handleSuccess(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	order, err := h.service.order(ctx, userID, orderID(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := webtemplates.PaymentSuccessView{
		Order:     order,
		PaymentID: strings.TrimSpace(r.URL.Query().Get(routepath.PaymentSuccessPaymentIDKey)),
	}
	h.writePaymentPage(w, r, "payment.success.title", func(loc webtemplates.Localizer) templ.Component {
		return webtemplates.PaymentSuccessPage(view, loc)
	})
}

func (h handlers) handleDocument(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	id := orderID(r)
	doc, err := h.service.document(ctx, userID, id, r.PathValue("document"))
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) || apperrors.IsKind(err, apperrors.KindUnauthorized) {
			h.WriteError(w, r, err)
			return
		}
		h.RedirectWithError(w, r, routepath.PaymentSuccess(id, ""), err)
		return
	}
	if err := httpx.WriteAttachment(w, doc.Filename, doc.ContentType, doc.Data); err != nil {
		log.Printf("payment document write failed order_id=%s err=%v", id, err)
	}
}

func (h handlers) handleEmail(w http.ResponseWriter, r *http.Request) {
	ctx, userID := h.RequestContextAndUserID(r)
	id := orderID(r)
	document := r.PathValue("document")
	if err := h.service.emailDocument(ctx, userID, id, document); err != nil {
		h.RedirectWithError(w, r, routepath.PaymentSuccess(id, ""), err)
		return
	}
	h.RedirectWithNotice(w, r, routepath.PaymentSuccess(id, ""), flashnotice.NoticeSuccess("payment.notice.emailed_"+document))
}
