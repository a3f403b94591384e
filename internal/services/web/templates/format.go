package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/louisbranch/javabite/internal/services/web/infra/restapi"
)

const currencySymbol = "₹"

// Localizer resolves catalog messages for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T localizes key. Without a localizer the key itself is formatted, which
// keeps components renderable in tests.
func T(loc Localizer, key string, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf(key, args...)
}

// Money formats an amount in rupees with two decimals.
func Money(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + currencySymbol + amount.Neg().StringFixed(2)
	}
	return currencySymbol + amount.StringFixed(2)
}

// Date formats a backend timestamp as a day, or "-" when missing.
func Date(ts restapi.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("02 Jan 2006")
}

// DateTime formats a backend timestamp with the time of day.
func DateTime(ts restapi.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("02 Jan 2006, 15:04")
}

// Clock formats only the time of day.
func Clock(ts restapi.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("15:04")
}

// Humanize turns an enum value like FOOD_QUALITY into "Food Quality".
func Humanize(value string) string {
	parts := strings.Fields(strings.ReplaceAll(strings.TrimSpace(value), "_", " "))
	for i, part := range parts {
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// StatusTone maps order, booking, table and feedback statuses to a badge tone.
func StatusTone(status string) string {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case restapi.OrderPending, "REVIEWED", restapi.TableReserved:
		return "warning"
	case restapi.OrderConfirmed, restapi.OrderPreparing, restapi.TableOccupied:
		return "info"
	case restapi.OrderReady, restapi.OrderServed, restapi.OrderCompleted, "RESOLVED", "PAID", restapi.TableAvailable:
		return "success"
	case restapi.OrderCancelled, "REJECTED", "FAILED", restapi.TableMaintenance:
		return "danger"
	default:
		return "neutral"
	}
}

func statusBadge(h *htmlWriter, status string) {
	h.element("span", "badge badge-"+StatusTone(status), Humanize(status))
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Today reports whether ts falls on the same local day as now.
func Today(ts restapi.Timestamp, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	y1, m1, d1 := ts.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
