package restapi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Order status values owned by the backend.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderServed    = "SERVED"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// Table status values.
const (
	TableAvailable   = "AVAILABLE"
	TableOccupied    = "OCCUPIED"
	TableReserved    = "RESERVED"
	TableMaintenance = "MAINTENANCE"
)

// AuthResponse is the sign-in and refresh payload.
type AuthResponse struct {
	Token        string `json:"token"`
	Type         string `json:"type,omitempty"`
	ID           ID     `json:"id"`
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

// User is a customer or staff account.
type User struct {
	ID        ID        `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
}

// MenuItem is one dish on the menu.
type MenuItem struct {
	ID              ID              `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	PreparationTime int             `json:"preparationTime,omitempty"`
	Available       *bool           `json:"available,omitempty"`
}

// IsAvailable treats a missing availability flag as available.
func (m MenuItem) IsAvailable() bool {
	return m.Available == nil || *m.Available
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ID                  ID              `json:"id"`
	MenuItemID          ID              `json:"menuItemId"`
	MenuItemName        string          `json:"menuItemName"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

// LineTotal returns unit price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderTable is the table summary embedded in orders.
type OrderTable struct {
	ID          ID     `json:"id"`
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID                  ID              `json:"id"`
	Status              string          `json:"status"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	CreatedAt           Timestamp       `json:"createdAt"`
	BookingID           ID              `json:"bookingId,omitempty"`
	OrderItems          []OrderItem     `json:"orderItems"`
	User                *User           `json:"user,omitempty"`
	Table               *OrderTable     `json:"table,omitempty"`
	PaymentStatus       string          `json:"paymentStatus,omitempty"`
}

// NormalizedStatus returns the upper-cased status.
func (o Order) NormalizedStatus() string {
	return strings.ToUpper(strings.TrimSpace(o.Status))
}

// ItemCount sums the quantities of every order line.
func (o Order) ItemCount() int {
	total := 0
	for _, item := range o.OrderItems {
		total += item.Quantity
	}
	return total
}

// IsPaid reports whether the backend marked the order paid.
func (o Order) IsPaid() bool {
	switch strings.ToUpper(strings.TrimSpace(o.PaymentStatus)) {
	case "PAID", "SUCCESS", "COMPLETED":
		return true
	default:
		return false
	}
}

// CustomerName returns the ordering user's name when embedded.
func (o Order) CustomerName() string {
	if o.User == nil {
		return ""
	}
	return strings.TrimSpace(o.User.Name)
}

// TableNumber returns the embedded table number when present.
func (o Order) TableNumber() string {
	if o.Table == nil {
		return ""
	}
	return strings.TrimSpace(o.Table.TableNumber)
}

// Table is a café table.
type Table struct {
	ID          ID     `json:"id,omitempty"`
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// Booking is a table reservation.
type Booking struct {
	ID              ID              `json:"id"`
	UserID          ID              `json:"userId,omitempty"`
	UserName        string          `json:"userName,omitempty"`
	TableID         ID              `json:"tableId,omitempty"`
	TableNumber     string          `json:"tableNumber,omitempty"`
	TableLocation   string          `json:"tableLocation,omitempty"`
	BookingDate     string          `json:"bookingDate"`
	Slot            string          `json:"slot"`
	Duration        int             `json:"duration,omitempty"`
	NumberOfGuests  int             `json:"numberOfGuests"`
	Status          string          `json:"status"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CreatedAt       Timestamp       `json:"createdAt"`
}

// Feedback is one customer feedback entry.
type Feedback struct {
	ID            ID        `json:"id"`
	CustomerID    ID        `json:"customerId,omitempty"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	OrderID       ID        `json:"orderId,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	CreatedAt     Timestamp `json:"createdAt"`
	AdminNotes    string    `json:"adminNotes,omitempty"`
}

// FeedbackStats is the admin feedback summary.
type FeedbackStats struct {
	TotalFeedback int64            `json:"totalFeedback"`
	AverageRating float64          `json:"averageRating"`
	StatusCount   map[string]int64 `json:"statusCount"`
	CategoryCount map[string]int64 `json:"categoryCount"`
	PendingCount  int64            `json:"pendingCount"`
	ResolvedCount int64            `json:"resolvedCount"`
}

// DashboardStats is the admin analytics snapshot.
type DashboardStats struct {
	Customers       int64 `json:"customers"`
	Staff           int64 `json:"staff"`
	Orders          int64 `json:"orders"`
	PendingOrders   int64 `json:"pendingOrders"`
	ConfirmedOrders int64 `json:"confirmedOrders"`
	PreparingOrders int64 `json:"preparingOrders"`
	ServedOrders    int64 `json:"servedOrders"`
	CompletedOrders int64 `json:"completedOrders"`
	Tables          int64 `json:"tables"`
}

// PaymentResponse is returned by payment creation and verification.
type PaymentResponse struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message,omitempty"`
	RazorpayOrderID string          `json:"razorpayOrderId,omitempty"`
	PaymentID       string          `json:"paymentId,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency,omitempty"`
	Status          string          `json:"status,omitempty"`
	PaymentDate     Timestamp       `json:"paymentDate,omitempty"`
}

// Document is a downloaded binary payload.
type Document struct {
	ContentType string
	Filename    string
	Data        []byte
}
