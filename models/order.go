package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses (kitchen → doorstep flow)
	OrderStatusProcessing     OrderStatus = "Processing"       // Order placed, awaiting kitchen
	OrderStatusConfirmed      OrderStatus = "Confirmed"        // Confirmed by staff
	OrderStatusPreparing      OrderStatus = "Preparing"        // Being cooked
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery" // Left the restaurant
	OrderStatusDelivered      OrderStatus = "Delivered"        // Customer received the food
	OrderStatusCancelled      OrderStatus = "Cancelled"        // Called off before delivery

	// Payment methods
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentCard           PaymentMethod = "Card"
	PaymentUPI            PaymentMethod = "UPI"
	PaymentNetBanking     PaymentMethod = "Net Banking"
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentDebitCard      PaymentMethod = "Debit Card"
)

// OrderStatuses is the canonical set accepted on status updates.
var OrderStatuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ActiveStatuses are the states counted as "in progress" by the dashboard.
var ActiveStatuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
}

var PaymentMethods = []PaymentMethod{
	PaymentCashOnDelivery,
	PaymentCard,
	PaymentUPI,
	PaymentNetBanking,
	PaymentCreditCard,
	PaymentDebitCard,
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (m PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

type Order struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	OrderRef          string        `gorm:"uniqueIndex" json:"orderRef"`
	CustomerName      string        `gorm:"not null" json:"customerName"`
	PhoneNumber       string        `gorm:"type:VARCHAR(10);not null;index" json:"phoneNumber"`
	Address           string        `gorm:"not null" json:"address"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice        float64       `json:"totalPrice"`
	PaymentMethod     PaymentMethod `gorm:"type:VARCHAR(20)" json:"paymentMethod"`
	Status            OrderStatus   `gorm:"type:VARCHAR(20);default:'Processing'" json:"status"`
	PaymentDone       bool          `gorm:"default:false" json:"paymentDone"`
	EstimatedDelivery time.Time     `json:"estimatedDelivery"`
	DeliveredAt       *time.Time    `json:"deliveredAt,omitempty"`
	CreatedAt         time.Time     `gorm:"index" json:"createdAt"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index" json:"-"`
	Title    string  `gorm:"not null" json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
