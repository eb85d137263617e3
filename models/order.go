package models

import "time"

const OrderStatusPending = "pending"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_number"`
	TotalAmount int         `gorm:"not null" json:"total_amount"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderSummary is what a client gets back after placing an order.
type OrderSummary struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"order_number"`
	TotalAmount int       `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
