package models

import "time"

type OrderItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OrderID    uint     `gorm:"not null;index" json:"order_id"`
	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity   int      `gorm:"not null;default:1" json:"quantity"`
	// ItemPrice is the menu price at the time the order was placed.
	ItemPrice  int               `gorm:"not null" json:"item_price"`
	TotalPrice int               `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time         `gorm:"not null" json:"created_at"`
	Options    []OrderItemOption `gorm:"foreignKey:OrderItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"options"`
}
