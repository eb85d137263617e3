package models

import "time"

type OrderItemOption struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderItemID uint      `gorm:"not null;index" json:"order_item_id"`
	OptionID    uint      `gorm:"not null" json:"option_id"`
	Option      Option    `gorm:"foreignKey:OptionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	OptionPrice int       `gorm:"not null" json:"option_price"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
