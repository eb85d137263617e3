package models

import "time"

type Option struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Price       int        `gorm:"not null" json:"price"`
	OptionType  OptionType `gorm:"type:varchar(20);not null;index" json:"option_type"`
	IsAvailable bool       `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
}
