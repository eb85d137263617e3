package models

import "time"

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       int       `gorm:"not null" json:"price"`
	Description *string   `gorm:"type:text" json:"description"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// MenuItemDetail is a menu item together with the category it belongs to.
type MenuItemDetail struct {
	MenuItem
	CategoryName        string `json:"category_name"`
	CategoryDisplayName string `json:"-"`
}

// OptionType returns the option set selectable for this item, if any.
func (d *MenuItemDetail) OptionType() (OptionType, bool) {
	return OptionTypeForCategory(d.CategoryDisplayName)
}
