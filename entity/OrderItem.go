package entity

import (
	"gorm.io/gorm"
)

// OrderItem is one cart line. Adding the same menu item again appends a new
// row rather than merging quantities.
type OrderItem struct {
	gorm.Model
	Qty int `gorm:"not null;default:1" json:"qty"`

	OrderID uint  `json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"` // preload only when the menu name is needed
}
