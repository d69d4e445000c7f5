package entity

import (
	"gorm.io/gorm"
)

// Order status values. placed and cancelled are terminal; cancelling an
// already-cancelled order is a no-op.
const (
	StatusCart      = "cart"
	StatusPlaced    = "placed"
	StatusCancelled = "cancelled"
)

// Order doubles as the cart: it is created with status=cart on the first
// add-to-cart call for a (user, restaurant) pair and transitions to placed
// or cancelled from there.
type Order struct {
	gorm.Model
	Status string  `gorm:"not null;default:cart" json:"status"`
	Total  float64 `json:"total"` // derived; recomputed from items before checkout

	// Country is stamped from the restaurant when the cart is created and is
	// the scoping key from then on, even if the restaurant later moves.
	Country string `json:"country"`

	// Audit stamps (usernames)
	AddedBy     string `json:"added_by"`
	CancelledBy string `json:"cancelled_by"`

	UserID uint `json:"user_id"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"` // preload only when needed

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
