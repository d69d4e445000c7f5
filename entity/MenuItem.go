package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"` // non-negative

	RestaurantID uint       `json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"` // preload only when needed
}
