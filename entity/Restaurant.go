package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Country string `gorm:"not null" json:"country"`

	MenuItems []MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"menu"`
	Orders    []Order    `json:"-"`
}
