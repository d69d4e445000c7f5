package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	MethodName string `gorm:"size:100;not null" json:"method_name"`
	CardLast4  string `gorm:"size:4;not null" json:"card_last4"`

	UserID uint `json:"user_id"`
	User   User `json:"-"`
}
