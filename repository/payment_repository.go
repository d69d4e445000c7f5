package repository

import (
	"github.com/ChPurna2003/CravingConnect/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Get(id uint) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	if err := r.DB.First(&pm, id).Error; err != nil {
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentRepository) ListByUser(userID uint) ([]entity.PaymentMethod, error) {
	var rows []entity.PaymentMethod
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *PaymentRepository) ListAll() ([]entity.PaymentMethod, error) {
	var rows []entity.PaymentMethod
	err := r.DB.Find(&rows).Error
	return rows, err
}

func (r *PaymentRepository) Create(pm *entity.PaymentMethod) error {
	return r.DB.Create(pm).Error
}

func (r *PaymentRepository) Save(pm *entity.PaymentMethod) error {
	return r.DB.Save(pm).Error
}
