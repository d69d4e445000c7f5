package repository

import (
	"github.com/ChPurna2003/CravingConnect/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// List returns restaurants with their menu preloaded, optionally filtered by
// country. Scoping decisions belong to the service layer, not here.
func (r *RestaurantRepository) List(country string) ([]entity.Restaurant, error) {
	q := r.DB.Preload("MenuItems")
	if country != "" {
		q = q.Where("country = ?", country)
	}
	var rows []entity.Restaurant
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RestaurantRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
