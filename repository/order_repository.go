package repository

import (
	"errors"
	"strings"

	"github.com/ChPurna2003/CravingConnect/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindOrCreateOpenCart returns the open cart for (user, restaurant), creating
// it when absent. Creation stamps country from the restaurant and added_by
// from the caller. A concurrent creator loses on uq_orders_open_cart, in
// which case we re-read the winner's row instead of failing the request.
func (r *OrderRepository) FindOrCreateOpenCart(tx *gorm.DB, userID uint, rest *entity.Restaurant, addedBy string) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("user_id = ? AND restaurant_id = ? AND status = ?",
		userID, rest.ID, entity.StatusCart).First(&o).Error
	if err == nil {
		return &o, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	o = entity.Order{
		UserID:       userID,
		RestaurantID: rest.ID,
		Status:       entity.StatusCart,
		Country:      rest.Country,
		AddedBy:      addedBy,
	}
	if cerr := tx.Create(&o).Error; cerr != nil {
		if isUniqueViolation(cerr) {
			var winner entity.Order
			if ferr := tx.Where("user_id = ? AND restaurant_id = ? AND status = ?",
				userID, rest.ID, entity.StatusCart).First(&winner).Error; ferr == nil {
				return &winner, nil
			}
		}
		return nil, cerr
	}
	return &o, nil
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

// RecomputeTotal sums price*qty over the order's current full item set. It
// must run inside the same transaction as the mutation that preceded it so
// the newly added line is visible to the sum.
func (r *OrderRepository) RecomputeTotal(tx *gorm.DB, orderID uint) (float64, error) {
	var total float64
	err := tx.Model(&entity.OrderItem{}).
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id AND menu_items.deleted_at IS NULL").
		Where("order_items.order_id = ?", orderID).
		Select("COALESCE(SUM(menu_items.price * order_items.qty), 0)").
		Scan(&total).Error
	return total, err
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var rows []entity.Order
	err := r.DB.Preload("Items").Preload("Items.MenuItem").Preload("Restaurant").
		Find(&rows).Error
	return rows, err
}

// ListByCountry returns every order whose restaurant sits in the given
// country, regardless of owner.
func (r *OrderRepository) ListByCountry(country string) ([]entity.Order, error) {
	var rows []entity.Order
	err := r.DB.
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id AND restaurants.deleted_at IS NULL").
		Where("restaurants.country = ?", country).
		Preload("Items").Preload("Items.MenuItem").Preload("Restaurant").
		Find(&rows).Error
	return rows, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var rows []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").Preload("Items.MenuItem").Preload("Restaurant").
		Find(&rows).Error
	return rows, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
