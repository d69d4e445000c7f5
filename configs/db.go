package configs

import (
	"github.com/ChPurna2003/CravingConnect/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Open(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.PaymentMethod{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		return err
	}

	// AutoMigrate cannot express a partial index. Without it a race on the
	// find-or-create step could leave two open carts for the same
	// (user, restaurant) pair.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_orders_open_cart
		ON orders(user_id, restaurant_id)
		WHERE status = 'cart' AND deleted_at IS NULL`).Error
}
