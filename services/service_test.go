package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ChPurna2003/CravingConnect/configs"
	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Each test gets its own named in-memory database so parallel tests cannot
// see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := configs.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, role entity.Role, country string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: username, Password: string(hash), Role: role, Country: country}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, name, country string, items ...entity.MenuItem) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, Country: country, MenuItems: items}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createPaymentMethod(t *testing.T, db *gorm.DB, userID uint, name, last4 string) *entity.PaymentMethod {
	t.Helper()
	pm := &entity.PaymentMethod{UserID: userID, MethodName: name, CardLast4: last4}
	require.NoError(t, db.Create(pm).Error)
	return pm
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewPaymentRepository(db),
	)
}

func newPaymentService(db *gorm.DB) *PaymentService {
	return NewPaymentService(repository.NewPaymentRepository(db), repository.NewUserRepository(db))
}
