package configs

import (
	"github.com/ChPurna2003/CravingConnect/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the demo fixture. Skipped entirely when any user already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("users already exist, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []entity.User{
		{Username: "nick", Role: entity.RoleAdmin},
		{Username: "captain_marvel", Role: entity.RoleManager, Country: "India"},
		{Username: "captain_america", Role: entity.RoleManager, Country: "America"},
		{Username: "thanos", Role: entity.RoleMember, Country: "India"},
		{Username: "thor", Role: entity.RoleMember, Country: "India"},
		{Username: "travis", Role: entity.RoleMember, Country: "America"},
	}
	for i := range users {
		users[i].Password = string(hash)
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	restaurants := []entity.Restaurant{
		{Name: "Spice India", Country: "India", MenuItems: []entity.MenuItem{
			{Name: "Butter Chicken", Price: 100.00},
			{Name: "Naan", Price: 15.00},
		}},
		{Name: "Biryani House", Country: "India", MenuItems: []entity.MenuItem{
			{Name: "Veg Biryani", Price: 150.00},
			{Name: "Chicken Biryani", Price: 180.00},
		}},
		{Name: "Burger Point", Country: "America", MenuItems: []entity.MenuItem{
			{Name: "Burger", Price: 6.49},
			{Name: "Fries", Price: 2.99},
		}},
		{Name: "Pizza Hub", Country: "America", MenuItems: []entity.MenuItem{
			{Name: "Pepperoni Pizza", Price: 9.49},
			{Name: "Margherita Pizza", Price: 8.79},
		}},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	pm := entity.PaymentMethod{
		UserID:     users[0].ID, // nick
		MethodName: "Admin Card",
		CardLast4:  "1111",
	}
	if err := db.Create(&pm).Error; err != nil {
		return err
	}

	logrus.Info("database created & seeded")
	return nil
}
