package services

import (
	"testing"

	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurantsForcesCountryForScopedRoles(t *testing.T) {
	db := newTestDB(t)
	createRestaurant(t, db, "Spice India", "India",
		entity.MenuItem{Name: "Butter Chicken", Price: 100.00})
	createRestaurant(t, db, "Burger Point", "America",
		entity.MenuItem{Name: "Burger", Price: 6.49})
	thanos := createUser(t, db, "thanos", entity.RoleMember, "India")
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	// A requested filter from a scoped role is ignored.
	out, err := svc.List(thanos.Identity(), "America")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "India", out[0].Country)
	require.Len(t, out[0].Menu, 1)
	assert.Equal(t, "Butter Chicken", out[0].Menu[0].Name)
	assert.Equal(t, 100.0, out[0].Menu[0].Price)
}

func TestListRestaurantsFilterForUnscopedRoles(t *testing.T) {
	db := newTestDB(t)
	createRestaurant(t, db, "Spice India", "India")
	createRestaurant(t, db, "Burger Point", "America")
	createRestaurant(t, db, "Pizza Hub", "America")
	nick := createUser(t, db, "nick", entity.RoleAdmin, "")
	carol := createUser(t, db, "carol", entity.RoleCustomer, "")
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	filtered, err := svc.List(nick.Identity(), "America")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	all, err := svc.List(nick.Identity(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	allForCustomer, err := svc.List(carol.Identity(), "")
	require.NoError(t, err)
	assert.Len(t, allForCustomer, 3)
}
