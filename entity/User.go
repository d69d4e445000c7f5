package entity

import (
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Manager and Member carry a country
// and are restricted to it; Admin and Customer are unscoped.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleMember   Role = "member"
	RoleCustomer Role = "customer"
)

// CountryScoped reports whether the role may only act inside its own country.
func (r Role) CountryScoped() bool {
	return r == RoleManager || r == RoleMember
}

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     Role   `gorm:"not null;default:customer" json:"role"`

	// Country is required for manager/member, empty otherwise. Immutable
	// after seeding: there is no update endpoint.
	Country string `json:"country"`

	// Relations — preload only when needed
	Orders         []Order         `json:"-"`
	PaymentMethods []PaymentMethod `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Identity is the request-scoped caller handed to every service call.
// Nothing else in the codebase holds ambient current-user state.
type Identity struct {
	UserID   uint
	Username string
	Role     Role
	Country  string
}

func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username, Role: u.Role, Country: u.Country}
}
