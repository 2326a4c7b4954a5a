package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// denormalized sum of PointsTransactions
	PointsBalance int64 `gorm:"not null;default:0" json:"pointsBalance"`

	Cart               *Cart                   `json:"-"`
	Orders             []Order                 `json:"-"`
	Reviews            []Review                `json:"-"`
	PointsTransactions []UserPointsTransaction `json:"-"`
	Redemptions        []UserRedemption        `json:"-"`
	WishList           []WishListItem          `json:"-"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
