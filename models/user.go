package models

import (
	"time"
)

// Recognized role groups. Any user outside both is a plain customer.
const (
	GroupManager      = "manager"
	GroupDeliveryCrew = "delivery-crew"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsStaff      bool      `json:"is_staff" gorm:"default:false"`
	Groups       []Group   `json:"groups" gorm:"many2many:user_groups;"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// InGroup reports whether the user's loaded Groups contain the named group.
// Callers must have preloaded Groups.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}
