package models

import "time"

// CartItem is one pending line in a user's cart. Price is always derived
// server-side as quantity × unit_price; client-supplied values are ignored.
// Repeated adds of the same menu item append new lines — there is no
// uniqueness constraint on (user, menuitem).
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       User      `json:"-" gorm:"foreignKey:UserID"`
	MenuItemID uint      `json:"menuitem_id" gorm:"not null"`
	MenuItem   MenuItem  `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	UnitPrice  float64   `json:"unit_price" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
