package models

import "time"

type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	UserID         uint        `json:"user_id" gorm:"not null;index"`
	User           User        `json:"-" gorm:"foreignKey:UserID"`
	DeliveryCrewID *uint       `json:"delivery_crew_id"`
	DeliveryCrew   *User       `json:"delivery_crew,omitempty" gorm:"foreignKey:DeliveryCrewID"`
	Status         bool        `json:"status" gorm:"default:false"`
	Total          float64     `json:"total" gorm:"not null"`
	Date           time.Time   `json:"date" gorm:"not null"`
	Items          []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a write-once snapshot of a cart line taken at checkout.
// This layer never updates it after creation.
type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null;index"`
	MenuItemID uint     `json:"menuitem_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	UnitPrice  float64  `json:"unit_price" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
}
