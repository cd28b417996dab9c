package models

import "time"

type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Slug  string `json:"slug" gorm:"uniqueIndex;not null"`
	Title string `json:"title" gorm:"not null"`
}

type MenuItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	Featured   bool      `json:"featured" gorm:"default:false"`
	CategoryID uint      `json:"-" gorm:"not null"`
	Category   Category  `json:"category" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
