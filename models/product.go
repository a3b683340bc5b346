package models

import "time"

type ProductCategory string

const (
	CategoryMainCourse ProductCategory = "Main Course"
	CategoryStarter    ProductCategory = "Starter"
	CategoryDessert    ProductCategory = "Dessert"
	CategoryBeverage   ProductCategory = "Beverage"
	CategoryBreakfast  ProductCategory = "Breakfast"
	CategorySnacks     ProductCategory = "Snacks"
	CategoryOther      ProductCategory = "Other"
)

var ProductCategories = []ProductCategory{
	CategoryMainCourse,
	CategoryStarter,
	CategoryDessert,
	CategoryBeverage,
	CategoryBreakfast,
	CategorySnacks,
	CategoryOther,
}

func (c ProductCategory) Valid() bool {
	for _, v := range ProductCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Product struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	Price     float64         `gorm:"not null" json:"price"`
	Offer     string          `json:"offer"`
	Image     string          `json:"image"` // URL under /uploads
	Category  ProductCategory `gorm:"type:VARCHAR(20);not null" json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
