package domain

import (
	"time"

	"gorm.io/gorm"
)

// Food is a catalog product backed 1:1 by an inventory record
type Food struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Brand           string         `json:"brand" gorm:"not null"`
	Type            string         `json:"type"`
	Price           float64        `json:"price" gorm:"not null"`
	QuantityPerUnit int64          `json:"quantityPerUnit"`
	Animal          string         `json:"animal"`
	InventoryID     uint           `json:"inventoryId" gorm:"not null;uniqueIndex"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Food) TableName() string {
	return "foods"
}

// FoodRepository defines the contract for food data access.
// Create provisions the backing inventory record together with the product;
// Delete removes both.
type FoodRepository interface {
	Create(food *Food, initialQuantity int64) error
	FindByID(id uint) (*Food, error)
	FindAll(limit, offset int) ([]Food, error)
	Update(food *Food) error
	Delete(id uint) error
	ExistsByInventoryID(inventoryID uint) (bool, error)
	FindByInventoryID(inventoryID uint) (*Food, error)
}
