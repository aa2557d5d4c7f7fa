package domain

import (
	"time"

	"gorm.io/gorm"
)

// Medicine is a catalog product backed 1:1 by an inventory record
type Medicine struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Animal      string         `json:"animal"`
	Price       float64        `json:"price" gorm:"not null"`
	Purpose     string         `json:"purpose"`
	InventoryID uint           `json:"inventoryId" gorm:"not null;uniqueIndex"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Medicine) TableName() string {
	return "medicines"
}

// MedicineRepository defines the contract for medicine data access
type MedicineRepository interface {
	Create(medicine *Medicine, initialQuantity int64) error
	FindByID(id uint) (*Medicine, error)
	FindAll(limit, offset int) ([]Medicine, error)
	Update(medicine *Medicine) error
	Delete(id uint) error
	ExistsByInventoryID(inventoryID uint) (bool, error)
	FindByInventoryID(inventoryID uint) (*Medicine, error)
}
