package domain

import (
	"time"

	"gorm.io/gorm"
)

// Toy is a catalog product backed 1:1 by an inventory record
type Toy struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Animal      string         `json:"animal"`
	Price       float64        `json:"price" gorm:"not null"`
	Brand       string         `json:"brand" gorm:"not null"`
	InventoryID uint           `json:"inventoryId" gorm:"not null;uniqueIndex"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Toy) TableName() string {
	return "toys"
}

// ToyRepository defines the contract for toy data access
type ToyRepository interface {
	Create(toy *Toy, initialQuantity int64) error
	FindByID(id uint) (*Toy, error)
	FindAll(limit, offset int) ([]Toy, error)
	Update(toy *Toy) error
	Delete(id uint) error
	ExistsByInventoryID(inventoryID uint) (bool, error)
	FindByInventoryID(inventoryID uint) (*Toy, error)
}
