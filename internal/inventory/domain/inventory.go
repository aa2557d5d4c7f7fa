package domain

import (
	"time"

	"gorm.io/gorm"
)

// Inventory is the stock-quantity ledger entry shared by exactly one product
type Inventory struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	AvailableQuantity int64          `json:"availableQuantity" gorm:"not null;default:0"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventories"
}

// InventoryRepository defines the contract for inventory data access.
// Save acts as an upsert and returns the persisted state.
type InventoryRepository interface {
	Create(inventory *Inventory) error
	FindByID(id uint) (*Inventory, error)
	FindAll(limit, offset int) ([]Inventory, error)
	Save(inventory *Inventory) (*Inventory, error)
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
}
