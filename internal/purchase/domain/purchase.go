package domain

import (
	"context"
	"time"

	catalogdomain "github.com/tair/petshop-backend/internal/catalog/domain"
	inventorydomain "github.com/tair/petshop-backend/internal/inventory/domain"
)

// Purchase is a confirmed order placed by a client
type Purchase struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reference string    `json:"reference" gorm:"uniqueIndex;not null"`
	ClientID  uint      `json:"clientId" gorm:"index;not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Time      time.Time `json:"time"`
	Items     []Item    `json:"lineItems" gorm:"foreignKey:PurchaseID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Purchase) TableName() string {
	return "purchases"
}

// Item is a single purchase line referencing a stock record
type Item struct {
	ID              uint  `json:"id" gorm:"primaryKey"`
	OrderedQuantity int64 `json:"orderedQuantity" gorm:"not null"`
	InventoryID     uint  `json:"inventoryId" gorm:"index;not null"`
	PurchaseID      uint  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "purchase_items"
}

// PurchaseRepository defines the contract for purchase data access
type PurchaseRepository interface {
	Create(purchase *Purchase) error
	FindByID(id uint) (*Purchase, error)
	FindAll(limit, offset int) ([]Purchase, error)
	FindByClientID(clientID uint, limit, offset int) ([]Purchase, error)
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
	Count() (int64, error)
}

// ItemRepository defines the contract for purchase line data access
type ItemRepository interface {
	Create(item *Item) error
	FindByPurchaseID(purchaseID uint) ([]Item, error)
	Delete(id uint) error
}

// TxRepos bundles the repositories bound to one database transaction
type TxRepos struct {
	Inventories inventorydomain.InventoryRepository
	Foods       catalogdomain.FoodRepository
	Toys        catalogdomain.ToyRepository
	Medicines   catalogdomain.MedicineRepository
	Purchases   PurchaseRepository
	Items       ItemRepository
}

// UnitOfWork runs a function inside a single database transaction.
// Any error returned by fn rolls back every write made through the
// transaction-bound repositories.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(repos TxRepos) error) error
}

// EventPublisher emits purchase lifecycle events to the message broker
type EventPublisher interface {
	PublishPurchaseCompleted(ctx context.Context, purchase *Purchase) error
	PublishPurchaseCancelled(ctx context.Context, purchase *Purchase) error
}
