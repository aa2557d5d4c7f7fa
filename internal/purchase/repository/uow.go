package repository

import (
	"context"

	"gorm.io/gorm"

	catalogrepo "github.com/tair/petshop-backend/internal/catalog/repository"
	inventoryrepo "github.com/tair/petshop-backend/internal/inventory/repository"
	"github.com/tair/petshop-backend/internal/purchase/domain"
)

// GormUnitOfWork runs callbacks inside a single gorm transaction and
// hands out repositories bound to that transaction.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Within(ctx context.Context, fn func(repos domain.TxRepos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := domain.TxRepos{
			Inventories: inventoryrepo.NewGormInventoryRepository(tx),
			Foods:       catalogrepo.NewGormFoodRepository(tx),
			Toys:        catalogrepo.NewGormToyRepository(tx),
			Medicines:   catalogrepo.NewGormMedicineRepository(tx),
			Purchases:   NewGormPurchaseRepository(tx),
			Items:       NewGormItemRepository(tx),
		}
		return fn(repos)
	})
}
