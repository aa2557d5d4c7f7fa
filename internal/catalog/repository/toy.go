package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/catalog/domain"
	inventorydomain "github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type GormToyRepository struct {
	db *gorm.DB
}

func NewGormToyRepository(db *gorm.DB) *GormToyRepository {
	return &GormToyRepository{db: db}
}

func (r *GormToyRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Toy{})
}

func (r *GormToyRepository) Create(toy *domain.Toy, initialQuantity int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		inventory := &inventorydomain.Inventory{AvailableQuantity: initialQuantity}
		if err := tx.Create(inventory).Error; err != nil {
			return err
		}
		toy.InventoryID = inventory.ID
		return tx.Create(toy).Error
	})
}

func (r *GormToyRepository) FindByID(id uint) (*domain.Toy, error) {
	var toy domain.Toy
	err := r.db.First(&toy, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("toy", id)
		}
		return nil, err
	}
	return &toy, nil
}

func (r *GormToyRepository) FindAll(limit, offset int) ([]domain.Toy, error) {
	var toys []domain.Toy
	err := r.db.Limit(limit).Offset(offset).Find(&toys).Error
	return toys, err
}

func (r *GormToyRepository) Update(toy *domain.Toy) error {
	existing, err := r.FindByID(toy.ID)
	if err != nil {
		return err
	}
	toy.InventoryID = existing.InventoryID
	return r.db.Save(toy).Error
}

func (r *GormToyRepository) Delete(id uint) error {
	toy, err := r.FindByID(id)
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Toy{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&inventorydomain.Inventory{}, toy.InventoryID).Error
	})
}

func (r *GormToyRepository) ExistsByInventoryID(inventoryID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Toy{}).Where("inventory_id = ?", inventoryID).Count(&count).Error
	return count > 0, err
}

func (r *GormToyRepository) FindByInventoryID(inventoryID uint) (*domain.Toy, error) {
	var toy domain.Toy
	err := r.db.Where("inventory_id = ?", inventoryID).First(&toy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("inventory", inventoryID)
		}
		return nil, err
	}
	return &toy, nil
}
