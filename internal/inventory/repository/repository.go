package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inventory{})
}

func (r *GormInventoryRepository) Create(inventory *domain.Inventory) error {
	return r.db.Create(inventory).Error
}

func (r *GormInventoryRepository) FindByID(id uint) (*domain.Inventory, error) {
	var inventory domain.Inventory
	err := r.db.First(&inventory, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("inventory", id)
		}
		return nil, err
	}
	return &inventory, nil
}

func (r *GormInventoryRepository) FindAll(limit, offset int) ([]domain.Inventory, error) {
	var inventories []domain.Inventory
	err := r.db.Limit(limit).Offset(offset).Find(&inventories).Error
	return inventories, err
}

func (r *GormInventoryRepository) Save(inventory *domain.Inventory) (*domain.Inventory, error) {
	if err := r.db.Save(inventory).Error; err != nil {
		return nil, err
	}
	return inventory, nil
}

func (r *GormInventoryRepository) Delete(id uint) error {
	exists, err := r.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.NotFound("inventory", id)
	}
	return r.db.Delete(&domain.Inventory{}, id).Error
}

func (r *GormInventoryRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Inventory{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
