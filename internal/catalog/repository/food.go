package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/catalog/domain"
	inventorydomain "github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type GormFoodRepository struct {
	db *gorm.DB
}

func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

func (r *GormFoodRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Food{})
}

// Create persists the food product together with its backing inventory record
func (r *GormFoodRepository) Create(food *domain.Food, initialQuantity int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		inventory := &inventorydomain.Inventory{AvailableQuantity: initialQuantity}
		if err := tx.Create(inventory).Error; err != nil {
			return err
		}
		food.InventoryID = inventory.ID
		return tx.Create(food).Error
	})
}

func (r *GormFoodRepository) FindByID(id uint) (*domain.Food, error) {
	var food domain.Food
	err := r.db.First(&food, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("food item", id)
		}
		return nil, err
	}
	return &food, nil
}

func (r *GormFoodRepository) FindAll(limit, offset int) ([]domain.Food, error) {
	var foods []domain.Food
	err := r.db.Limit(limit).Offset(offset).Find(&foods).Error
	return foods, err
}

func (r *GormFoodRepository) Update(food *domain.Food) error {
	existing, err := r.FindByID(food.ID)
	if err != nil {
		return err
	}
	food.InventoryID = existing.InventoryID
	return r.db.Save(food).Error
}

// Delete removes the product and its inventory record in one transaction
func (r *GormFoodRepository) Delete(id uint) error {
	food, err := r.FindByID(id)
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Food{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&inventorydomain.Inventory{}, food.InventoryID).Error
	})
}

func (r *GormFoodRepository) ExistsByInventoryID(inventoryID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Food{}).Where("inventory_id = ?", inventoryID).Count(&count).Error
	return count > 0, err
}

func (r *GormFoodRepository) FindByInventoryID(inventoryID uint) (*domain.Food, error) {
	var food domain.Food
	err := r.db.Where("inventory_id = ?", inventoryID).First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("inventory", inventoryID)
		}
		return nil, err
	}
	return &food, nil
}
