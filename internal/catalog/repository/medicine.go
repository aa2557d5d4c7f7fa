package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/catalog/domain"
	inventorydomain "github.com/tair/petshop-backend/internal/inventory/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type GormMedicineRepository struct {
	db *gorm.DB
}

func NewGormMedicineRepository(db *gorm.DB) *GormMedicineRepository {
	return &GormMedicineRepository{db: db}
}

func (r *GormMedicineRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Medicine{})
}

func (r *GormMedicineRepository) Create(medicine *domain.Medicine, initialQuantity int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		inventory := &inventorydomain.Inventory{AvailableQuantity: initialQuantity}
		if err := tx.Create(inventory).Error; err != nil {
			return err
		}
		medicine.InventoryID = inventory.ID
		return tx.Create(medicine).Error
	})
}

func (r *GormMedicineRepository) FindByID(id uint) (*domain.Medicine, error) {
	var medicine domain.Medicine
	err := r.db.First(&medicine, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("medicine", id)
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *GormMedicineRepository) FindAll(limit, offset int) ([]domain.Medicine, error) {
	var medicines []domain.Medicine
	err := r.db.Limit(limit).Offset(offset).Find(&medicines).Error
	return medicines, err
}

func (r *GormMedicineRepository) Update(medicine *domain.Medicine) error {
	existing, err := r.FindByID(medicine.ID)
	if err != nil {
		return err
	}
	medicine.InventoryID = existing.InventoryID
	return r.db.Save(medicine).Error
}

func (r *GormMedicineRepository) Delete(id uint) error {
	medicine, err := r.FindByID(id)
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Medicine{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&inventorydomain.Inventory{}, medicine.InventoryID).Error
	})
}

func (r *GormMedicineRepository) ExistsByInventoryID(inventoryID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Medicine{}).Where("inventory_id = ?", inventoryID).Count(&count).Error
	return count > 0, err
}

func (r *GormMedicineRepository) FindByInventoryID(inventoryID uint) (*domain.Medicine, error) {
	var medicine domain.Medicine
	err := r.db.Where("inventory_id = ?", inventoryID).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("inventory", inventoryID)
		}
		return nil, err
	}
	return &medicine, nil
}
