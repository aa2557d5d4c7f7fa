package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type GormPurchaseRepository struct {
	db *gorm.DB
}

func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

func (r *GormPurchaseRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Purchase{}, &domain.Item{})
}

func (r *GormPurchaseRepository) Create(purchase *domain.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *GormPurchaseRepository) FindByID(id uint) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.Preload("Items").First(&purchase, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("purchase", id)
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *GormPurchaseRepository) FindAll(limit, offset int) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.Preload("Items").Limit(limit).Offset(offset).Order("id").Find(&purchases).Error
	return purchases, err
}

func (r *GormPurchaseRepository) FindByClientID(clientID uint, limit, offset int) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.Preload("Items").Where("client_id = ?", clientID).
		Limit(limit).Offset(offset).Order("id").Find(&purchases).Error
	return purchases, err
}

func (r *GormPurchaseRepository) Delete(id uint) error {
	exists, err := r.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.NotFound("purchase", id)
	}
	return r.db.Delete(&domain.Purchase{}, id).Error
}

func (r *GormPurchaseRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Purchase{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *GormPurchaseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Purchase{}).Count(&count).Error
	return count, err
}

type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Create(item *domain.Item) error {
	return r.db.Create(item).Error
}

func (r *GormItemRepository) FindByPurchaseID(purchaseID uint) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Where("purchase_id = ?", purchaseID).Order("id").Find(&items).Error
	return items, err
}

func (r *GormItemRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Item{}, id).Error
}
