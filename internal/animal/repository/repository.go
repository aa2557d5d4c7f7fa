package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/animal/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type GormAnimalRepository struct {
	db *gorm.DB
}

func NewGormAnimalRepository(db *gorm.DB) *GormAnimalRepository {
	return &GormAnimalRepository{db: db}
}

func (r *GormAnimalRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Animal{})
}

func (r *GormAnimalRepository) Create(animal *domain.Animal) error {
	return r.db.Create(animal).Error
}

func (r *GormAnimalRepository) FindByID(id uint) (*domain.Animal, error) {
	var animal domain.Animal
	err := r.db.First(&animal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("animal", id)
		}
		return nil, err
	}
	return &animal, nil
}

func (r *GormAnimalRepository) FindByOwnerID(ownerID uint) ([]domain.Animal, error) {
	var animals []domain.Animal
	err := r.db.Where("owner_id = ?", ownerID).Find(&animals).Error
	return animals, err
}

func (r *GormAnimalRepository) FindAll(limit, offset int) ([]domain.Animal, error) {
	var animals []domain.Animal
	err := r.db.Limit(limit).Offset(offset).Find(&animals).Error
	return animals, err
}

func (r *GormAnimalRepository) Update(animal *domain.Animal) error {
	var count int64
	if err := r.db.Model(&domain.Animal{}).Where("id = ?", animal.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.NotFound("animal", animal.ID)
	}
	return r.db.Save(animal).Error
}

func (r *GormAnimalRepository) Delete(id uint) error {
	var count int64
	if err := r.db.Model(&domain.Animal{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.NotFound("animal", id)
	}
	return r.db.Delete(&domain.Animal{}, id).Error
}
