package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/client/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
)

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Client{})
}

func (r *GormClientRepository) Create(client *domain.Client) error {
	return r.db.Create(client).Error
}

func (r *GormClientRepository) FindByID(id uint) (*domain.Client, error) {
	var client domain.Client
	err := r.db.First(&client, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("client", id)
		}
		return nil, err
	}
	return &client, nil
}

func (r *GormClientRepository) FindAll(limit, offset int) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.Limit(limit).Offset(offset).Find(&clients).Error
	return clients, err
}

func (r *GormClientRepository) Update(client *domain.Client) error {
	exists, err := r.ExistsByID(client.ID)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.NotFound("client", client.ID)
	}
	return r.db.Save(client).Error
}

func (r *GormClientRepository) Delete(id uint) error {
	exists, err := r.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.NotFound("client", id)
	}
	return r.db.Delete(&domain.Client{}, id).Error
}

func (r *GormClientRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
