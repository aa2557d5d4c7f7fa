package domain

import (
	"time"

	"gorm.io/gorm"
)

// Animal represents a client-owned animal
type Animal struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name"`
	Species   string         `json:"species" gorm:"not null"`
	Breed     string         `json:"breed"`
	BirthDate time.Time      `json:"birthDate"`
	OwnerID   uint           `json:"ownerId" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Animal) TableName() string {
	return "animals"
}

// AnimalRepository defines the contract for animal data access
type AnimalRepository interface {
	Create(animal *Animal) error
	FindByID(id uint) (*Animal, error)
	FindByOwnerID(ownerID uint) ([]Animal, error)
	FindAll(limit, offset int) ([]Animal, error)
	Update(animal *Animal) error
	Delete(id uint) error
}
