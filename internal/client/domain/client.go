package domain

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a pet-shop customer
type Client struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	FirstName string         `json:"firstName" gorm:"not null"`
	LastName  string         `json:"lastName" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	City      string         `json:"city"`
	BirthDate time.Time      `json:"birthDate"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Client) TableName() string {
	return "clients"
}

// ClientRepository defines the contract for client data access
type ClientRepository interface {
	Create(client *Client) error
	FindByID(id uint) (*Client, error)
	FindAll(limit, offset int) ([]Client, error)
	Update(client *Client) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
}
