package repository

import (
	"fmt"

	"github.com/pkazanov/portfolio/internal/models"
	"gorm.io/gorm"
)

// ContactRepository is an interface that defines the data access methods for contact messages
type ContactRepository interface {
	CreateMessage(message *models.ContactMessage) error
	GetMessageByID(id uint) (*models.ContactMessage, error)
	GetAllMessages() ([]models.ContactMessage, error)
}

// GormContactRepository is the GORM implementation of ContactRepository.
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates and returns a new GormContactRepository instance.
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// CreateMessage inserts a new contact message into the database.
func (r *GormContactRepository) CreateMessage(message *models.ContactMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// GetMessageByID retrieves a contact message by its identifier.
// Returns gorm.ErrRecordNotFound when the id does not exist.
func (r *GormContactRepository) GetMessageByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetAllMessages retrieves all contact messages, newest first.
func (r *GormContactRepository) GetAllMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve contact messages: %w", err)
	}
	return messages, nil
}
