package repository

import (
	"errors"
	"fmt"

	"github.com/pkazanov/portfolio/internal/models"
	"gorm.io/gorm"
)

// SocialRepository is an interface that defines the data access methods for the social links singleton
type SocialRepository interface {
	GetSocialLinks() (*models.SocialLinks, error)
	UpsertSocialLinks(telegram, github, linkedin string) (*models.SocialLinks, error)
}

// GormSocialRepository is the GORM implementation of SocialRepository.
type GormSocialRepository struct {
	db *gorm.DB
}

// NewSocialRepository creates and returns a new GormSocialRepository instance.
func NewSocialRepository(db *gorm.DB) *GormSocialRepository {
	return &GormSocialRepository{db: db}
}

// GetSocialLinks retrieves the singleton social links row.
// Returns gorm.ErrRecordNotFound when the row was never written.
func (r *GormSocialRepository) GetSocialLinks() (*models.SocialLinks, error) {
	var links models.SocialLinks
	if err := r.db.First(&links, models.SocialLinksID).Error; err != nil {
		return nil, err
	}
	return &links, nil
}

// UpsertSocialLinks overwrites the singleton row with the given values,
// creating it under the fixed id on first write.
func (r *GormSocialRepository) UpsertSocialLinks(telegram, github, linkedin string) (*models.SocialLinks, error) {
	var links models.SocialLinks
	err := r.db.First(&links, models.SocialLinksID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		links = models.SocialLinks{ID: models.SocialLinksID}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load social links: %w", err)
	}

	links.Telegram = telegram
	links.Github = github
	links.Linkedin = linkedin

	if err := r.db.Save(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to save social links: %w", err)
	}
	return &links, nil
}
