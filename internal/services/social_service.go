package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pkazanov/portfolio/internal/models"
	"github.com/pkazanov/portfolio/internal/repository"
)

// SocialService manages the social links singleton record.
type SocialService struct {
	socialRepo repository.SocialRepository
}

// NewSocialService creates and returns a new instance of SocialService.
func NewSocialService(socialRepo repository.SocialRepository) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
	}
}

// GetSocialLinks returns the singleton record, or (nil, nil) when it was
// never written. Callers default absent values at the call site.
func (s *SocialService) GetSocialLinks() (*models.SocialLinks, error) {
	links, err := s.socialRepo.GetSocialLinks()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load social links: %w", err)
	}
	return links, nil
}

// UpdateSocialLinks upserts the singleton record from the given values.
// Values are trimmed; blanks clear the stored link.
func (s *SocialService) UpdateSocialLinks(telegram, github, linkedin string) (*models.SocialLinks, error) {
	return s.socialRepo.UpsertSocialLinks(
		strings.TrimSpace(telegram),
		strings.TrimSpace(github),
		strings.TrimSpace(linkedin),
	)
}
