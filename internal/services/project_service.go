// Package services contains the business logic layer for the portfolio application
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/pkazanov/portfolio/internal/errors"
	"github.com/pkazanov/portfolio/internal/models"
	"github.com/pkazanov/portfolio/internal/repository"
)

// ProjectService provides business logic methods for portfolio projects.
// It acts as an intermediary between the HTTP handlers (and the admin
// CLI) and the data repository.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates and returns a new instance of ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// GetAllProjects returns every project, newest first.
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	return s.projectRepo.GetAllProjects()
}

// GetProjectByID returns the project with the given id.
// Returns apperrors.ErrProjectNotFound when the id does not exist.
func (s *ProjectService) GetProjectByID(id uint) (*models.Project, error) {
	project, err := s.projectRepo.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project %d: %w", id, err)
	}
	return project, nil
}

// CreateProject validates and stores a new project.
// Only the admin surface calls this; the public API is read-only.
func (s *ProjectService) CreateProject(project *models.Project) error {
	if project.Category == "" {
		project.Category = models.CategoryPersonal
	}
	if !project.Category.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCategory, project.Category)
	}
	return s.projectRepo.CreateProject(project)
}

// UpdateProject validates and persists changes to an existing project.
func (s *ProjectService) UpdateProject(project *models.Project) error {
	if !project.Category.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCategory, project.Category)
	}
	return s.projectRepo.UpdateProject(project)
}
