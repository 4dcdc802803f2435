package repository

import (
	"fmt"

	"github.com/pkazanov/portfolio/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository is an interface that defines the data access methods for projects
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProjectByID(id uint) (*models.Project, error)
	GetAllProjects() ([]models.Project, error)
	UpdateProject(project *models.Project) error
}

// GormProjectRepository is the GORM implementation of ProjectRepository.
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates and returns a new GormProjectRepository instance.
func NewProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateProject inserts a new project into the database.
func (r *GormProjectRepository) CreateProject(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProjectByID retrieves a project by its identifier.
// Returns gorm.ErrRecordNotFound when the id does not exist.
func (r *GormProjectRepository) GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAllProjects retrieves all projects, newest first.
func (r *GormProjectRepository) GetAllProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve all projects: %w", err)
	}
	return projects, nil
}

// UpdateProject persists changes to an existing project.
// The updated_at column is refreshed by GORM on every save.
func (r *GormProjectRepository) UpdateProject(project *models.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return fmt.Errorf("failed to update project %d: %w", project.ID, err)
	}
	return nil
}
