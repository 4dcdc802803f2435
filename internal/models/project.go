package models

import "time"

// ProjectCategory is the closed set of project categories.
type ProjectCategory string

const (
	CategoryExperience ProjectCategory = "experience"
	CategoryFreelance  ProjectCategory = "freelance"
	CategoryPersonal   ProjectCategory = "personal"
)

// Valid reports whether the category is one of the known values.
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryExperience, CategoryFreelance, CategoryPersonal:
		return true
	}
	return false
}

// Label returns the human-readable label for the category.
func (c ProjectCategory) Label() string {
	switch c {
	case CategoryExperience:
		return "Experience"
	case CategoryFreelance:
		return "Freelance"
	case CategoryPersonal:
		return "Personal"
	}
	return string(c)
}

// Project represents a portfolio project stored in the database.
// Projects are created and edited through the admin CLI only; the public
// API reads them.
type Project struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Subtitle string `gorm:"size:255;not null"`

	Description string `gorm:"not null"`
	// DescriptionEN is an optional English translation, carried as-is.
	DescriptionEN *string

	Category ProjectCategory `gorm:"size:20;not null;default:personal"`

	// Optional calendar dates. No ordering is enforced between them.
	ReleaseDate   *time.Time `gorm:"type:date"`
	WorkStartDate *time.Time `gorm:"type:date"`
	WorkEndDate   *time.Time `gorm:"type:date"`

	// Optional outbound links, absolute URLs when present.
	LinkGooglePlay  *string
	LinkRustore     *string
	LinkAppstore    *string
	LinkGithub      *string
	ExtraSocialLink *string

	// Image is a storage-relative path (e.g. "projects/app.png"),
	// resolved to an absolute URL at serialization time.
	Image *string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
