package api

import (
	"strings"
	"time"

	"github.com/pkazanov/portfolio/internal/models"
)

// ProjectJSON is the public JSON representation of a project. It is the
// single shape every caller emitting project JSON goes through, so API
// responses stay representation-stable regardless of entry point.
// Pointer fields render absent optionals as explicit nulls, never omitted.
type ProjectJSON struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	Subtitle      string           `json:"subtitle"`
	Description   string           `json:"description"`
	DescriptionEN *string          `json:"description_en"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"category_label"`
	ReleaseDate   *string          `json:"release_date"`
	WorkPeriod    WorkPeriodJSON   `json:"work_period"`
	Links         ProjectLinksJSON `json:"links"`
	Image         *string          `json:"image"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

// WorkPeriodJSON holds the optional work start/end calendar dates.
type WorkPeriodJSON struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// ProjectLinksJSON holds the optional outbound links of a project.
type ProjectLinksJSON struct {
	GooglePlay  *string `json:"google_play"`
	Rustore     *string `json:"rustore"`
	Appstore    *string `json:"appstore"`
	Github      *string `json:"github"`
	ExtraSocial *string `json:"extra_social"`
}

// SerializeProject maps a stored project to its JSON representation.
// baseURL is the request-time server base used to absolutize the image
// path; it carries no trailing slash.
func SerializeProject(project *models.Project, baseURL string) ProjectJSON {
	return ProjectJSON{
		ID:            project.ID,
		Name:          project.Name,
		Subtitle:      project.Subtitle,
		Description:   project.Description,
		DescriptionEN: project.DescriptionEN,
		Category:      string(project.Category),
		CategoryLabel: project.Category.Label(),
		ReleaseDate:   dateString(project.ReleaseDate),
		WorkPeriod: WorkPeriodJSON{
			Start: dateString(project.WorkStartDate),
			End:   dateString(project.WorkEndDate),
		},
		Links: ProjectLinksJSON{
			GooglePlay:  project.LinkGooglePlay,
			Rustore:     project.LinkRustore,
			Appstore:    project.LinkAppstore,
			Github:      project.LinkGithub,
			ExtraSocial: project.ExtraSocialLink,
		},
		Image:     imageURL(project.Image, baseURL),
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}
}

// dateString renders an optional calendar date as ISO-8601, or nil.
func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// imageURL rewrites a storage-relative image path into an absolute URL
// under the media prefix of the given base URL.
func imageURL(path *string, baseURL string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := strings.TrimRight(baseURL, "/") + "/media/" + strings.TrimLeft(*path, "/")
	return &url
}
