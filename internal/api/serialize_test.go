package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazanov/portfolio/internal/models"
)

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSerializeProjectStable(t *testing.T) {
	project := &models.Project{
		ID:             7,
		Name:           "My App",
		Subtitle:       "A mobile app",
		Description:    "Full description",
		DescriptionEN:  strPtr("Full description in English"),
		Category:       models.CategoryFreelance,
		ReleaseDate:    datePtr(2024, time.March, 1),
		WorkStartDate:  datePtr(2023, time.November, 15),
		WorkEndDate:    datePtr(2024, time.February, 20),
		LinkGooglePlay: strPtr("https://play.google.com/store/apps/details?id=my.app"),
		LinkGithub:     strPtr("https://github.com/me/my-app"),
		Image:          strPtr("projects/my-app.png"),
		CreatedAt:      time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:      time.Date(2024, time.February, 3, 4, 5, 6, 0, time.UTC),
	}

	first, err := json.Marshal(SerializeProject(project, "http://example.com"))
	require.NoError(t, err)
	second, err := json.Marshal(SerializeProject(project, "http://example.com"))
	require.NoError(t, err)

	// Same inputs must yield byte-identical JSON.
	assert.Equal(t, first, second)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(first, &decoded))
	assert.Equal(t, float64(7), decoded["id"])
	assert.Equal(t, "freelance", decoded["category"])
	assert.Equal(t, "Freelance", decoded["category_label"])
	assert.Equal(t, "2024-03-01", decoded["release_date"])
	assert.Equal(t, "http://example.com/media/projects/my-app.png", decoded["image"])

	workPeriod, ok := decoded["work_period"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2023-11-15", workPeriod["start"])
	assert.Equal(t, "2024-02-20", workPeriod["end"])

	links, ok := decoded["links"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://github.com/me/my-app", links["github"])
	assert.Nil(t, links["rustore"])
}

func TestSerializeProjectAbsentOptionalsAreNull(t *testing.T) {
	project := &models.Project{
		ID:          1,
		Name:        "Bare",
		Subtitle:    "Minimal",
		Description: "Only required fields",
		Category:    models.CategoryPersonal,
	}

	raw, err := json.Marshal(SerializeProject(project, "http://example.com"))
	require.NoError(t, err)

	// Absent optional fields render as null, never omitted.
	for _, key := range []string{
		`"description_en":null`,
		`"release_date":null`,
		`"start":null`,
		`"end":null`,
		`"google_play":null`,
		`"rustore":null`,
		`"appstore":null`,
		`"github":null`,
		`"extra_social":null`,
		`"image":null`,
	} {
		assert.Contains(t, string(raw), key)
	}
}

func TestImageURL(t *testing.T) {
	testCases := []struct {
		name     string
		path     *string
		baseURL  string
		expected *string
	}{
		{
			name:     "nil path",
			path:     nil,
			baseURL:  "http://example.com",
			expected: nil,
		},
		{
			name:     "empty path",
			path:     strPtr(""),
			baseURL:  "http://example.com",
			expected: nil,
		},
		{
			name:     "relative path",
			path:     strPtr("projects/app.png"),
			baseURL:  "http://example.com",
			expected: strPtr("http://example.com/media/projects/app.png"),
		},
		{
			name:     "leading slash and trailing base slash",
			path:     strPtr("/projects/app.png"),
			baseURL:  "http://example.com/",
			expected: strPtr("http://example.com/media/projects/app.png"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := imageURL(tc.path, tc.baseURL)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.expected, *got)
		})
	}
}
