package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pkazanov/portfolio/cmd"
	"github.com/pkazanov/portfolio/internal/api"
	"github.com/pkazanov/portfolio/internal/config"
	"github.com/pkazanov/portfolio/internal/models"
	"github.com/pkazanov/portfolio/internal/repository"
	"github.com/pkazanov/portfolio/internal/services"
)

var (
	projectNameFlag        string
	projectSubtitleFlag    string
	projectDescriptionFlag string
	projectDescENFlag      string
	projectCategoryFlag    string
	projectReleaseFlag     string
	projectWorkStartFlag   string
	projectWorkEndFlag     string
	projectGooglePlayFlag  string
	projectRustoreFlag     string
	projectAppstoreFlag    string
	projectGithubFlag      string
	projectExtraLinkFlag   string
	projectImageFlag       string
)

// CreateProjectCmd represents the 'create-project' command.
// Projects are created and edited only through this administrative
// surface; the public API is read-only.
var CreateProjectCmd = &cobra.Command{
	Use:   "create-project",
	Short: "Creates a portfolio project.",
	Long: `This command stores a new portfolio project and prints it in the same
JSON shape the API serves.

Example:
  portfolio create-project --name="My App" --subtitle="A mobile app" \
    --description="Full description" --category=personal \
    --release-date=2024-03-01 --github=https://github.com/me/my-app`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("FATAL: Failed to get underlying SQL database: %v", err)
		}
		defer sqlDB.Close()

		projectRepo := repository.NewProjectRepository(db)
		projectService := services.NewProjectService(projectRepo)

		project := &models.Project{
			Name:            projectNameFlag,
			Subtitle:        projectSubtitleFlag,
			Description:     projectDescriptionFlag,
			DescriptionEN:   optString(projectDescENFlag),
			Category:        models.ProjectCategory(projectCategoryFlag),
			ReleaseDate:     parseDateFlag("release-date", projectReleaseFlag),
			WorkStartDate:   parseDateFlag("work-start", projectWorkStartFlag),
			WorkEndDate:     parseDateFlag("work-end", projectWorkEndFlag),
			LinkGooglePlay:  optString(projectGooglePlayFlag),
			LinkRustore:     optString(projectRustoreFlag),
			LinkAppstore:    optString(projectAppstoreFlag),
			LinkGithub:      optString(projectGithubFlag),
			ExtraSocialLink: optString(projectExtraLinkFlag),
			Image:           optString(projectImageFlag),
		}

		if err := projectService.CreateProject(project); err != nil {
			log.Fatalf("Failed to create project: %v", err)
		}

		// Print the project exactly as the API would serve it.
		out, err := json.MarshalIndent(api.SerializeProject(project, cfg.Server.BaseURL), "", "  ")
		if err != nil {
			log.Fatalf("Failed to render project: %v", err)
		}
		fmt.Printf("Project created with id %d:\n%s\n", project.ID, out)
	},
}

// UpdateProjectCmd represents the 'update-project' command.
// Only the flags explicitly set on the command line are applied; every
// write refreshes the project's updated_at timestamp.
var UpdateProjectCmd = &cobra.Command{
	Use:   "update-project [id]",
	Short: "Updates an existing portfolio project.",
	Long: `This command edits a stored portfolio project. Only the provided flags
are changed; omitted fields keep their current values.

Example:
  portfolio update-project 3 --subtitle="A better subtitle" --category=freelance`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid project id %q\n", args[0])
			os.Exit(1)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("FATAL: Failed to get underlying SQL database: %v", err)
		}
		defer sqlDB.Close()

		projectRepo := repository.NewProjectRepository(db)
		projectService := services.NewProjectService(projectRepo)

		project, err := projectService.GetProjectByID(uint(id))
		if err != nil {
			log.Fatalf("Failed to load project %d: %v", id, err)
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			project.Name = projectNameFlag
		}
		if flags.Changed("subtitle") {
			project.Subtitle = projectSubtitleFlag
		}
		if flags.Changed("description") {
			project.Description = projectDescriptionFlag
		}
		if flags.Changed("description-en") {
			project.DescriptionEN = optString(projectDescENFlag)
		}
		if flags.Changed("category") {
			project.Category = models.ProjectCategory(projectCategoryFlag)
		}
		if flags.Changed("release-date") {
			project.ReleaseDate = parseDateFlag("release-date", projectReleaseFlag)
		}
		if flags.Changed("work-start") {
			project.WorkStartDate = parseDateFlag("work-start", projectWorkStartFlag)
		}
		if flags.Changed("work-end") {
			project.WorkEndDate = parseDateFlag("work-end", projectWorkEndFlag)
		}
		if flags.Changed("google-play") {
			project.LinkGooglePlay = optString(projectGooglePlayFlag)
		}
		if flags.Changed("rustore") {
			project.LinkRustore = optString(projectRustoreFlag)
		}
		if flags.Changed("appstore") {
			project.LinkAppstore = optString(projectAppstoreFlag)
		}
		if flags.Changed("github") {
			project.LinkGithub = optString(projectGithubFlag)
		}
		if flags.Changed("extra-link") {
			project.ExtraSocialLink = optString(projectExtraLinkFlag)
		}
		if flags.Changed("image") {
			project.Image = optString(projectImageFlag)
		}

		if err := projectService.UpdateProject(project); err != nil {
			log.Fatalf("Failed to update project: %v", err)
		}

		out, err := json.MarshalIndent(api.SerializeProject(project, cfg.Server.BaseURL), "", "  ")
		if err != nil {
			log.Fatalf("Failed to render project: %v", err)
		}
		fmt.Printf("Project %d updated:\n%s\n", project.ID, out)
	},
}

// optString maps an empty flag value to an absent optional field.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		fmt.Printf("Error: invalid --%s value %q, expected YYYY-MM-DD\n", name, value)
		os.Exit(1)
	}
	return &t
}

// addProjectFlags registers the shared project field flags on a command.
func addProjectFlags(c *cobra.Command) {
	c.Flags().StringVar(&projectNameFlag, "name", "", "Project name")
	c.Flags().StringVar(&projectSubtitleFlag, "subtitle", "", "Short subtitle")
	c.Flags().StringVar(&projectDescriptionFlag, "description", "", "Full description")
	c.Flags().StringVar(&projectDescENFlag, "description-en", "", "English description (optional)")
	c.Flags().StringVar(&projectCategoryFlag, "category", "personal", "Category: experience, freelance or personal")
	c.Flags().StringVar(&projectReleaseFlag, "release-date", "", "Release date (YYYY-MM-DD)")
	c.Flags().StringVar(&projectWorkStartFlag, "work-start", "", "Work start date (YYYY-MM-DD)")
	c.Flags().StringVar(&projectWorkEndFlag, "work-end", "", "Work end date (YYYY-MM-DD)")
	c.Flags().StringVar(&projectGooglePlayFlag, "google-play", "", "Google Play link")
	c.Flags().StringVar(&projectRustoreFlag, "rustore", "", "RuStore link")
	c.Flags().StringVar(&projectAppstoreFlag, "appstore", "", "App Store link")
	c.Flags().StringVar(&projectGithubFlag, "github", "", "GitHub link")
	c.Flags().StringVar(&projectExtraLinkFlag, "extra-link", "", "Extra social link")
	c.Flags().StringVar(&projectImageFlag, "image", "", "Storage-relative image path")
}

func init() {
	addProjectFlags(CreateProjectCmd)
	CreateProjectCmd.MarkFlagRequired("name")
	CreateProjectCmd.MarkFlagRequired("subtitle")
	CreateProjectCmd.MarkFlagRequired("description")

	// update-project takes the same flags, all optional: omitted flags
	// keep the stored values.
	addProjectFlags(UpdateProjectCmd)

	cmd.RootCmd.AddCommand(CreateProjectCmd)
	cmd.RootCmd.AddCommand(UpdateProjectCmd)
}
