package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/pkazanov/portfolio/internal/config"
	apperrors "github.com/pkazanov/portfolio/internal/errors"
	"github.com/pkazanov/portfolio/internal/services"
)

// validate checks field formats (email) for contact submissions.
var validate = validator.New()

// SetupRoutes configures all Gin API routes and injects necessary dependencies.
// The configuration is passed in here rather than read from ambient
// global state, so handlers stay testable with arbitrary configs.
func SetupRoutes(router *gin.Engine,
	projectService *services.ProjectService,
	contactService *services.ContactService,
	socialService *services.SocialService,
	cfg *config.Config,
) {
	// Fixed-method endpoints answer 405 instead of gin's default 404.
	router.HandleMethodNotAllowed = true

	// Health Check Route - used for monitoring service availability
	router.GET("/health", HealthCheckHandler)

	api := router.Group("/api")
	{
		api.GET("/projects/", ListProjectsHandler(projectService, cfg))
		api.GET("/projects/:id/", GetProjectHandler(projectService, cfg))
		api.POST("/contact/", SubmitContactHandler(contactService))
		api.GET("/social-links/", GetSocialLinksHandler(socialService))
		api.POST("/social-links/", SetSocialLinksHandler(socialService, cfg))
		api.GET("/swagger.json", SwaggerHandler(cfg))
	}
}

// HealthCheckHandler handles the /health route to verify service status
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListProjectsHandler returns every project serialized to the public
// JSON shape, newest first.
func ListProjectsHandler(projectService *services.ProjectService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := projectService.GetAllProjects()
		if err != nil {
			log.Printf("Error listing projects: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		baseURL := resolveBaseURL(cfg, c.Request)
		data := make([]ProjectJSON, 0, len(projects))
		for i := range projects {
			data = append(data, SerializeProject(&projects[i], baseURL))
		}
		c.JSON(http.StatusOK, data)
	}
}

// GetProjectHandler returns a single serialized project by numeric id.
// Unknown and non-numeric ids both map to 404.
func GetProjectHandler(projectService *services.ProjectService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
			return
		}

		project, err := projectService.GetProjectByID(uint(id))
		if err != nil {
			if errors.Is(err, apperrors.ErrProjectNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
				return
			}
			log.Printf("Error retrieving project %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, SerializeProject(project, resolveBaseURL(cfg, c.Request)))
	}
}

// ContactRequest represents a contact form submission, accepted either
// as a JSON body or as an URL-encoded form.
type ContactRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Message  string `json:"message" form:"message"`
}

// Validate returns a field-keyed error map, or nil when the request is
// well-formed.
func (r *ContactRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.FullName) == "" {
		errs["full_name"] = "This field is required."
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "This field is required."
	} else if validate.Var(r.Email, "email") != nil {
		errs["email"] = "Enter a valid email address."
	}
	if strings.TrimSpace(r.Message) == "" {
		errs["message"] = "This field is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// SubmitContactHandler validates and stores a contact submission, then
// fires the Telegram relay. Relay failures are invisible to the caller.
func SubmitContactHandler(contactService *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		// Bind leniently: a malformed body degrades to empty fields and
		// fails required-field validation below.
		if err := c.ShouldBind(&req); err != nil {
			req = ContactRequest{}
		}

		if errs := req.Validate(); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		if _, err := contactService.Submit(c.Request.Context(), req.FullName, req.Email, req.Message); err != nil {
			log.Printf("Error storing contact message: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// SocialLinksRequest represents a social links update, accepted either
// as a JSON body or as an URL-encoded form. Missing fields default to
// empty strings, which clear the stored link.
type SocialLinksRequest struct {
	Telegram string `json:"telegram" form:"telegram"`
	Github   string `json:"github" form:"github"`
	Linkedin string `json:"linkedin" form:"linkedin"`
}

// GetSocialLinksHandler returns the three social link URLs. An absent
// singleton reads as empty strings, never as an error.
func GetSocialLinksHandler(socialService *services.SocialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := socialService.GetSocialLinks()
		if err != nil {
			log.Printf("Error loading social links: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		resp := gin.H{"telegram": "", "github": "", "linkedin": ""}
		if links != nil {
			resp["telegram"] = links.Telegram
			resp["github"] = links.Github
			resp["linkedin"] = links.Linkedin
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SetSocialLinksHandler upserts the social links singleton. The write is
// authorized by the X-Admin-Token header; a server with no configured
// token rejects every write.
func SetSocialLinksHandler(socialService *services.SocialService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := cfg.Admin.Token
		if expected == "" || c.GetHeader("X-Admin-Token") != expected {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}

		var req SocialLinksRequest
		if err := c.ShouldBind(&req); err != nil {
			req = SocialLinksRequest{}
		}

		if _, err := socialService.UpdateSocialLinks(req.Telegram, req.Github, req.Linkedin); err != nil {
			log.Printf("Error updating social links: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// SwaggerHandler serves the OpenAPI document with the request-time base
// URL substituted into the servers entry.
func SwaggerHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, OpenAPISchema(resolveBaseURL(cfg, c.Request)))
	}
}

// resolveBaseURL returns the configured base URL when set, otherwise
// derives one from the incoming request the way proxies present it.
func resolveBaseURL(cfg *config.Config, r *http.Request) string {
	if cfg != nil && cfg.Server.BaseURL != "" {
		return strings.TrimRight(cfg.Server.BaseURL, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
