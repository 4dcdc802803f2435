package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pkazanov/portfolio/cmd"
	"github.com/pkazanov/portfolio/internal/api"
	"github.com/pkazanov/portfolio/internal/config"
	"github.com/pkazanov/portfolio/internal/models"
	"github.com/pkazanov/portfolio/internal/notify"
	"github.com/pkazanov/portfolio/internal/repository"
	"github.com/pkazanov/portfolio/internal/services"
)

// RunServerCmd represents the 'run-server' Cobra command, the entry
// point for the portfolio HTTP server.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the portfolio API server.",
	Long: `This command initializes the database, wires up the repositories,
services and the Telegram notifier, then starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.AutoMigrate(&models.Project{}, &models.ContactMessage{}, &models.SocialLinks{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		projectRepo := repository.NewProjectRepository(db)
		contactRepo := repository.NewContactRepository(db)
		socialRepo := repository.NewSocialRepository(db)

		log.Println("Repositories initialized.")

		// The notifier is constructed even with blank credentials: it
		// then reports Enabled() == false and the relay is a no-op.
		notifier := notify.NewTelegram(
			cfg.Telegram.BotToken,
			cfg.Telegram.ChatID,
			time.Duration(cfg.Telegram.TimeoutSeconds)*time.Second,
		)

		projectService := services.NewProjectService(projectRepo)
		contactService := services.NewContactService(contactRepo, notifier)
		socialService := services.NewSocialService(socialRepo)

		log.Println("Services initialized.")

		router := gin.Default()
		api.SetupRoutes(router, projectService, contactService, socialService, cfg)

		log.Println("API routes configured.")

		serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
		srv := &http.Server{
			Addr:    serverAddr,
			Handler: router,
		}

		go func() {
			log.Printf("Starting server on %s", serverAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		// Graceful shutdown on SIGINT/SIGTERM.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutdown signal received. Stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		log.Println("Server stopped cleanly.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
