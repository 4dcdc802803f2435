package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pkazanov/portfolio/cmd"
	"github.com/pkazanov/portfolio/internal/config"
	"github.com/pkazanov/portfolio/internal/notify"
	"github.com/pkazanov/portfolio/internal/repository"
	"github.com/pkazanov/portfolio/internal/services"
)

var resendAllFlag bool

// ResendCmd represents the 'resend' command.
// It re-relays already-stored contact messages to Telegram and reports
// only how many were delivered; per-message failures stay invisible.
var ResendCmd = &cobra.Command{
	Use:   "resend [message-id...]",
	Short: "Re-sends stored contact messages to Telegram.",
	Long: `This command re-relays stored contact messages through the configured
Telegram notifier. Pass message ids, or --all for every stored message.

Example:
  portfolio resend 12 14
  portfolio resend --all`,
	Run: runResend,
}

func init() {
	ResendCmd.Flags().BoolVar(&resendAllFlag, "all", false, "Resend every stored message")
	cmd.RootCmd.AddCommand(ResendCmd)
}

func runResend(cmd *cobra.Command, args []string) {
	if !resendAllFlag && len(args) == 0 {
		fmt.Println("Error: provide message ids or --all")
		os.Exit(1)
	}

	var ids []uint
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			fmt.Printf("Error: invalid message id %q\n", arg)
			os.Exit(1)
		}
		ids = append(ids, uint(id))
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

	notifier := notify.NewTelegram(
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		time.Duration(cfg.Telegram.TimeoutSeconds)*time.Second,
	)
	if !notifier.Enabled() {
		fmt.Println("Telegram relay is not configured (telegram.bot_token / telegram.chat_id).")
		os.Exit(1)
	}

	contactRepo := repository.NewContactRepository(db)
	contactService := services.NewContactService(contactRepo, notifier)

	if resendAllFlag {
		ids = nil
	}
	sent, err := contactService.ResendMessages(context.Background(), ids)
	if err != nil {
		log.Fatalf("Failed to resend messages: %v", err)
	}

	fmt.Printf("Sent to Telegram: %d\n", sent)
}
