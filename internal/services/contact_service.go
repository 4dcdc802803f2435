package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	apperrors "github.com/pkazanov/portfolio/internal/errors"
	"github.com/pkazanov/portfolio/internal/models"
	"github.com/pkazanov/portfolio/internal/repository"
)

// Notifier is the outbound notification capability used by the contact
// relay. Implementations must make exactly one delivery attempt per
// Send call and report failure through the returned error only.
type Notifier interface {
	// Enabled reports whether the notifier is configured to deliver.
	Enabled() bool
	// Send delivers a single text notification.
	Send(ctx context.Context, text string) error
}

// ContactService stores contact form submissions and relays them to the
// configured notifier. Persistence is the durable record of truth; the
// notification is best-effort and its failures never reach the caller.
type ContactService struct {
	contactRepo repository.ContactRepository
	notifier    Notifier
}

// NewContactService creates and returns a new instance of ContactService.
// notifier may be nil, which behaves like a disabled notifier.
func NewContactService(contactRepo repository.ContactRepository, notifier Notifier) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// Submit persists a validated contact submission and fires the relay.
// The returned error only reflects persistence; relay failures are
// logged and swallowed.
func (s *ContactService) Submit(ctx context.Context, fullName, email, message string) (*models.ContactMessage, error) {
	contact := &models.ContactMessage{
		FullName: fullName,
		Email:    email,
		Message:  message,
	}
	if err := s.contactRepo.CreateMessage(contact); err != nil {
		return nil, err
	}

	s.relay(ctx, "New contact form submission", contact)
	return contact, nil
}

// GetAllMessages returns every stored contact message, newest first.
func (s *ContactService) GetAllMessages() ([]models.ContactMessage, error) {
	return s.contactRepo.GetAllMessages()
}

// ResendMessages re-relays already-stored messages and returns how many
// were delivered. Per-message failures (including unknown ids) only
// reduce the count; the batch never aborts.
func (s *ContactService) ResendMessages(ctx context.Context, ids []uint) (int, error) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return 0, nil
	}

	var messages []models.ContactMessage
	if len(ids) == 0 {
		all, err := s.contactRepo.GetAllMessages()
		if err != nil {
			return 0, err
		}
		messages = all
	} else {
		for _, id := range ids {
			msg, err := s.contactRepo.GetMessageByID(id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("Resend: %v (id=%d), skipping", apperrors.ErrMessageNotFound, id)
					continue
				}
				return 0, err
			}
			messages = append(messages, *msg)
		}
	}

	sent := 0
	for i := range messages {
		text := formatContactText("Resending contact message", &messages[i])
		if err := s.notifier.Send(ctx, text); err != nil {
			log.Printf("Resend: telegram delivery failed for message %d: %v", messages[i].ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// relay makes the single best-effort notification attempt for a stored
// message. Any failure is logged and discarded.
func (s *ContactService) relay(ctx context.Context, header string, contact *models.ContactMessage) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}
	if err := s.notifier.Send(ctx, formatContactText(header, contact)); err != nil {
		log.Printf("WARNING: telegram notification failed for message %d: %v", contact.ID, err)
	}
}

// formatContactText renders the notification body for a contact message.
func formatContactText(header string, contact *models.ContactMessage) string {
	return fmt.Sprintf("%s:\nName: %s\nEmail: %s\nMessage: %s",
		header, contact.FullName, contact.Email, contact.Message)
}
