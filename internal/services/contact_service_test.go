package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pkazanov/portfolio/internal/models"
	"github.com/pkazanov/portfolio/internal/repository"
)

// fakeNotifier records every delivery attempt. Calls with an index at
// or past failFrom return an error (failFrom < 0 never fails).
type fakeNotifier struct {
	enabled  bool
	failFrom int
	calls    []string
}

func newFakeNotifier(enabled bool) *fakeNotifier {
	return &fakeNotifier{enabled: enabled, failFrom: -1}
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) Send(_ context.Context, text string) error {
	f.calls = append(f.calls, text)
	if f.failFrom >= 0 && len(f.calls) > f.failFrom {
		return assert.AnError
	}
	return nil
}

func newContactTestEnv(t *testing.T, notifier Notifier) (*ContactService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))
	return NewContactService(repository.NewContactRepository(db), notifier), db
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	notifier := newFakeNotifier(true)
	svc, db := newContactTestEnv(t, notifier)

	contact, err := svc.Submit(context.Background(), "A", "a@example.com", "hi")
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.Len(t, notifier.calls, 1)
	assert.Contains(t, notifier.calls[0], "Name: A")
	assert.Contains(t, notifier.calls[0], "Email: a@example.com")
	assert.Contains(t, notifier.calls[0], "Message: hi")
}

func TestSubmitSkipsDisabledNotifier(t *testing.T) {
	notifier := newFakeNotifier(false)
	svc, db := newContactTestEnv(t, notifier)

	_, err := svc.Submit(context.Background(), "A", "a@example.com", "hi")
	require.NoError(t, err)

	// The message is stored; the relay is never invoked.
	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Empty(t, notifier.calls)
}

func TestSubmitWithNilNotifier(t *testing.T) {
	svc, _ := newContactTestEnv(t, nil)

	_, err := svc.Submit(context.Background(), "A", "a@example.com", "hi")
	assert.NoError(t, err)
}

func TestSubmitSwallowsNotifierFailure(t *testing.T) {
	notifier := newFakeNotifier(true)
	notifier.failFrom = 0
	svc, db := newContactTestEnv(t, notifier)

	// A failing relay must never surface to the caller.
	_, err := svc.Submit(context.Background(), "A", "a@example.com", "hi")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Len(t, notifier.calls, 1)
}

func TestResendMessages(t *testing.T) {
	seed := func(t *testing.T, db *gorm.DB, n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			require.NoError(t, db.Create(&models.ContactMessage{
				FullName: "User",
				Email:    "user@example.com",
				Message:  "msg",
			}).Error)
		}
	}

	t.Run("resend all", func(t *testing.T) {
		notifier := newFakeNotifier(true)
		svc, db := newContactTestEnv(t, notifier)
		seed(t, db, 3)

		sent, err := svc.ResendMessages(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 3, sent)
		assert.Len(t, notifier.calls, 3)
	})

	t.Run("resend selected ids", func(t *testing.T) {
		notifier := newFakeNotifier(true)
		svc, db := newContactTestEnv(t, notifier)
		seed(t, db, 3)

		sent, err := svc.ResendMessages(context.Background(), []uint{1, 3})
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		notifier := newFakeNotifier(true)
		svc, db := newContactTestEnv(t, notifier)
		seed(t, db, 1)

		sent, err := svc.ResendMessages(context.Background(), []uint{1, 999})
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("partial failures only reduce the count", func(t *testing.T) {
		notifier := newFakeNotifier(true)
		notifier.failFrom = 1 // first delivery succeeds, the rest fail
		svc, db := newContactTestEnv(t, notifier)
		seed(t, db, 3)

		sent, err := svc.ResendMessages(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, notifier.calls, 3)
	})

	t.Run("disabled notifier sends nothing", func(t *testing.T) {
		notifier := newFakeNotifier(false)
		svc, db := newContactTestEnv(t, notifier)
		seed(t, db, 2)

		sent, err := svc.ResendMessages(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, sent)
		assert.Empty(t, notifier.calls)
	})
}
