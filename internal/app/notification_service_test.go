// internal/app/notification_service_test.go
package app

import (
	"fmt"
	"io"
	"testing"
	"time"

	"tariff_notification_bot/internal/domain/tariff"
	"tariff_notification_bot/internal/infra/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/telebot.v3"
)

type fakeTelegramClient struct {
	sent    []string
	sendErr error
}

func (f *fakeTelegramClient) SendMessage(_ int64, text string, _ *telebot.SendOptions) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, text)
	return nil
}

type fakeStateRepository struct {
	last    string
	exists  bool
	saved   []string
	getErr  error
	saveErr error
}

func (f *fakeStateRepository) GetLastOutput() (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	if !f.exists {
		return "", storage.ErrNoLastOutput
	}
	return f.last, nil
}

func (f *fakeStateRepository) SaveOutput(message string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, message)
	return nil
}

type noHolidays struct{}

func (noHolidays) IsHoliday(time.Time) bool { return false }

// newTestService wires the orchestrator with fakes and a frozen clock:
// Wednesday 2026-03-04 09:30, a non-holiday mid ("Llano") hour.
func newTestService(client *fakeTelegramClient, repo *fakeStateRepository) *NotificationService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewNotificationService(tariff.NewClassifier(noHolidays{}), client, repo, log, 42, time.UTC)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

const midMessage = "Estás en Hora Llano (precio intermedio)."

func TestRun_FirstRunSendsAndPersists(t *testing.T) {
	client := &fakeTelegramClient{}
	repo := &fakeStateRepository{}

	require.NoError(t, newTestService(client, repo).Run())

	assert.Equal(t, []string{midMessage}, client.sent)
	assert.Equal(t, []string{midMessage}, repo.saved)
}

func TestRun_UnchangedMessageIsNotResent(t *testing.T) {
	client := &fakeTelegramClient{}
	repo := &fakeStateRepository{last: midMessage, exists: true}

	require.NoError(t, newTestService(client, repo).Run())

	assert.Empty(t, client.sent, "dedup gate must suppress the send")
	assert.Empty(t, repo.saved, "store must not be rewritten")
}

func TestRun_ChangedMessageSendsOnceAndPersists(t *testing.T) {
	client := &fakeTelegramClient{}
	repo := &fakeStateRepository{last: "Estás en Hora Valle (la más barata).", exists: true}

	require.NoError(t, newTestService(client, repo).Run())

	assert.Equal(t, []string{midMessage}, client.sent)
	assert.Equal(t, []string{midMessage}, repo.saved)
}

func TestRun_FailedSendIsSwallowedAndNotPersisted(t *testing.T) {
	client := &fakeTelegramClient{sendErr: fmt.Errorf("telegram: 502")}
	repo := &fakeStateRepository{}

	// Best-effort policy: the run still succeeds, but the store keeps
	// its old content so the next run re-attempts delivery.
	require.NoError(t, newTestService(client, repo).Run())

	assert.Empty(t, client.sent)
	assert.Empty(t, repo.saved)
}

func TestRun_StoreReadErrorPropagates(t *testing.T) {
	client := &fakeTelegramClient{}
	repo := &fakeStateRepository{getErr: fmt.Errorf("permission denied")}

	err := newTestService(client, repo).Run()
	require.Error(t, err)
	assert.Empty(t, client.sent, "no send is attempted when the store is unreadable")
}

func TestRun_StoreWriteErrorPropagates(t *testing.T) {
	client := &fakeTelegramClient{}
	repo := &fakeStateRepository{saveErr: fmt.Errorf("disk full")}

	err := newTestService(client, repo).Run()
	require.Error(t, err)
	assert.Equal(t, []string{midMessage}, client.sent, "send happened before the failed persist")
}
