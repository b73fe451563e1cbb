// internal/app/notification_service.go
package app

import (
	"fmt"
	"time"

	"tariff_notification_bot/internal/domain/state"
	"tariff_notification_bot/internal/domain/tariff"
	domainTelegram "tariff_notification_bot/internal/domain/telegram"
	"tariff_notification_bot/internal/infra/storage"

	"github.com/sirupsen/logrus"
)

// NotificationService runs one classify-format-notify pass.
//
// The Telegram send is best-effort: a delivery failure is logged and
// swallowed so the run still succeeds, but the last-output slot is only
// updated after a confirmed send. The next run therefore re-attempts a
// failed notification instead of silently deduplicating it away.
type NotificationService struct {
	classifier     *tariff.Classifier
	telegramClient domainTelegram.Client
	stateRepo      state.Repository
	logger         *logrus.Logger
	chatID         int64
	location       *time.Location

	now func() time.Time // overridable in tests
}

func NewNotificationService(
	classifier *tariff.Classifier,
	tc domainTelegram.Client,
	sr state.Repository,
	logger *logrus.Logger,
	chatID int64,
	location *time.Location,
) *NotificationService {
	if location == nil {
		location = time.Local
	}
	return &NotificationService{
		classifier:     classifier,
		telegramClient: tc,
		stateRepo:      sr,
		logger:         logger,
		chatID:         chatID,
		location:       location,
		now:            time.Now,
	}
}

// Run performs a single notification pass for the current time.
func (s *NotificationService) Run() error {
	now := s.now().In(s.location)
	period := s.classifier.Classify(now)
	message := tariff.FormatMessage(period)

	// The message is printed every run, whether or not Telegram is notified.
	fmt.Println(message)

	lastMessage, err := s.stateRepo.GetLastOutput()
	if err != nil && err != storage.ErrNoLastOutput {
		return fmt.Errorf("failed to read last output: %w", err)
	}

	if err == nil && message == lastMessage {
		s.logger.Infof("Message unchanged (%s). Telegram not sent.", period)
		return nil
	}

	if sendErr := s.telegramClient.SendMessage(s.chatID, message, nil); sendErr != nil {
		s.logger.Errorf("Telegram error: %v", sendErr)
		return nil
	}
	s.logger.Infof("Telegram message sent for period %s.", period)

	if err := s.stateRepo.SaveOutput(message); err != nil {
		return fmt.Errorf("failed to save last output: %w", err)
	}
	return nil
}
