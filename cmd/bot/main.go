package main

import (
	"time"

	"tariff_notification_bot/internal/app"
	"tariff_notification_bot/internal/domain/tariff"
	"tariff_notification_bot/internal/infra/config"
	iholiday "tariff_notification_bot/internal/infra/holiday"
	"tariff_notification_bot/internal/infra/logger"
	"tariff_notification_bot/internal/infra/storage"
	"tariff_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("FATAL: Could not load application configuration: %v", err)
	}
	logger.Init(cfg)
	log := logger.Get()

	location := time.Local
	if cfg.Timezone != "" {
		location, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("FATAL: Invalid TIMEZONE %q: %v", cfg.Timezone, err)
		}
	}

	holidayProvider := iholiday.NewSpainCalendar(log)
	classifier := tariff.NewClassifier(holidayProvider)
	stateRepo := storage.NewFileRepository(cfg.LastOutputFile)

	// NewBot verifies the token against the API, so bad credentials fail
	// here rather than surfacing later as a swallowed delivery error.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	tgClient := telegram.NewTelebotAdapter(bot)

	service := app.NewNotificationService(classifier, tgClient, stateRepo, log, cfg.TelegramChatID, location)
	if err := service.Run(); err != nil {
		log.Fatalf("FATAL: Notification run failed: %v", err)
	}
}
