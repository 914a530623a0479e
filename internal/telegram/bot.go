// Package telegram is the chat-platform adapter: it receives attachments
// and links, feeds them to the pipeline, and sends the artifacts back.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/logger"
	"github.com/voxdub/voxdub/internal/pipeline"
)

const greeting = "مرحباً! 🎧\n" +
	"أرسل لي:\n" +
	"• ملف (PDF, DOCX, TXT, MP3, WAV)\n" +
	"• أو رابط يوتيوب\n\n" +
	"وسأقوم بدبلجته إلى صوت عربي بشري احترافي!"

type Bot struct {
	api         *tgbotapi.BotAPI
	pipe        pipeline.Pipeline
	logger      logger.Logger
	pollTimeout int
}

// New authenticates against the Bot API. A bad token fails startup.
func New(token string, cfg config.TelegramConfig, pipe pipeline.Pipeline, log logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authenticate bot: %w", err)
	}

	return &Bot{
		api:         api,
		pipe:        pipe,
		logger:      log,
		pollTimeout: cfg.PollTimeout,
	}, nil
}

// Run long-polls for updates until the context is cancelled. Requests are
// handled one at a time; a failed request is reported to its chat and never
// stops the loop.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info(ctx, "Bot authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return fmt.Errorf("updates channel closed")
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn(ctx, "Failed to send reply: %v", err)
	}
}
