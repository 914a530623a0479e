package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// chatSink delivers pipeline output back into one conversation.
type chatSink struct {
	bot    *Bot
	chatID int64
}

func (s *chatSink) Notify(ctx context.Context, message string) {
	s.bot.reply(ctx, s.chatID, message)
}

func (s *chatSink) SendDocument(ctx context.Context, path, caption string) error {
	doc := tgbotapi.NewDocument(s.chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	_, err := s.bot.api.Send(doc)
	return err
}

func (s *chatSink) SendAudio(ctx context.Context, path, caption string) error {
	audio := tgbotapi.NewAudio(s.chatID, tgbotapi.FilePath(path))
	audio.Caption = caption
	_, err := s.bot.api.Send(audio)
	return err
}
