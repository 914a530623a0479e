package telegram

import (
	"context"
	"os"
	"regexp"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/voxdub/voxdub/internal/pipeline"
)

var videoLinkPattern = regexp.MustCompile(`(youtube\.com|youtu\.be)`)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch {
	case msg.IsCommand():
		if msg.Command() == "start" {
			b.reply(ctx, chatID, greeting)
		}

	case msg.Document != nil:
		b.reply(ctx, chatID, "📥 جاري تنزيل الملف...")
		b.processAttachment(ctx, chatID, msg.Document.FileID, msg.Document.FileName)

	case msg.Voice != nil:
		b.reply(ctx, chatID, "🔊 جاري معالجة الملف الصوتي...")
		b.processAttachment(ctx, chatID, msg.Voice.FileID, "voice.ogg")

	case msg.Audio != nil:
		b.reply(ctx, chatID, "🔊 جاري معالجة الملف الصوتي...")
		name := msg.Audio.FileName
		if name == "" {
			name = "audio.mp3"
		}
		b.processAttachment(ctx, chatID, msg.Audio.FileID, name)

	case msg.Text != "":
		if videoLinkPattern.MatchString(msg.Text) {
			b.processLink(ctx, chatID, msg.Text)
		} else {
			b.reply(ctx, chatID, "📩 يُرجى إرسال ملف أو رابط يوتيوب.")
		}
	}
}

func (b *Bot) processAttachment(ctx context.Context, chatID int64, fileID, fileName string) {
	dlDir, err := os.MkdirTemp("", "voxdub-dl-*")
	if err != nil {
		b.logger.Error(ctx, "Failed to create download dir: %v", err)
		b.reply(ctx, chatID, "❌ خطأ في المعالجة.")
		return
	}
	defer os.RemoveAll(dlDir)

	path, err := b.download(ctx, fileID, dlDir, fileName)
	if err != nil {
		b.logger.Error(ctx, "Download failed for chat %d: %v", chatID, err)
		b.reply(ctx, chatID, "❌ خطأ في المعالجة.")
		return
	}

	b.run(ctx, chatID, pipeline.Request{
		Kind: pipeline.KindFile,
		Path: path,
		Name: fileName,
		Sink: &chatSink{bot: b, chatID: chatID},
	})
}

func (b *Bot) processLink(ctx context.Context, chatID int64, url string) {
	b.run(ctx, chatID, pipeline.Request{
		Kind: pipeline.KindLink,
		URL:  url,
		Sink: &chatSink{bot: b, chatID: chatID},
	})
}

// run executes the pipeline and reports failures to the chat. Nothing a
// single request does can take the bot down.
func (b *Bot) run(ctx context.Context, chatID int64, req pipeline.Request) {
	if err := b.pipe.Process(ctx, req); err != nil {
		b.logger.Error(ctx, "Request failed for chat %d: %v", chatID, err)
		b.reply(ctx, chatID, pipeline.UserMessage(err))
	}
}
