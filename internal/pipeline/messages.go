package pipeline

import (
	"errors"

	"github.com/voxdub/voxdub/internal/errs"
)

// UserMessage maps a pipeline failure to the short reply shown to the
// requesting user. Internal detail never leaks into the chat.
func UserMessage(err error) string {
	var (
		retrieval   *errs.RetrievalError
		translation *errs.TranslationServiceError
		synthesis   *errs.SynthesisError
		conversion  *errs.ConversionError
	)

	switch {
	case errors.As(err, &retrieval):
		return "❌ لم يتم استخراج أي نص."
	case errors.As(err, &translation):
		return "❌ فشلت الترجمة، حاول مرة أخرى لاحقًا."
	case errors.As(err, &synthesis):
		return "❌ فشل توليد الصوت."
	case errors.As(err, &conversion):
		return "❌ فشل تحويل الصوت."
	default:
		return "❌ خطأ في المعالجة."
	}
}
