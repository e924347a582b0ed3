package notify

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jobwatch/internal/domain"
)

// Telegram delivers one message per accepted job. Without both credentials it
// degrades to a no-op; delivery failures are logged and swallowed so a flaky
// bot API never affects scraping state.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token, chatID string) *Telegram {
	if token == "" || chatID == "" {
		log.Printf("[notify] telegram credentials absent; notifications disabled")
		return &Telegram{}
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		log.Printf("[notify] bad TELEGRAM_CHAT_ID %q; notifications disabled", chatID)
		return &Telegram{}
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint,
		&http.Client{Timeout: 5 * time.Second})
	if err != nil {
		log.Printf("[notify] telegram init: %v; notifications disabled", err)
		return &Telegram{}
	}
	return &Telegram{bot: bot, chatID: id}
}

func (t *Telegram) NotifyJob(j domain.JobSummary) {
	if t.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, FormatJob(j))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[notify] telegram send: %v", err)
	}
}

// FormatJob renders the notification body. Kept separate from delivery so it
// is testable without a bot.
func FormatJob(j domain.JobSummary) string {
	return fmt.Sprintf(
		"🧑‍💻 *%s* at *%s*\n📅 *Posted:* %s\n🔗 [View Job](%s)",
		j.Title, j.CompanyName, j.PostedText, j.Link,
	)
}
