package handler

import (
	"context"
	"strings"
	"time"
	"unicode"

	"cardbot/internal/middleware"

	tele "gopkg.in/telebot.v3"
)

// handleTimeout bounds the work done for a single update
const handleTimeout = 30 * time.Second

type botSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramSender delivers replies through the Telegram bot
type TelegramSender struct {
	bot botSender
}

// NewTelegramSender creates a sender over the bot
func NewTelegramSender(bot *tele.Bot) *TelegramSender {
	return &TelegramSender{bot: bot}
}

// Send sends the reply text with an optional reply keyboard
func (s *TelegramSender) Send(chatID int64, reply Reply) error {
	opts := []interface{}{}
	if reply.Keyboard != nil {
		opts = append(opts, replyMarkup(reply.Keyboard))
	}
	_, err := s.bot.Send(&tele.Chat{ID: chatID}, reply.Text, opts...)
	return err
}

// replyMarkup lays the labels out two per row
func replyMarkup(labels []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	btns := make([]tele.Btn, 0, len(labels))
	for _, label := range labels {
		btns = append(btns, markup.Text(label))
	}
	markup.Reply(markup.Split(2, btns)...)
	return markup
}

// RegisterHandlers registers all bot handlers
func (r *Router) RegisterHandlers(bot *tele.Bot) {
	// Commands
	bot.Handle(CommandStart, r.handleCommand(CommandStart))
	bot.Handle(CommandCards, r.handleCommand(CommandCards))

	// Text messages, keyboard buttons included
	bot.Handle(tele.OnText, r.handleText)
}

func (r *Router) handleText(c tele.Context) error {
	r.handleWithTimeout(toMessage(c))
	return nil
}

// handleCommand drops the bot mention and payload telebot leaves in the text
func (r *Router) handleCommand(command string) tele.HandlerFunc {
	return func(c tele.Context) error {
		msg := toMessage(c)
		msg.Text = command
		r.handleWithTimeout(msg)
		return nil
	}
}

func (r *Router) handleWithTimeout(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	r.Handle(ctx, msg)
}

func toMessage(c tele.Context) Message {
	msg := Message{Text: cleanText(c.Text())}
	if sender := c.Sender(); sender != nil {
		msg.UserID = sender.ID
		msg.Username = sender.Username
	}
	if chat := c.Chat(); chat != nil {
		msg.ChatID = chat.ID
	} else {
		msg.ChatID = msg.UserID
	}
	if id, ok := c.Get(middleware.RequestIDKey).(string); ok {
		msg.RequestID = id
	}
	return msg
}

// cleanText removes all non-printable characters from message text
func cleanText(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(text))
}
