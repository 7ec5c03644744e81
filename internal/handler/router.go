package handler

import (
	"context"
	"fmt"
	"strings"

	"cardbot/internal/domain"
	"cardbot/internal/service"
	"cardbot/internal/session"

	"go.uber.org/zap"
)

// Message is an inbound text message
type Message struct {
	ChatID    int64
	UserID    int64
	Username  string
	Text      string
	RequestID string
}

// Reply is an outbound message. A nil Keyboard leaves the current keyboard as is.
type Reply struct {
	Text     string
	Keyboard []string
}

// Sender delivers replies to a chat
type Sender interface {
	Send(chatID int64, reply Reply) error
}

type stepHandler func(ctx context.Context, msg Message, sess domain.Session) error

// Router maps inbound messages to commands, answers and the add-word dialogue
type Router struct {
	cards    *service.CardService
	words    *service.WordService
	users    *service.UserService
	sessions *session.Store
	sender   Sender
	logger   *zap.Logger

	commands map[string]func(ctx context.Context, msg Message) error
	dialogue map[domain.Step]stepHandler
}

// NewRouter creates a new router instance
func NewRouter(
	cards *service.CardService,
	words *service.WordService,
	users *service.UserService,
	sessions *session.Store,
	sender Sender,
	logger *zap.Logger,
) *Router {
	r := &Router{
		cards:    cards,
		words:    words,
		users:    users,
		sessions: sessions,
		sender:   sender,
		logger:   logger,
	}

	r.commands = map[string]func(ctx context.Context, msg Message) error{
		BtnNext:        r.handleNext,
		BtnAddWord:     r.handleAddWord,
		BtnDeleteWord:  r.handleDeleteWord,
		BtnRestart:     r.handleRestart,
		BtnAdminDelete: r.handleAdminDelete,
	}
	r.dialogue = map[domain.Step]stepHandler{
		domain.StepAwaitingNewWord:     r.receiveNewWord,
		domain.StepAwaitingTranslation: r.receiveTranslation,
	}
	return r
}

// Handle processes one message. Messages of the same user are handled one at a time.
func (r *Router) Handle(ctx context.Context, msg Message) {
	unlock := r.sessions.Lock(msg.UserID)
	defer unlock()

	if err := r.dispatch(ctx, msg); err != nil {
		r.fail(ctx, msg, err)
	}
}

func (r *Router) dispatch(ctx context.Context, msg Message) error {
	text := strings.TrimSpace(msg.Text)

	if text == CommandStart || text == CommandCards {
		return r.handleStart(ctx, msg)
	}

	// an open dialogue captures every message, keyboard commands included
	sess := r.sessions.Get(msg.UserID)
	if step, ok := r.dialogue[sess.Step]; ok {
		return step(ctx, msg, sess)
	}

	if command, ok := r.commands[text]; ok {
		return command(ctx, msg)
	}

	return r.handleAnswer(ctx, msg)
}

// fail is the single catch point of the router
func (r *Router) fail(ctx context.Context, msg Message, err error) {
	r.logger.Error("Failed to handle message",
		zap.Error(err),
		zap.Int64("user_id", msg.UserID),
		zap.String("request_id", msg.RequestID),
	)

	if sendErr := r.reply(msg, textError, nil); sendErr != nil {
		r.logger.Warn("Failed to send error message", zap.Error(sendErr), zap.Int64("user_id", msg.UserID))
		return
	}
	if cardErr := r.presentCard(ctx, msg); cardErr != nil {
		r.logger.Warn("Failed to recover with a new card", zap.Error(cardErr), zap.Int64("user_id", msg.UserID))
	}
}

func (r *Router) reply(msg Message, text string, keyboard []string) error {
	return r.sender.Send(msg.ChatID, Reply{Text: text, Keyboard: keyboard})
}

// presentCard greets first-time users and sends the next card or the congratulation
func (r *Router) presentCard(ctx context.Context, msg Message) error {
	if !r.sessions.Get(msg.UserID).Greeted {
		if err := r.reply(msg, textGreeting, nil); err != nil {
			return err
		}
		r.sessions.Update(msg.UserID, func(sess *domain.Session) { sess.Greeted = true })
	}

	card, err := r.cards.PresentNextCard(ctx, msg.UserID)
	if err != nil {
		return err
	}

	if card == nil {
		known, err := r.words.CountKnown(ctx, msg.UserID)
		if err != nil {
			return err
		}
		return r.reply(msg, fmt.Sprintf(textAllLearned, known), cardKeyboard(nil))
	}

	return r.reply(msg, fmt.Sprintf(textCardPrompt, card.Word.Translation), cardKeyboard(card.Choices))
}

func (r *Router) handleStart(ctx context.Context, msg Message) error {
	r.logger.Info("User started bot",
		zap.Int64("user_id", msg.UserID),
		zap.String("username", msg.Username),
	)

	r.sessions.Update(msg.UserID, func(sess *domain.Session) {
		sess.Step = domain.StepIdle
		sess.PendingWord = ""
	})
	return r.presentCard(ctx, msg)
}
