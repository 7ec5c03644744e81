package handler

import (
	"context"
	"errors"
	"strings"

	"cardbot/internal/domain"

	"go.uber.org/zap"
)

// Add-word dialogue:
//
//	idle --Add word--> awaiting_new_word --word--> awaiting_translation --translation--> idle
//
// Empty input re-prompts in place. A duplicate word ends the dialogue.

func (r *Router) handleAddWord(ctx context.Context, msg Message) error {
	r.sessions.Update(msg.UserID, func(sess *domain.Session) {
		sess.Step = domain.StepAwaitingNewWord
		sess.PendingWord = ""
	})
	return r.reply(msg, textAskWord, nil)
}

func (r *Router) receiveNewWord(ctx context.Context, msg Message, _ domain.Session) error {
	word, err := r.words.NormalizeNewWord(ctx, msg.Text)
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return r.reply(msg, textEmptyWord, nil)
	case errors.Is(err, domain.ErrDuplicateWord):
		return r.abortDuplicate(ctx, msg)
	case err != nil:
		return err
	}

	r.sessions.Update(msg.UserID, func(sess *domain.Session) {
		sess.Step = domain.StepAwaitingTranslation
		sess.PendingWord = word
	})
	return r.reply(msg, textAskTranslation, nil)
}

func (r *Router) receiveTranslation(ctx context.Context, msg Message, sess domain.Session) error {
	translation := strings.TrimSpace(msg.Text)
	if translation == "" {
		return r.reply(msg, textEmptyTranslate, nil)
	}

	_, err := r.words.AddWord(ctx, msg.UserID, sess.PendingWord, translation)
	if errors.Is(err, domain.ErrDuplicateWord) {
		return r.abortDuplicate(ctx, msg)
	}
	if err != nil {
		return err
	}

	r.endDialogue(msg.UserID)
	if err := r.reply(msg, textWordAdded, nil); err != nil {
		return err
	}
	return r.presentCard(ctx, msg)
}

func (r *Router) abortDuplicate(ctx context.Context, msg Message) error {
	r.logger.Info("Duplicate word rejected", zap.Int64("user_id", msg.UserID))

	r.endDialogue(msg.UserID)
	if err := r.reply(msg, textDuplicate, nil); err != nil {
		return err
	}
	return r.presentCard(ctx, msg)
}

func (r *Router) endDialogue(userID int64) {
	r.sessions.Update(userID, func(sess *domain.Session) {
		sess.Step = domain.StepIdle
		sess.PendingWord = ""
	})
}
