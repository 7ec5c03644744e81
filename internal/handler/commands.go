package handler

import (
	"context"
	"fmt"

	"cardbot/internal/service"

	"go.uber.org/zap"
)

func (r *Router) handleNext(ctx context.Context, msg Message) error {
	return r.presentCard(ctx, msg)
}

func (r *Router) handleAnswer(ctx context.Context, msg Message) error {
	answer, err := r.cards.EvaluateAnswer(ctx, msg.UserID, msg.Text)
	if err != nil {
		return err
	}

	switch answer.Outcome {
	case service.OutcomeCorrect:
		if answer.NewlyKnown {
			if err := r.reply(msg, fmt.Sprintf(textCorrect, answer.Word.Hint()), nil); err != nil {
				return err
			}
		}
		return r.presentCard(ctx, msg)

	case service.OutcomeIncorrect:
		card, err := r.cards.RetryCard(ctx, msg.UserID)
		if err != nil {
			return err
		}
		return r.reply(msg, fmt.Sprintf(textIncorrect, answer.Word.Translation), cardKeyboard(card.Choices))

	default:
		r.logger.Debug("No active card, presenting a new one", zap.Int64("user_id", msg.UserID))
		return r.presentCard(ctx, msg)
	}
}

func (r *Router) handleDeleteWord(ctx context.Context, msg Message) error {
	card := r.cards.ActiveCard(msg.UserID)
	if card == nil {
		if err := r.reply(msg, textNothingToDelete, nil); err != nil {
			return err
		}
		return r.presentCard(ctx, msg)
	}

	removed, err := r.words.ForgetWord(ctx, msg.UserID, card.ID)
	if err != nil {
		return err
	}
	r.logger.Info("Word removed from user list",
		zap.Int64("user_id", msg.UserID),
		zap.Int64("word_id", card.ID),
		zap.Bool("removed", removed),
	)

	if err := r.reply(msg, textWordForgotten, nil); err != nil {
		return err
	}
	return r.presentCard(ctx, msg)
}

func (r *Router) handleRestart(ctx context.Context, msg Message) error {
	if err := r.reply(msg, textRestarting, nil); err != nil {
		return err
	}
	if err := r.words.ResetProgress(ctx, msg.UserID); err != nil {
		return err
	}
	return r.presentCard(ctx, msg)
}

func (r *Router) handleAdminDelete(ctx context.Context, msg Message) error {
	if !r.users.IsAdmin(msg.UserID) {
		r.logger.Warn("Rejected admin delete", zap.Int64("user_id", msg.UserID))
		return r.reply(msg, textAdminOnly, nil)
	}

	card := r.cards.ActiveCard(msg.UserID)
	if card == nil {
		if err := r.reply(msg, textNothingToDelete, nil); err != nil {
			return err
		}
		return r.presentCard(ctx, msg)
	}

	if _, err := r.words.DeleteWord(ctx, card.ID); err != nil {
		return err
	}
	r.cards.DropCard(msg.UserID)

	if err := r.reply(msg, textWordDeleted, nil); err != nil {
		return err
	}
	return r.presentCard(ctx, msg)
}
