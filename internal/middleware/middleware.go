package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequestIDKey is the context key the request id is stored under
const RequestIDKey = "request_id"

const genericError = "Произошла ошибка. Попробуйте еще раз."

// UserRegistrar creates user records on first contact
type UserRegistrar interface {
	EnsureUserExists(ctx context.Context, userID int64, username string) error
}

// RequestLogger tags every update with a request id and logs its handling time
func RequestLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			requestID := uuid.NewString()
			c.Set(RequestIDKey, requestID)

			var userID int64
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
			}

			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.Int64("user_id", userID),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

// EnsureUser creates the sender's user record before the update is handled
func EnsureUser(users UserRegistrar, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := users.EnsureUserExists(ctx, sender.ID, sender.Username); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
				return c.Send(genericError)
			}

			return next(c)
		}
	}
}
