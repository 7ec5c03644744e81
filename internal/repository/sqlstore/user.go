package sqlstore

import (
	"context"
)

// EnsureUser creates user if not exists
func (s *Store) EnsureUser(ctx context.Context, userID int64, username string) error {
	query := s.db.Rebind(`
		INSERT INTO users (user_id, username)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO NOTHING
	`)
	_, err := s.db.ExecContext(ctx, query, userID, username)
	return classify("ensure user", err)
}
