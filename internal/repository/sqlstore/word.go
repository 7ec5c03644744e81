package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cardbot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// RandomUnseenWord returns a random word the user has not matched yet
func (s *Store) RandomUnseenWord(ctx context.Context, userID int64) (*domain.Word, error) {
	var w domain.Word
	query := s.db.Rebind(`
		SELECT w.word_id, w.word, w.translation
		FROM words w
		LEFT JOIN user_words uw ON uw.word_id = w.word_id AND uw.user_id = ?
		WHERE uw.word_id IS NULL
		ORDER BY RANDOM()
		LIMIT 1
	`)
	err := s.db.GetContext(ctx, &w, query, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("random unseen word", err)
	}

	return &w, nil
}

// WordByID returns the word or nil when it no longer exists
func (s *Store) WordByID(ctx context.Context, wordID int64) (*domain.Word, error) {
	var w domain.Word
	query := s.db.Rebind(`SELECT word_id, word, translation FROM words WHERE word_id = ?`)
	err := s.db.GetContext(ctx, &w, query, wordID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("word by id", err)
	}

	return &w, nil
}

// RandomDistractors returns up to count random words other than wordID
func (s *Store) RandomDistractors(ctx context.Context, wordID int64, count int) ([]domain.Word, error) {
	words := []domain.Word{}
	query := s.db.Rebind(`
		SELECT word_id, word, translation
		FROM words
		WHERE word_id <> ?
		ORDER BY RANDOM()
		LIMIT ?
	`)
	if err := s.db.SelectContext(ctx, &words, query, wordID, count); err != nil {
		return nil, classify("random distractors", err)
	}
	return words, nil
}

// MarkKnown links the word to the user. It reports false when the link already existed.
// A word deleted in the meantime yields domain.ErrWordNotFound.
func (s *Store) MarkKnown(ctx context.Context, userID, wordID int64) (bool, error) {
	query := s.db.Rebind(`
		INSERT INTO user_words (user_id, word_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`)
	res, err := s.db.ExecContext(ctx, query, userID, wordID)
	if err != nil {
		return false, classify("mark known", err)
	}
	return affected(res)
}

// UnmarkKnown removes the user-word link
func (s *Store) UnmarkKnown(ctx context.Context, userID, wordID int64) (bool, error) {
	query := s.db.Rebind(`DELETE FROM user_words WHERE user_id = ? AND word_id = ?`)
	res, err := s.db.ExecContext(ctx, query, userID, wordID)
	if err != nil {
		return false, classify("unmark known", err)
	}
	return affected(res)
}

// ResetProgress removes every user-word link of the user
func (s *Store) ResetProgress(ctx context.Context, userID int64) (int64, error) {
	query := s.db.Rebind(`DELETE FROM user_words WHERE user_id = ?`)
	res, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, classify("reset progress", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify("reset progress", err)
	}
	return n, nil
}

// CountKnown returns the number of words the user knows
func (s *Store) CountKnown(ctx context.Context, userID int64) (int, error) {
	var count int
	query := s.db.Rebind(`SELECT COUNT(*) FROM user_words WHERE user_id = ?`)
	if err := s.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, classify("count known", err)
	}
	return count, nil
}

// WordExists checks for a word with the same lower-cased text
func (s *Store) WordExists(ctx context.Context, target string) (bool, error) {
	exists, err := wordExists(ctx, s.db, target)
	if err != nil {
		return false, classify("word exists", err)
	}
	return exists, nil
}

// CreateWord inserts a new word and returns its id
func (s *Store) CreateWord(ctx context.Context, target, translation string) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		id, err = insertWord(ctx, tx, target, translation)
		return err
	})
	if err != nil {
		return 0, classify("create word", err)
	}
	return id, nil
}

// AddUserWord inserts a new word and links it to the user
func (s *Store) AddUserWord(ctx context.Context, userID int64, target, translation string) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if id, err = insertWord(ctx, tx, target, translation); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO user_words (user_id, word_id)
			VALUES (?, ?)
			ON CONFLICT (user_id, word_id) DO NOTHING
		`), userID, id)
		return err
	})
	if err != nil {
		return 0, classify("add user word", err)
	}
	return id, nil
}

// DeleteWord removes the word and every user link to it
func (s *Store) DeleteWord(ctx context.Context, wordID int64) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM user_words WHERE word_id = ?`), wordID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM words WHERE word_id = ?`), wordID)
		if err != nil {
			return err
		}
		deleted, err = affected(res)
		return err
	})
	if err != nil {
		return false, classify("delete word", err)
	}
	return deleted, nil
}

// SeedWords inserts pairs whose word is not stored yet and returns how many were added
func (s *Store) SeedWords(ctx context.Context, pairs []domain.WordPair) (int, error) {
	inserted := 0
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
			INSERT INTO words (word, word_key, translation)
			VALUES (?, ?, ?)
			ON CONFLICT DO NOTHING
		`)
		for _, p := range pairs {
			res, err := tx.ExecContext(ctx, query, strings.TrimSpace(p.Word), wordKey(p.Word), strings.TrimSpace(p.Translation))
			if err != nil {
				return err
			}
			ok, err := affected(res)
			if err != nil {
				return err
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, classify("seed words", err)
	}
	return inserted, nil
}

// Stats returns store-wide counters
func (s *Store) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM words) AS words,
			(SELECT COUNT(*) FROM user_words) AS known_links
	`
	if err := s.db.GetContext(ctx, &st, query); err != nil {
		return domain.Stats{}, classify("stats", err)
	}
	return st, nil
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

// wordKey is the uniqueness key of a word. SQLite's LOWER folds ASCII only,
// so folding happens here for both drivers.
func wordKey(target string) string {
	return strings.ToLower(strings.TrimSpace(target))
}

func wordExists(ctx context.Context, q queryer, target string) (bool, error) {
	var id int64
	query := q.Rebind(`SELECT word_id FROM words WHERE word_key = ? LIMIT 1`)
	err := sqlx.GetContext(ctx, q, &id, query, wordKey(target))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func insertWord(ctx context.Context, tx *sqlx.Tx, target, translation string) (int64, error) {
	exists, err := wordExists(ctx, tx, target)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, domain.ErrDuplicateWord
	}

	var id int64
	err = tx.QueryRowxContext(ctx, tx.Rebind(`
		INSERT INTO words (word, word_key, translation)
		VALUES (?, ?, ?)
		RETURNING word_id
	`), strings.TrimSpace(target), wordKey(target), strings.TrimSpace(translation)).Scan(&id)
	return id, err
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
