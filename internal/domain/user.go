package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// Step represents user's current conversation step
type Step string

const (
	StepIdle                Step = "idle"
	StepAwaitingChoice      Step = "awaiting_choice"
	StepAwaitingNewWord     Step = "awaiting_new_word"
	StepAwaitingTranslation Step = "awaiting_translation"
)

// InDialogue reports whether the step belongs to the add-word dialogue
func (s Step) InDialogue() bool {
	return s == StepAwaitingNewWord || s == StepAwaitingTranslation
}

// Session holds transient per-user data. It lives in memory only.
type Session struct {
	Step Step
	// Card is the word currently presented for recall, nil when none.
	Card *Word
	// PendingWord is the target word typed during the add-word dialogue.
	PendingWord string
	Greeted     bool
}

// HasCard reports whether an active card is set
func (s Session) HasCard() bool {
	return s.Card != nil
}
