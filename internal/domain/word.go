package domain

import "strings"

// Word represents a target word with its translation
type Word struct {
	ID          int64  `db:"word_id"`
	Target      string `db:"word"`
	Translation string `db:"translation"`
}

// Matches compares an answer with the target word ignoring case and surrounding whitespace
func (w Word) Matches(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(w.Target))
}

// Hint returns "target -> translation"
func (w Word) Hint() string {
	return w.Target + " -> " + w.Translation
}

// WordPair is a word-translation pair not yet stored
type WordPair struct {
	Word        string
	Translation string
}

// Stats is a snapshot of store-wide counters
type Stats struct {
	Users      int `db:"users"`
	Words      int `db:"words"`
	KnownLinks int `db:"known_links"`
}
