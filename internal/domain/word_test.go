package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_Matches(t *testing.T) {
	word := Word{ID: 1, Target: "Red", Translation: "красный"}

	tests := []struct {
		name     string
		answer   string
		expected bool
	}{
		{name: "exact", answer: "Red", expected: true},
		{name: "lower case", answer: "red", expected: true},
		{name: "upper case with spaces", answer: "  RED \n", expected: true},
		{name: "different word", answer: "blue", expected: false},
		{name: "prefix only", answer: "re", expected: false},
		{name: "empty", answer: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, word.Matches(tt.answer))
		})
	}
}

func TestWord_Hint(t *testing.T) {
	word := Word{Target: "cat", Translation: "кот"}
	assert.Equal(t, "cat -> кот", word.Hint())
}

func TestStep_InDialogue(t *testing.T) {
	assert.True(t, StepAwaitingNewWord.InDialogue())
	assert.True(t, StepAwaitingTranslation.InDialogue())
	assert.False(t, StepIdle.InDialogue())
	assert.False(t, StepAwaitingChoice.InDialogue())
}
