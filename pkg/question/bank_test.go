package question

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticBankShape(t *testing.T) {
	qs := NewStaticBank().Questions()
	require.Len(t, qs, 6)

	wantDifficulty := []Difficulty{Easy, Easy, Medium, Medium, Hard, Hard}
	wantLimit := []int{20, 20, 60, 60, 120, 120}
	for i, q := range qs {
		assert.Equal(t, i+1, q.ID)
		assert.Equal(t, wantDifficulty[i], q.Difficulty)
		assert.Equal(t, wantLimit[i], q.TimeLimitSeconds)
		assert.NotEmpty(t, q.Text)
	}
}

func TestStaticBankReturnsCopy(t *testing.T) {
	bank := NewStaticBank()
	qs := bank.Questions()
	qs[0].Text = "mutated"

	assert.Equal(t, "What is JSX in React?", bank.Questions()[0].Text)
}

func TestDifficultyLabel(t *testing.T) {
	assert.Equal(t, "Easy", Easy.Label())
	assert.Equal(t, "Hard", Hard.Label())
	assert.Equal(t, "Unknown", Difficulty("trivial").Label())
	assert.False(t, Difficulty("trivial").Valid())
}

func writeBank(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeBank(t, `
questions:
  - id: 10
    text: What is a goroutine?
    difficulty: easy
    time_limit_seconds: 30
  - id: 11
    text: Explain the Go memory model.
    difficulty: hard
    time_limit_seconds: 90
`)
	bank, err := LoadFile(path)
	require.NoError(t, err)

	qs := bank.Questions()
	require.Len(t, qs, 2)
	assert.Equal(t, Question{ID: 10, Text: "What is a goroutine?", Difficulty: Easy, TimeLimitSeconds: 30}, qs[0])
	assert.Equal(t, Hard, qs[1].Difficulty)
}

func TestLoadFileValidation(t *testing.T) {
	cases := map[string]string{
		"empty":      "questions: []\n",
		"duplicate":  "questions:\n  - {id: 1, text: a, difficulty: easy, time_limit_seconds: 5}\n  - {id: 1, text: b, difficulty: easy, time_limit_seconds: 5}\n",
		"difficulty": "questions:\n  - {id: 1, text: a, difficulty: extreme, time_limit_seconds: 5}\n",
		"limit":      "questions:\n  - {id: 1, text: a, difficulty: easy, time_limit_seconds: 0}\n",
		"text":       "questions:\n  - {id: 1, text: '', difficulty: easy, time_limit_seconds: 5}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeBank(t, body))
			require.Error(t, err)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
