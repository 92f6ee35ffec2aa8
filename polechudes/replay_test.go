package polechudes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGame() *Game {
	return &Game{
		ID:          1,
		Name:        "Поле чудес",
		ContestID:   101,
		Alphabet:    "АБВ",
		GuessBonus:  5,
		MissPenalty: 3,
		Words: []Word{
			{Hint: "first letters", Text: "АБ"},
			{Hint: "all of them", Text: "АБВ"},
		},
	}
}

func TestNormalizeUppercasesCyrillic(t *testing.T) {
	assert.Equal(t, "АБВ", Normalize("абв"))
	assert.Equal(t, "WORD", Normalize("word"))
}

func TestEvaluateGuessCorrect(t *testing.T) {
	game := testGame()
	guess, err := EvaluateGuess(game, 0, "аб")
	require.NoError(t, err)
	assert.True(t, guess.Guessed)
	assert.Equal(t, 5, guess.Score)
	assert.Equal(t, "АБ", guess.Guess)
	assert.Equal(t, 0, guess.WordIdx)
}

func TestEvaluateGuessWrong(t *testing.T) {
	game := testGame()
	guess, err := EvaluateGuess(game, 0, "АВ")
	require.NoError(t, err)
	assert.False(t, guess.Guessed)
	assert.Equal(t, -3, guess.Score)
}

func TestEvaluateGuessLengthMismatch(t *testing.T) {
	game := testGame()
	_, err := EvaluateGuess(game, 0, "АБВ")
	lengthErr := &LengthMismatchError{}
	require.ErrorAs(t, err, &lengthErr)
	assert.Contains(t, lengthErr.Error(), "АБВ")
}

func TestEvaluateGuessPastLastWord(t *testing.T) {
	game := testGame()
	_, err := EvaluateGuess(game, 2, "АБ")
	assert.ErrorIs(t, err, ErrAllWordsGuessed)
}

func TestResolvedPrefix(t *testing.T) {
	tests := []struct {
		name    string
		guesses []WordGuess
		want    int
	}{
		{"no guesses", nil, 0},
		{"only failed guesses", []WordGuess{
			{WordIdx: 0, Guessed: false},
		}, 0},
		{"first word won", []WordGuess{
			{WordIdx: 0, Guessed: false},
			{WordIdx: 0, Guessed: true},
		}, 1},
		{"later success does not skip earlier unresolved word", []WordGuess{
			{WordIdx: 1, Guessed: true},
		}, 0},
		{"both words won", []WordGuess{
			{WordIdx: 0, Guessed: true},
			{WordIdx: 1, Guessed: true},
		}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvedPrefix(2, tc.guesses))
		})
	}
}

func TestTotalScore(t *testing.T) {
	guesses := []WordGuess{
		{Score: -3},
		{Score: 5},
		{Score: -3},
	}
	assert.Equal(t, -1, TotalScore(guesses))
}
