package polechudes

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// Normalize folds a guess or revealed letter to the stored case
// convention of the game's words.
func Normalize(s string) string {
	return upperCaser.String(s)
}

// TotalScore sums the deltas of the full guess history.
func TotalScore(guesses []WordGuess) int {
	total := 0
	for _, g := range guesses {
		total += g.Score
	}
	return total
}

// ResolvedPrefix derives the team's word cursor from the guess history:
// the longest prefix of words each having a winning guess. A later word's
// success never advances the cursor past an earlier unresolved word.
func ResolvedPrefix(numWords int, guesses []WordGuess) int {
	won := make(map[int]bool)
	for _, g := range guesses {
		if g.Guessed {
			won[g.WordIdx] = true
		}
	}
	idx := 0
	for idx < numWords && won[idx] {
		idx++
	}
	return idx
}

// ErrAllWordsGuessed means the team has resolved the whole word list and
// there is nothing left to guess.
var ErrAllWordsGuessed = errors.New("all words are already guessed")

// LengthMismatchError rejects a guess without scoring or persisting it.
// It is a user-facing validation outcome, not a server failure.
type LengthMismatchError struct {
	Guess string
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("the word %q does not match the length of the hidden word", e.Guess)
}

// EvaluateGuess scores a raw guess against the word at wordIdx. The
// returned guess carries Guessed and the signed score delta; it is not
// yet persisted. Callers must invoke this under the per-team lock so the
// word ordinal cannot move between evaluation and append.
func EvaluateGuess(game *Game, wordIdx int, rawGuess string) (WordGuess, error) {
	if wordIdx < 0 || wordIdx >= len(game.Words) {
		return WordGuess{}, ErrAllWordsGuessed
	}

	guess := Normalize(rawGuess)
	word := []rune(game.Words[wordIdx].Text)
	if len([]rune(guess)) != len(word) {
		return WordGuess{}, &LengthMismatchError{Guess: guess}
	}

	guessed := guess == game.Words[wordIdx].Text
	score := game.GuessBonus
	if !guessed {
		score = -game.MissPenalty
	}

	return WordGuess{
		WordIdx: wordIdx,
		Guess:   guess,
		Guessed: guessed,
		Score:   score,
	}, nil
}
