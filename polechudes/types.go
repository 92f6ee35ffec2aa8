package polechudes

import "github.com/google/uuid"

// Game is one Pole Chudes instance. Words are ordered; a word's identity
// is its ordinal in this list. Every team of the game walks the same word
// list independently.
type Game struct {
	ID          int64
	Name        string
	ContestID   int64
	Alphabet    string // ordered distinct letters, stored upper-case
	GuessBonus  int
	MissPenalty int
	Words       []Word
}

type Word struct {
	Hint string
	Text string // stored upper-case
}

// Team progress (Score, WordIdx) is never trusted as stored: it is
// recomputed from the guess history before every read.
type Team struct {
	ID       int64
	GameID   int64
	Name     string
	UserUUID *uuid.UUID // portal account allowed to guess for this team
	Score    int
	WordIdx  int
	Members  []Member
}

type Member struct {
	ParticipantID int64
	Name          string
}

// LetterReveal is the persisted fact "this team revealed this letter while
// working on this word". One record per guessed letter.
type LetterReveal struct {
	TeamID  int64
	WordIdx int
	Letter  string
}

// WordGuess is append-only: never mutated, never deleted.
type WordGuess struct {
	ID      int64
	TeamID  int64
	WordIdx int
	Guess   string
	Guessed bool
	Score   int // +GuessBonus if guessed, -MissPenalty otherwise
}
