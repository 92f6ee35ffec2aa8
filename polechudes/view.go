package polechudes

import (
	"fmt"

	"github.com/algocode/backend/standings"
)

type LetterState string

const (
	LetterNotGuessed LetterState = "not_guessed"
	LetterGuessed    LetterState = "guessed"
	LetterShown      LetterState = "shown"
)

type AlphabetState string

const (
	AlphabetUnknown AlphabetState = "unknown"
	AlphabetYes     AlphabetState = "yes"
	AlphabetNo      AlphabetState = "no"
)

type LetterView struct {
	Letter string      `json:"letter"`
	State  LetterState `json:"state"`
}

type AlphabetView struct {
	Letter string        `json:"letter"`
	State  AlphabetState `json:"state"`
}

type WordView struct {
	Num       int            `json:"id"` // 1-based ordinal for display
	Hint      string         `json:"hint"`
	Letters   []LetterView   `json:"word"`
	Alphabet  []AlphabetView `json:"alphabet"`
	Unsuccess []string       `json:"unsuccess"`
	Guessed   bool           `json:"guessed"`
}

// RenderWords replays the team's reveal and guess history into per-word
// views. Words are rendered up to and including the first word without a
// winning guess; the result is reversed so the current word comes first.
func RenderWords(game *Game, reveals []LetterReveal, guesses []WordGuess) []WordView {
	alphabet := []rune(game.Alphabet)
	alphabetIdx := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		alphabetIdx[r] = i
	}

	revealsByWord := make(map[int][]LetterReveal)
	for _, rev := range reveals {
		revealsByWord[rev.WordIdx] = append(revealsByWord[rev.WordIdx], rev)
	}
	guessesByWord := make(map[int][]WordGuess)
	for _, g := range guesses {
		guessesByWord[g.WordIdx] = append(guessesByWord[g.WordIdx], g)
	}

	var words []WordView
	for wid, word := range game.Words {
		text := []rune(word.Text)

		view := WordView{
			Num:       wid + 1,
			Hint:      word.Hint,
			Letters:   make([]LetterView, len(text)),
			Alphabet:  make([]AlphabetView, len(alphabet)),
			Unsuccess: []string{},
		}
		for i, r := range text {
			view.Letters[i] = LetterView{Letter: string(r), State: LetterNotGuessed}
		}
		for i, r := range alphabet {
			view.Alphabet[i] = AlphabetView{Letter: string(r), State: AlphabetUnknown}
		}

		for _, rev := range revealsByWord[wid] {
			letter := []rune(Normalize(rev.Letter))
			if len(letter) == 0 {
				continue
			}
			j, known := alphabetIdx[letter[0]]
			if !known {
				continue
			}
			matched := false
			for i, r := range text {
				if r == letter[0] {
					matched = true
					view.Letters[i].State = LetterGuessed
				}
			}
			if matched {
				view.Alphabet[j].State = AlphabetYes
			} else {
				view.Alphabet[j].State = AlphabetNo
			}
		}

		// oldest-first: failed guesses before the winner accumulate,
		// the winning guess reveals the remaining letters and ends the scan
		for _, g := range guessesByWord[wid] {
			if g.Guessed {
				for i := range view.Letters {
					if view.Letters[i].State != LetterGuessed {
						view.Letters[i].State = LetterShown
					}
				}
				view.Guessed = true
				break
			}
			view.Unsuccess = append(view.Unsuccess, g.Guess)
		}

		words = append(words, view)

		if !view.Guessed {
			break
		}
	}

	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}

	return words
}

type ProblemCell struct {
	Show    string            `json:"show"`
	Verdict standings.Verdict `json:"verdict"`
	Penalty int               `json:"penalty"`
}

type StandingsRow struct {
	Name     string        `json:"name"`
	Problems []ProblemCell `json:"problems"`
}

// RenderStandingsPanel maps canonical results onto the game's alphabet
// grid: one column per alphabet slot, blank-labelled past the problem
// count, problems past the alphabet length not shown. A nil table (no
// judge link) yields blank rows.
func RenderStandingsPanel(game *Game, members []Member, table *standings.Table) ([]string, []StandingsRow) {
	width := len([]rune(game.Alphabet))

	probLetters := make([]string, width)
	if table != nil {
		for i, p := range table.Problems {
			if i >= width {
				break
			}
			probLetters[i] = p.Short
		}
	}

	rows := make([]StandingsRow, 0, len(members))
	for _, member := range members {
		row := StandingsRow{
			Name:     member.Name,
			Problems: make([]ProblemCell, width),
		}
		if table != nil {
			for p, res := range table.Row(member.ParticipantID) {
				if p >= width {
					break
				}
				row.Problems[p] = displayCell(res)
			}
		}
		rows = append(rows, row)
	}

	return probLetters, rows
}

func displayCell(res standings.UserResult) ProblemCell {
	cell := ProblemCell{Verdict: res.Verdict, Penalty: res.Penalty}
	switch {
	case res.Verdict == standings.VerdictOK && res.Penalty > 1:
		cell.Show = fmt.Sprintf("+%d", res.Penalty)
	case res.Verdict == standings.VerdictOK:
		cell.Show = "+"
	case res.Verdict != standings.VerdictNone:
		cell.Show = fmt.Sprintf("-%d", res.Penalty)
	}
	return cell
}
