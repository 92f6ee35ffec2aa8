package polechudes

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/algocode/backend/standings"
	"github.com/algocode/backend/srvcerror"
	"github.com/algocode/backend/user/auth"
)

type PoleChudesSrvc struct {
	repo Repo
	agg  *standings.Aggregator
}

func NewPoleChudesSrvc(repo Repo, agg *standings.Aggregator) *PoleChudesSrvc {
	return &PoleChudesSrvc{repo: repo, agg: agg}
}

type TeamStanding struct {
	TeamID  int64  `json:"team_id"`
	Name    string `json:"name"`
	Score   int    `json:"score"`
	WordIdx int    `json:"word_idx"`
}

type GameStandings struct {
	GameID int64          `json:"game_id"`
	Name   string         `json:"name"`
	Teams  []TeamStanding `json:"teams"`
}

// ListTeams recomputes every team's score and returns the game's team
// ranking, best score first.
func (s *PoleChudesSrvc) ListTeams(ctx context.Context, gameID int64) (*GameStandings, error) {
	if err := s.Recalc(ctx, gameID); err != nil {
		return nil, err
	}

	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	teams, err := s.repo.ListTeams(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of game %d: %w", gameID, err)
	}

	res := &GameStandings{GameID: game.ID, Name: game.Name}
	for _, team := range teams {
		res.Teams = append(res.Teams, TeamStanding{
			TeamID:  team.ID,
			Name:    team.Name,
			Score:   team.Score,
			WordIdx: team.WordIdx,
		})
	}
	sort.SliceStable(res.Teams, func(i, j int) bool {
		return res.Teams[i].Score > res.Teams[j].Score
	})

	return res, nil
}

type TeamView struct {
	TeamID      int64          `json:"team_id"`
	Name        string         `json:"name"`
	Score       int            `json:"score"`
	WordIdx     int            `json:"word_idx"`
	ProbLetters []string       `json:"prob_letters"`
	Standings   []StandingsRow `json:"standings"`
	Words       []WordView     `json:"words"`
}

// TeamViewFor reconstructs the team's whole game state from persisted
// reveals and guesses. Score and cursor are recomputed first, never read
// as stored.
func (s *PoleChudesSrvc) TeamViewFor(ctx context.Context, teamID int64, caller auth.Caller) (*TeamView, error) {
	team, err := s.getAuthorizedTeam(ctx, teamID, caller)
	if err != nil {
		return nil, err
	}

	if err := s.Recalc(ctx, team.GameID); err != nil {
		return nil, err
	}
	// re-read: recalc may have moved the score and cursor
	team, err = s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	if team == nil {
		return nil, newErrTeamNotFound()
	}

	game, err := s.repo.GetGame(ctx, team.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", team.GameID, err)
	}

	var participants []int64
	for _, member := range team.Members {
		participants = append(participants, member.ParticipantID)
	}
	table, err := s.agg.Aggregate(ctx, game.ContestID, participants)
	if err != nil {
		if !errors.Is(err, standings.ErrNoJudge) {
			return nil, err
		}
		table = nil // game exists without standings: render the blank panel
	}

	reveals, err := s.repo.ListReveals(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reveals of team %d: %w", teamID, err)
	}
	guesses, err := s.repo.ListGuesses(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guesses of team %d: %w", teamID, err)
	}

	probLetters, rows := RenderStandingsPanel(game, team.Members, table)

	return &TeamView{
		TeamID:      team.ID,
		Name:        team.Name,
		Score:       team.Score,
		WordIdx:     team.WordIdx,
		ProbLetters: probLetters,
		Standings:   rows,
		Words:       RenderWords(game, reveals, guesses),
	}, nil
}

type GuessResult struct {
	Accepted bool   `json:"accepted"`
	Guessed  bool   `json:"guessed"`
	Message  string `json:"message,omitempty"`
}

// SubmitGuess records a word guess for the team's current word. A length
// mismatch is a user-facing rejection with no persisted record; anything
// else is scored and appended.
func (s *PoleChudesSrvc) SubmitGuess(ctx context.Context, teamID int64, caller auth.Caller, rawGuess string) (*GuessResult, error) {
	if _, err := s.getAuthorizedTeam(ctx, teamID, caller); err != nil {
		return nil, err
	}

	guess, err := s.repo.SubmitGuess(ctx, teamID, rawGuess)
	if err != nil {
		lengthErr := &LengthMismatchError{}
		if errors.As(err, &lengthErr) {
			return &GuessResult{Accepted: false, Message: lengthErr.Error()}, nil
		}
		if errors.Is(err, ErrAllWordsGuessed) {
			return &GuessResult{Accepted: false, Message: ErrAllWordsGuessed.Error()}, nil
		}
		return nil, fmt.Errorf("failed to submit guess for team %d: %w", teamID, err)
	}

	return &GuessResult{Accepted: true, Guessed: guess.Guessed}, nil
}

// RevealLetter records a letter reveal for the team's current word. The
// letter must belong to the game's alphabet.
func (s *PoleChudesSrvc) RevealLetter(ctx context.Context, teamID int64, caller auth.Caller, letter string) error {
	team, err := s.getAuthorizedTeam(ctx, teamID, caller)
	if err != nil {
		return err
	}

	game, err := s.repo.GetGame(ctx, team.GameID)
	if err != nil {
		return fmt.Errorf("failed to get game %d: %w", team.GameID, err)
	}

	normalized := []rune(Normalize(letter))
	if len(normalized) != 1 || !containsRune(game.Alphabet, normalized[0]) {
		return newErrLetterNotInAlphabet()
	}

	if _, err := s.repo.AddReveal(ctx, teamID, string(normalized)); err != nil {
		return fmt.Errorf("failed to add reveal for team %d: %w", teamID, err)
	}
	return nil
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// getAuthorizedTeam loads the team and enforces access before anything
// else is computed: admins may act on any team, a regular user only on
// the team assigned to them.
func (s *PoleChudesSrvc) getAuthorizedTeam(ctx context.Context, teamID int64, caller auth.Caller) (*Team, error) {
	if !caller.LoggedIn {
		return nil, srvcerror.ErrUnauthorized()
	}

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	if team == nil {
		return nil, newErrTeamNotFound()
	}

	if caller.IsAdmin {
		return team, nil
	}
	if team.UserUUID == nil || *team.UserUUID != caller.UUID {
		return nil, newErrNotYourTeam()
	}
	return team, nil
}
