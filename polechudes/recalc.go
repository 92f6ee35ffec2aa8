package polechudes

import (
	"context"
	"fmt"
)

// Recalc replays every team's full guess history and persists the derived
// score and word cursor. It runs before any standings or team view so the
// stored fields never go stale; with no new guesses it is idempotent.
func (s *PoleChudesSrvc) Recalc(ctx context.Context, gameID int64) error {
	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	if game == nil {
		return newErrGameNotFound()
	}

	teams, err := s.repo.ListTeams(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to list teams of game %d: %w", gameID, err)
	}

	for _, team := range teams {
		guesses, err := s.repo.ListGuesses(ctx, team.ID)
		if err != nil {
			return fmt.Errorf("failed to list guesses of team %d: %w", team.ID, err)
		}

		score := TotalScore(guesses)
		wordIdx := ResolvedPrefix(len(game.Words), guesses)

		if score == team.Score && wordIdx == team.WordIdx {
			continue
		}
		if err := s.repo.UpdateTeamStanding(ctx, team.ID, score, wordIdx); err != nil {
			return fmt.Errorf("failed to update standing of team %d: %w", team.ID, err)
		}
	}

	return nil
}
