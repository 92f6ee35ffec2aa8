package standingsexport

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *PgRepo {
	return &PgRepo{pool: pool}
}

func (r *PgRepo) ListParticipants(ctx context.Context, contestID int64) ([]Participant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT participant_id, name, group_name
		FROM contest_participants
		WHERE contest_id = $1
		ORDER BY participant_id
	`, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contest participants: %w", err)
	}
	defer rows.Close()

	var roster []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Group); err != nil {
			return nil, fmt.Errorf("failed to scan contest participant: %w", err)
		}
		roster = append(roster, p)
	}
	return roster, rows.Err()
}
