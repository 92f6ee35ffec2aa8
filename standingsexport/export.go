package standingsexport

import (
	"context"
	"errors"
	"fmt"

	"github.com/algocode/backend/standings"
)

// Participant is one roster entry of a contest. The ID is the judge
// system user id, the same id the standings table rows are keyed by.
type Participant struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// Document is the portal-facing export: the roster plus one normalized
// standings table per contest. Contests without a judge link are left
// out rather than rendered empty.
type Document struct {
	Users    []Participant      `json:"users"`
	Contests []*standings.Table `json:"contests"`
}

type ExportSrvc struct {
	repo      Repo
	agg       *standings.Aggregator
	snapshots *SnapshotStore
}

// NewExportSrvc builds the export service. The snapshot store may be
// nil when no S3 bucket is configured; Snapshot then fails cleanly.
func NewExportSrvc(repo Repo, agg *standings.Aggregator, snapshots *SnapshotStore) *ExportSrvc {
	return &ExportSrvc{repo: repo, agg: agg, snapshots: snapshots}
}

// BuildDocument exports the roster and standings of the given contests.
func (s *ExportSrvc) BuildDocument(ctx context.Context, contestIDs []int64) (*Document, error) {
	doc := &Document{
		Users:    []Participant{},
		Contests: []*standings.Table{},
	}

	seen := make(map[int64]bool)
	for _, contestID := range contestIDs {
		roster, err := s.repo.ListParticipants(ctx, contestID)
		if err != nil {
			return nil, fmt.Errorf("failed to list participants of contest %d: %w", contestID, err)
		}
		for _, p := range roster {
			if !seen[p.ID] {
				seen[p.ID] = true
				doc.Users = append(doc.Users, p)
			}
		}

		table, err := s.contestTable(ctx, contestID, roster)
		if err != nil {
			return nil, err
		}
		if table != nil {
			doc.Contests = append(doc.Contests, table)
		}
	}

	return doc, nil
}

// ContestTable exports a single contest in canonical form, or nil when
// the contest has no judge link.
func (s *ExportSrvc) ContestTable(ctx context.Context, contestID int64) (*standings.Table, []Participant, error) {
	roster, err := s.repo.ListParticipants(ctx, contestID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list participants of contest %d: %w", contestID, err)
	}
	table, err := s.contestTable(ctx, contestID, roster)
	if err != nil {
		return nil, nil, err
	}
	return table, roster, nil
}

// ErrSnapshotsDisabled is returned when no snapshot bucket was
// configured at startup.
var ErrSnapshotsDisabled = errors.New("snapshot store is not configured")

// Snapshot builds the document and uploads it to the snapshot bucket,
// returning the object URL.
func (s *ExportSrvc) Snapshot(ctx context.Context, contestIDs []int64) (string, error) {
	if s.snapshots == nil {
		return "", ErrSnapshotsDisabled
	}
	doc, err := s.BuildDocument(ctx, contestIDs)
	if err != nil {
		return "", err
	}
	return s.snapshots.Snapshot(ctx, doc)
}

func (s *ExportSrvc) contestTable(ctx context.Context, contestID int64, roster []Participant) (*standings.Table, error) {
	ids := make([]int64, len(roster))
	for i, p := range roster {
		ids[i] = p.ID
	}

	table, err := s.agg.Aggregate(ctx, contestID, ids)
	if err != nil {
		if errors.Is(err, standings.ErrNoJudge) {
			return nil, nil
		}
		return nil, err
	}
	return table, nil
}
