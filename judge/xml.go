package judge

import (
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/algocode/backend/standings"
)

// ejudge external run log, the format served at the judge's
// "external standings" endpoint.
type runLog struct {
	XMLName  xml.Name     `xml:"runlog"`
	Name     string       `xml:"name"`
	Problems []xmlProblem `xml:"problems>problem"`
	Runs     []xmlRun     `xml:"runs>run"`
}

type xmlProblem struct {
	ID    int64  `xml:"id,attr"`
	Short string `xml:"short_name,attr"`
}

type xmlRun struct {
	RunID  int64  `xml:"run_id,attr"`
	UserID int64  `xml:"user_id,attr"`
	ProbID int64  `xml:"prob_id,attr"`
	Status string `xml:"status,attr"`
}

// statuses that do not charge a penalty attempt
var uncharged = map[string]bool{
	"CE": true, // compile error
	"IG": true, // ignored
	"SK": true, // skipped
	"EM": true, // empty
	"VS": true, // virtual start
	"VT": true, // virtual stop
}

// parseRunLog decodes the judge XML and folds the run stream into a
// canonical table. Runs are replayed in run_id order; attempts after the
// first OK are ignored.
func parseRunLog(contestID int64, data []byte) (*standings.Table, error) {
	var log runLog
	if err := xml.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to decode run log: %w", err)
	}

	table := &standings.Table{
		ContestID: contestID,
		Name:      log.Name,
		Problems:  make([]standings.Problem, 0, len(log.Problems)),
		Users:     make(map[int64][]standings.UserResult),
	}

	probOrdinal := make(map[int64]int, len(log.Problems))
	for i, p := range log.Problems {
		probOrdinal[p.ID] = i
		table.Problems = append(table.Problems, standings.Problem{Index: i, Short: p.Short})
	}

	runs := make([]xmlRun, len(log.Runs))
	copy(runs, log.Runs)
	sort.Slice(runs, func(i, j int) bool { return runs[i].RunID < runs[j].RunID })

	width := len(table.Problems)
	for _, run := range runs {
		ord, ok := probOrdinal[run.ProbID]
		if !ok || uncharged[run.Status] {
			continue
		}
		row, ok := table.Users[run.UserID]
		if !ok {
			row = make([]standings.UserResult, width)
			table.Users[run.UserID] = row
		}
		if row[ord].Verdict == standings.VerdictOK {
			continue
		}
		row[ord].Penalty++
		if run.Status == "OK" {
			row[ord].Verdict = standings.VerdictOK
		} else {
			row[ord].Verdict = standings.VerdictRejected
		}
	}

	return table, nil
}
