package standingsexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/algocode/backend/standings"
)

// WriteCSV renders one contest table as CSV: a header of problem labels
// followed by one row per roster entry. Solved cells show "+" or "+N",
// rejected cells "-N", untouched cells stay blank.
func WriteCSV(w io.Writer, table *standings.Table, roster []Participant) error {
	out := csv.NewWriter(w)

	header := []string{"name", "group"}
	for _, p := range table.Problems {
		header = append(header, p.Short)
	}
	header = append(header, "solved")
	if err := out.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range roster {
		row := []string{p.Name, p.Group}
		solved := 0
		for _, res := range table.Row(p.ID) {
			row = append(row, cellText(res))
			if res.Verdict == standings.VerdictOK {
				solved++
			}
		}
		row = append(row, fmt.Sprintf("%d", solved))
		if err := out.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	out.Flush()
	return out.Error()
}

func cellText(res standings.UserResult) string {
	switch res.Verdict {
	case standings.VerdictOK:
		if res.Penalty <= 1 {
			return "+"
		}
		return fmt.Sprintf("+%d", res.Penalty)
	case standings.VerdictRejected:
		return fmt.Sprintf("-%d", res.Penalty)
	default:
		return ""
	}
}
