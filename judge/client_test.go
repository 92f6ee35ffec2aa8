package judge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algocode/backend/standings"
)

const sampleRunLog = `<?xml version="1.0" encoding="UTF-8"?>
<runlog contest_id="101">
  <name>Autumn Round</name>
  <problems>
    <problem id="1" short_name="A"/>
    <problem id="2" short_name="B"/>
  </problems>
  <runs>
    <run run_id="3" user_id="7" prob_id="2" status="WA"/>
    <run run_id="1" user_id="7" prob_id="1" status="WA"/>
    <run run_id="2" user_id="7" prob_id="1" status="OK"/>
    <run run_id="4" user_id="7" prob_id="1" status="OK"/>
    <run run_id="5" user_id="8" prob_id="1" status="CE"/>
  </runs>
</runlog>`

func TestParseRunLog(t *testing.T) {
	table, err := parseRunLog(101, []byte(sampleRunLog))
	require.NoError(t, err)

	assert.Equal(t, "Autumn Round", table.Name)
	require.Len(t, table.Problems, 2)
	assert.Equal(t, "A", table.Problems[0].Short)

	row := table.Users[7]
	require.Len(t, row, 2)
	// two attempts on A, solved on the second; the post-OK run is ignored
	assert.Equal(t, standings.VerdictOK, row[0].Verdict)
	assert.Equal(t, 2, row[0].Penalty)
	// one failed attempt on B
	assert.Equal(t, standings.VerdictRejected, row[1].Verdict)
	assert.Equal(t, 1, row[1].Penalty)

	// a CE run charges nothing, so user 8 never got a row
	_, ok := table.Users[8]
	assert.False(t, ok)
}

func TestParseRunLogReplaysRunsInRunIdOrder(t *testing.T) {
	// the WA on A (run 1) precedes the OK (run 2) even though the XML
	// lists run 3 first
	table, err := parseRunLog(101, []byte(sampleRunLog))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Users[7][0].Penalty)
}

func TestLoadContestNoJudgeLink(t *testing.T) {
	client := NewClient(NewRegistry(nil))
	_, err := client.LoadContest(context.Background(), 555, nil)
	assert.ErrorIs(t, err, standings.ErrNoJudge)
}

func TestLoadContestCachesRunLog(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(sampleRunLog))
	}))
	defer srv.Close()

	client := NewClient(NewRegistry([]ContestConf{
		{ID: 101, Name: "Autumn Round", StandingsURL: srv.URL},
	}))

	for i := 0; i < 3; i++ {
		table, err := client.LoadContest(context.Background(), 101, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(101), table.ContestID)
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestLoadContestJudgeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(NewRegistry([]ContestConf{
		{ID: 101, StandingsURL: srv.URL},
	}))

	_, err := client.LoadContest(context.Background(), 101, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, standings.ErrNoJudge)
}
