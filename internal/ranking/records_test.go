package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

func sub(id, user string, record float64, at int64, live bool) model.Submission {
	return model.Submission{
		ID:          id,
		Profile:     model.Profile{ID: user, Username: user},
		Level:       model.Level{ID: "L1", Name: "Level 1"},
		Record:      record,
		RecordType:  model.Score,
		SubmittedAt: time.Unix(at, 0),
		Live:        live,
	}
}

func TestCurrentRecords_KeepsBestPerUser(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 100, 1, true),
		sub("s2", "alice", 250, 2, true),
		sub("s3", "alice", 180, 3, true),
		sub("s4", "bob", 300, 4, true),
	}

	current := CurrentRecords(subs, false)

	require.Len(t, current, 2)
	byUser := map[string]model.Submission{}
	for _, c := range current {
		byUser[c.Profile.ID] = c
	}
	assert.Equal(t, "s2", byUser["alice"].ID)
	assert.Equal(t, "s4", byUser["bob"].ID)
}

func TestCurrentRecords_AscendingKeepsMinimum(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 62.51, 1, true),
		sub("s2", "alice", 58.20, 2, true),
		sub("s3", "alice", 60.00, 3, true),
	}

	current := CurrentRecords(subs, true)

	require.Len(t, current, 1)
	assert.Equal(t, "s2", current[0].ID)
}

// Égalité sur le meilleur record: la soumission la plus ancienne reste le
// record courant
func TestCurrentRecords_TieKeepsEarliest(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 200, 5, true),
		sub("s2", "alice", 200, 2, true),
		sub("s3", "alice", 200, 9, true),
	}

	current := CurrentRecords(subs, false)

	require.Len(t, current, 1)
	assert.Equal(t, "s2", current[0].ID)
}

// Jamais plus d'un record courant par (utilisateur, niveau, type)
func TestCurrentRecords_AtMostOnePerUser(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 10, 1, true),
		sub("s2", "bob", 20, 2, true),
		sub("s3", "alice", 30, 3, false),
		sub("s4", "bob", 20, 4, true),
		sub("s5", "carol", 15, 5, true),
	}

	current := CurrentRecords(subs, false)

	seen := map[string]int{}
	for _, c := range current {
		seen[c.Profile.ID]++
	}
	for user, count := range seen {
		assert.Equal(t, 1, count, "user %s has %d current records", user, count)
	}
	assert.Len(t, seen, 3)
}

func TestCurrentRecords_DoesNotMutateInput(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 100, 1, true),
		sub("s2", "alice", 250, 2, true),
	}

	CurrentRecords(subs, false)

	assert.Equal(t, "s1", subs[0].ID)
	assert.Equal(t, "s2", subs[1].ID)
}

func TestRank_SortsAndTieBreaksBySubmissionDate(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 90, 7, true),
		sub("s2", "bob", 120, 3, true),
		sub("s3", "carol", 90, 2, true),
	}

	entries := Rank(subs, false)

	require.Len(t, entries, 3)
	assert.Equal(t, "bob", entries[0].Submission.Profile.ID)
	assert.Equal(t, 1, entries[0].Position)
	// Égalité à 90: carol a soumis avant alice
	assert.Equal(t, "carol", entries[1].Submission.Profile.ID)
	assert.Equal(t, 2, entries[1].Position)
	assert.Equal(t, "alice", entries[2].Submission.Profile.ID)
	assert.Equal(t, 2, entries[2].Position)
}

// Tableau complet sur l'exemple canonique: deux records courants à égalité
// partagent la position 1; la variante live ne voit que les soumissions live
func TestBuildWorldRecordBoard_TieAndLiveVariant(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 100, 1, true),
		sub("s2", "alice", 90, 2, true),
		sub("s3", "bob", 90, 3, false),
	}

	board := BuildWorldRecordBoard("L1", subs, true, model.Adjacent{})

	require.Len(t, board.All, 2)
	assert.Equal(t, 1, board.All[0].Position)
	assert.Equal(t, 1, board.All[1].Position)
	assert.Equal(t, "alice", board.All[0].Submission.Profile.ID) // t2 avant t3
	assert.Equal(t, "bob", board.All[1].Submission.Profile.ID)

	require.Len(t, board.Live, 1)
	assert.Equal(t, "alice", board.Live[0].Submission.Profile.ID)
	assert.Equal(t, 90.0, board.Live[0].Submission.Record)
	assert.Equal(t, 1, board.Live[0].Position)
}

// La variante live rejoue le filtre d'obsolescence sur le seul sous-ensemble
// live: le record live d'un utilisateur peut différer de son record courant
func TestBuildWorldRecordBoard_LiveRefiltersObsolescence(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 300, 1, true),  // meilleur live
		sub("s2", "alice", 500, 2, false), // record courant, replay
	}

	board := BuildWorldRecordBoard("L1", subs, false, model.Adjacent{})

	require.Len(t, board.All, 1)
	assert.Equal(t, "s2", board.All[0].Submission.ID)

	require.Len(t, board.Live, 1)
	assert.Equal(t, "s1", board.Live[0].Submission.ID)
}

func TestBuildWorldRecordBoard_Empty(t *testing.T) {
	board := BuildWorldRecordBoard("L1", nil, false, model.Adjacent{})

	assert.Empty(t, board.All)
	assert.Empty(t, board.Live)
}

func TestObsoleteHistory_NewestFirst(t *testing.T) {
	subs := []model.Submission{
		sub("s1", "alice", 100, 1, true),
		sub("s2", "alice", 250, 5, true),
		sub("s3", "bob", 300, 3, true),
	}

	history := ObsoleteHistory(subs)

	require.Len(t, history, 3)
	assert.Equal(t, "s2", history[0].ID)
	assert.Equal(t, "s3", history[1].ID)
	assert.Equal(t, "s1", history[2].ID)
}

func TestAdjacentLevels(t *testing.T) {
	levels := []model.Level{
		{ID: "l1", Name: "Plain", Misc: false},
		{ID: "l2", Name: "Diving", Misc: false},
		{ID: "l3", Name: "Bonus Wave", Misc: true},
		{ID: "l4", Name: "Floaters", Misc: false},
	}

	t.Run("middle of main mode skips misc", func(t *testing.T) {
		adj := AdjacentLevels(levels, "l2")
		require.NotNil(t, adj.Prev)
		require.NotNil(t, adj.Next)
		assert.Equal(t, "Plain", *adj.Prev)
		assert.Equal(t, "Floaters", *adj.Next)
	})

	t.Run("first level has no prev", func(t *testing.T) {
		adj := AdjacentLevels(levels, "l1")
		assert.Nil(t, adj.Prev)
		require.NotNil(t, adj.Next)
		assert.Equal(t, "Diving", *adj.Next)
	})

	t.Run("misc level only sees misc neighbours", func(t *testing.T) {
		adj := AdjacentLevels(levels, "l3")
		assert.Nil(t, adj.Prev)
		assert.Nil(t, adj.Next)
	})

	t.Run("unknown level", func(t *testing.T) {
		adj := AdjacentLevels(levels, "nope")
		assert.Nil(t, adj.Prev)
		assert.Nil(t, adj.Next)
	})
}
