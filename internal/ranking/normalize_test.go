package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

func rawRow(id string, score, timeVal *float64, at int64) model.RawSubmission {
	return model.RawSubmission{
		ID:          id,
		Profile:     &model.Profile{ID: "alice", Username: "alice"},
		Level:       &model.Level{ID: "L1", Chart: model.ChartBoth},
		Score:       score,
		Time:        timeVal,
		SubmittedAt: time.Unix(at, 0),
	}
}

func f(v float64) *float64 { return &v }

func TestNormalize_TagsAndOrders(t *testing.T) {
	rows := []model.RawSubmission{
		rawRow("s2", f(250), nil, 9),
		rawRow("s1", f(100), nil, 3),
	}

	subs, report := Normalize(rows, model.Score)

	require.Empty(t, report.Dropped)
	require.Len(t, subs, 2)
	// Ordonné par date de soumission
	assert.Equal(t, "s1", subs[0].ID)
	assert.Equal(t, "s2", subs[1].ID)
	assert.Equal(t, model.Score, subs[0].RecordType)
	assert.Equal(t, 100.0, subs[0].Record)
}

func TestNormalize_TimeRoundedToCentiseconds(t *testing.T) {
	rows := []model.RawSubmission{
		rawRow("s1", nil, f(62.519), 1),
		rawRow("s2", nil, f(30.004), 2),
	}

	subs, report := Normalize(rows, model.Time)

	require.Empty(t, report.Dropped)
	require.Len(t, subs, 2)
	assert.Equal(t, 62.52, subs[0].Record)
	assert.Equal(t, 30.0, subs[1].Record)
}

func TestNormalize_DropsMalformedRows(t *testing.T) {
	missingProfile := rawRow("s1", f(100), nil, 1)
	missingProfile.Profile = nil

	missingLevel := rawRow("s2", f(100), nil, 2)
	missingLevel.Level = nil

	missingRecord := rawRow("s3", nil, nil, 3)

	rows := []model.RawSubmission{missingProfile, missingLevel, missingRecord, rawRow("s4", f(100), nil, 4)}

	subs, report := Normalize(rows, model.Score)

	// Une ligne invalide n'interrompt pas le lot
	require.Len(t, subs, 1)
	assert.Equal(t, "s4", subs[0].ID)
	require.Len(t, report.Dropped, 3)
	assert.Equal(t, "s1", report.Dropped[0].ID)
	assert.Contains(t, report.Dropped[0].Reason, "profile")
	assert.Contains(t, report.Dropped[1].Reason, "level")
	assert.Contains(t, report.Dropped[2].Reason, "score")
}

// Incohérence de configuration: une soumission d'un type que le chart du
// niveau interdit est écartée comme erreur d'intégrité
func TestNormalize_ChartTypeRestriction(t *testing.T) {
	timeOnly := rawRow("s1", f(100), nil, 1)
	timeOnly.Level = &model.Level{ID: "L1", Chart: model.ChartTime}

	allowed := rawRow("s2", f(100), nil, 2)
	allowed.Level = &model.Level{ID: "L2", Chart: model.ChartScore}

	subs, report := Normalize([]model.RawSubmission{timeOnly, allowed}, model.Score)

	require.Len(t, subs, 1)
	assert.Equal(t, "s2", subs[0].ID)
	require.Len(t, report.Dropped, 1)
	assert.Contains(t, report.Dropped[0].Reason, "does not accept score")
}

func TestNormalize_Empty(t *testing.T) {
	subs, report := Normalize(nil, model.Score)

	assert.Empty(t, subs)
	assert.Empty(t, report.Dropped)
}

func TestMerge_InterleavesByDate(t *testing.T) {
	scores := []model.Submission{
		{ID: "sc1", SubmittedAt: time.Unix(1, 0)},
		{ID: "sc2", SubmittedAt: time.Unix(5, 0)},
	}
	times := []model.Submission{
		{ID: "t1", SubmittedAt: time.Unix(3, 0)},
	}

	merged := Merge(scores, times)

	require.Len(t, merged, 3)
	assert.Equal(t, "sc1", merged[0].ID)
	assert.Equal(t, "t1", merged[1].ID)
	assert.Equal(t, "sc2", merged[2].ID)
}
