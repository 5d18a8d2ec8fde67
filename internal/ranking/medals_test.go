package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

func profile(id string) model.Profile {
	return model.Profile{ID: id, Username: id}
}

func entry(pos int, user string) model.RankedEntry {
	return model.RankedEntry{
		Position:   pos,
		Submission: model.Submission{Profile: profile(user)},
	}
}

func medalsOf(table []model.MedalRow, user string) model.MedalRow {
	for _, row := range table {
		if row.Profile.ID == user {
			return row
		}
	}
	return model.MedalRow{}
}

func TestBuildMedalTable_CountsTopFour(t *testing.T) {
	boards := [][]model.RankedEntry{
		{entry(1, "alice"), entry(2, "bob"), entry(3, "carol"), entry(4, "dave"), entry(5, "erin")},
		{entry(1, "bob"), entry(2, "alice"), entry(3, "dave"), entry(4, "carol")},
	}
	participants := []model.Profile{
		profile("alice"), profile("bob"), profile("carol"), profile("dave"), profile("erin"),
	}

	table := BuildMedalTable(boards, participants)

	require.Len(t, table, 5)

	alice := medalsOf(table, "alice")
	assert.Equal(t, 1, alice.Platinum)
	assert.Equal(t, 1, alice.Gold)

	bob := medalsOf(table, "bob")
	assert.Equal(t, 1, bob.Platinum)
	assert.Equal(t, 1, bob.Gold)

	carol := medalsOf(table, "carol")
	assert.Equal(t, 1, carol.Silver)
	assert.Equal(t, 1, carol.Bronze)

	// erin n'a que des positions > 4: zéro médaille mais présente
	erin := medalsOf(table, "erin")
	assert.Zero(t, erin.Platinum+erin.Gold+erin.Silver+erin.Bronze)
}

// Trois ex aequo à la position 1: trois platines, aucun or ni argent décerné
// pour ce niveau (les positions sautent à 4)
func TestBuildMedalTable_ThreeWayTieAtTop(t *testing.T) {
	boards := [][]model.RankedEntry{
		{entry(1, "alice"), entry(1, "bob"), entry(1, "carol"), entry(4, "dave")},
	}
	participants := []model.Profile{
		profile("alice"), profile("bob"), profile("carol"), profile("dave"),
	}

	table := BuildMedalTable(boards, participants)

	totalPlatinum, totalGold, totalSilver, totalBronze := 0, 0, 0, 0
	for _, row := range table {
		totalPlatinum += row.Platinum
		totalGold += row.Gold
		totalSilver += row.Silver
		totalBronze += row.Bronze
	}
	assert.Equal(t, 3, totalPlatinum)
	assert.Zero(t, totalGold)
	assert.Zero(t, totalSilver)
	assert.Equal(t, 1, totalBronze)

	// Les trois platines partagent la position 1, dave est 4e
	assert.Equal(t, 1, medalsOf(table, "alice").Position)
	assert.Equal(t, 1, medalsOf(table, "bob").Position)
	assert.Equal(t, 1, medalsOf(table, "carol").Position)
	assert.Equal(t, 4, medalsOf(table, "dave").Position)
}

// Conservation des platines: chaque niveau avec au moins une soumission live
// décerne au moins une platine
func TestBuildMedalTable_PlatinumConservation(t *testing.T) {
	boards := [][]model.RankedEntry{
		{entry(1, "alice"), entry(2, "bob")},
		{entry(1, "bob")},
		{entry(1, "carol"), entry(1, "alice"), entry(3, "bob")},
		{}, // niveau sans soumission live
	}
	participants := []model.Profile{profile("alice"), profile("bob"), profile("carol")}

	table := BuildMedalTable(boards, participants)

	totalPlatinum := 0
	for _, row := range table {
		totalPlatinum += row.Platinum
	}
	// 3 niveaux avec du live, dont un avec deux ex aequo: 4 platines
	assert.Equal(t, 4, totalPlatinum)
}

func TestBuildMedalTable_SortAndPositions(t *testing.T) {
	boards := [][]model.RankedEntry{
		{entry(1, "alice"), entry(2, "bob"), entry(3, "carol")},
		{entry(1, "alice"), entry(2, "carol"), entry(3, "bob")},
		{entry(1, "bob"), entry(2, "alice"), entry(3, "carol")},
	}
	participants := []model.Profile{profile("alice"), profile("bob"), profile("carol")}

	table := BuildMedalTable(boards, participants)

	require.Len(t, table, 3)
	// alice (2,1,0,0), bob (1,1,1,0), carol (0,1,2,0)
	assert.Equal(t, "alice", table[0].Profile.ID)
	assert.Equal(t, 1, table[0].Position)
	assert.Equal(t, "bob", table[1].Profile.ID)
	assert.Equal(t, 2, table[1].Position)
	assert.Equal(t, "carol", table[2].Profile.ID)
	assert.Equal(t, 3, table[2].Position)
}

// Tuples de médailles identiques: position partagée (égalité sur 4-uplet)
func TestBuildMedalTable_TupleTie(t *testing.T) {
	boards := [][]model.RankedEntry{
		{entry(1, "alice"), entry(2, "bob")},
		{entry(1, "bob"), entry(2, "alice")},
	}
	participants := []model.Profile{profile("alice"), profile("bob"), profile("carol")}

	table := BuildMedalTable(boards, participants)

	require.Len(t, table, 3)
	assert.Equal(t, 1, table[0].Position)
	assert.Equal(t, 1, table[1].Position)
	assert.Equal(t, "carol", table[2].Profile.ID)
	assert.Equal(t, 3, table[2].Position)
}

func TestBuildMedalTable_Empty(t *testing.T) {
	table := BuildMedalTable(nil, nil)
	assert.Empty(t, table)
}

func TestLiveParticipants(t *testing.T) {
	subs := []model.Submission{
		{Profile: profile("alice"), Live: true},
		{Profile: profile("bob"), Live: false},
		{Profile: profile("alice"), Live: true},
		{Profile: profile("carol"), Live: true},
	}

	participants := LiveParticipants(subs)

	require.Len(t, participants, 2)
	assert.Equal(t, "alice", participants[0].ID)
	assert.Equal(t, "carol", participants[1].ID)
}
