package ranking

import (
	"fmt"
	"math"
	"sort"

	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

// BuildTotalizerTable calcule les deux variantes du totalizer d'une catégorie.
// Pour chaque utilisateur et chaque niveau, le record courant est résolu une
// seule fois (même règle d'obsolescence que le tableau des records) puis versé
// dans le total "all", et dans le total "live" uniquement si ce record courant
// est une soumission live — sinon le niveau ne contribue rien au total live
func BuildTotalizerTable(subs []model.Submission, levels []model.Level, rt model.RecordType, ascending bool) model.TotalizerBoard {
	byLevel := make(map[string][]model.Submission)
	for _, sub := range subs {
		byLevel[sub.Level.ID] = append(byLevel[sub.Level.ID], sub)
	}

	type totals struct {
		profile model.Profile
		all     float64
		live    float64
		hasLive bool
	}
	perUser := make(map[string]*totals)
	order := make([]string, 0)

	var par float64
	for _, level := range levels {
		par += level.ParTime

		for _, record := range CurrentRecords(byLevel[level.ID], ascending) {
			t, ok := perUser[record.Profile.ID]
			if !ok {
				t = &totals{profile: record.Profile}
				perUser[record.Profile.ID] = t
				order = append(order, record.Profile.ID)
			}
			t.all += record.Record
			if record.Live {
				t.live += record.Record
				t.hasLive = true
			}
		}
	}

	build := func(pick func(*totals) float64, include func(*totals) bool) []model.TotalRow {
		rows := make([]model.TotalRow, 0, len(order))
		for _, id := range order {
			t := perUser[id]
			if !include(t) {
				continue
			}
			row := model.TotalRow{Profile: t.profile, Total: round2(pick(t))}
			if rt == model.Time {
				row.Display = FormatSeconds(row.Total)
			}
			rows = append(rows, row)
		}

		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Total != rows[j].Total {
				return better(rows[i].Total, rows[j].Total, ascending)
			}
			return rows[i].Profile.Username < rows[j].Profile.Username
		})

		Positions(len(rows), func(i, j int) bool {
			return rows[i].Total == rows[j].Total
		}, func(i, pos int) {
			rows[i].Position = pos
		})

		return rows
	}

	// Un utilisateur sans aucun record courant live n'apparaît pas dans la
	// variante live: un total vide n'est pas un total de zéro
	board := model.TotalizerBoard{
		All:  build(func(t *totals) float64 { return t.all }, func(*totals) bool { return true }),
		Live: build(func(t *totals) float64 { return t.live }, func(t *totals) bool { return t.hasLive }),
	}
	if rt == model.Time {
		board.Par = round2(par)
	}

	return board
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatSeconds convertit un total de secondes (centièmes compris) en
// composantes d'affichage H:MM:SS.cc. Le total reste numérique en interne et
// n'est jamais re-parsé depuis cette chaîne
func FormatSeconds(total float64) string {
	centis := int64(math.Round(total * 100))
	hours := centis / 360000
	centis %= 360000
	minutes := centis / 6000
	centis %= 6000
	seconds := centis / 100
	centis %= 100

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}
