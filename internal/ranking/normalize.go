// Package ranking est le moteur de classement: normalisation des soumissions,
// tableaux de records mondiaux, tables de médailles et totalizers. Toutes les
// fonctions sont pures: elles ne modifient jamais leurs entrées et ne font
// aucune E/S.
package ranking

import (
	"fmt"
	"math"
	"sort"

	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

// DroppedRow décrit une ligne écartée pour cause d'intégrité (référence
// manquante, valeur absente, type interdit par le chart du niveau)
type DroppedRow struct {
	ID     string
	Reason string
}

// Report accumule les lignes écartées pendant la normalisation. Une ligne
// invalide n'interrompt jamais le lot: elle est comptée et le reste du
// tableau est calculé normalement
type Report struct {
	Dropped []DroppedRow
}

func (r *Report) drop(id, reason string) {
	r.Dropped = append(r.Dropped, DroppedRow{ID: id, Reason: reason})
}

// Normalize fusionne les lignes brutes des tables score et temps en une seule
// séquence de soumissions taguées, ordonnée par date de soumission. Les temps
// sont arrondis à deux décimales. Les lignes mal formées sont écartées et
// consignées dans le rapport
func Normalize(rows []model.RawSubmission, rt model.RecordType) ([]model.Submission, Report) {
	var report Report
	subs := make([]model.Submission, 0, len(rows))

	for _, row := range rows {
		if row.Profile == nil || row.Profile.ID == "" {
			report.drop(row.ID, "missing profile reference")
			continue
		}
		if row.Level == nil || row.Level.ID == "" {
			report.drop(row.ID, "missing level reference")
			continue
		}

		var record float64
		switch rt {
		case model.Score:
			if row.Score == nil {
				report.drop(row.ID, "missing score value")
				continue
			}
			if row.Level.Chart == model.ChartTime {
				report.drop(row.ID, fmt.Sprintf("level %s does not accept score submissions", row.Level.ID))
				continue
			}
			record = *row.Score
		case model.Time:
			if row.Time == nil {
				report.drop(row.ID, "missing time value")
				continue
			}
			if row.Level.Chart == model.ChartScore {
				report.drop(row.ID, fmt.Sprintf("level %s does not accept time submissions", row.Level.ID))
				continue
			}
			// Les temps sont normalisés au centième de seconde
			record = math.Round(*row.Time*100) / 100
		default:
			report.drop(row.ID, fmt.Sprintf("unknown record type %q", rt))
			continue
		}

		subs = append(subs, model.Submission{
			ID:          row.ID,
			Profile:     *row.Profile,
			Level:       *row.Level,
			Record:      record,
			RecordType:  rt,
			SubmittedAt: row.SubmittedAt,
			Live:        row.Live,
			Approved:    row.Approved,
			Proof:       row.Proof,
			Comment:     row.Comment,
			Monkey:      row.Monkey,
			Platform:    row.Platform,
			Region:      row.Region,
			TAS:         row.TAS,
		})
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.Before(subs[j].SubmittedAt)
	})

	return subs, report
}

// Merge combine les séquences normalisées score et temps en une seule,
// ré-ordonnée par date de soumission
func Merge(scores, times []model.Submission) []model.Submission {
	merged := make([]model.Submission, 0, len(scores)+len(times))
	merged = append(merged, scores...)
	merged = append(merged, times...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SubmittedAt.Before(merged[j].SubmittedAt)
	})

	return merged
}
