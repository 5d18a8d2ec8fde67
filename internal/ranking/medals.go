package ranking

import (
	"sort"

	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

// Les médailles correspondent aux positions 1 à 4 du tableau live d'un niveau
const (
	platinumPos = 1
	goldPos     = 2
	silverPos   = 3
	bronzePos   = 4
)

// BuildMedalTable agrège les tableaux live de chaque niveau en table de
// médailles. participants liste tous les utilisateurs ayant au moins une
// soumission live dans la catégorie: ils apparaissent même sans médaille.
// Seules les positions 1 à 4 comptent; une égalité à la position 1 attribue
// le platine à chaque ex aequo et les paliers sautés ne sont pas décernés
func BuildMedalTable(liveBoards [][]model.RankedEntry, participants []model.Profile) []model.MedalRow {
	rows := make(map[string]*model.MedalRow, len(participants))
	order := make([]string, 0, len(participants))

	for _, p := range participants {
		if _, ok := rows[p.ID]; ok {
			continue
		}
		rows[p.ID] = &model.MedalRow{Profile: p}
		order = append(order, p.ID)
	}

	for _, board := range liveBoards {
		for _, entry := range board {
			if entry.Position > bronzePos {
				break
			}
			row, ok := rows[entry.Submission.Profile.ID]
			if !ok {
				// L'utilisateur manque de la liste des participants: il est
				// quand même compté plutôt que de perdre la médaille
				row = &model.MedalRow{Profile: entry.Submission.Profile}
				rows[entry.Submission.Profile.ID] = row
				order = append(order, entry.Submission.Profile.ID)
			}
			switch entry.Position {
			case platinumPos:
				row.Platinum++
			case goldPos:
				row.Gold++
			case silverPos:
				row.Silver++
			case bronzePos:
				row.Bronze++
			}
		}
	}

	table := make([]model.MedalRow, 0, len(order))
	for _, id := range order {
		table = append(table, *rows[id])
	}

	// Tri lexicographique décroissant sur (platine, or, argent, bronze),
	// puis nom d'utilisateur pour un ordre stable entre ex aequo
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Platinum != b.Platinum {
			return a.Platinum > b.Platinum
		}
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		if a.Silver != b.Silver {
			return a.Silver > b.Silver
		}
		if a.Bronze != b.Bronze {
			return a.Bronze > b.Bronze
		}
		return a.Profile.Username < b.Profile.Username
	})

	Positions(len(table), func(i, j int) bool {
		return table[i].Platinum == table[j].Platinum &&
			table[i].Gold == table[j].Gold &&
			table[i].Silver == table[j].Silver &&
			table[i].Bronze == table[j].Bronze
	}, func(i, pos int) {
		table[i].Position = pos
	})

	return table
}

// LiveParticipants extrait les profils ayant au moins une soumission live,
// dédoublonnés, dans l'ordre de première rencontre
func LiveParticipants(subs []model.Submission) []model.Profile {
	seen := make(map[string]bool)
	participants := make([]model.Profile, 0)

	for _, sub := range subs {
		if !sub.Live || seen[sub.Profile.ID] {
			continue
		}
		seen[sub.Profile.ID] = true
		participants = append(participants, sub.Profile)
	}

	return participants
}
