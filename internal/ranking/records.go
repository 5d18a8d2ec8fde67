package ranking

import (
	"sort"

	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

// better compare deux records dans la direction de classement
func better(a, b float64, ascending bool) bool {
	if ascending {
		return a < b
	}
	return a > b
}

// CurrentRecords applique le filtre d'obsolescence: pour chaque utilisateur,
// seule sa meilleure soumission du niveau est conservée (la plus ancienne en
// cas d'égalité). Les soumissions reçues concernent un seul niveau et un seul
// type de record. L'entrée n'est jamais modifiée
func CurrentRecords(subs []model.Submission, ascending bool) []model.Submission {
	best := make(map[string]model.Submission)
	order := make([]string, 0)

	for _, sub := range subs {
		held, ok := best[sub.Profile.ID]
		if !ok {
			best[sub.Profile.ID] = sub
			order = append(order, sub.Profile.ID)
			continue
		}
		if better(sub.Record, held.Record, ascending) {
			best[sub.Profile.ID] = sub
		} else if sub.Record == held.Record && sub.SubmittedAt.Before(held.SubmittedAt) {
			// Égalité: la soumission la plus ancienne reste le record courant
			best[sub.Profile.ID] = sub
		}
	}

	current := make([]model.Submission, 0, len(order))
	for _, id := range order {
		current = append(current, best[id])
	}
	return current
}

// Rank trie les records courants dans la direction de classement (départagés
// par date de soumission croissante) et leur attribue des positions avec
// égalité numérique exacte
func Rank(subs []model.Submission, ascending bool) []model.RankedEntry {
	sorted := make([]model.Submission, len(subs))
	copy(sorted, subs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Record != sorted[j].Record {
			return better(sorted[i].Record, sorted[j].Record, ascending)
		}
		return sorted[i].SubmittedAt.Before(sorted[j].SubmittedAt)
	})

	entries := make([]model.RankedEntry, len(sorted))
	for i, sub := range sorted {
		entries[i] = model.RankedEntry{Submission: sub}
	}

	Positions(len(entries), func(i, j int) bool {
		return entries[i].Submission.Record == entries[j].Submission.Record
	}, func(i, pos int) {
		entries[i].Position = pos
	})

	return entries
}

// BuildWorldRecordBoard produit le tableau des records d'un niveau: variante
// "all" et variante "live" indépendante (le filtre d'obsolescence est rejoué
// sur le seul sous-ensemble live)
func BuildWorldRecordBoard(level string, subs []model.Submission, ascending bool, adjacent model.Adjacent) model.WorldRecordBoard {
	board := model.WorldRecordBoard{
		Level:    level,
		All:      Rank(CurrentRecords(subs, ascending), ascending),
		Adjacent: adjacent,
	}

	live := make([]model.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.Live {
			live = append(live, sub)
		}
	}
	board.Live = Rank(CurrentRecords(live, ascending), ascending)

	return board
}

// ObsoleteHistory renvoie la séquence complète (records courants et obsolètes
// confondus) d'un niveau, ordonnée de la soumission la plus récente à la plus
// ancienne. C'est le mode "show obsolete" du tableau
func ObsoleteHistory(subs []model.Submission) []model.Submission {
	history := make([]model.Submission, len(subs))
	copy(history, subs)

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].SubmittedAt.After(history[j].SubmittedAt)
	})

	return history
}

// AdjacentLevels calcule la navigation précédent/suivant d'un niveau dans la
// liste ordonnée des niveaux de son mode (principal ou misc)
func AdjacentLevels(levels []model.Level, current string) model.Adjacent {
	var adjacent model.Adjacent

	idx := -1
	var misc bool
	for i, lvl := range levels {
		if lvl.ID == current {
			idx = i
			misc = lvl.Misc
			break
		}
	}
	if idx < 0 {
		return adjacent
	}

	for i := idx - 1; i >= 0; i-- {
		if levels[i].Misc == misc {
			name := levels[i].Name
			adjacent.Prev = &name
			break
		}
	}
	for i := idx + 1; i < len(levels); i++ {
		if levels[i].Misc == misc {
			name := levels[i].Name
			adjacent.Next = &name
			break
		}
	}

	return adjacent
}
