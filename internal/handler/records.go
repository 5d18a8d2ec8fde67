package handler

import (
	"net/http"

	"github.com/tony-montemuro/smb-website-sub002/internal/cache"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/ranking"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// LevelHistory est la réponse du mode "show obsolete" d'un niveau: toutes les
// soumissions, courantes et obsolètes, de la plus récente à la plus ancienne
type LevelHistory struct {
	Level   string             `json:"level"`
	History []model.Submission `json:"history"`
}

// GetRecords récupère les tableaux de records mondiaux d'une catégorie, un
// tableau par niveau (variantes all + live + navigation). Params optionnels:
// level=<id> pour un seul niveau, obsolete=true pour l'historique complet
func GetRecords(w http.ResponseWriter, r *http.Request) {
	req, err := parseBoardRequest(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, err.Error())
		return
	}

	levelFilter := r.URL.Query().Get("level")
	showObsolete := utils.QueryBool(r, "obsolete")

	// Les tableaux par défaut sortent du cache quand ils y sont; le mode
	// obsolete est toujours recalculé (consultation rare)
	if !showObsolete {
		if cached, ok := boards.Get(recordsKey(req)); ok {
			respondRecords(w, cached.([]model.WorldRecordBoard), levelFilter)
			return
		}
	}

	category, levels, subs, err := categoryData(r.Context(), req)
	if err != nil {
		respondStoreError(w, "could not load record boards", err)
		return
	}

	playable := chartLevels(levels, req.Type)
	byLevel := groupByLevel(subs)

	if showObsolete {
		histories := make([]LevelHistory, 0, len(playable))
		for _, lvl := range playable {
			histories = append(histories, LevelHistory{
				Level:   lvl.ID,
				History: ranking.ObsoleteHistory(byLevel[lvl.ID]),
			})
		}
		respondHistories(w, histories, levelFilter)
		return
	}

	ascending := category.Policy().Ascending(req.Type)
	computed := make([]model.WorldRecordBoard, 0, len(playable))
	for _, lvl := range playable {
		adjacent := ranking.AdjacentLevels(playable, lvl.ID)
		computed = append(computed, ranking.BuildWorldRecordBoard(lvl.ID, byLevel[lvl.ID], ascending, adjacent))
	}

	boards.Put(recordsKey(req), computed)
	respondRecords(w, computed, levelFilter)
}

func recordsKey(req boardRequest) cache.Key {
	return cache.Key{Game: req.Game, Category: req.Category, Type: req.Type, Kind: cache.KindRecords}
}

// respondHistories applique le filtre level= à l'historique complet, avec le
// même 404 que le tableau par défaut pour un niveau inconnu
func respondHistories(w http.ResponseWriter, histories []LevelHistory, levelFilter string) {
	if levelFilter == "" {
		utils.Success(w, histories)
		return
	}

	for _, history := range histories {
		if history.Level == levelFilter {
			utils.Success(w, []LevelHistory{history})
			return
		}
	}
	utils.ErrorSimple(w, http.StatusNotFound, "level not found in category")
}

func respondRecords(w http.ResponseWriter, computed []model.WorldRecordBoard, levelFilter string) {
	if levelFilter == "" {
		utils.Success(w, computed)
		return
	}

	for _, board := range computed {
		if board.Level == levelFilter {
			utils.Success(w, []model.WorldRecordBoard{board})
			return
		}
	}
	utils.ErrorSimple(w, http.StatusNotFound, "level not found in category")
}
