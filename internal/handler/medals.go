package handler

import (
	"net/http"

	"github.com/tony-montemuro/smb-website-sub002/internal/cache"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/ranking"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// GetMedals récupère la table de médailles d'une catégorie practice: pour
// chaque utilisateur, le nombre de niveaux où il tient les positions 1 à 4
// du tableau live (platine/or/argent/bronze)
func GetMedals(w http.ResponseWriter, r *http.Request) {
	req, err := parseBoardRequest(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, err.Error())
		return
	}

	key := cache.Key{Game: req.Game, Category: req.Category, Type: req.Type, Kind: cache.KindMedals}
	if cached, ok := boards.Get(key); ok {
		utils.Success(w, cached.([]model.MedalRow))
		return
	}

	category, levels, subs, err := categoryData(r.Context(), req)
	if err != nil {
		respondStoreError(w, "could not load medal table", err)
		return
	}

	// Seules les catégories practice reçoivent médailles et totalizer
	if !category.Practice {
		utils.ErrorSimple(w, http.StatusBadRequest, "medal tables only exist for practice-style categories")
		return
	}

	ascending := category.Policy().Ascending(req.Type)
	byLevel := groupByLevel(subs)

	// Un tableau live par niveau; les médailles se lisent sur les positions
	liveBoards := make([][]model.RankedEntry, 0)
	for _, lvl := range chartLevels(levels, req.Type) {
		board := ranking.BuildWorldRecordBoard(lvl.ID, byLevel[lvl.ID], ascending, model.Adjacent{})
		liveBoards = append(liveBoards, board.Live)
	}

	table := ranking.BuildMedalTable(liveBoards, ranking.LiveParticipants(subs))

	boards.Put(key, table)
	utils.Success(w, table)
}
