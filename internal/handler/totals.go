package handler

import (
	"net/http"

	"github.com/tony-montemuro/smb-website-sub002/internal/cache"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/ranking"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// GetTotals récupère le totalizer d'une catégorie practice: la somme des
// records courants de chaque utilisateur sur tous les niveaux, variantes
// all et live
func GetTotals(w http.ResponseWriter, r *http.Request) {
	req, err := parseBoardRequest(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, err.Error())
		return
	}

	key := cache.Key{Game: req.Game, Category: req.Category, Type: req.Type, Kind: cache.KindTotals}
	if cached, ok := boards.Get(key); ok {
		utils.Success(w, cached.(model.TotalizerBoard))
		return
	}

	category, levels, subs, err := categoryData(r.Context(), req)
	if err != nil {
		respondStoreError(w, "could not load totalizer", err)
		return
	}

	if !category.Practice {
		utils.ErrorSimple(w, http.StatusBadRequest, "totalizers only exist for practice-style categories")
		return
	}

	ascending := category.Policy().Ascending(req.Type)
	board := ranking.BuildTotalizerTable(subs, chartLevels(levels, req.Type), req.Type, ascending)

	boards.Put(key, board)
	utils.Success(w, board)
}
