package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/ranking"
	"github.com/tony-montemuro/smb-website-sub002/internal/store"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// boardRequest rassemble la sélection (jeu, catégorie, type) d'une requête de
// tableau après validation
type boardRequest struct {
	Game     string
	Category string
	Type     model.RecordType
}

// parseBoardRequest valide les variables de route d'une requête de tableau
func parseBoardRequest(r *http.Request) (boardRequest, error) {
	vars := mux.Vars(r)
	req := boardRequest{
		Game:     vars["abb"],
		Category: vars["category"],
		Type:     model.RecordType(vars["type"]),
	}

	if !req.Type.Valid() {
		return req, fmt.Errorf("unknown record type %q, expected score or time", vars["type"])
	}

	return req, nil
}

// categoryData charge et normalise tout ce qu'un tableau demande: la
// configuration de la catégorie, la liste ordonnée des niveaux et la séquence
// de soumissions normalisée. Les lignes écartées sont loguées, jamais fatales
func categoryData(ctx context.Context, req boardRequest) (*model.Category, []model.Level, []model.Submission, error) {
	category, err := store.FetchCategoryConfig(ctx, req.Game, req.Category)
	if err != nil {
		return nil, nil, nil, err
	}

	levels, err := store.FetchLevelList(ctx, req.Game, req.Category)
	if err != nil {
		return nil, nil, nil, err
	}

	raws, err := store.FetchSubmissions(ctx, req.Game, req.Category, req.Type)
	if err != nil {
		return nil, nil, nil, err
	}

	subs, report := ranking.Normalize(raws, req.Type)
	logIntegrity(req.Game, report)

	return category, levels, subs, nil
}

// logIntegrity consigne les lignes écartées par le normaliseur
func logIntegrity(game string, report ranking.Report) {
	if len(report.Dropped) == 0 {
		return
	}
	reasons := make([]string, 0, len(report.Dropped))
	for _, d := range report.Dropped {
		reasons = append(reasons, fmt.Sprintf("%s: %s", d.ID, d.Reason))
	}
	utils.LogIntegrity(game, len(report.Dropped), reasons)
}

// chartLevels filtre la liste des niveaux à ceux dont le chart accepte le
// type de record demandé
func chartLevels(levels []model.Level, rt model.RecordType) []model.Level {
	keep := make([]model.Level, 0, len(levels))
	for _, lvl := range levels {
		if lvl.Chart == model.ChartBoth || string(lvl.Chart) == string(rt) {
			keep = append(keep, lvl)
		}
	}
	return keep
}

// groupByLevel répartit la séquence normalisée par niveau sans la modifier
func groupByLevel(subs []model.Submission) map[string][]model.Submission {
	byLevel := make(map[string][]model.Submission)
	for _, sub := range subs {
		byLevel[sub.Level.ID] = append(byLevel[sub.Level.ID], sub)
	}
	return byLevel
}

// respondStoreError traduit une erreur du store en réponse HTTP: 404 pour une
// entité absente, 500 (réessayable côté client) pour le reste
func respondStoreError(w http.ResponseWriter, message string, err error) {
	if err == store.ErrNotFound {
		utils.ErrorSimple(w, http.StatusNotFound, message+": not found")
		return
	}
	utils.Error(w, http.StatusInternalServerError, message, err)
}
