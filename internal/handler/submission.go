package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tony-montemuro/smb-website-sub002/internal/middleware"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/ranking"
	"github.com/tony-montemuro/smb-website-sub002/internal/store"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// CreateSubmissionRequest est la charge utile de POST /submissions
type CreateSubmissionRequest struct {
	LevelID    string  `json:"levelId"`
	RecordType string  `json:"recordType"`
	Record     float64 `json:"record"`
	Live       bool    `json:"live"`
	Proof      string  `json:"proof"`
	Comment    string  `json:"comment"`
	Monkey     string  `json:"monkey"`
	Platform   string  `json:"platform"`
	Region     string  `json:"region"`
	TAS        bool    `json:"tas"`
}

// CreateSubmission enregistre une nouvelle soumission (non approuvée) pour
// l'utilisateur authentifié
func CreateSubmission(w http.ResponseWriter, r *http.Request) {
	profile, err := middleware.GetProfileFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateSubmissionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rt := model.RecordType(req.RecordType)
	if !rt.Valid() {
		utils.ErrorSimple(w, http.StatusBadRequest, "recordType must be score or time")
		return
	}
	if req.LevelID == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "levelId is required")
		return
	}
	if req.Record <= 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "record must be positive")
		return
	}

	gameAbb, err := store.FetchLevelGame(r.Context(), req.LevelID)
	if err != nil {
		if err == store.ErrNotFound {
			utils.ErrorSimple(w, http.StatusBadRequest, "levelId does not reference a known level")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not validate level", err)
		return
	}

	id, err := store.InsertSubmission(r.Context(), rt, store.NewSubmission{
		ProfileID: profile.ID,
		LevelID:   req.LevelID,
		Record:    req.Record,
		Live:      req.Live,
		Proof:     req.Proof,
		Comment:   req.Comment,
		Monkey:    req.Monkey,
		Platform:  req.Platform,
		Region:    req.Region,
		TAS:       req.TAS,
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create submission", err)
		return
	}

	submissionCreated(gameAbb)

	utils.Success(w, map[string]string{"id": id})
}

// submissionCreated invalide les tableaux en cache du jeu concerné. Les
// tableaux incluent les soumissions non approuvées: une création doit
// apparaître dès le prochain accès, pas au prochain passage d'un modérateur
func submissionCreated(gameAbb string) {
	boards.InvalidateGame(gameAbb)
}

// GetRecentSubmissions récupère les dernières soumissions des deux types,
// fusionnées et normalisées (param: limit)
func GetRecentSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 20)

	scoreRaws, err := store.FetchRecentSubmissions(r.Context(), model.Score, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load recent submissions", err)
		return
	}
	timeRaws, err := store.FetchRecentSubmissions(r.Context(), model.Time, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load recent submissions", err)
		return
	}

	scores, scoreReport := ranking.Normalize(scoreRaws, model.Score)
	times, timeReport := ranking.Normalize(timeRaws, model.Time)
	logIntegrity("recent", scoreReport)
	logIntegrity("recent", timeReport)

	merged := ranking.ObsoleteHistory(ranking.Merge(scores, times))
	if len(merged) > limit {
		merged = merged[:limit]
	}

	utils.Success(w, merged)
}

// GetUserSubmissions récupère l'historique complet de soumissions d'un
// utilisateur, types score et temps fusionnés, du plus récent au plus ancien
func GetUserSubmissions(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["id"]

	if _, err := store.FetchProfile(r.Context(), profileID); err != nil {
		respondStoreError(w, "could not load profile", err)
		return
	}

	scoreRaws, err := store.FetchUserSubmissions(r.Context(), profileID, model.Score)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load user submissions", err)
		return
	}
	timeRaws, err := store.FetchUserSubmissions(r.Context(), profileID, model.Time)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load user submissions", err)
		return
	}

	scores, scoreReport := ranking.Normalize(scoreRaws, model.Score)
	times, timeReport := ranking.Normalize(timeRaws, model.Time)
	logIntegrity(profileID, scoreReport)
	logIntegrity(profileID, timeReport)

	utils.Success(w, ranking.ObsoleteHistory(ranking.Merge(scores, times)))
}
