package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/ranking"
	"github.com/tony-montemuro/smb-website-sub002/internal/store"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// GetUnapprovedSubmissions récupère la file de modération: toutes les
// soumissions en attente, types score et temps confondus
func GetUnapprovedSubmissions(w http.ResponseWriter, r *http.Request) {
	scoreRaws, err := store.FetchUnapprovedSubmissions(r.Context(), model.Score)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load moderation queue", err)
		return
	}
	timeRaws, err := store.FetchUnapprovedSubmissions(r.Context(), model.Time)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load moderation queue", err)
		return
	}

	scores, scoreReport := ranking.Normalize(scoreRaws, model.Score)
	times, timeReport := ranking.Normalize(timeRaws, model.Time)
	logIntegrity("moderation", scoreReport)
	logIntegrity("moderation", timeReport)

	utils.Success(w, ranking.Merge(scores, times))
}

// moderationTarget valide la route d'une action de modération
func moderationTarget(r *http.Request) (model.RecordType, string, error) {
	vars := mux.Vars(r)
	rt := model.RecordType(vars["type"])
	if !rt.Valid() {
		return rt, "", fmt.Errorf("unknown record type %q, expected score or time", vars["type"])
	}
	return rt, vars["id"], nil
}

// ApproveSubmission valide une soumission, notifie son auteur et invalide le
// cache des tableaux du jeu concerné
func ApproveSubmission(w http.ResponseWriter, r *http.Request) {
	rt, id, err := moderationTarget(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, err.Error())
		return
	}

	meta, err := store.FetchSubmissionMeta(r.Context(), rt, id)
	if err != nil {
		respondStoreError(w, "could not load submission", err)
		return
	}

	if err := store.ApproveSubmission(r.Context(), rt, id); err != nil {
		respondStoreError(w, "could not approve submission", err)
		return
	}

	if _, err := store.InsertNotification(r.Context(), model.Notification{
		ProfileID:    meta.ProfileID,
		SubmissionID: id,
		Type:         "approve",
		Message:      "Your submission has been approved!",
	}); err != nil {
		// La notification est un à-côté: l'approbation a déjà eu lieu
		utils.LogError("could not notify %s: %v", meta.ProfileID, err)
	}

	// Les tableaux du jeu sont recalculés au prochain accès
	boards.InvalidateGame(meta.GameAbb)

	utils.Message(w, "submission approved")
}

// DeleteSubmission rejette et supprime une soumission, notifie son auteur et
// invalide le cache des tableaux du jeu concerné
func DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	rt, id, err := moderationTarget(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, err.Error())
		return
	}

	meta, err := store.FetchSubmissionMeta(r.Context(), rt, id)
	if err != nil {
		respondStoreError(w, "could not load submission", err)
		return
	}

	if err := store.DeleteSubmission(r.Context(), rt, id); err != nil {
		respondStoreError(w, "could not delete submission", err)
		return
	}

	if _, err := store.InsertNotification(r.Context(), model.Notification{
		ProfileID:    meta.ProfileID,
		SubmissionID: id,
		Type:         "delete",
		Message:      "Your submission has been removed by a moderator.",
	}); err != nil {
		utils.LogError("could not notify %s: %v", meta.ProfileID, err)
	}

	boards.InvalidateGame(meta.GameAbb)

	utils.Message(w, "submission deleted")
}
