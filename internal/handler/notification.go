package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tony-montemuro/smb-website-sub002/internal/middleware"
	"github.com/tony-montemuro/smb-website-sub002/internal/store"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// GetNotifications récupère les notifications de l'utilisateur authentifié
func GetNotifications(w http.ResponseWriter, r *http.Request) {
	profile, err := middleware.GetProfileFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	notifications, err := store.FetchNotifications(r.Context(), profile.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load notifications", err)
		return
	}

	utils.Success(w, notifications)
}

// DeleteNotification supprime une notification de l'utilisateur authentifié
func DeleteNotification(w http.ResponseWriter, r *http.Request) {
	profile, err := middleware.GetProfileFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id := mux.Vars(r)["id"]
	if err := store.DeleteNotification(r.Context(), id, profile.ID); err != nil {
		respondStoreError(w, "could not delete notification", err)
		return
	}

	utils.Message(w, "notification deleted")
}
