package handler

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tony-montemuro/smb-website-sub002/internal/middleware"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/store"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// GetProfiles récupère tous les profils. Param optionnel search= pour une
// recherche floue sur les noms d'utilisateur
func GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := store.FetchProfiles(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load profiles", err)
		return
	}

	search := r.URL.Query().Get("search")
	if search == "" {
		utils.Success(w, profiles)
		return
	}

	// Recherche floue insensible à la casse et aux accents, meilleure
	// correspondance d'abord
	usernames := make([]string, len(profiles))
	for i, p := range profiles {
		usernames[i] = p.Username
	}

	ranks := fuzzy.RankFindNormalizedFold(search, usernames)
	sort.Sort(ranks)

	matched := make([]model.Profile, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, profiles[rank.OriginalIndex])
	}

	utils.Success(w, matched)
}

// GetProfile récupère un profil par ID
func GetProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	profile, err := store.FetchProfile(r.Context(), id)
	if err != nil {
		respondStoreError(w, "could not load profile", err)
		return
	}

	utils.Success(w, profile)
}

// UploadAvatar reçoit l'avatar de l'utilisateur authentifié en multipart et
// l'envoie vers Cloudinary
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	profile, err := middleware.GetProfileFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	// Un utilisateur ne change que son propre avatar
	if mux.Vars(r)["id"] != profile.ID {
		utils.ErrorSimple(w, http.StatusForbidden, "cannot change another user's avatar")
		return
	}

	if cloudinarySvc == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "avatar upload is not configured")
		return
	}

	// 5 Mo max
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing avatar file")
		return
	}
	defer file.Close()

	url, err := cloudinarySvc.UploadAvatar(r.Context(), file, profile.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	if err := store.UpdateAvatar(r.Context(), profile.ID, url); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar", err)
		return
	}

	utils.Success(w, map[string]string{"avatar": url})
}
