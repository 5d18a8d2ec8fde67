package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/store"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// GetGames récupère le catalogue des jeux
func GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := store.FetchGames(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load games", err)
		return
	}

	utils.Success(w, games)
}

// GameDetail est un jeu accompagné de ses catégories
type GameDetail struct {
	model.Game
	Categories []model.Category `json:"categories"`
}

// GetGame récupère un jeu et ses catégories
func GetGame(w http.ResponseWriter, r *http.Request) {
	abb := mux.Vars(r)["abb"]

	game, err := store.FetchGame(r.Context(), abb)
	if err != nil {
		respondStoreError(w, "could not load game", err)
		return
	}

	categories, err := store.FetchCategories(r.Context(), abb)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load categories", err)
		return
	}

	utils.Success(w, GameDetail{Game: *game, Categories: categories})
}

// UploadBoxArt reçoit la jaquette d'un jeu en multipart et l'envoie vers
// Cloudinary (modérateurs uniquement)
func UploadBoxArt(w http.ResponseWriter, r *http.Request) {
	abb := mux.Vars(r)["abb"]

	if cloudinarySvc == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "box art upload is not configured")
		return
	}

	if _, err := store.FetchGame(r.Context(), abb); err != nil {
		respondStoreError(w, "could not load game", err)
		return
	}

	// 5 Mo max
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("boxart")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing boxart file")
		return
	}
	defer file.Close()

	url, err := cloudinarySvc.UploadBoxArt(r.Context(), file, abb)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload box art", err)
		return
	}

	if err := store.UpdateBoxArt(r.Context(), abb, url); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save box art", err)
		return
	}

	utils.Success(w, map[string]string{"boxArt": url})
}

// GetLevels récupère la liste ordonnée des niveaux d'une catégorie
func GetLevels(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	levels, err := store.FetchLevelList(r.Context(), vars["abb"], vars["category"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load levels", err)
		return
	}

	utils.Success(w, levels)
}
