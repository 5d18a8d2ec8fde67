package handler

import (
	"net/http"

	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "SMB Website API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"games": []map[string]string{
				{"method": "GET", "path": "/games", "description": "Catalogue des jeux"},
				{"method": "GET", "path": "/games/{abb}", "description": "Un jeu et ses catégories"},
				{"method": "GET", "path": "/games/{abb}/{category}/levels", "description": "Niveaux ordonnés d'une catégorie"},
				{"method": "POST", "path": "/games/{abb}/boxart", "description": "Upload de la jaquette (modérateur)"},
			},
			"boards": []map[string]string{
				{"method": "GET", "path": "/games/{abb}/{category}/{type}/records", "description": "Records mondiaux par niveau (params: level, obsolete)"},
				{"method": "GET", "path": "/games/{abb}/{category}/{type}/medals", "description": "Table de médailles (catégories practice)"},
				{"method": "GET", "path": "/games/{abb}/{category}/{type}/totals", "description": "Totalizer all + live (catégories practice)"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "Tous les profils (param: search)"},
				{"method": "GET", "path": "/users/{id}", "description": "Un profil par ID"},
				{"method": "GET", "path": "/users/{id}/submissions", "description": "Historique de soumissions d'un utilisateur"},
				{"method": "POST", "path": "/users/{id}/avatar", "description": "Upload de l'avatar (authentifié)"},
			},
			"submissions": []map[string]string{
				{"method": "POST", "path": "/submissions", "description": "Créer une soumission (authentifié)"},
				{"method": "GET", "path": "/submissions/recent", "description": "Dernières soumissions (param: limit)"},
				{"method": "GET", "path": "/submissions/unapproved", "description": "File de modération (modérateur)"},
				{"method": "POST", "path": "/submissions/{type}/{id}/approve", "description": "Approuver une soumission (modérateur)"},
				{"method": "DELETE", "path": "/submissions/{type}/{id}", "description": "Supprimer une soumission (modérateur)"},
			},
			"notifications": []map[string]string{
				{"method": "GET", "path": "/notifications", "description": "Notifications de l'utilisateur (authentifié)"},
				{"method": "DELETE", "path": "/notifications/{id}", "description": "Supprimer une notification (authentifié)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST du site communautaire de speedrun Super Monkey Ball",
		},
	}

	utils.Success(w, routes)
}
