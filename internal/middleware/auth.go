package middleware

import (
	"context"
	"fmt"
	"net/http"

	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/store"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// Context keys
type contextKey string

const (
	profileContextKey = contextKey("profile")
	tokenContextKey   = contextKey("token")
)

// AuthMiddleware valide le token de session et injecte le profil dans le
// contexte. L'émission des tokens (login/signup) est hors du périmètre du
// service: seuls des tokens déjà en base sont acceptés
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.ErrorSimple(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		profile, err := store.FetchProfileByToken(r.Context(), token)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
			return
		}

		// Injecter le profil et le token dans le contexte
		ctx := context.WithValue(r.Context(), profileContextKey, *profile)
		ctx = context.WithValue(ctx, tokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ModeratorOnly refuse les requêtes dont le profil n'est pas modérateur.
// À chaîner après AuthMiddleware
func ModeratorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile, err := GetProfileFromContext(r)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !profile.Moderator {
			utils.ErrorSimple(w, http.StatusForbidden, "moderator privileges required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetProfileFromContext récupère le profil depuis le contexte de la requête
func GetProfileFromContext(r *http.Request) (model.Profile, error) {
	profile, ok := r.Context().Value(profileContextKey).(model.Profile)
	if !ok {
		return model.Profile{}, fmt.Errorf("profile not found in context")
	}
	return profile, nil
}

// GetTokenFromContext récupère le token depuis le contexte de la requête
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}
