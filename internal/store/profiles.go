package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tony-montemuro/smb-website-sub002/internal/database"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/scanner"
)

const selectProfile = `
	SELECT id, username, country, avatar, bio, youtube_url, twitch_url, moderator, join_date
	FROM profiles
`

// FetchProfiles récupère tous les profils, ordonnés par nom d'utilisateur
func FetchProfiles(ctx context.Context) ([]model.Profile, error) {
	rows, err := database.DB.Query(ctx, selectProfile+` ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("could not query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanner.ScanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan profile row: %w", err)
		}
		profiles = append(profiles, *p)
	}

	return profiles, rows.Err()
}

// FetchProfile récupère un profil par ID
func FetchProfile(ctx context.Context, id string) (*model.Profile, error) {
	row := database.DB.QueryRow(ctx, selectProfile+` WHERE id = $1`, id)

	p, err := scanner.ScanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch profile %s: %w", id, err)
	}

	return p, nil
}

// FetchProfileByToken valide un token de session et renvoie le profil associé
func FetchProfileByToken(ctx context.Context, token string) (*model.Profile, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT p.id, p.username, p.country, p.avatar, p.bio,
		       p.youtube_url, p.twitch_url, p.moderator, p.join_date
		FROM profiles p
		JOIN sessions s ON p.id = s.profile_id
		WHERE s.token = $1
		  AND s.is_active = true
		  AND s.expires_at > NOW()
	`, token)

	p, err := scanner.ScanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("token not found or expired")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return p, nil
}

// UpdateAvatar enregistre l'URL du nouvel avatar d'un profil
func UpdateAvatar(ctx context.Context, profileID, url string) error {
	tag, err := database.DB.Exec(ctx,
		`UPDATE profiles SET avatar = $1 WHERE id = $2`,
		url, profileID,
	)
	if err != nil {
		return fmt.Errorf("could not update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
