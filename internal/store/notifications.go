package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tony-montemuro/smb-website-sub002/internal/database"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/scanner"
)

// InsertNotification avertit un utilisateur d'une action de modération sur sa
// soumission (type "approve" ou "delete")
func InsertNotification(ctx context.Context, n model.Notification) (string, error) {
	id := uuid.NewString()

	_, err := database.DB.Exec(ctx, `
		INSERT INTO notifications (id, profile_id, submission_id, type, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, n.ProfileID, n.SubmissionID, n.Type, n.Message, time.Now())
	if err != nil {
		return "", fmt.Errorf("could not insert notification: %w", err)
	}

	return id, nil
}

// FetchNotifications récupère les notifications d'un utilisateur, les plus
// récentes d'abord
func FetchNotifications(ctx context.Context, profileID string) ([]model.Notification, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, profile_id, submission_id, type, message, created_at
		FROM notifications
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("could not query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanner.ScanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan notification row: %w", err)
		}
		notifications = append(notifications, *n)
	}

	return notifications, rows.Err()
}

// DeleteNotification supprime une notification de l'utilisateur qui la possède
func DeleteNotification(ctx context.Context, id, profileID string) error {
	tag, err := database.DB.Exec(ctx, `
		DELETE FROM notifications WHERE id = $1 AND profile_id = $2
	`, id, profileID)
	if err != nil {
		return fmt.Errorf("could not delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
