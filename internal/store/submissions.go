package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tony-montemuro/smb-website-sub002/internal/database"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/scanner"
)

// submissionTable renvoie la table correspondant au type de record. Les
// soumissions de score et de temps vivent dans deux tables distinctes; le
// normaliseur du moteur de classement les réunit en union taguée
func submissionTable(rt model.RecordType) string {
	if rt == model.Score {
		return "score_submissions"
	}
	return "time_submissions"
}

// selectRawSubmissions est la projection commune des lignes brutes: la
// soumission, son profil et son niveau. Les LEFT JOIN laissent une référence
// cassée arriver au normaliseur en colonnes NULL, qui l'écarte en erreur
// d'intégrité. Un niveau cassé ne surface que dans les requêtes non filtrées
// par la table levels (utilisateur, récentes, modération): une requête par
// jeu ne peut pas rattacher une telle ligne à un jeu et l'exclut dans son
// WHERE
const selectRawSubmissions = `
	SELECT
		s.id, s.record, s.submitted_at, s.live, s.approved,
		s.proof, s.comment, s.monkey, s.platform, s.region, s.tas,
		p.id, p.username, p.country, p.avatar,
		l.id, l.name, l.misc, l.chart, l.par_time, l.position
	FROM %s s
	LEFT JOIN profiles p ON s.profile_id = p.id
	LEFT JOIN levels l ON s.level_id = l.id
`

// FetchSubmissions récupère toutes les soumissions (approuvées ou non, live
// ou replay) d'un jeu/catégorie pour un type de record. Le moteur de
// classement fait lui-même tout le filtrage
func FetchSubmissions(ctx context.Context, gameAbb, category string, rt model.RecordType) ([]model.RawSubmission, error) {
	query := fmt.Sprintf(selectRawSubmissions+`
		WHERE l.game_abb = $1 AND l.category = $2
		ORDER BY s.submitted_at
	`, submissionTable(rt))

	rows, err := database.DB.Query(ctx, query, gameAbb, category)
	if err != nil {
		return nil, fmt.Errorf("could not query %s: %w", submissionTable(rt), err)
	}
	defer rows.Close()

	var raws []model.RawSubmission
	for rows.Next() {
		raw, err := scanner.ScanRawSubmission(rows, rt)
		if err != nil {
			return nil, fmt.Errorf("could not scan submission row: %w", err)
		}
		raws = append(raws, *raw)
	}

	return raws, rows.Err()
}

// FetchUserSubmissions récupère les soumissions d'un utilisateur pour un type
// de record, de la plus récente à la plus ancienne
func FetchUserSubmissions(ctx context.Context, profileID string, rt model.RecordType) ([]model.RawSubmission, error) {
	query := fmt.Sprintf(selectRawSubmissions+`
		WHERE s.profile_id = $1
		ORDER BY s.submitted_at DESC
	`, submissionTable(rt))

	rows, err := database.DB.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("could not query user submissions: %w", err)
	}
	defer rows.Close()

	var raws []model.RawSubmission
	for rows.Next() {
		raw, err := scanner.ScanRawSubmission(rows, rt)
		if err != nil {
			return nil, fmt.Errorf("could not scan submission row: %w", err)
		}
		raws = append(raws, *raw)
	}

	return raws, rows.Err()
}

// FetchRecentSubmissions récupère les dernières soumissions d'un type, toutes
// catégories confondues
func FetchRecentSubmissions(ctx context.Context, rt model.RecordType, limit int) ([]model.RawSubmission, error) {
	query := fmt.Sprintf(selectRawSubmissions+`
		ORDER BY s.submitted_at DESC
		LIMIT $1
	`, submissionTable(rt))

	rows, err := database.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query recent submissions: %w", err)
	}
	defer rows.Close()

	var raws []model.RawSubmission
	for rows.Next() {
		raw, err := scanner.ScanRawSubmission(rows, rt)
		if err != nil {
			return nil, fmt.Errorf("could not scan submission row: %w", err)
		}
		raws = append(raws, *raw)
	}

	return raws, rows.Err()
}

// FetchUnapprovedSubmissions récupère la file de modération d'un type
func FetchUnapprovedSubmissions(ctx context.Context, rt model.RecordType) ([]model.RawSubmission, error) {
	query := fmt.Sprintf(selectRawSubmissions+`
		WHERE s.approved = false
		ORDER BY s.submitted_at
	`, submissionTable(rt))

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query unapproved submissions: %w", err)
	}
	defer rows.Close()

	var raws []model.RawSubmission
	for rows.Next() {
		raw, err := scanner.ScanRawSubmission(rows, rt)
		if err != nil {
			return nil, fmt.Errorf("could not scan submission row: %w", err)
		}
		raws = append(raws, *raw)
	}

	return raws, rows.Err()
}

// NewSubmission est la charge utile d'une création de soumission
type NewSubmission struct {
	ProfileID string
	LevelID   string
	Record    float64
	Live      bool
	Proof     string
	Comment   string
	Monkey    string
	Platform  string
	Region    string
	TAS       bool
}

// InsertSubmission insère une soumission non approuvée et renvoie son ID
func InsertSubmission(ctx context.Context, rt model.RecordType, sub NewSubmission) (string, error) {
	id := uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO %s
			(id, profile_id, level_id, record, submitted_at, live, approved,
			 proof, comment, monkey, platform, region, tas)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7, $8, $9, $10, $11, $12)
	`, submissionTable(rt))

	_, err := database.DB.Exec(ctx, query,
		id, sub.ProfileID, sub.LevelID, sub.Record, time.Now(), sub.Live,
		sub.Proof, sub.Comment, sub.Monkey, sub.Platform, sub.Region, sub.TAS,
	)
	if err != nil {
		return "", fmt.Errorf("could not insert submission: %w", err)
	}

	return id, nil
}

// SubmissionMeta identifie le propriétaire et le jeu d'une soumission,
// nécessaire pour notifier l'utilisateur et invalider le cache du jeu
type SubmissionMeta struct {
	ID        string
	ProfileID string
	GameAbb   string
}

// FetchSubmissionMeta récupère les métadonnées d'une soumission
func FetchSubmissionMeta(ctx context.Context, rt model.RecordType, id string) (*SubmissionMeta, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.profile_id, l.game_abb
		FROM %s s
		JOIN levels l ON s.level_id = l.id
		WHERE s.id = $1
	`, submissionTable(rt))

	var meta SubmissionMeta
	err := database.DB.QueryRow(ctx, query, id).Scan(&meta.ID, &meta.ProfileID, &meta.GameAbb)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch submission %s: %w", id, err)
	}

	return &meta, nil
}

// ApproveSubmission marque une soumission comme validée par un modérateur
func ApproveSubmission(ctx context.Context, rt model.RecordType, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET approved = true WHERE id = $1`, submissionTable(rt))

	tag, err := database.DB.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not approve submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteSubmission supprime définitivement une soumission rejetée
func DeleteSubmission(ctx context.Context, rt model.RecordType, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, submissionTable(rt))

	tag, err := database.DB.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
