// Package store regroupe l'accès Postgres: catalogue (jeux, catégories,
// niveaux), soumissions brutes pour le moteur de classement, profils et
// notifications. Toutes les fonctions passent par le pool global du package
// database
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tony-montemuro/smb-website-sub002/internal/database"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/scanner"
)

// ErrNotFound signale une entité absente (jeu, catégorie, profil...)
var ErrNotFound = fmt.Errorf("not found")

// FetchGames récupère tous les jeux, releases officielles d'abord
func FetchGames(ctx context.Context) ([]model.Game, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT abb, name, custom, box_art, release_date, monkeys, platforms, regions
		FROM games
		ORDER BY custom, release_date, name
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query games: %w", err)
	}
	defer rows.Close()

	var games []model.Game
	for rows.Next() {
		g, err := scanner.ScanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan game row: %w", err)
		}
		games = append(games, *g)
	}

	return games, rows.Err()
}

// FetchGame récupère un jeu par son abréviation
func FetchGame(ctx context.Context, abb string) (*model.Game, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT abb, name, custom, box_art, release_date, monkeys, platforms, regions
		FROM games
		WHERE abb = $1
	`, abb)

	g, err := scanner.ScanGame(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch game %s: %w", abb, err)
	}

	return g, nil
}

// UpdateBoxArt enregistre l'URL de la nouvelle jaquette d'un jeu
func UpdateBoxArt(ctx context.Context, gameAbb, url string) error {
	tag, err := database.DB.Exec(ctx,
		`UPDATE games SET box_art = $1 WHERE abb = $2`,
		url, gameAbb,
	)
	if err != nil {
		return fmt.Errorf("could not update box art: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// FetchCategoryConfig récupère la configuration d'une catégorie: politique
// ascendante par type de record et drapeau practice
func FetchCategoryConfig(ctx context.Context, gameAbb, category string) (*model.Category, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT id, game_abb, name, ascending_score, ascending_time, practice
		FROM categories
		WHERE game_abb = $1 AND id = $2
	`, gameAbb, category)

	c, err := scanner.ScanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch category %s/%s: %w", gameAbb, category, err)
	}

	return c, nil
}

// FetchCategories récupère les catégories d'un jeu
func FetchCategories(ctx context.Context, gameAbb string) ([]model.Category, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, game_abb, name, ascending_score, ascending_time, practice
		FROM categories
		WHERE game_abb = $1
		ORDER BY name
	`, gameAbb)
	if err != nil {
		return nil, fmt.Errorf("could not query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		c, err := scanner.ScanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan category row: %w", err)
		}
		categories = append(categories, *c)
	}

	return categories, rows.Err()
}

// FetchLevelGame récupère le jeu auquel un niveau appartient. Une création de
// soumission en a besoin pour valider le niveau et invalider le cache des
// tableaux du jeu
func FetchLevelGame(ctx context.Context, levelID string) (string, error) {
	var gameAbb string
	err := database.DB.QueryRow(ctx,
		`SELECT game_abb FROM levels WHERE id = $1`, levelID,
	).Scan(&gameAbb)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("could not fetch level %s: %w", levelID, err)
	}

	return gameAbb, nil
}

// FetchLevelList récupère la liste ordonnée des niveaux d'une catégorie,
// utilisée par le totalizer (itération "tous les niveaux") et par la
// navigation précédent/suivant du tableau des records
func FetchLevelList(ctx context.Context, gameAbb, category string) ([]model.Level, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, name, game_abb, category, misc, chart, par_time, position
		FROM levels
		WHERE game_abb = $1 AND category = $2
		ORDER BY position
	`, gameAbb, category)
	if err != nil {
		return nil, fmt.Errorf("could not query levels: %w", err)
	}
	defer rows.Close()

	var levels []model.Level
	for rows.Next() {
		l, err := scanner.ScanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan level row: %w", err)
		}
		levels = append(levels, *l)
	}

	return levels, rows.Err()
}
