package model

// RankedEntry est une ligne du tableau des records mondiaux
type RankedEntry struct {
	Position   int        `json:"position"`
	Submission Submission `json:"submission"`
}

// Adjacent donne les niveaux précédent/suivant pour la navigation du tableau
type Adjacent struct {
	Prev *string `json:"prev"`
	Next *string `json:"next"`
}

// WorldRecordBoard regroupe les variantes "all" et "live" d'un niveau
type WorldRecordBoard struct {
	Level    string        `json:"level"`
	All      []RankedEntry `json:"all"`
	Live     []RankedEntry `json:"live"`
	Adjacent Adjacent      `json:"adjacent"`
}

// MedalRow compte les médailles d'un utilisateur sur une catégorie
type MedalRow struct {
	Profile  Profile `json:"profile"`
	Platinum int     `json:"platinum"`
	Gold     int     `json:"gold"`
	Silver   int     `json:"silver"`
	Bronze   int     `json:"bronze"`
	Position int     `json:"position"`
}

// TotalRow est la somme des records courants d'un utilisateur sur tous les
// niveaux d'une catégorie. Display n'est rempli que pour les temps
type TotalRow struct {
	Profile  Profile `json:"profile"`
	Total    float64 `json:"total"`
	Display  string  `json:"display,omitempty"`
	Position int     `json:"position"`
}

// TotalizerBoard regroupe les deux variantes du totalizer. Par est la somme
// des temps théoriques des niveaux, fournie pour l'affichage uniquement
type TotalizerBoard struct {
	All  []TotalRow `json:"all"`
	Live []TotalRow `json:"live"`
	Par  float64    `json:"par,omitempty"`
}
