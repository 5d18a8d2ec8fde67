package model

// ChartType indique quels types de record un niveau accepte
type ChartType string

const (
	ChartScore ChartType = "score"
	ChartTime  ChartType = "time"
	ChartBoth  ChartType = "both"
)

// Game représente un jeu référencé sur le site
type Game struct {
	Abb     string `json:"abb"` // identifiant court (ex: "smb1")
	Name    string `json:"name"`
	Custom  bool   `json:"custom"` // jeu custom vs release officielle
	BoxArt  string `json:"boxArt,omitempty"`
	Release string `json:"release,omitempty"`

	// Valeurs autorisées pour les tags de soumission du jeu
	Monkeys   []string `json:"monkeys,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
	Regions   []string `json:"regions,omitempty"`
}

// Category est une catégorie d'un jeu avec sa politique de classement
type Category struct {
	ID             string `json:"id"`
	GameAbb        string `json:"gameAbb"`
	Name           string `json:"name"`
	AscendingScore bool   `json:"ascendingScore"` // true: score plus bas = meilleur
	AscendingTime  bool   `json:"ascendingTime"`  // true: temps plus bas = meilleur
	Practice       bool   `json:"practice"`       // catégories practice: médailles + totalizer
}

// Level est un niveau ordonné d'une catégorie
type Level struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	GameAbb  string    `json:"gameAbb"`
	Category string    `json:"category"`
	Misc     bool      `json:"misc"` // mode alternatif ("misc") vs mode principal
	Chart    ChartType `json:"chart"`
	ParTime  float64   `json:"parTime,omitempty"` // temps théorique max, affichage uniquement
	Position int       `json:"position"`          // ordre dans la liste des niveaux
}

// Policy renvoie l'AscendingPolicy de la catégorie
func (c Category) Policy() AscendingPolicy {
	return AscendingPolicy{Score: c.AscendingScore, Time: c.AscendingTime}
}

// AscendingPolicy indique, par type de record, si le classement est ascendant
// (valeur plus basse = meilleure) ou descendant
type AscendingPolicy struct {
	Score bool `json:"score"`
	Time  bool `json:"time"`
}

// Ascending renvoie la direction de classement pour un type de record
func (p AscendingPolicy) Ascending(rt RecordType) bool {
	if rt == Score {
		return p.Score
	}
	return p.Time
}
