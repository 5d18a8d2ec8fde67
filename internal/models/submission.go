package model

import (
	"time"
)

// RecordType distingue les soumissions de score et de temps
type RecordType string

const (
	Score RecordType = "score"
	Time  RecordType = "time"
)

// Valid vérifie que le type de record est connu
func (rt RecordType) Valid() bool {
	return rt == Score || rt == Time
}

// Submission est une tentative enregistrée d'un utilisateur sur un niveau,
// normalisée en union taguée (Record + RecordType) quelle que soit la table
// d'origine
type Submission struct {
	ID          string     `json:"id"`
	Profile     Profile    `json:"profile"`
	Level       Level      `json:"level"`
	Record      float64    `json:"record"`
	RecordType  RecordType `json:"recordType"`
	SubmittedAt time.Time  `json:"submittedAt"`
	Live        bool       `json:"live"`
	Approved    bool       `json:"approved"`
	Proof       string     `json:"proof,omitempty"`
	Comment     string     `json:"comment,omitempty"`

	// Tags descriptifs, filtrage uniquement, jamais utilisés pour le classement
	Monkey   string `json:"monkey,omitempty"`
	Platform string `json:"platform,omitempty"`
	Region   string `json:"region,omitempty"`
	TAS      bool   `json:"tas"`
}

// RawSubmission est la forme brute d'une ligne issue de la table des scores ou
// de celle des temps, avant normalisation. Score et Time sont des pointeurs:
// une ligne mal formée (valeur absente) est rejetée par le normaliseur
type RawSubmission struct {
	ID          string
	Profile     *Profile
	Level       *Level
	Score       *float64
	Time        *float64
	SubmittedAt time.Time
	Live        bool
	Approved    bool
	Proof       string
	Comment     string
	Monkey      string
	Platform    string
	Region      string
	TAS         bool
}
