// Package cache garde en mémoire les tableaux calculés par le moteur de
// classement, par (jeu, catégorie, type de record, sorte de tableau). Les
// entrées sont remplacées en bloc; une action de modération invalide toutes
// les entrées du jeu concerné plutôt que de les rapiécer
package cache

import (
	"sync"

	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
)

// Kind distingue les sortes de tableaux mis en cache
type Kind string

const (
	KindRecords Kind = "records"
	KindMedals  Kind = "medals"
	KindTotals  Kind = "totals"
)

// Key identifie un tableau calculé
type Key struct {
	Game     string
	Category string
	Type     model.RecordType
	Kind     Kind
}

// Boards est le cache des tableaux. Zéro valeur inutilisable: passer par New
type Boards struct {
	mu      sync.RWMutex
	entries map[Key]interface{}
}

// New crée un cache de tableaux vide
func New() *Boards {
	return &Boards{
		entries: make(map[Key]interface{}),
	}
}

// Get renvoie le tableau en cache s'il existe
func (b *Boards) Get(key Key) (interface{}, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.entries[key]
	return value, ok
}

// Put remplace le tableau en cache pour la clé donnée
func (b *Boards) Put(key Key, value interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[key] = value
}

// InvalidateGame supprime toutes les entrées d'un jeu. Appelé après chaque
// approbation ou suppression de soumission: le prochain accès recalcule les
// tableaux depuis la base
func (b *Boards) InvalidateGame(game string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key := range b.entries {
		if key.Game == game {
			delete(b.entries, key)
		}
	}
}

// Len renvoie le nombre d'entrées en cache
func (b *Boards) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}
