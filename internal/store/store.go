// Package store holds the in-memory farm state: the producer, terrains,
// talhões with their fragments, and animal groups. Nothing is persisted; a
// logout or a process restart discards everything.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/vbonduro/verdearido/internal/domain"
	"github.com/vbonduro/verdearido/internal/validate"
)

// IDGenerator returns a fresh opaque identifier on every call.
type IDGenerator func() string

// Clock returns the creation timestamp for new entities.
type Clock func() time.Time

type Option func(*Store)

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.newID = g }
}

func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

type state struct {
	loggedIn         bool
	producer         *domain.Producer
	terrains         []domain.Terrain
	talhoes          []domain.Talhao
	animalGroups     []domain.AnimalGroup
	currentTerrainID string
}

type Store struct {
	mu    sync.RWMutex
	state state
	newID IDGenerator
	now   Clock
}

func New(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.loggedIn = true
}

// Logout resets the store to its empty initial state.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
}

func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.loggedIn
}

// SetProducer replaces the producer record wholesale.
func (s *Store) SetProducer(p domain.Producer) error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.producer = &p
	return nil
}

func (s *Store) Producer() (domain.Producer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.producer == nil {
		return domain.Producer{}, false
	}
	return *s.state.producer, true
}

// SetCurrentTerrain selects a terrain; an empty id clears the selection.
func (s *Store) SetCurrentTerrain(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" && s.terrainIndex(id) < 0 {
		return domain.ErrNotFound
	}
	s.state.currentTerrainID = id
	return nil
}

func (s *Store) CurrentTerrainID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.currentTerrainID, s.state.currentTerrainID != ""
}

// Snapshot is a deep copy of the store state at one point in time.
type Snapshot struct {
	LoggedIn         bool
	Producer         *domain.Producer
	Terrains         []domain.Terrain
	Talhoes          []domain.Talhao
	AnimalGroups     []domain.AnimalGroup
	CurrentTerrainID string
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		LoggedIn:         s.state.loggedIn,
		Terrains:         make([]domain.Terrain, 0, len(s.state.terrains)),
		Talhoes:          make([]domain.Talhao, 0, len(s.state.talhoes)),
		AnimalGroups:     make([]domain.AnimalGroup, 0, len(s.state.animalGroups)),
		CurrentTerrainID: s.state.currentTerrainID,
	}
	if s.state.producer != nil {
		p := *s.state.producer
		snap.Producer = &p
	}
	for _, t := range s.state.terrains {
		snap.Terrains = append(snap.Terrains, cloneTerrain(t))
	}
	for _, t := range s.state.talhoes {
		snap.Talhoes = append(snap.Talhoes, cloneTalhao(t))
	}
	snap.AnimalGroups = append(snap.AnimalGroups, s.state.animalGroups...)
	return snap
}

func (s Snapshot) Terrain(id string) (domain.Terrain, bool) {
	for _, t := range s.Terrains {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Terrain{}, false
}

func (s Snapshot) Talhao(id string) (domain.Talhao, bool) {
	for _, t := range s.Talhoes {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Talhao{}, false
}

func (s Snapshot) AnimalGroup(id string) (domain.AnimalGroup, bool) {
	for _, g := range s.AnimalGroups {
		if g.ID == id {
			return g, true
		}
	}
	return domain.AnimalGroup{}, false
}

// nameKey is the comparison form used for name uniqueness.
func nameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func sameName(a, b string) bool {
	return nameKey(a) == nameKey(b)
}

func cloneTerrain(t domain.Terrain) domain.Terrain {
	if t.CARArea != nil {
		a := *t.CARArea
		t.CARArea = &a
	}
	if t.Coordinates != nil {
		t.Coordinates = append([]domain.Coordinate(nil), t.Coordinates...)
	}
	return t
}

func cloneTalhao(t domain.Talhao) domain.Talhao {
	t.Fragments = append(make([]domain.Fragment, 0, len(t.Fragments)), t.Fragments...)
	return t
}
