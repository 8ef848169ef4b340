package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vbonduro/verdearido/internal/domain"
	"github.com/vbonduro/verdearido/internal/metrics"
	"github.com/vbonduro/verdearido/internal/partners"
	"github.com/vbonduro/verdearido/internal/registry"
	"github.com/vbonduro/verdearido/internal/store"
)

// farmStore is the subset of store.Store that FarmService requires.
type farmStore interface {
	Login()
	Logout()
	LoggedIn() bool
	SetProducer(p domain.Producer) error
	Producer() (domain.Producer, bool)
	SetCurrentTerrain(id string) error
	CurrentTerrainID() (string, bool)
	Snapshot() store.Snapshot

	AddTerrain(in domain.NewTerrain) (domain.Terrain, error)
	UpdateTerrain(id string, patch domain.TerrainPatch) error
	DeleteTerrain(id string)
	Terrain(id string) (domain.Terrain, bool)
	Terrains() []domain.Terrain

	AddTalhao(in domain.NewTalhao) (domain.Talhao, error)
	UpdateTalhao(id string, patch domain.TalhaoPatch) error
	DeleteTalhao(id string)
	Talhao(id string) (domain.Talhao, bool)
	Talhoes() []domain.Talhao
	TalhoesByTerrain(terrainID string) []domain.Talhao
	AddFragment(talhaoID string, in domain.NewFragment) (domain.Fragment, error)
	UpdateFragment(talhaoID, fragmentID string, patch domain.FragmentPatch) error
	DeleteFragment(talhaoID, fragmentID string)

	AddAnimalGroup(in domain.NewAnimalGroup) (domain.AnimalGroup, error)
	UpdateAnimalGroup(id string, patch domain.AnimalGroupPatch) error
	DeleteAnimalGroup(id string)
	AnimalGroup(id string) (domain.AnimalGroup, bool)
	AnimalGroups() []domain.AnimalGroup
}

// registryClient is the subset of registry.Simulated that FarmService requires.
type registryClient interface {
	LookupProducer(ctx context.Context, cpf string) (domain.Producer, error)
	LookupCAR(ctx context.Context, carNumber, protocol string) (registry.CARRecord, error)
}

type FarmService struct {
	store    farmStore
	registry registryClient
	partners *partners.Directory
	metrics  metrics.Recorder
	logger   *slog.Logger
}

func NewFarmService(
	st farmStore,
	reg registryClient,
	dir *partners.Directory,
	rec metrics.Recorder,
	logger *slog.Logger,
) *FarmService {
	if rec == nil {
		rec = metrics.Discard{}
	}
	return &FarmService{
		store:    st,
		registry: reg,
		partners: dir,
		metrics:  rec,
		logger:   logger,
	}
}

func (s *FarmService) observe(ctx context.Context, op string, start time.Time, err error) {
	s.metrics.Observe(ctx, op, err == nil, time.Since(start))
}

func (s *FarmService) Login(_ context.Context) {
	s.store.Login()
	s.logger.Info("session started")
}

// Logout ends the session and discards all farm data.
func (s *FarmService) Logout(_ context.Context) {
	s.store.Logout()
	s.logger.Info("session ended, farm state cleared")
}

func (s *FarmService) LoggedIn(_ context.Context) bool {
	return s.store.LoggedIn()
}

func (s *FarmService) Producer(_ context.Context) (domain.Producer, error) {
	p, ok := s.store.Producer()
	if !ok {
		return domain.Producer{}, fmt.Errorf("producer: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (s *FarmService) SetProducer(_ context.Context, p domain.Producer) (domain.Producer, error) {
	p.CPF = registry.NormalizeCPF(p.CPF)
	if err := s.store.SetProducer(p); err != nil {
		return domain.Producer{}, fmt.Errorf("failed to set producer: %w", err)
	}
	s.logger.Info("producer registered", "cpf", registry.FormatCPF(p.CPF), "city", p.City, "state", p.State)
	return p, nil
}

func (s *FarmService) LookupProducer(ctx context.Context, cpf string) (p domain.Producer, err error) {
	defer func(start time.Time) { s.observe(ctx, "lookup_producer", start, err) }(time.Now())

	p, err = s.registry.LookupProducer(ctx, cpf)
	if err != nil {
		s.logger.Warn("producer lookup failed", "error", err)
		return domain.Producer{}, fmt.Errorf("failed to look up producer: %w", err)
	}
	s.logger.Info("producer lookup complete", "cpf", registry.FormatCPF(p.CPF))
	return p, nil
}

func (s *FarmService) LookupCAR(ctx context.Context, carNumber, protocol string) (rec registry.CARRecord, err error) {
	defer func(start time.Time) { s.observe(ctx, "lookup_car", start, err) }(time.Now())

	rec, err = s.registry.LookupCAR(ctx, carNumber, protocol)
	if err != nil {
		s.logger.Warn("car lookup failed", "car_number", carNumber, "protocol", protocol, "error", err)
		return registry.CARRecord{}, fmt.Errorf("failed to look up car: %w", err)
	}
	s.logger.Info("car lookup complete", "car_number", carNumber, "protocol", protocol, "area", rec.Area)
	return rec, nil
}

func (s *FarmService) Partners(_ context.Context, services []string, region string) []partners.Partner {
	return s.partners.Filter(services, region)
}

func (s *FarmService) PartnersByRegion(_ context.Context) []partners.RegionGroup {
	return s.partners.ByRegion()
}

// Summary holds the figures shown on the home dashboard.
type Summary struct {
	LoggedIn         bool             `json:"logged_in"`
	Producer         *domain.Producer `json:"producer,omitempty"`
	Terrains         int              `json:"terrains"`
	Talhoes          int              `json:"talhoes"`
	PlantedTalhoes   int              `json:"planted_talhoes"`
	AnimalGroups     int              `json:"animal_groups"`
	Heads            int              `json:"heads"`
	TotalArea        float64          `json:"total_area"`
	CurrentTerrainID string           `json:"current_terrain_id,omitempty"`
}

func (s *FarmService) Summary(_ context.Context) Summary {
	snap := s.store.Snapshot()
	sum := Summary{
		LoggedIn:         snap.LoggedIn,
		Producer:         snap.Producer,
		Terrains:         len(snap.Terrains),
		Talhoes:          len(snap.Talhoes),
		AnimalGroups:     len(snap.AnimalGroups),
		CurrentTerrainID: snap.CurrentTerrainID,
	}
	for _, t := range snap.Terrains {
		sum.TotalArea += t.Area
	}
	for _, h := range snap.Talhoes {
		if h.Planted {
			sum.PlantedTalhoes++
		}
	}
	for _, g := range snap.AnimalGroups {
		sum.Heads += g.Quantity
	}
	return sum
}
