package domain

import "time"

type MappingMethod string

const (
	MappingCAR       MappingMethod = "car"
	MappingSatellite MappingMethod = "satellite"
	MappingGPS       MappingMethod = "gps"
	MappingManual    MappingMethod = "manual"
)

type SoilType string

const (
	SoilSandy    SoilType = "arenoso"
	SoilClay     SoilType = "argiloso"
	SoilSilty    SoilType = "siltoso"
	SoilHumic    SoilType = "humifero"
	SoilCalcareo SoilType = "calcario"
)

type FragmentStatus string

const (
	FragmentAvailable FragmentStatus = "available"
	FragmentPlanted   FragmentStatus = "planted"
	FragmentResting   FragmentStatus = "resting"
)

type Species string

const (
	SpeciesBovine  Species = "bovino"
	SpeciesOvine   Species = "ovino"
	SpeciesCaprine Species = "caprino"
	SpeciesEquine  Species = "equino"
)

type Purpose string

const (
	PurposeBreeding  Purpose = "cria"
	PurposeRearing   Purpose = "recria"
	PurposeFattening Purpose = "engorda"
	PurposeDairy     Purpose = "leite"
)

// Producer is the farm owner registered during onboarding. CPF holds digits only.
type Producer struct {
	CPF     string `json:"cpf" validate:"required,len=11,numeric"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state" validate:"omitempty,len=2"`
}

type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type Terrain struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Area          float64       `json:"area"`
	CARArea       *float64      `json:"car_area,omitempty"`
	MappingMethod MappingMethod `json:"mapping_method"`
	Coordinates   []Coordinate  `json:"coordinates,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Talhao is a subdivision of a terrain. SoilTypeManual, when set, overrides
// SoilType for display purposes.
type Talhao struct {
	ID             string     `json:"id"`
	TerrainID      string     `json:"terrain_id"`
	Name           string     `json:"name"`
	Area           float64    `json:"area"`
	SoilType       SoilType   `json:"soil_type,omitempty"`
	SoilTypeManual string     `json:"soil_type_manual,omitempty"`
	Fragments      []Fragment `json:"fragments"`
	Planted        bool       `json:"planted"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Fragment returns the fragment with the given id, if the talhão owns one.
func (t Talhao) Fragment(id string) (Fragment, bool) {
	for _, f := range t.Fragments {
		if f.ID == id {
			return f, true
		}
	}
	return Fragment{}, false
}

type Fragment struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Area   float64        `json:"area"`
	Status FragmentStatus `json:"status"`
}

type AnimalGroup struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Species       Species   `json:"species"`
	Breed         string    `json:"breed"`
	Quantity      int       `json:"quantity"`
	AverageWeight float64   `json:"average_weight"`
	Purpose       Purpose   `json:"purpose"`
	CreatedAt     time.Time `json:"created_at"`
}
