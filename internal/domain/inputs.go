package domain

// NewTerrain and the other New* inputs carry the caller-supplied fields of a
// create operation; the store assigns ids and timestamps. The *Patch types
// carry the fields of a shallow merge: nil fields are left untouched. Areas
// are bounded at 1,000,000 ha, weights at 2,000 kg and groups at 1,000,000
// head, which keeps calculator results finite.
type NewTerrain struct {
	Name          string        `json:"name" validate:"required,max=200"`
	Area          float64       `json:"area" validate:"gt=0,lte=1000000"`
	CARArea       *float64      `json:"car_area,omitempty" validate:"omitempty,gt=0,lte=1000000"`
	MappingMethod MappingMethod `json:"mapping_method" validate:"required,oneof=car satellite gps manual"`
	Coordinates   []Coordinate  `json:"coordinates,omitempty" validate:"omitempty,dive"`
}

type TerrainPatch struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Area          *float64       `json:"area,omitempty" validate:"omitempty,gt=0,lte=1000000"`
	// CARArea set to 0 clears the registered area.
	CARArea       *float64       `json:"car_area,omitempty" validate:"omitempty,gte=0,lte=1000000"`
	MappingMethod *MappingMethod `json:"mapping_method,omitempty" validate:"omitempty,oneof=car satellite gps manual"`
	Coordinates   []Coordinate   `json:"coordinates,omitempty" validate:"omitempty,dive"`
}

type NewTalhao struct {
	TerrainID      string   `json:"terrain_id" validate:"required"`
	Name           string   `json:"name" validate:"required,max=200"`
	Area           float64  `json:"area" validate:"gt=0,lte=1000000"`
	SoilType       SoilType `json:"soil_type,omitempty" validate:"omitempty,oneof=arenoso argiloso siltoso humifero calcario"`
	SoilTypeManual string   `json:"soil_type_manual,omitempty" validate:"max=200"`
	Planted        bool     `json:"planted"`
}

type TalhaoPatch struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Area           *float64  `json:"area,omitempty" validate:"omitempty,gt=0,lte=1000000"`
	SoilType       *SoilType `json:"soil_type,omitempty" validate:"omitempty,oneof=arenoso argiloso siltoso humifero calcario"`
	SoilTypeManual *string   `json:"soil_type_manual,omitempty" validate:"omitempty,max=200"`
	Planted        *bool     `json:"planted,omitempty"`
}

type NewFragment struct {
	Name   string         `json:"name" validate:"required,max=200"`
	Area   float64        `json:"area" validate:"gt=0,lte=1000000"`
	Status FragmentStatus `json:"status" validate:"required,oneof=available planted resting"`
}

type FragmentPatch struct {
	Name   *string         `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Area   *float64        `json:"area,omitempty" validate:"omitempty,gt=0,lte=1000000"`
	Status *FragmentStatus `json:"status,omitempty" validate:"omitempty,oneof=available planted resting"`
}

type NewAnimalGroup struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Species       Species `json:"species" validate:"required,oneof=bovino ovino caprino equino"`
	Breed         string  `json:"breed" validate:"required,max=200"`
	Quantity      int     `json:"quantity" validate:"gt=0,lte=1000000"`
	AverageWeight float64 `json:"average_weight" validate:"gt=0,lte=2000"`
	Purpose       Purpose `json:"purpose" validate:"required,oneof=cria recria engorda leite"`
}

type AnimalGroupPatch struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Species       *Species `json:"species,omitempty" validate:"omitempty,oneof=bovino ovino caprino equino"`
	Breed         *string  `json:"breed,omitempty" validate:"omitempty,min=1,max=200"`
	Quantity      *int     `json:"quantity,omitempty" validate:"omitempty,gt=0,lte=1000000"`
	AverageWeight *float64 `json:"average_weight,omitempty" validate:"omitempty,gt=0,lte=2000"`
	Purpose       *Purpose `json:"purpose,omitempty" validate:"omitempty,oneof=cria recria engorda leite"`
}
