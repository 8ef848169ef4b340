// Package partners serves the read-only directory of service partners
// (courses, consulting, soil analysis, pad sales) bundled with the binary.
package partners

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/vbonduro/verdearido/internal/validate"
)

//go:embed partners.yaml
var bundled []byte

const (
	ServiceCourses    = "cursos"
	ServiceConsulting = "consultoria"
	ServiceSoil       = "analise_solo"
	ServicePadSales   = "venda_palmas"
	ServicePersonal   = "atendimento_personalizado"
)

type Partner struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Services    []string `yaml:"services" json:"services" validate:"min=1,dive,oneof=cursos consultoria analise_solo venda_palmas atendimento_personalizado"`
	Region      string   `yaml:"region" json:"region" validate:"required"`
	URL         string   `yaml:"url" json:"url" validate:"omitempty,url"`
}

type RegionGroup struct {
	Region   string    `json:"region"`
	Partners []Partner `json:"partners"`
}

type Directory struct {
	partners []Partner
}

// Load parses the bundled partner list.
func Load() (*Directory, error) {
	return Parse(bundled)
}

// Parse builds a directory from a YAML document with a top-level "partners"
// list. Every entry is validated and ids must be unique.
func Parse(data []byte) (*Directory, error) {
	var doc struct {
		Partners []Partner `yaml:"partners"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse partner directory: %w", err)
	}

	seen := make(map[string]bool, len(doc.Partners))
	for i, p := range doc.Partners {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("partner %d (%s): %w", i, p.ID, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("partner %s listed twice", p.ID)
		}
		seen[p.ID] = true
	}
	return &Directory{partners: doc.Partners}, nil
}

func (d *Directory) All() []Partner {
	return clonePartners(d.partners)
}

// Filter returns the partners offering any of services, or every partner
// when services is empty. A non-empty region further restricts the result.
func (d *Directory) Filter(services []string, region string) []Partner {
	out := make([]Partner, 0, len(d.partners))
	for _, p := range d.partners {
		if region != "" && p.Region != region {
			continue
		}
		if len(services) > 0 && !offersAny(p, services) {
			continue
		}
		out = append(out, clonePartner(p))
	}
	return out
}

// ByRegion groups partners by region in order of first appearance.
func (d *Directory) ByRegion() []RegionGroup {
	var groups []RegionGroup
	index := make(map[string]int)
	for _, p := range d.partners {
		i, ok := index[p.Region]
		if !ok {
			i = len(groups)
			index[p.Region] = i
			groups = append(groups, RegionGroup{Region: p.Region})
		}
		groups[i].Partners = append(groups[i].Partners, clonePartner(p))
	}
	return groups
}

func offersAny(p Partner, services []string) bool {
	for _, s := range services {
		if slices.Contains(p.Services, s) {
			return true
		}
	}
	return false
}

func clonePartner(p Partner) Partner {
	p.Services = slices.Clone(p.Services)
	return p
}

func clonePartners(ps []Partner) []Partner {
	out := make([]Partner, 0, len(ps))
	for _, p := range ps {
		out = append(out, clonePartner(p))
	}
	return out
}
