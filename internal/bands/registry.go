// Package bands holds the pay band table used to resolve an hourly rate and
// bank Sunday rate from a band and pay point.
package bands

import (
	"errors"
	"fmt"
	"sort"

	"sunday-pay/internal/model"
)

var (
	ErrUnknownBand  = errors.New("unknown band")
	ErrUnknownPoint = errors.New("unknown pay point")
)

// Defaults are the illustrative bands shipped with the tool. The bank rates
// are assumed hourly bank Sunday rates.
func Defaults() []model.Band {
	return []model.Band{
		{
			Name:        "Band 6",
			Points:      map[string]float64{"Entry": 20.44, "Mid": 21.57, "Top": 24.61},
			BankSunRate: 44.70,
		},
		{
			Name:        "Band 7",
			Points:      map[string]float64{"Entry": 25.26, "Mid": 26.56, "Top": 28.90},
			BankSunRate: 51.48,
		},
	}
}

// Registry is immutable once built and safe for concurrent use.
type Registry struct {
	bands map[string]model.Band
	names []string
}

// New builds a registry from the defaults with overrides applied on top.
// An override replaces a default band of the same name wholesale.
func New(overrides []model.Band) (*Registry, error) {
	r := &Registry{bands: make(map[string]model.Band)}
	for _, b := range Defaults() {
		r.bands[b.Name] = b
	}
	for _, b := range overrides {
		if b.Name == "" {
			return nil, errors.New("band with empty name")
		}
		if len(b.Points) == 0 {
			return nil, fmt.Errorf("band %q has no pay points", b.Name)
		}
		for point, rate := range b.Points {
			if rate <= 0 {
				return nil, fmt.Errorf("band %q point %q: rate must be positive", b.Name, point)
			}
		}
		if b.BankSunRate < 0 {
			return nil, fmt.Errorf("band %q: bank rate must be non-negative", b.Name)
		}
		r.bands[b.Name] = b
	}
	for name := range r.bands {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup returns the hourly rate for the pay point and the band's bank rate.
func (r *Registry) Lookup(band, point string) (hourly, bankRate float64, err error) {
	b, ok := r.bands[band]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownBand, band)
	}
	rate, ok := b.Points[point]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s / %s", ErrUnknownPoint, band, point)
	}
	return rate, b.BankSunRate, nil
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Points lists a band's pay points from lowest to highest rate.
func (r *Registry) Points(band string) []string {
	b, ok := r.bands[band]
	if !ok {
		return nil
	}
	points := make([]string, 0, len(b.Points))
	for p := range b.Points {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if b.Points[points[i]] == b.Points[points[j]] {
			return points[i] < points[j]
		}
		return b.Points[points[i]] < b.Points[points[j]]
	})
	return points
}

// All returns every band ordered by name.
func (r *Registry) All() []model.Band {
	out := make([]model.Band, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.bands[n])
	}
	return out
}
