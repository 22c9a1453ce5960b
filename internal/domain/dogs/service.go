package dogs

import (
	"context"
	"errors"
	"strings"

	"dog-profiles/internal/ports/rows"
)

var (
	ErrNotFound = errors.New("dog not found")
)

type Service struct {
	source rows.Source
}

func NewService(source rows.Source) *Service {
	return &Service{source: source}
}

// Filter: substrings case-insensitive. Vacío = sin restricción; ambos se combinan con AND.
type Filter struct {
	DogName   string
	OwnerName string
}

func (f Filter) Match(p Profile) bool {
	if f.DogName != "" && !containsFold(stringify(p.Dog.Name), f.DogName) {
		return false
	}
	if f.OwnerName != "" && !containsFold(stringify(p.Owner.Name), f.OwnerName) {
		return false
	}
	return true
}

// List devuelve los perfiles que cumplen el filtro, en el orden de la planilla.
func (s *Service) List(ctx context.Context, f Filter) ([]Profile, error) {
	rs, err := s.source.Rows(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Profile, 0, len(rs))
	for i, row := range rs {
		p := MapRow(row, i+1)
		if !f.Match(p) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByID devuelve el primer perfil (menor posición) cuyo dog_id coincide exactamente.
func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	rs, err := s.source.Rows(ctx)
	if err != nil {
		return Profile{}, err
	}

	for i, row := range rs {
		if ResolveDogID(row, i+1) == id {
			return MapRow(row, i+1), nil
		}
	}
	return Profile{}, ErrNotFound
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
