package location

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	locations LocationRepository
	resources ResourceRepository
}

func NewService(locations LocationRepository, resources ResourceRepository) *Service {
	return &Service{locations: locations, resources: resources}
}

// -- Location --

func (s *Service) CreateLocation(ctx context.Context, l *Location) error {
	if l.Name == "" {
		return fmt.Errorf("name is required")
	}
	if l.Canton == "" {
		return fmt.Errorf("canton is required")
	}
	if l.Timezone == "" {
		l.Timezone = "Europe/Zurich"
	}
	if _, err := time.LoadLocation(l.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", l.Timezone, err)
	}
	return s.locations.Create(ctx, l)
}

func (s *Service) GetLocation(ctx context.Context, id uuid.UUID) (*Location, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *Service) UpdateLocation(ctx context.Context, l *Location) error {
	if l.Timezone != "" {
		if _, err := time.LoadLocation(l.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", l.Timezone, err)
		}
	}
	return s.locations.Update(ctx, l)
}

func (s *Service) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return s.locations.Delete(ctx, id)
}

func (s *Service) ListLocations(ctx context.Context, limit, offset int) ([]*Location, int, error) {
	return s.locations.List(ctx, limit, offset)
}

// -- Resource --

func (s *Service) CreateResource(ctx context.Context, r *Resource) error {
	if r.LocationID == uuid.Nil {
		return fmt.Errorf("location_id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Capacity < 1 {
		r.Capacity = 1
	}
	return s.resources.Create(ctx, r)
}

func (s *Service) GetResource(ctx context.Context, id uuid.UUID) (*Resource, error) {
	return s.resources.GetByID(ctx, id)
}

func (s *Service) UpdateResource(ctx context.Context, r *Resource) error {
	if r.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}
	return s.resources.Update(ctx, r)
}

func (s *Service) DeleteResource(ctx context.Context, id uuid.UUID) error {
	return s.resources.Delete(ctx, id)
}

func (s *Service) ListResourcesByLocation(ctx context.Context, locationID uuid.UUID, limit, offset int) ([]*Resource, int, error) {
	return s.resources.ListByLocation(ctx, locationID, limit, offset)
}
