package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errors.New("service not found")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Manager is the catalog use-case layer: services, per-staff overrides and
// resource requirements.
type Manager struct {
	services  ServiceRepository
	overrides StaffServiceRepository
	resources ServiceResourceRepository
}

func NewManager(services ServiceRepository, overrides StaffServiceRepository, resources ServiceResourceRepository) *Manager {
	return &Manager{services: services, overrides: overrides, resources: resources}
}

func (m *Manager) CreateService(ctx context.Context, s *Service) error {
	if err := validateService(s); err != nil {
		return err
	}
	if s.Currency == "" {
		s.Currency = "CHF"
	}
	if s.CmsStatus == "" {
		s.CmsStatus = CmsStatusDraft
	}
	return m.services.Create(ctx, s)
}

func (m *Manager) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	return m.services.GetByID(ctx, id)
}

func (m *Manager) GetServiceBySlug(ctx context.Context, slug string) (*Service, error) {
	return m.services.GetBySlug(ctx, slug)
}

func (m *Manager) UpdateService(ctx context.Context, s *Service) error {
	if err := validateService(s); err != nil {
		return err
	}
	return m.services.Update(ctx, s)
}

func (m *Manager) DeleteService(ctx context.Context, id uuid.UUID) error {
	return m.services.Delete(ctx, id)
}

func (m *Manager) ListServices(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	return m.services.List(ctx, limit, offset)
}

// PublishService flips cms_status to published without touching other fields.
func (m *Manager) PublishService(ctx context.Context, id uuid.UUID) (*Service, error) {
	s, err := m.services.GetByID(ctx, id)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	s.CmsStatus = CmsStatusPublished
	if err := m.services.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func validateService(s *Service) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Slug == "" || !slugPattern.MatchString(s.Slug) {
		return fmt.Errorf("slug must be lowercase kebab-case")
	}
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive")
	}
	if s.BufferBeforeMinutes < 0 || s.BufferAfterMinutes < 0 {
		return fmt.Errorf("buffer minutes must not be negative")
	}
	if s.PriceCHF < 0 {
		return fmt.Errorf("price_chf must not be negative")
	}
	if s.CmsStatus != "" && s.CmsStatus != CmsStatusDraft && s.CmsStatus != CmsStatusPublished {
		return fmt.Errorf("invalid cms_status %q", s.CmsStatus)
	}
	return nil
}

// -- Staff overrides --

func (m *Manager) AssignStaff(ctx context.Context, o *StaffService) error {
	if o.StaffID == uuid.Nil || o.ServiceID == uuid.Nil {
		return fmt.Errorf("staff_id and service_id are required")
	}
	if o.DurationMinutes != nil && *o.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes override must be positive")
	}
	if (o.BufferBeforeMinutes != nil && *o.BufferBeforeMinutes < 0) ||
		(o.BufferAfterMinutes != nil && *o.BufferAfterMinutes < 0) {
		return fmt.Errorf("buffer override must not be negative")
	}
	return m.overrides.Upsert(ctx, o)
}

func (m *Manager) UnassignStaff(ctx context.Context, staffID, serviceID uuid.UUID) error {
	return m.overrides.Delete(ctx, staffID, serviceID)
}

func (m *Manager) ListAssignments(ctx context.Context, serviceID uuid.UUID) ([]*StaffService, error) {
	return m.overrides.ListByService(ctx, serviceID)
}

// -- Resource requirements --

func (m *Manager) SetResourceRequirement(ctx context.Context, sr *ServiceResource) error {
	if sr.ServiceID == uuid.Nil || sr.ResourceID == uuid.Nil {
		return fmt.Errorf("service_id and resource_id are required")
	}
	if sr.Quantity < 1 {
		sr.Quantity = 1
	}
	return m.resources.Upsert(ctx, sr)
}

func (m *Manager) RemoveResourceRequirement(ctx context.Context, serviceID, resourceID uuid.UUID) error {
	return m.resources.Delete(ctx, serviceID, resourceID)
}

func (m *Manager) ListResourceRequirements(ctx context.Context, serviceID uuid.UUID) ([]*ServiceResource, error) {
	return m.resources.ListByService(ctx, serviceID)
}
