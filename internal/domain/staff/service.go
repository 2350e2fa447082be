package staff

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	staff        StaffRepository
	availability AvailabilityRepository
	timeOff      TimeOffRepository
}

func NewService(staff StaffRepository, availability AvailabilityRepository, timeOff TimeOffRepository) *Service {
	return &Service{staff: staff, availability: availability, timeOff: timeOff}
}

// -- Staff --

func (s *Service) CreateStaff(ctx context.Context, st *Staff) error {
	if st.DisplayName == "" {
		return fmt.Errorf("display_name is required")
	}
	if st.LocationID == uuid.Nil {
		return fmt.Errorf("location_id is required")
	}
	if st.Role == "" {
		st.Role = "stylist"
	}
	return s.staff.Create(ctx, st)
}

func (s *Service) GetStaff(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) UpdateStaff(ctx context.Context, st *Staff) error {
	if st.DisplayName == "" {
		return fmt.Errorf("display_name is required")
	}
	return s.staff.Update(ctx, st)
}

func (s *Service) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	return s.staff.Delete(ctx, id)
}

func (s *Service) ListStaff(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	return s.staff.List(ctx, limit, offset)
}

// -- Availability blocks --

func (s *Service) CreateBlock(ctx context.Context, b *AvailabilityBlock) error {
	if err := validateBlock(b); err != nil {
		return err
	}
	return s.availability.Create(ctx, b)
}

func (s *Service) UpdateBlock(ctx context.Context, b *AvailabilityBlock) error {
	if err := validateBlock(b); err != nil {
		return err
	}
	return s.availability.Update(ctx, b)
}

func (s *Service) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	return s.availability.Delete(ctx, id)
}

func (s *Service) ListBlocks(ctx context.Context, staffID uuid.UUID) ([]*AvailabilityBlock, error) {
	return s.availability.ListByStaff(ctx, staffID)
}

func validateBlock(b *AvailabilityBlock) error {
	if b.StaffID == uuid.Nil {
		return fmt.Errorf("staff_id is required")
	}
	if b.Weekday < 0 || b.Weekday > 6 {
		return fmt.Errorf("weekday must be 0 (Monday) through 6 (Sunday)")
	}
	start, err := ParseClock(b.StartTime)
	if err != nil {
		return fmt.Errorf("start_time: %w", err)
	}
	end, err := ParseClock(b.EndTime)
	if err != nil {
		return fmt.Errorf("end_time: %w", err)
	}
	if start >= end {
		return fmt.Errorf("start_time must be before end_time")
	}
	if b.CapacityOverride != nil && *b.CapacityOverride < 0 {
		return fmt.Errorf("capacity_override must not be negative")
	}
	return nil
}

// ParseClock parses "HH:MM" or "HH:MM:SS" and returns minutes after midnight.
// Seconds are accepted but ignored.
func ParseClock(v string) (int, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed clock value %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("malformed clock value %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("malformed clock value %q", v)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("malformed clock value %q", v)
		}
	}
	return h*60 + m, nil
}

// -- Time off --

func (s *Service) CreateTimeOff(ctx context.Context, t *TimeOff) error {
	if t.StaffID == uuid.Nil {
		return fmt.Errorf("staff_id is required")
	}
	if !t.StartAt.Before(t.EndAt) {
		return fmt.Errorf("start_at must be before end_at")
	}
	return s.timeOff.Create(ctx, t)
}

func (s *Service) DeleteTimeOff(ctx context.Context, id uuid.UUID) error {
	return s.timeOff.Delete(ctx, id)
}

func (s *Service) ListTimeOff(ctx context.Context, staffID uuid.UUID) ([]*TimeOff, error) {
	return s.timeOff.ListByStaff(ctx, staffID)
}
