package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/salonkit/salonkit/internal/domain/staff"
)

// EffectiveService is the per-staff view of a service after applying the
// staff member's overrides.
type EffectiveService struct {
	ServiceID    uuid.UUID
	Duration     time.Duration
	BufferBefore time.Duration
	BufferAfter  time.Duration
	PriceCHF     int
}

// ResolveEffective folds a staff override into the service defaults.
// A nil override leaves the defaults untouched.
func ResolveEffective(svc ServiceDefaults, o *Override) EffectiveService {
	eff := EffectiveService{
		ServiceID:    svc.ServiceID,
		Duration:     time.Duration(svc.DurationMinutes) * time.Minute,
		BufferBefore: time.Duration(svc.BufferBeforeMinutes) * time.Minute,
		BufferAfter:  time.Duration(svc.BufferAfterMinutes) * time.Minute,
		PriceCHF:     svc.PriceCHF,
	}
	if o == nil {
		return eff
	}
	if o.DurationMinutes != nil {
		eff.Duration = time.Duration(*o.DurationMinutes) * time.Minute
	}
	if o.BufferBeforeMinutes != nil {
		eff.BufferBefore = time.Duration(*o.BufferBeforeMinutes) * time.Minute
	}
	if o.BufferAfterMinutes != nil {
		eff.BufferAfter = time.Duration(*o.BufferAfterMinutes) * time.Minute
	}
	if o.PriceCHF != nil {
		eff.PriceCHF = *o.PriceCHF
	}
	return eff
}

// ServiceDefaults carries the service fields the engine needs, decoupled from
// the catalog row.
type ServiceDefaults struct {
	ServiceID           uuid.UUID
	DurationMinutes     int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	PriceCHF            int
}

// Override mirrors the nullable per-staff columns.
type Override struct {
	DurationMinutes     *int
	BufferBeforeMinutes *int
	BufferAfterMinutes  *int
	PriceCHF            *int
}

// StaffAgenda is everything the engine needs about one staff member: where
// they work, the effective service parameters, the weekly working blocks, and
// the already committed intervals on the UTC timeline. Block times are wall
// clock in TZ; Holidays is the closed-date set of the salon's canton.
type StaffAgenda struct {
	StaffID    uuid.UUID
	LocationID uuid.UUID
	TZ         *time.Location
	Holidays   map[string]struct{}
	Effective  EffectiveService
	Blocks     []*staff.AvailabilityBlock
	TimeOff    []Interval
	// Busy holds the buffered intervals of appointments that still block
	// their window (PENDING or CONFIRMED).
	Busy []Interval
}

// Requirement is a resource demand of the service.
type Requirement struct {
	ResourceID uuid.UUID
	Quantity   int
}

// ResourceWindow is a quantity of a resource held for an interval by an
// existing blocking appointment.
type ResourceWindow struct {
	ResourceID uuid.UUID
	Window     Interval
	Quantity   int
}

// Inputs is the immutable snapshot the engine computes over. Each staff entry
// carries its own location, so a service whose assigned staff span salons is
// walked in each member's local time.
type Inputs struct {
	Staff            []StaffAgenda
	ResourceCapacity map[uuid.UUID]int
	Requirements     []Requirement
	ResourceWindows  []ResourceWindow
}

// Slot is one bookable start. Start and End carry the location's timezone and
// exclude buffers; buffers are enforced during the search but are not part of
// what the customer sees.
type Slot struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	StaffID    uuid.UUID `json:"staffId"`
	ServiceID  uuid.UUID `json:"serviceId"`
	LocationID uuid.UUID `json:"locationId"`
	PriceCHF   int       `json:"priceChf"`
}

// ComputeAvailableSlots walks every staff member's weekly blocks across
// [from, to] and returns the conflict-free starts, sorted by start time.
// The walk is deterministic: the same inputs always produce the same slots.
func ComputeAvailableSlots(in Inputs, from, to time.Time) ([]Slot, error) {
	var slots []Slot
	for i := range in.Staff {
		staffSlots, err := staffSlots(in, &in.Staff[i], from, to)
		if err != nil {
			return nil, err
		}
		slots = append(slots, staffSlots...)
	}

	// Guard rail mirroring the per-candidate bounds check: nothing outside
	// the requested range survives.
	filtered := slots[:0]
	for _, s := range slots {
		if !s.Start.Before(from) && !s.End.After(to) {
			filtered = append(filtered, s)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].Start.Equal(filtered[j].Start) {
			return filtered[i].Start.Before(filtered[j].Start)
		}
		return filtered[i].StaffID.String() < filtered[j].StaffID.String()
	})
	return filtered, nil
}

func staffSlots(in Inputs, ag *StaffAgenda, from, to time.Time) ([]Slot, error) {
	if ag.TZ == nil {
		return nil, fmt.Errorf("staff %s: timezone is required", ag.StaffID)
	}
	eff := ag.Effective
	if eff.Duration <= 0 {
		return nil, fmt.Errorf("staff %s: effective duration must be positive", ag.StaffID)
	}
	step := time.Duration(gcdMinutes(int(eff.Duration/time.Minute), 5)) * time.Minute

	var out []Slot
	day := time.Date(from.In(ag.TZ).Year(), from.In(ag.TZ).Month(), from.In(ag.TZ).Day(), 0, 0, 0, 0, ag.TZ)
	last := to.In(ag.TZ)
	for !day.After(last) {
		if _, closed := ag.Holidays[day.Format("2006-01-02")]; !closed {
			weekday := mondayIndexed(day.Weekday())
			for _, b := range ag.Blocks {
				if b.Weekday != weekday {
					continue
				}
				blockOut, err := blockSlots(in, ag, b, day, step, from, to)
				if err != nil {
					return nil, err
				}
				out = append(out, blockOut...)
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return out, nil
}

func blockSlots(in Inputs, ag *StaffAgenda, b *staff.AvailabilityBlock, day time.Time, step time.Duration, from, to time.Time) ([]Slot, error) {
	// A zero capacity override closes the block.
	if b.CapacityOverride != nil && *b.CapacityOverride < 1 {
		return nil, nil
	}
	startMin, err := staff.ParseClock(b.StartTime)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", b.ID, err)
	}
	endMin, err := staff.ParseClock(b.EndTime)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", b.ID, err)
	}

	// Wall-clock construction in the staff member's salon timezone keeps
	// blocks stable across DST transitions.
	blockStart := time.Date(day.Year(), day.Month(), day.Day(), startMin/60, startMin%60, 0, 0, ag.TZ)
	blockEnd := time.Date(day.Year(), day.Month(), day.Day(), endMin/60, endMin%60, 0, 0, ag.TZ)

	eff := ag.Effective
	var out []Slot
	for cursor := blockStart.Add(eff.BufferBefore); !cursor.Add(eff.Duration + eff.BufferAfter).After(blockEnd); cursor = cursor.Add(step) {
		if cursor.Before(from) || cursor.Add(eff.Duration).After(to) {
			continue
		}
		buffered := Interval{
			Start: cursor.Add(-eff.BufferBefore),
			End:   cursor.Add(eff.Duration + eff.BufferAfter),
		}
		if overlapsAny(buffered, ag.TimeOff) || overlapsAny(buffered, ag.Busy) {
			continue
		}
		if !resourcesAvailable(in, buffered) {
			continue
		}
		out = append(out, Slot{
			Start:      cursor,
			End:        cursor.Add(eff.Duration),
			StaffID:    ag.StaffID,
			ServiceID:  eff.ServiceID,
			LocationID: ag.LocationID,
			PriceCHF:   eff.PriceCHF,
		})
	}
	return out, nil
}

func overlapsAny(iv Interval, set []Interval) bool {
	for _, other := range set {
		if iv.Overlaps(other) {
			return true
		}
	}
	return false
}

// resourcesAvailable checks every requirement against the capacity left in
// the candidate interval. Requirements on resources the location does not
// know about are skipped rather than treated as conflicts.
func resourcesAvailable(in Inputs, buffered Interval) bool {
	for _, req := range in.Requirements {
		capacity, known := in.ResourceCapacity[req.ResourceID]
		if !known {
			continue
		}
		used := 0
		for _, w := range in.ResourceWindows {
			if w.ResourceID == req.ResourceID && w.Window.Overlaps(buffered) {
				used += w.Quantity
			}
		}
		if used+req.Quantity > capacity {
			return false
		}
	}
	return true
}

// mondayIndexed converts Go's Sunday-first weekday to the 0=Monday scheme
// availability blocks are stored in.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func gcdMinutes(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 1 {
		return 1
	}
	return a
}
