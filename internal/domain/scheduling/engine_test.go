package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/salonkit/salonkit/internal/domain/staff"
)

var zurich = func() *time.Location {
	tz, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		panic(err)
	}
	return tz
}()

// tuesdayInputs is the baseline fixture: one staff member working Tuesdays
// 09:00-17:00 in Zurich, performing a 60 minute service with 10 minutes of
// buffer before and 5 after. 2024-09-03 is a Tuesday with no holiday.
func tuesdayInputs() (Inputs, time.Time, time.Time) {
	staffID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	serviceID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	locationID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	in := Inputs{
		Staff: []StaffAgenda{{
			StaffID:    staffID,
			LocationID: locationID,
			TZ:         zurich,
			Holidays:   HolidaysForCanton("ZH", []int{2023, 2024, 2025}),
			Effective: EffectiveService{
				ServiceID:    serviceID,
				Duration:     60 * time.Minute,
				BufferBefore: 10 * time.Minute,
				BufferAfter:  5 * time.Minute,
				PriceCHF:     8500,
			},
			Blocks: []*staff.AvailabilityBlock{{
				ID:        uuid.New(),
				StaffID:   staffID,
				Weekday:   1, // Tuesday
				StartTime: "09:00",
				EndTime:   "17:00",
			}},
		}},
		ResourceCapacity: map[uuid.UUID]int{},
	}
	from := time.Date(2024, 9, 3, 0, 0, 0, 0, zurich)
	to := time.Date(2024, 9, 4, 0, 0, 0, 0, zurich)
	return in, from, to
}

func localClock(t time.Time) string {
	return t.In(zurich).Format("15:04")
}

func TestFirstSlotRespectsLeadingBuffer(t *testing.T) {
	in, from, to := tuesdayInputs()
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}
	if got := localClock(slots[0].Start); got != "09:10" {
		t.Errorf("first start = %s, want 09:10", got)
	}
	if got := localClock(slots[0].End); got != "10:10" {
		t.Errorf("first end = %s, want 10:10", got)
	}
}

func TestLastSlotRespectsTrailingBuffer(t *testing.T) {
	in, from, to := tuesdayInputs()
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}
	last := slots[len(slots)-1]
	// 15:55 + 60m service + 5m buffer lands exactly on block end 17:00.
	if got := localClock(last.Start); got != "15:55" {
		t.Errorf("last start = %s, want 15:55", got)
	}
}

func TestCandidateCountAndStep(t *testing.T) {
	in, from, to := tuesdayInputs()
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	// 09:10 through 15:55 in 5 minute steps.
	if len(slots) != 82 {
		t.Errorf("slot count = %d, want 82", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if gap := slots[i].Start.Sub(slots[i-1].Start); gap != 5*time.Minute {
			t.Fatalf("gap between slots = %v, want 5m", gap)
		}
	}
}

func TestTimeOffBlocksOverlappingStarts(t *testing.T) {
	in, from, to := tuesdayInputs()
	in.Staff[0].TimeOff = []Interval{{
		Start: time.Date(2024, 9, 3, 11, 0, 0, 0, zurich),
		End:   time.Date(2024, 9, 3, 13, 0, 0, 0, zurich),
	}}
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	offStart := time.Date(2024, 9, 3, 11, 0, 0, 0, zurich)
	offEnd := time.Date(2024, 9, 3, 13, 0, 0, 0, zurich)
	for _, s := range slots {
		if !s.Start.Before(offStart) && s.Start.Before(offEnd) {
			t.Errorf("slot starts inside time off: %s", localClock(s.Start))
		}
	}
	// The buffer pushes the exclusion zone wider than the time off itself:
	// 10:00 would end its buffered window at 11:05, inside the time off.
	for _, s := range slots {
		if localClock(s.Start) == "10:00" {
			t.Errorf("10:00 start must be excluded by buffer overlap")
		}
	}
	// 09:55 is the last clean start before the gap.
	found := false
	for _, s := range slots {
		if localClock(s.Start) == "09:55" {
			found = true
		}
	}
	if !found {
		t.Errorf("09:55 start should survive: its buffered window ends exactly at 11:00")
	}
}

func TestBlockingAppointmentExcludesWindow(t *testing.T) {
	in, from, to := tuesdayInputs()
	in.Staff[0].Busy = []Interval{{
		Start: time.Date(2024, 9, 3, 15, 0, 0, 0, zurich),
		End:   time.Date(2024, 9, 3, 16, 0, 0, 0, zurich),
	}}
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	for _, s := range slots {
		if s.Start.In(zurich).Hour() == 15 {
			t.Errorf("slot starts during booked hour: %s", localClock(s.Start))
		}
	}
}

func TestResourceCapacityExhausted(t *testing.T) {
	in, from, to := tuesdayInputs()
	chair := uuid.New()
	window := Interval{
		Start: time.Date(2024, 9, 3, 10, 0, 0, 0, zurich),
		End:   time.Date(2024, 9, 3, 11, 0, 0, 0, zurich),
	}
	in.ResourceCapacity[chair] = 2
	in.Requirements = []Requirement{{ResourceID: chair, Quantity: 1}}
	in.ResourceWindows = []ResourceWindow{
		{ResourceID: chair, Window: window, Quantity: 1},
		{ResourceID: chair, Window: window, Quantity: 1},
	}
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	for _, s := range slots {
		buffered := Interval{
			Start: s.Start.Add(-10 * time.Minute),
			End:   s.End.Add(5 * time.Minute),
		}
		if buffered.Overlaps(window) {
			t.Errorf("slot %s overlaps exhausted resource window", localClock(s.Start))
		}
	}
	if len(slots) == 0 {
		t.Errorf("slots outside the window must survive")
	}
}

func TestResourceCapacityPartiallyUsed(t *testing.T) {
	in, from, to := tuesdayInputs()
	chair := uuid.New()
	window := Interval{
		Start: time.Date(2024, 9, 3, 10, 0, 0, 0, zurich),
		End:   time.Date(2024, 9, 3, 11, 0, 0, 0, zurich),
	}
	in.ResourceCapacity[chair] = 2
	in.Requirements = []Requirement{{ResourceID: chair, Quantity: 1}}
	in.ResourceWindows = []ResourceWindow{{ResourceID: chair, Window: window, Quantity: 1}}
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	// One of two units used: the second unit keeps the window open.
	found := false
	for _, s := range slots {
		if localClock(s.Start) == "10:00" {
			found = true
		}
	}
	if !found {
		t.Errorf("10:00 start should survive with spare capacity")
	}
}

func TestUnknownResourceRequirementIsIgnored(t *testing.T) {
	in, from, to := tuesdayInputs()
	in.Requirements = []Requirement{{ResourceID: uuid.New(), Quantity: 1}}
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) != 82 {
		t.Errorf("slot count = %d, want 82: unknown resources must not block", len(slots))
	}
}

func TestZeroCapacityOverrideClosesBlock(t *testing.T) {
	in, from, to := tuesdayInputs()
	zero := 0
	in.Staff[0].Blocks[0].CapacityOverride = &zero
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("slot count = %d, want 0", len(slots))
	}
}

func TestHolidayYieldsNoSlots(t *testing.T) {
	in, _, _ := tuesdayInputs()
	// 2024-09-09 is the Knabenschiessen Monday; move the block to Mondays.
	in.Staff[0].Blocks[0].Weekday = 0
	from := time.Date(2024, 9, 9, 0, 0, 0, 0, zurich)
	to := time.Date(2024, 9, 10, 0, 0, 0, 0, zurich)

	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("ZH slots on Knabenschiessen = %d, want 0", len(slots))
	}

	// A canton without the fair works that Monday.
	in.Staff[0].Holidays = HolidaysForCanton("BE", []int{2024})
	slots, err = ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) == 0 {
		t.Errorf("BE slots on Knabenschiessen Monday = 0, want some")
	}
}

func TestOddDurationFallsBackToMinuteStep(t *testing.T) {
	in, from, to := tuesdayInputs()
	in.Staff[0].Effective.Duration = 47 * time.Minute
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) < 2 {
		t.Fatalf("expected slots")
	}
	if gap := slots[1].Start.Sub(slots[0].Start); gap != time.Minute {
		t.Errorf("gap = %v, want 1m for 47 minute duration", gap)
	}
}

func TestRangeClampsCandidates(t *testing.T) {
	in, _, _ := tuesdayInputs()
	from := time.Date(2024, 9, 3, 12, 0, 0, 0, zurich)
	to := time.Date(2024, 9, 3, 14, 0, 0, 0, zurich)
	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	for _, s := range slots {
		if s.Start.Before(from) || s.End.After(to) {
			t.Errorf("slot [%s, %s] escapes the requested range", localClock(s.Start), localClock(s.End))
		}
	}
	if len(slots) == 0 {
		t.Errorf("expected slots inside the narrowed range")
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	in, from, to := tuesdayInputs()
	first, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	second, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || first[i].StaffID != second[i].StaffID {
			t.Fatalf("slot %d differs between runs", i)
		}
	}
}

func TestTwoStaffSortedByStartThenID(t *testing.T) {
	in, from, to := tuesdayInputs()
	second := in.Staff[0]
	second.StaffID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
	second.Blocks = []*staff.AvailabilityBlock{{
		ID:        uuid.New(),
		StaffID:   second.StaffID,
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "17:00",
	}}
	in.Staff = append(in.Staff, second)

	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	if len(slots) != 164 {
		t.Fatalf("slot count = %d, want 164", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if cur.Start.Before(prev.Start) {
			t.Fatalf("slots out of order at %d", i)
		}
		if cur.Start.Equal(prev.Start) && cur.StaffID.String() < prev.StaffID.String() {
			t.Fatalf("tie at %d not broken by staff id", i)
		}
	}
}

func TestStaffInDifferentTimezonesWalkOwnClocks(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatal(err)
	}
	in, from, to := tuesdayInputs()
	second := in.Staff[0]
	second.StaffID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
	second.LocationID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	second.TZ = london
	second.Blocks = []*staff.AvailabilityBlock{{
		ID:        uuid.New(),
		StaffID:   second.StaffID,
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "17:00",
	}}
	in.Staff = append(in.Staff, second)

	slots, err := ComputeAvailableSlots(in, from, to)
	if err != nil {
		t.Fatalf("ComputeAvailableSlots: %v", err)
	}
	var zurichFirst, londonFirst *Slot
	for i := range slots {
		s := &slots[i]
		switch s.StaffID {
		case in.Staff[0].StaffID:
			if s.LocationID != in.Staff[0].LocationID {
				t.Fatalf("zurich slot carries location %s", s.LocationID)
			}
			if zurichFirst == nil {
				zurichFirst = s
			}
		case second.StaffID:
			if s.LocationID != second.LocationID {
				t.Fatalf("london slot carries location %s", s.LocationID)
			}
			if londonFirst == nil {
				londonFirst = s
			}
		}
	}
	if zurichFirst == nil || londonFirst == nil {
		t.Fatalf("expected slots for both staff members")
	}
	if got := zurichFirst.Start.In(zurich).Format("15:04"); got != "09:10" {
		t.Errorf("zurich first start = %s, want 09:10 local", got)
	}
	if got := londonFirst.Start.In(london).Format("15:04"); got != "09:10" {
		t.Errorf("london first start = %s, want 09:10 local", got)
	}
	// In September London runs one hour behind Zurich, so the same wall
	// clock start lands one hour later on the shared timeline.
	if diff := londonFirst.Start.Sub(zurichFirst.Start); diff != time.Hour {
		t.Errorf("instant offset between salons = %v, want 1h", diff)
	}
}

func TestMissingTimezoneFails(t *testing.T) {
	in, from, to := tuesdayInputs()
	in.Staff[0].TZ = nil
	if _, err := ComputeAvailableSlots(in, from, to); err == nil {
		t.Errorf("expected error for agenda without timezone")
	}
}

func TestResolveEffectiveOverrides(t *testing.T) {
	defaults := ServiceDefaults{
		ServiceID:           uuid.New(),
		DurationMinutes:     60,
		BufferBeforeMinutes: 10,
		BufferAfterMinutes:  5,
		PriceCHF:            8500,
	}
	if eff := ResolveEffective(defaults, nil); eff.Duration != 60*time.Minute || eff.PriceCHF != 8500 {
		t.Errorf("nil override must keep defaults")
	}
	dur, price := 45, 7000
	eff := ResolveEffective(defaults, &Override{DurationMinutes: &dur, PriceCHF: &price})
	if eff.Duration != 45*time.Minute {
		t.Errorf("duration = %v, want 45m", eff.Duration)
	}
	if eff.PriceCHF != 7000 {
		t.Errorf("price = %d, want 7000", eff.PriceCHF)
	}
	if eff.BufferBefore != 10*time.Minute || eff.BufferAfter != 5*time.Minute {
		t.Errorf("unset override fields must keep defaults")
	}
}

func TestMalformedBlockClockFails(t *testing.T) {
	in, from, to := tuesdayInputs()
	in.Staff[0].Blocks[0].StartTime = "9am"
	if _, err := ComputeAvailableSlots(in, from, to); err == nil {
		t.Errorf("expected error for malformed clock value")
	}
}
