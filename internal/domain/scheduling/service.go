package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/salonkit/salonkit/internal/domain/booking"
	"github.com/salonkit/salonkit/internal/domain/catalog"
	"github.com/salonkit/salonkit/internal/domain/location"
	"github.com/salonkit/salonkit/internal/domain/staff"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceRequired = errors.New("serviceId is required")
	ErrInvalidRange    = errors.New("from must be before to")
)

// appointmentLookback pads the appointment query window so bookings that
// start before the range but spill into it are still seen.
const appointmentLookback = 24 * time.Hour

// SlotsRequest is the public availability query.
type SlotsRequest struct {
	ServiceID uuid.UUID `json:"serviceId"`
	StaffID   uuid.UUID `json:"staffId,omitempty"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
}

// SlotsResponse is the availability result. Message is set when the search
// was valid but could not run, such as a service with no assigned staff.
type SlotsResponse struct {
	Slots   []Slot `json:"slots"`
	Message string `json:"message,omitempty"`
}

// Service assembles the engine snapshot from the domain repositories and runs
// the search.
type Service struct {
	services     catalog.ServiceRepository
	overrides    catalog.StaffServiceRepository
	requirements catalog.ServiceResourceRepository
	staff        staff.StaffRepository
	availability staff.AvailabilityRepository
	timeOff      staff.TimeOffRepository
	appointments booking.AppointmentRepository
	holds        booking.AppointmentResourceRepository
	locations    location.LocationRepository
	resources    location.ResourceRepository
}

func NewService(
	services catalog.ServiceRepository,
	overrides catalog.StaffServiceRepository,
	requirements catalog.ServiceResourceRepository,
	staffRepo staff.StaffRepository,
	availability staff.AvailabilityRepository,
	timeOff staff.TimeOffRepository,
	appointments booking.AppointmentRepository,
	holds booking.AppointmentResourceRepository,
	locations location.LocationRepository,
	resources location.ResourceRepository,
) *Service {
	return &Service{
		services:     services,
		overrides:    overrides,
		requirements: requirements,
		staff:        staffRepo,
		availability: availability,
		timeOff:      timeOff,
		appointments: appointments,
		holds:        holds,
		locations:    locations,
		resources:    resources,
	}
}

// FindSlots loads everything the engine needs for one service and range,
// then computes the available slots.
func (s *Service) FindSlots(ctx context.Context, req SlotsRequest) (*SlotsResponse, error) {
	if req.ServiceID == uuid.Nil {
		return nil, ErrServiceRequired
	}
	if !req.From.Before(req.To) {
		return nil, ErrInvalidRange
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.Bookable() {
		return nil, ErrServiceNotFound
	}

	// The override table doubles as the assignment table: it defines which
	// staff can perform the service. A staffId filter is honored only when
	// that staff member is actually assigned.
	assignments, err := s.overrides.ListByService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	overrideByStaff := make(map[uuid.UUID]*catalog.StaffService, len(assignments))
	var staffIDs []uuid.UUID
	for _, a := range assignments {
		if req.StaffID != uuid.Nil && a.StaffID != req.StaffID {
			continue
		}
		overrideByStaff[a.StaffID] = a
		staffIDs = append(staffIDs, a.StaffID)
	}
	if len(staffIDs) == 0 {
		return &SlotsResponse{Slots: []Slot{}, Message: "no staff assigned to this service"}, nil
	}

	staffRows, err := s.staff.ListByIDs(ctx, staffIDs)
	if err != nil {
		return nil, err
	}
	var active []*staff.Staff
	for _, st := range staffRows {
		if st.Active {
			active = append(active, st)
		}
	}
	if len(active) == 0 {
		return &SlotsResponse{Slots: []Slot{}, Message: "no staff assigned to this service"}, nil
	}

	// Staff assigned to the same service can work out of different salons.
	// Resolve every involved location so each agenda gets its own timezone
	// and canton holiday set.
	var locIDs []uuid.UUID
	seenLoc := make(map[uuid.UUID]struct{})
	for _, st := range active {
		if _, ok := seenLoc[st.LocationID]; ok {
			continue
		}
		seenLoc[st.LocationID] = struct{}{}
		locIDs = append(locIDs, st.LocationID)
	}
	locs, err := s.locations.ListByIDs(ctx, locIDs)
	if err != nil {
		return nil, err
	}
	locByID := make(map[uuid.UUID]*location.Location, len(locs))
	tzByLoc := make(map[uuid.UUID]*time.Location, len(locs))
	for _, l := range locs {
		tz, err := time.LoadLocation(l.Timezone)
		if err != nil {
			return nil, fmt.Errorf("location %s: invalid timezone %q: %w", l.ID, l.Timezone, err)
		}
		locByID[l.ID] = l
		tzByLoc[l.ID] = tz
	}
	for _, st := range active {
		if _, ok := locByID[st.LocationID]; !ok {
			return nil, fmt.Errorf("location %s not found", st.LocationID)
		}
	}

	activeIDs := make([]uuid.UUID, len(active))
	for i, st := range active {
		activeIDs[i] = st.ID
	}

	blocks, err := s.availability.ListByStaffIDs(ctx, activeIDs)
	if err != nil {
		return nil, err
	}
	timeOff, err := s.timeOff.ListByStaffIDs(ctx, activeIDs)
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.ListByStaffInRange(ctx, activeIDs,
		req.From.Add(-appointmentLookback), req.To.Add(appointmentLookback))
	if err != nil {
		return nil, err
	}

	var blocking []*booking.Appointment
	var blockingIDs []uuid.UUID
	for _, a := range appts {
		if booking.Blocking(a.Status) {
			blocking = append(blocking, a)
			blockingIDs = append(blockingIDs, a.ID)
		}
	}
	holds, err := s.holds.ListByAppointmentIDs(ctx, blockingIDs)
	if err != nil {
		return nil, err
	}

	resources, err := s.resources.ListByLocationIDs(ctx, locIDs)
	if err != nil {
		return nil, err
	}
	requirements, err := s.requirements.ListByService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	in := buildInputs(svc, locByID, tzByLoc, active, overrideByStaff, blocks, timeOff, blocking, holds, resources, requirements, req.From, req.To)

	slots, err := ComputeAvailableSlots(in, req.From, req.To)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []Slot{}
	}
	log.Ctx(ctx).Debug().
		Str("service_id", req.ServiceID.String()).
		Int("staff", len(active)).
		Int("slots", len(slots)).
		Msg("slot search complete")
	return &SlotsResponse{Slots: slots}, nil
}

func buildInputs(
	svc *catalog.Service,
	locByID map[uuid.UUID]*location.Location,
	tzByLoc map[uuid.UUID]*time.Location,
	active []*staff.Staff,
	overrideByStaff map[uuid.UUID]*catalog.StaffService,
	blocks []*staff.AvailabilityBlock,
	timeOff []*staff.TimeOff,
	blocking []*booking.Appointment,
	holds []*booking.AppointmentResource,
	resources []*location.Resource,
	requirements []*catalog.ServiceResource,
	from, to time.Time,
) Inputs {
	defaults := ServiceDefaults{
		ServiceID:           svc.ID,
		DurationMinutes:     svc.DurationMinutes,
		BufferBeforeMinutes: svc.BufferBeforeMinutes,
		BufferAfterMinutes:  svc.BufferAfterMinutes,
		PriceCHF:            svc.PriceCHF,
	}

	blocksByStaff := make(map[uuid.UUID][]*staff.AvailabilityBlock)
	for _, b := range blocks {
		blocksByStaff[b.StaffID] = append(blocksByStaff[b.StaffID], b)
	}
	timeOffByStaff := make(map[uuid.UUID][]Interval)
	for _, t := range timeOff {
		timeOffByStaff[t.StaffID] = append(timeOffByStaff[t.StaffID], Interval{Start: t.StartAt, End: t.EndAt})
	}
	busyByStaff := make(map[uuid.UUID][]Interval)
	apptWindows := make(map[uuid.UUID]Interval, len(blocking))
	for _, a := range blocking {
		iv := Interval{Start: a.StartAt, End: a.EndAt}
		busyByStaff[a.StaffID] = append(busyByStaff[a.StaffID], iv)
		apptWindows[a.ID] = iv
	}

	// One holiday set per canton, shared by every staff member in it.
	years := yearsSpanning(from, to)
	holidaysByCanton := make(map[string]map[string]struct{})
	cantonHolidays := func(canton string) map[string]struct{} {
		if canton == "" {
			canton = "ZH"
		}
		if h, ok := holidaysByCanton[canton]; ok {
			return h
		}
		h := HolidaysForCanton(canton, years)
		holidaysByCanton[canton] = h
		return h
	}

	agendas := make([]StaffAgenda, 0, len(active))
	for _, st := range active {
		var o *Override
		if row := overrideByStaff[st.ID]; row != nil {
			o = &Override{
				DurationMinutes:     row.DurationMinutes,
				BufferBeforeMinutes: row.BufferBeforeMinutes,
				BufferAfterMinutes:  row.BufferAfterMinutes,
				PriceCHF:            row.PriceCHF,
			}
		}
		l := locByID[st.LocationID]
		agendas = append(agendas, StaffAgenda{
			StaffID:    st.ID,
			LocationID: l.ID,
			TZ:         tzByLoc[l.ID],
			Holidays:   cantonHolidays(l.Canton),
			Effective:  ResolveEffective(defaults, o),
			Blocks:     blocksByStaff[st.ID],
			TimeOff:    timeOffByStaff[st.ID],
			Busy:       busyByStaff[st.ID],
		})
	}

	capacity := make(map[uuid.UUID]int, len(resources))
	for _, r := range resources {
		capacity[r.ID] = r.Capacity
	}
	var windows []ResourceWindow
	for _, h := range holds {
		if iv, ok := apptWindows[h.AppointmentID]; ok {
			windows = append(windows, ResourceWindow{ResourceID: h.ResourceID, Window: iv, Quantity: h.Quantity})
		}
	}
	var reqs []Requirement
	for _, r := range requirements {
		reqs = append(reqs, Requirement{ResourceID: r.ResourceID, Quantity: r.Quantity})
	}

	return Inputs{
		Staff:            agendas,
		ResourceCapacity: capacity,
		Requirements:     reqs,
		ResourceWindows:  windows,
	}
}
