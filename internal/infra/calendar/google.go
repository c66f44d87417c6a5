package calendar

import (
	"context"
	"time"

	"slotwise/internal/domain/availability"
	"slotwise/internal/pkg/config"
	"slotwise/internal/pkg/errs"
	"slotwise/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendar backs both outbound ports: freebusy queries feed the
// availability computation and event writes mirror bookings. All methods are
// best-effort from the caller's perspective; errors here never fail a booking.
type GoogleCalendar struct {
	service    *gcal.Service
	calendarID string
	timeout    time.Duration
}

var (
	_ shared.ExternalBusyProvider = (*GoogleCalendar)(nil)
	_ shared.EventPublisher       = (*GoogleCalendar)(nil)
)

func NewGoogleCalendar(ctx context.Context, cfg config.CalendarConfig) (*GoogleCalendar, error) {
	creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.CredentialsJSON), gcal.CalendarScope)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse google credentials")
	}

	service, err := gcal.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create calendar service")
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &GoogleCalendar{
		service:    service,
		calendarID: calendarID,
		timeout:    cfg.Timeout,
	}, nil
}

func (g *GoogleCalendar) GetBusyIntervals(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]availability.Interval, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.service.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: g.calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errs.Wrap(err, "freebusy query failed")
	}

	cal, ok := resp.Calendars[g.calendarID]
	if !ok {
		return nil, nil
	}

	intervals := make([]availability.Interval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, perr := time.Parse(time.RFC3339, period.Start)
		if perr != nil {
			continue
		}
		end, perr := time.Parse(time.RFC3339, period.End)
		if perr != nil {
			continue
		}
		intervals = append(intervals, availability.Interval{Start: start, End: end})
	}
	return intervals, nil
}

func (g *GoogleCalendar) CreateEvent(ctx context.Context, hostID uuid.UUID, facts shared.EventFacts) (*shared.PublishedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	event := &gcal.Event{
		Summary:     facts.Title,
		Description: facts.Notes,
		Start:       &gcal.EventDateTime{DateTime: facts.StartTime.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: facts.EndTime.Format(time.RFC3339)},
		Attendees: []*gcal.EventAttendee{
			{Email: facts.GuestEmail, DisplayName: facts.GuestName},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				// The booking reference doubles as the idempotency key: a retried
				// create reuses the same conference instead of minting another.
				RequestId: facts.BookingRef,
			},
		},
	}

	created, err := g.service.Events.Insert(g.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).Do()
	if err != nil {
		return nil, errs.Wrap(err, "event insert failed")
	}

	return &shared.PublishedEvent{
		ExternalEventID: created.Id,
		ConferenceLink:  created.HangoutLink,
	}, nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, hostID uuid.UUID, externalEventID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.service.Events.Delete(g.calendarID, externalEventID).Context(ctx).Do(); err != nil {
		return errs.Wrap(err, "event delete failed")
	}
	return nil
}
