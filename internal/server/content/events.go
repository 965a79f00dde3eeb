package content

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

// Phase is the temporal bucket of an event relative to an instant.
type Phase int

const (
	Upcoming Phase = iota
	Ongoing
	Past
)

func (p Phase) String() string {
	switch p {
	case Upcoming:
		return "upcoming"
	case Ongoing:
		return "ongoing"
	case Past:
		return "past"
	}
	return "unknown"
}

// DefaultFeaturedEvents is the number of featured events returned when no
// positive limit is given.
const DefaultFeaturedEvents = 6

func IsEventUpcoming(e *models.Event) bool { return IsEventUpcomingAt(e, now()) }
func IsEventOngoing(e *models.Event) bool  { return IsEventOngoingAt(e, now()) }
func IsEventPast(e *models.Event) bool     { return IsEventPastAt(e, now()) }
func PhaseOf(e *models.Event) Phase        { return PhaseAt(e, now()) }

func IsEventUpcomingAt(e *models.Event, t time.Time) bool {
	return t.Before(e.StartDate)
}

// IsEventOngoingAt reports start <= t <= end; both bounds are inclusive.
func IsEventOngoingAt(e *models.Event, t time.Time) bool {
	return !t.Before(e.StartDate) && !t.After(e.EndDate)
}

func IsEventPastAt(e *models.Event, t time.Time) bool {
	return t.After(e.EndDate)
}

// PhaseAt classifies e at t. Boundary instants are Ongoing.
func PhaseAt(e *models.Event, t time.Time) Phase {
	switch {
	case IsEventOngoingAt(e, t):
		return Ongoing
	case IsEventUpcomingAt(e, t):
		return Upcoming
	default:
		return Past
	}
}

func byStartDesc(a, b *models.Event) int { return b.StartDate.Compare(a.StartDate) }
func byStartAsc(a, b *models.Event) int  { return a.StartDate.Compare(b.StartDate) }

// SortEventsByStartDesc returns a copy of events, latest start first.
func SortEventsByStartDesc(events []*models.Event) []*models.Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, byStartDesc)
	return out
}

// UpcomingEvents keeps events that have not ended yet (EndDate >= now),
// soonest start first. Ongoing events are included.
func UpcomingEvents(events []*models.Event) []*models.Event {
	return UpcomingEventsAt(events, now())
}

func UpcomingEventsAt(events []*models.Event, t time.Time) []*models.Event {
	out := filter(events, func(e *models.Event) bool { return !e.EndDate.Before(t) })
	slices.SortStableFunc(out, byStartAsc)
	return out
}

// PastEvents keeps events that ended before now, latest start first.
func PastEvents(events []*models.Event) []*models.Event {
	return PastEventsAt(events, now())
}

func PastEventsAt(events []*models.Event, t time.Time) []*models.Event {
	out := filter(events, func(e *models.Event) bool { return e.EndDate.Before(t) })
	slices.SortStableFunc(out, byStartDesc)
	return out
}

// FeaturedEvents returns at most limit featured events, latest start first.
func FeaturedEvents(events []*models.Event, limit int) []*models.Event {
	if limit <= 0 {
		limit = DefaultFeaturedEvents
	}
	out := filter(events, func(e *models.Event) bool { return e.Featured })
	slices.SortStableFunc(out, byStartDesc)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
