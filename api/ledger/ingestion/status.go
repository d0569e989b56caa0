package ingestion

import "time"

// DeriveFlightStatus reports whether a booking is still upcoming relative to
// now. Both sides are normalized to midnight and a flight departing today
// still counts as Coming. A missing flying date defaults to Coming. Cancelled
// is never produced here; it only ever comes from an explicit user action, so
// re-deriving a status can never clobber a manual cancellation.
func DeriveFlightStatus(flyingDate *time.Time, now time.Time) FlightStatus {
	if flyingDate == nil {
		return StatusComing
	}
	if truncateToDay(*flyingDate).Before(truncateToDay(now)) {
		return StatusGone
	}
	return StatusComing
}
