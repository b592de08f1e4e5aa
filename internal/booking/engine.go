// Package booking decides whether a proposed reservation may be committed.
// All functions are pure: they read nothing but their arguments (the current
// time is injected by the caller) and perform no I/O, so every admission
// decision is deterministic and testable in isolation. Durable insertion and
// the per-vehicle commit serialization live in the repository layer.
package booking

import (
	"fmt"
	"time"

	"github.com/Ahmed-779/Vehicle-Booking/internal/domain"
)

// RejectionKind classifies why a candidate was turned down. The set is closed:
// anything the engine cannot express here (malformed input, storage failures)
// must be handled by the caller before or after evaluation.
type RejectionKind string

const (
	RejectInvalidInterval RejectionKind = "INVALID_INTERVAL"
	RejectPastBooking     RejectionKind = "PAST_BOOKING"
	RejectVehicleNotFound RejectionKind = "VEHICLE_NOT_FOUND"
	RejectConflict        RejectionKind = "CONFLICT"
	RejectForbidden       RejectionKind = "FORBIDDEN"
)

// Candidate is a proposed reservation interval for one vehicle.
type Candidate struct {
	VehicleID int32
	Start     time.Time
	End       time.Time
}

// Decision is the tagged outcome of an evaluation: either admitted, or
// rejected with exactly one kind and a message the presentation layer can
// surface as-is. ConflictID identifies the blocking booking when Kind is
// RejectConflict.
type Decision struct {
	Admitted   bool
	Candidate  Candidate
	Kind       RejectionKind
	Message    string
	ConflictID int32
}

func admitted(c Candidate) Decision {
	return Decision{Admitted: true, Candidate: c}
}

func rejected(kind RejectionKind, message string) Decision {
	return Decision{Kind: kind, Message: message}
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share any instant. A booking ending exactly when another starts does not
// overlap, so back-to-back reservations are legal.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// EvaluateCreate validates a new reservation against the bookings already held
// for the same vehicle. Checks run in a fixed order and the first failure
// wins; existing must contain every live booking for candidate.VehicleID.
func EvaluateCreate(c Candidate, existing []domain.Booking, vehicleExists bool, now time.Time) Decision {
	return evaluate(c, existing, vehicleExists, now, 0)
}

// EvaluateUpdate validates moving booking targetID to the candidate interval.
// The authorization gate runs before any temporal check so that a caller who
// may not touch the booking learns nothing about slot availability. The
// overlap check skips targetID itself: a booking never conflicts with its own
// prior interval.
func EvaluateUpdate(c Candidate, existing []domain.Booking, vehicleExists bool, now time.Time, targetID, requesterID, ownerID int32, isAdmin bool) Decision {
	if requesterID != ownerID && !isAdmin {
		return rejected(RejectForbidden, "you may only modify your own bookings")
	}
	return evaluate(c, existing, vehicleExists, now, targetID)
}

// EvaluateDelete checks only ownership: the owner or an administrator may
// remove a booking.
func EvaluateDelete(targetID, requesterID, ownerID int32, isAdmin bool) Decision {
	if requesterID != ownerID && !isAdmin {
		return rejected(RejectForbidden, "you may only delete your own bookings")
	}
	return Decision{Admitted: true}
}

func evaluate(c Candidate, existing []domain.Booking, vehicleExists bool, now time.Time, excludeID int32) Decision {
	if !c.End.After(c.Start) {
		return rejected(RejectInvalidInterval, "end time must be after start time")
	}
	if c.Start.Before(now) {
		return rejected(RejectPastBooking, "booking cannot start in the past")
	}
	if !vehicleExists {
		return rejected(RejectVehicleNotFound, fmt.Sprintf("vehicle %d does not exist", c.VehicleID))
	}
	for _, b := range existing {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if Overlaps(c.Start, c.End, b.StartTime, b.EndTime) {
			d := rejected(RejectConflict, fmt.Sprintf(
				"vehicle is already booked from %s to %s",
				b.StartTime.Format(time.RFC3339), b.EndTime.Format(time.RFC3339)))
			d.ConflictID = b.ID
			return d
		}
	}
	return admitted(c)
}
