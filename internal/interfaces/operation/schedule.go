// Package operation
package operation

import (
	"fmt"
	"strings"
	"time"
)

// LargeAirplaneCapacity is the seat count above which an airplane counts as large
const LargeAirplaneCapacity = 200

// TimeWindow is the half-open interval [Departure, Arrival)
type TimeWindow struct {
	Departure time.Time
	Arrival   time.Time
}

func (w TimeWindow) Valid() bool { return w.Arrival.After(w.Departure) }

// Overlaps reports whether the two windows share an instant; touching ends do not overlap
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Departure.Before(other.Arrival) && other.Departure.Before(w.Arrival)
}

func (w TimeWindow) UTC() TimeWindow {
	return TimeWindow{Departure: w.Departure.UTC(), Arrival: w.Arrival.UTC()}
}

type CrewPosition string

const (
	MainPilot   CrewPosition = "MP"
	SecondPilot CrewPosition = "SP"
	Stewardess  CrewPosition = "ST"
	Medic       CrewPosition = "MD"
	CrewMember  CrewPosition = "CM"
)

var crewPositionLabels = map[CrewPosition]string{
	MainPilot:   "Main pilot",
	SecondPilot: "Second pilot",
	Stewardess:  "Stewardess",
	Medic:       "Medic",
	CrewMember:  "Crew member",
}

// RequiredCrewPositions must each be held by at least one member of a flight crew
var RequiredCrewPositions = []CrewPosition{MainPilot, Stewardess}

func (p CrewPosition) Valid() bool {
	_, ok := crewPositionLabels[p]
	return ok
}

func (p CrewPosition) Label() string {
	if label, ok := crewPositionLabels[p]; ok {
		return label
	}
	return string(p)
}

// ParseCrewPosition accepts either the two letter code or the label, ignoring case
func ParseCrewPosition(value string) (CrewPosition, error) {
	value = strings.TrimSpace(value)
	for position, label := range crewPositionLabels {
		if strings.EqualFold(value, string(position)) || strings.EqualFold(value, label) {
			return position, nil
		}
	}
	return "", &FieldError{Field: "position", Reason: fmt.Sprintf("%q is not a valid crew position", value)}
}

// CheckCrewComposition validates a crew set before any conflict lookup happens
func CheckCrewComposition(crew []*Crew) error {
	if len(crew) == 0 {
		return ErrMissingCrew
	}
	present := make(map[CrewPosition]bool, len(crewPositionLabels))
	for _, member := range crew {
		present[member.Position] = true
	}
	var missing []CrewPosition
	for _, position := range RequiredCrewPositions {
		if !present[position] {
			missing = append(missing, position)
		}
	}
	if len(missing) > 0 {
		return &CrewCompositionError{Missing: missing}
	}
	return nil
}

// FlightSchedule is the input of a create or update. FlightId is zero for a new flight and
// otherwise names the flight being rescheduled, which is excluded from conflict checks.
type FlightSchedule struct {
	FlightId   uint
	RouteId    uint
	AirplaneId uint
	Departure  time.Time
	Arrival    time.Time
	CrewIds    []uint
	// nil keeps the current state, only false takes effect on an existing flight
	IsActive *bool
}

func (s *FlightSchedule) Window() TimeWindow {
	return TimeWindow{Departure: s.Departure, Arrival: s.Arrival}
}

// FindConflict returns the first flight in candidates overlapping window, skipping excludeId
func FindConflict(window TimeWindow, candidates []*Flight, excludeId uint) *Flight {
	for _, candidate := range candidates {
		if excludeId != 0 && candidate.ID == excludeId {
			continue
		}
		if window.Overlaps(candidate.Window()) {
			return candidate
		}
	}
	return nil
}
