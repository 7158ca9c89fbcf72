// Package operation
package operation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC)

func window(fromHour, toHour int) TimeWindow {
	return TimeWindow{
		Departure: base.Add(time.Duration(fromHour) * time.Hour),
		Arrival:   base.Add(time.Duration(toHour) * time.Hour),
	}
}

func TestTimeWindowOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TimeWindow
		expected bool
	}{
		{"partial overlap", window(0, 2), window(1, 3), true},
		{"touching end is free", window(0, 2), window(2, 4), false},
		{"touching start is free", window(2, 4), window(0, 2), false},
		{"contained", window(0, 4), window(1, 2), true},
		{"identical", window(0, 2), window(0, 2), true},
		{"disjoint", window(0, 1), window(3, 4), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.a.Overlaps(test.b))
			assert.Equal(t, test.expected, test.b.Overlaps(test.a))
		})
	}
}

func TestTimeWindowValid(t *testing.T) {
	assert.True(t, window(0, 1).Valid())
	assert.False(t, window(1, 1).Valid())
	assert.False(t, window(2, 1).Valid())
}

func TestCheckCrewComposition(t *testing.T) {
	pilot := &Crew{FirstName: "Anna", LastName: "Kovacs", Position: MainPilot}
	stewardess := &Crew{FirstName: "Mira", LastName: "Lenz", Position: Stewardess}
	medic := &Crew{FirstName: "Tom", LastName: "Ortiz", Position: Medic}

	assert.NoError(t, CheckCrewComposition([]*Crew{pilot, stewardess}))
	assert.NoError(t, CheckCrewComposition([]*Crew{medic, pilot, stewardess}))
	assert.ErrorIs(t, CheckCrewComposition(nil), ErrMissingCrew)

	err := CheckCrewComposition([]*Crew{pilot})
	require.ErrorIs(t, err, ErrCrewComposition)
	var compositionErr *CrewCompositionError
	require.True(t, errors.As(err, &compositionErr))
	assert.Equal(t, []CrewPosition{Stewardess}, compositionErr.Missing)

	err = CheckCrewComposition([]*Crew{medic})
	require.True(t, errors.As(err, &compositionErr))
	assert.Equal(t, []CrewPosition{MainPilot, Stewardess}, compositionErr.Missing)
	assert.Equal(t, "flight crew must include at least one Main pilot and one Stewardess", err.Error())
}

func TestParseCrewPosition(t *testing.T) {
	position, err := ParseCrewPosition("mp")
	require.NoError(t, err)
	assert.Equal(t, MainPilot, position)

	position, err = ParseCrewPosition("Second pilot")
	require.NoError(t, err)
	assert.Equal(t, SecondPilot, position)

	_, err = ParseCrewPosition("captain")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestFindConflict(t *testing.T) {
	flights := []*Flight{
		{ID: 1, DepartureTime: window(0, 2).Departure, ArrivalTime: window(0, 2).Arrival},
		{ID: 2, DepartureTime: window(5, 6).Departure, ArrivalTime: window(5, 6).Arrival},
	}
	assert.Equal(t, uint(1), FindConflict(window(1, 3), flights, 0).ID)
	assert.Nil(t, FindConflict(window(1, 3), flights, 1))
	assert.Nil(t, FindConflict(window(2, 5), flights, 0))
	assert.Equal(t, uint(2), FindConflict(window(4, 7), flights, 1).ID)
}

func TestAirplaneDerived(t *testing.T) {
	airplane := &Airplane{Rows: 30, SeatsInRow: 6}
	assert.Equal(t, 180, airplane.Capacity())
	assert.False(t, airplane.IsLarge())

	airplane.Rows = 34
	assert.True(t, airplane.IsLarge())

	flight := &Flight{DepartureTime: base, ArrivalTime: base.Add(90 * time.Minute)}
	assert.Equal(t, 90*time.Minute, flight.Duration())
	assert.Equal(t, "Anna Kovacs", (&Crew{FirstName: "Anna", LastName: "Kovacs"}).FullName())
}
