// Package database
package database

import (
	"errors"
	"testing"

	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryUniqueness(t *testing.T) {
	_, ops := newTestDatabase(t)
	countryOperation := ops.CountryOperation()
	require.NoError(t, countryOperation.AddCountry(countryOperation.NewCountry("Poland", "POL")))

	err := countryOperation.AddCountry(countryOperation.NewCountry("Poland", "PLX"))
	var duplicate *operation.DuplicateEntityError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, []string{"name"}, duplicate.Fields)

	err = countryOperation.AddCountry(countryOperation.NewCountry("Polska", "POL"))
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, []string{"code"}, duplicate.Fields)

	// exact match only
	assert.NoError(t, countryOperation.AddCountry(countryOperation.NewCountry("poland", "pol")))

	err = countryOperation.AddCountry(countryOperation.NewCountry("Germany", "DE"))
	assert.ErrorIs(t, err, operation.ErrInvalidField)

	countries, total, err := countryOperation.GetCountries(&operation.CountryFilter{Search: "land"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, countries, 2)

	// search ignores case even though uniqueness does not
	_, total, err = countryOperation.GetCountries(&operation.CountryFilter{Search: "LAND"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestCountryUpdate(t *testing.T) {
	_, ops := newTestDatabase(t)
	countryOperation := ops.CountryOperation()
	poland := countryOperation.NewCountry("Poland", "POL")
	require.NoError(t, countryOperation.AddCountry(poland))
	czechia := countryOperation.NewCountry("Czechia", "CZE")
	require.NoError(t, countryOperation.AddCountry(czechia))

	poland.Name = "Republic of Poland"
	require.NoError(t, countryOperation.UpdateCountry(poland))
	reloaded, err := countryOperation.GetCountry(poland.ID)
	require.NoError(t, err)
	assert.Equal(t, "Republic of Poland", reloaded.Name)

	czechia.Code = "POL"
	assert.ErrorIs(t, countryOperation.UpdateCountry(czechia), operation.ErrDuplicateEntity)

	assert.ErrorIs(t, countryOperation.UpdateCountry(&operation.Country{ID: 99, Name: "X", Code: "XXX"}), operation.ErrCountryNotFound)
	_, err = countryOperation.GetCountry(99)
	assert.ErrorIs(t, err, operation.ErrNotFound)
}

func TestCityAndAirportReferences(t *testing.T) {
	_, f := newFixture(t)
	cityOperation := f.ops.CityOperation()

	err := cityOperation.AddCity(cityOperation.NewCity("Lviv", 999))
	var reference *operation.InvalidReferenceError
	require.True(t, errors.As(err, &reference))
	assert.Equal(t, "country", reference.Field)

	err = cityOperation.AddCity(cityOperation.NewCity("Kyiv", f.country.ID))
	var duplicate *operation.DuplicateEntityError
	require.True(t, errors.As(err, &duplicate))
	assert.Equal(t, "city with this name and country already exists", err.Error())

	other := f.ops.CountryOperation().NewCountry("Belarus", "BLR")
	require.NoError(t, f.ops.CountryOperation().AddCountry(other))
	assert.NoError(t, cityOperation.AddCity(cityOperation.NewCity("Kyiv", other.ID)))

	cities, total, err := cityOperation.GetCities(&operation.CityFilter{CountryId: other.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Belarus", cities[0].Country.Name)

	airportOperation := f.ops.AirportOperation()
	assert.ErrorIs(t, airportOperation.AddAirport(airportOperation.NewAirport("Boryspil", f.city.ID)), operation.ErrDuplicateEntity)
	assert.ErrorIs(t, airportOperation.AddAirport(airportOperation.NewAirport("Sikorsky", 999)), operation.ErrInvalidReference)

	airports, total, err := airportOperation.GetAirports(&operation.AirportFilter{CountryId: f.country.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "Ukraine", airports[0].City.Country.Name)
}

func TestRouteRules(t *testing.T) {
	_, f := newFixture(t)
	routeOperation := f.ops.RouteOperation()

	assert.ErrorIs(t, routeOperation.AddRoute(routeOperation.NewRoute(f.source.ID, f.source.ID, 10)), operation.ErrInvalidRoute)
	assert.ErrorIs(t, routeOperation.AddRoute(routeOperation.NewRoute(f.source.ID, f.destination.ID, 0)), operation.ErrInvalidRoute)
	assert.ErrorIs(t, routeOperation.AddRoute(routeOperation.NewRoute(f.source.ID, f.destination.ID, 40)), operation.ErrDuplicateEntity)
	assert.ErrorIs(t, routeOperation.AddRoute(routeOperation.NewRoute(f.source.ID, 999, 40)), operation.ErrInvalidReference)

	reverse := routeOperation.NewRoute(f.destination.ID, f.source.ID, 35)
	require.NoError(t, routeOperation.AddRoute(reverse))

	reverse.Distance = -5
	assert.ErrorIs(t, routeOperation.UpdateRoute(reverse), operation.ErrInvalidRoute)
	reverse.Distance = 36
	require.NoError(t, routeOperation.UpdateRoute(reverse))

	routes, total, err := routeOperation.GetRoutes(&operation.RouteFilter{SourceId: f.destination.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 36, routes[0].Distance)
	assert.Equal(t, "Zhuliany", routes[0].Source.Name)

	_, total, err = routeOperation.GetRoutes(&operation.RouteFilter{Search: "Borys"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestAirplaneAndCrewValidation(t *testing.T) {
	_, f := newFixture(t)
	airplaneOperation := f.ops.AirplaneOperation()

	assert.ErrorIs(t, airplaneOperation.AddAirplane(airplaneOperation.NewAirplane("UR-X", 0, 6, f.planeType.ID)), operation.ErrInvalidField)
	assert.ErrorIs(t, airplaneOperation.AddAirplane(airplaneOperation.NewAirplane("UR-PSA", 10, 6, f.planeType.ID)), operation.ErrDuplicateEntity)
	assert.ErrorIs(t, f.ops.AirplaneTypeOperation().AddAirplaneType(f.ops.AirplaneTypeOperation().NewAirplaneType("Boeing 737")), operation.ErrDuplicateEntity)

	require.NoError(t, airplaneOperation.UpdateAirplaneImage(f.airplane, "airplanes/ur-psa.png"))
	airplane, err := airplaneOperation.GetAirplane(f.airplane.ID)
	require.NoError(t, err)
	assert.Equal(t, "airplanes/ur-psa.png", airplane.ImagePath)
	assert.Equal(t, "Boeing 737", airplane.AirplaneType.Name)

	crewOperation := f.ops.CrewOperation()
	assert.ErrorIs(t, crewOperation.AddCrew(crewOperation.NewCrew("Ivan", "Franko", "XX")), operation.ErrInvalidField)
	crews, total, err := crewOperation.GetCrews(&operation.CrewFilter{Position: operation.Stewardess})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, operation.Stewardess, crews[0].Position)

	_, total, err = crewOperation.GetCrews(&operation.CrewFilter{Search: "Kova"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCountryDeleteCascades(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)
	_, err := f.ops.OrderOperation().CreateOrder(f.user.ID, []*operation.TicketRequest{{FlightId: flight.ID, Row: 1, Seat: 1}})
	require.NoError(t, err)

	require.NoError(t, f.ops.CountryOperation().DeleteCountry(f.country.ID))
	for _, table := range []string{"countries", "cities", "airports", "routes", "flights", "flight_crew", "tickets"} {
		assert.Zero(t, count(t, db, table), table)
	}
	// reference data outside the country survives
	assert.Equal(t, int64(2), count(t, db, "airplanes"))
	assert.Equal(t, int64(4), count(t, db, "crews"))
	assert.ErrorIs(t, f.ops.CountryOperation().DeleteCountry(f.country.ID), operation.ErrCountryNotFound)
}

func TestAirplaneTypeDeleteCascades(t *testing.T) {
	db, f := newFixture(t)
	f.flight(t)

	require.NoError(t, f.ops.AirplaneTypeOperation().DeleteAirplaneType(f.planeType.ID))
	assert.Zero(t, count(t, db, "airplanes"))
	assert.Zero(t, count(t, db, "flights"))
	assert.Equal(t, int64(1), count(t, db, "routes"))
}

func TestCrewDeleteKeepsFlights(t *testing.T) {
	db, f := newFixture(t)
	flight := f.flight(t)

	require.NoError(t, f.ops.CrewOperation().DeleteCrew(f.stewardess.ID))
	assert.Equal(t, int64(1), count(t, db, "flight_crew"))
	reloaded, err := f.ops.FlightOperation().GetFlight(flight.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Crew, 1)

	var composition *operation.CrewCompositionError
	require.True(t, errors.As(operation.CheckCrewComposition(reloaded.Crew), &composition))
	assert.Equal(t, []operation.CrewPosition{operation.Stewardess}, composition.Missing)

	// the remaining crew cannot be saved back as is
	reschedule := f.schedule(f.airplane, 0, 2, f.pilot)
	reschedule.FlightId = flight.ID
	_, err = f.ops.FlightOperation().ScheduleFlight(reschedule)
	require.True(t, errors.As(err, &composition))

	reschedule = f.schedule(f.airplane, 0, 2, f.pilot, f.stewardess2)
	reschedule.FlightId = flight.ID
	rescheduled, err := f.ops.FlightOperation().ScheduleFlight(reschedule)
	require.NoError(t, err)
	assert.Len(t, rescheduled.Crew, 2)
}

func TestUserOperation(t *testing.T) {
	_, f := newFixture(t)
	userOperation := f.ops.UserOperation()

	duplicate, err := userOperation.NewUser("passenger@example.com", "whatever", false)
	require.NoError(t, err)
	assert.ErrorIs(t, userOperation.AddUser(duplicate), operation.ErrDuplicateEntity)

	user, err := userOperation.GetUserByEmail("passenger@example.com")
	require.NoError(t, err)
	assert.True(t, userOperation.VerifyUserPassword(user, "secret123"))
	assert.False(t, userOperation.VerifyUserPassword(user, "secret124"))

	_, err = userOperation.UpdateUserPassword(user, "wrong", "new-secret", false)
	assert.ErrorIs(t, err, operation.ErrOldPassword)
	encoded, err := userOperation.UpdateUserPassword(user, "secret123", "new-secret", false)
	require.NoError(t, err)
	user.Password = string(encoded)
	require.NoError(t, userOperation.SaveUser(user))

	user, err = userOperation.GetUserById(user.ID)
	require.NoError(t, err)
	assert.True(t, userOperation.VerifyUserPassword(user, "new-secret"))

	_, err = userOperation.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, operation.ErrUserNotFound)
}

func TestAuditLogOperation(t *testing.T) {
	_, ops := newTestDatabase(t)
	auditOperation := ops.AuditLogOperation()
	require.NoError(t, auditOperation.SaveAuditLog(auditOperation.NewAuditLog(operation.CountryCreated, 1, "Poland", "127.0.0.1", "test", nil)))
	require.NoError(t, auditOperation.SaveAuditLog(auditOperation.NewAuditLog(operation.CountryUpdated, 1, "Poland", "127.0.0.1", "test",
		&operation.ChangeDetail{OldValue: "POL", NewValue: "PLN"})))

	logs, total, err := auditOperation.GetAuditLogs(&operation.AuditLogFilter{EventType: operation.CountryUpdated})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.NotNil(t, logs[0].ChangeDetails)
	assert.Equal(t, "PLN", logs[0].ChangeDetails.NewValue)
}
