// Package database
package database

import (
	"context"
	"slices"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
	now          func() time.Time
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout, now: utcNow}
}

var (
	lockForUpdate = clause.Locking{Strength: "UPDATE"}
	// conflict candidates are read with a locking read, which sees the latest committed rows
	// even when an earlier plain read already fixed the transaction snapshot (mysql repeatable read)
	lockFlightsForShare = clause.Locking{Strength: "SHARE", Table: clause.Table{Name: "flights"}}
	// row is reserved in mysql, so the ordering is built from quoted columns
	seatOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "row"}},
		{Column: clause.Column{Name: "seat"}},
	}}
)

// ScheduleFlight is the only path that creates or changes a flight. The airplane and crew rows
// are locked first so two schedulers touching the same resource serialize on them.
func (flightOperation *FlightOperation) ScheduleFlight(schedule *FlightSchedule) (flight *Flight, err error) {
	window := schedule.Window().UTC()
	if !window.Valid() {
		return nil, ErrInvalidTimeWindow
	}
	crewIds := uniqueIds(schedule.CrewIds)
	if len(crewIds) == 0 {
		return nil, ErrMissingCrew
	}

	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	flight = &Flight{}
	err = flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if schedule.FlightId != 0 {
			if err := tx.Clauses(lockForUpdate).First(flight, schedule.FlightId).Error; err != nil {
				return translate(err, ErrFlightNotFound, nil)
			}
		}
		airplane := &Airplane{}
		if err := tx.Clauses(lockForUpdate).First(airplane, schedule.AirplaneId).Error; err != nil {
			return translate(err, &InvalidReferenceError{Field: "airplane", Id: schedule.AirplaneId}, nil)
		}

		crew := make([]*Crew, 0, len(crewIds))
		if err := tx.Clauses(lockForUpdate).Where("id IN ?", crewIds).Order("id").Find(&crew).Error; err != nil {
			return err
		}
		if len(crew) != len(crewIds) {
			return &InvalidReferenceError{Field: "crew", Id: firstMissing(crewIds, crew)}
		}
		if err := requireReference(tx, &Route{}, "route", schedule.RouteId); err != nil {
			return err
		}
		if err := CheckCrewComposition(crew); err != nil {
			return err
		}

		if conflict, err := flightOperation.airplaneConflict(tx, airplane.ID, window, schedule.FlightId); err != nil {
			return err
		} else if conflict != nil {
			return &SchedulingConflictError{
				Resource:     ConflictAirplane,
				ResourceId:   airplane.ID,
				ResourceName: airplane.Name,
				FlightId:     conflict.ID,
			}
		}
		for _, member := range crew {
			if conflict, err := flightOperation.crewConflict(tx, member.ID, window, schedule.FlightId); err != nil {
				return err
			} else if conflict != nil {
				return &SchedulingConflictError{
					Resource:     ConflictCrewMember,
					ResourceId:   member.ID,
					ResourceName: member.FullName(),
					FlightId:     conflict.ID,
				}
			}
		}

		return flightOperation.persist(tx, flight, schedule, window, crew)
	})
	if err != nil {
		return nil, err
	}
	return flightOperation.GetFlight(flight.ID)
}

// persist writes the flight row and replaces its crew. Deactivation is one-way: an explicit
// is_active can only switch a flight off, and a departure in the past is stored inactive.
func (flightOperation *FlightOperation) persist(tx *gorm.DB, flight *Flight, schedule *FlightSchedule, window TimeWindow, crew []*Crew) error {
	active := flight.ID == 0 || flight.IsActive
	if schedule.IsActive != nil && !*schedule.IsActive {
		active = false
	}
	if !window.Departure.After(flightOperation.now()) {
		active = false
	}

	flight.RouteId = schedule.RouteId
	flight.AirplaneId = schedule.AirplaneId
	flight.DepartureTime = window.Departure
	flight.ArrivalTime = window.Arrival
	flight.IsActive = active
	flight.Route, flight.Airplane, flight.Crew = nil, nil, nil

	if flight.ID == 0 {
		if err := tx.Omit(clause.Associations).Create(flight).Error; err != nil {
			return err
		}
		// gorm skips zero values that have a column default on insert
		if !active {
			if err := tx.Model(flight).Update("is_active", false).Error; err != nil {
				return err
			}
		}
	} else {
		err := tx.Model(flight).Omit(clause.Associations).
			Select("route_id", "airplane_id", "departure_time", "arrival_time", "is_active").
			Updates(flight).Error
		if err != nil {
			return err
		}
	}
	return tx.Model(flight).Association("Crew").Replace(crew)
}

func airplaneConflictQuery(tx *gorm.DB, airplaneId uint, window TimeWindow) *gorm.DB {
	return tx.Model(&Flight{}).Clauses(lockFlightsForShare).
		Where("airplane_id = ?", airplaneId).
		Where("departure_time < ? AND arrival_time > ?", window.Arrival, window.Departure).
		Order("departure_time")
}

func crewConflictQuery(tx *gorm.DB, crewId uint, window TimeWindow) *gorm.DB {
	return tx.Model(&Flight{}).Clauses(lockFlightsForShare).
		Joins("JOIN "+flightCrewTable+" ON "+flightCrewTable+".flight_id = flights.id").
		Where(flightCrewTable+".crew_id = ?", crewId).
		Where("flights.departure_time < ? AND flights.arrival_time > ?", window.Arrival, window.Departure).
		Order("flights.departure_time")
}

func (flightOperation *FlightOperation) airplaneConflict(tx *gorm.DB, airplaneId uint, window TimeWindow, excludeId uint) (*Flight, error) {
	candidates := make([]*Flight, 0)
	if err := airplaneConflictQuery(tx, airplaneId, window).Find(&candidates).Error; err != nil {
		return nil, err
	}
	return FindConflict(window, candidates, excludeId), nil
}

func (flightOperation *FlightOperation) crewConflict(tx *gorm.DB, crewId uint, window TimeWindow, excludeId uint) (*Flight, error) {
	candidates := make([]*Flight, 0)
	if err := crewConflictQuery(tx, crewId, window).Find(&candidates).Error; err != nil {
		return nil, err
	}
	return FindConflict(window, candidates, excludeId), nil
}

func uniqueIds(ids []uint) []uint {
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 && !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func firstMissing(ids []uint, crew []*Crew) uint {
	for _, id := range ids {
		if !slices.ContainsFunc(crew, func(member *Crew) bool { return member.ID == id }) {
			return id
		}
	}
	return 0
}

func (flightOperation *FlightOperation) GetFlight(id uint) (flight *Flight, err error) {
	flight = &Flight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Preload("Route.Source.City").
		Preload("Route.Destination.City").
		Preload("Airplane.AirplaneType").
		Preload("Crew", func(db *gorm.DB) *gorm.DB { return db.Order("crews.id") }).
		First(flight, id).Error
	err = translate(err, ErrFlightNotFound, nil)
	return
}

func (flightOperation *FlightOperation) GetFlights(filter *FlightFilter) (flights []*Flight, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	byState := func(db *gorm.DB) *gorm.DB {
		if filter.IsActive != nil {
			db = db.Where("is_active = ?", *filter.IsActive)
		}
		if filter.DepartureAfter != nil {
			db = db.Where("departure_time >= ?", filter.DepartureAfter.UTC())
		}
		if filter.ArrivalBefore != nil {
			db = db.Where("arrival_time <= ?", filter.ArrivalBefore.UTC())
		}
		return db
	}
	byAirportName := func(db *gorm.DB) *gorm.DB {
		if filter.Search == "" {
			return db
		}
		session := db.Session(&gorm.Session{NewDB: true})
		airports := session.Model(&Airport{}).Select("id").Scopes(search(filter.Search, "name"))
		routes := session.Model(&Route{}).Select("id").
			Where("source_id IN (?) OR destination_id IN (?)", airports, airports)
		return db.Where("route_id IN (?)", routes)
	}
	return listOf[Flight](flightOperation.db.WithContext(ctx), filter.Pagination,
		[]string{"Route.Source", "Route.Destination", "Airplane"},
		byAirportName, equal("route_id", filter.RouteId), equal("airplane_id", filter.AirplaneId), byState)
}

func (flightOperation *FlightOperation) CountTickets(flightIds []uint) (counts map[uint]int64, err error) {
	counts = make(map[uint]int64, len(flightIds))
	if len(flightIds) == 0 {
		return
	}
	var rows []struct {
		FlightId uint
		Total    int64
	}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Model(&Ticket{}).
		Select("flight_id, COUNT(*) AS total").
		Where("flight_id IN ?", flightIds).
		Group("flight_id").
		Scan(&rows).Error
	for _, row := range rows {
		counts[row.FlightId] = row.Total
	}
	return
}

func (flightOperation *FlightOperation) GetTakenSeats(flightId uint) (seats []*Ticket, err error) {
	seats = make([]*Ticket, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Select("id", "row", "seat", "flight_id", "order_id").
		Where("flight_id = ?", flightId).
		Order(seatOrder).
		Find(&seats).Error
	return
}

// DeleteFlight removes the flight, its crew assignments and every ticket sold on it
func (flightOperation *FlightOperation) DeleteFlight(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Flight{}, id); err != nil {
			return err
		} else if !found {
			return ErrFlightNotFound
		}
		return deleteFlights(tx, []uint{id})
	})
}

// DeactivateDepartedFlights only ever moves flights from active to inactive, so running it again is a no-op
func (flightOperation *FlightOperation) DeactivateDepartedFlights(now time.Time) (flightIds []uint, err error) {
	flightIds = make([]uint, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		departed := tx.Model(&Flight{}).Where("is_active = ? AND departure_time < ?", true, now.UTC())
		if err := departed.Pluck("id", &flightIds).Error; err != nil {
			return err
		}
		if len(flightIds) == 0 {
			return nil
		}
		return tx.Model(&Flight{}).Where("id IN ?", flightIds).Update("is_active", false).Error
	})
	return
}
