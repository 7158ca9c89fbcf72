// Package database
package database

import (
	"context"
	"strings"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AirportOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirportOperation(db *gorm.DB, queryTimeout time.Duration) *AirportOperation {
	return &AirportOperation{db: db, queryTimeout: queryTimeout}
}

func (airportOperation *AirportOperation) NewAirport(name string, cityId uint) (airport *Airport) {
	return &Airport{Name: strings.TrimSpace(name), CityId: cityId}
}

func (airportOperation *AirportOperation) save(airport *Airport, create bool) error {
	if err := requireName("name", airport.Name); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	return airportOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !create {
			if found, err := exists(tx, &Airport{}, airport.ID); err != nil {
				return err
			} else if !found {
				return ErrAirportNotFound
			}
		}
		if err := requireReference(tx, &City{}, "city", airport.CityId); err != nil {
			return err
		}
		if err := checkUnique(tx, &Airport{}, "airport", airport.ID, []string{"name", "city_id"}, airport.Name, airport.CityId); err != nil {
			return err
		}
		airport.City = nil
		var err error
		if create {
			err = tx.Create(airport).Error
		} else {
			err = tx.Model(airport).Select("name", "city_id").Updates(airport).Error
		}
		return translate(err, ErrAirportNotFound, duplicateOf("airport", "name", "city_id"))
	})
}

func (airportOperation *AirportOperation) AddAirport(airport *Airport) (err error) {
	return airportOperation.save(airport, true)
}

func (airportOperation *AirportOperation) UpdateAirport(airport *Airport) (err error) {
	return airportOperation.save(airport, false)
}

func (airportOperation *AirportOperation) GetAirport(id uint) (airport *Airport, err error) {
	airport = &Airport{}
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	err = airportOperation.db.WithContext(ctx).Preload("City.Country").First(airport, id).Error
	err = translate(err, ErrAirportNotFound, nil)
	return
}

func (airportOperation *AirportOperation) GetAirports(filter *AirportFilter) (airports []*Airport, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	inCountry := func(db *gorm.DB) *gorm.DB {
		if filter.CountryId == 0 {
			return db
		}
		return db.Where("city_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&City{}).Select("id").Where("country_id = ?", filter.CountryId))
	}
	return listOf[Airport](airportOperation.db.WithContext(ctx), filter.Pagination, []string{"City.Country"},
		search(filter.Search, "name"), equal("city_id", filter.CityId), inCountry)
}

// DeleteAirport removes the airport and every route starting or ending there, with their flights and tickets
func (airportOperation *AirportOperation) DeleteAirport(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airportOperation.queryTimeout)
	defer cancel()
	return airportOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Airport{}, id); err != nil {
			return err
		} else if !found {
			return ErrAirportNotFound
		}
		return deleteAirports(tx, []uint{id})
	})
}
