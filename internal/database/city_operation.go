// Package database
package database

import (
	"context"
	"strings"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type CityOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewCityOperation(db *gorm.DB, queryTimeout time.Duration) *CityOperation {
	return &CityOperation{db: db, queryTimeout: queryTimeout}
}

func (cityOperation *CityOperation) NewCity(name string, countryId uint) (city *City) {
	return &City{Name: strings.TrimSpace(name), CountryId: countryId}
}

func (cityOperation *CityOperation) save(city *City, create bool) error {
	if err := requireName("name", city.Name); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cityOperation.queryTimeout)
	defer cancel()
	return cityOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !create {
			if found, err := exists(tx, &City{}, city.ID); err != nil {
				return err
			} else if !found {
				return ErrCityNotFound
			}
		}
		if err := requireReference(tx, &Country{}, "country", city.CountryId); err != nil {
			return err
		}
		if err := checkUnique(tx, &City{}, "city", city.ID, []string{"name", "country_id"}, city.Name, city.CountryId); err != nil {
			return err
		}
		city.Country = nil
		if create {
			err := tx.Create(city).Error
			return translate(err, ErrCityNotFound, duplicateOf("city", "name", "country_id"))
		}
		err := tx.Model(city).Select("name", "country_id").Updates(city).Error
		return translate(err, ErrCityNotFound, duplicateOf("city", "name", "country_id"))
	})
}

func (cityOperation *CityOperation) AddCity(city *City) (err error) {
	return cityOperation.save(city, true)
}

func (cityOperation *CityOperation) UpdateCity(city *City) (err error) {
	return cityOperation.save(city, false)
}

func (cityOperation *CityOperation) GetCity(id uint) (city *City, err error) {
	city = &City{}
	ctx, cancel := context.WithTimeout(context.Background(), cityOperation.queryTimeout)
	defer cancel()
	err = translate(cityOperation.db.WithContext(ctx).Preload("Country").First(city, id).Error, ErrCityNotFound, nil)
	return
}

func (cityOperation *CityOperation) GetCities(filter *CityFilter) (cities []*City, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), cityOperation.queryTimeout)
	defer cancel()
	return listOf[City](cityOperation.db.WithContext(ctx), filter.Pagination, []string{"Country"},
		search(filter.Search, "name"), equal("country_id", filter.CountryId))
}

// DeleteCity removes the city, its airports, their routes, flights and tickets
func (cityOperation *CityOperation) DeleteCity(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), cityOperation.queryTimeout)
	defer cancel()
	return cityOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &City{}, id); err != nil {
			return err
		} else if !found {
			return ErrCityNotFound
		}
		return deleteCities(tx, []uint{id})
	})
}
