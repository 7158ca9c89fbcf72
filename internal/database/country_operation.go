// Package database
package database

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type CountryOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewCountryOperation(db *gorm.DB, queryTimeout time.Duration) *CountryOperation {
	return &CountryOperation{db: db, queryTimeout: queryTimeout}
}

func (countryOperation *CountryOperation) NewCountry(name, code string) (country *Country) {
	return &Country{Name: strings.TrimSpace(name), Code: strings.TrimSpace(code)}
}

func checkCountry(country *Country) error {
	if err := requireName("name", country.Name); err != nil {
		return err
	}
	if utf8.RuneCountInString(country.Code) != 3 {
		return &FieldError{Field: "code", Reason: "must be exactly 3 characters"}
	}
	return nil
}

func (countryOperation *CountryOperation) checkUnique(tx *gorm.DB, country *Country) error {
	if err := checkUnique(tx, &Country{}, "country", country.ID, []string{"name"}, country.Name); err != nil {
		return err
	}
	return checkUnique(tx, &Country{}, "country", country.ID, []string{"code"}, country.Code)
}

func (countryOperation *CountryOperation) AddCountry(country *Country) (err error) {
	if err := checkCountry(country); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), countryOperation.queryTimeout)
	defer cancel()
	return countryOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := countryOperation.checkUnique(tx, country); err != nil {
			return err
		}
		return translate(tx.Create(country).Error, ErrCountryNotFound, duplicateOf("country", "name"))
	})
}

func (countryOperation *CountryOperation) GetCountry(id uint) (country *Country, err error) {
	country = &Country{}
	ctx, cancel := context.WithTimeout(context.Background(), countryOperation.queryTimeout)
	defer cancel()
	err = translate(countryOperation.db.WithContext(ctx).First(country, id).Error, ErrCountryNotFound, nil)
	return
}

func (countryOperation *CountryOperation) GetCountries(filter *CountryFilter) (countries []*Country, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), countryOperation.queryTimeout)
	defer cancel()
	return listOf[Country](countryOperation.db.WithContext(ctx), filter.Pagination, nil,
		search(filter.Search, "name", "code"))
}

func (countryOperation *CountryOperation) UpdateCountry(country *Country) (err error) {
	if err := checkCountry(country); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), countryOperation.queryTimeout)
	defer cancel()
	return countryOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Country{}, country.ID); err != nil {
			return err
		} else if !found {
			return ErrCountryNotFound
		}
		if err := countryOperation.checkUnique(tx, country); err != nil {
			return err
		}
		return translate(tx.Model(country).Select("name", "code").Updates(country).Error,
			ErrCountryNotFound, duplicateOf("country", "name"))
	})
}

// DeleteCountry removes the country together with its cities, their airports, every route
// touching those airports, the flights on those routes and their tickets.
func (countryOperation *CountryOperation) DeleteCountry(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), countryOperation.queryTimeout)
	defer cancel()
	return countryOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Country{}, id); err != nil {
			return err
		} else if !found {
			return ErrCountryNotFound
		}
		return deleteCountries(tx, []uint{id})
	})
}
