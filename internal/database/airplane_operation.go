// Package database
package database

import (
	"context"
	"strings"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AirplaneTypeOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirplaneTypeOperation(db *gorm.DB, queryTimeout time.Duration) *AirplaneTypeOperation {
	return &AirplaneTypeOperation{db: db, queryTimeout: queryTimeout}
}

func (typeOperation *AirplaneTypeOperation) NewAirplaneType(name string) (airplaneType *AirplaneType) {
	return &AirplaneType{Name: strings.TrimSpace(name)}
}

func (typeOperation *AirplaneTypeOperation) save(airplaneType *AirplaneType, create bool) error {
	if err := requireName("name", airplaneType.Name); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), typeOperation.queryTimeout)
	defer cancel()
	return typeOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !create {
			if found, err := exists(tx, &AirplaneType{}, airplaneType.ID); err != nil {
				return err
			} else if !found {
				return ErrAirplaneTypeNotFound
			}
		}
		if err := checkUnique(tx, &AirplaneType{}, "airplane type", airplaneType.ID, []string{"name"}, airplaneType.Name); err != nil {
			return err
		}
		var err error
		if create {
			err = tx.Create(airplaneType).Error
		} else {
			err = tx.Model(airplaneType).Select("name").Updates(airplaneType).Error
		}
		return translate(err, ErrAirplaneTypeNotFound, duplicateOf("airplane type", "name"))
	})
}

func (typeOperation *AirplaneTypeOperation) AddAirplaneType(airplaneType *AirplaneType) (err error) {
	return typeOperation.save(airplaneType, true)
}

func (typeOperation *AirplaneTypeOperation) UpdateAirplaneType(airplaneType *AirplaneType) (err error) {
	return typeOperation.save(airplaneType, false)
}

func (typeOperation *AirplaneTypeOperation) GetAirplaneType(id uint) (airplaneType *AirplaneType, err error) {
	airplaneType = &AirplaneType{}
	ctx, cancel := context.WithTimeout(context.Background(), typeOperation.queryTimeout)
	defer cancel()
	err = translate(typeOperation.db.WithContext(ctx).First(airplaneType, id).Error, ErrAirplaneTypeNotFound, nil)
	return
}

func (typeOperation *AirplaneTypeOperation) GetAirplaneTypes(filter *AirplaneTypeFilter) (airplaneTypes []*AirplaneType, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), typeOperation.queryTimeout)
	defer cancel()
	return listOf[AirplaneType](typeOperation.db.WithContext(ctx), filter.Pagination, nil, search(filter.Search, "name"))
}

// DeleteAirplaneType removes the type, every airplane of it and the flights and tickets of those airplanes
func (typeOperation *AirplaneTypeOperation) DeleteAirplaneType(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), typeOperation.queryTimeout)
	defer cancel()
	return typeOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &AirplaneType{}, id); err != nil {
			return err
		} else if !found {
			return ErrAirplaneTypeNotFound
		}
		return deleteAirplaneTypes(tx, []uint{id})
	})
}

type AirplaneOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAirplaneOperation(db *gorm.DB, queryTimeout time.Duration) *AirplaneOperation {
	return &AirplaneOperation{db: db, queryTimeout: queryTimeout}
}

func (airplaneOperation *AirplaneOperation) NewAirplane(name string, rows, seatsInRow int, airplaneTypeId uint) (airplane *Airplane) {
	return &Airplane{Name: strings.TrimSpace(name), Rows: rows, SeatsInRow: seatsInRow, AirplaneTypeId: airplaneTypeId}
}

func checkAirplane(airplane *Airplane) error {
	if err := requireName("name", airplane.Name); err != nil {
		return err
	}
	if airplane.Rows <= 0 {
		return &FieldError{Field: "rows", Reason: "must be a positive number"}
	}
	if airplane.SeatsInRow <= 0 {
		return &FieldError{Field: "seats_in_row", Reason: "must be a positive number"}
	}
	return nil
}

func (airplaneOperation *AirplaneOperation) save(airplane *Airplane, create bool) error {
	if err := checkAirplane(airplane); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	return airplaneOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !create {
			if found, err := exists(tx, &Airplane{}, airplane.ID); err != nil {
				return err
			} else if !found {
				return ErrAirplaneNotFound
			}
		}
		if err := requireReference(tx, &AirplaneType{}, "airplane_type", airplane.AirplaneTypeId); err != nil {
			return err
		}
		columns := []string{"name", "airplane_type_id"}
		if err := checkUnique(tx, &Airplane{}, "airplane", airplane.ID, columns, airplane.Name, airplane.AirplaneTypeId); err != nil {
			return err
		}
		airplane.AirplaneType = nil
		var err error
		if create {
			err = tx.Create(airplane).Error
		} else {
			err = tx.Model(airplane).Select("name", "rows", "seats_in_row", "airplane_type_id").Updates(airplane).Error
		}
		return translate(err, ErrAirplaneNotFound, duplicateOf("airplane", columns...))
	})
}

func (airplaneOperation *AirplaneOperation) AddAirplane(airplane *Airplane) (err error) {
	return airplaneOperation.save(airplane, true)
}

func (airplaneOperation *AirplaneOperation) UpdateAirplane(airplane *Airplane) (err error) {
	return airplaneOperation.save(airplane, false)
}

func (airplaneOperation *AirplaneOperation) UpdateAirplaneImage(airplane *Airplane, imagePath string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	result := airplaneOperation.db.WithContext(ctx).Model(airplane).Update("image_path", imagePath)
	if err = deleted(result, ErrAirplaneNotFound); err == nil {
		airplane.ImagePath = imagePath
	}
	return
}

func (airplaneOperation *AirplaneOperation) GetAirplane(id uint) (airplane *Airplane, err error) {
	airplane = &Airplane{}
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	err = airplaneOperation.db.WithContext(ctx).Preload("AirplaneType").First(airplane, id).Error
	err = translate(err, ErrAirplaneNotFound, nil)
	return
}

func (airplaneOperation *AirplaneOperation) GetAirplanes(filter *AirplaneFilter) (airplanes []*Airplane, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	return listOf[Airplane](airplaneOperation.db.WithContext(ctx), filter.Pagination, []string{"AirplaneType"},
		search(filter.Search, "name"), equal("airplane_type_id", filter.AirplaneTypeId))
}

// DeleteAirplane removes the airplane with every flight it operates and their tickets
func (airplaneOperation *AirplaneOperation) DeleteAirplane(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), airplaneOperation.queryTimeout)
	defer cancel()
	return airplaneOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Airplane{}, id); err != nil {
			return err
		} else if !found {
			return ErrAirplaneNotFound
		}
		return deleteAirplanes(tx, []uint{id})
	})
}
