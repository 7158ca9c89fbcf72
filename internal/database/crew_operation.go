// Package database
package database

import (
	"context"
	"strings"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type CrewOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewCrewOperation(db *gorm.DB, queryTimeout time.Duration) *CrewOperation {
	return &CrewOperation{db: db, queryTimeout: queryTimeout}
}

func (crewOperation *CrewOperation) NewCrew(firstName, lastName string, position CrewPosition) (crew *Crew) {
	return &Crew{FirstName: strings.TrimSpace(firstName), LastName: strings.TrimSpace(lastName), Position: position}
}

func checkCrew(crew *Crew) error {
	if err := requireName("first_name", crew.FirstName); err != nil {
		return err
	}
	if err := requireName("last_name", crew.LastName); err != nil {
		return err
	}
	if !crew.Position.Valid() {
		return &FieldError{Field: "position", Reason: "is not a valid crew position"}
	}
	return nil
}

func (crewOperation *CrewOperation) AddCrew(crew *Crew) (err error) {
	if err := checkCrew(crew); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	return crewOperation.db.WithContext(ctx).Create(crew).Error
}

func (crewOperation *CrewOperation) UpdateCrew(crew *Crew) (err error) {
	if err := checkCrew(crew); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	result := crewOperation.db.WithContext(ctx).Model(crew).Select("first_name", "last_name", "position", "updated_at").Updates(crew)
	return deleted(result, ErrCrewNotFound)
}

func (crewOperation *CrewOperation) GetCrew(id uint) (crew *Crew, err error) {
	crew = &Crew{}
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	err = translate(crewOperation.db.WithContext(ctx).First(crew, id).Error, ErrCrewNotFound, nil)
	return
}

func (crewOperation *CrewOperation) GetCrews(filter *CrewFilter) (crews []*Crew, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	byPosition := func(db *gorm.DB) *gorm.DB {
		if filter.Position == "" {
			return db
		}
		return db.Where("position = ?", filter.Position)
	}
	return listOf[Crew](crewOperation.db.WithContext(ctx), filter.Pagination, nil,
		search(filter.Search, "first_name", "last_name"), byPosition)
}

// DeleteCrew removes the member and their flight assignments; the flights themselves stay.
// A flight may be left without a main pilot or a stewardess afterwards, the next reschedule of
// it has to name a complete crew again.
func (crewOperation *CrewOperation) DeleteCrew(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), crewOperation.queryTimeout)
	defer cancel()
	return crewOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Crew{}, id); err != nil {
			return err
		} else if !found {
			return ErrCrewNotFound
		}
		return deleteCrews(tx, []uint{id})
	})
}
