// Package database
package database

import (
	"context"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type RouteOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewRouteOperation(db *gorm.DB, queryTimeout time.Duration) *RouteOperation {
	return &RouteOperation{db: db, queryTimeout: queryTimeout}
}

func (routeOperation *RouteOperation) NewRoute(sourceId, destinationId uint, distance int) (route *Route) {
	return &Route{SourceId: sourceId, DestinationId: destinationId, Distance: distance}
}

func (routeOperation *RouteOperation) save(route *Route, create bool) error {
	if err := CheckRoute(route); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), routeOperation.queryTimeout)
	defer cancel()
	return routeOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !create {
			if found, err := exists(tx, &Route{}, route.ID); err != nil {
				return err
			} else if !found {
				return ErrRouteNotFound
			}
		}
		if err := requireReference(tx, &Airport{}, "source", route.SourceId); err != nil {
			return err
		}
		if err := requireReference(tx, &Airport{}, "destination", route.DestinationId); err != nil {
			return err
		}
		columns := []string{"source_id", "destination_id"}
		if err := checkUnique(tx, &Route{}, "route", route.ID, columns, route.SourceId, route.DestinationId); err != nil {
			return err
		}
		route.Source, route.Destination = nil, nil
		var err error
		if create {
			err = tx.Create(route).Error
		} else {
			err = tx.Model(route).Select("source_id", "destination_id", "distance").Updates(route).Error
		}
		return translate(err, ErrRouteNotFound, duplicateOf("route", columns...))
	})
}

func (routeOperation *RouteOperation) AddRoute(route *Route) (err error) {
	return routeOperation.save(route, true)
}

func (routeOperation *RouteOperation) UpdateRoute(route *Route) (err error) {
	return routeOperation.save(route, false)
}

func (routeOperation *RouteOperation) GetRoute(id uint) (route *Route, err error) {
	route = &Route{}
	ctx, cancel := context.WithTimeout(context.Background(), routeOperation.queryTimeout)
	defer cancel()
	err = routeOperation.db.WithContext(ctx).
		Preload("Source.City.Country").
		Preload("Destination.City.Country").
		First(route, id).Error
	err = translate(err, ErrRouteNotFound, nil)
	return
}

func (routeOperation *RouteOperation) GetRoutes(filter *RouteFilter) (routes []*Route, total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), routeOperation.queryTimeout)
	defer cancel()
	byAirportName := func(db *gorm.DB) *gorm.DB {
		if filter.Search == "" {
			return db
		}
		airports := db.Session(&gorm.Session{NewDB: true}).Model(&Airport{}).Select("id").
			Scopes(search(filter.Search, "name"))
		return db.Where("source_id IN (?) OR destination_id IN (?)", airports, airports)
	}
	return listOf[Route](routeOperation.db.WithContext(ctx), filter.Pagination, []string{"Source", "Destination"},
		byAirportName, equal("source_id", filter.SourceId), equal("destination_id", filter.DestinationId))
}

// DeleteRoute removes the route together with its flights and their tickets
func (routeOperation *RouteOperation) DeleteRoute(id uint) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), routeOperation.queryTimeout)
	defer cancel()
	return routeOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found, err := exists(tx, &Route{}, id); err != nil {
			return err
		} else if !found {
			return ErrRouteNotFound
		}
		return deleteRoutes(tx, []uint{id})
	})
}
