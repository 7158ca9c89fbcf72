// Package database
package database

import (
	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

// Deletion walks the dependency tree explicitly so it behaves the same whether or not the
// store enforces foreign keys. Every function here must run inside a transaction.

const flightCrewTable = "flight_crew"

func childIds(tx *gorm.DB, model interface{}, query string, args ...interface{}) (ids []uint, err error) {
	err = tx.Model(model).Where(query, args...).Pluck("id", &ids).Error
	return
}

func deleteFlights(tx *gorm.DB, flightIds []uint) error {
	if len(flightIds) == 0 {
		return nil
	}
	if err := tx.Where("flight_id IN ?", flightIds).Delete(&Ticket{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM "+flightCrewTable+" WHERE flight_id IN ?", flightIds).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", flightIds).Delete(&Flight{}).Error
}

func deleteRoutes(tx *gorm.DB, routeIds []uint) error {
	if len(routeIds) == 0 {
		return nil
	}
	flightIds, err := childIds(tx, &Flight{}, "route_id IN ?", routeIds)
	if err != nil {
		return err
	}
	if err := deleteFlights(tx, flightIds); err != nil {
		return err
	}
	return tx.Where("id IN ?", routeIds).Delete(&Route{}).Error
}

func deleteAirports(tx *gorm.DB, airportIds []uint) error {
	if len(airportIds) == 0 {
		return nil
	}
	routeIds, err := childIds(tx, &Route{}, "source_id IN ? OR destination_id IN ?", airportIds, airportIds)
	if err != nil {
		return err
	}
	if err := deleteRoutes(tx, routeIds); err != nil {
		return err
	}
	return tx.Where("id IN ?", airportIds).Delete(&Airport{}).Error
}

func deleteCities(tx *gorm.DB, cityIds []uint) error {
	if len(cityIds) == 0 {
		return nil
	}
	airportIds, err := childIds(tx, &Airport{}, "city_id IN ?", cityIds)
	if err != nil {
		return err
	}
	if err := deleteAirports(tx, airportIds); err != nil {
		return err
	}
	return tx.Where("id IN ?", cityIds).Delete(&City{}).Error
}

func deleteCountries(tx *gorm.DB, countryIds []uint) error {
	cityIds, err := childIds(tx, &City{}, "country_id IN ?", countryIds)
	if err != nil {
		return err
	}
	if err := deleteCities(tx, cityIds); err != nil {
		return err
	}
	return tx.Where("id IN ?", countryIds).Delete(&Country{}).Error
}

func deleteAirplanes(tx *gorm.DB, airplaneIds []uint) error {
	if len(airplaneIds) == 0 {
		return nil
	}
	flightIds, err := childIds(tx, &Flight{}, "airplane_id IN ?", airplaneIds)
	if err != nil {
		return err
	}
	if err := deleteFlights(tx, flightIds); err != nil {
		return err
	}
	return tx.Where("id IN ?", airplaneIds).Delete(&Airplane{}).Error
}

func deleteAirplaneTypes(tx *gorm.DB, typeIds []uint) error {
	airplaneIds, err := childIds(tx, &Airplane{}, "airplane_type_id IN ?", typeIds)
	if err != nil {
		return err
	}
	if err := deleteAirplanes(tx, airplaneIds); err != nil {
		return err
	}
	return tx.Where("id IN ?", typeIds).Delete(&AirplaneType{}).Error
}

// deleteCrews removes crew members and their assignments; the flights stay
func deleteCrews(tx *gorm.DB, crewIds []uint) error {
	if err := tx.Exec("DELETE FROM "+flightCrewTable+" WHERE crew_id IN ?", crewIds).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", crewIds).Delete(&Crew{}).Error
}

func deleteOrders(tx *gorm.DB, orderIds []uint) error {
	if err := tx.Where("order_id IN ?", orderIds).Delete(&Ticket{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", orderIds).Delete(&Order{}).Error
}
