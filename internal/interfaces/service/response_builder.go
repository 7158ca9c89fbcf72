// Package service
package service

import (
	"fmt"
	"time"

	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
)

// Every operation picks its builder explicitly; list endpoints return the flat *ListItem
// shapes and retrieve endpoints the nested *Detail shapes.

type CountryModel struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func BuildCountry(country *operation.Country) *CountryModel {
	if country == nil {
		return nil
	}
	return &CountryModel{Id: country.ID, Name: country.Name, Code: country.Code}
}

type CityListItem struct {
	Id      uint   `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type CityDetail struct {
	Id      uint          `json:"id"`
	Name    string        `json:"name"`
	Country *CountryModel `json:"country"`
}

func BuildCityListItem(city *operation.City) *CityListItem {
	item := &CityListItem{Id: city.ID, Name: city.Name}
	if city.Country != nil {
		item.Country = city.Country.Name
	}
	return item
}

func BuildCityDetail(city *operation.City) *CityDetail {
	if city == nil {
		return nil
	}
	return &CityDetail{Id: city.ID, Name: city.Name, Country: BuildCountry(city.Country)}
}

type AirportListItem struct {
	Id      uint   `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type AirportDetail struct {
	Id   uint        `json:"id"`
	Name string      `json:"name"`
	City *CityDetail `json:"city"`
}

func BuildAirportListItem(airport *operation.Airport) *AirportListItem {
	item := &AirportListItem{Id: airport.ID, Name: airport.Name}
	if airport.City != nil {
		item.City = airport.City.Name
		if airport.City.Country != nil {
			item.Country = airport.City.Country.Name
		}
	}
	return item
}

func BuildAirportDetail(airport *operation.Airport) *AirportDetail {
	if airport == nil {
		return nil
	}
	return &AirportDetail{Id: airport.ID, Name: airport.Name, City: BuildCityDetail(airport.City)}
}

type RouteListItem struct {
	Id          uint   `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type RouteDetail struct {
	Id          uint           `json:"id"`
	Source      *AirportDetail `json:"source"`
	Destination *AirportDetail `json:"destination"`
	Distance    int            `json:"distance"`
}

func airportName(airport *operation.Airport) string {
	if airport == nil {
		return ""
	}
	return airport.Name
}

// RouteLabel renders a route as "source -> destination"
func RouteLabel(route *operation.Route) string {
	if route == nil {
		return ""
	}
	return fmt.Sprintf("%s -> %s", airportName(route.Source), airportName(route.Destination))
}

func BuildRouteListItem(route *operation.Route) *RouteListItem {
	if route == nil {
		return nil
	}
	return &RouteListItem{
		Id:          route.ID,
		Source:      airportName(route.Source),
		Destination: airportName(route.Destination),
		Distance:    route.Distance,
	}
}

func BuildRouteDetail(route *operation.Route) *RouteDetail {
	return &RouteDetail{
		Id:          route.ID,
		Source:      BuildAirportDetail(route.Source),
		Destination: BuildAirportDetail(route.Destination),
		Distance:    route.Distance,
	}
}

type AirplaneTypeModel struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}

func BuildAirplaneType(airplaneType *operation.AirplaneType) *AirplaneTypeModel {
	if airplaneType == nil {
		return nil
	}
	return &AirplaneTypeModel{Id: airplaneType.ID, Name: airplaneType.Name}
}

type AirplaneListItem struct {
	Id           uint   `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	Capacity     int    `json:"capacity"`
	IsLarge      bool   `json:"is_large"`
	AirplaneType string `json:"airplane_type"`
	Image        string `json:"image,omitempty"`
}

type AirplaneDetail struct {
	Id           uint               `json:"id"`
	Name         string             `json:"name"`
	Rows         int                `json:"rows"`
	SeatsInRow   int                `json:"seats_in_row"`
	Capacity     int                `json:"capacity"`
	IsLarge      bool               `json:"is_large"`
	AirplaneType *AirplaneTypeModel `json:"airplane_type"`
	Image        string             `json:"image,omitempty"`
}

func BuildAirplaneListItem(airplane *operation.Airplane) *AirplaneListItem {
	if airplane == nil {
		return nil
	}
	item := &AirplaneListItem{
		Id:         airplane.ID,
		Name:       airplane.Name,
		Rows:       airplane.Rows,
		SeatsInRow: airplane.SeatsInRow,
		Capacity:   airplane.Capacity(),
		IsLarge:    airplane.IsLarge(),
		Image:      airplane.ImagePath,
	}
	if airplane.AirplaneType != nil {
		item.AirplaneType = airplane.AirplaneType.Name
	}
	return item
}

func BuildAirplaneDetail(airplane *operation.Airplane) *AirplaneDetail {
	return &AirplaneDetail{
		Id:           airplane.ID,
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRow:   airplane.SeatsInRow,
		Capacity:     airplane.Capacity(),
		IsLarge:      airplane.IsLarge(),
		AirplaneType: BuildAirplaneType(airplane.AirplaneType),
		Image:        airplane.ImagePath,
	}
}

type CrewModel struct {
	Id            uint   `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	FullName      string `json:"full_name"`
	Position      string `json:"position"`
	PositionLabel string `json:"position_label"`
}

func BuildCrew(crew *operation.Crew) *CrewModel {
	return &CrewModel{
		Id:            crew.ID,
		FirstName:     crew.FirstName,
		LastName:      crew.LastName,
		FullName:      crew.FullName(),
		Position:      string(crew.Position),
		PositionLabel: crew.Position.Label(),
	}
}

type FlightListItem struct {
	Id               uint      `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Duration         int       `json:"duration"`
	IsActive         bool      `json:"is_active"`
	TicketsAvailable int       `json:"tickets_available"`
}

type SeatModel struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetail struct {
	Id            uint              `json:"id"`
	Route         *RouteListItem    `json:"route"`
	Airplane      *AirplaneListItem `json:"airplane"`
	DepartureTime time.Time         `json:"departure_time"`
	ArrivalTime   time.Time         `json:"arrival_time"`
	Duration      int               `json:"duration"`
	IsActive      bool              `json:"is_active"`
	Crew          []string          `json:"crew"`
	TakenPlaces   []*SeatModel      `json:"taken_places"`
}

// durationMinutes is the flight time in whole minutes
func durationMinutes(flight *operation.Flight) int {
	return int(flight.Duration() / time.Minute)
}

// BuildFlightListItem needs the number of tickets already sold on the flight
func BuildFlightListItem(flight *operation.Flight, sold int64) *FlightListItem {
	item := &FlightListItem{
		Id:            flight.ID,
		Route:         RouteLabel(flight.Route),
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Duration:      durationMinutes(flight),
		IsActive:      flight.IsActive,
	}
	if flight.Airplane != nil {
		item.Airplane = flight.Airplane.Name
		item.TicketsAvailable = max(flight.Airplane.Capacity()-int(sold), 0)
	}
	return item
}

func BuildFlightDetail(flight *operation.Flight, taken []*operation.Ticket) *FlightDetail {
	detail := &FlightDetail{
		Id:            flight.ID,
		Route:         BuildRouteListItem(flight.Route),
		Airplane:      BuildAirplaneListItem(flight.Airplane),
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Duration:      durationMinutes(flight),
		IsActive:      flight.IsActive,
		Crew:          make([]string, 0, len(flight.Crew)),
		TakenPlaces:   make([]*SeatModel, 0, len(taken)),
	}
	for _, member := range flight.Crew {
		detail.Crew = append(detail.Crew, member.FullName())
	}
	for _, ticket := range taken {
		detail.TakenPlaces = append(detail.TakenPlaces, &SeatModel{Row: ticket.Row, Seat: ticket.Seat})
	}
	return detail
}

type TicketModel struct {
	Id        uint      `json:"id"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
	Flight    uint      `json:"flight"`
	Route     string    `json:"route,omitempty"`
	Departure time.Time `json:"departure_time"`
}

func BuildTicket(ticket *operation.Ticket) *TicketModel {
	model := &TicketModel{Id: ticket.ID, Row: ticket.Row, Seat: ticket.Seat, Flight: ticket.FlightId}
	if ticket.Flight != nil {
		model.Route = RouteLabel(ticket.Flight.Route)
		model.Departure = ticket.Flight.DepartureTime
	}
	return model
}

type OrderModel struct {
	Id        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Tickets   []*TicketModel `json:"tickets"`
	User      uint           `json:"user"`
}

func BuildOrder(order *operation.Order) *OrderModel {
	model := &OrderModel{
		Id:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   make([]*TicketModel, 0, len(order.Tickets)),
		User:      order.UserId,
	}
	for _, ticket := range order.Tickets {
		model.Tickets = append(model.Tickets, BuildTicket(ticket))
	}
	return model
}

type UserModel struct {
	Id      uint   `json:"id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
}

func BuildUser(user *operation.User) *UserModel {
	return &UserModel{Id: user.ID, Email: user.Email, IsStaff: user.IsStaff}
}
