// Package operation
package operation

type DatabaseOperations struct {
	userOperation         UserOperationInterface
	countryOperation      CountryOperationInterface
	cityOperation         CityOperationInterface
	airportOperation      AirportOperationInterface
	routeOperation        RouteOperationInterface
	airplaneTypeOperation AirplaneTypeOperationInterface
	airplaneOperation     AirplaneOperationInterface
	crewOperation         CrewOperationInterface
	flightOperation       FlightOperationInterface
	orderOperation        OrderOperationInterface
	auditLogOperation     AuditLogOperationInterface
}

func NewDatabaseOperations(
	userOperation UserOperationInterface,
	countryOperation CountryOperationInterface,
	cityOperation CityOperationInterface,
	airportOperation AirportOperationInterface,
	routeOperation RouteOperationInterface,
	airplaneTypeOperation AirplaneTypeOperationInterface,
	airplaneOperation AirplaneOperationInterface,
	crewOperation CrewOperationInterface,
	flightOperation FlightOperationInterface,
	orderOperation OrderOperationInterface,
	auditLogOperation AuditLogOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		userOperation:         userOperation,
		countryOperation:      countryOperation,
		cityOperation:         cityOperation,
		airportOperation:      airportOperation,
		routeOperation:        routeOperation,
		airplaneTypeOperation: airplaneTypeOperation,
		airplaneOperation:     airplaneOperation,
		crewOperation:         crewOperation,
		flightOperation:       flightOperation,
		orderOperation:        orderOperation,
		auditLogOperation:     auditLogOperation,
	}
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface { return db.userOperation }

func (db *DatabaseOperations) CountryOperation() CountryOperationInterface {
	return db.countryOperation
}

func (db *DatabaseOperations) CityOperation() CityOperationInterface { return db.cityOperation }

func (db *DatabaseOperations) AirportOperation() AirportOperationInterface {
	return db.airportOperation
}

func (db *DatabaseOperations) RouteOperation() RouteOperationInterface { return db.routeOperation }

func (db *DatabaseOperations) AirplaneTypeOperation() AirplaneTypeOperationInterface {
	return db.airplaneTypeOperation
}

func (db *DatabaseOperations) AirplaneOperation() AirplaneOperationInterface {
	return db.airplaneOperation
}

func (db *DatabaseOperations) CrewOperation() CrewOperationInterface { return db.crewOperation }

func (db *DatabaseOperations) FlightOperation() FlightOperationInterface {
	return db.flightOperation
}

func (db *DatabaseOperations) OrderOperation() OrderOperationInterface { return db.orderOperation }

func (db *DatabaseOperations) AuditLogOperation() AuditLogOperationInterface {
	return db.auditLogOperation
}
