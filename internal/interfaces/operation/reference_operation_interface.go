// Package operation
package operation

// CountryOperationInterface 国家数据操作
type CountryOperationInterface interface {
	// NewCountry 创建国家对象(不写入数据库)
	NewCountry(name, code string) (country *Country)
	// AddCountry 写入数据库, 名称或代码重复时返回 *DuplicateEntityError
	AddCountry(country *Country) (err error)
	GetCountry(id uint) (country *Country, err error)
	GetCountries(filter *CountryFilter) (countries []*Country, total int64, err error)
	UpdateCountry(country *Country) (err error)
	// DeleteCountry 删除国家, 并级联删除其城市、机场、航线、航班与机票, 不可恢复
	DeleteCountry(id uint) (err error)
}

type CityOperationInterface interface {
	NewCity(name string, countryId uint) (city *City)
	// AddCity 写入数据库, 国家不存在时返回 *InvalidReferenceError
	AddCity(city *City) (err error)
	GetCity(id uint) (city *City, err error)
	GetCities(filter *CityFilter) (cities []*City, total int64, err error)
	UpdateCity(city *City) (err error)
	// DeleteCity 级联删除机场、航线、航班与机票
	DeleteCity(id uint) (err error)
}

type AirportOperationInterface interface {
	NewAirport(name string, cityId uint) (airport *Airport)
	AddAirport(airport *Airport) (err error)
	GetAirport(id uint) (airport *Airport, err error)
	GetAirports(filter *AirportFilter) (airports []*Airport, total int64, err error)
	UpdateAirport(airport *Airport) (err error)
	// DeleteAirport 级联删除以该机场为起点或终点的航线及其航班
	DeleteAirport(id uint) (err error)
}

type AirplaneTypeOperationInterface interface {
	NewAirplaneType(name string) (airplaneType *AirplaneType)
	AddAirplaneType(airplaneType *AirplaneType) (err error)
	GetAirplaneType(id uint) (airplaneType *AirplaneType, err error)
	GetAirplaneTypes(filter *AirplaneTypeFilter) (airplaneTypes []*AirplaneType, total int64, err error)
	UpdateAirplaneType(airplaneType *AirplaneType) (err error)
	// DeleteAirplaneType 级联删除该型号的飞机及其航班与机票
	DeleteAirplaneType(id uint) (err error)
}

type AirplaneOperationInterface interface {
	NewAirplane(name string, rows, seatsInRow int, airplaneTypeId uint) (airplane *Airplane)
	AddAirplane(airplane *Airplane) (err error)
	GetAirplane(id uint) (airplane *Airplane, err error)
	GetAirplanes(filter *AirplaneFilter) (airplanes []*Airplane, total int64, err error)
	UpdateAirplane(airplane *Airplane) (err error)
	// UpdateAirplaneImage 仅更新图片路径
	UpdateAirplaneImage(airplane *Airplane, imagePath string) (err error)
	// DeleteAirplane 级联删除该飞机执飞的航班与机票
	DeleteAirplane(id uint) (err error)
}

type CrewOperationInterface interface {
	NewCrew(firstName, lastName string, position CrewPosition) (crew *Crew)
	AddCrew(crew *Crew) (err error)
	GetCrew(id uint) (crew *Crew, err error)
	GetCrews(filter *CrewFilter) (crews []*Crew, total int64, err error)
	UpdateCrew(crew *Crew) (err error)
	// DeleteCrew 删除机组成员及其航班分配记录, 航班本身保留; 航班可能因此缺少机长或乘务员, 再次修改该航班时必须提供完整机组
	DeleteCrew(id uint) (err error)
}
