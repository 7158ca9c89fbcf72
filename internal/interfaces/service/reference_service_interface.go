// Package service
package service

type ResponseDelete bool

type RequestRetrieve struct {
	JwtHeader
	Id uint `param:"id" json:"-"`
}

type RequestDelete struct {
	JwtHeader
	ClientInfo
	Id uint `param:"id" json:"-"`
}

// CountryServiceInterface 国家接口, 读取需要登录, 写入需要管理员权限
type CountryServiceInterface interface {
	GetCountries(req *RequestGetCountries) *ApiResponse[PageResponse[CountryModel]]
	GetCountry(req *RequestRetrieve) *ApiResponse[CountryModel]
	AddCountry(req *RequestSaveCountry) *ApiResponse[CountryModel]
	// EditCountry PUT 需要全部字段, PATCH(Partial) 只修改提供的字段
	EditCountry(req *RequestSaveCountry) *ApiResponse[CountryModel]
	// DeleteCountry 级联删除城市、机场、航线、航班与机票, 不可恢复
	DeleteCountry(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetCountries struct {
	JwtHeader
	PageRequest
	Search string `query:"search"`
}

type RequestSaveCountry struct {
	JwtHeader
	ClientInfo
	Id      uint    `param:"id" json:"-"`
	Partial bool    `json:"-"`
	Name    *string `json:"name"`
	Code    *string `json:"code"`
}

// CityServiceInterface 城市接口
type CityServiceInterface interface {
	GetCities(req *RequestGetCities) *ApiResponse[PageResponse[CityListItem]]
	GetCity(req *RequestRetrieve) *ApiResponse[CityDetail]
	AddCity(req *RequestSaveCity) *ApiResponse[CityDetail]
	EditCity(req *RequestSaveCity) *ApiResponse[CityDetail]
	// DeleteCity 级联删除机场、航线、航班与机票
	DeleteCity(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetCities struct {
	JwtHeader
	PageRequest
	Search  string `query:"search"`
	Country uint   `query:"country"`
}

type RequestSaveCity struct {
	JwtHeader
	ClientInfo
	Id      uint    `param:"id" json:"-"`
	Partial bool    `json:"-"`
	Name    *string `json:"name"`
	Country *uint   `json:"country"`
}

// AirportServiceInterface 机场接口
type AirportServiceInterface interface {
	GetAirports(req *RequestGetAirports) *ApiResponse[PageResponse[AirportListItem]]
	GetAirport(req *RequestRetrieve) *ApiResponse[AirportDetail]
	AddAirport(req *RequestSaveAirport) *ApiResponse[AirportDetail]
	EditAirport(req *RequestSaveAirport) *ApiResponse[AirportDetail]
	// DeleteAirport 级联删除以该机场为起点或终点的航线及其航班
	DeleteAirport(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetAirports struct {
	JwtHeader
	PageRequest
	Search  string `query:"search"`
	City    uint   `query:"city"`
	Country uint   `query:"country"`
}

type RequestSaveAirport struct {
	JwtHeader
	ClientInfo
	Id      uint    `param:"id" json:"-"`
	Partial bool    `json:"-"`
	Name    *string `json:"name"`
	City    *uint   `json:"city"`
}

// AirplaneTypeServiceInterface 机型接口, 仅管理员可用
type AirplaneTypeServiceInterface interface {
	GetAirplaneTypes(req *RequestGetAirplaneTypes) *ApiResponse[PageResponse[AirplaneTypeModel]]
	GetAirplaneType(req *RequestRetrieve) *ApiResponse[AirplaneTypeModel]
	AddAirplaneType(req *RequestSaveAirplaneType) *ApiResponse[AirplaneTypeModel]
	EditAirplaneType(req *RequestSaveAirplaneType) *ApiResponse[AirplaneTypeModel]
	// DeleteAirplaneType 级联删除该型号的飞机及其航班与机票
	DeleteAirplaneType(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetAirplaneTypes struct {
	JwtHeader
	PageRequest
	Search string `query:"search"`
}

type RequestSaveAirplaneType struct {
	JwtHeader
	ClientInfo
	Id      uint    `param:"id" json:"-"`
	Partial bool    `json:"-"`
	Name    *string `json:"name"`
}

// AirplaneServiceInterface 飞机接口, 仅管理员可用
type AirplaneServiceInterface interface {
	GetAirplanes(req *RequestGetAirplanes) *ApiResponse[PageResponse[AirplaneListItem]]
	GetAirplane(req *RequestRetrieve) *ApiResponse[AirplaneDetail]
	AddAirplane(req *RequestSaveAirplane) *ApiResponse[AirplaneDetail]
	EditAirplane(req *RequestSaveAirplane) *ApiResponse[AirplaneDetail]
	// UploadImage 校验扩展名、大小与文件内容后保存图片, 并替换飞机原有图片
	UploadImage(req *RequestUploadAirplaneImage) *ApiResponse[AirplaneDetail]
	// DeleteAirplane 级联删除该飞机执飞的航班与机票
	DeleteAirplane(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetAirplanes struct {
	JwtHeader
	PageRequest
	Search       string `query:"search"`
	AirplaneType uint   `query:"airplane_type"`
}

type RequestSaveAirplane struct {
	JwtHeader
	ClientInfo
	Id           uint    `param:"id" json:"-"`
	Partial      bool    `json:"-"`
	Name         *string `json:"name"`
	Rows         *int    `json:"rows"`
	SeatsInRow   *int    `json:"seats_in_row"`
	AirplaneType *uint   `json:"airplane_type"`
}

// CrewServiceInterface 机组成员接口, 仅管理员可用
type CrewServiceInterface interface {
	GetCrews(req *RequestGetCrews) *ApiResponse[PageResponse[CrewModel]]
	GetCrew(req *RequestRetrieve) *ApiResponse[CrewModel]
	AddCrew(req *RequestSaveCrew) *ApiResponse[CrewModel]
	EditCrew(req *RequestSaveCrew) *ApiResponse[CrewModel]
	// DeleteCrew 删除机组成员及其航班分配记录, 航班本身保留
	DeleteCrew(req *RequestDelete) *ApiResponse[ResponseDelete]
}

type RequestGetCrews struct {
	JwtHeader
	PageRequest
	Search   string `query:"search"`
	Position string `query:"position"`
}

type RequestSaveCrew struct {
	JwtHeader
	ClientInfo
	Id        uint    `param:"id" json:"-"`
	Partial   bool    `json:"-"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Position  *string `json:"position"`
}
