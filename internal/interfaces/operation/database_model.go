package operation

import (
	"time"
)

type Country struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Code      string    `gorm:"size:3;uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type City struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex:idx_city_country;not null" json:"name"`
	CountryId uint      `gorm:"uniqueIndex:idx_city_country;index;not null" json:"country_id"`
	Country   *Country  `gorm:"foreignKey:CountryId;constraint:OnDelete:CASCADE" json:"country,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Airport struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex:idx_airport_city;not null" json:"name"`
	CityId    uint      `gorm:"uniqueIndex:idx_airport_city;index;not null" json:"city_id"`
	City      *City     `gorm:"foreignKey:CityId;constraint:OnDelete:CASCADE" json:"city,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Route struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	SourceId      uint      `gorm:"uniqueIndex:idx_route_pair;index;not null" json:"source_id"`
	Source        *Airport  `gorm:"foreignKey:SourceId;constraint:OnDelete:CASCADE" json:"source,omitempty"`
	DestinationId uint      `gorm:"uniqueIndex:idx_route_pair;index;not null" json:"destination_id"`
	Destination   *Airport  `gorm:"foreignKey:DestinationId;constraint:OnDelete:CASCADE" json:"destination,omitempty"`
	Distance      int       `gorm:"not null" json:"distance"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

type AirplaneType struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Airplane struct {
	ID             uint          `gorm:"primarykey" json:"id"`
	Name           string        `gorm:"size:64;uniqueIndex:idx_airplane_type;not null" json:"name"`
	Rows           int           `gorm:"not null" json:"rows"`
	SeatsInRow     int           `gorm:"not null" json:"seats_in_row"`
	AirplaneTypeId uint          `gorm:"uniqueIndex:idx_airplane_type;index;not null" json:"airplane_type_id"`
	AirplaneType   *AirplaneType `gorm:"foreignKey:AirplaneTypeId;constraint:OnDelete:CASCADE" json:"airplane_type,omitempty"`
	ImagePath      string        `gorm:"size:255;not null;default:''" json:"image,omitempty"`
	CreatedAt      time.Time     `json:"-"`
	UpdatedAt      time.Time     `json:"-"`
}

// Capacity is rows times seats per row
func (a *Airplane) Capacity() int { return a.Rows * a.SeatsInRow }

func (a *Airplane) IsLarge() bool { return a.Capacity() > LargeAirplaneCapacity }

type Crew struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	FirstName string       `gorm:"size:64;not null" json:"first_name"`
	LastName  string       `gorm:"size:64;not null" json:"last_name"`
	Position  CrewPosition `gorm:"size:2;index;not null" json:"position"`
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"-"`
}

func (c *Crew) FullName() string { return c.FirstName + " " + c.LastName }

type Flight struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	RouteId       uint      `gorm:"index;not null" json:"route_id"`
	Route         *Route    `gorm:"foreignKey:RouteId;constraint:OnDelete:CASCADE" json:"route,omitempty"`
	AirplaneId    uint      `gorm:"index;not null" json:"airplane_id"`
	Airplane      *Airplane `gorm:"foreignKey:AirplaneId;constraint:OnDelete:CASCADE" json:"airplane,omitempty"`
	DepartureTime time.Time `gorm:"index;not null" json:"departure_time"`
	ArrivalTime   time.Time `gorm:"index;not null" json:"arrival_time"`
	Crew          []*Crew   `gorm:"many2many:flight_crew;constraint:OnDelete:CASCADE" json:"crew,omitempty"`
	IsActive      bool      `gorm:"index;not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (f *Flight) Window() TimeWindow {
	return TimeWindow{Departure: f.DepartureTime, Arrival: f.ArrivalTime}
}

func (f *Flight) Duration() time.Duration { return f.ArrivalTime.Sub(f.DepartureTime) }

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	IsStaff   bool      `gorm:"not null;default:false" json:"is_staff"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) Role() Role {
	if u.IsStaff {
		return Administrator
	}
	return Authenticated
}

type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserId    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
	Tickets   []*Ticket `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"tickets"`
	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

// BelongsTo is the ownership predicate the access layer scopes orders with
func (o *Order) BelongsTo(userId uint) bool {
	return o != nil && userId != 0 && o.UserId == userId
}

type Ticket struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Row       int       `gorm:"uniqueIndex:idx_ticket_seat;not null" json:"row"`
	Seat      int       `gorm:"uniqueIndex:idx_ticket_seat;not null" json:"seat"`
	FlightId  uint      `gorm:"uniqueIndex:idx_ticket_seat;index;not null" json:"flight_id"`
	Flight    *Flight   `gorm:"foreignKey:FlightId;constraint:OnDelete:CASCADE" json:"flight,omitempty"`
	OrderId   uint      `gorm:"index;not null" json:"order_id"`
	CreatedAt time.Time `json:"-"`
}

type ChangeDetail struct {
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

type AuditLog struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	EventType     string        `gorm:"size:64;index;not null" json:"event_type"`
	Subject       uint          `gorm:"index;not null" json:"subject"`
	Object        string        `gorm:"size:128;not null" json:"object"`
	Ip            string        `gorm:"size:64;not null" json:"ip"`
	UserAgent     string        `gorm:"size:256;not null" json:"user_agent"`
	ChangeDetails *ChangeDetail `gorm:"type:text;serializer:json" json:"change_details"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Models lists every table in dependency order for migration
func Models() []interface{} {
	return []interface{}{
		&User{}, &Country{}, &City{}, &Airport{}, &Route{}, &AirplaneType{}, &Airplane{},
		&Crew{}, &Flight{}, &Order{}, &Ticket{}, &AuditLog{},
	}
}
