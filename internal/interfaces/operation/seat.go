// Package operation
package operation

// TicketRequest asks for one seat on one flight
type TicketRequest struct {
	FlightId uint `json:"flight" yaml:"flight"`
	Row      int  `json:"row" yaml:"row"`
	Seat     int  `json:"seat" yaml:"seat"`
}

type SeatCoordinate struct {
	FlightId uint
	Row      int
	Seat     int
}

func (r *TicketRequest) Coordinate() SeatCoordinate {
	return SeatCoordinate{FlightId: r.FlightId, Row: r.Row, Seat: r.Seat}
}

// CheckSeat validates row before seat, each against 1..limit
func (a *Airplane) CheckSeat(row, seat int) error {
	if row < 1 || row > a.Rows {
		return &SeatOutOfRangeError{Dimension: "row", Value: row, Limit: a.Rows}
	}
	if seat < 1 || seat > a.SeatsInRow {
		return &SeatOutOfRangeError{Dimension: "seat", Value: seat, Limit: a.SeatsInRow}
	}
	return nil
}
