package models

// Direction tells which side of the salary band a manager fell on.
type Direction string

// Directions as constants for type safety and consistency.
const (
	DirectionTooLow  Direction = "too_low"
	DirectionTooHigh Direction = "too_high"
)

// Label returns the human form used in reports ("less" / "more").
func (d Direction) Label() string {
	switch d {
	case DirectionTooLow:
		return "less"
	case DirectionTooHigh:
		return "more"
	default:
		return "unknown"
	}
}

// IsValid checks if a direction is one of the known values.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionTooLow, DirectionTooHigh:
		return true
	default:
		return false
	}
}
