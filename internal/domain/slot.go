package domain

import "github.com/m04kA/HSC-AvailabilityService/pkg/types"

// SlotStatus represents the computed state of a bookable time slot
type SlotStatus string

const (
	// SlotAvailable слот свободен для записи
	SlotAvailable SlotStatus = "AVAILABLE"

	// SlotBooked слот занят активной записью на прием
	SlotBooked SlotStatus = "BOOKED"

	// SlotBlocked слот нельзя забронировать (время уже прошло)
	SlotBlocked SlotStatus = "BLOCKED"
)

// Slot represents one computed time slot for a doctor on a concrete date
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus
}

// IsBookable returns true if the slot can still be booked
func (s *Slot) IsBookable() bool {
	return s.Status == SlotAvailable
}
