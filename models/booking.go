package models

// BookingStatus is the lifecycle state of a consultation booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking is a consultation request with a legal professional.
// ProID and ProName are copied at booking time and are not kept in sync with the professional.
type Booking struct {
	ID      string        `json:"id"`
	ProID   string        `json:"proId"`
	ProName string        `json:"proName"`
	Date    int64         `json:"date"` // unix millis
	Status  BookingStatus `json:"status"`
}
