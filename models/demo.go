package models

import "time"

// DemoDoc is the stored shape of a demo booking. Older records carry the
// status under bookingStatus instead of status.
type DemoDoc struct {
	ID            interface{} `bson:"_id,omitempty"`
	Name          string      `bson:"name,omitempty"`
	Email         string      `bson:"email,omitempty"`
	Phone         string      `bson:"phone,omitempty"`
	Company       string      `bson:"company,omitempty"`
	PreferredDate string      `bson:"preferredDate,omitempty"`
	PreferredTime string      `bson:"preferredTime,omitempty"`
	Message       string      `bson:"message,omitempty"`
	Status        string      `bson:"status,omitempty"`
	BookingStatus string      `bson:"bookingStatus,omitempty"`
	PaymentStatus string      `bson:"paymentStatus,omitempty"`
	PaymentAmount float64     `bson:"paymentAmount,omitempty"`
	CreatedAt     time.Time   `bson:"createdAt,omitempty"`
	UpdatedAt     time.Time   `bson:"updatedAt,omitempty"`
}

type DemoBooking struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Company       string    `json:"company"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentAmount float64   `json:"paymentAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
