package models

import "time"

// QuoteDoc is the stored shape of a quote request. Intake forms write these;
// any field may be absent.
type QuoteDoc struct {
	ID        interface{} `bson:"_id,omitempty"`
	Name      string      `bson:"name,omitempty"`
	Email     string      `bson:"email,omitempty"`
	Phone     string      `bson:"phone,omitempty"`
	Company   string      `bson:"company,omitempty"`
	Message   string      `bson:"message,omitempty"`
	Status    string      `bson:"status,omitempty"`
	Priority  string      `bson:"priority,omitempty"`
	CreatedAt time.Time   `bson:"createdAt,omitempty"`
	UpdatedAt time.Time   `bson:"updatedAt,omitempty"`
}

// Quote is the fully-populated response record.
type Quote struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
