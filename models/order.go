package models

import "time"

// PackageDoc is the stored shape of a package order written by the payment
// webhook.
type PackageDoc struct {
	ID            interface{} `bson:"_id,omitempty"`
	Name          string      `bson:"name,omitempty"`
	Email         string      `bson:"email,omitempty"`
	Phone         string      `bson:"phone,omitempty"`
	Company       string      `bson:"company,omitempty"`
	PackageType   string      `bson:"packageType,omitempty"`
	PackagePrice  float64     `bson:"packagePrice,omitempty"`
	Status        string      `bson:"status,omitempty"`
	PaymentStatus string      `bson:"paymentStatus,omitempty"`
	CreatedAt     time.Time   `bson:"createdAt,omitempty"`
	UpdatedAt     time.Time   `bson:"updatedAt,omitempty"`
}

type PackageOrder struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Company       string    `json:"company"`
	PackageType   string    `json:"packageType"`
	PackageName   string    `json:"packageName"`
	Price         float64   `json:"price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
