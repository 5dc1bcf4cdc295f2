package admin

import (
	"fmt"
	"strings"
	"time"

	"pulse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stored records are sparse; the normalizers below fill every field so a
// response record is never partially populated.

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// idString surfaces the stored _id as a string whatever its underlying
// representation is.
func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// PlanName maps a stored package price to its plan name. Unknown prices fall
// back to a case-insensitive match on the package type, then to the raw type
// string.
func PlanName(price float64, packageType string) string {
	switch price {
	case 99:
		return "Starter Plan"
	case 499:
		return "Business Plan"
	case 999:
		return "Premium Plan"
	}
	switch strings.ToLower(strings.TrimSpace(packageType)) {
	case "starter":
		return "Starter Plan"
	case "business":
		return "Business Plan"
	case "premium":
		return "Premium Plan"
	}
	return packageType
}

func NormalizeQuote(doc models.QuoteDoc) models.Quote {
	return models.Quote{
		ID:        idString(doc.ID),
		Name:      fallback(doc.Name, "Unknown"),
		Email:     fallback(doc.Email, "No email"),
		Phone:     fallback(doc.Phone, "No phone"),
		Company:   fallback(doc.Company, "No company"),
		Message:   fallback(doc.Message, "No message"),
		Status:    fallback(doc.Status, "pending"),
		Priority:  fallback(doc.Priority, "pending"),
		CreatedAt: timeOrNow(doc.CreatedAt),
		UpdatedAt: timeOrNow(doc.UpdatedAt),
	}
}

func NormalizeDemo(doc models.DemoDoc) models.DemoBooking {
	return models.DemoBooking{
		ID:            idString(doc.ID),
		Name:          fallback(doc.Name, "Unknown"),
		Email:         fallback(doc.Email, "No email"),
		Phone:         fallback(doc.Phone, "No phone"),
		Company:       fallback(doc.Company, "No company"),
		PreferredDate: fallback(doc.PreferredDate, time.Now().UTC().Format(time.RFC3339)),
		PreferredTime: fallback(doc.PreferredTime, "Not specified"),
		Message:       fallback(doc.Message, "No message"),
		Status:        fallback(fallback(doc.Status, doc.BookingStatus), "pending"),
		PaymentStatus: fallback(doc.PaymentStatus, "pending"),
		PaymentAmount: doc.PaymentAmount,
		CreatedAt:     timeOrNow(doc.CreatedAt),
		UpdatedAt:     timeOrNow(doc.UpdatedAt),
	}
}

func NormalizePackage(doc models.PackageDoc) models.PackageOrder {
	packageType := fallback(doc.PackageType, "Unknown")
	return models.PackageOrder{
		ID:            idString(doc.ID),
		Name:          fallback(doc.Name, "Unknown"),
		Email:         fallback(doc.Email, "No email"),
		Phone:         fallback(doc.Phone, "No phone"),
		Company:       fallback(doc.Company, "No company"),
		PackageType:   packageType,
		PackageName:   PlanName(doc.PackagePrice, packageType),
		Price:         doc.PackagePrice,
		Status:        fallback(doc.Status, "pending"),
		PaymentStatus: fallback(doc.PaymentStatus, "pending"),
		CreatedAt:     timeOrNow(doc.CreatedAt),
		UpdatedAt:     timeOrNow(doc.UpdatedAt),
	}
}

func NormalizeUser(doc models.UserDoc) models.User {
	provider := "unknown"
	if len(doc.ProviderData) > 0 && doc.ProviderData[0].ProviderID != "" {
		provider = doc.ProviderData[0].ProviderID
	}

	createdAt := doc.CreatedAt
	lastSignIn := doc.LastSignInTime
	if doc.Metadata != nil {
		createdAt = fallback(doc.Metadata.CreationTime, createdAt)
		lastSignIn = fallback(doc.Metadata.LastSignInTime, lastSignIn)
	}

	var photoURL *string
	if doc.PhotoURL != "" {
		photoURL = &doc.PhotoURL
	}

	claims := doc.CustomClaims
	if claims == nil {
		claims = map[string]interface{}{}
	}

	return models.User{
		ID:             idString(doc.ID),
		UID:            fallback(doc.UID, "N/A"),
		Email:          fallback(doc.Email, "N/A"),
		DisplayName:    fallback(doc.DisplayName, "N/A"),
		PhotoURL:       photoURL,
		EmailVerified:  doc.EmailVerified,
		Disabled:       doc.Disabled,
		Provider:       provider,
		CreatedAt:      fallback(createdAt, time.Now().UTC().Format(time.RFC3339)),
		LastSignInTime: fallback(lastSignIn, "Never"),
		CustomClaims:   claims,
	}
}
