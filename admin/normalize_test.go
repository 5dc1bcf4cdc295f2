package admin

import (
	"testing"
	"time"

	"pulse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeQuoteAppliesDefaults(t *testing.T) {
	got := NormalizeQuote(models.QuoteDoc{})

	if got.Name != "Unknown" {
		t.Errorf("name: expected Unknown, got %q", got.Name)
	}
	if got.Email != "No email" {
		t.Errorf("email: expected No email, got %q", got.Email)
	}
	if got.Phone != "No phone" {
		t.Errorf("phone: expected No phone, got %q", got.Phone)
	}
	if got.Company != "No company" {
		t.Errorf("company: expected No company, got %q", got.Company)
	}
	if got.Message != "No message" {
		t.Errorf("message: expected No message, got %q", got.Message)
	}
	if got.Status != "pending" {
		t.Errorf("status: expected pending, got %q", got.Status)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps must never be zero after normalization")
	}
}

func TestNormalizeQuoteKeepsStoredValues(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := models.QuoteDoc{
		Name:      "Acme Corp",
		Email:     "ops@acme.test",
		Status:    "completed",
		CreatedAt: created,
	}

	got := NormalizeQuote(doc)
	if got.Name != "Acme Corp" || got.Email != "ops@acme.test" {
		t.Errorf("stored fields were overwritten: %+v", got)
	}
	if got.Status != "completed" {
		t.Errorf("status: expected completed, got %q", got.Status)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("createdAt: expected %v, got %v", created, got.CreatedAt)
	}
}

func TestNormalizeDemoStatusFallsBackToBookingStatus(t *testing.T) {
	got := NormalizeDemo(models.DemoDoc{BookingStatus: "confirmed"})
	if got.Status != "confirmed" {
		t.Errorf("expected bookingStatus fallback, got %q", got.Status)
	}

	got = NormalizeDemo(models.DemoDoc{})
	if got.Status != "pending" {
		t.Errorf("expected pending default, got %q", got.Status)
	}
	if got.PaymentStatus != "pending" {
		t.Errorf("paymentStatus: expected pending, got %q", got.PaymentStatus)
	}
	if got.PaymentAmount != 0 {
		t.Errorf("paymentAmount: expected 0, got %v", got.PaymentAmount)
	}
	if got.PreferredTime != "Not specified" {
		t.Errorf("preferredTime: expected Not specified, got %q", got.PreferredTime)
	}
}

func TestNormalizeUserProviderDefaults(t *testing.T) {
	got := NormalizeUser(models.UserDoc{})
	if got.Provider != "unknown" {
		t.Errorf("provider: expected unknown, got %q", got.Provider)
	}
	if got.UID != "N/A" || got.Email != "N/A" || got.DisplayName != "N/A" {
		t.Errorf("expected N/A defaults, got %+v", got)
	}
	if got.LastSignInTime != "Never" {
		t.Errorf("lastSignInTime: expected Never, got %q", got.LastSignInTime)
	}
	if got.PhotoURL != nil {
		t.Errorf("photoURL: expected nil, got %v", *got.PhotoURL)
	}
	if got.CustomClaims == nil {
		t.Error("customClaims must be an empty map, not nil")
	}
	if got.CreatedAt == "" {
		t.Error("createdAt must never be empty after normalization")
	}
}

func TestNormalizeUserProviderFromProviderData(t *testing.T) {
	doc := models.UserDoc{
		ProviderData: []models.UserProviderData{{ProviderID: "google.com"}},
		Metadata:     &models.UserMetadata{CreationTime: "2024-11-02T10:00:00Z"},
	}
	got := NormalizeUser(doc)
	if got.Provider != "google.com" {
		t.Errorf("provider: expected google.com, got %q", got.Provider)
	}
	if got.CreatedAt != "2024-11-02T10:00:00Z" {
		t.Errorf("createdAt: expected metadata creation time, got %q", got.CreatedAt)
	}
}

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := idString(oid); got != oid.Hex() {
		t.Errorf("ObjectID: expected %q, got %q", oid.Hex(), got)
	}
	if got := idString("user-42"); got != "user-42" {
		t.Errorf("string: expected passthrough, got %q", got)
	}
	if got := idString(nil); got != "" {
		t.Errorf("nil: expected empty string, got %q", got)
	}
	if got := idString(int64(7)); got != "7" {
		t.Errorf("int64: expected 7, got %q", got)
	}
}

func TestPlanName(t *testing.T) {
	cases := []struct {
		price       float64
		packageType string
		want        string
	}{
		{99, "anything", "Starter Plan"},
		{499, "anything", "Business Plan"},
		{999, "anything", "Premium Plan"},
		{0, "starter", "Starter Plan"},
		{0, "BUSINESS", "Business Plan"},
		{0, " Premium ", "Premium Plan"},
		{123, "Custom Build", "Custom Build"},
		{100, "starter", "Starter Plan"},
	}
	for _, c := range cases {
		if got := PlanName(c.price, c.packageType); got != c.want {
			t.Errorf("PlanName(%v, %q): expected %q, got %q", c.price, c.packageType, c.want, got)
		}
	}
}

func TestNormalizePackageDerivesPlanName(t *testing.T) {
	got := NormalizePackage(models.PackageDoc{PackagePrice: 499, PackageType: "business"})
	if got.PackageName != "Business Plan" {
		t.Errorf("packageName: expected Business Plan, got %q", got.PackageName)
	}
	if got.Price != 499 {
		t.Errorf("price: expected 499, got %v", got.Price)
	}

	got = NormalizePackage(models.PackageDoc{})
	if got.PackageType != "Unknown" || got.PackageName != "Unknown" {
		t.Errorf("expected Unknown fallbacks, got type=%q name=%q", got.PackageType, got.PackageName)
	}
}
