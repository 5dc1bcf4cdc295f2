package models

// EntityStats summarizes one collection. The today/thisWeek/thisMonth
// buckets are emitted as zero; date bucketing has never been wired up and
// clients already tolerate the placeholder.
type EntityStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"thisWeek"`
	ThisMonth int64 `json:"thisMonth"`
}

type PackageStats struct {
	Total            int64 `json:"total"`
	Pending          int64 `json:"pending"`
	Processing       int64 `json:"processing"`
	Completed        int64 `json:"completed"`
	Cancelled        int64 `json:"cancelled"`
	PaymentPending   int64 `json:"paymentPending"`
	PaymentCompleted int64 `json:"paymentCompleted"`
	Today            int64 `json:"today"`
	ThisWeek         int64 `json:"thisWeek"`
	ThisMonth        int64 `json:"thisMonth"`
}

type AuthStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	EmailUsers    int64 `json:"emailUsers"`
	GoogleUsers   int64 `json:"googleUsers"`
	VerifiedUsers int64 `json:"verifiedUsers"`
	ActiveUsers   int64 `json:"activeUsers"`
	Today         int64 `json:"today"`
	ThisWeek      int64 `json:"thisWeek"`
	ThisMonth     int64 `json:"thisMonth"`
}

type RevenueStats struct {
	Total    int64   `json:"total"`
	Average  float64 `json:"average"`
	Packages int64   `json:"packages"`
}

type DashboardStats struct {
	Quotes   EntityStats  `json:"quotes"`
	Demos    EntityStats  `json:"demos"`
	Packages PackageStats `json:"packages"`
	Auth     AuthStats    `json:"auth"`
	Revenue  RevenueStats `json:"revenue"`
}
