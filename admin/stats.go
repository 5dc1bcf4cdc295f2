package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"pulse/db"
	"pulse/models"
	"pulse/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Revenue is estimated from a flat per-package figure rather than the stored
// plan prices (99/499/999). The figure predates the plan lineup; keep it
// until finance decides how historical orders should be valued.
const packageUnitPrice = 500

type entityCounts struct {
	total     int64
	pending   int64
	completed int64
}

// GetDashboardStats assembles the cross-collection summary. Any count error
// aborts the whole thing; no partial summary goes out.
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	quotes, err := countByStatus(ctx, db.QuotesCollection)
	if err != nil {
		log.Println("dashboard quotes count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	demos, err := countByStatus(ctx, db.DemosCollection)
	if err != nil {
		log.Println("dashboard demos count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	packages, err := countByStatus(ctx, db.PackagesCollection)
	if err != nil {
		log.Println("dashboard packages count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	totalUsers, err := db.UsersCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("dashboard users count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	verifiedUsers, err := db.UsersCollection.CountDocuments(ctx, bson.M{"emailVerified": true})
	if err != nil {
		log.Println("dashboard verified users count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	stats := buildStats(quotes, demos, packages, totalUsers, verifiedUsers)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    stats,
	})
}

func countByStatus(ctx context.Context, col *mongo.Collection) (entityCounts, error) {
	var c entityCounts
	var err error

	if c.total, err = col.CountDocuments(ctx, bson.M{}); err != nil {
		return c, err
	}
	if c.pending, err = col.CountDocuments(ctx, bson.M{"status": "pending"}); err != nil {
		return c, err
	}
	if c.completed, err = col.CountDocuments(ctx, bson.M{"status": "completed"}); err != nil {
		return c, err
	}
	return c, nil
}

// buildStats derives the summary from the collected counts.
func buildStats(quotes, demos, packages entityCounts, totalUsers, verifiedUsers int64) models.DashboardStats {
	totalRevenue := packages.completed * packageUnitPrice
	var average float64
	if packages.completed > 0 {
		average = float64(totalRevenue) / float64(packages.completed)
	}

	return models.DashboardStats{
		Quotes: models.EntityStats{
			Total:     quotes.total,
			Pending:   quotes.pending,
			Completed: quotes.completed,
		},
		Demos: models.EntityStats{
			Total:     demos.total,
			Pending:   demos.pending,
			Completed: demos.completed,
		},
		Packages: models.PackageStats{
			Total:            packages.total,
			Pending:          packages.pending,
			Completed:        packages.completed,
			PaymentCompleted: packages.completed,
		},
		Auth: models.AuthStats{
			TotalUsers:    totalUsers,
			EmailUsers:    totalUsers,
			VerifiedUsers: verifiedUsers,
			ActiveUsers:   verifiedUsers,
		},
		Revenue: models.RevenueStats{
			Total:    totalRevenue,
			Average:  average,
			Packages: totalRevenue,
		},
	}
}
