package admin

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"pulse/db"
	"pulse/models"
	"pulse/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingFunc func(ctx context.Context, page, limit int64) (interface{}, int64, error)

var listings = map[string]listingFunc{
	"quotes":   listQuotes,
	"demos":    listDemos,
	"packages": listPackages,
	"users":    listUsers,
}

// GetAdminSection dispatches /api/admin/:section. The dashboard and health
// probes get their own handlers; everything else is a paginated listing.
// Unknown sections yield an empty page rather than a 404 so the client can
// render a blank table with valid pagination.
func GetAdminSection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	section := strings.ToLower(ps.ByName("section"))

	switch section {
	case "dashboard":
		GetDashboardStats(w, r)
		return
	case "health":
		GetHealth(w, r)
		return
	}

	page, limit, _ := utils.ParsePagination(r, 10)

	fetch, ok := listings[section]
	if !ok {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success":    true,
			"data":       []interface{}{},
			"pagination": models.NewPagination(page, limit, 0),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, total, err := fetch(ctx, page, limit)
	if err != nil {
		log.Printf("admin listing error (%s): %v", section, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+section)
		return
	}

	// data is the bare array with pagination as a sibling; clients depend on
	// this flat shape
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":    true,
		"data":       records,
		"pagination": models.NewPagination(page, limit, total),
	})
}

// listPage fetches one page of a collection, newest first, and normalizes
// every record.
func listPage[D any, R any](ctx context.Context, col *mongo.Collection, page, limit int64, normalize func(D) R) ([]R, int64, error) {
	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	docs, err := utils.FindAndDecode[D](ctx, col, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}

	records := make([]R, 0, len(docs))
	for _, doc := range docs {
		records = append(records, normalize(doc))
	}
	return records, total, nil
}

func listQuotes(ctx context.Context, page, limit int64) (interface{}, int64, error) {
	records, total, err := listPage(ctx, db.QuotesCollection, page, limit, NormalizeQuote)
	return records, total, err
}

func listDemos(ctx context.Context, page, limit int64) (interface{}, int64, error) {
	records, total, err := listPage(ctx, db.DemosCollection, page, limit, NormalizeDemo)
	return records, total, err
}

func listPackages(ctx context.Context, page, limit int64) (interface{}, int64, error) {
	records, total, err := listPage(ctx, db.PackagesCollection, page, limit, NormalizePackage)
	return records, total, err
}

func listUsers(ctx context.Context, page, limit int64) (interface{}, int64, error) {
	records, total, err := listPage(ctx, db.UsersCollection, page, limit, NormalizeUser)
	return records, total, err
}
