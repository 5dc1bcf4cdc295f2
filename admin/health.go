package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"pulse/db"
	"pulse/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// GetHealth probes the datastore: ping, collection inventory, and a count
// against the users collection.
func GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := db.Client.Ping(ctx, nil); err != nil {
		log.Println("health ping error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database connection failed")
		return
	}

	collections, err := db.Database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		log.Println("health list collections error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database connection failed")
		return
	}

	userCount, err := db.UsersCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("health user count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database connection failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Database connection successful",
		"data": utils.M{
			"collections": collections,
			"userCount":   userCount,
		},
	})
}
