package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	QuotesCollection   *mongo.Collection
	DemosCollection    *mongo.Collection
	PackagesCollection *mongo.Collection
	UsersCollection    *mongo.Collection
	Database           *mongo.Database
	Client             *mongo.Client
)

// Initialize MongoDB connection. The driver connects lazily, so startup
// succeeds even when the datastore is down; requests fail individually.
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "dashdb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	Database = Client.Database(name)
	QuotesCollection = Database.Collection("quotes")
	DemosCollection = Database.Collection("demos")
	PackagesCollection = Database.Collection("packages")
	UsersCollection = Database.Collection("users")
}
