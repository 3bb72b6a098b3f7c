package dbconnections

import "go.mongodb.org/mongo-driver/mongo"

type JournalDBConnection interface {
	Collection(collectionName string) *mongo.Collection
}
