package dbconnections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JournalDBTestingConnection struct {
	testDBName string
	client     *mongo.Client
}

var _ JournalDBConnection = (*JournalDBTestingConnection)(nil)

func NewJournalDBTestingConnection(t *testing.T) *JournalDBTestingConnection {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(os.Getenv("BLITLINE_TEST_MONGO_CONNECTION_STRING")))
	if err != nil {
		t.Fatalf("Cannot connect to mongodb: %s", err)
	}

	conn := &JournalDBTestingConnection{generateTestDBName(t, client), client}
	t.Cleanup(func() { conn.cleanup(t) })
	return conn
}

func (c *JournalDBTestingConnection) Collection(name string) *mongo.Collection {
	return c.client.Database(c.testDBName).Collection(name)
}

func (c *JournalDBTestingConnection) cleanup(t *testing.T) {
	ctx := context.Background()
	if err := c.client.Database(c.testDBName).Drop(ctx); err != nil {
		t.Errorf("Cannot cleanup testing database '%s': %s", c.testDBName, err)
	}

	c.client.Disconnect(ctx)
}

func generateTestDBName(t *testing.T, client *mongo.Client) string {
	databases, err := client.ListDatabaseNames(context.Background(), bson.M{})
	if err != nil {
		t.Fatalf("Cannot fetch database names list: %s", err)
	}

	for i := 0; i < 10; i++ {
		id := uuid.New().String()
		if !contains(databases, id) {
			return id
		}
	}

	t.Fatal("Cannot generate unique test DB name")
	return ""
}

func contains(names []string, name string) bool {
	for _, existing := range names {
		if existing == name {
			return true
		}
	}

	return false
}
