// Package mongostore is the MongoDB backend: a Gateway holding the shared
// client session, and a book store built on its books collection.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const collectionName = "books"

// ConnectionError reports a failed handshake or ping.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return "mongo connection: " + e.Err.Error() }
func (e *ConnectionError) Unwrap() error { return e.Err }

// Gateway owns the client session and the selected logical database.
// A Gateway only exists after a successful Connect.
type Gateway struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, pings the primary and selects database.
func Connect(ctx context.Context, uri, database string) (*Gateway, error) {
	if database == "" {
		return nil, fmt.Errorf("mongo: database name is empty")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, &ConnectionError{Err: err}
	}
	return &Gateway{client: client, db: client.Database(database)}, nil
}

// Collection returns the books collection handle.
func (g *Gateway) Collection() *mongo.Collection {
	return g.db.Collection(collectionName)
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx, readpref.Primary())
}

func (g *Gateway) Close(ctx context.Context) error {
	return g.client.Disconnect(ctx)
}
