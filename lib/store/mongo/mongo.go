// Package mongo implements the store interface for MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mgo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tarancss/selene/lib/store"
)

// Database holding the relay collections.
const Database = "selene"

const (
	names = "names"
	hooks = "hooks"
)

// Mongo implements a connection to a MongoDB database.
type Mongo struct {
	c *mgo.Client
}

var _ store.DB = (*Mongo)(nil)

// New returns a Mongo client connection to the specified MongoDB database uri.
func New(uri string) (*Mongo, error) {
	// get a client
	c, err := mgo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mongo DB in %s: %w", uri, err)
	}
	// connect client
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:gomnd // 5 seconds timeout
	defer cancel()

	if err = c.Connect(ctx); err != nil {
		return nil, fmt.Errorf("error connecting to mongo DB: %w", err)
	}

	return &Mongo{c: c}, nil
}

// Close will close the database connection. Must be called at termination time.
func (m *Mongo) Close() error {
	return m.c.Disconnect(context.Background())
}

func (m *Mongo) col(name string) *mgo.Collection {
	return m.c.Database(Database).Collection(name)
}

// SaveName upserts the name of an account.
func (m *Mongo) SaveName(ctx context.Context, n store.Name) error {
	_, err := m.col(names).UpdateOne(ctx,
		bson.M{"_id": n.Address}, // filter
		bson.D{{Key: "$set", Value: bson.D{ // update
			{Key: "name", Value: n.Name},
			{Key: "updated", Value: n.Updated},
		}}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("could not save name in db: %w", err)
	}

	return nil
}

// LoadNames returns every saved name.
func (m *Mongo) LoadNames(ctx context.Context) ([]store.Name, error) {
	cur, err := m.col(names).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error loading names: %w", err)
	}

	ns := []store.Name{}
	if err = cur.All(ctx, &ns); err != nil {
		return nil, fmt.Errorf("error decoding names: %w", err)
	}

	return ns, nil
}

// SaveHook inserts a relayed transaction.
func (m *Mongo) SaveHook(ctx context.Context, h store.Hook) error {
	if _, err := m.col(hooks).InsertOne(ctx, h); err != nil {
		return fmt.Errorf("could not insert hook in db: %w", err)
	}

	return nil
}

// GetHooks returns the latest relayed transactions, newest first. Ids are ULIDs so they sort by time.
func (m *Mongo) GetHooks(ctx context.Context, limit int) ([]store.Hook, error) {
	limit, err := store.Limit(limit)
	if err != nil {
		return nil, err
	}

	cur, err := m.col(hooks).Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("error getting hooks: %w", err)
	}

	hs := []store.Hook{}
	if err = cur.All(ctx, &hs); err != nil {
		return nil, fmt.Errorf("error decoding hooks: %w", err)
	}

	return hs, nil
}

// drop removes the relay collections.
func (m *Mongo) drop(ctx context.Context) error {
	if err := m.col(names).Drop(ctx); err != nil {
		return err
	}

	return m.col(hooks).Drop(ctx)
}
