package places

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DatabaseName   = "map_db"
	CollectionName = "places"
)

// Store reads places.
type Store interface {
	// ByLocation returns the places whose location key equals location.
	ByLocation(ctx context.Context, location string) ([]Place, error)
	// Locations returns every distinct location key.
	Locations(ctx context.Context) ([]string, error)
}

// MongoStore is a Store backed by the map_db.places collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(client *mongo.Client) *MongoStore {
	return &MongoStore{coll: client.Database(DatabaseName).Collection(CollectionName)}
}

func (s *MongoStore) ByLocation(ctx context.Context, location string) ([]Place, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"location": strings.ToLower(location)})
	if err != nil {
		return nil, fmt.Errorf("find places: %w", err)
	}
	var out []Place
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return out, nil
}

func (s *MongoStore) Locations(ctx context.Context) ([]string, error) {
	raw, err := s.coll.Distinct(ctx, "location", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct locations: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if loc, ok := v.(string); ok {
			out = append(out, loc)
		}
	}
	slices.Sort(out)
	return out, nil
}
