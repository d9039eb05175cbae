package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelassistant/internal/services/places"
	"travelassistant/internal/services/translation"
)

// Options controls Run.
type Options struct {
	// Force drops both collections before inserting.
	Force bool
}

// Report counts inserted documents per collection. A collection that already
// held data is reported as skipped.
type Report struct {
	Places         int
	Phrases        int
	PlacesSkipped  bool
	PhrasesSkipped bool
}

// Run writes ds into the map and translation databases.
func Run(ctx context.Context, client *mongo.Client, ds Dataset, opts Options, log zerolog.Logger) (Report, error) {
	var rep Report

	placeColl := client.Database(places.DatabaseName).Collection(places.CollectionName)
	n, err := seedCollection(ctx, placeColl, toDocs(ds.Places), "location", opts.Force)
	if err != nil {
		return rep, err
	}
	rep.Places, rep.PlacesSkipped = max(n, 0), n < 0
	logResult(log, placeColl, n)

	phraseColl := client.Database(translation.DatabaseName).Collection(translation.CollectionName)
	n, err = seedCollection(ctx, phraseColl, toDocs(ds.Phrases), "category", opts.Force)
	if err != nil {
		return rep, err
	}
	rep.Phrases, rep.PhrasesSkipped = max(n, 0), n < 0
	logResult(log, phraseColl, n)
	return rep, nil
}

// seedCollection inserts docs into an empty collection and indexes field.
// It returns -1 when the collection already held documents.
func seedCollection(ctx context.Context, coll *mongo.Collection, docs []any, field string, force bool) (int, error) {
	name := coll.Database().Name() + "." + coll.Name()
	if force {
		if err := coll.Drop(ctx); err != nil {
			return 0, fmt.Errorf("drop %s: %w", name, err)
		}
	}

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", name, err)
	}
	if count > 0 {
		return -1, nil
	}
	if len(docs) == 0 {
		return 0, nil
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", name, err)
	}
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetName(field + "_1"),
	})
	if err != nil {
		return 0, fmt.Errorf("index %s.%s: %w", name, field, err)
	}
	return len(res.InsertedIDs), nil
}

func toDocs[T any](in []T) []any {
	out := make([]any, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

func logResult(log zerolog.Logger, coll *mongo.Collection, n int) {
	evt := log.Info().Str("database", coll.Database().Name()).Str("collection", coll.Name())
	if n < 0 {
		evt.Msg("collection already has data, skipping")
		return
	}
	evt.Int("inserted", n).Msg("collection seeded")
}
