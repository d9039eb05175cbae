package translation

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DatabaseName   = "translation_db"
	CollectionName = "common_phrases"
)

var (
	ErrNotFound  = errors.New("phrase not found")
	ErrInvalidID = errors.New("invalid phrase id")
)

// PhraseTranslation is one language entry of a phrase.
type PhraseTranslation struct {
	TranslatedPhrase string  `bson:"translatedPhrase" json:"translatedPhrase"`
	Pronunciation    *string `bson:"pronunciation,omitempty" json:"pronunciation"`
	TTSURL           string  `bson:"ttsUrl" json:"ttsUrl"`
}

// Phrase is a common travel phrase with translations keyed by language.
type Phrase struct {
	ID           primitive.ObjectID           `bson:"_id,omitempty" json:"id"`
	Phrase       string                       `bson:"phrase" json:"phrase"`
	Category     string                       `bson:"category" json:"category"`
	Translations map[string]PhraseTranslation `bson:"translations" json:"translations"`
}

// PhraseStore reads the phrase book.
type PhraseStore interface {
	List(ctx context.Context, limit, skip int64) ([]Phrase, error)
	Categories(ctx context.Context) ([]string, error)
	ByCategory(ctx context.Context, category string) ([]Phrase, error)
	// ByID returns ErrInvalidID for a malformed id and ErrNotFound when no
	// phrase has it.
	ByID(ctx context.Context, id string) (Phrase, error)
}

// MongoPhraseStore is a PhraseStore backed by translation_db.common_phrases.
type MongoPhraseStore struct {
	coll *mongo.Collection
}

func NewMongoPhraseStore(client *mongo.Client) *MongoPhraseStore {
	return &MongoPhraseStore{coll: client.Database(DatabaseName).Collection(CollectionName)}
}

func (s *MongoPhraseStore) List(ctx context.Context, limit, skip int64) ([]Phrase, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	return s.find(ctx, bson.M{}, opts)
}

func (s *MongoPhraseStore) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if c, ok := v.(string); ok {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (s *MongoPhraseStore) ByCategory(ctx context.Context, category string) ([]Phrase, error) {
	return s.find(ctx, bson.M{"category": category})
}

func (s *MongoPhraseStore) ByID(ctx context.Context, id string) (Phrase, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Phrase{}, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	var p Phrase
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Phrase{}, ErrNotFound
	}
	if err != nil {
		return Phrase{}, fmt.Errorf("find phrase %s: %w", id, err)
	}
	return p, nil
}

func (s *MongoPhraseStore) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]Phrase, error) {
	cursor, err := s.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find phrases: %w", err)
	}
	var out []Phrase
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode phrases: %w", err)
	}
	return out, nil
}
