// Package packing builds trip packing lists by merging fixed rule tables.
package packing

// Item is one entry of a packing list. Name doubles as the dedup key.
type Item struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Essential bool   `json:"essential"`
	Notes     string `json:"notes,omitempty"`
}

// Profile describes the trip a list is generated for. Free-text fields are
// matched case-insensitively and never validated against the tables.
type Profile struct {
	Destination string
	Duration    int
	Season      string
	TripType    string
	Activities  []string
	Gender      string
	AgeGroup    string
}

// Bucket is the trip length class used for quantity scaling.
type Bucket string

const (
	BucketShort    Bucket = "short"
	BucketMedium   Bucket = "medium"
	BucketLong     Bucket = "long"
	BucketExtended Bucket = "extended"
)

// BucketFor classifies a duration in days. Zero and negative durations are
// treated as short trips.
func BucketFor(days int) Bucket {
	switch {
	case days <= 3:
		return BucketShort
	case days <= 7:
		return BucketMedium
	case days <= 14:
		return BucketLong
	default:
		return BucketExtended
	}
}

func item(name, category string, quantity int) Item {
	return Item{Name: name, Category: category, Quantity: quantity}
}

func essential(name, category string, quantity int) Item {
	return Item{Name: name, Category: category, Quantity: quantity, Essential: true}
}

func (i Item) note(text string) Item {
	i.Notes = text
	return i
}
