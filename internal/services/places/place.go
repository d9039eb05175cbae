// Package places serves famous places per city and mock directions.
package places

import "go.mongodb.org/mongo-driver/bson/primitive"

// Place is a point of interest in a city. Location is the lowercase city key
// places are looked up by.
type Place struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Latitude    float64            `bson:"latitude" json:"latitude"`
	Longitude   float64            `bson:"longitude" json:"longitude"`
	Rating      *float64           `bson:"rating,omitempty" json:"rating"`
	PhotoURL    *string            `bson:"photo_url,omitempty" json:"photo_url"`
	Tags        []string           `bson:"tags" json:"tags"`
	Location    string             `bson:"location" json:"location"`
}

// Directions is a route between two named points.
type Directions struct {
	Distance string   `json:"distance"`
	Duration string   `json:"duration"`
	Steps    []string `json:"steps"`
	Polyline string   `json:"polyline"`
}

// MockDirections returns a fixed route. No routing provider is called.
func MockDirections(origin, destination string) Directions {
	return Directions{
		Distance: "10 km",
		Duration: "20 minutes",
		Steps: []string{
			"Start from " + origin,
			"Head north on Main Street",
			"Turn right onto First Avenue",
			"Continue for 5 km",
			"Turn left onto Park Road",
			"Destination will be on your right",
			"Arrive at " + destination,
		},
		Polyline: "encoded_polyline_string_here",
	}
}
