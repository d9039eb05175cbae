package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	places []Place
	err    error
	asked  string
}

func (f *fakeStore) ByLocation(_ context.Context, location string) ([]Place, error) {
	f.asked = location
	if f.err != nil {
		return nil, f.err
	}
	var out []Place
	for _, p := range f.places {
		if p.Location == location {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) Locations(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]bool{}
	var out []string
	for _, p := range f.places {
		if !seen[p.Location] {
			seen[p.Location] = true
			out = append(out, p.Location)
		}
	}
	return out, nil
}

func rating(v float64) *float64 { return &v }

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(zerolog.Nop(), store).Register(r)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func sampleStore() *fakeStore {
	return &fakeStore{places: []Place{
		{ID: primitive.NewObjectID(), Name: "Eiffel Tower", Location: "paris", Latitude: 48.8584, Longitude: 2.2945, Rating: rating(4.7), Tags: []string{"landmark"}},
		{ID: primitive.NewObjectID(), Name: "Louvre Museum", Location: "paris", Tags: []string{"museum"}},
		{ID: primitive.NewObjectID(), Name: "Colosseum", Location: "rome", Tags: []string{"history"}},
	}}
}

func TestPlacesLowercasesLocation(t *testing.T) {
	store := sampleStore()
	rec := get(newRouter(store), "/places?location=PaRiS")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paris", store.asked)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Eiffel Tower", got[0]["name"])
	assert.Equal(t, store.places[0].ID.Hex(), got[0]["id"])
	assert.Equal(t, 4.7, got[0]["rating"])
	assert.Nil(t, got[1]["rating"])
	assert.Nil(t, got[1]["photo_url"])
}

func TestPlacesNotFound(t *testing.T) {
	rec := get(newRouter(sampleStore()), "/places?location=Atlantis")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No places found for: Atlantis"}`, rec.Body.String())
}

func TestPlacesRequiresLocation(t *testing.T) {
	rec := get(newRouter(sampleStore()), "/places")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlacesStoreError(t *testing.T) {
	rec := get(newRouter(&fakeStore{err: errors.New("connection refused")}), "/places?location=rome")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLocations(t *testing.T) {
	rec := get(newRouter(sampleStore()), "/locations")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"locations":["paris","rome"]}`, rec.Body.String())
}

func TestDirections(t *testing.T) {
	rec := get(newRouter(sampleStore()), "/directions?origin=Louvre&destination=Eiffel%20Tower")

	require.Equal(t, http.StatusOK, rec.Code)
	var d Directions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "10 km", d.Distance)
	assert.Equal(t, "20 minutes", d.Duration)
	require.Len(t, d.Steps, 7)
	assert.Equal(t, "Start from Louvre", d.Steps[0])
	assert.Equal(t, "Arrive at Eiffel Tower", d.Steps[6])
}

func TestDirectionsRequiresBothEnds(t *testing.T) {
	r := newRouter(sampleStore())
	assert.Equal(t, http.StatusBadRequest, get(r, "/directions?origin=a").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/directions?destination=b").Code)
}

func TestInfo(t *testing.T) {
	rec := get(newRouter(sampleStore()), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Map Service"`)
}
