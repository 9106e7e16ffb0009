package pharmacy_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahd3/iCare/internal/pharmacy"
)

const overpassFixture = `{
	"elements": [
		{
			"lat": 24.35, "lon": 54.55,
			"tags": {"name": "Far Pharmacy", "opening_hours": "24/7"}
		},
		{
			"center": {"lat": 24.346, "lon": 54.5395},
			"tags": {
				"name": "Close Pharmacy",
				"phone": "+971-2-1234567",
				"addr:street": "Main St",
				"addr:housenumber": "12",
				"addr:city": "Abu Dhabi"
			}
		},
		{
			"lat": 0, "lon": 0,
			"tags": {"name": "Broken Element"}
		}
	]
}`

func TestNearby(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("data"), "amenity=pharmacy")
		w.Write([]byte(overpassFixture))
	}))
	defer srv.Close()

	client := pharmacy.NewClientWithEndpoint(srv.URL, srv.Client())
	pharmacies, err := client.Nearby(context.Background(), 24.345942, 54.539434, 3000)
	require.NoError(t, err)
	require.Len(t, pharmacies, 2)

	// closest first, zero-coordinate elements dropped
	assert.Equal(t, "Close Pharmacy", pharmacies[0].Name)
	assert.Equal(t, "12 Main St, Abu Dhabi", pharmacies[0].Address)
	assert.Equal(t, "+971-2-1234567", pharmacies[0].Phone)
	assert.Less(t, pharmacies[0].DistanceKm, pharmacies[1].DistanceKm)
	assert.Contains(t, pharmacies[0].MapsURL, "google.com/maps")
	assert.Equal(t, "24/7", pharmacies[1].OpeningHours)
}

func TestNearbyUpstreamError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := pharmacy.NewClientWithEndpoint(srv.URL, srv.Client())
	_, err := client.Nearby(context.Background(), 24.3, 54.5, 3000)
	assert.Error(t, err)
}
