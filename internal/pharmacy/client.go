// Package pharmacy is a stateless read-only client for the Overpass API,
// looking up pharmacies around a coordinate. No scheduling or learning
// logic lives here.
package pharmacy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/Shahd3/iCare/pkg/entity"
)

const defaultEndpoint = "https://overpass-api.de/api/interpreter"

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient() *Client {
	return &Client{
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 25 * time.Second},
	}
}

func NewClientWithEndpoint(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
	}
}

type overpassResponse struct {
	Elements []struct {
		Lat    float64           `json:"lat"`
		Lon    float64           `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Nearby returns pharmacies within radiusM meters of the coordinate,
// closest first.
func (c *Client) Nearby(ctx context.Context, lat, lon float64, radiusM int) ([]entity.Pharmacy, error) {
	query := fmt.Sprintf(`[out:json][timeout:25];
nwr[amenity=pharmacy](around:%d,%f,%f);
out center;`, radiusM, lat, lon)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "iCare")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.New("overpass request error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass responded with status %d", resp.StatusCode)
	}

	var parsed overpassResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.New("parsing overpass response error: " + err.Error())
	}

	pharmacies := make([]entity.Pharmacy, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		plat, plon := el.Lat, el.Lon
		if el.Center != nil {
			plat, plon = el.Center.Lat, el.Center.Lon
		}
		if plat == 0 && plon == 0 {
			continue
		}
		name := el.Tags["name"]
		if name == "" {
			name = "Pharmacy"
		}
		pharmacies = append(pharmacies, entity.Pharmacy{
			Name:         name,
			Address:      address(el.Tags),
			Phone:        el.Tags["phone"],
			OpeningHours: el.Tags["opening_hours"],
			DistanceKm:   round2(haversineKm(lat, lon, plat, plon)),
			MapsURL:      fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f", plat, plon),
		})
	}
	sort.Slice(pharmacies, func(i, j int) bool {
		return pharmacies[i].DistanceKm < pharmacies[j].DistanceKm
	})
	return pharmacies, nil
}

func address(tags map[string]string) string {
	parts := make([]string, 0, 2)
	if s := tags["addr:street"]; s != "" {
		if n := tags["addr:housenumber"]; n != "" {
			s = n + " " + s
		}
		parts = append(parts, s)
	}
	if c := tags["addr:city"]; c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, ", ")
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
