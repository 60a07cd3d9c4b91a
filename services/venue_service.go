package services

import (
	"DateMate/config/database"
	"DateMate/models"
	"DateMate/utils"
	"context"
	"math"
	"net/http"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
)

const earthRadiusKm = 6371.0 // Radius of Earth in km

// defaultRadiusKm bounds geo queries when the caller gives no radius.
const defaultRadiusKm = 3.0

// Haversine formula to calculate distance between two lat/lng points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// VenueFilter narrows a venue query. Zero-valued fields are ignored; the geo
// constraint applies when either coordinate is non-zero.
type VenueFilter struct {
	MoodTag         string
	PersonalityTags []string
	Region          string
	Latitude        float64
	Longitude       float64
	RadiusKm        float64
	Limit           int
}

func (f VenueFilter) hasLocation() bool {
	return f.Latitude != 0 || f.Longitude != 0
}

type VenueService struct {
	FirestoreClient *firestore.Client
}

// NewVenueService initializes VenueService with Firestore
func NewVenueService() *VenueService {
	return &VenueService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// FindVenues returns up to filter.Limit venues matching the filter. Location
// is narrowed with a geohash prefix range first, then refined with a
// haversine radius check, the prefix range alone is too coarse.
func (s *VenueService) FindVenues(ctx context.Context, filter VenueFilter) ([]models.Venue, error) {
	query := s.FirestoreClient.Collection("venues").Query

	if filter.hasLocation() {
		targetGeoHash := geohash.Encode(filter.Latitude, filter.Longitude)
		geohashPrefix := targetGeoHash[:5] // ~3 km cell
		query = query.
			Where("geohash", ">=", geohashPrefix).
			Where("geohash", "<=", geohashPrefix+"~")
	}
	if filter.MoodTag != "" {
		query = query.Where("mood_tag", "==", strings.ToLower(filter.MoodTag))
	}
	if len(filter.PersonalityTags) > 0 {
		tags := filter.PersonalityTags
		if len(tags) > 10 { // Firestore allows max 10 values per "in" query
			tags = tags[:10]
		}
		query = query.Where("personality_tag", "in", tags)
	}
	if filter.Region != "" {
		query = query.Where("region", "==", filter.Region)
	}

	radius := filter.RadiusKm
	if radius <= 0 {
		radius = defaultRadiusKm
	}

	var venues []models.Venue
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var venue models.Venue
		if err := doc.DataTo(&venue); err != nil {
			continue
		}
		venue.ID = doc.Ref.ID

		location, ok := resolveVenueLocation(doc.Data(), filter, radius)
		if !ok {
			continue
		}
		venue.Location = location

		venues = append(venues, venue)
		if filter.Limit > 0 && len(venues) >= filter.Limit {
			break
		}
	}

	return venues, nil
}

// resolveVenueLocation extracts the GeoPoint from a venue document and
// applies the radius check. Under a geo filter, documents without a decodable
// location are excluded rather than passed through unchecked.
func resolveVenueLocation(data map[string]interface{}, filter VenueFilter, radius float64) (models.GeoLocation, bool) {
	geoPoint, ok := data["location"].(*latlng.LatLng)
	if !ok {
		return models.GeoLocation{}, !filter.hasLocation()
	}

	location := models.GeoLocation{
		Latitude:  geoPoint.Latitude,
		Longitude: geoPoint.Longitude,
	}
	if filter.hasLocation() {
		distance := haversine(filter.Latitude, filter.Longitude, location.Latitude, location.Longitude)
		if distance > radius {
			return location, false
		}
	}
	return location, true
}

// GetVenueByID fetches one venue document
func (s *VenueService) GetVenueByID(ctx context.Context, docID string) (*models.Venue, error) {
	doc, err := s.FirestoreClient.Collection("venues").Doc(docID).Get(ctx)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusNotFound, "Venue not found")
	}

	var venue models.Venue
	if err := doc.DataTo(&venue); err != nil {
		return nil, err
	}
	venue.ID = doc.Ref.ID

	if geoPoint, ok := doc.Data()["location"].(*latlng.LatLng); ok {
		venue.Location = models.GeoLocation{
			Latitude:  geoPoint.Latitude,
			Longitude: geoPoint.Longitude,
		}
	}
	return &venue, nil
}

// GetAllVenuesByLocation returns venues near a point sorted by distance
func (s *VenueService) GetAllVenuesByLocation(ctx context.Context, latitude, longitude float64) ([]map[string]interface{}, error) {
	targetGeoHash := geohash.Encode(latitude, longitude)
	geohashPrefix := targetGeoHash[:5]

	iter := s.FirestoreClient.Collection("venues").
		Where("geohash", ">=", geohashPrefix).
		Where("geohash", "<=", geohashPrefix+"~").
		Documents(ctx)

	var venues []map[string]interface{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to get venues")
		}

		data := doc.Data()
		geoPoint, ok := data["location"].(*latlng.LatLng)
		if !ok {
			continue
		}

		// Haversine filter
		distance := haversine(latitude, longitude, geoPoint.Latitude, geoPoint.Longitude)
		if distance <= defaultRadiusKm {
			venue := make(map[string]interface{})
			doc.DataTo(&venue)
			venue["id"] = doc.Ref.ID
			venue["distance"] = distance
			venues = append(venues, venue)
		}
	}

	sort.Slice(venues, func(i, j int) bool {
		return venues[i]["distance"].(float64) < venues[j]["distance"].(float64)
	})

	return venues, nil
}

// SaveVenue stores a venue with its geohash
func (s *VenueService) SaveVenue(ctx context.Context, venue *models.Venue) (string, error) {
	docRef := s.FirestoreClient.Collection("venues").NewDoc()
	_, err := docRef.Set(ctx, venueDocument(docRef.ID, venue))
	if err != nil {
		return "", err
	}
	return docRef.ID, nil
}

// SaveVenues stores venues in a single Firestore batch
func (s *VenueService) SaveVenues(ctx context.Context, venues []*models.Venue) error {
	batch := s.FirestoreClient.Batch()
	for _, venue := range venues {
		docRef := s.FirestoreClient.Collection("venues").NewDoc()
		batch.Set(docRef, venueDocument(docRef.ID, venue))
	}
	_, err := batch.Commit(ctx)
	return err
}

func venueDocument(docID string, venue *models.Venue) map[string]interface{} {
	geoHash := geohash.Encode(venue.Location.Latitude, venue.Location.Longitude)
	return map[string]interface{}{
		"id":              docID,
		"name":            venue.Name,
		"address":         venue.Address,
		"description":     venue.Description,
		"mood_tag":        strings.ToLower(venue.MoodTag),
		"personality_tag": strings.ToLower(venue.PersonalityTag),
		"region":          venue.Region,
		"location":        &latlng.LatLng{Latitude: venue.Location.Latitude, Longitude: venue.Location.Longitude},
		"geohash":         geoHash,
		"image_urls":      venue.ImageURLs,
		"reviews":         venue.Reviews,
	}
}
