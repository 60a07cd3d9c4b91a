package models

// Venue mirrors a document in the venues collection. The location is stored
// as a Firestore GeoPoint and filled in from the raw document data, so the
// struct decoder skips it.
type Venue struct {
	ID             string      `json:"id" firestore:"id"`
	Name           string      `json:"name" firestore:"name"`
	Address        string      `json:"address" firestore:"address"`
	Description    string      `json:"description" firestore:"description"`
	MoodTag        string      `json:"mood_tag" firestore:"mood_tag"`
	PersonalityTag string      `json:"personality_tag" firestore:"personality_tag"`
	Region         string      `json:"region" firestore:"region"`
	Location       GeoLocation `json:"location" firestore:"-"`
	Geohash        string      `json:"geohash" firestore:"geohash"`
	ImageURLs      []string    `json:"image_urls" firestore:"image_urls"`
	Reviews        []Review    `json:"reviews" firestore:"reviews"`
}

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Review struct {
	Rating  float64 `json:"rating" firestore:"rating"`
	Comment string  `json:"comment" firestore:"comment"`
}

// AverageRating returns the mean over reviews that carry a rating value,
// and the count of such reviews. Reviews without a rating are skipped.
func (v *Venue) AverageRating() (float64, int) {
	var sum float64
	var count int
	for _, review := range v.Reviews {
		if review.Rating > 0 {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}

type ScoredVenue struct {
	Venue Venue
	Score float64
}
