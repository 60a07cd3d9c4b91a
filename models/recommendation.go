package models

type RecommendationRequest struct {
	Query           string  `json:"query"`
	MoodID          int     `json:"mood_id"`
	PartnerMoodID   int     `json:"partner_mood_id"`
	MBTIType        string  `json:"mbti_type"`
	PartnerMBTIType string  `json:"partner_mbti_type"`
	Region          string  `json:"region"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	RadiusKm        float64 `json:"radius_km"`
	BudgetLevel     int     `json:"budget_level"`
	Limit           int     `json:"limit" binding:"required,min=1,max=50"`
}

// ParsedQueryContext holds the signals extracted from a free-text query.
// The zero value means "no signals detected".
type ParsedQueryContext struct {
	Intent          string   `json:"intent"`
	Mood            string   `json:"mood"`
	PersonalityTags []string `json:"personality_tags"`
	Region          string   `json:"region"`
}

type RecommendedVenue struct {
	VenueID       string   `json:"venue_id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Description   string   `json:"description"`
	Score         float64  `json:"score"`
	MatchReason   string   `json:"match_reason"`
	AverageRating float64  `json:"average_rating,omitempty"`
	ReviewCount   int      `json:"review_count"`
	Images        []string `json:"images"`
	MatchedTags   []string `json:"matched_tags"`
}

type RecommendationResponse struct {
	Recommendations  []RecommendedVenue `json:"recommendations"`
	Explanation      string             `json:"explanation"`
	CoupleMoodType   string             `json:"couple_mood_type,omitempty"`
	PersonalityTags  []string           `json:"personality_tags"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}
