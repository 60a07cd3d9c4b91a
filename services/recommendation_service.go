package services

import (
	"DateMate/models"
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

const (
	// fallbackScore is assigned to every venue on the fallback path.
	fallbackScore = 50.0

	defaultMatchReason  = "A good fit for your current mood."
	fallbackMatchReason = "A popular spot near you."
	fallbackExplanation = "Here are some places near you while we sort out personalized picks."
	apologyExplanation  = "Sorry, we could not find recommendations right now. Please try again in a moment."
	noDataExplanation   = "No venues are available for your area yet. Try widening the search."
)

// VenueProvider is the venue store boundary the pipeline retrieves from.
type VenueProvider interface {
	FindVenues(ctx context.Context, filter VenueFilter) ([]models.Venue, error)
}

// MoodResolver resolves mood ids to names and mood pairs to a couple mood.
type MoodResolver interface {
	ResolveCoupleMood(mood1, mood2 string) string
	GetMoodNameByID(ctx context.Context, moodID int) (string, error)
}

type RecommendationService struct {
	Venues       VenueProvider
	Moods        MoodResolver
	Personality  *PersonalityService
	Query        *QueryService
	Scoring      *ScoringService
	Explanations *ExplanationService
}

// NewRecommendationService wires the full pipeline onto Firestore and OpenAI
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{
		Venues:       NewVenueService(),
		Moods:        NewMoodService(),
		Personality:  NewPersonalityService(),
		Query:        NewQueryService(),
		Scoring:      NewScoringService(),
		Explanations: NewExplanationService(),
	}
}

// GetRecommendations runs the whole pipeline. It never fails the caller:
// any pipeline error or panic degrades to the fallback path, and the
// fallback itself degrades to an apology response.
func (s *RecommendationService) GetRecommendations(ctx context.Context, req models.RecommendationRequest) *models.RecommendationResponse {
	start := time.Now()

	resp, err := s.recommend(ctx, req, start)
	if err != nil {
		log.Println("Recommendation pipeline failed, using fallback:", err)
		return s.fallbackResponse(ctx, req, start)
	}
	return resp
}

func (s *RecommendationService) recommend(ctx context.Context, req models.RecommendationRequest, start time.Time) (resp *models.RecommendationResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recommendation pipeline panicked: %v", r)
		}
	}()

	// Query interpretation and mood resolution are independent; run the AI
	// call while the mood ids are looked up.
	parsedCh := make(chan models.ParsedQueryContext, 1)
	go func() {
		parsedCh <- s.Query.InterpretQuery(ctx, req.Query)
	}()

	moodName := s.lookupMoodName(ctx, req.MoodID)
	partnerMoodName := s.lookupMoodName(ctx, req.PartnerMoodID)
	parsed := <-parsedCh

	// AI-detected signals only fill gaps the structured fields left open.
	if moodName == "" && partnerMoodName == "" && parsed.Mood != "" {
		moodName = parsed.Mood
	}
	coupleMood := ""
	if moodName != "" || partnerMoodName != "" {
		coupleMood = s.Moods.ResolveCoupleMood(moodName, partnerMoodName)
	}

	var personalityTags []string
	if req.MBTIType != "" || req.PartnerMBTIType != "" {
		personalityTags = s.Personality.ResolvePairTags(req.MBTIType, req.PartnerMBTIType)
	} else if len(parsed.PersonalityTags) > 0 {
		personalityTags = parsed.PersonalityTags
	}

	region := req.Region
	if region == "" {
		region = parsed.Region
	}

	candidates, err := s.retrieveCandidates(ctx, coupleMood, personalityTags, region, req)
	if err != nil {
		return nil, fmt.Errorf("candidate retrieval failed: %w", err)
	}

	if len(candidates) == 0 {
		return &models.RecommendationResponse{
			Recommendations:  []models.RecommendedVenue{},
			Explanation:      noDataExplanation,
			CoupleMoodType:   coupleMood,
			PersonalityTags:  emptyIfNil(personalityTags),
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		}, nil
	}

	signals := ScoringSignals{
		CoupleMood:      coupleMood,
		PersonalityTags: personalityTags,
		HasBudgetLevel:  req.BudgetLevel > 0,
	}
	ranked := s.Scoring.RankVenues(candidates, signals, req.Limit)

	explanations := s.Explanations.GenerateExplanations(ctx, ranked, coupleMood, personalityTags, req.Query)

	return s.assembleResponse(ranked, explanations, coupleMood, personalityTags, start), nil
}

func (s *RecommendationService) lookupMoodName(ctx context.Context, moodID int) string {
	if moodID <= 0 {
		return ""
	}
	name, err := s.Moods.GetMoodNameByID(ctx, moodID)
	if err != nil {
		log.Printf("Mood lookup failed for id %d: %v", moodID, err)
		return ""
	}
	return name
}

// retrieveCandidates runs the two-tier retrieval: a filtered query first,
// and a broader one without mood/personality filters when the filtered set
// covers less than half the limit. Venues are deduplicated by id with the
// filtered results keeping priority order.
func (s *RecommendationService) retrieveCandidates(ctx context.Context, coupleMood string, personalityTags []string, region string, req models.RecommendationRequest) ([]models.Venue, error) {
	filter := VenueFilter{
		MoodTag:         coupleMood,
		PersonalityTags: personalityTags,
		Region:          region,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		RadiusKm:        req.RadiusKm,
		Limit:           req.Limit,
	}

	if coupleMood == "" && len(personalityTags) == 0 {
		return s.Venues.FindVenues(ctx, filter)
	}

	filtered, err := s.Venues.FindVenues(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(filtered) >= req.Limit/2 && len(filtered) > 0 {
		return filtered, nil
	}

	broadFilter := filter
	broadFilter.MoodTag = ""
	broadFilter.PersonalityTags = nil
	broad, err := s.Venues.FindVenues(ctx, broadFilter)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(filtered))
	merged := make([]models.Venue, 0, req.Limit)
	for _, venue := range filtered {
		seen[venue.ID] = true
		merged = append(merged, venue)
	}
	for _, venue := range broad {
		if seen[venue.ID] {
			continue
		}
		seen[venue.ID] = true
		merged = append(merged, venue)
		if req.Limit > 0 && len(merged) >= req.Limit {
			break
		}
	}
	return merged, nil
}

func (s *RecommendationService) assembleResponse(
	ranked []models.ScoredVenue,
	explanations ExplanationResult,
	coupleMood string,
	personalityTags []string,
	start time.Time,
) *models.RecommendationResponse {
	recommendations := make([]models.RecommendedVenue, 0, len(ranked))
	for i, sv := range ranked {
		venue := sv.Venue
		avg, _ := venue.AverageRating()

		reason := explanations.Reasons[i]
		if reason == "" {
			reason = defaultMatchReason
		}

		var matchedTags []string
		if coupleMood != "" && strings.EqualFold(venue.MoodTag, coupleMood) {
			matchedTags = append(matchedTags, venue.MoodTag)
		}
		for _, tag := range personalityTags {
			if strings.EqualFold(venue.PersonalityTag, tag) {
				matchedTags = append(matchedTags, venue.PersonalityTag)
				break
			}
		}

		recommendations = append(recommendations, models.RecommendedVenue{
			VenueID:       venue.ID,
			Name:          venue.Name,
			Address:       venue.Address,
			Description:   venue.Description,
			Score:         sv.Score,
			MatchReason:   reason,
			AverageRating: avg,
			ReviewCount:   len(venue.Reviews),
			Images:        emptyIfNil(venue.ImageURLs),
			MatchedTags:   emptyIfNil(matchedTags),
		})
	}

	explanation := explanations.Overview
	if explanation == "" {
		explanation = fmt.Sprintf("Found %d places that match how you both feel today.", len(recommendations))
	}

	return &models.RecommendationResponse{
		Recommendations:  recommendations,
		Explanation:      explanation,
		CoupleMoodType:   coupleMood,
		PersonalityTags:  emptyIfNil(personalityTags),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}

// fallbackResponse retrieves venues with no filters and generic scores. It is
// defensive about its own failures: the worst case is an apology response,
// never a panic reaching the caller.
func (s *RecommendationService) fallbackResponse(ctx context.Context, req models.RecommendationRequest, start time.Time) (resp *models.RecommendationResponse) {
	resp = &models.RecommendationResponse{
		Recommendations: []models.RecommendedVenue{},
		Explanation:     apologyExplanation,
		PersonalityTags: []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			log.Println("Fallback path panicked:", r)
		}
		resp.ProcessingTimeMs = time.Since(start).Milliseconds()
	}()

	venues, err := s.Venues.FindVenues(ctx, VenueFilter{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
		Limit:     req.Limit,
	})
	if err != nil {
		log.Println("Fallback retrieval failed:", err)
		return resp
	}

	recommendations := make([]models.RecommendedVenue, 0, len(venues))
	for _, venue := range venues {
		avg, _ := venue.AverageRating()
		recommendations = append(recommendations, models.RecommendedVenue{
			VenueID:       venue.ID,
			Name:          venue.Name,
			Address:       venue.Address,
			Description:   venue.Description,
			Score:         fallbackScore,
			MatchReason:   fallbackMatchReason,
			AverageRating: avg,
			ReviewCount:   len(venue.Reviews),
			Images:        emptyIfNil(venue.ImageURLs),
			MatchedTags:   []string{},
		})
	}

	resp.Recommendations = recommendations
	if len(recommendations) > 0 {
		resp.Explanation = fallbackExplanation
	}
	return resp
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
