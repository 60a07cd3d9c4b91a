package services

import (
	"DateMate/models"
	"sort"
	"strings"
)

// Sub-score maxima. The weights are fixed for behavioral parity; treat them
// as calibration candidates, not design law.
const (
	moodScoreMax        = 30.0
	personalityScoreMax = 25.0
	ratingScoreMax      = 20.0
	popularityScoreMax  = 15.0
	budgetScoreMax      = 10.0

	// No per-venue budget field exists yet; every venue gets this constant
	// whenever the request supplies a budget level.
	// TODO: score against venue price levels once ingestion stores them.
	budgetScorePlaceholder = 7.0
)

// ScoringSignals are the request-level signals a venue is scored against.
type ScoringSignals struct {
	CoupleMood      string
	PersonalityTags []string
	HasBudgetLevel  bool
}

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// ScoreVenue computes the composite 0-100 score for one venue. Five bounded
// sub-scores are summed and rescaled over the maxima that apply; the budget
// sub-score only counts when a budget level was supplied.
func (s *ScoringService) ScoreVenue(venue models.Venue, signals ScoringSignals) float64 {
	total := s.moodScore(venue, signals.CoupleMood) +
		s.personalityScore(venue, signals.PersonalityTags) +
		s.ratingScore(venue) +
		s.popularityScore(venue)
	maxTotal := moodScoreMax + personalityScoreMax + ratingScoreMax + popularityScoreMax

	if signals.HasBudgetLevel {
		total += budgetScorePlaceholder
		maxTotal += budgetScoreMax
	}

	return total / maxTotal * 100
}

func (s *ScoringService) moodScore(venue models.Venue, coupleMood string) float64 {
	if coupleMood == "" {
		return 15
	}
	if strings.EqualFold(venue.MoodTag, coupleMood) {
		return moodScoreMax
	}
	return 10
}

func (s *ScoringService) personalityScore(venue models.Venue, tags []string) float64 {
	if len(tags) == 0 {
		return 12
	}
	for _, tag := range tags {
		if strings.EqualFold(venue.PersonalityTag, tag) {
			return personalityScoreMax
		}
	}
	return 5
}

func (s *ScoringService) ratingScore(venue models.Venue) float64 {
	avg, count := venue.AverageRating()
	if count == 0 {
		return 10
	}
	// Ingestion stores ratings as-is, so clamp: a dirty value above 5 must
	// not push the composite score past its bound.
	if avg > 5 {
		avg = 5
	}
	return avg / 5 * ratingScoreMax
}

func (s *ScoringService) popularityScore(venue models.Venue) float64 {
	switch count := len(venue.Reviews); {
	case count >= 100:
		return popularityScoreMax
	case count >= 50:
		return 13
	case count >= 20:
		return 11
	case count >= 10:
		return 9
	case count >= 1:
		return 7
	default:
		return 5
	}
}

// RankVenues scores every candidate and returns the top limit venues ordered
// by descending score. The sort is stable, so ties keep retrieval order.
func (s *ScoringService) RankVenues(venues []models.Venue, signals ScoringSignals, limit int) []models.ScoredVenue {
	scored := make([]models.ScoredVenue, 0, len(venues))
	for _, venue := range venues {
		scored = append(scored, models.ScoredVenue{
			Venue: venue,
			Score: s.ScoreVenue(venue, signals),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
