package services

import (
	"DateMate/models"
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// explanationTimeout is wider than the query-interpretation budget: a slow
// answer here only costs explanation quality, not the whole pipeline.
// Variable so tests can tighten it.
var explanationTimeout = 5 * time.Second

var reasonLinePattern = regexp.MustCompile(`^\[(\d+)\]\s*(.+)$`)

// ExplanationResult carries the optional AI-generated texts. Callers must
// substitute defaults for anything absent.
type ExplanationResult struct {
	Overview string
	Reasons  map[int]string // keyed by zero-based rank
}

type ExplanationService struct {
	TextGenerator TextGenerator
}

// NewExplanationService initializes ExplanationService with the OpenAI text generator
func NewExplanationService() *ExplanationService {
	return &ExplanationService{
		TextGenerator: NewOpenAIService(),
	}
}

// GenerateExplanations asks the model for an overview plus one short reason
// per ranked venue. Timeouts and malformed output degrade to an empty result,
// never to an error.
func (s *ExplanationService) GenerateExplanations(
	ctx context.Context,
	ranked []models.ScoredVenue,
	coupleMood string,
	personalityTags []string,
	query string,
) ExplanationResult {
	result := ExplanationResult{Reasons: make(map[int]string)}
	if len(ranked) == 0 {
		return result
	}

	systemPrompt := "You explain date venue recommendations to a couple. " +
		"Respond in plain text using exactly this line format:\n" +
		"OVERVIEW: one or two sentences about the list as a whole\n" +
		"[1] one short sentence on why venue 1 fits\n" +
		"[2] one short sentence on why venue 2 fits\n" +
		"...one [n] line per venue, nothing else. Use only the provided data, never invent details."

	userPrompt := buildExplanationContext(ranked, coupleMood, personalityTags, query)

	response, err := s.TextGenerator.Complete(ctx, systemPrompt, userPrompt, explanationTimeout)
	if err != nil {
		log.Println("Explanation generation skipped:", err)
		return result
	}

	return parseExplanationResponse(response)
}

// buildExplanationContext renders the ranked venues as the fixed-format
// context block the prompt refers to.
func buildExplanationContext(ranked []models.ScoredVenue, coupleMood string, personalityTags []string, query string) string {
	var b strings.Builder

	if coupleMood != "" {
		fmt.Fprintf(&b, "Couple mood: %s\n", coupleMood)
	}
	if len(personalityTags) > 0 {
		fmt.Fprintf(&b, "Personality: %s\n", strings.Join(personalityTags, ", "))
	}
	if query != "" {
		fmt.Fprintf(&b, "User query: %s\n", query)
	}
	b.WriteString("\nVenues:\n")

	for i, sv := range ranked {
		venue := sv.Venue
		avg, count := venue.AverageRating()
		fmt.Fprintf(&b, "[%d] %s | %s | score %.1f | mood: %s | personality: %s | rating %.1f (%d reviews)\n",
			i+1, venue.Name, venue.Address, sv.Score, venue.MoodTag, venue.PersonalityTag, avg, count)
		if venue.Description != "" {
			fmt.Fprintf(&b, "%s\n", venue.Description)
		}
	}
	return b.String()
}

// parseExplanationResponse reads the line-oriented reply. Unparseable lines
// are ignored rather than failing the whole response.
func parseExplanationResponse(response string) ExplanationResult {
	result := ExplanationResult{Reasons: make(map[int]string)}

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if after, ok := strings.CutPrefix(line, "OVERVIEW:"); ok {
			result.Overview = strings.TrimSpace(after)
			continue
		}
		if m := reasonLinePattern.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 {
				continue
			}
			result.Reasons[n-1] = strings.TrimSpace(m[2])
		}
	}
	return result
}
