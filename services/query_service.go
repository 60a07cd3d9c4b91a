package services

import (
	"DateMate/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// minQueryLength is the shortest free-text query worth a network call.
const minQueryLength = 5

// queryInterpretTimeout stays well under the retrieval phase budget;
// interpretation blocks the whole pipeline, explanations do not.
// Variable so tests can tighten it.
var queryInterpretTimeout = 2500 * time.Millisecond

var knownPersonalityTags = map[string]bool{
	TagRomantic:     true,
	TagIntellectual: true,
	TagCozy:         true,
	TagAdventurous:  true,
	TagCheerful:     true,
	TagHarmonious:   true,
}

type QueryService struct {
	TextGenerator TextGenerator
}

// NewQueryService initializes QueryService with the OpenAI text generator
func NewQueryService() *QueryService {
	return &QueryService{
		TextGenerator: NewOpenAIService(),
	}
}

// InterpretQuery extracts structured signals from a free-text query. Empty or
// too-short queries skip the external call. Every failure degrades to the
// empty context; this never returns an error to the pipeline.
func (s *QueryService) InterpretQuery(ctx context.Context, query string) models.ParsedQueryContext {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return models.ParsedQueryContext{}
	}

	systemPrompt := buildQuerySystemPrompt()
	response, err := s.TextGenerator.Complete(ctx, systemPrompt, query, queryInterpretTimeout)
	if err != nil {
		log.Println("Query interpretation skipped:", err)
		return models.ParsedQueryContext{}
	}

	var parsed models.ParsedQueryContext
	if err := json.Unmarshal([]byte(cleanJSONResponse(response)), &parsed); err != nil {
		log.Println("Error parsing query interpretation:", err)
		return models.ParsedQueryContext{}
	}

	return sanitizeParsedContext(parsed)
}

func buildQuerySystemPrompt() string {
	return fmt.Sprintf(
		"You extract date-planning signals from a short user query. "+
			"Respond with a single JSON object and nothing else:\n\n"+
			"{\"intent\": \"...\", \"mood\": \"...\" or null, \"personality_tags\": [\"...\"], \"region\": \"...\" or null}\n\n"+
			"- intent: one of romantic_date, casual_outing, celebration, comfort, adventure, unknown\n"+
			"- mood: one of %s, or null when the query carries no mood\n"+
			"- personality_tags: zero or more of %s\n"+
			"- region: the place name mentioned in the query, or null\n\n"+
			"Do not invent values outside these lists and do not add explanations outside the JSON.",
		strings.Join(knownMoodNames(), ", "),
		strings.Join(knownTagNames(), ", "),
	)
}

func knownMoodNames() []string {
	names := make([]string, 0, len(moodClasses))
	for name := range moodClasses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func knownTagNames() []string {
	names := make([]string, 0, len(knownPersonalityTags))
	for name := range knownPersonalityTags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sanitizeParsedContext drops values outside the fixed vocabulary the prompt
// allows; the model occasionally improvises anyway.
func sanitizeParsedContext(parsed models.ParsedQueryContext) models.ParsedQueryContext {
	parsed.Mood = strings.ToLower(strings.TrimSpace(parsed.Mood))
	if _, ok := moodClasses[parsed.Mood]; !ok {
		parsed.Mood = ""
	}

	var tags []string
	for _, tag := range parsed.PersonalityTags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if knownPersonalityTags[tag] {
			tags = append(tags, tag)
		}
	}
	parsed.PersonalityTags = tags
	parsed.Region = strings.TrimSpace(parsed.Region)
	parsed.Intent = strings.TrimSpace(parsed.Intent)
	return parsed
}
