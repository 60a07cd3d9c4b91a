package services

import (
	"DateMate/models"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture() []models.ScoredVenue {
	return []models.ScoredVenue{
		{Venue: models.Venue{ID: "v1", Name: "Luna Rooftop", Address: "12 Hill St", MoodTag: "romantic spark"}, Score: 88.5},
		{Venue: models.Venue{ID: "v2", Name: "Cafe Ember", Address: "3 Oak Ave", PersonalityTag: TagCozy}, Score: 74.0},
	}
}

func TestGenerateExplanationsParsesLineFormat(t *testing.T) {
	gen := &fakeTextGenerator{
		response: "OVERVIEW: Two spots that suit a quiet evening together.\n" +
			"[1] Luna Rooftop matches your romantic mood with a view.\n" +
			"[2] Cafe Ember is cozy and unhurried.\n",
	}
	s := &ExplanationService{TextGenerator: gen}

	got := s.GenerateExplanations(context.Background(), rankedFixture(), "romantic spark", []string{TagCozy}, "quiet evening")
	assert.Equal(t, "Two spots that suit a quiet evening together.", got.Overview)
	require.Len(t, got.Reasons, 2)
	assert.Equal(t, "Luna Rooftop matches your romantic mood with a view.", got.Reasons[0])
	assert.Equal(t, "Cafe Ember is cozy and unhurried.", got.Reasons[1])
}

func TestGenerateExplanationsIgnoresUnparseableLines(t *testing.T) {
	gen := &fakeTextGenerator{
		response: "Sure! Here you go:\nOVERVIEW: A short list.\n[not-a-number] nope\n[2] Second venue works.\n",
	}
	s := &ExplanationService{TextGenerator: gen}

	got := s.GenerateExplanations(context.Background(), rankedFixture(), "", nil, "")
	assert.Equal(t, "A short list.", got.Overview)
	require.Len(t, got.Reasons, 1)
	assert.Equal(t, "Second venue works.", got.Reasons[1])
}

func TestGenerateExplanationsFailureYieldsEmptyResult(t *testing.T) {
	gen := &fakeTextGenerator{err: errors.New("upstream unavailable")}
	s := &ExplanationService{TextGenerator: gen}

	got := s.GenerateExplanations(context.Background(), rankedFixture(), "", nil, "")
	assert.Empty(t, got.Overview)
	assert.Empty(t, got.Reasons)
}

func TestGenerateExplanationsTimeoutYieldsEmptyResult(t *testing.T) {
	old := explanationTimeout
	explanationTimeout = 50 * time.Millisecond
	defer func() { explanationTimeout = old }()

	gen := &fakeTextGenerator{response: "OVERVIEW: too late", delay: time.Hour}
	s := &ExplanationService{TextGenerator: gen}

	done := make(chan ExplanationResult, 1)
	go func() {
		done <- s.GenerateExplanations(context.Background(), rankedFixture(), "", nil, "")
	}()

	select {
	case got := <-done:
		assert.Empty(t, got.Overview)
		assert.Empty(t, got.Reasons)
	case <-time.After(explanationTimeout + time.Second):
		t.Fatal("explanation generation did not respect its timeout")
	}
}

func TestGenerateExplanationsEmptyRankingSkipsCall(t *testing.T) {
	gen := &fakeTextGenerator{response: "OVERVIEW: nothing"}
	s := &ExplanationService{TextGenerator: gen}

	got := s.GenerateExplanations(context.Background(), nil, "", nil, "")
	assert.Empty(t, got.Overview)
	assert.Equal(t, 0, gen.calls)
}

func TestBuildExplanationContextIncludesVenueData(t *testing.T) {
	block := buildExplanationContext(rankedFixture(), "romantic spark", []string{TagCozy}, "quiet evening")

	assert.Contains(t, block, "Couple mood: romantic spark")
	assert.Contains(t, block, "Personality: cozy")
	assert.Contains(t, block, "User query: quiet evening")
	assert.Contains(t, block, "[1] Luna Rooftop | 12 Hill St | score 88.5")
	assert.True(t, strings.Contains(block, "[2] Cafe Ember"))
}
