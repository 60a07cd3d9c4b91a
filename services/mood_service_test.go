package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCoupleMoodPairs(t *testing.T) {
	s := &MoodService{}

	tests := []struct {
		name  string
		mood1 string
		mood2 string
		want  string
	}{
		{"both happy", "happy", "happy", "shared happiness"},
		{"both hostile", "angry", "annoyed", "tension"},
		{"happy plus angry resolves to imbalance, not shared happiness", "happy", "angry", "emotional imbalance"},
		{"angry plus happy is order independent", "angry", "happy", "emotional imbalance"},
		{"hostile plus sad", "angry", "sad", "tension"},
		{"both sad", "sad", "gloomy", "shared melancholy"},
		{"sad plus happy seeks comfort", "sad", "happy", "comfort seeking"},
		{"both anxious", "anxious", "stressed", "stress relief"},
		{"anxious plus calm", "anxious", "relaxed", "reassurance"},
		{"both romantic", "romantic", "loving", "deep romance"},
		{"romantic plus happy", "romantic", "happy", "romantic spark"},
		{"both calm", "calm", "peaceful", "peaceful together"},
		{"happy plus calm", "happy", "relaxed", "balanced joy"},
		{"both tired", "tired", "bored", "recharge"},
		{"case insensitive", "HAPPY", "Excited", "shared happiness"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ResolveCoupleMood(tt.mood1, tt.mood2))
		})
	}
}

func TestResolveCoupleMoodSingleMood(t *testing.T) {
	s := &MoodService{}

	// A single mood pairs with itself.
	assert.Equal(t, "shared happiness", s.ResolveCoupleMood("happy", ""))
	assert.Equal(t, "tension", s.ResolveCoupleMood("", "angry"))
}

func TestResolveCoupleMoodUnknownMoods(t *testing.T) {
	s := &MoodService{}

	assert.Equal(t, DefaultCoupleMood, s.ResolveCoupleMood("confuzzled", "discombobulated"))
	assert.Equal(t, DefaultCoupleMood, s.ResolveCoupleMood("", ""))

	// One known mood carries the pair.
	assert.Equal(t, "shared happiness", s.ResolveCoupleMood("happy", "confuzzled"))
}
