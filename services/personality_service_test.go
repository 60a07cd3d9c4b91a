package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePairTagsBothExtrovertOverridesGrouping(t *testing.T) {
	s := NewPersonalityService()

	// ENFP and ENFJ share the idealist group, but the both-extrovert rule
	// fires first.
	assert.Equal(t, []string{TagCheerful}, s.ResolvePairTags("ENFP", "ENFJ"))
	assert.Equal(t, []string{TagCheerful}, s.ResolvePairTags("ESTJ", "ENTP"))
}

func TestResolvePairTagsSameTemperamentGroup(t *testing.T) {
	s := NewPersonalityService()

	tests := []struct {
		code1 string
		code2 string
		want  string
	}{
		{"INFJ", "INFP", TagRomantic},
		{"INTJ", "INTP", TagIntellectual},
		{"ISTJ", "ISFJ", TagCozy},
		{"ISTP", "ISFP", TagAdventurous},
	}
	for _, tt := range tests {
		t.Run(tt.code1+"-"+tt.code2, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, s.ResolvePairTags(tt.code1, tt.code2))
		})
	}
}

func TestResolvePairTagsDifferingGroups(t *testing.T) {
	s := NewPersonalityService()

	assert.Equal(t, []string{TagHarmonious}, s.ResolvePairTags("INFJ", "ISTJ"))
	assert.Equal(t, []string{TagHarmonious}, s.ResolvePairTags("INTP", "ISFP"))
}

func TestResolvePairTagsSingleCode(t *testing.T) {
	s := NewPersonalityService()

	assert.Equal(t, []string{TagRomantic}, s.ResolvePairTags("INFP", ""))
	assert.Equal(t, []string{TagIntellectual}, s.ResolvePairTags("", "ENTJ"))
	assert.Equal(t, []string{TagAdventurous}, s.ResolvePairTags("estp", ""))
}

func TestResolvePairTagsMalformedCode(t *testing.T) {
	s := NewPersonalityService()

	assert.Equal(t, []string{TagHarmonious}, s.ResolvePairTags("IN", "INFP"))
	assert.Equal(t, []string{TagHarmonious}, s.ResolvePairTags("X", ""))
}

func TestResolvePairTagsCacheDeterminism(t *testing.T) {
	s := NewPersonalityService()

	first := s.ResolvePairTags("ENFP", "ENFJ")
	second := s.ResolvePairTags("enfp", "enfj")
	assert.Equal(t, first, second)

	// The normalized pair is cached once.
	s.mu.RLock()
	defer s.mu.RUnlock()
	require.Len(t, s.cache, 1)
}

func TestResolvePairTagsConcurrentCallersAgree(t *testing.T) {
	s := NewPersonalityService()

	const goroutines = 16
	results := make([][]string, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.ResolvePairTags("INFJ", "INFP")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, []string{TagRomantic}, got, fmt.Sprintf("goroutine %d", i))
	}
}
