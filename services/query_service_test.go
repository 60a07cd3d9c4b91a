package services

import (
	"DateMate/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeTextGenerator scripts the text-generation boundary for tests.
type fakeTextGenerator struct {
	response string
	err      error
	delay    time.Duration
	calls    int
}

func (f *fakeTextGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string, timeout time.Duration) (string, error) {
	f.calls++
	if f.delay > 0 {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.response, f.err
}

func TestInterpretQueryShortQuerySkipsNetwork(t *testing.T) {
	gen := &fakeTextGenerator{response: `{"intent":"unknown"}`}
	s := &QueryService{TextGenerator: gen}

	assert.Equal(t, models.ParsedQueryContext{}, s.InterpretQuery(context.Background(), ""))
	assert.Equal(t, models.ParsedQueryContext{}, s.InterpretQuery(context.Background(), "   hi "))
	assert.Equal(t, 0, gen.calls)
}

func TestInterpretQueryParsesSignals(t *testing.T) {
	gen := &fakeTextGenerator{
		response: `{"intent":"romantic_date","mood":"romantic","personality_tags":["cozy"],"region":"Brooklyn"}`,
	}
	s := &QueryService{TextGenerator: gen}

	got := s.InterpretQuery(context.Background(), "somewhere quiet and romantic in Brooklyn")
	assert.Equal(t, "romantic_date", got.Intent)
	assert.Equal(t, "romantic", got.Mood)
	assert.Equal(t, []string{TagCozy}, got.PersonalityTags)
	assert.Equal(t, "Brooklyn", got.Region)
}

func TestInterpretQueryStripsMarkdownFences(t *testing.T) {
	gen := &fakeTextGenerator{
		response: "```json\n{\"intent\":\"comfort\",\"mood\":\"sad\",\"personality_tags\":[],\"region\":null}\n```",
	}
	s := &QueryService{TextGenerator: gen}

	got := s.InterpretQuery(context.Background(), "we both had a rough week")
	assert.Equal(t, "comfort", got.Intent)
	assert.Equal(t, "sad", got.Mood)
}

func TestInterpretQueryDropsUnknownVocabulary(t *testing.T) {
	gen := &fakeTextGenerator{
		response: `{"intent":"adventure","mood":"ecstatic","personality_tags":["cozy","daring"],"region":""}`,
	}
	s := &QueryService{TextGenerator: gen}

	got := s.InterpretQuery(context.Background(), "surprise us with something wild")
	assert.Empty(t, got.Mood)
	assert.Equal(t, []string{TagCozy}, got.PersonalityTags)
}

func TestInterpretQueryGenerationErrorYieldsEmptyContext(t *testing.T) {
	gen := &fakeTextGenerator{err: errors.New("upstream unavailable")}
	s := &QueryService{TextGenerator: gen}

	assert.Equal(t, models.ParsedQueryContext{}, s.InterpretQuery(context.Background(), "a nice place downtown"))
}

func TestInterpretQueryTimeoutYieldsEmptyContext(t *testing.T) {
	old := queryInterpretTimeout
	queryInterpretTimeout = 50 * time.Millisecond
	defer func() { queryInterpretTimeout = old }()

	gen := &fakeTextGenerator{response: `{"intent":"comfort"}`, delay: 10 * time.Second}
	s := &QueryService{TextGenerator: gen}

	done := make(chan models.ParsedQueryContext, 1)
	go func() {
		done <- s.InterpretQuery(context.Background(), "a nice place downtown")
	}()

	select {
	case got := <-done:
		assert.Equal(t, models.ParsedQueryContext{}, got)
	case <-time.After(queryInterpretTimeout + time.Second):
		t.Fatal("interpretation did not respect its timeout")
	}
}

func TestInterpretQueryMalformedJSONYieldsEmptyContext(t *testing.T) {
	gen := &fakeTextGenerator{response: "certainly! here is the JSON you asked for"}
	s := &QueryService{TextGenerator: gen}

	assert.Equal(t, models.ParsedQueryContext{}, s.InterpretQuery(context.Background(), "a nice place downtown"))
}
