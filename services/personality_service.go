package services

import (
	"strings"
	"sync"
)

// Personality tags derived from MBTI temperament groups.
const (
	TagRomantic     = "romantic"
	TagIntellectual = "intellectual"
	TagCozy         = "cozy"
	TagAdventurous  = "adventurous"
	TagCheerful     = "cheerful"
	TagHarmonious   = "harmonious"
)

// Temperament groups per the classic Keirsey grouping of the middle letters.
const (
	temperamentIdealist = "idealist" // N_F
	temperamentRational = "rational" // N_T
	temperamentGuardian = "guardian" // S_J
	temperamentArtisan  = "artisan"  // S_P
)

var temperamentTags = map[string]string{
	temperamentIdealist: TagRomantic,
	temperamentRational: TagIntellectual,
	temperamentGuardian: TagCozy,
	temperamentArtisan:  TagAdventurous,
}

type PersonalityService struct {
	mu    sync.RWMutex
	cache map[string][]string
}

// NewPersonalityService creates a PersonalityService with an empty pair cache
func NewPersonalityService() *PersonalityService {
	return &PersonalityService{
		cache: make(map[string][]string),
	}
}

// temperamentGroup classifies a 4-letter MBTI code by its letters 2 to 4.
// Malformed codes return "".
func temperamentGroup(code string) string {
	if len(code) < 4 {
		return ""
	}
	switch {
	case code[1] == 'N' && code[3] == 'F':
		return temperamentIdealist
	case code[1] == 'N' && code[3] == 'T':
		return temperamentRational
	case code[1] == 'S' && code[3] == 'J':
		return temperamentGuardian
	case code[1] == 'S' && code[3] == 'P':
		return temperamentArtisan
	}
	return ""
}

// ResolvePairTags maps one or two MBTI codes to a single descriptive tag,
// returned as a one-element list. The second code may be empty. Results are
// cached per normalized pair; concurrent callers always observe the same
// value for the same pair.
func (s *PersonalityService) ResolvePairTags(code1, code2 string) []string {
	code1 = strings.ToUpper(strings.TrimSpace(code1))
	code2 = strings.ToUpper(strings.TrimSpace(code2))
	key := code1 + "-" + code2

	s.mu.RLock()
	tags, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return tags
	}

	tags = []string{resolvePairTag(code1, code2)}

	s.mu.Lock()
	// Another goroutine may have stored the pair meanwhile; keep its value so
	// every caller sees one consistent result.
	if existing, ok := s.cache[key]; ok {
		tags = existing
	} else {
		s.cache[key] = tags
	}
	s.mu.Unlock()

	return tags
}

func resolvePairTag(code1, code2 string) string {
	if code2 == "" {
		return singleCodeTag(code1)
	}
	if code1 == "" {
		return singleCodeTag(code2)
	}
	if len(code1) < 4 || len(code2) < 4 {
		return TagHarmonious
	}

	// Two extroverts override any temperament grouping.
	if code1[0] == 'E' && code2[0] == 'E' {
		return TagCheerful
	}

	group1 := temperamentGroup(code1)
	group2 := temperamentGroup(code2)
	if group1 != "" && group1 == group2 {
		return temperamentTags[group1]
	}
	return TagHarmonious
}

func singleCodeTag(code string) string {
	group := temperamentGroup(code)
	if tag, ok := temperamentTags[group]; ok {
		return tag
	}
	return TagHarmonious
}
