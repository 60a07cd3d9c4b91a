package services

import (
	"DateMate/config/database"
	"DateMate/models"
	"DateMate/utils"
	"context"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// DefaultCoupleMood is returned when neither mood name is recognized.
const DefaultCoupleMood = "neutral"

// Mood classes used by the pair rules. Every known mood name maps to one class.
const (
	moodClassHostile  = "hostile"
	moodClassSad      = "sad"
	moodClassAnxious  = "anxious"
	moodClassTired    = "tired"
	moodClassExcited  = "excited"
	moodClassCalm     = "calm"
	moodClassRomantic = "romantic"
)

var moodClasses = map[string]string{
	"angry":        moodClassHostile,
	"annoyed":      moodClassHostile,
	"irritated":    moodClassHostile,
	"furious":      moodClassHostile,
	"sad":          moodClassSad,
	"gloomy":       moodClassSad,
	"lonely":       moodClassSad,
	"heartbroken":  moodClassSad,
	"anxious":      moodClassAnxious,
	"stressed":     moodClassAnxious,
	"nervous":      moodClassAnxious,
	"tired":        moodClassTired,
	"bored":        moodClassTired,
	"exhausted":    moodClassTired,
	"happy":        moodClassExcited,
	"excited":      moodClassExcited,
	"joyful":       moodClassExcited,
	"cheerful":     moodClassExcited,
	"calm":         moodClassCalm,
	"relaxed":      moodClassCalm,
	"peaceful":     moodClassCalm,
	"content":      moodClassCalm,
	"romantic":     moodClassRomantic,
	"loving":       moodClassRomantic,
	"affectionate": moodClassRomantic,
}

type moodPairRule struct {
	matches func(class1, class2 string) bool
	label   string
}

func bothClass(class1, class2, want string) bool {
	return class1 == want && class2 == want
}

func eitherClass(class1, class2, want string) bool {
	return class1 == want || class2 == want
}

func eitherClassOf(class1, class2 string, wants ...string) bool {
	for _, want := range wants {
		if eitherClass(class1, class2, want) {
			return true
		}
	}
	return false
}

// moodPairRules is evaluated top to bottom and the first match wins, so the
// order encodes priority. Hostile-presence rules must stay above the positive
// rules: happy+angry has to resolve to "emotional imbalance", never to
// "shared happiness".
var moodPairRules = []moodPairRule{
	{func(c1, c2 string) bool { return bothClass(c1, c2, moodClassHostile) }, "tension"},
	{func(c1, c2 string) bool {
		return eitherClass(c1, c2, moodClassHostile) &&
			eitherClassOf(c1, c2, moodClassExcited, moodClassCalm, moodClassRomantic)
	}, "emotional imbalance"},
	{func(c1, c2 string) bool { return eitherClass(c1, c2, moodClassHostile) }, "tension"},
	{func(c1, c2 string) bool { return bothClass(c1, c2, moodClassSad) }, "shared melancholy"},
	{func(c1, c2 string) bool { return eitherClass(c1, c2, moodClassSad) }, "comfort seeking"},
	{func(c1, c2 string) bool { return bothClass(c1, c2, moodClassAnxious) }, "stress relief"},
	{func(c1, c2 string) bool { return eitherClass(c1, c2, moodClassAnxious) }, "reassurance"},
	{func(c1, c2 string) bool { return bothClass(c1, c2, moodClassRomantic) }, "deep romance"},
	{func(c1, c2 string) bool { return eitherClass(c1, c2, moodClassRomantic) }, "romantic spark"},
	{func(c1, c2 string) bool { return bothClass(c1, c2, moodClassExcited) }, "shared happiness"},
	{func(c1, c2 string) bool { return bothClass(c1, c2, moodClassCalm) }, "peaceful together"},
	{func(c1, c2 string) bool {
		return eitherClass(c1, c2, moodClassExcited) && eitherClass(c1, c2, moodClassCalm)
	}, "balanced joy"},
	{func(c1, c2 string) bool { return eitherClass(c1, c2, moodClassTired) }, "recharge"},
}

type MoodService struct {
	FirestoreClient *firestore.Client
}

// NewMoodService initializes MoodService with Firestore
func NewMoodService() *MoodService {
	return &MoodService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// ResolveCoupleMood maps two mood names to one couple-mood label. A single
// mood may be passed by leaving the second name empty; it then pairs with
// itself. Unknown names on both sides yield DefaultCoupleMood.
func (s *MoodService) ResolveCoupleMood(mood1, mood2 string) string {
	mood1 = strings.ToLower(strings.TrimSpace(mood1))
	mood2 = strings.ToLower(strings.TrimSpace(mood2))
	if mood2 == "" {
		mood2 = mood1
	}
	if mood1 == "" {
		mood1 = mood2
	}

	// Reorder alphabetically so rule matching is order-independent.
	if mood1 > mood2 {
		mood1, mood2 = mood2, mood1
	}

	class1, ok1 := moodClasses[mood1]
	class2, ok2 := moodClasses[mood2]
	if !ok1 && !ok2 {
		return DefaultCoupleMood
	}
	// A single recognized mood pairs with itself.
	if !ok1 {
		class1 = class2
	}
	if !ok2 {
		class2 = class1
	}

	for _, rule := range moodPairRules {
		if rule.matches(class1, class2) {
			return rule.label
		}
	}
	return DefaultCoupleMood
}

// GetMoodNameByID looks a mood name up in the moods collection
func (s *MoodService) GetMoodNameByID(ctx context.Context, moodID int) (string, error) {
	iter := s.FirestoreClient.Collection("moods").
		Where("id", "==", moodID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return "", utils.NewCustomError(http.StatusNotFound, "Mood not found")
	}
	if err != nil {
		return "", err
	}

	name, ok := doc.Data()["name"].(string)
	if !ok {
		return "", utils.NewCustomError(http.StatusInternalServerError, "Mood document has no name")
	}
	return name, nil
}

// GetAllMoods returns the mood vocabulary for client mood pickers
func (s *MoodService) GetAllMoods(ctx context.Context) ([]models.Mood, error) {
	docs, err := s.FirestoreClient.Collection("moods").Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	var moods []models.Mood
	for _, doc := range docs {
		var mood models.Mood
		if err := doc.DataTo(&mood); err != nil {
			return nil, err
		}
		moods = append(moods, mood)
	}
	return moods, nil
}
