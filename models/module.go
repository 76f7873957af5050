package models

import (
	"encoding/json"
	"fmt"
)

type ActivityType string

const (
	ActivityFlashcard      ActivityType = "flashcard"
	ActivityWordBreakdown  ActivityType = "wordBreakdown"
	ActivityDragAndDrop    ActivityType = "dragAndDrop"
	ActivityFillInTheBlank ActivityType = "fillInTheBlank"
	ActivityCaseScenario   ActivityType = "caseScenario"
)

type FlashcardContent struct {
	Front string `bson:"front" json:"front"`
	Back  string `bson:"back" json:"back"`
}

type WordBreakdownContent struct {
	Words []WordBreakdown `bson:"words" json:"words"`
}

type MatchPair struct {
	Latin   string `bson:"latin" json:"latin"`
	English string `bson:"english" json:"english"`
}

type DragAndDropContent struct {
	Question string      `bson:"question" json:"question"`
	Pairs    []MatchPair `bson:"pairs" json:"pairs"`
}

type FillInTheBlankContent struct {
	Question       string   `bson:"question" json:"question"`
	Options        []string `bson:"options" json:"options"`
	CorrectAnswers []string `bson:"correctAnswers" json:"correctAnswers"`
}

type CaseScenarioContent struct {
	Scenario      string   `bson:"scenario" json:"scenario"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correctAnswer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

// Activity is one exercise of a module. Exactly one payload pointer matching
// Type is set. In JSON the payload is flattened into a single "content" field.
type Activity struct {
	ID        string       `bson:"id" json:"id"`
	Type      ActivityType `bson:"type" json:"type"`
	XPReward  int          `bson:"xpReward" json:"xpReward"`
	Completed bool         `bson:"completed" json:"completed"`

	Flashcard      *FlashcardContent      `bson:"flashcard,omitempty" json:"-"`
	WordBreakdown  *WordBreakdownContent  `bson:"wordBreakdown,omitempty" json:"-"`
	DragAndDrop    *DragAndDropContent    `bson:"dragAndDrop,omitempty" json:"-"`
	FillInTheBlank *FillInTheBlankContent `bson:"fillInTheBlank,omitempty" json:"-"`
	CaseScenario   *CaseScenarioContent   `bson:"caseScenario,omitempty" json:"-"`
}

// Content returns the payload matching Type, or nil.
func (a Activity) Content() any {
	switch a.Type {
	case ActivityFlashcard:
		return a.Flashcard
	case ActivityWordBreakdown:
		return a.WordBreakdown
	case ActivityDragAndDrop:
		return a.DragAndDrop
	case ActivityFillInTheBlank:
		return a.FillInTheBlank
	case ActivityCaseScenario:
		return a.CaseScenario
	}
	return nil
}

type activityJSON struct {
	ID        string          `json:"id"`
	Type      ActivityType    `json:"type"`
	Content   json.RawMessage `json:"content"`
	XPReward  int             `json:"xpReward"`
	Completed bool            `json:"completed"`
}

func (a Activity) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(a.Content())
	if err != nil {
		return nil, err
	}
	return json.Marshal(activityJSON{
		ID:        a.ID,
		Type:      a.Type,
		Content:   content,
		XPReward:  a.XPReward,
		Completed: a.Completed,
	})
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	var raw activityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Activity{ID: raw.ID, Type: raw.Type, XPReward: raw.XPReward, Completed: raw.Completed}

	var target any
	switch raw.Type {
	case ActivityFlashcard:
		a.Flashcard = &FlashcardContent{}
		target = a.Flashcard
	case ActivityWordBreakdown:
		a.WordBreakdown = &WordBreakdownContent{}
		target = a.WordBreakdown
	case ActivityDragAndDrop:
		a.DragAndDrop = &DragAndDropContent{}
		target = a.DragAndDrop
	case ActivityFillInTheBlank:
		a.FillInTheBlank = &FillInTheBlankContent{}
		target = a.FillInTheBlank
	case ActivityCaseScenario:
		a.CaseScenario = &CaseScenarioContent{}
		target = a.CaseScenario
	default:
		return fmt.Errorf("unknown activity type %q", raw.Type)
	}

	if len(raw.Content) == 0 || string(raw.Content) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw.Content, target); err != nil {
		return fmt.Errorf("decode %s content: %w", raw.Type, err)
	}
	return nil
}

// LearningModule is the ordered list of activities teaching one maxim
type LearningModule struct {
	ID         string     `bson:"_id" json:"id"`
	MaximID    string     `bson:"maximId" json:"maximId"`
	Activities []Activity `bson:"activities" json:"activities"`
	TotalXP    int        `bson:"totalXp" json:"totalXp"`
	Completed  bool       `bson:"completed" json:"completed"`
}

// Clone copies the activity slice; payloads are shared since they are never mutated.
func (m LearningModule) Clone() LearningModule {
	m.Activities = append([]Activity(nil), m.Activities...)
	return m
}

// LessonStatus is the per-user state of a module
type LessonStatus string

const (
	LessonNotStarted LessonStatus = "not-started"
	LessonInProgress LessonStatus = "in-progress"
	LessonCompleted  LessonStatus = "completed"
)

// LessonState reports where a user is inside a module
type LessonState struct {
	Status        LessonStatus `json:"status"`
	ActivityIndex int          `json:"activityIndex"`
	Progress      float64      `json:"progress"`
}

// Lesson is a module overlaid with one user's completion flags
type Lesson struct {
	Module LearningModule `json:"module"`
	Maxim  *LegalMaxim    `json:"maxim,omitempty"`
	State  LessonState    `json:"state"`
}

// ActivitySubmission is an optional answer checked before completion.
// Selected holds chosen options for fill-in-the-blank, Choice the index for
// case scenarios, Matches latin→english for drag-and-drop.
type ActivitySubmission struct {
	Selected []string          `json:"selected,omitempty"`
	Choice   *int              `json:"choice,omitempty"`
	Matches  map[string]string `json:"matches,omitempty"`
}
