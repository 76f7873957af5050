package models

import "time"

type QuestionType string

const (
	QuestionMCQ         QuestionType = "mcq"
	QuestionTranslation QuestionType = "translation"
)

// Question is one LexiQuest prompt. CorrectAnswer is a letter for MCQs and
// the Latin maxim for translations.
type Question struct {
	Type          QuestionType `json:"type"`
	QuestionText  string       `json:"questionText"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"-"`
	Fallback      bool         `json:"fallback,omitempty"`
}

// QuizSession tracks one run of LexiQuest
type QuizSession struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Index        int        `json:"index"`
	Questions    []Question `json:"-"`
	Answers      []string   `json:"-"`
	CorrectCount int        `json:"correctCount"`
	Rewards      int        `json:"rewards"`
	Finished     bool       `json:"finished"`
	StartedAt    time.Time  `json:"startedAt"`
}

// AnswerResult is returned after each submitted answer
type AnswerResult struct {
	Correct       bool      `json:"correct"`
	CorrectAnswer string    `json:"correctAnswer"`
	Rewards       int       `json:"rewards"`
	Next          *Question `json:"next,omitempty"`
	NextIndex     int       `json:"nextIndex,omitempty"`
	Finished      bool      `json:"finished"`
	Title         string    `json:"title,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
}
