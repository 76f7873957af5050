package structs

import "leximax/models"

// CompleteActivityRequest optionally carries the learner's answer.
type CompleteActivityRequest struct {
	Submission *models.ActivitySubmission `json:"submission"`
}

type QuestAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type QuestAskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
