package services

import (
	"slices"
	"strings"

	"leximax/models"
)

// Grade checks a submitted answer against an activity. A nil submission is
// accepted; the client has already checked the answer.
func Grade(activity models.Activity, sub *models.ActivitySubmission) bool {
	if sub == nil {
		return true
	}
	switch activity.Type {
	case models.ActivityFlashcard, models.ActivityWordBreakdown:
		return true
	case models.ActivityDragAndDrop:
		if activity.DragAndDrop == nil {
			return false
		}
		for _, pair := range activity.DragAndDrop.Pairs {
			got, ok := sub.Matches[pair.Latin]
			if !ok || !strings.EqualFold(strings.TrimSpace(got), pair.English) {
				return false
			}
		}
		return true
	case models.ActivityFillInTheBlank:
		if activity.FillInTheBlank == nil {
			return false
		}
		return slices.Equal(sub.Selected, activity.FillInTheBlank.CorrectAnswers)
	case models.ActivityCaseScenario:
		if activity.CaseScenario == nil || sub.Choice == nil {
			return false
		}
		return *sub.Choice == activity.CaseScenario.CorrectAnswer
	}
	return false
}
