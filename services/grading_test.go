package services

import (
	"testing"

	"leximax/content"
	"leximax/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityOf(t *testing.T, moduleID string, typ models.ActivityType) models.Activity {
	t.Helper()
	module, ok := content.New().Module(moduleID)
	require.True(t, ok)
	for _, a := range module.Activities {
		if a.Type == typ {
			return a
		}
	}
	t.Fatalf("module %s has no %s activity", moduleID, typ)
	return models.Activity{}
}

func TestGradeWithoutSubmission(t *testing.T) {
	assert.True(t, Grade(activityOf(t, "module1", models.ActivityCaseScenario), nil))
}

func TestGradeAlwaysPassingTypes(t *testing.T) {
	sub := &models.ActivitySubmission{}
	assert.True(t, Grade(activityOf(t, "module1", models.ActivityFlashcard), sub))
	assert.True(t, Grade(activityOf(t, "module1", models.ActivityWordBreakdown), sub))
}

func TestGradeDragAndDrop(t *testing.T) {
	a := activityOf(t, "module1", models.ActivityDragAndDrop)
	matches := map[string]string{}
	for _, p := range a.DragAndDrop.Pairs {
		matches[p.Latin] = p.English
	}
	assert.True(t, Grade(a, &models.ActivitySubmission{Matches: matches}))

	partial := map[string]string{a.DragAndDrop.Pairs[0].Latin: a.DragAndDrop.Pairs[0].English}
	assert.False(t, Grade(a, &models.ActivitySubmission{Matches: partial}))

	swapped := map[string]string{}
	for k, v := range matches {
		swapped[k] = v
	}
	first, second := a.DragAndDrop.Pairs[0], a.DragAndDrop.Pairs[1]
	swapped[first.Latin], swapped[second.Latin] = second.English, first.English
	assert.False(t, Grade(a, &models.ActivitySubmission{Matches: swapped}))
}

func TestGradeFillInTheBlankRequiresOrder(t *testing.T) {
	a := activityOf(t, "module1", models.ActivityFillInTheBlank)
	assert.True(t, Grade(a, &models.ActivitySubmission{Selected: []string{"guilty", "mind"}}))
	assert.False(t, Grade(a, &models.ActivitySubmission{Selected: []string{"mind", "guilty"}}))
	assert.False(t, Grade(a, &models.ActivitySubmission{Selected: []string{"guilty"}}))
}

func TestGradeCaseScenario(t *testing.T) {
	a := activityOf(t, "module1", models.ActivityCaseScenario)
	right, wrong := 1, 3
	assert.True(t, Grade(a, &models.ActivitySubmission{Choice: &right}))
	assert.False(t, Grade(a, &models.ActivitySubmission{Choice: &wrong}))
	assert.False(t, Grade(a, &models.ActivitySubmission{}))
}
