package services

import (
	"context"

	"leximax/content"
	"leximax/models"

	"github.com/samber/lo"
)

// LessonService drives the per-module activity workflow on top of the
// progression engine.
type LessonService struct {
	progression *ProgressionService
	catalogue   *content.Store
}

func NewLessonService(progression *ProgressionService) *LessonService {
	return &LessonService{progression: progression, catalogue: progression.catalogue}
}

var lessonService *LessonService

func InitLessonService(progression *ProgressionService) *LessonService {
	lessonService = NewLessonService(progression)
	return lessonService
}

func GetLessonService() *LessonService {
	return lessonService
}

// ActivityResult reports the outcome of CompleteActivity. Applied is false
// when nothing changed: unknown module or activity, a wrong answer, or an
// activity that was already done.
type ActivityResult struct {
	User            *models.User   `json:"user"`
	Lesson          *models.Lesson `json:"lesson,omitempty"`
	Applied         bool           `json:"applied"`
	Correct         bool           `json:"correct"`
	XPAwarded       int            `json:"xpAwarded"`
	ModuleCompleted bool           `json:"moduleCompleted"`
	Explanation     string         `json:"explanation,omitempty"`
}

// Lessons returns every module overlaid with the user's progress.
func (s *LessonService) Lessons(ctx context.Context, userID string) ([]models.Lesson, error) {
	user, err := s.progression.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return lo.Map(s.catalogue.Modules(), func(m models.LearningModule, _ int) models.Lesson {
		return s.overlay(m, user)
	}), nil
}

// Lesson looks a module up by module id or maxim id.
func (s *LessonService) Lesson(ctx context.Context, userID, moduleID string) (*models.Lesson, error) {
	user, err := s.progression.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	module, ok := s.catalogue.Module(moduleID)
	if !ok {
		return nil, models.ErrModuleNotFound
	}
	lesson := s.overlay(module, user)
	return &lesson, nil
}

func (s *LessonService) overlay(module models.LearningModule, user *models.User) models.Lesson {
	done := 0
	next := -1
	for i := range module.Activities {
		a := &module.Activities[i]
		a.Completed = user.HasCompletedActivity(module.ID, a.ID)
		if a.Completed {
			done++
		} else if next < 0 {
			next = i
		}
	}
	total := len(module.Activities)
	module.Completed = total > 0 && done == total

	state := models.LessonState{ActivityIndex: next}
	switch {
	case module.Completed:
		state.Status = models.LessonCompleted
		state.ActivityIndex = total
	case done == 0:
		state.Status = models.LessonNotStarted
		state.ActivityIndex = 0
	default:
		state.Status = models.LessonInProgress
	}
	if total > 0 {
		state.Progress = float64(done) / float64(total) * 100
	}

	lesson := models.Lesson{Module: module, State: state}
	if maxim, ok := s.catalogue.Maxim(module.MaximID); ok {
		lesson.Maxim = &maxim
	}
	return lesson
}

// CompleteActivity marks one activity done and grants its xp once. When the
// last activity of the module is done the module's maxim is completed too.
// A submission, when given, is graded first and a wrong answer changes
// nothing. A missing user yields (nil, nil).
func (s *LessonService) CompleteActivity(ctx context.Context, userID, moduleID, activityID string, sub *models.ActivitySubmission) (*ActivityResult, error) {
	result := &ActivityResult{}
	module, found := s.catalogue.Module(moduleID)

	user, err := s.progression.apply(ctx, userID, func(tx *progressTx) {
		if !found {
			return
		}
		activity, ok := lo.Find(module.Activities, func(a models.Activity) bool { return a.ID == activityID })
		if !ok {
			return
		}
		if activity.CaseScenario != nil {
			result.Explanation = activity.CaseScenario.Explanation
		}
		if tx.user.HasCompletedActivity(module.ID, activity.ID) {
			result.Correct = true
			return
		}
		if !Grade(activity, sub) {
			return
		}
		result.Correct = true
		result.Applied = true

		tx.user.ModuleProgress[module.ID] = append(tx.user.ModuleProgress[module.ID], activity.ID)
		tx.changed = true
		tx.earnXp(activity.XPReward)
		result.XPAwarded = activity.XPReward

		if lo.EveryBy(module.Activities, func(a models.Activity) bool {
			return tx.user.HasCompletedActivity(module.ID, a.ID)
		}) {
			result.ModuleCompleted = true
			tx.completeMaxim(module.MaximID)
		}
	})
	if err != nil || user == nil {
		return nil, err
	}

	result.User = user
	if found {
		lesson := s.overlay(module, user)
		result.Lesson = &lesson
	}
	return result, nil
}

// CompleteMaxim records the maxim as learned and grants its xp, once.
// Unknown maxims are ignored.
func (s *LessonService) CompleteMaxim(ctx context.Context, userID, maximID string) (*models.User, error) {
	return s.progression.apply(ctx, userID, func(tx *progressTx) { tx.completeMaxim(maximID) })
}

func (tx *progressTx) completeMaxim(maximID string) {
	if tx.user.HasCompletedMaxim(maximID) {
		return
	}
	maxim, ok := tx.catalogue.Maxim(maximID)
	if !ok {
		return
	}
	tx.user.CompletedMaxims = append(tx.user.CompletedMaxims, maxim.ID)
	tx.changed = true
	tx.earnXp(maxim.XPReward)
	tx.checkForBadges()
}
