package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"leximax/content"
	"leximax/db"
	"leximax/models"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Badge thresholds
const (
	streakMasterDays   = 7
	explorerCategories = 3
	jurisDoctorLevel   = 5
	legalEagleQuizzes  = 10
	acedQuizPercentage = 90
)

// Notifier receives progression events once the change is persisted.
type Notifier interface {
	Notify(event models.GamificationEvent)
}

type nopNotifier struct{}

func (nopNotifier) Notify(models.GamificationEvent) {}

// ProgressionService owns xp, level, badges and streaks. Every mutation is a
// load-modify-save cycle serialized by mu.
type ProgressionService struct {
	mu        sync.Mutex
	users     db.UserStore
	catalogue *content.Store
	notifier  Notifier
	now       func() time.Time
}

func NewProgressionService(users db.UserStore, catalogue *content.Store, notifier Notifier) *ProgressionService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if catalogue == nil {
		catalogue = content.Default()
	}
	return &ProgressionService{
		users:     users,
		catalogue: catalogue,
		notifier:  notifier,
		now:       time.Now,
	}
}

var progressionService *ProgressionService

// InitProgressionService sets the engine used by the HTTP controllers.
func InitProgressionService(users db.UserStore, notifier Notifier) *ProgressionService {
	progressionService = NewProgressionService(users, content.Default(), notifier)
	return progressionService
}

func GetProgressionService() *ProgressionService {
	return progressionService
}

// Users exposes the store the engine persists to.
func (s *ProgressionService) Users() db.UserStore {
	return s.users
}

// progressTx is one in-flight change to a single user.
type progressTx struct {
	user      *models.User
	catalogue *content.Store
	now       time.Time
	events    []models.GamificationEvent
	changed   bool
}

func (tx *progressTx) emit(event models.GamificationEvent) {
	event.UserID = tx.user.ID
	event.Timestamp = tx.now
	tx.events = append(tx.events, event)
}

func (tx *progressTx) earnXp(amount int) {
	if amount <= 0 {
		return
	}
	u := tx.user
	before := u.Level
	u.XP += amount
	u.Level = models.LevelFor(u.XP).Level
	tx.changed = true

	tx.emit(models.GamificationEvent{Type: models.EventXPEarned, Points: amount, NewXP: u.XP, Level: u.Level})
	if u.Level != before {
		tx.emit(models.GamificationEvent{Type: models.EventLevelUp, NewXP: u.XP, Level: u.Level})
	}
	tx.checkForBadges()
}

// awardBadge appends the catalogue badge unless the user already holds it.
func (tx *progressTx) awardBadge(id string) bool {
	if tx.user.HasBadge(id) {
		return false
	}
	badge, ok := tx.catalogue.Badge(id)
	if !ok {
		return false
	}
	earned := tx.now
	badge.DateEarned = &earned
	tx.user.Badges = append(tx.user.Badges, badge)
	tx.changed = true
	tx.emit(models.GamificationEvent{Type: models.EventBadgeAwarded, BadgeID: badge.ID, BadgeName: badge.Name})
	return true
}

func (tx *progressTx) checkForBadges() {
	u := tx.user
	if len(u.CompletedMaxims) >= 1 {
		tx.awardBadge(content.BadgeLatinLover)
	}
	if u.StreakDays >= streakMasterDays {
		tx.awardBadge(content.BadgeStreakMaster)
	}
	if len(tx.catalogue.Categories(u.CompletedMaxims)) >= explorerCategories {
		tx.awardBadge(content.BadgeMaximExplorer)
	}
	if u.Level >= jurisDoctorLevel {
		tx.awardBadge(content.BadgeJurisDoctor)
	}
	if u.QuizzesAced >= legalEagleQuizzes {
		tx.awardBadge(content.BadgeLegalEagle)
	}
}

func (tx *progressTx) setStreak(days int) {
	u := tx.user
	u.LastLoginDate = tx.now
	tx.changed = true
	if u.StreakDays != days {
		u.StreakDays = days
		tx.emit(models.GamificationEvent{Type: models.EventStreakUpdated, StreakDays: days})
	}
	tx.checkForBadges()
}

// apply loads the user, runs fn and persists the result when fn changed
// anything. A missing user yields (nil, nil). Events go out after the
// engine lock is released.
func (s *ProgressionService) apply(ctx context.Context, userID string, fn func(tx *progressTx)) (*models.User, error) {
	user, events, err := s.commit(ctx, userID, fn)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		s.notifier.Notify(event)
	}
	return user, nil
}

func (s *ProgressionService) commit(ctx context.Context, userID string, fn func(tx *progressTx)) (*models.User, []models.GamificationEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	normalize(user)

	tx := &progressTx{user: user, catalogue: s.catalogue, now: s.now()}
	fn(tx)
	if !tx.changed {
		return user, nil, nil
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("persist progression: %w", err)
	}
	if len(tx.events) > 0 {
		log.WithFields(log.Fields{
			"user":   user.ID,
			"events": lo.Map(tx.events, func(e models.GamificationEvent, _ int) string { return e.Type }),
		}).Debug("Progression updated")
	}
	return user, tx.events, nil
}

// normalize repairs documents written by older versions or by hand.
func normalize(u *models.User) {
	if u.CompletedMaxims == nil {
		u.CompletedMaxims = []string{}
	}
	u.CompletedMaxims = lo.Uniq(u.CompletedMaxims)
	if u.Badges == nil {
		u.Badges = []models.Badge{}
	}
	u.Badges = lo.UniqBy(u.Badges, func(b models.Badge) string { return b.ID })
	if u.ModuleProgress == nil {
		u.ModuleProgress = map[string][]string{}
	}
	if u.XP < 0 {
		u.XP = 0
	}
	if u.StreakDays < 0 {
		u.StreakDays = 0
	}
	u.Level = models.LevelFor(u.XP).Level
}

// EarnXp adds amount to the user's xp, moves them to the matching band and
// re-evaluates badges. Non-positive amounts change nothing.
func (s *ProgressionService) EarnXp(ctx context.Context, userID string, amount int) (*models.User, error) {
	return s.apply(ctx, userID, func(tx *progressTx) { tx.earnXp(amount) })
}

// AwardBadge grants a catalogue badge once. Unknown badge ids are ignored.
func (s *ProgressionService) AwardBadge(ctx context.Context, userID, badgeID string) (*models.User, error) {
	return s.apply(ctx, userID, func(tx *progressTx) { tx.awardBadge(badgeID) })
}

func (s *ProgressionService) CheckForBadges(ctx context.Context, userID string) (*models.User, error) {
	return s.apply(ctx, userID, func(tx *progressTx) { tx.checkForBadges() })
}

func (s *ProgressionService) IncrementStreak(ctx context.Context, userID string) (*models.User, error) {
	return s.apply(ctx, userID, func(tx *progressTx) { tx.setStreak(tx.user.StreakDays + 1) })
}

func (s *ProgressionService) ResetStreak(ctx context.Context, userID string) (*models.User, error) {
	return s.apply(ctx, userID, func(tx *progressTx) { tx.setStreak(0) })
}

// RecordLogin updates the streak by UTC calendar day. Logging in the day
// after the last login extends it; a longer gap restarts it at 1.
func (s *ProgressionService) RecordLogin(ctx context.Context, userID string) (*models.User, error) {
	return s.apply(ctx, userID, func(tx *progressTx) {
		u := tx.user
		streak := u.StreakDays
		switch gap := daysBetween(u.LastLoginDate, tx.now); {
		case u.LastLoginDate.IsZero():
			streak = 1
		case gap <= 0:
			if streak == 0 {
				streak = 1
			}
		case gap == 1:
			streak++
		default:
			streak = 1
		}
		tx.setStreak(streak)
	})
}

// RecordQuizResult counts a LexiQuest run as aced at 90% accuracy or better.
func (s *ProgressionService) RecordQuizResult(ctx context.Context, userID string, correct, total int) (*models.User, error) {
	return s.apply(ctx, userID, func(tx *progressTx) {
		if total > 0 && correct*100 >= total*acedQuizPercentage {
			tx.user.QuizzesAced++
			tx.changed = true
		}
		tx.checkForBadges()
	})
}

// Profile returns the user together with their level title and band progress.
func (s *ProgressionService) Profile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	normalize(user)
	return &models.PublicProfile{
		User:       user,
		LevelTitle: models.LevelFor(user.XP).Title,
		XpProgress: XpProgress(user.XP),
	}, nil
}

func XpProgress(xp int) models.XpProgress {
	return models.XpForNextLevel(xp)
}

func daysBetween(from, to time.Time) int {
	day := func(t time.Time) time.Time {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(day(to).Sub(day(from)).Hours() / 24)
}
