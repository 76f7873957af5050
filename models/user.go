package models

import (
	"time"

	"github.com/samber/lo"
)

// User defines a learner and the progression state the engine owns
type User struct {
	ID              string              `bson:"_id" json:"id"`
	Username        string              `bson:"username" json:"username"`
	Email           string              `bson:"email" json:"email"`
	PasswordHash    string              `bson:"passwordHash,omitempty" json:"-"`
	Avatar          string              `bson:"avatar" json:"avatar"`
	XP              int                 `bson:"xp" json:"xp"`
	Level           int                 `bson:"level" json:"level"`
	StreakDays      int                 `bson:"streakDays" json:"streakDays"`
	LastLoginDate   time.Time           `bson:"lastLoginDate" json:"lastLoginDate"`
	JoinDate        time.Time           `bson:"joinDate" json:"joinDate"`
	CompletedMaxims []string            `bson:"completedMaxims" json:"completedMaxims"`
	Badges          []Badge             `bson:"badges" json:"badges"`
	ModuleProgress  map[string][]string `bson:"moduleProgress,omitempty" json:"moduleProgress,omitempty"`
	QuizzesAced     int                 `bson:"quizzesAced" json:"quizzesAced"`
}

// NewUser returns a freshly signed-up learner: no xp, level 1, empty sets.
func NewUser(id, username, email, avatar string, now time.Time) *User {
	return &User{
		ID:              id,
		Username:        username,
		Email:           email,
		Avatar:          avatar,
		Level:           1,
		LastLoginDate:   now,
		JoinDate:        now,
		CompletedMaxims: []string{},
		Badges:          []Badge{},
		ModuleProgress:  map[string][]string{},
	}
}

func (u *User) HasBadge(id string) bool {
	return lo.ContainsBy(u.Badges, func(b Badge) bool { return b.ID == id })
}

func (u *User) HasCompletedMaxim(id string) bool {
	return lo.Contains(u.CompletedMaxims, id)
}

// HasCompletedActivity reports whether activityID is recorded for moduleID.
func (u *User) HasCompletedActivity(moduleID, activityID string) bool {
	return lo.Contains(u.ModuleProgress[moduleID], activityID)
}

// Clone returns a deep copy so stores never share slices or maps with callers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.CompletedMaxims = append([]string{}, u.CompletedMaxims...)
	c.Badges = append([]Badge{}, u.Badges...)
	c.ModuleProgress = make(map[string][]string, len(u.ModuleProgress))
	for k, v := range u.ModuleProgress {
		c.ModuleProgress[k] = append([]string{}, v...)
	}
	return &c
}

// PublicProfile is the profile payload returned to the owning user
type PublicProfile struct {
	*User
	LevelTitle string     `json:"levelTitle"`
	XpProgress XpProgress `json:"xpProgress"`
}
