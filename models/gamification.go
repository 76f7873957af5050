package models

import (
	"time"
)

// Badge represents an achievement. DateEarned is nil until awarded.
type Badge struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	ImageURL    string     `bson:"imageUrl" json:"imageUrl"`
	DateEarned  *time.Time `bson:"dateEarned,omitempty" json:"dateEarned,omitempty"`
}

// Gamification event types pushed to connected clients
const (
	EventXPEarned      = "xp_earned"
	EventLevelUp       = "level_up"
	EventBadgeAwarded  = "badge_awarded"
	EventStreakUpdated = "streak_updated"
)

// GamificationEvent represents a progression change to broadcast via WebSocket
type GamificationEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	BadgeID    string    `json:"badgeId,omitempty"`
	BadgeName  string    `json:"badgeName,omitempty"`
	Points     int       `json:"points,omitempty"`
	NewXP      int       `json:"newXp,omitempty"`
	Level      int       `json:"level,omitempty"`
	StreakDays int       `json:"streakDays,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
