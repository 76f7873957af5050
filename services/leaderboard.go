package services

import (
	"context"

	"leximax/db"
	"leximax/models"
)

const leaderboardLimit = 100

// LeaderboardEntry is one ranked learner.
type LeaderboardEntry struct {
	ID          string `json:"id"`
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	XP          int    `json:"xp"`
	Level       int    `json:"level"`
	LevelTitle  string `json:"levelTitle"`
	StreakDays  int    `json:"streakDays"`
	BadgeCount  int    `json:"badgeCount"`
	AvatarURL   string `json:"avatarUrl"`
	CurrentUser bool   `json:"currentUser"`
}

type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
	// CurrentUserRank is 0 when the caller is not on the board.
	CurrentUserRank int `json:"currentUserRank"`
}

// BuildLeaderboard ranks users by xp, highest first, flagging currentUserID.
func BuildLeaderboard(ctx context.Context, users db.UserStore, currentUserID string) (*Leaderboard, error) {
	list, err := users.ListUsers(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	board := &Leaderboard{Entries: make([]LeaderboardEntry, 0, len(list))}
	for i := range list {
		u := &list[i]
		band := models.LevelFor(u.XP)
		entry := LeaderboardEntry{
			ID:          u.ID,
			Rank:        i + 1,
			Username:    u.Username,
			XP:          u.XP,
			Level:       band.Level,
			LevelTitle:  band.Title,
			StreakDays:  u.StreakDays,
			BadgeCount:  len(u.Badges),
			AvatarURL:   AvatarURL(u),
			CurrentUser: u.ID == currentUserID,
		}
		if entry.CurrentUser {
			board.CurrentUserRank = entry.Rank
		}
		board.Entries = append(board.Entries, entry)
	}
	return board, nil
}
