package content

import (
	"fmt"
	"time"

	"leximax/models"
)

// DemoUsers returns the sample learners used to populate an empty
// leaderboard. Levels are derived from xp; badges are left for the
// progression rules to award.
func DemoUsers(now time.Time) []*models.User {
	demo := []struct {
		id, username string
		xp, streak   int
		lastLogin    time.Time
		joined       time.Time
		maxims       []string
	}{
		{"user1", "JurisPrudence", 350, 12, now, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			[]string{"maxim1", "maxim2", "maxim3"}},
		{"user2", "LegalEagle", 520, 25, now, time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
			[]string{"maxim1", "maxim2", "maxim3", "maxim4", "maxim5"}},
		{"user3", "LatinLearner", 120, 5, now, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			[]string{"maxim1"}},
		{"user4", "MaximMaster", 680, 30, now, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			[]string{"maxim1", "maxim2", "maxim3", "maxim4", "maxim5", "maxim6", "maxim7"}},
		{"user5", "CaseBriefs", 210, 3, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			[]string{"maxim1", "maxim2"}},
	}

	users := make([]*models.User, 0, len(demo))
	for i, d := range demo {
		u := models.NewUser(d.id, d.username, d.id+"@example.com", avatarPath(i+1), d.joined)
		u.XP = d.xp
		u.Level = models.LevelFor(d.xp).Level
		u.StreakDays = d.streak
		u.LastLoginDate = d.lastLogin
		u.CompletedMaxims = append(u.CompletedMaxims, d.maxims...)
		users = append(users, u)
	}
	return users
}

func avatarPath(n int) string {
	return fmt.Sprintf("/avatars/avatar%d.png", n)
}
