package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboard(t *testing.T) {
	low, high, mid := newLearner("low"), newLearner("high"), newLearner("mid")
	low.XP, high.XP, mid.XP = 20, 520, 160
	high.Avatar = "/avatars/high.png"
	f := newFixture(t, low, high, mid)

	board, err := BuildLeaderboard(context.Background(), f.store, "mid")
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)

	assert.Equal(t, "high", board.Entries[0].ID)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, "Juris Master", board.Entries[0].LevelTitle)
	assert.Equal(t, "/avatars/high.png", board.Entries[0].AvatarURL)

	assert.Equal(t, "mid", board.Entries[1].ID)
	assert.True(t, board.Entries[1].CurrentUser)
	assert.Equal(t, 2, board.CurrentUserRank)
	assert.Equal(t, 3, board.Entries[1].Level)

	assert.Equal(t, "low", board.Entries[2].ID)
	assert.Contains(t, board.Entries[2].AvatarURL, "seed=low")
}

func TestLeaderboardWithoutCurrentUser(t *testing.T) {
	f := newFixture(t, newLearner("a"))

	board, err := BuildLeaderboard(context.Background(), f.store, "outsider")
	require.NoError(t, err)
	assert.Zero(t, board.CurrentUserRank)
}
