package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"leximax/db"
	"leximax/middlewares"
	"leximax/models"
	"leximax/services"
	"leximax/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct {
	answer string
	err    error
}

func (g stubGenerator) Generate(context.Context, string) (string, error) {
	return g.answer, g.err
}

// newTestRouter wires the services on an in-memory store and mounts every
// handler the way the server does.
func newTestRouter(t *testing.T, generator services.TextGenerator, users ...*models.User) (*gin.Engine, *db.MemoryUserStore) {
	t.Helper()
	utils.SetJWTSecret("controllers-secret")
	utils.SetJWTExpiry(time.Hour)

	store := db.NewMemoryUserStore(users...)
	progression := services.InitProgressionService(store, nil)
	services.InitLessonService(progression)
	services.InitQuestService(generator, progression)
	services.InitAuthService(store, services.LocalIdentityProvider{}, progression)

	r := gin.New()
	r.POST("/signup", SignUp)
	r.POST("/login", Login)
	api := r.Group("/api")
	api.GET("/modules", GetModules)
	api.GET("/maxims", GetMaxims)
	api.GET("/maxims/:id", GetMaxim)
	api.GET("/levels", GetLevels)
	api.GET("/badges", GetBadges)

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/user/profile", GetProfile)
	auth.GET("/leaderboard", GetLeaderboard)
	auth.POST("/streak/increment", IncrementStreak)
	auth.POST("/streak/reset", ResetStreak)
	auth.GET("/lessons", GetLessons)
	auth.GET("/lessons/:id", GetLesson)
	auth.POST("/lessons/:id/activities/:activityId/complete", CompleteActivity)
	auth.POST("/maxims/:id/complete", CompleteMaxim)
	limited := middlewares.RateLimit(middlewares.NewRateLimiter(nil, 100, time.Minute), "quest")
	auth.POST("/quest/start", limited, StartQuest)
	auth.POST("/quest/:id/answer", limited, AnswerQuest)
	auth.DELETE("/quest/:id", QuitQuest)
	auth.POST("/quest/ask", limited, AskQuest)
	return r, store
}

func learner(id string, xp int) *models.User {
	u := models.NewUser(id, id, id+"@example.com", "", time.Now().Add(-time.Hour))
	u.XP = xp
	u.Level = models.LevelFor(xp).Level
	return u
}

func tokenFor(t *testing.T, id string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(id, id+"@example.com")
	require.NoError(t, err)
	return token
}

func do(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestContentEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/maxims", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.LegalMaxim](t, w), 7)

	w = do(r, http.MethodGet, "/api/maxims?category="+url.QueryEscape(string(models.CategoryCriminalLaw)), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, m := range decode[[]models.LegalMaxim](t, w) {
		assert.Equal(t, models.CategoryCriminalLaw, m.Category)
	}

	w = do(r, http.MethodGet, "/api/maxims/maxim2", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maxim2", decode[models.LegalMaxim](t, w).ID)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/maxims/maxim99", "", "").Code)

	w = do(r, http.MethodGet, "/api/modules", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.LearningModule](t, w), 7)

	w = do(r, http.MethodGet, "/api/badges", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Badge](t, w), 5)

	w = do(r, http.MethodGet, "/api/levels", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[[]models.Level](t, w))
}

func TestSignUpAndLogin(t *testing.T) {
	r, store := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/signup", "", `{"email":"Portia@Example.com","password":"belmont-1596"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	session := decode[services.Session](t, w)
	require.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "portia@example.com", session.User.Email)
	assert.Equal(t, 1, session.User.StreakDays)

	stored, err := store.GetUserByEmail(context.Background(), "portia@example.com")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, stored.ID)

	w = do(r, http.MethodPost, "/signup", "", `{"email":"portia@example.com","password":"belmont-1596"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/signup", "", `{"email":"shylock@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/login", "", `{"email":"portia@example.com","password":"belmont-1596"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[services.Session](t, w).AccessToken)

	w = do(r, http.MethodPost, "/login", "", `{"email":"portia@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/login", "", `{"email":"nobody@example.com","password":"belmont-1596"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresAuthAndExistingUser(t *testing.T) {
	r, _ := newTestRouter(t, nil, learner("u1", 350))

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/user/profile", "", "").Code)

	w := do(r, http.MethodGet, "/user/profile", tokenFor(t, "u1"), "")
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[models.PublicProfile](t, w)
	assert.Equal(t, "u1", profile.User.ID)
	assert.Equal(t, models.LevelFor(350).Title, profile.LevelTitle)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/user/profile", tokenFor(t, "ghost"), "").Code)
}

func TestStreakEndpoints(t *testing.T) {
	r, store := newTestRouter(t, nil, learner("u1", 0))
	token := tokenFor(t, "u1")

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/streak/increment", token, "").Code)
	}
	u, err := store.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, u.StreakDays)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/streak/reset", token, "").Code)
	u, err = store.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, u.StreakDays)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/streak/increment", tokenFor(t, "ghost"), "").Code)
}

func TestLessonWorkflow(t *testing.T) {
	r, store := newTestRouter(t, nil, learner("u1", 0))
	token := tokenFor(t, "u1")

	w := do(r, http.MethodGet, "/lessons", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Lesson](t, w), 7)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/lessons/module99", token, "").Code)

	w = do(r, http.MethodPost, "/lessons/module1/activities/activity1-1/complete", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[services.ActivityResult](t, w)
	assert.True(t, result.Applied)
	assert.Equal(t, 15, result.XPAwarded)

	// A wrong case-scenario answer is graded and rejected.
	w = do(r, http.MethodPost, "/lessons/module1/activities/activity1-5/complete", token, `{"submission":{"choice":0}}`)
	require.Equal(t, http.StatusOK, w.Code)
	result = decode[services.ActivityResult](t, w)
	assert.False(t, result.Applied)
	assert.False(t, result.Correct)

	w = do(r, http.MethodPost, "/lessons/module1/activities/activity1-1/complete", token, `{"submission":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/maxims/maxim3/complete", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	u, err := store.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, u.CompletedMaxims, "maxim3")
	assert.Equal(t, 15+45, u.XP)
	assert.True(t, u.HasBadge("badge1"))
}

func TestLeaderboard(t *testing.T) {
	r, _ := newTestRouter(t, nil, learner("low", 10), learner("high", 900), learner("mid", 300))

	w := do(r, http.MethodGet, "/leaderboard", tokenFor(t, "mid"), "")
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[services.Leaderboard](t, w)
	require.Len(t, board.Entries, 3)
	assert.Equal(t, "high", board.Entries[0].ID)
	assert.Equal(t, 2, board.CurrentUserRank)
	assert.True(t, board.Entries[1].CurrentUser)
}

func TestQuestEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, nil, learner("u1", 0))
	token := tokenFor(t, "u1")

	w := do(r, http.MethodPost, "/quest/start", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	start := decode[services.QuestStart](t, w)
	require.NotNil(t, start.Session)
	assert.True(t, start.Question.Fallback)
	assert.Equal(t, 10, start.Total)

	w = do(r, http.MethodPost, "/quest/"+start.Session.ID+"/answer", token, `{"answer":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/quest/"+start.Session.ID+"/answer", token, `{"answer":"b"}`)
	require.Equal(t, http.StatusOK, w.Code)
	answer := decode[models.AnswerResult](t, w)
	assert.True(t, answer.Correct)
	assert.Equal(t, 10, answer.Rewards)

	w = do(r, http.MethodPost, "/quest/"+start.Session.ID+"/answer", tokenFor(t, "other"), `{"answer":"b"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/quest/"+start.Session.ID, token, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/quest/"+start.Session.ID, token, "").Code)

	// No generator configured.
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodPost, "/quest/ask", token, `{"prompt":"What is stare decisis?"}`).Code)
}

func TestQuestAsk(t *testing.T) {
	r, _ := newTestRouter(t, stubGenerator{answer: "Stand by things decided."}, learner("u1", 0))
	token := tokenFor(t, "u1")

	w := do(r, http.MethodPost, "/quest/ask", token, `{"prompt":"What is stare decisis?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Stand by things decided.", decode[map[string]string](t, w)["answer"])

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/quest/ask", token, `{}`).Code)

	r, _ = newTestRouter(t, stubGenerator{err: errors.New("quota exceeded")}, learner("u1", 0))
	w = do(r, http.MethodPost, "/quest/ask", token, `{"prompt":"What is stare decisis?"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
