package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leximax/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goodMCQ = "Question: What does pacta sunt servanda mean?\n" +
		"Options:\na) Agreements must be kept\nb) Let the buyer beware\nc) The thing speaks for itself\nd) No crime without law\n" +
		"Correct Answer: a"
	goodTranslation = "Sentence: Let the buyer beware.\nMaxim: Caveat emptor"
)

func TestParseMCQ(t *testing.T) {
	q, ok := ParseMCQ(goodMCQ)
	require.True(t, ok)
	assert.Equal(t, models.QuestionMCQ, q.Type)
	assert.Equal(t, "What does pacta sunt servanda mean?", q.QuestionText)
	assert.Equal(t, []string{
		"a) Agreements must be kept",
		"b) Let the buyer beware",
		"c) The thing speaks for itself",
		"d) No crime without law",
	}, q.Options)
	assert.Equal(t, "a", q.CorrectAnswer)
}

func TestParseMCQSingleLineAndMarkdown(t *testing.T) {
	text := "**Question:** Which maxim fits? **Options:** a) One b) Two c) Three d) Four **Correct Answer:** C"
	q, ok := ParseMCQ(text)
	require.True(t, ok)
	assert.Equal(t, "Which maxim fits?", q.QuestionText)
	assert.Equal(t, "d) Four", q.Options[3])
	assert.Equal(t, "c", q.CorrectAnswer)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, ok := ParseMCQ("Question: only a question, nothing else")
	assert.False(t, ok)
	_, ok = ParseTranslation("Maxim: Caveat emptor")
	assert.False(t, ok)
}

func TestParseTranslation(t *testing.T) {
	q, ok := ParseTranslation(goodTranslation)
	require.True(t, ok)
	assert.Equal(t, models.QuestionTranslation, q.Type)
	assert.Equal(t, "Let the buyer beware.", q.QuestionText)
	assert.Equal(t, "Caveat emptor", q.CorrectAnswer)

	q, ok = ParseTranslation("Sentence: Let the buyer beware. Maxim: **Caveat emptor**")
	require.True(t, ok)
	assert.Equal(t, "Caveat emptor", q.CorrectAnswer)
}

func TestCheckQuestAnswer(t *testing.T) {
	mcq := models.Question{Type: models.QuestionMCQ, CorrectAnswer: "b"}
	assert.True(t, CheckQuestAnswer(mcq, "b) Guilty mind"))
	assert.True(t, CheckQuestAnswer(mcq, "B"))
	assert.False(t, CheckQuestAnswer(mcq, "a) Guilty act"))

	tr := models.Question{Type: models.QuestionTranslation, CorrectAnswer: "De minimis non curat lex"}
	assert.True(t, CheckQuestAnswer(tr, "  de minimis NON curat lex "))
	assert.False(t, CheckQuestAnswer(tr, "de minimis"))
}

func TestQuestTitle(t *testing.T) {
	tests := []struct {
		rewards int
		want    string
	}{
		{100, "Partner"},
		{99, "Senior Associate"},
		{50, "Senior Associate"},
		{49, "Junior Lawyer"},
		{0, "Junior Lawyer"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, QuestTitle(tt.rewards), "rewards %d", tt.rewards)
	}
}

func TestQuestMalformedResponseUsesFallback(t *testing.T) {
	gen := &fakeGenerator{responses: []fakeResponse{{text: "Sorry, I can't do that."}}}
	qs := NewQuestService(gen, nil)

	start, err := qs.Start(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "What does *actus reus* refer to?", start.Question.QuestionText)
	assert.True(t, start.Question.Fallback)
	assert.Equal(t, 10, start.Total)
}

func TestQuestFailedResponseUsesFallback(t *testing.T) {
	gen := &fakeGenerator{responses: []fakeResponse{{err: errors.New("quota exceeded")}}}
	qs := NewQuestService(gen, nil)

	start, err := qs.Start(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "What does *mens rea* refer to?", start.Question.QuestionText)
	assert.Equal(t, []string{"a) Guilty act", "b) Guilty mind", "c) Both", "d) Neither"}, start.Question.Options)
}

func TestQuestFullRun(t *testing.T) {
	f := newFixture(t, newLearner("u1"))
	var responses []fakeResponse
	for i := 0; i < questMCQCount; i++ {
		responses = append(responses, fakeResponse{text: goodMCQ})
	}
	responses = append(responses, fakeResponse{text: goodTranslation}, fakeResponse{text: "malformed"})
	responses = append(responses, fakeResponse{text: "Great work on contract maxims."})
	gen := &fakeGenerator{responses: responses}
	qs := NewQuestService(gen, f.progression)
	ctx := context.Background()

	start, err := qs.Start(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, start.Session.Questions)

	current := start.Question
	var res *models.AnswerResult
	for i := 0; i < questLength; i++ {
		answer := "a"
		if current.Type == models.QuestionTranslation {
			answer = current.CorrectAnswer
		}
		res, err = qs.Answer(ctx, "u1", start.Session.ID, answer)
		require.NoError(t, err)
		require.True(t, res.Correct, "question %d", i)
		if i < questLength-1 {
			require.NotNil(t, res.Next)
			assert.Equal(t, i+1, res.NextIndex)
			current = *res.Next
		}
	}

	assert.Equal(t, models.QuestionTranslation, current.Type)
	assert.Equal(t, "Nemo iudex in causa sua", current.CorrectAnswer)
	assert.True(t, res.Finished)
	assert.Equal(t, 100, res.Rewards)
	assert.Equal(t, "Partner", res.Title)
	assert.Equal(t, "Great work on contract maxims.", res.Feedback)
	assert.True(t, strings.HasPrefix(gen.prompts[len(gen.prompts)-1], "Here is the student's quiz performance:"))
	assert.Equal(t, 1, f.user(t, "u1").QuizzesAced)

	_, err = qs.Answer(ctx, "u1", start.Session.ID, "a")
	assert.ErrorIs(t, err, models.ErrSessionFinished)
}

func TestQuestFeedbackFailure(t *testing.T) {
	qs := NewQuestService(&fakeGenerator{}, nil)
	ctx := context.Background()

	start, err := qs.Start(ctx, "u1")
	require.NoError(t, err)

	var res *models.AnswerResult
	for i := 0; i < questLength; i++ {
		res, err = qs.Answer(ctx, "u1", start.Session.ID, "wrong")
		require.NoError(t, err)
		assert.False(t, res.Correct)
	}
	assert.True(t, res.Finished)
	assert.Zero(t, res.Rewards)
	assert.Equal(t, "Junior Lawyer", res.Title)
	assert.Equal(t, feedbackUnavailable, res.Feedback)
}

func TestQuestSessionOwnership(t *testing.T) {
	qs := NewQuestService(nil, nil)
	ctx := context.Background()

	start, err := qs.Start(ctx, "u1")
	require.NoError(t, err)

	_, err = qs.Answer(ctx, "u2", start.Session.ID, "a")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = qs.Answer(ctx, "u1", start.Session.ID, "   ")
	assert.ErrorIs(t, err, models.ErrEmptyAnswer)

	assert.ErrorIs(t, qs.Quit("u2", start.Session.ID), models.ErrSessionNotFound)
	require.NoError(t, qs.Quit("u1", start.Session.ID))
	_, err = qs.Answer(ctx, "u1", start.Session.ID, "a")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestQuestStartReplacesPreviousSession(t *testing.T) {
	qs := NewQuestService(nil, nil)
	ctx := context.Background()

	first, err := qs.Start(ctx, "u1")
	require.NoError(t, err)
	second, err := qs.Start(ctx, "u1")
	require.NoError(t, err)
	assert.NotEqual(t, first.Session.ID, second.Session.ID)

	_, err = qs.Answer(ctx, "u1", first.Session.ID, "b")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	res, err := qs.Answer(ctx, "u1", second.Session.ID, "b")
	require.NoError(t, err)
	assert.True(t, res.Correct)
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	_, err := NewQuestService(nil, nil).Ask(ctx, "What is mens rea?")
	assert.ErrorIs(t, err, models.ErrGeneratorDisabled)

	_, err = NewQuestService(&fakeGenerator{}, nil).Ask(ctx, "  ")
	assert.ErrorIs(t, err, models.ErrEmptyPrompt)

	_, err = NewQuestService(&fakeGenerator{responses: []fakeResponse{{err: errors.New("boom")}}}, nil).Ask(ctx, "hi")
	assert.Error(t, err)

	answer, err := NewQuestService(&fakeGenerator{responses: []fakeResponse{{text: "The guilty mind."}}}, nil).Ask(ctx, "What is mens rea?")
	require.NoError(t, err)
	assert.Equal(t, "The guilty mind.", answer)
}
