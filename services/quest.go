package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"leximax/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	questLength       = 10
	questMCQCount     = 8
	questPointsPerHit = 10
	questTimeout      = 30 * time.Second
)

const (
	mcqPrompt = "Generate a multiple-choice question about a Latin legal maxim with a legal scenario. " +
		"Provide the question, four options (a, b, c, d), and indicate the correct answer. " +
		"Format as: Question: [question] Options: a) [option1] b) [option2] c) [option3] d) [option4] Correct Answer: [letter]"

	translationPrompt = "Provide an English sentence that corresponds to a Latin legal maxim. " +
		"Specify the correct maxim. Format as: Sentence: [sentence] Maxim: [maxim]"

	feedbackUnavailable = "Feedback unavailable due to an error."

	// markup is trimmed from captured fields.
	markup = " \t\r\n*"
)

var (
	mcqQuestionRe   = regexp.MustCompile(`(?s)Question:\s*(.+?)\s*Options:`)
	mcqOptionsRe    = regexp.MustCompile(`(?s)Options:[\s*]*(a\).+?)\s+(b\).+?)\s+(c\).+?)\s+(d\).+?)\s*Correct Answer:`)
	mcqAnswerRe     = regexp.MustCompile(`Correct Answer:[\s*]*\(?([a-dA-D])`)
	sentenceRe      = regexp.MustCompile(`Sentence:\s*(.+?)\s*(?:\n|Maxim:)`)
	maximRe         = regexp.MustCompile(`Maxim:\s*(.+)`)
	mcqFallbackOpts = []string{"a) Guilty act", "b) Guilty mind", "c) Both", "d) Neither"}
)

// Used when the generator answers in an unexpected shape.
var (
	malformedMCQ = models.Question{
		Type:          models.QuestionMCQ,
		QuestionText:  "What does *actus reus* refer to?",
		Options:       mcqFallbackOpts,
		CorrectAnswer: "a",
		Fallback:      true,
	}

	malformedTranslation = models.Question{
		Type:          models.QuestionTranslation,
		QuestionText:  "No one should be a judge in his own case.",
		CorrectAnswer: "Nemo iudex in causa sua",
		Fallback:      true,
	}
)

// Used when the generator call fails.
var (
	failedMCQ = models.Question{
		Type:          models.QuestionMCQ,
		QuestionText:  "What does *mens rea* refer to?",
		Options:       mcqFallbackOpts,
		CorrectAnswer: "b",
		Fallback:      true,
	}

	failedTranslation = models.Question{
		Type:          models.QuestionTranslation,
		QuestionText:  "The law does not care for trifles.",
		CorrectAnswer: "De minimis non curat lex",
		Fallback:      true,
	}
)

// questRun guards one session; generation for it happens under mu.
type questRun struct {
	mu      sync.Mutex
	session *models.QuizSession
}

// QuestService runs LexiQuest sessions. Each user has at most one live
// session; starting a new one discards the previous.
type QuestService struct {
	mu          sync.Mutex
	runs        map[string]*questRun
	generator   TextGenerator
	progression *ProgressionService
	now         func() time.Time
}

func NewQuestService(generator TextGenerator, progression *ProgressionService) *QuestService {
	return &QuestService{
		runs:        make(map[string]*questRun),
		generator:   generator,
		progression: progression,
		now:         time.Now,
	}
}

var questService *QuestService

func InitQuestService(generator TextGenerator, progression *ProgressionService) *QuestService {
	questService = NewQuestService(generator, progression)
	return questService
}

func GetQuestService() *QuestService {
	return questService
}

// QuestStart is returned when a session begins.
type QuestStart struct {
	Session  *models.QuizSession `json:"session"`
	Question models.Question     `json:"question"`
	Index    int                 `json:"index"`
	Total    int                 `json:"total"`
}

func (s *QuestService) Start(ctx context.Context, userID string) (*QuestStart, error) {
	session := &models.QuizSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartedAt: s.now(),
	}
	run := &questRun{session: session}

	s.mu.Lock()
	for id, r := range s.runs {
		if r.session.UserID == userID {
			delete(s.runs, id)
		}
	}
	s.runs[session.ID] = run
	s.mu.Unlock()

	run.mu.Lock()
	defer run.mu.Unlock()
	q := s.generateQuestion(ctx, 0)
	session.Questions = append(session.Questions, q)

	log.WithFields(log.Fields{"user": userID, "session": session.ID}).Info("LexiQuest started")
	return &QuestStart{Session: snapshotSession(session), Question: q, Index: 0, Total: questLength}, nil
}

func (s *QuestService) lookup(userID, sessionID string) (*questRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[sessionID]
	if !ok || run.session.UserID != userID {
		return nil, models.ErrSessionNotFound
	}
	return run, nil
}

// Answer checks the answer to the current question, then either generates the
// next question or finishes the run with a title and feedback.
func (s *QuestService) Answer(ctx context.Context, userID, sessionID, answer string) (*models.AnswerResult, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, models.ErrEmptyAnswer
	}
	run, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	defer run.mu.Unlock()
	session := run.session
	if session.Finished {
		return nil, models.ErrSessionFinished
	}

	current := session.Questions[session.Index]
	session.Answers = append(session.Answers, answer)
	correct := CheckQuestAnswer(current, answer)
	if correct {
		session.CorrectCount++
		session.Rewards += questPointsPerHit
	}

	result := &models.AnswerResult{Correct: correct, CorrectAnswer: current.CorrectAnswer}
	next := session.Index + 1
	if next < questLength {
		q := s.generateQuestion(ctx, next)
		session.Questions = append(session.Questions, q)
		session.Index = next
		result.Next = &q
		result.NextIndex = next
		result.Rewards = session.Rewards
		return result, nil
	}

	session.Finished = true
	result.Finished = true
	result.Rewards = session.Rewards
	result.Title = QuestTitle(session.Rewards)
	result.Feedback = s.feedback(ctx, session)

	if s.progression != nil {
		if _, err := s.progression.RecordQuizResult(ctx, userID, session.CorrectCount, questLength); err != nil {
			log.WithError(err).WithField("user", userID).Warn("Failed to record quiz result")
		}
	}
	log.WithFields(log.Fields{
		"user":    userID,
		"session": session.ID,
		"correct": session.CorrectCount,
		"rewards": session.Rewards,
	}).Info("LexiQuest finished")
	return result, nil
}

// Quit discards the session.
func (s *QuestService) Quit(userID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[sessionID]
	if !ok || run.session.UserID != userID {
		return models.ErrSessionNotFound
	}
	delete(s.runs, sessionID)
	return nil
}

// Ask forwards a free-form question. Unlike quiz generation, failures are
// returned to the caller.
func (s *QuestService) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", models.ErrEmptyPrompt
	}
	if s.generator == nil {
		return "", models.ErrGeneratorDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, questTimeout)
	defer cancel()
	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to get response: %w", err)
	}
	return answer, nil
}

func (s *QuestService) generateQuestion(ctx context.Context, index int) models.Question {
	mcq := index < questMCQCount
	prompt := translationPrompt
	if mcq {
		prompt = mcqPrompt
	}

	if s.generator == nil {
		return failedFallback(mcq)
	}
	ctx, cancel := context.WithTimeout(ctx, questTimeout)
	defer cancel()
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).WithField("index", index).Warn("Failed to generate question, using fallback")
		return failedFallback(mcq)
	}

	if mcq {
		if q, ok := ParseMCQ(text); ok {
			return q
		}
		return malformedMCQ
	}
	if q, ok := ParseTranslation(text); ok {
		return q
	}
	return malformedTranslation
}

func failedFallback(mcq bool) models.Question {
	if mcq {
		return failedMCQ
	}
	return failedTranslation
}

func (s *QuestService) feedback(ctx context.Context, session *models.QuizSession) string {
	if s.generator == nil {
		return feedbackUnavailable
	}
	var sb strings.Builder
	sb.WriteString("Here is the student's quiz performance:\n")
	for i, q := range session.Questions {
		answer := ""
		if i < len(session.Answers) {
			answer = session.Answers[i]
		}
		fmt.Fprintf(&sb, "Question %d: %s\nStudent's answer: %s\nCorrect answer: %s\n\n", i+1, q.QuestionText, answer, q.CorrectAnswer)
	}
	sb.WriteString("Provide detailed feedback on their performance in plain text, highlighting weak areas and " +
		"suggesting specific improvements (e.g., focus on specific maxims, translation skills, or scenario analysis).")

	ctx, cancel := context.WithTimeout(ctx, questTimeout)
	defer cancel()
	text, err := s.generator.Generate(ctx, sb.String())
	if err != nil {
		log.WithError(err).WithField("session", session.ID).Warn("Failed to generate quiz feedback")
		return feedbackUnavailable
	}
	return text
}

// ParseMCQ extracts a multiple-choice question from generated text.
func ParseMCQ(text string) (models.Question, bool) {
	question := mcqQuestionRe.FindStringSubmatch(text)
	options := mcqOptionsRe.FindStringSubmatch(text)
	answer := mcqAnswerRe.FindStringSubmatch(text)
	if question == nil || options == nil || answer == nil {
		return models.Question{}, false
	}
	opts := make([]string, 0, 4)
	for _, o := range options[1:5] {
		opts = append(opts, strings.Trim(o, markup))
	}
	return models.Question{
		Type:          models.QuestionMCQ,
		QuestionText:  strings.Trim(question[1], markup),
		Options:       opts,
		CorrectAnswer: strings.ToLower(answer[1]),
	}, true
}

// ParseTranslation extracts a sentence/maxim pair from generated text.
func ParseTranslation(text string) (models.Question, bool) {
	sentence := sentenceRe.FindStringSubmatch(text)
	maxim := maximRe.FindStringSubmatch(text)
	if sentence == nil || maxim == nil {
		return models.Question{}, false
	}
	s := strings.Trim(sentence[1], markup)
	m := strings.Trim(maxim[1], markup+`"`)
	if s == "" || m == "" {
		return models.Question{}, false
	}
	return models.Question{
		Type:          models.QuestionTranslation,
		QuestionText:  s,
		CorrectAnswer: m,
	}, true
}

// CheckQuestAnswer compares the first letter for multiple choice and the
// trimmed, case-folded text for translations.
func CheckQuestAnswer(q models.Question, answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	if q.Type == models.QuestionMCQ {
		return strings.EqualFold(answer[:1], q.CorrectAnswer)
	}
	return strings.EqualFold(answer, strings.TrimSpace(q.CorrectAnswer))
}

// QuestTitle ranks a finished run by its points.
func QuestTitle(rewards int) string {
	switch {
	case rewards >= 100:
		return "Partner"
	case rewards >= 50:
		return "Senior Associate"
	default:
		return "Junior Lawyer"
	}
}

func snapshotSession(s *models.QuizSession) *models.QuizSession {
	c := *s
	c.Questions = nil
	c.Answers = nil
	return &c
}
