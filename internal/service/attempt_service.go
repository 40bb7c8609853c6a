package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/model"
	"github.com/lshigami/mockprep/internal/repository"
	"github.com/lshigami/mockprep/internal/scoring"
	"github.com/lshigami/mockprep/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrAttemptNotFound = errors.New("attempt not found")

type AttemptService interface {
	StartAttempt(ctx context.Context, userID uuid.UUID, testID uint) (*dto.AttemptStateDTO, error)
	GetCurrentAttempt(ctx context.Context, userID uuid.UUID) (*dto.AttemptStateDTO, error)
	AnswerQuestion(ctx context.Context, userID uuid.UUID, index int, value string) (*dto.AttemptStateDTO, error)
	SubmitAttempt(ctx context.Context, userID uuid.UUID) (*dto.ResultDTO, error)
	GetResult(ctx context.Context, userID uuid.UUID, explain bool) (*dto.ResultDTO, error)
	ResetAttempt(ctx context.Context, userID uuid.UUID) error
	GetUserAttemptsForTest(ctx context.Context, testID uint, userID uuid.UUID) ([]dto.TestAttemptSummaryDTO, error)
	GetAttemptDetails(ctx context.Context, userID, attemptID uuid.UUID) (*dto.ResultDTO, error)
	// RecordExpired stores an attempt that ran out of time. It is the
	// session ticker's expiry hook.
	RecordExpired(ctx context.Context, e session.Expired)
}

type attemptService struct {
	store       *session.Store
	tests       UserTestService
	testRepo    repository.TestRepository
	attemptRepo repository.TestAttemptRepository
	messages    MessageService
	converter   ScoreConverterService
	explainer   ExplanationService

	mu       sync.Mutex
	recorded map[string]uuid.UUID // owner -> history id of the finished attempt
}

func NewAttemptService(
	store *session.Store,
	tests UserTestService,
	testRepo repository.TestRepository,
	attemptRepo repository.TestAttemptRepository,
	messages MessageService,
	converter ScoreConverterService,
	explainer ExplanationService,
) AttemptService {
	return &attemptService{
		store:       store,
		tests:       tests,
		testRepo:    testRepo,
		attemptRepo: attemptRepo,
		messages:    messages,
		converter:   converter,
		explainer:   explainer,
		recorded:    make(map[string]uuid.UUID),
	}
}

// withSession runs fn on the caller's session after giving it a chance to
// expire, so a request never acts on an attempt whose time is up.
func (s *attemptService) withSession(ctx context.Context, userID uuid.UUID, fn func(sess *session.Session) error) error {
	key := userID.String()
	var expired *session.Expired

	err := s.store.With(key, func(sess *session.Session) error {
		if sess.Tick() {
			a, _ := sess.Attempt()
			expired = &session.Expired{Key: key, Attempt: a, Test: sess.Test()}
		}
		return fn(sess)
	})

	if expired != nil {
		s.RecordExpired(ctx, *expired)
	}
	return err
}

func (s *attemptService) StartAttempt(ctx context.Context, userID uuid.UUID, testID uint) (*dto.AttemptStateDTO, error) {
	t, err := s.tests.PublishedTest(ctx, testID)
	if err != nil {
		return nil, err
	}

	var state dto.AttemptStateDTO
	err = s.withSession(ctx, userID, func(sess *session.Session) error {
		if err := sess.Apply(session.Start{Test: t}); err != nil {
			return err
		}
		state = stateDTO(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.forget(userID.String())
	log.Info().Str("userID", userID.String()).Uint("testID", testID).Msg("Attempt started")
	return &state, nil
}

func (s *attemptService) GetCurrentAttempt(ctx context.Context, userID uuid.UUID) (*dto.AttemptStateDTO, error) {
	var state dto.AttemptStateDTO
	err := s.withSession(ctx, userID, func(sess *session.Session) error {
		state = stateDTO(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *attemptService) AnswerQuestion(ctx context.Context, userID uuid.UUID, index int, value string) (*dto.AttemptStateDTO, error) {
	var state dto.AttemptStateDTO
	err := s.withSession(ctx, userID, func(sess *session.Session) error {
		if err := sess.Apply(session.Answer{QuestionIndex: index, Value: value}); err != nil {
			return err
		}
		state = stateDTO(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *attemptService) SubmitAttempt(ctx context.Context, userID uuid.UUID) (*dto.ResultDTO, error) {
	var (
		a domain.Attempt
		t domain.Test
	)
	err := s.withSession(ctx, userID, func(sess *session.Session) error {
		if err := sess.Apply(session.Submit{}); err != nil {
			return err
		}
		a, _ = sess.Attempt()
		t = sess.Test()
		return nil
	})
	if err != nil {
		return nil, err
	}

	id := s.record(ctx, userID, a, t)
	log.Info().Str("userID", userID.String()).Uint("testID", t.ID).Msg("Attempt submitted")
	return s.buildResult(ctx, id, a, t, false)
}

func (s *attemptService) RecordExpired(ctx context.Context, e session.Expired) {
	userID, err := uuid.Parse(e.Key)
	if err != nil {
		log.Error().Err(err).Str("owner", e.Key).Msg("Expired attempt has an unknown owner")
		return
	}
	s.record(ctx, userID, e.Attempt, e.Test)
}

func (s *attemptService) GetResult(ctx context.Context, userID uuid.UUID, explain bool) (*dto.ResultDTO, error) {
	var (
		a domain.Attempt
		t domain.Test
	)
	err := s.withSession(ctx, userID, func(sess *session.Session) error {
		attempt, ok := sess.Attempt()
		if !ok {
			return &domain.StateError{Op: "score", State: string(sess.State())}
		}
		a, t = attempt, sess.Test()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.buildResult(ctx, s.recordedID(userID.String()), a, t, explain)
}

func (s *attemptService) ResetAttempt(ctx context.Context, userID uuid.UUID) error {
	err := s.withSession(ctx, userID, func(sess *session.Session) error {
		return sess.Apply(session.Reset{})
	})
	if err != nil {
		return err
	}
	s.forget(userID.String())
	return nil
}

func (s *attemptService) GetUserAttemptsForTest(ctx context.Context, testID uint, userID uuid.UUID) ([]dto.TestAttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByTestAndUser(ctx, testID, userID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Str("userID", userID.String()).Msg("Failed to get user attempts for test")
		return nil, fmt.Errorf("database error fetching attempts: %w", err)
	}

	resp := make([]dto.TestAttemptSummaryDTO, 0, len(attempts))
	for _, m := range attempts {
		var item dto.TestAttemptSummaryDTO
		if err := copier.CopyWithOption(&item, &m, copyOptions); err != nil {
			log.Error().Err(err).Str("attemptID", m.ID.String()).Msg("Failed to copy attempt to summary")
			continue
		}
		item.TimeTaken = scoring.FormatElapsed(m.ElapsedSeconds)
		item.Percentage = s.percentage(m.Score, m.QuestionCount)
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *attemptService) GetAttemptDetails(ctx context.Context, userID, attemptID uuid.UUID) (*dto.ResultDTO, error) {
	m, err := s.attemptRepo.FindByIDWithDetails(ctx, attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("database error fetching attempt: %w", err)
	}
	if m.UserID != userID {
		return nil, ErrAttemptNotFound
	}

	tm, err := s.testRepo.FindByIDWithQuestions(ctx, m.TestID)
	if err != nil {
		return nil, fmt.Errorf("database error fetching test for attempt: %w", err)
	}
	t, err := toDomainTest(tm)
	if err != nil {
		return nil, err
	}

	a := domain.Attempt{
		TestID:     m.TestID,
		Answers:    make(map[int]string, len(m.Answers)),
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
		Budget:     t.Duration,
		Status:     domain.AttemptStatus(m.Status),
	}
	for _, ans := range m.Answers {
		a.Answers[ans.QuestionIndex] = ans.UserAnswer
	}
	return s.buildResult(ctx, m.ID, a, t, false)
}

// record writes a finished attempt to history and tells the user their
// score. Failures are logged; the in-memory result stays available.
func (s *attemptService) record(ctx context.Context, userID uuid.UUID, a domain.Attempt, t domain.Test) uuid.UUID {
	res, err := scoring.Score(a, t)
	if err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("Cannot score finished attempt")
		return uuid.Nil
	}

	m := &model.TestAttempt{
		ID:             uuid.New(),
		TestID:         t.ID,
		UserID:         userID,
		Status:         string(a.Status),
		StartedAt:      a.StartedAt,
		FinishedAt:     a.FinishedAt,
		ElapsedSeconds: int(a.Elapsed() / time.Second),
		Score:          res.Score,
		QuestionCount:  res.QuestionCount,
	}
	for i, q := range t.Questions {
		v, ok := a.Answer(i)
		if !ok {
			continue
		}
		m.Answers = append(m.Answers, model.Answer{
			QuestionID:    q.ID,
			QuestionIndex: i,
			UserAnswer:    v,
			IsCorrect:     res.IsCorrect(i),
		})
	}

	if err := s.attemptRepo.Create(ctx, m); err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Uint("testID", t.ID).Msg("Failed to save attempt history")
		return uuid.Nil
	}

	s.mu.Lock()
	s.recorded[userID.String()] = m.ID
	s.mu.Unlock()

	if err := s.messages.NotifyResult(ctx, userID, m.ID, t.Title, res.Score, res.QuestionCount); err != nil {
		log.Warn().Err(err).Str("userID", userID.String()).Msg("Failed to send result message")
	}
	return m.ID
}

func (s *attemptService) recordedID(key string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recorded[key]
}

func (s *attemptService) forget(key string) {
	s.mu.Lock()
	delete(s.recorded, key)
	s.mu.Unlock()
}

func (s *attemptService) percentage(score, count int) float64 {
	pct, err := s.converter.ConvertToPercentage(score, count)
	if err != nil {
		log.Warn().Err(err).Int("score", score).Int("questionCount", count).Msg("Failed to convert score to percentage")
		return 0
	}
	return pct
}

func (s *attemptService) buildResult(ctx context.Context, attemptID uuid.UUID, a domain.Attempt, t domain.Test, explain bool) (*dto.ResultDTO, error) {
	res, err := scoring.Score(a, t)
	if err != nil {
		return nil, err
	}

	elapsed := int(a.Elapsed() / time.Second)
	resp := &dto.ResultDTO{
		TestID:           t.ID,
		TestTitle:        t.Title,
		Status:           string(res.Status),
		Score:            res.Score,
		QuestionCount:    res.QuestionCount,
		Percentage:       s.percentage(res.Score, res.QuestionCount),
		CorrectAnswers:   append(make([]int, 0, len(res.CorrectIndexes)), res.CorrectIndexes...),
		IncorrectAnswers: make([]dto.IncorrectAnswerDTO, 0, len(res.IncorrectAnswers)),
		Unanswered:       append(make([]int, 0, len(res.Unanswered)), res.Unanswered...),
		ElapsedSeconds:   elapsed,
		TimeTaken:        scoring.FormatElapsed(elapsed),
	}
	if attemptID != uuid.Nil {
		resp.AttemptID = attemptID.String()
	}
	for _, inc := range res.IncorrectAnswers {
		resp.IncorrectAnswers = append(resp.IncorrectAnswers, dto.IncorrectAnswerDTO{QuestionIndex: inc.QuestionIndex, UserAnswer: inc.UserAnswer})
	}

	review := scoring.Review(res, a, t)
	resp.Review = make([]dto.ReviewItemDTO, len(review))
	for i, item := range review {
		userAnswer := item.UserAnswer
		if item.Outcome == scoring.OutcomeUnanswered {
			userAnswer = dto.NotAnswered
		}
		resp.Review[i] = dto.ReviewItemDTO{
			Index:         item.Index,
			Question:      item.Question,
			Options:       item.Options,
			UserAnswer:    userAnswer,
			CorrectAnswer: item.CorrectAnswer,
			Outcome:       string(item.Outcome),
		}
	}

	if explain {
		s.explain(ctx, review, resp.Review)
	}
	return resp, nil
}

// explain fills in explanations for missed questions concurrently. Each
// goroutine writes only its own element of out.
func (s *attemptService) explain(ctx context.Context, review []scoring.ReviewItem, out []dto.ReviewItemDTO) {
	if s.explainer == nil {
		return
	}
	var wg sync.WaitGroup
	for i, item := range review {
		if item.Outcome == scoring.OutcomeCorrect {
			continue
		}
		wg.Add(1)
		go func(i int, item scoring.ReviewItem) {
			defer wg.Done()
			text, err := s.explainer.Explain(ctx, item)
			if err != nil {
				if !errors.Is(err, ErrExplainerUnavailable) {
					log.Warn().Err(err).Int("questionIndex", item.Index).Msg("Failed to explain answer")
				}
				return
			}
			out[i].Explanation = text
		}(i, item)
	}
	wg.Wait()
}

func stateDTO(sess *session.Session) dto.AttemptStateDTO {
	elapsed := int(sess.Elapsed() / time.Second)
	remaining := int(sess.Remaining() / time.Second)
	state := dto.AttemptStateDTO{
		Status:           string(sess.State()),
		ElapsedSeconds:   elapsed,
		Elapsed:          scoring.FormatElapsed(elapsed),
		RemainingSeconds: remaining,
		Remaining:        scoring.FormatElapsed(remaining),
	}
	a, ok := sess.Attempt()
	if !ok {
		return state
	}
	t := sess.Test()
	state.TestID = t.ID
	state.TestTitle = t.Title
	state.QuestionCount = t.QuestionCount()
	state.AnsweredCount = len(a.Answers)
	state.Answers = a.Answers
	return state
}
