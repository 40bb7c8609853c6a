package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/middleware"
	"github.com/lshigami/mockprep/internal/session"
)

type stubAttemptService struct {
	err       error
	lastIndex int
	lastValue string
}

func (s *stubAttemptService) StartAttempt(ctx context.Context, userID uuid.UUID, testID uint) (*dto.AttemptStateDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AttemptStateDTO{Status: "in_progress", TestID: testID}, nil
}

func (s *stubAttemptService) GetCurrentAttempt(ctx context.Context, userID uuid.UUID) (*dto.AttemptStateDTO, error) {
	return &dto.AttemptStateDTO{Status: "idle"}, s.err
}

func (s *stubAttemptService) AnswerQuestion(ctx context.Context, userID uuid.UUID, index int, value string) (*dto.AttemptStateDTO, error) {
	s.lastIndex, s.lastValue = index, value
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AttemptStateDTO{Status: "in_progress", AnsweredCount: 1}, nil
}

func (s *stubAttemptService) SubmitAttempt(ctx context.Context, userID uuid.UUID) (*dto.ResultDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ResultDTO{Status: "submitted"}, nil
}

func (s *stubAttemptService) GetResult(ctx context.Context, userID uuid.UUID, explain bool) (*dto.ResultDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ResultDTO{Status: "submitted", Score: 1}, nil
}

func (s *stubAttemptService) ResetAttempt(ctx context.Context, userID uuid.UUID) error {
	return s.err
}

func (s *stubAttemptService) GetUserAttemptsForTest(ctx context.Context, testID uint, userID uuid.UUID) ([]dto.TestAttemptSummaryDTO, error) {
	return nil, s.err
}

func (s *stubAttemptService) GetAttemptDetails(ctx context.Context, userID, attemptID uuid.UUID) (*dto.ResultDTO, error) {
	return nil, s.err
}

func (s *stubAttemptService) RecordExpired(ctx context.Context, e session.Expired) {}

type stubUserTestService struct {
	tests []dto.TestSummaryDTO
	err   error
}

func (s *stubUserTestService) GetAllTests(ctx context.Context, token string) ([]dto.TestSummaryDTO, error) {
	return s.tests, s.err
}

func (s *stubUserTestService) GetTestDetails(ctx context.Context, testID uint) (*dto.TestResponseDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.TestResponseDTO{ID: testID}, nil
}

func (s *stubUserTestService) PublishedTest(ctx context.Context, testID uint) (domain.Test, error) {
	return domain.Test{}, s.err
}

func newRouter(as *stubAttemptService, uts *stubUserTestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextUserID, uuid.New())
		ctx.Next()
	})

	attempts := NewAttemptController(as)
	tests := NewUserTestController(uts, as)
	r.GET("/tests", tests.GetAllTests)
	r.GET("/tests/:test_id", tests.GetTestDetails)
	r.POST("/tests/:test_id/attempts", tests.StartTestAttempt)
	r.PUT("/attempts/current/answers/:index", attempts.AnswerQuestion)
	r.GET("/attempts/current/result", attempts.GetResult)
	r.DELETE("/attempts/current", attempts.Reset)
	return r
}

func TestAttemptErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		method string
		path   string
		body   string
		want   int
	}{
		{name: "result while in progress", err: &domain.StateError{Op: "score", State: "in_progress"}, method: http.MethodGet, path: "/attempts/current/result", want: http.StatusConflict},
		{name: "answer out of range", err: &domain.IndexError{Index: 9, Count: 3}, method: http.MethodPut, path: "/attempts/current/answers/9", body: `{"value":"A"}`, want: http.StatusBadRequest},
		{name: "answer index not a number", method: http.MethodPut, path: "/attempts/current/answers/x", body: `{"value":"A"}`, want: http.StatusBadRequest},
		{name: "answer missing value", method: http.MethodPut, path: "/attempts/current/answers/0", body: `{}`, want: http.StatusBadRequest},
		{name: "reset in progress", err: &domain.StateError{Op: "reset", State: "in_progress"}, method: http.MethodDelete, path: "/attempts/current", want: http.StatusConflict},
		{name: "start unknown test", err: domain.ErrTestNotFound, method: http.MethodPost, path: "/tests/5/attempts", want: http.StatusNotFound},
		{name: "start bad id", method: http.MethodPost, path: "/tests/abc/attempts", want: http.StatusBadRequest},
		{name: "answer ok", method: http.MethodPut, path: "/attempts/current/answers/0", body: `{"value":"A"}`, want: http.StatusOK},
		{name: "reset ok", method: http.MethodDelete, path: "/attempts/current", want: http.StatusNoContent},
		{name: "start ok", method: http.MethodPost, path: "/tests/5/attempts", want: http.StatusCreated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&stubAttemptService{err: tc.err}, &stubUserTestService{})
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestAnswerPassesIndexAndValue(t *testing.T) {
	as := &stubAttemptService{}
	r := newRouter(as, &stubUserTestService{})

	req := httptest.NewRequest(http.MethodPut, "/attempts/current/answers/2", strings.NewReader(`{"value":"Paris"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if as.lastIndex != 2 || as.lastValue != "Paris" {
		t.Fatalf("service got (%d, %q)", as.lastIndex, as.lastValue)
	}
}

func TestCatalogFailureReturnsPreviousTestsWithNotification(t *testing.T) {
	uts := &stubUserTestService{
		tests: []dto.TestSummaryDTO{{ID: 1, Title: "Mock Test 1"}},
		err:   domain.ErrNetwork,
	}
	r := newRouter(&stubAttemptService{}, uts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tests", nil))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var body dto.CatalogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Tests) != 1 || body.Notification == nil || body.Notification.Level != "error" {
		t.Fatalf("body = %+v", body)
	}

	uts.err = domain.ErrAuth
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tests", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCatalogSuccessHasNoNotification(t *testing.T) {
	uts := &stubUserTestService{tests: []dto.TestSummaryDTO{{ID: 1}, {ID: 3}}}
	r := newRouter(&stubAttemptService{}, uts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tests", nil))

	var body dto.CatalogResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || len(body.Tests) != 2 || body.Notification != nil {
		t.Fatalf("status %d body %+v", w.Code, body)
	}
}
