package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mockprep/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeTestRepo struct {
	tests map[uint]*model.Test
	err   error
}

func newFakeTestRepo(tests ...model.Test) *fakeTestRepo {
	r := &fakeTestRepo{tests: make(map[uint]*model.Test)}
	for i := range tests {
		t := tests[i]
		r.tests[t.ID] = &t
	}
	return r
}

func (r *fakeTestRepo) Create(ctx context.Context, test *model.Test) error {
	if r.err != nil {
		return r.err
	}
	test.ID = uint(len(r.tests) + 1)
	for i := range test.Questions {
		test.Questions[i].ID = uint(i + 1)
		test.Questions[i].TestID = test.ID
	}
	stored := *test
	r.tests[test.ID] = &stored
	return nil
}

func (r *fakeTestRepo) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	return r.FindByIDWithQuestions(ctx, id)
}

func (r *fakeTestRepo) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error) {
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTestRepo) FindAllWithQuestions(ctx context.Context) ([]model.Test, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]model.Test, 0, len(r.tests))
	for _, t := range r.tests {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTestRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	t, ok := r.tests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	return nil
}

type fakeAttemptRepo struct {
	mu       sync.Mutex
	attempts []model.TestAttempt
	err      error
}

func (r *fakeAttemptRepo) Create(ctx context.Context, attempt *model.TestAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *fakeAttemptRepo) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.attempts {
		if r.attempts[i].ID == id {
			cp := r.attempts[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttemptRepo) FindAllByTestAndUser(ctx context.Context, testID uint, userID uuid.UUID) ([]model.TestAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.TestAttempt
	for _, a := range r.attempts {
		if a.TestID == testID && a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttemptRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attempts)
}

type fakeMessageRepo struct {
	mu   sync.Mutex
	msgs []model.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = uint(len(r.msgs) + 1)
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *fakeMessageRepo) FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Message
	for i := len(r.msgs) - 1; i >= 0; i-- {
		if r.msgs[i].RecipientID == recipientID {
			out = append(out, r.msgs[i])
		}
	}
	return out, nil
}

func publishedModelTest() model.Test {
	return model.Test{
		ID:              1,
		Title:           "Mock Test 1",
		Status:          "published",
		DurationSeconds: 60,
		Questions: []model.Question{
			{ID: 11, TestID: 1, Text: "first", Options: datatypes.JSON(`["A","B"]`), CorrectAnswer: "A", OrderInTest: 1},
			{ID: 12, TestID: 1, Text: "second", Options: datatypes.JSON(`["X","Y"]`), CorrectAnswer: "Y", OrderInTest: 2},
			{ID: 13, TestID: 1, Text: "third", CorrectAnswer: "C", OrderInTest: 3},
		},
	}
}

func draftModelTest() model.Test {
	t := publishedModelTest()
	t.ID = 2
	t.Title = "Draft"
	t.Status = "draft"
	return t
}
