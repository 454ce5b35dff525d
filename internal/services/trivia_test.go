package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/SYH32/trivia-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeStore struct {
	categories []models.Category
	questions  []models.Question
	nextID     uint
	err        error
}

func (f *fakeStore) ListCategories(context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Category(nil), f.categories...), nil
}

func (f *fakeStore) ListQuestions(context.Context) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Question(nil), f.questions...), nil
}

func (f *fakeStore) QuestionsByCategory(_ context.Context, categoryID uint) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Question
	for _, q := range f.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeStore) SearchQuestions(context.Context, string) ([]models.Question, error) {
	return f.ListQuestions(context.Background())
}

func (f *fakeStore) CreateQuestion(_ context.Context, q *models.Question) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	q.ID = f.nextID
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeStore) DeleteQuestion(_ context.Context, id uint) error {
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeStore) Ping(context.Context) error { return f.err }

func newStore(n int) *fakeStore {
	s := &fakeStore{categories: []models.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}}
	for i := 1; i <= n; i++ {
		s.questions = append(s.questions, models.Question{
			ID:       uint(i),
			Question: "q",
			Answer:   "a",
			Category: uint(i%2 + 1),
		})
	}
	s.nextID = uint(n)
	return s
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"partial last page", 2, []int{11, 12}},
		{"past the end", 3, []int{}},
		{"zero", 0, []int{}},
		{"negative", -1, []int{}},
		{"overflowing offset", 922337203685477582, []int{}},
		{"max int", math.MaxInt, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page, QuestionsPerPage))
		})
	}
}

func TestCategoriesEmptyIsNotFound(t *testing.T) {
	svc := NewTriviaService(&fakeStore{}, zaptest.NewLogger(t))
	_, err := svc.Categories(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoriesMapping(t *testing.T) {
	svc := NewTriviaService(newStore(0), zaptest.NewLogger(t))
	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art"}, categories)
}

func TestListQuestionsPages(t *testing.T) {
	svc := NewTriviaService(newStore(19), zaptest.NewLogger(t))
	ctx := context.Background()

	page, err := svc.ListQuestions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 9)
	assert.Equal(t, 19, page.TotalQuestions)
	assert.Len(t, page.Categories, 2)

	_, err = svc.ListQuestions(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchEmptyTermIsNotFound(t *testing.T) {
	svc := NewTriviaService(newStore(3), zaptest.NewLogger(t))
	_, err := svc.SearchQuestions(context.Background(), "", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionsByCategoryWithoutMatches(t *testing.T) {
	svc := NewTriviaService(newStore(3), zaptest.NewLogger(t))
	_, err := svc.QuestionsByCategory(context.Background(), 9, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	store := newStore(3)
	store.err = boom
	svc := NewTriviaService(store, zaptest.NewLogger(t))

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	_, err = svc.CreateQuestion(context.Background(), QuestionInput{Question: "q", Answer: "a", Difficulty: 1, Category: 1})
	assert.ErrorIs(t, err, boom)

	_, err = svc.NextQuizQuestion(context.Background(), nil, AllCategories)
	assert.ErrorIs(t, err, boom)
}

func TestCreateAndDeleteQuestion(t *testing.T) {
	store := newStore(2)
	svc := NewTriviaService(store, zaptest.NewLogger(t))
	ctx := context.Background()

	q, err := svc.CreateQuestion(ctx, QuestionInput{Question: "Who?", Answer: "Me", Difficulty: 2, Category: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, q.ID)

	require.NoError(t, svc.DeleteQuestion(ctx, q.ID))
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, q.ID), ErrNotFound)
}

func TestNextQuizQuestionExcludesPrevious(t *testing.T) {
	store := newStore(10)
	svc := NewTriviaService(store, zaptest.NewLogger(t))
	ctx := context.Background()

	var previous []uint
	for range store.questions {
		q, err := svc.NextQuizQuestion(ctx, previous, AllCategories)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, previous, q.ID)
		previous = append(previous, q.ID)
	}

	q, err := svc.NextQuizQuestion(ctx, previous, AllCategories)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuizQuestionRestrictsCategory(t *testing.T) {
	svc := NewTriviaService(newStore(10), zaptest.NewLogger(t))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		q, err := svc.NextQuizQuestion(ctx, []uint{2}, 1)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.EqualValues(t, 1, q.Category)
		assert.NotEqualValues(t, 2, q.ID)
	}
}

func TestNextQuizQuestionUsesPicker(t *testing.T) {
	svc := NewTriviaService(newStore(4), zaptest.NewLogger(t))
	svc.intn = func(n int) int { return n - 1 }

	q, err := svc.NextQuizQuestion(context.Background(), []uint{4}, AllCategories)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.EqualValues(t, 3, q.ID)
}
