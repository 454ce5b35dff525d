package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/SYH32/trivia-api/internal/models"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")

const QuestionsPerPage = 10

// AllCategories as a quiz category id draws from every question.
const AllCategories uint = 0

// TriviaStore is the persistence boundary of the service. List methods
// return questions ordered by id and categories ordered by type.
type TriviaStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	QuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	CreateQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type QuestionPage struct {
	Questions      []models.Question
	TotalQuestions int
	Categories     map[uint]string
}

type QuestionInput struct {
	Question   string
	Answer     string
	Difficulty int
	Category   uint
}

type TriviaService struct {
	store  TriviaStore
	logger *zap.Logger
	intn   func(n int) int
}

func NewTriviaService(store TriviaStore, logger *zap.Logger) *TriviaService {
	return &TriviaService{store: store, logger: logger, intn: rand.Intn}
}

// Paginate returns the 1-indexed page of items. Pages before the first or
// past the last are empty.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage < 1 || len(items) == 0 ||
		page-1 > (len(items)-1)/perPage {
		return []T{}
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	return items[start:end]
}

func (s *TriviaService) Categories(ctx context.Context) (map[uint]string, error) {
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return categories, nil
}

func (s *TriviaService) categoryMap(ctx context.Context) (map[uint]string, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uint]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out, nil
}

func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, questions, page)
}

// SearchQuestions matches term case-insensitively anywhere in the question
// text. An empty term is reported as ErrNotFound.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	if term == "" {
		return nil, ErrNotFound
	}
	questions, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.page(ctx, questions, page)
}

func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID uint, page int) (*QuestionPage, error) {
	questions, err := s.store.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return s.page(ctx, questions, page)
}

func (s *TriviaService) page(ctx context.Context, questions []models.Question, page int) (*QuestionPage, error) {
	current := Paginate(questions, page, QuestionsPerPage)
	if len(current) == 0 {
		return nil, ErrNotFound
	}
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return nil, err
	}
	return &QuestionPage{
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

func (s *TriviaService) CreateQuestion(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		Category:   input.Category,
	}
	if err := s.store.CreateQuestion(ctx, &question); err != nil {
		s.logger.Error("create question failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("question created",
		zap.Uint("question_id", question.ID),
		zap.Uint("category", question.Category))
	return &question, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("delete question failed", zap.Uint("question_id", id), zap.Error(err))
		}
		return err
	}
	s.logger.Info("question deleted", zap.Uint("question_id", id))
	return nil
}

// NextQuizQuestion picks a random question that is not in previous,
// restricted to categoryID unless it is AllCategories. It returns nil
// without error once every candidate has been played.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, previous []uint, categoryID uint) (*models.Question, error) {
	var (
		candidates []models.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.store.ListQuestions(ctx)
	} else {
		candidates, err = s.store.QuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz candidates: %w", err)
	}

	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]models.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	picked := remaining[s.intn(len(remaining))]
	return &picked, nil
}

func (s *TriviaService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
