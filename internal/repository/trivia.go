package repository

import (
	"context"
	"fmt"

	"github.com/SYH32/trivia-api/internal/models"
	"github.com/SYH32/trivia-api/internal/services"

	"gorm.io/gorm"
)

type TriviaRepository struct {
	db *gorm.DB
}

func NewTriviaRepository(db *gorm.DB) *TriviaRepository {
	return &TriviaRepository{db: db}
}

var _ services.TriviaStore = (*TriviaRepository)(nil)

func (r *TriviaRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("type ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *TriviaRepository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (r *TriviaRepository) QuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}

// SearchQuestions uses LOWER(...) LIKE instead of ILIKE so the query runs
// on both postgres and sqlite. The term is not escaped: '%' and '_' keep
// their wildcard meaning.
func (r *TriviaRepository) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (r *TriviaRepository) CreateQuestion(ctx context.Context, question *models.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (r *TriviaRepository) DeleteQuestion(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("question %d: %w", id, services.ErrNotFound)
	}
	return nil
}

func (r *TriviaRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
