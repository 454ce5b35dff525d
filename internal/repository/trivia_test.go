package repository_test

import (
	"context"
	"testing"

	"github.com/SYH32/trivia-api/internal/config"
	"github.com/SYH32/trivia-api/internal/database"
	"github.com/SYH32/trivia-api/internal/models"
	"github.com/SYH32/trivia-api/internal/repository"
	"github.com/SYH32/trivia-api/internal/services"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type TriviaRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo *repository.TriviaRepository
	ctx  context.Context
}

func TestTriviaRepository(t *testing.T) {
	suite.Run(t, new(TriviaRepositorySuite))
}

func (s *TriviaRepositorySuite) SetupTest() {
	db, err := database.Connect(&config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: ":memory:",
	}, zaptest.NewLogger(s.T()))
	require.NoError(s.T(), err)
	require.NoError(s.T(), database.AutoMigrate(db))

	s.db = db
	s.repo = repository.NewTriviaRepository(db)
	s.ctx = context.Background()

	require.NoError(s.T(), db.Create(&[]models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}).Error)
	require.NoError(s.T(), db.Create(&[]models.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
	}).Error)
}

func (s *TriviaRepositorySuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (s *TriviaRepositorySuite) TestListCategoriesOrderedByType() {
	categories, err := s.repo.ListCategories(s.ctx)
	s.Require().NoError(err)

	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}
	s.Equal([]string{"Art", "Geography", "Science"}, types)
}

func (s *TriviaRepositorySuite) TestListQuestionsOrderedByID() {
	questions, err := s.repo.ListQuestions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(questions, 3)
	for i := 1; i < len(questions); i++ {
		s.Less(questions[i-1].ID, questions[i].ID)
	}
}

func (s *TriviaRepositorySuite) TestQuestionsByCategory() {
	questions, err := s.repo.QuestionsByCategory(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(questions, 2)
	for _, q := range questions {
		s.EqualValues(1, q.Category)
	}

	none, err := s.repo.QuestionsByCategory(s.ctx, 42)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *TriviaRepositorySuite) TestSearchIsCaseInsensitive() {
	questions, err := s.repo.SearchQuestions(s.ctx, "PENICILLIN")
	s.Require().NoError(err)
	s.Require().Len(questions, 1)
	s.Equal("Alexander Fleming", questions[0].Answer)

	questions, err = s.repo.SearchQuestions(s.ctx, "is")
	s.Require().NoError(err)
	s.Len(questions, 3)
}

func (s *TriviaRepositorySuite) TestCreateAssignsID() {
	q := models.Question{Question: "Largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2}
	s.Require().NoError(s.repo.CreateQuestion(s.ctx, &q))
	s.NotZero(q.ID)

	questions, err := s.repo.ListQuestions(s.ctx)
	s.Require().NoError(err)
	s.Len(questions, 4)
	s.Equal(q.ID, questions[3].ID)
}

func (s *TriviaRepositorySuite) TestDeleteQuestion() {
	questions, err := s.repo.ListQuestions(s.ctx)
	s.Require().NoError(err)
	id := questions[0].ID

	s.Require().NoError(s.repo.DeleteQuestion(s.ctx, id))

	err = s.repo.DeleteQuestion(s.ctx, id)
	s.ErrorIs(err, services.ErrNotFound)

	remaining, err := s.repo.ListQuestions(s.ctx)
	s.Require().NoError(err)
	s.Len(remaining, 2)
}

func (s *TriviaRepositorySuite) TestPing() {
	s.NoError(s.repo.Ping(s.ctx))
}
