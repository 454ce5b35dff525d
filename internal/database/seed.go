package database

import (
	"fmt"

	"github.com/SYH32/trivia-api/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var seedCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

var seedQuestions = []models.Question{
	{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
	{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
	{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
	{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: 5, Difficulty: 4},
	{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3},
	{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
	{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
	{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
	{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
	{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
	{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
	{Question: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
	{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
	{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
	{Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: 2, Difficulty: 2},
	{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
	{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
	{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
	{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: 4, Difficulty: 4},
}

// Seed loads the fixture categories and questions. It does nothing when the
// categories table already holds rows, so it is safe to run on every start.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		logger.Info("seed skipped, categories already present", zap.Int64("categories", count))
		return nil
	}

	categories := make([]models.Category, len(seedCategories))
	copy(categories, seedCategories)
	questions := make([]models.Question, len(seedQuestions))
	copy(questions, seedQuestions)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("database seeded",
		zap.Int("categories", len(categories)),
		zap.Int("questions", len(questions)))
	return nil
}
