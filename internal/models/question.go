package models

// Question.Category references Category.ID but carries no foreign key
// constraint; rows pointing at a missing category are allowed.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
