package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}
