package domain

// Category is the only resource exposed by the service.
type Category struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug  string `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Title string `json:"title" gorm:"size:255;not null"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryInput is the validated write payload for create and update.
type CategoryInput struct {
	Title string `json:"title"`
}
