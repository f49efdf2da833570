package models

// StatusPlanned is the reading status a freshly created book starts in.
const StatusPlanned = "In plan"

// Book is a single entry in a user's reading tracker.
type Book struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Author      string `json:"author"`
	Status      string `gorm:"default:'In plan'" json:"status"`
	ImageURL    string `gorm:"default:''" json:"image_url"`
	Description string `gorm:"type:text;default:''" json:"description"`
	CurrentPage int    `gorm:"default:0" json:"current_page"`
	Rating      int    `gorm:"default:0" json:"rating"`

	UserID int64 `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Book) TableName() string {
	return "books"
}
