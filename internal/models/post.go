package models

// Post is a piece of content owned by a user. The owner is checked when the
// post is created; no foreign key is enforced afterwards.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"column:userId" json:"userId"`
	Content string `json:"content"`
}

func (Post) TableName() string {
	return "posts"
}
