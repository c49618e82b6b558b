package model

import "time"

const (
	// MaxTitleLen and MaxDescLen bound the todo form fields.
	MaxTitleLen = 200
	MaxDescLen  = 500
)

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	// Password holds only the bcrypt hash, never plaintext.
	Password string `json:"-" gorm:"not null"`
}

type Todo struct {
	Sno         int       `json:"sno" form:"sno" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" form:"title" gorm:"size:200;not null"`
	Desc        string    `json:"desc" form:"desc" gorm:"size:500;not null"`
	DateCreated time.Time `json:"dateCreated" gorm:"column:date_created"`
	UserId      int       `json:"-" gorm:"index;not null"`
}
