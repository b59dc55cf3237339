package model

import "time"

type Student struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null;uniqueIndex"`
	Password string `json:"-" gorm:"not null"`
	Age      int    `json:"age" gorm:"not null"`
	Grade    string `json:"grade" gorm:"not null"`

	Courses []Course `json:"courses,omitempty" gorm:"many2many:student_courses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
