package model

import "time"

type RecordedClass struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TeacherID uint      `json:"teacher_id" gorm:"not null;index"`
	CourseID  uint      `json:"course_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Filename  string    `json:"filename" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
