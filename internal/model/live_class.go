package model

import "time"

type LiveClass struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TeacherID uint      `json:"teacher_id" gorm:"not null;index"`
	CourseID  uint      `json:"course_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	StartTime string    `json:"start_time" gorm:"not null"` // "15:04"
	Platform  string    `json:"platform,omitempty"`
	Link      string    `json:"link" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
