package model

import "time"

type ExamResult struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	StudentID   uint      `json:"student_id" gorm:"not null;index"`
	ExamID      uint      `json:"exam_id" gorm:"not null;index"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
