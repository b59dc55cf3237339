package model

import "time"

// ExamAttempt tracks the single current attempt per (student, exam).
// Attending again refreshes AttendedDate; submitting replaces the row.
type ExamAttempt struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	StudentID    uint      `json:"student_id" gorm:"not null;index"`
	ExamID       uint      `json:"exam_id" gorm:"not null;index"`
	CourseID     uint      `json:"course_id" gorm:"not null"`
	Score        *int      `json:"score,omitempty"` // nil until submitted
	AttendedDate time.Time `json:"attended_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
