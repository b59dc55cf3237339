package model

import "time"

type StudentAnswer struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	StudentID      uint   `json:"student_id" gorm:"not null;index"`
	ExamID         uint   `json:"exam_id" gorm:"not null;index"`
	QuestionID     uint   `json:"question_id" gorm:"not null;index"`
	SelectedOption string `json:"selected_option" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
