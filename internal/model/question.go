package model

import "time"

type Question struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	ExamID        uint   `json:"exam_id" gorm:"not null;index"`
	QuestionText  string `json:"question_text" gorm:"type:text;not null"`
	OptionA       string `json:"option_a" gorm:"not null"`
	OptionB       string `json:"option_b" gorm:"not null"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option" gorm:"not null"` // "A".."D"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
