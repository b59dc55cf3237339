package model

import "time"

type Feedback struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	StudentID uint       `json:"student_id" gorm:"not null;index"`
	TeacherID uint       `json:"teacher_id" gorm:"not null;index"`
	Message   string     `json:"message" gorm:"type:text;not null"`
	Reply     *string    `json:"reply,omitempty" gorm:"type:text"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
