package model

import "time"

type Exam struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	TeacherID uint   `json:"teacher_id" gorm:"not null;index"`
	CourseID  uint   `json:"course_id" gorm:"not null;index"`
	Title     string `json:"title" gorm:"not null"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
