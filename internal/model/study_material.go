package model

import "time"

type StudyMaterial struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	TeacherID   uint      `json:"teacher_id" gorm:"not null;index"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Filename    string    `json:"filename"`
	UploadDate  time.Time `json:"upload_date" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
