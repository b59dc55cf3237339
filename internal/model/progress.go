package model

import "time"

// Progress is one completion flag per (student, content item). The item is
// addressed by (Kind, ItemID) and the pair is unique per student.
type Progress struct {
	ID             uint        `gorm:"primarykey" json:"id"`
	StudentID      uint        `json:"student_id" gorm:"not null;uniqueIndex:idx_progress_student_item"`
	Kind           ContentKind `json:"kind" gorm:"not null;uniqueIndex:idx_progress_student_item"`
	ItemID         uint        `json:"item_id" gorm:"not null;uniqueIndex:idx_progress_student_item"`
	CourseID       uint        `json:"course_id" gorm:"not null;index"`
	Completed      bool        `json:"completed" gorm:"default:false"`
	CompletionDate *time.Time  `json:"completion_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
