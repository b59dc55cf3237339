package dto

import "time"

type ProgressUpdateRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=material recorded live exam"`
	ItemID    uint   `json:"item_id" binding:"required"`
	Completed bool   `json:"completed"`
}

type ProgressItem struct {
	Kind           string     `json:"kind"`
	ItemID         uint       `json:"item_id"`
	CourseID       uint       `json:"course_id"`
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

type ProgressSummaryResponse struct {
	StudentID      uint           `json:"student_id"`
	StudentName    string         `json:"student_name,omitempty"`
	Items          []ProgressItem `json:"items,omitempty"`
	TotalItems     int            `json:"total_items"`
	CompletedItems int            `json:"completed_items"`
	Percent        int            `json:"percent"` // floor, 0..100
}

// StudentProgressRow backs the teacher's class-wide progress table.
type StudentProgressRow struct {
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name"`
	Percent     int    `json:"percent"`
}
