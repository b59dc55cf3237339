package model

import "time"

// Attendance holds one row per student per calendar day. Re-marking the same
// day updates the existing row instead of appending a duplicate.
type Attendance struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_attendance_student_date"`
	TeacherID uint      `json:"teacher_id" gorm:"not null;index"`
	Date      time.Time `json:"date" gorm:"not null;uniqueIndex:idx_attendance_student_date"`
	Status    string    `json:"status" gorm:"not null"` // "Present", "Absent", ...

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
