package dto

import "time"

type CourseCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"` // "2006-01-02"
}

type CourseUpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CourseResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CourseSnapshot is returned on delete and accepted back by the undo
// endpoint to restore the course with its teacher assignments.
type CourseSnapshot struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TeacherIDs  []uint `json:"teacher_ids"`
}

type CourseChartEntry struct {
	Name          string `json:"name"`
	StudentCount  int    `json:"student_count"`
	MaterialCount int    `json:"material_count"`
}

type AdminDashboardResponse struct {
	TotalStudents  int64              `json:"total_students"`
	TotalTeachers  int64              `json:"total_teachers"`
	TotalCourses   int64              `json:"total_courses"`
	TotalMaterials int64              `json:"total_materials"`
	Courses        []CourseChartEntry `json:"courses"`
}
