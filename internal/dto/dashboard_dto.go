package dto

import "time"

type StudentProfileResponse struct {
	ID      uint             `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Age     int              `json:"age"`
	Grade   string           `json:"grade"`
	Courses []CourseResponse `json:"courses,omitempty"`
}

type StudentProfileUpdateRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Age       int    `json:"age" binding:"required,min=10,max=100"`
	Grade     string `json:"grade" binding:"required"`
	CourseIDs []uint `json:"course_ids"`
}

type TeacherProfileResponse struct {
	ID                uint             `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Qualifications    string           `json:"qualifications"`
	Availability      string           `json:"availability"`
	YearsOfExperience int              `json:"years_of_experience"`
	Contact           string           `json:"contact"`
	Place             string           `json:"place"`
	Photo             string           `json:"photo"`
	Status            string           `json:"status"`
	Courses           []CourseResponse `json:"courses,omitempty"`
}

// TeacherProfileUpdateRequest is multipart so the photo can be replaced.
type TeacherProfileUpdateRequest struct {
	Name              string `form:"name" binding:"required"`
	Email             string `form:"email" binding:"required,email"`
	Qualifications    string `form:"qualifications" binding:"required"`
	Availability      string `form:"availability" binding:"required"`
	YearsOfExperience int    `form:"years_of_experience" binding:"min=0,max=50"`
	Contact           string `form:"contact" binding:"required,len=10,numeric"`
	Place             string `form:"place" binding:"required"`
	CourseID          *uint  `form:"course_id"`
	SecondCourseID    *uint  `form:"second_course_id"`
}

type StudentDashboardResponse struct {
	CurrentDate       string                  `json:"current_date"`
	Student           StudentProfileResponse  `json:"student"`
	AttendancePercent float64                 `json:"attendance_percent"`
	TotalDays         int                     `json:"total_days"`
	ProgressPercent   int                     `json:"progress_percent"`
	CompletedItems    int                     `json:"completed_items"`
	TotalItems        int                     `json:"total_items"`
	Exams             []ExamSummaryResponse   `json:"exams"`
	Materials         []MaterialResponse      `json:"materials"`
	RecordedClasses   []RecordedClassResponse `json:"recorded_classes"`
	LiveClasses       []LiveClassResponse     `json:"live_classes"`
}

type TeacherDashboardResponse struct {
	CurrentDate string                 `json:"current_date"`
	Teacher     TeacherProfileResponse `json:"teacher"`
	Students    []StudentSummary       `json:"students"`
	Exams       []ExamResponse         `json:"exams"`
}

type StudentSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Grade string `json:"grade"`
}

type TeacherSummary struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Qualifications string    `json:"qualifications"`
	Photo          string    `json:"photo"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
