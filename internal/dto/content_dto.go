package dto

import "time"

// MaterialUploadRequest is multipart: the document itself comes in the "file"
// form field.
type MaterialUploadRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	CourseID    uint   `form:"course_id" binding:"required"`
}

type MaterialUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type MaterialResponse struct {
	ID          uint      `json:"id"`
	TeacherID   uint      `json:"teacher_id"`
	CourseID    uint      `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Filename    string    `json:"filename"`
	UploadDate  time.Time `json:"upload_date"`
}

// RecordedClassUploadRequest is multipart: the video comes in the "video"
// form field.
type RecordedClassUploadRequest struct {
	Title    string `form:"title" binding:"required"`
	Date     string `form:"date" binding:"required"` // "2006-01-02"
	CourseID uint   `form:"course_id" binding:"required"`
}

type RecordedClassUpdateRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

type RecordedClassResponse struct {
	ID        uint      `json:"id"`
	TeacherID uint      `json:"teacher_id"`
	CourseID  uint      `json:"course_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Filename  string    `json:"filename"`
}

type LiveClassCreateRequest struct {
	Title     string `json:"title" binding:"required"`
	Date      string `json:"date" binding:"required"`       // "2006-01-02"
	StartTime string `json:"start_time" binding:"required"` // "15:04"
	Platform  string `json:"platform" binding:"required"`
	Link      string `json:"link" binding:"required,url"`
	CourseID  uint   `json:"course_id" binding:"required"`
}

type LiveClassUpdateRequest struct {
	Title     string `json:"title" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Platform  string `json:"platform" binding:"required"`
	Link      string `json:"link" binding:"required,url"`
}

type LiveClassResponse struct {
	ID        uint      `json:"id"`
	TeacherID uint      `json:"teacher_id"`
	CourseID  uint      `json:"course_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	Platform  string    `json:"platform,omitempty"`
	Link      string    `json:"link"`
}
