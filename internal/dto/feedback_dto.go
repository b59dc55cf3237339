package dto

import "time"

type FeedbackCreateRequest struct {
	TeacherID uint   `json:"teacher_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type FeedbackReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

type FeedbackResponse struct {
	ID        uint       `json:"id"`
	StudentID uint       `json:"student_id"`
	TeacherID uint       `json:"teacher_id"`
	Message   string     `json:"message"`
	Reply     *string    `json:"reply,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
}
