package dto

import "time"

type QuestionCreateRequest struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option" binding:"omitempty,oneof=A B C D"`
}

type ExamCreateRequest struct {
	Title     string                  `json:"title" binding:"required"`
	CourseID  uint                    `json:"course_id" binding:"required"`
	Questions []QuestionCreateRequest `json:"questions" binding:"required,min=1,dive"`
}

// QuestionResponse includes the correct option; only teacher-facing
// endpoints return it.
type QuestionResponse struct {
	ID            uint   `json:"id"`
	ExamID        uint   `json:"exam_id"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c,omitempty"`
	OptionD       string `json:"option_d,omitempty"`
	CorrectOption string `json:"correct_option"`
}

// StudentQuestionResponse hides the correct option from exam takers.
type StudentQuestionResponse struct {
	ID           uint   `json:"id"`
	ExamID       uint   `json:"exam_id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c,omitempty"`
	OptionD      string `json:"option_d,omitempty"`
}

type ExamResponse struct {
	ID        uint               `json:"id"`
	TeacherID uint               `json:"teacher_id"`
	CourseID  uint               `json:"course_id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// ExamSummaryResponse is the student-facing listing entry.
type ExamSummaryResponse struct {
	ID           uint       `json:"id"`
	CourseID     uint       `json:"course_id"`
	Title        string     `json:"title"`
	CreatedAt    time.Time  `json:"created_at"`
	Attended     bool       `json:"attended"`
	AttendedDate *time.Time `json:"attended_date,omitempty"`
	HasResult    bool       `json:"has_result"`
}

type ExamAttendResponse struct {
	ExamID       uint                      `json:"exam_id"`
	Title        string                    `json:"title"`
	Questions    []StudentQuestionResponse `json:"questions"`
	AttendedDate time.Time                 `json:"attended_date"`
}

// ExamSubmitRequest maps question id (stringified) to the chosen option.
// Unanswered questions are simply absent.
type ExamSubmitRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

type ExamResultResponse struct {
	ExamID          uint            `json:"exam_id"`
	ExamTitle       string          `json:"exam_title"`
	Score           int             `json:"score"`
	Total           int             `json:"total"`
	SubmittedAt     time.Time       `json:"submitted_at"`
	SelectedOptions map[uint]string `json:"selected_options,omitempty"` // question id -> option
}
