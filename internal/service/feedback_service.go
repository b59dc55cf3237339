package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
)

type FeedbackService interface {
	// Submit stores feedback addressed to a teacher who teaches at least
	// one of the student's courses.
	Submit(studentID uint, req dto.FeedbackCreateRequest) (*dto.FeedbackResponse, error)
	StudentFeedbacks(studentID uint) ([]dto.FeedbackResponse, error)
	TeacherFeedbacks(teacherID uint) ([]dto.FeedbackResponse, error)
	// Reply attaches the teacher's answer. Only the addressed teacher may
	// reply.
	Reply(teacherID, feedbackID uint, req dto.FeedbackReplyRequest) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	studentRepo  repository.StudentRepository
	teacherRepo  repository.TeacherRepository
}

func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo, studentRepo: studentRepo, teacherRepo: teacherRepo}
}

func (s *feedbackService) Submit(studentID uint, req dto.FeedbackCreateRequest) (*dto.FeedbackResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, 0, len(student.Courses))
	for _, c := range student.Courses {
		courseIDs = append(courseIDs, c.ID)
	}
	if len(courseIDs) == 0 {
		return nil, ErrNotEnrolled
	}
	teachers, err := s.teacherRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load teachers: %w", err)
	}
	allowed := false
	for _, t := range teachers {
		if t.ID == req.TeacherID {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrNotEnrolled
	}

	feedback := model.Feedback{
		StudentID: studentID,
		TeacherID: req.TeacherID,
		Message:   req.Message,
	}
	if err := s.feedbackRepo.Create(&feedback); err != nil {
		log.Error().Err(err).Uint("student_id", studentID).Uint("teacher_id", req.TeacherID).
			Msg("Failed to create feedback")
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	log.Info().Uint("feedback_id", feedback.ID).Msg("Feedback submitted")
	return toFeedbackResponse(&feedback), nil
}

func (s *feedbackService) StudentFeedbacks(studentID uint) ([]dto.FeedbackResponse, error) {
	feedbacks, err := s.feedbackRepo.FindByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return toFeedbackResponses(feedbacks), nil
}

func (s *feedbackService) TeacherFeedbacks(teacherID uint) ([]dto.FeedbackResponse, error) {
	feedbacks, err := s.feedbackRepo.FindByTeacher(teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return toFeedbackResponses(feedbacks), nil
}

func (s *feedbackService) Reply(teacherID, feedbackID uint, req dto.FeedbackReplyRequest) (*dto.FeedbackResponse, error) {
	feedback, err := s.feedbackRepo.FindByID(feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	now := time.Now()
	reply := req.Reply
	feedback.Reply = &reply
	feedback.RepliedAt = &now
	if err := s.feedbackRepo.Update(feedback); err != nil {
		log.Error().Err(err).Uint("feedback_id", feedbackID).Msg("Failed to save feedback reply")
		return nil, fmt.Errorf("failed to save reply: %w", err)
	}
	log.Info().Uint("feedback_id", feedbackID).Msg("Feedback reply saved")
	return toFeedbackResponse(feedback), nil
}

func toFeedbackResponse(f *model.Feedback) *dto.FeedbackResponse {
	var resp dto.FeedbackResponse
	copier.Copy(&resp, f)
	return &resp
}

func toFeedbackResponses(feedbacks []model.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		responses = append(responses, *toFeedbackResponse(&feedbacks[i]))
	}
	return responses
}
