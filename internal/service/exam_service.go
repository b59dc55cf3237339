package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

type ExamService interface {
	Create(teacherID uint, req dto.ExamCreateRequest) (*dto.ExamResponse, error)
	Get(teacherID, examID uint) (*dto.ExamResponse, error)
	Delete(teacherID, examID uint) error
	TeacherExams(teacherID uint) ([]dto.ExamResponse, error)

	StudentExams(studentID uint) ([]dto.ExamSummaryResponse, error)
	// Attend opens (or reopens) the exam for the student. Reattending wipes
	// earlier answers and results so the attempt starts from a clean slate.
	Attend(studentID, examID uint) (*dto.ExamAttendResponse, error)
	// Submit grades the answers and replaces any previous attempt outright.
	Submit(studentID, examID uint, req dto.ExamSubmitRequest) (*dto.ExamResultResponse, error)
	Result(studentID, examID uint) (*dto.ExamResultResponse, error)
}

type examService struct {
	db          *gorm.DB
	examRepo    repository.ExamRepository
	attemptRepo repository.ExamAttemptRepository
	resultRepo  repository.ExamResultRepository
	answerRepo  repository.StudentAnswerRepository
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
}

func NewExamService(
	db *gorm.DB,
	examRepo repository.ExamRepository,
	attemptRepo repository.ExamAttemptRepository,
	resultRepo repository.ExamResultRepository,
	answerRepo repository.StudentAnswerRepository,
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
) ExamService {
	return &examService{
		db:          db,
		examRepo:    examRepo,
		attemptRepo: attemptRepo,
		resultRepo:  resultRepo,
		answerRepo:  answerRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
	}
}

func (s *examService) Create(teacherID uint, req dto.ExamCreateRequest) (*dto.ExamResponse, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, err
	}
	owns := false
	for _, c := range teacher.Courses {
		if c.ID == req.CourseID {
			owns = true
			break
		}
	}
	if !owns {
		return nil, ErrForbidden
	}

	// Blank question rows from the form are dropped rather than rejected.
	var questions []model.Question
	for _, q := range req.Questions {
		if q.QuestionText == "" || q.CorrectOption == "" {
			continue
		}
		questions = append(questions, model.Question{
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectOption: q.CorrectOption,
		})
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	exam := model.Exam{
		TeacherID: teacherID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		Questions: questions,
	}
	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Uint("teacher_id", teacherID).Msg("Failed to create exam")
		return nil, fmt.Errorf("failed to create exam: %w", err)
	}
	log.Info().Uint("exam_id", exam.ID).Int("questions", len(questions)).Msg("Exam created")
	return toExamResponse(&exam), nil
}

func (s *examService) Get(teacherID, examID uint) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		return nil, err
	}
	if exam.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	return toExamResponse(exam), nil
}

func (s *examService) Delete(teacherID, examID uint) error {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		return err
	}
	if exam.TeacherID != teacherID {
		return ErrForbidden
	}
	if err := s.examRepo.Delete(examID); err != nil {
		log.Error().Err(err).Uint("exam_id", examID).Msg("Failed to delete exam")
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	log.Info().Uint("exam_id", examID).Msg("Exam deleted")
	return nil
}

func (s *examService) TeacherExams(teacherID uint) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindByTeacher(teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	responses := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		responses = append(responses, *toExamResponse(&exams[i]))
	}
	return responses, nil
}

func (s *examService) StudentExams(studentID uint) ([]dto.ExamSummaryResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, 0, len(student.Courses))
	for _, c := range student.Courses {
		courseIDs = append(courseIDs, c.ID)
	}
	if len(courseIDs) == 0 {
		return []dto.ExamSummaryResponse{}, nil
	}
	exams, err := s.examRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}

	attempts, err := s.attemptRepo.FindByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}
	attemptByExam := make(map[uint]model.ExamAttempt, len(attempts))
	for _, a := range attempts {
		attemptByExam[a.ExamID] = a
	}
	results, err := s.resultRepo.FindByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	hasResult := make(map[uint]bool, len(results))
	for _, r := range results {
		hasResult[r.ExamID] = true
	}

	summaries := make([]dto.ExamSummaryResponse, 0, len(exams))
	for _, exam := range exams {
		summary := dto.ExamSummaryResponse{
			ID:        exam.ID,
			CourseID:  exam.CourseID,
			Title:     exam.Title,
			CreatedAt: exam.CreatedAt,
			HasResult: hasResult[exam.ID],
		}
		if attempt, ok := attemptByExam[exam.ID]; ok {
			summary.Attended = true
			attendedDate := attempt.AttendedDate
			summary.AttendedDate = &attendedDate
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *examService) checkStudentEnrolled(studentID, courseID uint) error {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return err
	}
	for _, c := range student.Courses {
		if c.ID == courseID {
			return nil
		}
	}
	return ErrForbidden
}

func (s *examService) Attend(studentID, examID uint) (*dto.ExamAttendResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		return nil, err
	}
	if err := s.checkStudentEnrolled(studentID, exam.CourseID); err != nil {
		return nil, err
	}

	attendedDate := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ? AND exam_id = ?", studentID, examID).Delete(&model.StudentAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ? AND exam_id = ?", studentID, examID).Delete(&model.ExamResult{}).Error; err != nil {
			return err
		}
		var attempt model.ExamAttempt
		err := tx.Where("student_id = ? AND exam_id = ?", studentID, examID).First(&attempt).Error
		switch {
		case err == nil:
			attempt.AttendedDate = attendedDate
			attempt.Score = nil
			return tx.Save(&attempt).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			attempt = model.ExamAttempt{
				StudentID:    studentID,
				ExamID:       examID,
				CourseID:     exam.CourseID,
				AttendedDate: attendedDate,
			}
			return tx.Create(&attempt).Error
		default:
			return err
		}
	})
	if err != nil {
		log.Error().Err(err).Uint("student_id", studentID).Uint("exam_id", examID).Msg("Failed to open exam attempt")
		return nil, fmt.Errorf("failed to attend exam: %w", err)
	}
	log.Info().Uint("student_id", studentID).Uint("exam_id", examID).Msg("Exam attempt opened")

	resp := dto.ExamAttendResponse{
		ExamID:       exam.ID,
		Title:        exam.Title,
		AttendedDate: attendedDate,
		Questions:    make([]dto.StudentQuestionResponse, 0, len(exam.Questions)),
	}
	for _, q := range exam.Questions {
		var sq dto.StudentQuestionResponse
		copier.Copy(&sq, &q)
		resp.Questions = append(resp.Questions, sq)
	}
	return &resp, nil
}

func (s *examService) Submit(studentID, examID uint, req dto.ExamSubmitRequest) (*dto.ExamResultResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		return nil, err
	}
	if err := s.checkStudentEnrolled(studentID, exam.CourseID); err != nil {
		return nil, err
	}

	submittedAt := time.Now()
	score := 0
	selected := make(map[uint]string)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// A resubmission replaces the previous attempt wholesale.
		for _, m := range []interface{}{&model.StudentAnswer{}, &model.ExamResult{}, &model.ExamAttempt{}} {
			if err := tx.Where("student_id = ? AND exam_id = ?", studentID, examID).Delete(m).Error; err != nil {
				return err
			}
		}

		for _, question := range exam.Questions {
			option, answered := req.Answers[strconv.FormatUint(uint64(question.ID), 10)]
			if !answered || option == "" {
				continue
			}
			answer := model.StudentAnswer{
				StudentID:      studentID,
				ExamID:         examID,
				QuestionID:     question.ID,
				SelectedOption: option,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
			selected[question.ID] = option
			if option == question.CorrectOption {
				score++
			}
		}

		result := model.ExamResult{
			StudentID:   studentID,
			ExamID:      examID,
			Score:       score,
			Total:       len(exam.Questions),
			SubmittedAt: submittedAt,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		attempt := model.ExamAttempt{
			StudentID:    studentID,
			ExamID:       examID,
			CourseID:     exam.CourseID,
			Score:        &score,
			AttendedDate: submittedAt,
		}
		return tx.Create(&attempt).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("student_id", studentID).Uint("exam_id", examID).Msg("Failed to submit exam")
		return nil, fmt.Errorf("failed to submit exam: %w", err)
	}
	log.Info().Uint("student_id", studentID).Uint("exam_id", examID).
		Int("score", score).Int("total", len(exam.Questions)).Msg("Exam submitted")

	return &dto.ExamResultResponse{
		ExamID:          exam.ID,
		ExamTitle:       exam.Title,
		Score:           score,
		Total:           len(exam.Questions),
		SubmittedAt:     submittedAt,
		SelectedOptions: selected,
	}, nil
}

func (s *examService) Result(studentID, examID uint) (*dto.ExamResultResponse, error) {
	result, err := s.resultRepo.FindByStudentAndExam(studentID, examID)
	if err != nil {
		return nil, err
	}
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.FindByStudentAndExam(studentID, examID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	selected := make(map[uint]string, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOption
	}
	return &dto.ExamResultResponse{
		ExamID:          exam.ID,
		ExamTitle:       exam.Title,
		Score:           result.Score,
		Total:           result.Total,
		SubmittedAt:     result.SubmittedAt,
		SelectedOptions: selected,
	}, nil
}

func toExamResponse(exam *model.Exam) *dto.ExamResponse {
	var resp dto.ExamResponse
	copier.Copy(&resp, exam)
	return &resp
}
