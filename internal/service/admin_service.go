package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
)

// AdminService backs the admin console: the overview dashboard plus people
// management across students and teachers.
type AdminService interface {
	Dashboard() (*dto.AdminDashboardResponse, error)
	ListStudents(search string, courseID *uint) ([]dto.StudentSummary, error)
	GetStudent(id uint) (*dto.StudentProfileResponse, error)
	UpdateStudent(id uint, req dto.StudentProfileUpdateRequest) (*dto.StudentProfileResponse, error)
	DeleteStudent(id uint) error
	ListMaterials(search string, courseID *uint) ([]dto.MaterialResponse, error)
	ListTeachers(search string, courseID *uint) ([]dto.TeacherSummary, error)
	GetTeacher(id uint) (*dto.TeacherProfileResponse, error)
	SetTeacherStatus(id uint, status string) error
	DeleteTeacher(id uint) error
}

type adminService struct {
	studentRepo  repository.StudentRepository
	teacherRepo  repository.TeacherRepository
	courseRepo   repository.CourseRepository
	materialRepo repository.MaterialRepository
}

func NewAdminService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	courseRepo repository.CourseRepository,
	materialRepo repository.MaterialRepository,
) AdminService {
	return &adminService{
		studentRepo:  studentRepo,
		teacherRepo:  teacherRepo,
		courseRepo:   courseRepo,
		materialRepo: materialRepo,
	}
}

func (s *adminService) Dashboard() (*dto.AdminDashboardResponse, error) {
	students, err := s.studentRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	teachers, err := s.teacherRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count teachers: %w", err)
	}
	courses, err := s.courseRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count courses: %w", err)
	}
	materials, err := s.materialRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count materials: %w", err)
	}
	withCounts, err := s.courseRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load per-course counts")
		return nil, fmt.Errorf("failed to load course stats: %w", err)
	}

	resp := dto.AdminDashboardResponse{
		TotalStudents:  students,
		TotalTeachers:  teachers,
		TotalCourses:   courses,
		TotalMaterials: materials,
		Courses:        make([]dto.CourseChartEntry, 0, len(withCounts)),
	}
	for _, c := range withCounts {
		resp.Courses = append(resp.Courses, dto.CourseChartEntry{
			Name:          c.Name,
			StudentCount:  c.StudentCount,
			MaterialCount: c.MaterialCount,
		})
	}
	return &resp, nil
}

func (s *adminService) ListStudents(search string, courseID *uint) ([]dto.StudentSummary, error) {
	students, err := s.studentRepo.FindAll(search, courseID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list students")
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	summaries := make([]dto.StudentSummary, 0, len(students))
	for _, st := range students {
		summaries = append(summaries, dto.StudentSummary{ID: st.ID, Name: st.Name, Email: st.Email, Grade: st.Grade})
	}
	return summaries, nil
}

func (s *adminService) GetStudent(id uint) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(id)
	if err != nil {
		return nil, err
	}
	return toStudentProfile(student), nil
}

func (s *adminService) UpdateStudent(id uint, req dto.StudentProfileUpdateRequest) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(id)
	if err != nil {
		return nil, err
	}
	student.Name = req.Name
	student.Email = req.Email
	student.Age = req.Age
	student.Grade = req.Grade
	if err := s.studentRepo.Update(student); err != nil {
		log.Error().Err(err).Uint("student_id", id).Msg("Failed to update student")
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	if req.CourseIDs != nil {
		courses, err := s.courseRepo.FindByIDs(req.CourseIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load courses: %w", err)
		}
		if err := s.studentRepo.ReplaceCourses(student, courses); err != nil {
			log.Error().Err(err).Uint("student_id", id).Msg("Failed to replace student courses")
			return nil, fmt.Errorf("failed to update enrollments: %w", err)
		}
		student.Courses = courses
	}
	return toStudentProfile(student), nil
}

func (s *adminService) DeleteStudent(id uint) error {
	if _, err := s.studentRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.studentRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("student_id", id).Msg("Failed to delete student")
		return fmt.Errorf("failed to delete student: %w", err)
	}
	log.Info().Uint("student_id", id).Msg("Student deleted")
	return nil
}

func (s *adminService) ListMaterials(search string, courseID *uint) ([]dto.MaterialResponse, error) {
	materials, err := s.materialRepo.FindAll(search, courseID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list materials")
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return toMaterialResponses(materials), nil
}

func (s *adminService) ListTeachers(search string, courseID *uint) ([]dto.TeacherSummary, error) {
	teachers, err := s.teacherRepo.FindAll(search, courseID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list teachers")
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	summaries := make([]dto.TeacherSummary, 0, len(teachers))
	for _, t := range teachers {
		summaries = append(summaries, dto.TeacherSummary{
			ID:             t.ID,
			Name:           t.Name,
			Email:          t.Email,
			Qualifications: t.Qualifications,
			Photo:          t.Photo,
			Status:         t.Status,
			CreatedAt:      t.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *adminService) GetTeacher(id uint) (*dto.TeacherProfileResponse, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(id)
	if err != nil {
		return nil, err
	}
	return toTeacherProfile(teacher), nil
}

func (s *adminService) SetTeacherStatus(id uint, status string) error {
	teacher, err := s.teacherRepo.FindByID(id)
	if err != nil {
		return err
	}
	teacher.Status = status
	if err := s.teacherRepo.Update(teacher); err != nil {
		log.Error().Err(err).Uint("teacher_id", id).Msg("Failed to update teacher status")
		return fmt.Errorf("failed to update status: %w", err)
	}
	log.Info().Uint("teacher_id", id).Str("status", status).Msg("Teacher status updated")
	return nil
}

func (s *adminService) DeleteTeacher(id uint) error {
	if _, err := s.teacherRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.teacherRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("teacher_id", id).Msg("Failed to delete teacher")
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	log.Info().Uint("teacher_id", id).Msg("Teacher deleted")
	return nil
}

func toStudentProfile(student *model.Student) *dto.StudentProfileResponse {
	var resp dto.StudentProfileResponse
	copier.Copy(&resp, student)
	resp.Courses = toCourseResponses(student.Courses)
	return &resp
}

func toTeacherProfile(teacher *model.Teacher) *dto.TeacherProfileResponse {
	var resp dto.TeacherProfileResponse
	copier.Copy(&resp, teacher)
	resp.Courses = toCourseResponses(teacher.Courses)
	return &resp
}
