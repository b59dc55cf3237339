package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/repository"
)

// DashboardService assembles the landing pages for students and teachers and
// serves their profile screens.
type DashboardService interface {
	StudentDashboard(studentID uint) (*dto.StudentDashboardResponse, error)
	TeacherDashboard(teacherID uint) (*dto.TeacherDashboardResponse, error)
	// TeacherStudents lists everyone enrolled in the teacher's courses.
	TeacherStudents(teacherID uint) ([]dto.StudentSummary, error)
	StudentProfile(studentID uint) (*dto.StudentProfileResponse, error)
	UpdateStudentProfile(studentID uint, req dto.StudentProfileUpdateRequest) (*dto.StudentProfileResponse, error)
	TeacherProfile(teacherID uint) (*dto.TeacherProfileResponse, error)
	UpdateTeacherProfile(teacherID uint, req dto.TeacherProfileUpdateRequest, photoFilename string) (*dto.TeacherProfileResponse, error)
}

type dashboardService struct {
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
	courseRepo  repository.CourseRepository
	attendance  AttendanceService
	progress    ProgressService
	exams       ExamService
	content     ContentService
}

func NewDashboardService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	courseRepo repository.CourseRepository,
	attendance AttendanceService,
	progress ProgressService,
	exams ExamService,
	content ContentService,
) DashboardService {
	return &dashboardService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		courseRepo:  courseRepo,
		attendance:  attendance,
		progress:    progress,
		exams:       exams,
		content:     content,
	}
}

func (s *dashboardService) StudentDashboard(studentID uint) (*dto.StudentDashboardResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}
	attendance, err := s.attendance.Summary(studentID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progress.Summary(studentID)
	if err != nil {
		return nil, err
	}
	exams, err := s.exams.StudentExams(studentID)
	if err != nil {
		return nil, err
	}
	materials, err := s.content.StudentMaterials(studentID)
	if err != nil {
		return nil, err
	}
	recorded, err := s.content.StudentRecordedClasses(studentID)
	if err != nil {
		return nil, err
	}
	live, err := s.content.StudentLiveClasses(studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboardResponse{
		CurrentDate:       time.Now().Format("02-01-2006"),
		Student:           *toStudentProfile(student),
		AttendancePercent: attendance.Percentage,
		TotalDays:         attendance.TotalDays,
		ProgressPercent:   progress.Percent,
		CompletedItems:    progress.CompletedItems,
		TotalItems:        progress.TotalItems,
		Exams:             exams,
		Materials:         materials,
		RecordedClasses:   recorded,
		LiveClasses:       live,
	}, nil
}

func (s *dashboardService) TeacherDashboard(teacherID uint) (*dto.TeacherDashboardResponse, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, 0, len(teacher.Courses))
	for _, c := range teacher.Courses {
		courseIDs = append(courseIDs, c.ID)
	}

	resp := dto.TeacherDashboardResponse{
		CurrentDate: time.Now().Format("02-01-2006"),
		Teacher:     *toTeacherProfile(teacher),
		Students:    []dto.StudentSummary{},
	}
	if len(courseIDs) > 0 {
		students, err := s.studentRepo.FindByCourseIDs(courseIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to list students: %w", err)
		}
		for _, st := range students {
			resp.Students = append(resp.Students, dto.StudentSummary{
				ID: st.ID, Name: st.Name, Email: st.Email, Grade: st.Grade,
			})
		}
	}
	exams, err := s.exams.TeacherExams(teacherID)
	if err != nil {
		return nil, err
	}
	resp.Exams = exams
	return &resp, nil
}

func (s *dashboardService) TeacherStudents(teacherID uint) ([]dto.StudentSummary, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, 0, len(teacher.Courses))
	for _, c := range teacher.Courses {
		courseIDs = append(courseIDs, c.ID)
	}
	summaries := []dto.StudentSummary{}
	if len(courseIDs) == 0 {
		return summaries, nil
	}
	students, err := s.studentRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	for _, st := range students {
		summaries = append(summaries, dto.StudentSummary{ID: st.ID, Name: st.Name, Email: st.Email, Grade: st.Grade})
	}
	return summaries, nil
}

func (s *dashboardService) StudentProfile(studentID uint) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}
	return toStudentProfile(student), nil
}

func (s *dashboardService) UpdateStudentProfile(studentID uint, req dto.StudentProfileUpdateRequest) (*dto.StudentProfileResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}
	student.Name = req.Name
	student.Email = req.Email
	student.Age = req.Age
	student.Grade = req.Grade
	if err := s.studentRepo.Update(student); err != nil {
		log.Error().Err(err).Uint("student_id", studentID).Msg("Failed to update student profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toStudentProfile(student), nil
}

func (s *dashboardService) TeacherProfile(teacherID uint) (*dto.TeacherProfileResponse, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, err
	}
	return toTeacherProfile(teacher), nil
}

func (s *dashboardService) UpdateTeacherProfile(teacherID uint, req dto.TeacherProfileUpdateRequest, photoFilename string) (*dto.TeacherProfileResponse, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, err
	}
	teacher.Name = req.Name
	teacher.Email = req.Email
	teacher.Qualifications = req.Qualifications
	teacher.Availability = req.Availability
	teacher.YearsOfExperience = req.YearsOfExperience
	teacher.Contact = req.Contact
	teacher.Place = req.Place
	if photoFilename != "" {
		teacher.Photo = photoFilename
	}
	if err := s.teacherRepo.Update(teacher); err != nil {
		log.Error().Err(err).Uint("teacher_id", teacherID).Msg("Failed to update teacher profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var courseIDs []uint
	if req.CourseID != nil {
		courseIDs = append(courseIDs, *req.CourseID)
	}
	if req.SecondCourseID != nil && (req.CourseID == nil || *req.SecondCourseID != *req.CourseID) {
		courseIDs = append(courseIDs, *req.SecondCourseID)
	}
	if len(courseIDs) > 0 {
		courses, err := s.courseRepo.FindByIDs(courseIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load courses: %w", err)
		}
		if err := s.teacherRepo.ReplaceCourses(teacher, courses); err != nil {
			log.Error().Err(err).Uint("teacher_id", teacherID).Msg("Failed to replace teacher courses")
			return nil, fmt.Errorf("failed to update course assignments: %w", err)
		}
		teacher.Courses = courses
	}
	return toTeacherProfile(teacher), nil
}
