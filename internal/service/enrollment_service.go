package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/repository"
)

type EnrollmentService interface {
	// Enroll adds the student to each course. Courses the student already
	// belongs to are skipped and their names returned so callers can warn.
	Enroll(studentID uint, courseIDs []uint) ([]string, error)
	// EnrollOne adds the student to a single course, reporting whether they
	// already belonged to it. Unknown courses are an error here, unlike the
	// bulk path.
	EnrollOne(studentID, courseID uint) (bool, error)
}

type enrollmentService struct {
	studentRepo repository.StudentRepository
	courseRepo  repository.CourseRepository
}

func NewEnrollmentService(studentRepo repository.StudentRepository, courseRepo repository.CourseRepository) EnrollmentService {
	return &enrollmentService{studentRepo: studentRepo, courseRepo: courseRepo}
}

func (s *enrollmentService) Enroll(studentID uint, courseIDs []uint) ([]string, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		log.Error().Err(err).Uint("student_id", studentID).Msg("Failed to load student for enrollment")
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	courses, err := s.courseRepo.FindByIDs(courseIDs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load courses for enrollment")
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	if len(courses) < len(courseIDs) {
		log.Warn().Uint("student_id", studentID).Int("requested", len(courseIDs)).Int("found", len(courses)).
			Msg("Some requested courses do not exist; skipping them")
	}

	enrolled := make(map[uint]bool, len(student.Courses))
	for _, c := range student.Courses {
		enrolled[c.ID] = true
	}

	var alreadyEnrolled []string
	for i := range courses {
		course := courses[i]
		if enrolled[course.ID] {
			alreadyEnrolled = append(alreadyEnrolled, course.Name)
			log.Warn().Uint("student_id", studentID).Uint("course_id", course.ID).
				Msg("Student already enrolled; skipping")
			continue
		}
		if err := s.studentRepo.AppendCourse(student, &course); err != nil {
			log.Error().Err(err).Uint("student_id", studentID).Uint("course_id", course.ID).Msg("Failed to enroll student")
			return nil, fmt.Errorf("failed to enroll in course %d: %w", course.ID, err)
		}
	}
	return alreadyEnrolled, nil
}

func (s *enrollmentService) EnrollOne(studentID, courseID uint) (bool, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		return false, err
	}
	already, err := s.Enroll(studentID, []uint{courseID})
	if err != nil {
		return false, err
	}
	return len(already) > 0, nil
}
