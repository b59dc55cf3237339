package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

type CourseService interface {
	Create(req dto.CourseCreateRequest) (*dto.CourseResponse, error)
	List() ([]dto.CourseResponse, error)
	Get(id uint) (*dto.CourseResponse, error)
	Update(id uint, req dto.CourseUpdateRequest) (*dto.CourseResponse, error)
	// Delete removes the course and everything hanging off it, returning a
	// snapshot the undo endpoint can replay.
	Delete(id uint) (*dto.CourseSnapshot, error)
	Undo(snapshot dto.CourseSnapshot) (*dto.CourseResponse, error)
}

type courseService struct {
	courseRepo  repository.CourseRepository
	teacherRepo repository.TeacherRepository
}

func NewCourseService(courseRepo repository.CourseRepository, teacherRepo repository.TeacherRepository) CourseService {
	return &courseService{courseRepo: courseRepo, teacherRepo: teacherRepo}
}

func (s *courseService) Create(req dto.CourseCreateRequest) (*dto.CourseResponse, error) {
	if err := s.checkNameFree(req.Name, 0); err != nil {
		return nil, err
	}

	course := model.Course{Name: req.Name, Description: req.Description}
	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
		course.StartDate = &startDate
	}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create course")
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	log.Info().Uint("course_id", course.ID).Str("name", course.Name).Msg("Course created")
	return toCourseResponse(&course), nil
}

func (s *courseService) List() ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list courses")
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) Get(id uint) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Update(id uint, req dto.CourseUpdateRequest) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameFree(req.Name, id); err != nil {
		return nil, err
	}
	course.Name = req.Name
	course.Description = req.Description
	if err := s.courseRepo.Update(course); err != nil {
		log.Error().Err(err).Uint("course_id", id).Msg("Failed to update course")
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Delete(id uint) (*dto.CourseSnapshot, error) {
	course, err := s.courseRepo.FindByIDWithTeachers(id)
	if err != nil {
		return nil, err
	}
	snapshot := dto.CourseSnapshot{Name: course.Name, Description: course.Description}
	for _, t := range course.Teachers {
		snapshot.TeacherIDs = append(snapshot.TeacherIDs, t.ID)
	}
	if err := s.courseRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("course_id", id).Msg("Failed to delete course")
		return nil, fmt.Errorf("failed to delete course: %w", err)
	}
	log.Info().Uint("course_id", id).Str("name", course.Name).Msg("Course deleted")
	return &snapshot, nil
}

// Undo recreates a deleted course from its snapshot, restoring teacher
// assignments. Enrollments and content are gone for good.
func (s *courseService) Undo(snapshot dto.CourseSnapshot) (*dto.CourseResponse, error) {
	if err := s.checkNameFree(snapshot.Name, 0); err != nil {
		return nil, err
	}
	course := model.Course{Name: snapshot.Name, Description: snapshot.Description}
	if len(snapshot.TeacherIDs) > 0 {
		var teachers []model.Teacher
		for _, id := range snapshot.TeacherIDs {
			teacher, err := s.teacherRepo.FindByID(id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Warn().Uint("teacher_id", id).Msg("Snapshot teacher no longer exists; skipping")
					continue
				}
				return nil, fmt.Errorf("failed to load teacher %d: %w", id, err)
			}
			teachers = append(teachers, *teacher)
		}
		course.Teachers = teachers
	}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("name", snapshot.Name).Msg("Failed to restore course")
		return nil, fmt.Errorf("failed to restore course: %w", err)
	}
	log.Info().Uint("course_id", course.ID).Str("name", course.Name).Msg("Course restored from snapshot")
	return toCourseResponse(&course), nil
}

func (s *courseService) checkNameFree(name string, selfID uint) error {
	existing, err := s.courseRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check course name: %w", err)
	}
	if existing.ID != selfID {
		return ErrCourseNameTaken
	}
	return nil
}

func toCourseResponse(course *model.Course) *dto.CourseResponse {
	var resp dto.CourseResponse
	copier.Copy(&resp, course)
	return &resp
}

func toCourseResponses(courses []model.Course) []dto.CourseResponse {
	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, *toCourseResponse(&courses[i]))
	}
	return responses
}
