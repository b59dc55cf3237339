package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

type ProgressService interface {
	// SetCompletion flips the completion flag for one content item. The
	// item's course is resolved from its kind and id; unknown kinds are
	// rejected outright.
	SetCompletion(studentID uint, req dto.ProgressUpdateRequest) (*dto.ProgressItem, error)
	Summary(studentID uint) (*dto.ProgressSummaryResponse, error)
	// TeacherStudentSummary is the teacher's view of one student, limited
	// to courses the two share.
	TeacherStudentSummary(teacherID, studentID uint) (*dto.ProgressSummaryResponse, error)
	// TeacherTable lists per-student completion percentages across the
	// teacher's courses.
	TeacherTable(teacherID uint) ([]dto.StudentProgressRow, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	studentRepo  repository.StudentRepository
	teacherRepo  repository.TeacherRepository
	materialRepo repository.MaterialRepository
	recordedRepo repository.RecordedClassRepository
	liveRepo     repository.LiveClassRepository
	examRepo     repository.ExamRepository
}

func NewProgressService(
	progressRepo repository.ProgressRepository,
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	materialRepo repository.MaterialRepository,
	recordedRepo repository.RecordedClassRepository,
	liveRepo repository.LiveClassRepository,
	examRepo repository.ExamRepository,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		studentRepo:  studentRepo,
		teacherRepo:  teacherRepo,
		materialRepo: materialRepo,
		recordedRepo: recordedRepo,
		liveRepo:     liveRepo,
		examRepo:     examRepo,
	}
}

// courseOf resolves the owning course of a content item.
func (s *progressService) courseOf(kind model.ContentKind, itemID uint) (uint, error) {
	switch kind {
	case model.ContentMaterial:
		material, err := s.materialRepo.FindByID(itemID)
		if err != nil {
			return 0, err
		}
		return material.CourseID, nil
	case model.ContentRecorded:
		class, err := s.recordedRepo.FindByID(itemID)
		if err != nil {
			return 0, err
		}
		return class.CourseID, nil
	case model.ContentLive:
		class, err := s.liveRepo.FindByID(itemID)
		if err != nil {
			return 0, err
		}
		return class.CourseID, nil
	case model.ContentExam:
		exam, err := s.examRepo.FindByID(itemID)
		if err != nil {
			return 0, err
		}
		return exam.CourseID, nil
	}
	return 0, ErrUnknownContentKind
}

func (s *progressService) SetCompletion(studentID uint, req dto.ProgressUpdateRequest) (*dto.ProgressItem, error) {
	kind := model.ContentKind(req.Kind)
	if !kind.Valid() {
		return nil, ErrUnknownContentKind
	}
	courseID, err := s.courseOf(kind, req.ItemID)
	if err != nil {
		return nil, err
	}
	courseIDs, err := s.enrolledCourseIDs(studentID)
	if err != nil {
		return nil, err
	}
	if !containsID(courseIDs, courseID) {
		return nil, ErrForbidden
	}

	progress, err := s.progressRepo.FindByStudentAndItem(studentID, kind, req.ItemID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load progress: %w", err)
		}
		progress = &model.Progress{
			StudentID: studentID,
			Kind:      kind,
			ItemID:    req.ItemID,
			CourseID:  courseID,
		}
	}
	progress.Completed = req.Completed
	if req.Completed {
		now := time.Now()
		progress.CompletionDate = &now
	} else {
		progress.CompletionDate = nil
	}
	if err := s.progressRepo.Save(progress); err != nil {
		log.Error().Err(err).Uint("student_id", studentID).Str("kind", req.Kind).Uint("item_id", req.ItemID).
			Msg("Failed to save progress")
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}
	return &dto.ProgressItem{
		Kind:           string(progress.Kind),
		ItemID:         progress.ItemID,
		CourseID:       progress.CourseID,
		Completed:      progress.Completed,
		CompletionDate: progress.CompletionDate,
	}, nil
}

func (s *progressService) enrolledCourseIDs(studentID uint) ([]uint, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(student.Courses))
	for _, c := range student.Courses {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func containsID(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// totalItems counts every content item across the given courses. This is the
// denominator for the completion percentage.
func (s *progressService) totalItems(courseIDs []uint) (int64, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}
	var total int64
	counters := []func([]uint) (int64, error){
		s.materialRepo.CountByCourseIDs,
		s.recordedRepo.CountByCourseIDs,
		s.liveRepo.CountByCourseIDs,
		s.examRepo.CountByCourseIDs,
	}
	for _, count := range counters {
		n, err := count(courseIDs)
		if err != nil {
			return 0, fmt.Errorf("failed to count content items: %w", err)
		}
		total += n
	}
	return total, nil
}

func (s *progressService) percent(studentID uint, courseIDs []uint) (percent int, completed, total int64, err error) {
	total, err = s.totalItems(courseIDs)
	if err != nil {
		return 0, 0, 0, err
	}
	if total == 0 {
		return 0, 0, 0, nil
	}
	completed, err = s.progressRepo.CountCompletedInCourses(studentID, courseIDs)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count completed items: %w", err)
	}
	return int(completed * 100 / total), completed, total, nil
}

func (s *progressService) Summary(studentID uint) (*dto.ProgressSummaryResponse, error) {
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, 0, len(student.Courses))
	for _, c := range student.Courses {
		courseIDs = append(courseIDs, c.ID)
	}
	return s.summaryOver(student, courseIDs)
}

func (s *progressService) summaryOver(student *model.Student, courseIDs []uint) (*dto.ProgressSummaryResponse, error) {
	percent, completed, total, err := s.percent(student.ID, courseIDs)
	if err != nil {
		return nil, err
	}
	resp := dto.ProgressSummaryResponse{
		StudentID:      student.ID,
		StudentName:    student.Name,
		TotalItems:     int(total),
		CompletedItems: int(completed),
		Percent:        percent,
	}
	if len(courseIDs) > 0 {
		records, err := s.progressRepo.FindByStudentInCourses(student.ID, courseIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load progress records: %w", err)
		}
		resp.Items = make([]dto.ProgressItem, 0, len(records))
		for _, r := range records {
			resp.Items = append(resp.Items, dto.ProgressItem{
				Kind:           string(r.Kind),
				ItemID:         r.ItemID,
				CourseID:       r.CourseID,
				Completed:      r.Completed,
				CompletionDate: r.CompletionDate,
			})
		}
	}
	return &resp, nil
}

func (s *progressService) TeacherStudentSummary(teacherID, studentID uint) (*dto.ProgressSummaryResponse, error) {
	shared, student, err := s.sharedCourseIDs(teacherID, studentID)
	if err != nil {
		return nil, err
	}
	if len(shared) == 0 {
		return nil, ErrForbidden
	}
	return s.summaryOver(student, shared)
}

func (s *progressService) sharedCourseIDs(teacherID, studentID uint) ([]uint, *model.Student, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, nil, err
	}
	student, err := s.studentRepo.FindByIDWithCourses(studentID)
	if err != nil {
		return nil, nil, err
	}
	taught := make(map[uint]bool, len(teacher.Courses))
	for _, c := range teacher.Courses {
		taught[c.ID] = true
	}
	var shared []uint
	for _, c := range student.Courses {
		if taught[c.ID] {
			shared = append(shared, c.ID)
		}
	}
	return shared, student, nil
}

func (s *progressService) TeacherTable(teacherID uint) ([]dto.StudentProgressRow, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, 0, len(teacher.Courses))
	for _, c := range teacher.Courses {
		courseIDs = append(courseIDs, c.ID)
	}
	if len(courseIDs) == 0 {
		return []dto.StudentProgressRow{}, nil
	}
	students, err := s.studentRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	rows := make([]dto.StudentProgressRow, 0, len(students))
	for _, student := range students {
		shared, _, err := s.sharedCourseIDs(teacherID, student.ID)
		if err != nil {
			return nil, err
		}
		percent, _, _, err := s.percent(student.ID, shared)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dto.StudentProgressRow{
			StudentID:   student.ID,
			StudentName: student.Name,
			Percent:     percent,
		})
	}
	return rows, nil
}
