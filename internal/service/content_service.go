package service

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"github.com/trannghia/learnhub/internal/storage"
)

// ContentService manages the four kinds of course content. Teachers may only
// touch content in courses assigned to them; students only see content from
// courses they are enrolled in.
type ContentService interface {
	UploadMaterial(teacherID uint, req dto.MaterialUploadRequest, file *multipart.FileHeader) (*dto.MaterialResponse, error)
	UpdateMaterial(teacherID, id uint, req dto.MaterialUpdateRequest) (*dto.MaterialResponse, error)
	DeleteMaterial(teacherID, id uint) error
	TeacherMaterials(teacherID uint) ([]dto.MaterialResponse, error)
	StudentMaterials(studentID uint) ([]dto.MaterialResponse, error)

	UploadRecordedClass(teacherID uint, req dto.RecordedClassUploadRequest, video *multipart.FileHeader) (*dto.RecordedClassResponse, error)
	UpdateRecordedClass(teacherID, id uint, req dto.RecordedClassUpdateRequest) (*dto.RecordedClassResponse, error)
	DeleteRecordedClass(teacherID, id uint) error
	TeacherRecordedClasses(teacherID uint) ([]dto.RecordedClassResponse, error)
	StudentRecordedClasses(studentID uint) ([]dto.RecordedClassResponse, error)

	CreateLiveClass(teacherID uint, req dto.LiveClassCreateRequest) (*dto.LiveClassResponse, error)
	UpdateLiveClass(teacherID, id uint, req dto.LiveClassUpdateRequest) (*dto.LiveClassResponse, error)
	DeleteLiveClass(teacherID, id uint) error
	TeacherLiveClasses(teacherID uint) ([]dto.LiveClassResponse, error)
	StudentLiveClasses(studentID uint) ([]dto.LiveClassResponse, error)
}

type contentService struct {
	materialRepo repository.MaterialRepository
	recordedRepo repository.RecordedClassRepository
	liveRepo     repository.LiveClassRepository
	teacherRepo  repository.TeacherRepository
	studentRepo  repository.StudentRepository
	files        *storage.FileStore
}

func NewContentService(
	materialRepo repository.MaterialRepository,
	recordedRepo repository.RecordedClassRepository,
	liveRepo repository.LiveClassRepository,
	teacherRepo repository.TeacherRepository,
	studentRepo repository.StudentRepository,
	files *storage.FileStore,
) ContentService {
	return &contentService{
		materialRepo: materialRepo,
		recordedRepo: recordedRepo,
		liveRepo:     liveRepo,
		teacherRepo:  teacherRepo,
		studentRepo:  studentRepo,
		files:        files,
	}
}

func (s *contentService) teacherCourseIDs(teacherID uint) ([]uint, error) {
	teacher, err := s.teacherRepo.FindByIDWithCourses(teacherID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(teacher.Courses))
	for _, c := range teacher.Courses {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *contentService) checkTeacherCourse(teacherID, courseID uint) error {
	ids, err := s.teacherCourseIDs(teacherID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == courseID {
			return nil
		}
	}
	return ErrForbidden
}

func (s *contentService) studentCourseIDs(studentID uint) ([]uint, error) {
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

func (s *contentService) UploadMaterial(teacherID uint, req dto.MaterialUploadRequest, file *multipart.FileHeader) (*dto.MaterialResponse, error) {
	if err := s.checkTeacherCourse(teacherID, req.CourseID); err != nil {
		return nil, err
	}
	filename, err := s.files.SaveMaterial(file)
	if err != nil {
		return nil, err
	}
	material := model.StudyMaterial{
		TeacherID:   teacherID,
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Filename:    filename,
		UploadDate:  time.Now(),
	}
	if err := s.materialRepo.Create(&material); err != nil {
		s.files.RemoveMaterial(filename)
		log.Error().Err(err).Msg("Failed to create study material")
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	log.Info().Uint("material_id", material.ID).Uint("teacher_id", teacherID).Msg("Study material uploaded")
	return toMaterialResponse(&material), nil
}

func (s *contentService) UpdateMaterial(teacherID, id uint, req dto.MaterialUpdateRequest) (*dto.MaterialResponse, error) {
	material, err := s.materialRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if material.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	material.Title = req.Title
	material.Description = req.Description
	if err := s.materialRepo.Update(material); err != nil {
		log.Error().Err(err).Uint("material_id", id).Msg("Failed to update study material")
		return nil, fmt.Errorf("failed to update material: %w", err)
	}
	return toMaterialResponse(material), nil
}

func (s *contentService) DeleteMaterial(teacherID, id uint) error {
	material, err := s.materialRepo.FindByID(id)
	if err != nil {
		return err
	}
	if material.TeacherID != teacherID {
		return ErrForbidden
	}
	if err := s.materialRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("material_id", id).Msg("Failed to delete study material")
		return fmt.Errorf("failed to delete material: %w", err)
	}
	s.files.RemoveMaterial(material.Filename)
	return nil
}

func (s *contentService) TeacherMaterials(teacherID uint) ([]dto.MaterialResponse, error) {
	materials, err := s.materialRepo.FindByTeacher(teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return toMaterialResponses(materials), nil
}

func (s *contentService) StudentMaterials(studentID uint) ([]dto.MaterialResponse, error) {
	courseIDs, err := s.studentCourseIDs(studentID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []dto.MaterialResponse{}, nil
	}
	materials, err := s.materialRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return toMaterialResponses(materials), nil
}

func (s *contentService) UploadRecordedClass(teacherID uint, req dto.RecordedClassUploadRequest, video *multipart.FileHeader) (*dto.RecordedClassResponse, error) {
	if err := s.checkTeacherCourse(teacherID, req.CourseID); err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	filename, err := s.files.SaveVideo(video)
	if err != nil {
		return nil, err
	}
	class := model.RecordedClass{
		TeacherID: teacherID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		Date:      date,
		Filename:  filename,
	}
	if err := s.recordedRepo.Create(&class); err != nil {
		s.files.RemoveVideo(filename)
		log.Error().Err(err).Msg("Failed to create recorded class")
		return nil, fmt.Errorf("failed to create recorded class: %w", err)
	}
	log.Info().Uint("class_id", class.ID).Uint("teacher_id", teacherID).Msg("Recorded class uploaded")
	return toRecordedResponse(&class), nil
}

func (s *contentService) UpdateRecordedClass(teacherID, id uint, req dto.RecordedClassUpdateRequest) (*dto.RecordedClassResponse, error) {
	class, err := s.recordedRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	class.Title = req.Title
	class.Date = date
	if err := s.recordedRepo.Update(class); err != nil {
		log.Error().Err(err).Uint("class_id", id).Msg("Failed to update recorded class")
		return nil, fmt.Errorf("failed to update recorded class: %w", err)
	}
	return toRecordedResponse(class), nil
}

func (s *contentService) DeleteRecordedClass(teacherID, id uint) error {
	class, err := s.recordedRepo.FindByID(id)
	if err != nil {
		return err
	}
	if class.TeacherID != teacherID {
		return ErrForbidden
	}
	if err := s.recordedRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("class_id", id).Msg("Failed to delete recorded class")
		return fmt.Errorf("failed to delete recorded class: %w", err)
	}
	s.files.RemoveVideo(class.Filename)
	return nil
}

func (s *contentService) TeacherRecordedClasses(teacherID uint) ([]dto.RecordedClassResponse, error) {
	classes, err := s.recordedRepo.FindByTeacher(teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recorded classes: %w", err)
	}
	return toRecordedResponses(classes), nil
}

func (s *contentService) StudentRecordedClasses(studentID uint) ([]dto.RecordedClassResponse, error) {
	courseIDs, err := s.studentCourseIDs(studentID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []dto.RecordedClassResponse{}, nil
	}
	classes, err := s.recordedRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list recorded classes: %w", err)
	}
	return toRecordedResponses(classes), nil
}

func (s *contentService) CreateLiveClass(teacherID uint, req dto.LiveClassCreateRequest) (*dto.LiveClassResponse, error) {
	if err := s.checkTeacherCourse(teacherID, req.CourseID); err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", err)
	}
	class := model.LiveClass{
		TeacherID: teacherID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		Date:      date,
		StartTime: req.StartTime,
		Platform:  req.Platform,
		Link:      req.Link,
	}
	if err := s.liveRepo.Create(&class); err != nil {
		log.Error().Err(err).Msg("Failed to create live class")
		return nil, fmt.Errorf("failed to create live class: %w", err)
	}
	log.Info().Uint("class_id", class.ID).Uint("teacher_id", teacherID).Msg("Live class scheduled")
	return toLiveResponse(&class), nil
}

func (s *contentService) UpdateLiveClass(teacherID, id uint, req dto.LiveClassUpdateRequest) (*dto.LiveClassResponse, error) {
	class, err := s.liveRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", err)
	}
	class.Title = req.Title
	class.Date = date
	class.StartTime = req.StartTime
	class.Platform = req.Platform
	class.Link = req.Link
	if err := s.liveRepo.Update(class); err != nil {
		log.Error().Err(err).Uint("class_id", id).Msg("Failed to update live class")
		return nil, fmt.Errorf("failed to update live class: %w", err)
	}
	return toLiveResponse(class), nil
}

func (s *contentService) DeleteLiveClass(teacherID, id uint) error {
	class, err := s.liveRepo.FindByID(id)
	if err != nil {
		return err
	}
	if class.TeacherID != teacherID {
		return ErrForbidden
	}
	if err := s.liveRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("class_id", id).Msg("Failed to delete live class")
		return fmt.Errorf("failed to delete live class: %w", err)
	}
	return nil
}

func (s *contentService) TeacherLiveClasses(teacherID uint) ([]dto.LiveClassResponse, error) {
	classes, err := s.liveRepo.FindByTeacher(teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list live classes: %w", err)
	}
	return toLiveResponses(classes), nil
}

func (s *contentService) StudentLiveClasses(studentID uint) ([]dto.LiveClassResponse, error) {
	courseIDs, err := s.studentCourseIDs(studentID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []dto.LiveClassResponse{}, nil
	}
	classes, err := s.liveRepo.FindByCourseIDs(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list live classes: %w", err)
	}
	return toLiveResponses(classes), nil
}

func toMaterialResponse(m *model.StudyMaterial) *dto.MaterialResponse {
	var resp dto.MaterialResponse
	copier.Copy(&resp, m)
	return &resp
}

func toMaterialResponses(materials []model.StudyMaterial) []dto.MaterialResponse {
	responses := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		responses = append(responses, *toMaterialResponse(&materials[i]))
	}
	return responses
}

func toRecordedResponse(c *model.RecordedClass) *dto.RecordedClassResponse {
	var resp dto.RecordedClassResponse
	copier.Copy(&resp, c)
	return &resp
}

func toRecordedResponses(classes []model.RecordedClass) []dto.RecordedClassResponse {
	responses := make([]dto.RecordedClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, *toRecordedResponse(&classes[i]))
	}
	return responses
}

func toLiveResponse(c *model.LiveClass) *dto.LiveClassResponse {
	var resp dto.LiveClassResponse
	copier.Copy(&resp, c)
	return &resp
}

func toLiveResponses(classes []model.LiveClass) []dto.LiveClassResponse {
	responses := make([]dto.LiveClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, *toLiveResponse(&classes[i]))
	}
	return responses
}
