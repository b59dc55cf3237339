package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindByTeacher(teacherID uint) ([]model.Exam, error)
	FindByCourseIDs(courseIDs []uint) ([]model.Exam, error)
	CountByCourseIDs(courseIDs []uint) (int64, error)
	Delete(id uint) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

// Create persists the exam together with any populated Questions.
func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.Preload("Questions").First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByTeacher(teacherID uint) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) FindByCourseIDs(courseIDs []uint) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.Where("course_id IN ?", courseIDs).Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) CountByCourseIDs(courseIDs []uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Exam{}).Where("course_id IN ?", courseIDs).Count(&count).Error
	return count, err
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.StudentAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.ExamResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.ExamAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("kind = ? AND item_id = ?", model.ContentExam, id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exam{}, id).Error
	})
}
