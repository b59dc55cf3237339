package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type ExamResultRepository interface {
	FindByStudentAndExam(studentID, examID uint) (*model.ExamResult, error)
	FindByStudent(studentID uint) ([]model.ExamResult, error)
}

type examResultRepository struct {
	db *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) ExamResultRepository {
	return &examResultRepository{db: db}
}

func (r *examResultRepository) FindByStudentAndExam(studentID, examID uint) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.db.Where("student_id = ? AND exam_id = ?", studentID, examID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *examResultRepository) FindByStudent(studentID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Where("student_id = ?", studentID).Order("submitted_at DESC").Find(&results).Error
	return results, err
}
