package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type ExamAttemptRepository interface {
	Create(attempt *model.ExamAttempt) error
	Update(attempt *model.ExamAttempt) error
	FindByStudentAndExam(studentID, examID uint) (*model.ExamAttempt, error)
	FindByStudent(studentID uint) ([]model.ExamAttempt, error)
}

type examAttemptRepository struct {
	db *gorm.DB
}

func NewExamAttemptRepository(db *gorm.DB) ExamAttemptRepository {
	return &examAttemptRepository{db: db}
}

func (r *examAttemptRepository) Create(attempt *model.ExamAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *examAttemptRepository) Update(attempt *model.ExamAttempt) error {
	return r.db.Save(attempt).Error
}

func (r *examAttemptRepository) FindByStudentAndExam(studentID, examID uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.Where("student_id = ? AND exam_id = ?", studentID, examID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindByStudent(studentID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.Where("student_id = ?", studentID).Order("attended_date DESC").Find(&attempts).Error
	return attempts, err
}
