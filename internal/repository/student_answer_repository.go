package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type StudentAnswerRepository interface {
	FindByStudentAndExam(studentID, examID uint) ([]model.StudentAnswer, error)
}

type studentAnswerRepository struct {
	db *gorm.DB
}

func NewStudentAnswerRepository(db *gorm.DB) StudentAnswerRepository {
	return &studentAnswerRepository{db: db}
}

func (r *studentAnswerRepository) FindByStudentAndExam(studentID, examID uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.db.Where("student_id = ? AND exam_id = ?", studentID, examID).Find(&answers).Error
	return answers, err
}
