package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	FindByID(id uint) (*model.Feedback, error)
	FindByTeacher(teacherID uint) ([]model.Feedback, error)
	FindByStudent(studentID uint) ([]model.Feedback, error)
	Update(feedback *model.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) FindByID(id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.db.First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindByTeacher(teacherID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) FindByStudent(studentID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) Update(feedback *model.Feedback) error {
	return r.db.Save(feedback).Error
}
