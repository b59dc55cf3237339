package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByStudentAndItem(studentID uint, kind model.ContentKind, itemID uint) (*model.Progress, error)
	Save(progress *model.Progress) error
	FindByStudent(studentID uint) ([]model.Progress, error)
	FindByStudentInCourses(studentID uint, courseIDs []uint) ([]model.Progress, error)
	CountCompletedInCourses(studentID uint, courseIDs []uint) (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByStudentAndItem(studentID uint, kind model.ContentKind, itemID uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.db.Where("student_id = ? AND kind = ? AND item_id = ?", studentID, kind, itemID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Save(progress *model.Progress) error {
	return r.db.Save(progress).Error
}

func (r *progressRepository) FindByStudent(studentID uint) ([]model.Progress, error) {
	var records []model.Progress
	err := r.db.Where("student_id = ?", studentID).Find(&records).Error
	return records, err
}

func (r *progressRepository) FindByStudentInCourses(studentID uint, courseIDs []uint) ([]model.Progress, error) {
	var records []model.Progress
	err := r.db.Where("student_id = ? AND course_id IN ?", studentID, courseIDs).Find(&records).Error
	return records, err
}

func (r *progressRepository) CountCompletedInCourses(studentID uint, courseIDs []uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Progress{}).
		Where("student_id = ? AND course_id IN ? AND completed = ?", studentID, courseIDs, true).
		Count(&count).Error
	return count, err
}
