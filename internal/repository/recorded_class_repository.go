package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type RecordedClassRepository interface {
	Create(class *model.RecordedClass) error
	FindByID(id uint) (*model.RecordedClass, error)
	FindByTeacher(teacherID uint) ([]model.RecordedClass, error)
	FindByCourseIDs(courseIDs []uint) ([]model.RecordedClass, error)
	CountByCourseIDs(courseIDs []uint) (int64, error)
	Update(class *model.RecordedClass) error
	Delete(id uint) error
}

type recordedClassRepository struct {
	db *gorm.DB
}

func NewRecordedClassRepository(db *gorm.DB) RecordedClassRepository {
	return &recordedClassRepository{db: db}
}

func (r *recordedClassRepository) Create(class *model.RecordedClass) error {
	return r.db.Create(class).Error
}

func (r *recordedClassRepository) FindByID(id uint) (*model.RecordedClass, error) {
	var class model.RecordedClass
	if err := r.db.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *recordedClassRepository) FindByTeacher(teacherID uint) ([]model.RecordedClass, error) {
	var classes []model.RecordedClass
	err := r.db.Where("teacher_id = ?", teacherID).Order("date DESC").Find(&classes).Error
	return classes, err
}

func (r *recordedClassRepository) FindByCourseIDs(courseIDs []uint) ([]model.RecordedClass, error) {
	var classes []model.RecordedClass
	err := r.db.Where("course_id IN ?", courseIDs).Order("date DESC").Find(&classes).Error
	return classes, err
}

func (r *recordedClassRepository) CountByCourseIDs(courseIDs []uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.RecordedClass{}).Where("course_id IN ?", courseIDs).Count(&count).Error
	return count, err
}

func (r *recordedClassRepository) Update(class *model.RecordedClass) error {
	return r.db.Save(class).Error
}

func (r *recordedClassRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ? AND item_id = ?", model.ContentRecorded, id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RecordedClass{}, id).Error
	})
}
