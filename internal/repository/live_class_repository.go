package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type LiveClassRepository interface {
	Create(class *model.LiveClass) error
	FindByID(id uint) (*model.LiveClass, error)
	FindByTeacher(teacherID uint) ([]model.LiveClass, error)
	FindByCourseIDs(courseIDs []uint) ([]model.LiveClass, error)
	CountByCourseIDs(courseIDs []uint) (int64, error)
	Update(class *model.LiveClass) error
	Delete(id uint) error
}

type liveClassRepository struct {
	db *gorm.DB
}

func NewLiveClassRepository(db *gorm.DB) LiveClassRepository {
	return &liveClassRepository{db: db}
}

func (r *liveClassRepository) Create(class *model.LiveClass) error {
	return r.db.Create(class).Error
}

func (r *liveClassRepository) FindByID(id uint) (*model.LiveClass, error) {
	var class model.LiveClass
	if err := r.db.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *liveClassRepository) FindByTeacher(teacherID uint) ([]model.LiveClass, error) {
	var classes []model.LiveClass
	err := r.db.Where("teacher_id = ?", teacherID).Order("date DESC").Find(&classes).Error
	return classes, err
}

func (r *liveClassRepository) FindByCourseIDs(courseIDs []uint) ([]model.LiveClass, error) {
	var classes []model.LiveClass
	err := r.db.Where("course_id IN ?", courseIDs).Order("date DESC").Find(&classes).Error
	return classes, err
}

func (r *liveClassRepository) CountByCourseIDs(courseIDs []uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.LiveClass{}).Where("course_id IN ?", courseIDs).Count(&count).Error
	return count, err
}

func (r *liveClassRepository) Update(class *model.LiveClass) error {
	return r.db.Save(class).Error
}

func (r *liveClassRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ? AND item_id = ?", model.ContentLive, id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.LiveClass{}, id).Error
	})
}
