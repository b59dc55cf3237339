package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(material *model.StudyMaterial) error
	FindByID(id uint) (*model.StudyMaterial, error)
	FindByTeacher(teacherID uint) ([]model.StudyMaterial, error)
	FindByCourse(courseID uint) ([]model.StudyMaterial, error)
	FindByCourseIDs(courseIDs []uint) ([]model.StudyMaterial, error)
	FindAll(search string, courseID *uint) ([]model.StudyMaterial, error)
	CountByCourseIDs(courseIDs []uint) (int64, error)
	Count() (int64, error)
	Update(material *model.StudyMaterial) error
	Delete(id uint) error
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(material *model.StudyMaterial) error {
	return r.db.Create(material).Error
}

func (r *materialRepository) FindByID(id uint) (*model.StudyMaterial, error) {
	var material model.StudyMaterial
	if err := r.db.First(&material, id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) FindByTeacher(teacherID uint) ([]model.StudyMaterial, error) {
	var materials []model.StudyMaterial
	err := r.db.Where("teacher_id = ?", teacherID).Order("upload_date DESC").Find(&materials).Error
	return materials, err
}

func (r *materialRepository) FindByCourse(courseID uint) ([]model.StudyMaterial, error) {
	var materials []model.StudyMaterial
	err := r.db.Where("course_id = ?", courseID).Order("upload_date DESC").Find(&materials).Error
	return materials, err
}

func (r *materialRepository) FindByCourseIDs(courseIDs []uint) ([]model.StudyMaterial, error) {
	var materials []model.StudyMaterial
	err := r.db.Where("course_id IN ?", courseIDs).Order("upload_date DESC").Find(&materials).Error
	return materials, err
}

func (r *materialRepository) FindAll(search string, courseID *uint) ([]model.StudyMaterial, error) {
	var materials []model.StudyMaterial
	query := r.db.Model(&model.StudyMaterial{})
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}
	err := query.Order("upload_date DESC").Find(&materials).Error
	return materials, err
}

func (r *materialRepository) CountByCourseIDs(courseIDs []uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.StudyMaterial{}).Where("course_id IN ?", courseIDs).Count(&count).Error
	return count, err
}

func (r *materialRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.StudyMaterial{}).Count(&count).Error
	return count, err
}

func (r *materialRepository) Update(material *model.StudyMaterial) error {
	return r.db.Save(material).Error
}

// Delete removes the material and any completion rows pointing at it, so the
// completed count never outgrows the remaining content.
func (r *materialRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ? AND item_id = ?", model.ContentMaterial, id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.StudyMaterial{}, id).Error
	})
}
