package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByIDWithTeachers(id uint) (*model.Course, error)
	FindByName(name string) (*model.Course, error)
	FindByIDs(ids []uint) ([]model.Course, error)
	FindAll() ([]model.Course, error)
	FindAllWithCounts() ([]CourseWithCounts, error)
	Update(course *model.Course) error
	Delete(id uint) error
	Count() (int64, error)
}

// CourseWithCounts backs the admin dashboard per-course chart data.
type CourseWithCounts struct {
	model.Course
	StudentCount  int
	MaterialCount int
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDWithTeachers(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.Preload("Teachers").First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByName(name string) (*model.Course, error) {
	var course model.Course
	if err := r.db.Where("name = ?", name).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDs(ids []uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Where("id IN ?", ids).Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Order("name ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindAllWithCounts() ([]CourseWithCounts, error) {
	var results []CourseWithCounts
	err := r.db.Model(&model.Course{}).
		Select("courses.*, " +
			"(SELECT COUNT(*) FROM student_courses sc WHERE sc.course_id = courses.id) as student_count, " +
			"(SELECT COUNT(*) FROM study_materials m WHERE m.course_id = courses.id) as material_count").
		Order("courses.name ASC").
		Scan(&results).Error
	return results, err
}

func (r *courseRepository) Update(course *model.Course) error {
	return r.db.Save(course).Error
}

// Delete cascades to everything the course owns, including progress rows for
// the course's content, then drops the enrollment associations.
func (r *courseRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		course := model.Course{ID: id}
		if err := tx.Model(&course).Association("Teachers").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&course).Association("Students").Clear(); err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.StudyMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.RecordedClass{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.LiveClass{}).Error; err != nil {
			return err
		}
		var examIDs []uint
		if err := tx.Model(&model.Exam{}).Where("course_id = ?", id).Pluck("id", &examIDs).Error; err != nil {
			return err
		}
		if len(examIDs) > 0 {
			if err := tx.Where("exam_id IN ?", examIDs).Delete(&model.Question{}).Error; err != nil {
				return err
			}
			if err := tx.Where("exam_id IN ?", examIDs).Delete(&model.StudentAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("exam_id IN ?", examIDs).Delete(&model.ExamResult{}).Error; err != nil {
				return err
			}
			if err := tx.Where("exam_id IN ?", examIDs).Delete(&model.ExamAttempt{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", id).Delete(&model.Exam{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&course).Error
	})
}

func (r *courseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Course{}).Count(&count).Error
	return count, err
}
