package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type TeacherRepository interface {
	Create(teacher *model.Teacher) error
	FindByID(id uint) (*model.Teacher, error)
	FindByIDWithCourses(id uint) (*model.Teacher, error)
	FindByEmail(email string) (*model.Teacher, error)
	FindAll(search string, courseID *uint) ([]model.Teacher, error)
	FindByCourseIDs(courseIDs []uint) ([]model.Teacher, error)
	Update(teacher *model.Teacher) error
	Delete(id uint) error
	ReplaceCourses(teacher *model.Teacher, courses []model.Course) error
	Count() (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(teacher *model.Teacher) error {
	return r.db.Create(teacher).Error
}

func (r *teacherRepository) FindByID(id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.First(&teacher, id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) FindByIDWithCourses(id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.Preload("Courses").First(&teacher, id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) FindByEmail(email string) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.Where("email = ?", email).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) FindAll(search string, courseID *uint) ([]model.Teacher, error) {
	var teachers []model.Teacher
	query := r.db.Model(&model.Teacher{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}
	if courseID != nil {
		query = query.
			Joins("JOIN teacher_courses tc ON tc.teacher_id = teachers.id").
			Where("tc.course_id = ?", *courseID).
			Distinct()
	}
	err := query.Order("teachers.name ASC").Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepository) FindByCourseIDs(courseIDs []uint) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.Model(&model.Teacher{}).
		Joins("JOIN teacher_courses tc ON tc.teacher_id = teachers.id").
		Where("tc.course_id IN ?", courseIDs).
		Distinct().
		Order("teachers.name ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepository) Update(teacher *model.Teacher) error {
	return r.db.Save(teacher).Error
}

// Delete removes the teacher together with course associations, their content
// and attendance marks, their exams with the attached grading rows, and the
// completion rows pointing at the removed content.
func (r *teacherRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		teacher := model.Teacher{ID: id}
		if err := tx.Model(&teacher).Association("Courses").Clear(); err != nil {
			return err
		}

		var examIDs []uint
		if err := tx.Model(&model.Exam{}).Where("teacher_id = ?", id).Pluck("id", &examIDs).Error; err != nil {
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
		}
		if err := purgeProgress(tx, model.ContentExam, examIDs); err != nil {
			return err
		}
		if err := tx.Where("teacher_id = ?", id).Delete(&model.Exam{}).Error; err != nil {
			return err
		}

		var materialIDs []uint
		if err := tx.Model(&model.StudyMaterial{}).Where("teacher_id = ?", id).Pluck("id", &materialIDs).Error; err != nil {
			return err
		}
		if err := purgeProgress(tx, model.ContentMaterial, materialIDs); err != nil {
			return err
		}
		if err := tx.Where("teacher_id = ?", id).Delete(&model.StudyMaterial{}).Error; err != nil {
			return err
		}

		var recordedIDs []uint
		if err := tx.Model(&model.RecordedClass{}).Where("teacher_id = ?", id).Pluck("id", &recordedIDs).Error; err != nil {
			return err
		}
		if err := purgeProgress(tx, model.ContentRecorded, recordedIDs); err != nil {
			return err
		}
		if err := tx.Where("teacher_id = ?", id).Delete(&model.RecordedClass{}).Error; err != nil {
			return err
		}

		var liveIDs []uint
		if err := tx.Model(&model.LiveClass{}).Where("teacher_id = ?", id).Pluck("id", &liveIDs).Error; err != nil {
			return err
		}
		if err := purgeProgress(tx, model.ContentLive, liveIDs); err != nil {
			return err
		}
		if err := tx.Where("teacher_id = ?", id).Delete(&model.LiveClass{}).Error; err != nil {
			return err
		}

		if err := tx.Where("teacher_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&teacher).Error
	})
}

func purgeProgress(tx *gorm.DB, kind model.ContentKind, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return tx.Where("kind = ? AND item_id IN ?", kind, itemIDs).Delete(&model.Progress{}).Error
}

func (r *teacherRepository) ReplaceCourses(teacher *model.Teacher, courses []model.Course) error {
	return r.db.Model(teacher).Association("Courses").Replace(courses)
}

func (r *teacherRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Teacher{}).Count(&count).Error
	return count, err
}
