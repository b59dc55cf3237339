package repository

import (
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindByIDWithCourses(id uint) (*model.Student, error)
	FindByEmail(email string) (*model.Student, error)
	FindAll(search string, courseID *uint) ([]model.Student, error)
	FindByCourseIDs(courseIDs []uint) ([]model.Student, error)
	Update(student *model.Student) error
	Delete(id uint) error
	ReplaceCourses(student *model.Student, courses []model.Course) error
	AppendCourse(student *model.Student, course *model.Course) error
	Count() (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByIDWithCourses(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.Preload("Courses").First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByEmail(email string) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll(search string, courseID *uint) ([]model.Student, error) {
	var students []model.Student
	query := r.db.Model(&model.Student{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}
	if courseID != nil {
		query = query.
			Joins("JOIN student_courses sc ON sc.student_id = students.id").
			Where("sc.course_id = ?", *courseID).
			Distinct()
	}
	err := query.Order("students.name ASC").Find(&students).Error
	return students, err
}

func (r *studentRepository) FindByCourseIDs(courseIDs []uint) ([]model.Student, error) {
	var students []model.Student
	err := r.db.Model(&model.Student{}).
		Joins("JOIN student_courses sc ON sc.student_id = students.id").
		Where("sc.course_id IN ?", courseIDs).
		Distinct().
		Order("students.name ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepository) Update(student *model.Student) error {
	return r.db.Save(student).Error
}

// Delete removes the student plus enrollment associations and every row the
// student owns (attendance, progress, answers, results, attempts, feedback).
func (r *studentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		student := model.Student{ID: id}
		if err := tx.Model(&student).Association("Courses").Clear(); err != nil {
			return err
		}
		for _, m := range []interface{}{
			&model.Attendance{}, &model.Progress{}, &model.StudentAnswer{},
			&model.ExamResult{}, &model.ExamAttempt{}, &model.Feedback{},
		} {
			if err := tx.Where("student_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&student).Error
	})
}

func (r *studentRepository) ReplaceCourses(student *model.Student, courses []model.Course) error {
	return r.db.Model(student).Association("Courses").Replace(courses)
}

func (r *studentRepository) AppendCourse(student *model.Student, course *model.Course) error {
	return r.db.Model(student).Association("Courses").Append(course)
}

func (r *studentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Student{}).Count(&count).Error
	return count, err
}
