package repository

import (
	"time"

	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	FindByStudentAndDate(studentID uint, date time.Time) (*model.Attendance, error)
	Create(attendance *model.Attendance) error
	Update(attendance *model.Attendance) error
	FindByStudent(studentID uint) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) FindByStudentAndDate(studentID uint, date time.Time) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.Where("student_id = ? AND date = ?", studentID, date).First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) Create(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) Update(attendance *model.Attendance) error {
	return r.db.Save(attendance).Error
}

func (r *attendanceRepository) FindByStudent(studentID uint) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.Where("student_id = ?", studentID).Order("date ASC").Find(&records).Error
	return records, err
}
