package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/trannghia/learnhub/internal/model"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database. The shared-cache DSN keeps
// the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Admin{},
		&model.Student{},
		&model.Teacher{},
		&model.Course{},
		&model.StudyMaterial{},
		&model.RecordedClass{},
		&model.LiveClass{},
		&model.Attendance{},
		&model.Progress{},
		&model.Exam{},
		&model.Question{},
		&model.ExamAttempt{},
		&model.StudentAnswer{},
		&model.ExamResult{},
		&model.Feedback{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, name string) model.Course {
	t.Helper()
	course := model.Course{Name: name}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedStudent(t *testing.T, db *gorm.DB, email string, courses ...model.Course) model.Student {
	t.Helper()
	student := model.Student{
		Name:     "Student " + email,
		Email:    email,
		Password: "hashed",
		Age:      16,
		Grade:    "10",
		Courses:  courses,
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func seedTeacher(t *testing.T, db *gorm.DB, email string, courses ...model.Course) model.Teacher {
	t.Helper()
	teacher := model.Teacher{
		Name:              "Teacher " + email,
		Email:             email,
		Password:          "hashed",
		Qualifications:    "MSc",
		Availability:      "Weekdays",
		YearsOfExperience: 5,
		Contact:           "0123456789",
		Place:             "Hanoi",
		Courses:           courses,
	}
	require.NoError(t, db.Create(&teacher).Error)
	return teacher
}

func seedExam(t *testing.T, db *gorm.DB, teacherID, courseID uint, questions ...model.Question) model.Exam {
	t.Helper()
	exam := model.Exam{
		TeacherID: teacherID,
		CourseID:  courseID,
		Title:     "Exam",
		Questions: questions,
	}
	require.NoError(t, db.Create(&exam).Error)
	return exam
}

func question(text, correct string) model.Question {
	return model.Question{
		QuestionText:  text,
		OptionA:       "alpha",
		OptionB:       "beta",
		OptionC:       "gamma",
		OptionD:       "delta",
		CorrectOption: correct,
	}
}
