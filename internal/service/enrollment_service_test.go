package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

func newEnrollmentServiceForTest(db *gorm.DB) EnrollmentService {
	return NewEnrollmentService(repository.NewStudentRepository(db), repository.NewCourseRepository(db))
}

func TestEnrollAddsCourses(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	history := seedCourse(t, db, "History")
	student := seedStudent(t, db, "s@school.vn")
	svc := newEnrollmentServiceForTest(db)

	already, err := svc.Enroll(student.ID, []uint{math.ID, history.ID})
	require.NoError(t, err)
	assert.Empty(t, already)

	reloaded, err := repository.NewStudentRepository(db).FindByIDWithCourses(student.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Courses, 2)
}

func TestEnrollDuplicateIsNoOp(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	student := seedStudent(t, db, "s@school.vn", math)
	svc := newEnrollmentServiceForTest(db)

	already, err := svc.Enroll(student.ID, []uint{math.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Math"}, already)

	reloaded, err := repository.NewStudentRepository(db).FindByIDWithCourses(student.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Courses, 1)
}

func TestEnrollIgnoresUnknownCourses(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	student := seedStudent(t, db, "s@school.vn")
	svc := newEnrollmentServiceForTest(db)

	already, err := svc.Enroll(student.ID, []uint{math.ID, 9999})
	require.NoError(t, err)
	assert.Empty(t, already)

	reloaded, err := repository.NewStudentRepository(db).FindByIDWithCourses(student.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Courses, 1)
}

func TestEnrollOneReportsExistingEnrollment(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	student := seedStudent(t, db, "s@school.vn")
	svc := newEnrollmentServiceForTest(db)

	already, err := svc.EnrollOne(student.ID, math.ID)
	require.NoError(t, err)
	assert.False(t, already)

	again, err := svc.EnrollOne(student.ID, math.ID)
	require.NoError(t, err)
	assert.True(t, again)

	reloaded, err := repository.NewStudentRepository(db).FindByIDWithCourses(student.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Courses, 1)
}

func TestEnrollOneRejectsUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "s@school.vn")
	svc := newEnrollmentServiceForTest(db)

	_, err := svc.EnrollOne(student.ID, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
