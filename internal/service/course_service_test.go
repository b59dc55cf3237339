package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

func newCourseServiceForTest(db *gorm.DB) CourseService {
	return NewCourseService(repository.NewCourseRepository(db), repository.NewTeacherRepository(db))
}

func TestCourseNameMustBeUnique(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseServiceForTest(db)

	_, err := svc.Create(dto.CourseCreateRequest{Name: "Math"})
	require.NoError(t, err)

	_, err = svc.Create(dto.CourseCreateRequest{Name: "Math"})
	assert.ErrorIs(t, err, ErrCourseNameTaken)
}

func TestCourseUpdateKeepsOwnName(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseServiceForTest(db)

	created, err := svc.Create(dto.CourseCreateRequest{Name: "Math", Description: "old"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.CourseUpdateRequest{Name: "Math", Description: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Description)
}

func TestCourseDeleteReturnsSnapshotAndCascades(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	svc := newCourseServiceForTest(db)

	snapshot, err := svc.Delete(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", snapshot.Name)
	assert.Equal(t, []uint{teacher.ID}, snapshot.TeacherIDs)

	var examCount, questionCount int64
	require.NoError(t, db.Model(&model.Exam{}).Count(&examCount).Error)
	require.NoError(t, db.Model(&model.Question{}).Count(&questionCount).Error)
	assert.Zero(t, examCount)
	assert.Zero(t, questionCount)

	// The student account survives, just without the enrollment.
	reloaded, err := repository.NewStudentRepository(db).FindByIDWithCourses(student.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Courses)
}

func TestCourseUndoRestoresTeachers(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	svc := newCourseServiceForTest(db)

	snapshot, err := svc.Delete(course.ID)
	require.NoError(t, err)

	restored, err := svc.Undo(*snapshot)
	require.NoError(t, err)
	assert.Equal(t, "Math", restored.Name)

	reloaded, err := repository.NewCourseRepository(db).FindByIDWithTeachers(restored.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Teachers, 1)
	assert.Equal(t, teacher.ID, reloaded.Teachers[0].ID)
}
