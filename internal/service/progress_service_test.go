package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

func newProgressServiceForTest(db *gorm.DB) ProgressService {
	return NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTeacherRepository(db),
		repository.NewMaterialRepository(db),
		repository.NewRecordedClassRepository(db),
		repository.NewLiveClassRepository(db),
		repository.NewExamRepository(db),
	)
}

func seedMaterial(t *testing.T, db *gorm.DB, teacherID, courseID uint, title string) model.StudyMaterial {
	t.Helper()
	material := model.StudyMaterial{
		TeacherID:  teacherID,
		CourseID:   courseID,
		Title:      title,
		Filename:   title + ".pdf",
		UploadDate: time.Now(),
	}
	require.NoError(t, db.Create(&material).Error)
	return material
}

func TestSetCompletionRejectsUnknownKind(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	student := seedStudent(t, db, "s@school.vn", course)
	svc := newProgressServiceForTest(db)

	_, err := svc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "video", ItemID: 1, Completed: true,
	})
	assert.ErrorIs(t, err, ErrUnknownContentKind)
}

func TestSetCompletionRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	other := seedCourse(t, db, "History")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", other)
	material := seedMaterial(t, db, teacher.ID, course.ID, "algebra")
	svc := newProgressServiceForTest(db)

	_, err := svc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "material", ItemID: material.ID, Completed: true,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestProgressPercentFloors(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	first := seedMaterial(t, db, teacher.ID, course.ID, "one")
	seedMaterial(t, db, teacher.ID, course.ID, "two")
	seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	svc := newProgressServiceForTest(db)

	item, err := svc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "material", ItemID: first.ID, Completed: true,
	})
	require.NoError(t, err)
	assert.True(t, item.Completed)
	require.NotNil(t, item.CompletionDate)

	summary, err := svc.Summary(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 1, summary.CompletedItems)
	// 1/3 floors to 33, never rounds up.
	assert.Equal(t, 33, summary.Percent)
}

func TestProgressPercentZeroWithoutContent(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	student := seedStudent(t, db, "s@school.vn", course)
	svc := newProgressServiceForTest(db)

	summary, err := svc.Summary(student.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalItems)
	assert.Zero(t, summary.Percent)
}

func TestSetCompletionToggleClearsDate(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	material := seedMaterial(t, db, teacher.ID, course.ID, "one")
	svc := newProgressServiceForTest(db)

	_, err := svc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "material", ItemID: material.ID, Completed: true,
	})
	require.NoError(t, err)

	item, err := svc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "material", ItemID: material.ID, Completed: false,
	})
	require.NoError(t, err)
	assert.False(t, item.Completed)
	assert.Nil(t, item.CompletionDate)

	// Still a single row per (student, item).
	var count int64
	require.NoError(t, db.Model(&model.Progress{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProgressSummaryExcludesDeletedContent(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	first := seedMaterial(t, db, teacher.ID, course.ID, "one")
	second := seedMaterial(t, db, teacher.ID, course.ID, "two")
	svc := newProgressServiceForTest(db)

	for _, id := range []uint{first.ID, second.ID} {
		_, err := svc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
			Kind: "material", ItemID: id, Completed: true,
		})
		require.NoError(t, err)
	}

	require.NoError(t, repository.NewMaterialRepository(db).Delete(second.ID))

	summary, err := svc.Summary(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalItems)
	// The deleted material's completion row must go with it, otherwise
	// completed outcounts the remaining content and percent passes 100.
	assert.Equal(t, 1, summary.CompletedItems)
	assert.Equal(t, 100, summary.Percent)
	assert.LessOrEqual(t, summary.Percent, 100)
}

func TestTeacherStudentSummaryLimitedToSharedCourses(t *testing.T) {
	db := newTestDB(t)
	shared := seedCourse(t, db, "Math")
	private := seedCourse(t, db, "History")
	teacher := seedTeacher(t, db, "t@school.vn", shared)
	outsider := seedTeacher(t, db, "o@school.vn", private)
	student := seedStudent(t, db, "s@school.vn", shared, private)
	sharedMaterial := seedMaterial(t, db, teacher.ID, shared.ID, "algebra")
	seedMaterial(t, db, outsider.ID, private.ID, "dates")
	svc := newProgressServiceForTest(db)

	_, err := svc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "material", ItemID: sharedMaterial.ID, Completed: true,
	})
	require.NoError(t, err)

	summary, err := svc.TeacherStudentSummary(teacher.ID, student.ID)
	require.NoError(t, err)
	// Only the shared course counts toward this teacher's view.
	assert.Equal(t, 1, summary.TotalItems)
	assert.Equal(t, 100, summary.Percent)
}

func TestTeacherStudentSummaryForbiddenWithoutSharedCourse(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	history := seedCourse(t, db, "History")
	teacher := seedTeacher(t, db, "t@school.vn", math)
	student := seedStudent(t, db, "s@school.vn", history)
	svc := newProgressServiceForTest(db)

	_, err := svc.TeacherStudentSummary(teacher.ID, student.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTeacherTableListsEnrolledStudents(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	a := seedStudent(t, db, "a@school.vn", course)
	seedStudent(t, db, "b@school.vn", course)
	material := seedMaterial(t, db, teacher.ID, course.ID, "one")
	svc := newProgressServiceForTest(db)

	_, err := svc.SetCompletion(a.ID, dto.ProgressUpdateRequest{
		Kind: "material", ItemID: material.ID, Completed: true,
	})
	require.NoError(t, err)

	rows, err := svc.TeacherTable(teacher.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := make(map[uint]int)
	for _, row := range rows {
		byID[row.StudentID] = row.Percent
	}
	assert.Equal(t, 100, byID[a.ID])
}
