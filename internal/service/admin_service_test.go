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

func newAdminServiceForTest(db *gorm.DB) AdminService {
	return NewAdminService(
		repository.NewStudentRepository(db),
		repository.NewTeacherRepository(db),
		repository.NewCourseRepository(db),
		repository.NewMaterialRepository(db),
	)
}

func TestDeleteTeacherCascadesToExamsAndProgress(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	exam := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	material := seedMaterial(t, db, teacher.ID, course.ID, "algebra")
	examSvc := newExamServiceForTest(db)
	progressSvc := newProgressServiceForTest(db)
	svc := newAdminServiceForTest(db)

	_, err := examSvc.Submit(student.ID, exam.ID, dto.ExamSubmitRequest{
		Answers: answersFor(exam.Questions, "A"),
	})
	require.NoError(t, err)
	_, err = progressSvc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "material", ItemID: material.ID, Completed: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeacher(teacher.ID))

	for _, entity := range []interface{}{
		&model.Exam{},
		&model.Question{},
		&model.StudentAnswer{},
		&model.ExamResult{},
		&model.ExamAttempt{},
		&model.StudyMaterial{},
		&model.Progress{},
	} {
		var count int64
		require.NoError(t, db.Model(entity).Count(&count).Error)
		assert.Zero(t, count, "expected no rows left in %T", entity)
	}

	// The student keeps their account and enrollment.
	reloaded, err := repository.NewStudentRepository(db).FindByIDWithCourses(student.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Courses, 1)
}

func TestAdminListMaterialsFilters(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	history := seedCourse(t, db, "History")
	teacher := seedTeacher(t, db, "t@school.vn", math, history)
	seedMaterial(t, db, teacher.ID, math.ID, "algebra")
	seedMaterial(t, db, teacher.ID, history.ID, "dates")
	svc := newAdminServiceForTest(db)

	all, err := svc.ListMaterials("", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byTitle, err := svc.ListMaterials("alge", nil)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "algebra", byTitle[0].Title)

	byCourse, err := svc.ListMaterials("", &history.ID)
	require.NoError(t, err)
	require.Len(t, byCourse, 1)
	assert.Equal(t, "dates", byCourse[0].Title)
}
