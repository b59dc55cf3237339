package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

func newExamServiceForTest(db *gorm.DB) ExamService {
	return NewExamService(
		db,
		repository.NewExamRepository(db),
		repository.NewExamAttemptRepository(db),
		repository.NewExamResultRepository(db),
		repository.NewStudentAnswerRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTeacherRepository(db),
	)
}

func answersFor(questions []model.Question, options ...string) map[string]string {
	answers := make(map[string]string)
	for i, q := range questions {
		if i < len(options) && options[i] != "" {
			answers[strconv.FormatUint(uint64(q.ID), 10)] = options[i]
		}
	}
	return answers
}

func TestExamSubmitGradesByExactMatch(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	exam := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"), question("q2", "B"))
	svc := newExamServiceForTest(db)

	result, err := svc.Submit(student.ID, exam.ID, dto.ExamSubmitRequest{
		Answers: answersFor(exam.Questions, "A", "C"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.SelectedOptions, 2)
}

func TestExamSubmitSkipsUnansweredQuestions(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	exam := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"), question("q2", "B"))
	svc := newExamServiceForTest(db)

	result, err := svc.Submit(student.ID, exam.ID, dto.ExamSubmitRequest{
		Answers: answersFor(exam.Questions, "A"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)

	var answerCount int64
	require.NoError(t, db.Model(&model.StudentAnswer{}).
		Where("student_id = ? AND exam_id = ?", student.ID, exam.ID).Count(&answerCount).Error)
	assert.EqualValues(t, 1, answerCount)
}

func TestExamResubmitReplacesPreviousAttempt(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	exam := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"), question("q2", "B"))
	svc := newExamServiceForTest(db)

	_, err := svc.Submit(student.ID, exam.ID, dto.ExamSubmitRequest{
		Answers: answersFor(exam.Questions, "C", "C"),
	})
	require.NoError(t, err)

	result, err := svc.Submit(student.ID, exam.ID, dto.ExamSubmitRequest{
		Answers: answersFor(exam.Questions, "A", "B"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)

	// Exactly one result, one attempt and one answer row per question survive.
	var resultCount, attemptCount int64
	require.NoError(t, db.Model(&model.ExamResult{}).
		Where("student_id = ? AND exam_id = ?", student.ID, exam.ID).Count(&resultCount).Error)
	require.NoError(t, db.Model(&model.ExamAttempt{}).
		Where("student_id = ? AND exam_id = ?", student.ID, exam.ID).Count(&attemptCount).Error)
	assert.EqualValues(t, 1, resultCount)
	assert.EqualValues(t, 1, attemptCount)
}

func TestExamAttendStartsFromCleanSlate(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	exam := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	svc := newExamServiceForTest(db)

	_, err := svc.Submit(student.ID, exam.ID, dto.ExamSubmitRequest{
		Answers: answersFor(exam.Questions, "A"),
	})
	require.NoError(t, err)

	resp, err := svc.Attend(student.ID, exam.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 1)

	var answerCount, resultCount int64
	require.NoError(t, db.Model(&model.StudentAnswer{}).
		Where("student_id = ? AND exam_id = ?", student.ID, exam.ID).Count(&answerCount).Error)
	require.NoError(t, db.Model(&model.ExamResult{}).
		Where("student_id = ? AND exam_id = ?", student.ID, exam.ID).Count(&resultCount).Error)
	assert.Zero(t, answerCount)
	assert.Zero(t, resultCount)

	var attempt model.ExamAttempt
	require.NoError(t, db.Where("student_id = ? AND exam_id = ?", student.ID, exam.ID).First(&attempt).Error)
	assert.Nil(t, attempt.Score)
}

func TestExamAttendRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	other := seedCourse(t, db, "History")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", other)
	exam := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	svc := newExamServiceForTest(db)

	_, err := svc.Attend(student.ID, exam.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExamCreateDropsBlankQuestions(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	svc := newExamServiceForTest(db)

	resp, err := svc.Create(teacher.ID, dto.ExamCreateRequest{
		Title:    "Quiz",
		CourseID: course.ID,
		Questions: []dto.QuestionCreateRequest{
			{QuestionText: "real", OptionA: "a", OptionB: "b", CorrectOption: "A"},
			{QuestionText: "", CorrectOption: "A"},
			{QuestionText: "no answer picked"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 1)

	_, err = svc.Create(teacher.ID, dto.ExamCreateRequest{
		Title:    "Empty",
		CourseID: course.ID,
		Questions: []dto.QuestionCreateRequest{
			{QuestionText: ""},
		},
	})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestExamCreateRejectsForeignCourse(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	other := seedCourse(t, db, "History")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	svc := newExamServiceForTest(db)

	_, err := svc.Create(teacher.ID, dto.ExamCreateRequest{
		Title:    "Quiz",
		CourseID: other.ID,
		Questions: []dto.QuestionCreateRequest{
			{QuestionText: "q", OptionA: "a", OptionB: "b", CorrectOption: "A"},
		},
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestStudentExamsReportAttemptState(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	attempted := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	fresh := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	svc := newExamServiceForTest(db)

	_, err := svc.Submit(student.ID, attempted.ID, dto.ExamSubmitRequest{
		Answers: answersFor(attempted.Questions, "A"),
	})
	require.NoError(t, err)

	summaries, err := svc.StudentExams(student.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := make(map[uint]dto.ExamSummaryResponse)
	for _, s := range summaries {
		byID[s.ID] = s
	}
	assert.True(t, byID[attempted.ID].Attended)
	assert.True(t, byID[attempted.ID].HasResult)
	assert.False(t, byID[fresh.ID].Attended)
	assert.False(t, byID[fresh.ID].HasResult)
}

func TestExamDeleteClearsCompletionRows(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	exam := seedExam(t, db, teacher.ID, course.ID, question("q1", "A"))
	svc := newExamServiceForTest(db)
	progressSvc := newProgressServiceForTest(db)

	_, err := progressSvc.SetCompletion(student.ID, dto.ProgressUpdateRequest{
		Kind: "exam", ItemID: exam.ID, Completed: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(teacher.ID, exam.ID))

	var progressCount int64
	require.NoError(t, db.Model(&model.Progress{}).
		Where("student_id = ?", student.ID).Count(&progressCount).Error)
	assert.Zero(t, progressCount)

	summary, err := progressSvc.Summary(student.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.CompletedItems)
	assert.Zero(t, summary.Percent)
}
