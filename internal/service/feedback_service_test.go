package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

func newFeedbackServiceForTest(db *gorm.DB) FeedbackService {
	return NewFeedbackService(
		repository.NewFeedbackRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTeacherRepository(db),
	)
}

func TestFeedbackRequiresTeachingRelationship(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	history := seedCourse(t, db, "History")
	stranger := seedTeacher(t, db, "stranger@school.vn", history)
	student := seedStudent(t, db, "s@school.vn", math)
	svc := newFeedbackServiceForTest(db)

	_, err := svc.Submit(student.ID, dto.FeedbackCreateRequest{
		TeacherID: stranger.ID,
		Message:   "hello",
	})
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestFeedbackSubmitAndReply(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", math)
	student := seedStudent(t, db, "s@school.vn", math)
	svc := newFeedbackServiceForTest(db)

	created, err := svc.Submit(student.ID, dto.FeedbackCreateRequest{
		TeacherID: teacher.ID,
		Message:   "please share the slides",
	})
	require.NoError(t, err)
	assert.Nil(t, created.Reply)

	replied, err := svc.Reply(teacher.ID, created.ID, dto.FeedbackReplyRequest{Reply: "uploaded"})
	require.NoError(t, err)
	require.NotNil(t, replied.Reply)
	assert.Equal(t, "uploaded", *replied.Reply)
	assert.NotNil(t, replied.RepliedAt)

	mine, err := svc.StudentFeedbacks(student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Reply)
}

func TestFeedbackReplyOnlyByAddressedTeacher(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", math)
	other := seedTeacher(t, db, "other@school.vn", math)
	student := seedStudent(t, db, "s@school.vn", math)
	svc := newFeedbackServiceForTest(db)

	created, err := svc.Submit(student.ID, dto.FeedbackCreateRequest{
		TeacherID: teacher.ID,
		Message:   "question about homework",
	})
	require.NoError(t, err)

	_, err = svc.Reply(other.ID, created.ID, dto.FeedbackReplyRequest{Reply: "not mine"})
	assert.ErrorIs(t, err, ErrForbidden)
}
