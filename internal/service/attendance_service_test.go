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

func newAttendanceServiceForTest(db *gorm.DB) AttendanceService {
	return NewAttendanceService(repository.NewAttendanceRepository(db), repository.NewStudentRepository(db))
}

func TestMarkTodayOverwritesSameDay(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	svc := newAttendanceServiceForTest(db)

	mark := func(status string) {
		err := svc.MarkToday(teacher.ID, dto.AttendanceMarkRequest{
			Entries: []dto.AttendanceEntry{{StudentID: student.ID, Status: status}},
		})
		require.NoError(t, err)
	}
	mark("Present")
	mark("Absent")

	var records []model.Attendance
	require.NoError(t, db.Where("student_id = ?", student.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "Absent", records[0].Status)
}

func TestMarkTodaySkipsUnknownStudents(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	svc := newAttendanceServiceForTest(db)

	err := svc.MarkToday(teacher.ID, dto.AttendanceMarkRequest{
		Entries: []dto.AttendanceEntry{
			{StudentID: student.ID, Status: "Present"},
			{StudentID: 9999, Status: "Present"},
		},
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Attendance{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAttendanceSummaryPercentage(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	teacher := seedTeacher(t, db, "t@school.vn", course)
	student := seedStudent(t, db, "s@school.vn", course)
	svc := newAttendanceServiceForTest(db)

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i, status := range []string{"Present", "present", "Absent"} {
		record := model.Attendance{
			StudentID: student.ID,
			TeacherID: teacher.ID,
			Date:      base.AddDate(0, 0, i),
			Status:    status,
		}
		require.NoError(t, db.Create(&record).Error)
	}

	summary, err := svc.Summary(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalDays)
	assert.InDelta(t, 66.67, summary.Percentage, 0.001)
	assert.Equal(t, "02-03-2026", summary.Records[0].Date)
}

func TestAttendanceSummaryEmptyIsZero(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Math")
	student := seedStudent(t, db, "s@school.vn", course)
	svc := newAttendanceServiceForTest(db)

	summary, err := svc.Summary(student.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalDays)
	assert.Zero(t, summary.Percentage)
}
