package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trannghia/learnhub/config"
	"github.com/trannghia/learnhub/internal/auth"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/repository"
	"gorm.io/gorm"
)

func newAuthServiceForTest(db *gorm.DB) AuthService {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	return NewAuthService(
		cfg,
		repository.NewStudentRepository(db),
		repository.NewTeacherRepository(db),
		repository.NewAdminRepository(db),
		repository.NewCourseRepository(db),
		newEnrollmentServiceForTest(db),
	)
}

func TestRegisterStudentAndLogin(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	svc := newAuthServiceForTest(db)

	warning, err := svc.RegisterStudent(dto.StudentRegisterRequest{
		Name:      "An",
		Email:     "an@school.vn",
		Password:  "secret123",
		Age:       15,
		Grade:     "9",
		CourseIDs: []uint{math.ID},
	})
	require.NoError(t, err)
	assert.Empty(t, warning)

	resp, err := svc.Login(dto.LoginRequest{Email: "an@school.vn", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleStudent, resp.Role)
	assert.NotEmpty(t, resp.Token)

	identity, err := auth.ParseToken("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleStudent, identity.Role)
	assert.Equal(t, resp.ID, identity.ID)
}

func TestReRegisterEnrollsExistingStudent(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	history := seedCourse(t, db, "History")
	svc := newAuthServiceForTest(db)

	_, err := svc.RegisterStudent(dto.StudentRegisterRequest{
		Name: "An", Email: "an@school.vn", Password: "secret123",
		Age: 15, Grade: "9", CourseIDs: []uint{math.ID},
	})
	require.NoError(t, err)

	warning, err := svc.RegisterStudent(dto.StudentRegisterRequest{
		Name: "An", Email: "an@school.vn", Password: "secret123",
		Age: 15, Grade: "9", CourseIDs: []uint{math.ID, history.ID},
	})
	require.NoError(t, err)
	assert.Contains(t, warning, "Math")

	student, err := repository.NewStudentRepository(db).FindByEmail("an@school.vn")
	require.NoError(t, err)
	reloaded, err := repository.NewStudentRepository(db).FindByIDWithCourses(student.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Courses, 2)
}

func TestRegisterStudentRejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	svc := newAuthServiceForTest(db)

	_, err := svc.RegisterStudent(dto.StudentRegisterRequest{
		Name: "An", Email: "an@school.vn", Password: "secret123",
		Age: 15, Grade: "9", CourseIDs: []uint{math.ID},
	})
	require.NoError(t, err)

	_, err = svc.RegisterStudent(dto.StudentRegisterRequest{
		Name: "An", Email: "an@school.vn", Password: "different",
		Age: 15, Grade: "9", CourseIDs: []uint{math.ID},
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterTeacherAndLogin(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	svc := newAuthServiceForTest(db)

	err := svc.RegisterTeacher(dto.TeacherRegisterRequest{
		Name:              "Binh",
		Email:             "binh@school.vn",
		Password:          "secret123",
		Qualifications:    "MSc",
		Availability:      "Weekdays",
		YearsOfExperience: 4,
		Contact:           "0987654321",
		Place:             "Hue",
		CourseID:          &math.ID,
	}, "photo.jpg")
	require.NoError(t, err)

	resp, err := svc.Login(dto.LoginRequest{Email: "binh@school.vn", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleTeacher, resp.Role)

	teacher, err := repository.NewTeacherRepository(db).FindByIDWithCourses(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", teacher.Photo)
	assert.Len(t, teacher.Courses, 1)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthServiceForTest(db)

	_, err := svc.Login(dto.LoginRequest{Email: "ghost@school.vn", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordSwitchesLogin(t *testing.T) {
	db := newTestDB(t)
	math := seedCourse(t, db, "Math")
	svc := newAuthServiceForTest(db)

	_, err := svc.RegisterStudent(dto.StudentRegisterRequest{
		Name: "An", Email: "an@school.vn", Password: "oldpass1",
		Age: 15, Grade: "9", CourseIDs: []uint{math.ID},
	})
	require.NoError(t, err)

	err = svc.ChangePassword(dto.ChangePasswordRequest{
		Email: "an@school.vn", NewPassword: "newpass1", ConfirmPassword: "newpass1",
	})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Email: "an@school.vn", Password: "oldpass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(dto.LoginRequest{Email: "an@school.vn", Password: "newpass1"})
	assert.NoError(t, err)
}
