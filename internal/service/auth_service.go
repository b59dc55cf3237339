package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/config"
	"github.com/trannghia/learnhub/internal/auth"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	// RegisterStudent creates the account, or — when the email is already
	// registered and the password matches — treats the request as an
	// enrollment into the listed courses. The returned warning names
	// courses that were skipped because the student already had them.
	RegisterStudent(req dto.StudentRegisterRequest) (warning string, err error)
	RegisterTeacher(req dto.TeacherRegisterRequest, photoFilename string) error
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	AdminLogin(req dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(req dto.ChangePasswordRequest) error
}

type authService struct {
	cfg         *config.Config
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
	adminRepo   repository.AdminRepository
	courseRepo  repository.CourseRepository
	enrollment  EnrollmentService
}

func NewAuthService(
	cfg *config.Config,
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	adminRepo repository.AdminRepository,
	courseRepo repository.CourseRepository,
	enrollment EnrollmentService,
) AuthService {
	return &authService{
		cfg:         cfg,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
		courseRepo:  courseRepo,
		enrollment:  enrollment,
	}
}

func (s *authService) RegisterStudent(req dto.StudentRegisterRequest) (string, error) {
	existing, err := s.studentRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Failed to check student email")
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	if existing != nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(req.Password)) != nil {
			return "", ErrEmailTaken
		}
		already, err := s.enrollment.Enroll(existing.ID, req.CourseIDs)
		if err != nil {
			return "", err
		}
		return alreadyEnrolledWarning(already), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	student := model.Student{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Age:      req.Age,
		Grade:    req.Grade,
	}
	if err := s.studentRepo.Create(&student); err != nil {
		log.Error().Err(err).Msg("Failed to create student")
		return "", fmt.Errorf("failed to create student: %w", err)
	}
	log.Info().Uint("student_id", student.ID).Str("email", student.Email).Msg("Student registered")

	already, err := s.enrollment.Enroll(student.ID, req.CourseIDs)
	if err != nil {
		return "", err
	}
	return alreadyEnrolledWarning(already), nil
}

func alreadyEnrolledWarning(courseNames []string) string {
	if len(courseNames) == 0 {
		return ""
	}
	return "already enrolled in: " + strings.Join(courseNames, ", ")
}

func (s *authService) RegisterTeacher(req dto.TeacherRegisterRequest, photoFilename string) error {
	if _, err := s.teacherRepo.FindByEmail(req.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Failed to check teacher email")
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var courseIDs []uint
	if req.CourseID != nil {
		courseIDs = append(courseIDs, *req.CourseID)
	}
	if req.SecondCourseID != nil && (req.CourseID == nil || *req.SecondCourseID != *req.CourseID) {
		courseIDs = append(courseIDs, *req.SecondCourseID)
	}
	var courses []model.Course
	if len(courseIDs) > 0 {
		courses, err = s.courseRepo.FindByIDs(courseIDs)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load courses for teacher registration")
			return fmt.Errorf("failed to load courses: %w", err)
		}
	}

	teacher := model.Teacher{
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hash),
		Qualifications:    req.Qualifications,
		Availability:      req.Availability,
		YearsOfExperience: req.YearsOfExperience,
		Contact:           req.Contact,
		Place:             req.Place,
		Courses:           courses,
	}
	if photoFilename != "" {
		teacher.Photo = photoFilename
	}
	if err := s.teacherRepo.Create(&teacher); err != nil {
		log.Error().Err(err).Msg("Failed to create teacher")
		return fmt.Errorf("failed to create teacher: %w", err)
	}
	log.Info().Uint("teacher_id", teacher.ID).Str("email", teacher.Email).Msg("Teacher registered")
	return nil
}

// Login tries the student table first, then teachers. One login form serves
// both roles.
func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if student, err := s.studentRepo.FindByEmail(req.Email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)) == nil {
			return s.issueToken(auth.Identity{ID: student.ID, Role: auth.RoleStudent}, student.Name)
		}
		return nil, ErrInvalidCredentials
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Failed to look up student for login")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if teacher, err := s.teacherRepo.FindByEmail(req.Email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(req.Password)) == nil {
			return s.issueToken(auth.Identity{ID: teacher.ID, Role: auth.RoleTeacher}, teacher.Name)
		}
		return nil, ErrInvalidCredentials
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Failed to look up teacher for login")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	return nil, ErrInvalidCredentials
}

func (s *authService) AdminLogin(req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("Failed to look up admin for login")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(auth.Identity{ID: admin.ID, Role: auth.RoleAdmin}, admin.Name)
}

func (s *authService) issueToken(identity auth.Identity, name string) (*dto.LoginResponse, error) {
	token, err := auth.GenerateToken(s.cfg.Auth.JWTSecret, identity)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Role: identity.Role, ID: identity.ID, Name: name}, nil
}

// ChangePassword resets the password for whichever account owns the email,
// checking students before teachers.
func (s *authService) ChangePassword(req dto.ChangePasswordRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if student, err := s.studentRepo.FindByEmail(req.Email); err == nil {
		student.Password = string(hash)
		if err := s.studentRepo.Update(student); err != nil {
			log.Error().Err(err).Uint("student_id", student.ID).Msg("Failed to update student password")
			return fmt.Errorf("failed to update password: %w", err)
		}
		log.Info().Uint("student_id", student.ID).Msg("Student password changed")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if teacher, err := s.teacherRepo.FindByEmail(req.Email); err == nil {
		teacher.Password = string(hash)
		if err := s.teacherRepo.Update(teacher); err != nil {
			log.Error().Err(err).Uint("teacher_id", teacher.ID).Msg("Failed to update teacher password")
			return fmt.Errorf("failed to update password: %w", err)
		}
		log.Info().Uint("teacher_id", teacher.ID).Msg("Teacher password changed")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	return gorm.ErrRecordNotFound
}
