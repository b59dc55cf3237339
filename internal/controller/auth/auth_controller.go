package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/internal/controller"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/service"
	"github.com/trannghia/learnhub/internal/storage"
)

type AuthController struct {
	authService   service.AuthService
	courseService service.CourseService
	files         *storage.FileStore
}

func NewAuthController(authService service.AuthService, courseService service.CourseService, files *storage.FileStore) *AuthController {
	return &AuthController{authService: authService, courseService: courseService, files: files}
}

// Courses godoc
// @Summary List courses open for enrollment
// @Description Public so the registration form can offer the catalog.
// @Tags Auth
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Router /courses [get]
func (ctrl *AuthController) Courses(c *gin.Context) {
	resp, err := ctrl.courseService.List()
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterStudent godoc
// @Summary Register a student account
// @Description Creates a student and enrolls them in the listed courses. Posting again with the same credentials enrolls into additional courses.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Student registration data"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered with a different password"
// @Router /register/student [post]
func (ctrl *AuthController) RegisterStudent(c *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	warning, err := ctrl.authService.RegisterStudent(req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "registration successful", Warning: warning})
}

// RegisterTeacher godoc
// @Summary Register a teacher account
// @Description Creates a teacher profile from multipart form data; the optional "photo" field carries a profile picture.
// @Tags Auth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or photo type"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /register/teacher [post]
func (ctrl *AuthController) RegisterTeacher(c *gin.Context) {
	var req dto.TeacherRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var photoFilename string
	if fh, err := c.FormFile("photo"); err == nil {
		photoFilename, err = ctrl.files.SavePhoto(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	if err := ctrl.authService.RegisterTeacher(req, photoFilename); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "registration successful"})
}

// Login godoc
// @Summary Log in as a student or teacher
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.authService.Login(req)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("Login failed")
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdminLogin godoc
// @Summary Log in as an administrator
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.authService.AdminLogin(req)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("Admin login failed")
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangePassword godoc
// @Summary Reset the password for an email
// @Description Works for student and teacher accounts; the email decides which one is updated.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "New password, confirmed"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "No account with this email"
// @Router /change-password [post]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.authService.ChangePassword(req); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}
