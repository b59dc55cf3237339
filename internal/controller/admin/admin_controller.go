package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trannghia/learnhub/internal/controller"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/service"
)

// AdminController serves the admin console: aggregate stats, course CRUD with
// undo, and people management.
type AdminController struct {
	adminService    service.AdminService
	courseService   service.CourseService
	progressService service.ProgressService
}

func NewAdminController(adminService service.AdminService, courseService service.CourseService, progressService service.ProgressService) *AdminController {
	return &AdminController{adminService: adminService, courseService: courseService, progressService: progressService}
}

// Dashboard godoc
// @Summary Aggregate counts and per-course chart data
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminDashboardResponse
// @Router /admin/dashboard [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	resp, err := ctrl.adminService.Dashboard()
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseCreateRequest true "Course data"
// @Success 201 {object} dto.CourseResponse
// @Failure 409 {object} dto.ErrorResponse "Course name already in use"
// @Router /admin/courses [post]
func (ctrl *AdminController) CreateCourse(c *gin.Context) {
	var req dto.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.courseService.Create(req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Courses godoc
// @Summary List every course
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Router /admin/courses [get]
func (ctrl *AdminController) Courses(c *gin.Context) {
	resp, err := ctrl.courseService.List()
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateCourse godoc
// @Summary Rename or redescribe a course
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseUpdateRequest true "New data"
// @Success 200 {object} dto.CourseResponse
// @Router /admin/courses/{id} [put]
func (ctrl *AdminController) UpdateCourse(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.CourseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.courseService.Update(id, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteCourse godoc
// @Summary Delete a course and all of its content
// @Description Returns a snapshot that /admin/courses/undo accepts to restore the course shell.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseSnapshot
// @Router /admin/courses/{id} [delete]
func (ctrl *AdminController) DeleteCourse(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	snapshot, err := ctrl.courseService.Delete(id)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// UndoDeleteCourse godoc
// @Summary Restore a just-deleted course from its snapshot
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseSnapshot true "Snapshot returned by delete"
// @Success 201 {object} dto.CourseResponse
// @Router /admin/courses/undo [post]
func (ctrl *AdminController) UndoDeleteCourse(c *gin.Context) {
	var snapshot dto.CourseSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.courseService.Undo(snapshot)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Students godoc
// @Summary List students, filterable by name/email search and course
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email substring"
// @Param course_id query int false "Only students in this course"
// @Success 200 {array} dto.StudentSummary
// @Router /admin/students [get]
func (ctrl *AdminController) Students(c *gin.Context) {
	courseID, ok := controller.UintQuery(c, "course_id")
	if !ok {
		return
	}
	resp, err := ctrl.adminService.ListStudents(c.Query("search"), courseID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Student godoc
// @Summary One student with their enrollments
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StudentProfileResponse
// @Router /admin/students/{id} [get]
func (ctrl *AdminController) Student(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.adminService.GetStudent(id)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStudent godoc
// @Summary Edit a student's profile and enrollments
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.StudentProfileUpdateRequest true "Profile fields"
// @Success 200 {object} dto.StudentProfileResponse
// @Router /admin/students/{id} [put]
func (ctrl *AdminController) UpdateStudent(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.StudentProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.adminService.UpdateStudent(id, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteStudent godoc
// @Summary Remove a student and everything they own
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Router /admin/students/{id} [delete]
func (ctrl *AdminController) DeleteStudent(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.adminService.DeleteStudent(id); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "student deleted"})
}

// StudentProgress godoc
// @Summary A student's completion summary as the admin sees it
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.ProgressSummaryResponse
// @Router /admin/students/{id}/progress [get]
func (ctrl *AdminController) StudentProgress(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.progressService.Summary(id)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Materials godoc
// @Summary List study materials, filterable by title search and course
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Title substring"
// @Param course_id query int false "Only materials in this course"
// @Success 200 {array} dto.MaterialResponse
// @Router /admin/materials [get]
func (ctrl *AdminController) Materials(c *gin.Context) {
	courseID, ok := controller.UintQuery(c, "course_id")
	if !ok {
		return
	}
	resp, err := ctrl.adminService.ListMaterials(c.Query("search"), courseID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Teachers godoc
// @Summary List teachers, filterable by search and course
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email substring"
// @Param course_id query int false "Only teachers assigned to this course"
// @Success 200 {array} dto.TeacherSummary
// @Router /admin/teachers [get]
func (ctrl *AdminController) Teachers(c *gin.Context) {
	courseID, ok := controller.UintQuery(c, "course_id")
	if !ok {
		return
	}
	resp, err := ctrl.adminService.ListTeachers(c.Query("search"), courseID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Teacher godoc
// @Summary One teacher with their course assignments
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.TeacherProfileResponse
// @Router /admin/teachers/{id} [get]
func (ctrl *AdminController) Teacher(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.adminService.GetTeacher(id)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive"`
}

// SetTeacherStatus godoc
// @Summary Activate or deactivate a teacher account
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.MessageResponse
// @Router /admin/teachers/{id}/status [put]
func (ctrl *AdminController) SetTeacherStatus(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.adminService.SetTeacherStatus(id, req.Status); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "status updated"})
}

// DeleteTeacher godoc
// @Summary Remove a teacher and their uploaded content
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.MessageResponse
// @Router /admin/teachers/{id} [delete]
func (ctrl *AdminController) DeleteTeacher(c *gin.Context) {
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.adminService.DeleteTeacher(id); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "teacher deleted"})
}
