package teacher

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trannghia/learnhub/internal/controller"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/middleware"
	"github.com/trannghia/learnhub/internal/service"
	"github.com/trannghia/learnhub/internal/storage"
)

// TeacherController serves the teacher console: content management, exams,
// attendance, progress views and feedback replies.
type TeacherController struct {
	dashboard  service.DashboardService
	content    service.ContentService
	attendance service.AttendanceService
	progress   service.ProgressService
	exams      service.ExamService
	feedback   service.FeedbackService
	files      *storage.FileStore
}

func NewTeacherController(
	dashboard service.DashboardService,
	content service.ContentService,
	attendance service.AttendanceService,
	progress service.ProgressService,
	exams service.ExamService,
	feedback service.FeedbackService,
	files *storage.FileStore,
) *TeacherController {
	return &TeacherController{
		dashboard:  dashboard,
		content:    content,
		attendance: attendance,
		progress:   progress,
		exams:      exams,
		feedback:   feedback,
		files:      files,
	}
}

// Dashboard godoc
// @Summary Teacher landing page data
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TeacherDashboardResponse
// @Router /teacher/dashboard [get]
func (ctrl *TeacherController) Dashboard(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.dashboard.TeacherDashboard(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile godoc
// @Summary Teacher profile with course assignments
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TeacherProfileResponse
// @Router /teacher/profile [get]
func (ctrl *TeacherController) Profile(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.dashboard.TeacherProfile(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update the teacher's own profile
// @Description Multipart form; an optional "photo" field replaces the profile picture.
// @Tags Teacher
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TeacherProfileResponse
// @Router /teacher/profile [put]
func (ctrl *TeacherController) UpdateProfile(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.TeacherProfileUpdateRequest
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
	resp, err := ctrl.dashboard.UpdateTeacherProfile(identity.ID, req, photoFilename)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Students godoc
// @Summary Students enrolled in the teacher's courses
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentSummary
// @Router /teacher/students [get]
func (ctrl *TeacherController) Students(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.dashboard.TeacherStudents(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadMaterial godoc
// @Summary Upload a study material
// @Description Multipart form; the document rides in the "file" field.
// @Tags Teacher
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or disallowed type"
// @Failure 403 {object} dto.ErrorResponse "Course not assigned to this teacher"
// @Router /teacher/materials [post]
func (ctrl *TeacherController) UploadMaterial(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.MaterialUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing file"})
		return
	}
	resp, err := ctrl.content.UploadMaterial(identity.ID, req, fh)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Materials godoc
// @Summary Materials uploaded by this teacher
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MaterialResponse
// @Router /teacher/materials [get]
func (ctrl *TeacherController) Materials(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.content.TeacherMaterials(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMaterial godoc
// @Summary Edit a material's title and description
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Param request body dto.MaterialUpdateRequest true "New metadata"
// @Success 200 {object} dto.MaterialResponse
// @Router /teacher/materials/{id} [put]
func (ctrl *TeacherController) UpdateMaterial(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.MaterialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.content.UpdateMaterial(identity.ID, id, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteMaterial godoc
// @Summary Delete a material and its stored file
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {object} dto.MessageResponse
// @Router /teacher/materials/{id} [delete]
func (ctrl *TeacherController) DeleteMaterial(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.content.DeleteMaterial(identity.ID, id); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "material deleted"})
}

// UploadRecordedClass godoc
// @Summary Upload a recorded class
// @Description Multipart form; the video rides in the "video" field.
// @Tags Teacher
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.RecordedClassResponse
// @Router /teacher/recorded-classes [post]
func (ctrl *TeacherController) UploadRecordedClass(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.RecordedClassUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	fh, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing video"})
		return
	}
	resp, err := ctrl.content.UploadRecordedClass(identity.ID, req, fh)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RecordedClasses godoc
// @Summary Recorded classes uploaded by this teacher
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RecordedClassResponse
// @Router /teacher/recorded-classes [get]
func (ctrl *TeacherController) RecordedClasses(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.content.TeacherRecordedClasses(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRecordedClass godoc
// @Summary Edit a recorded class's metadata
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recorded class ID"
// @Param request body dto.RecordedClassUpdateRequest true "New metadata"
// @Success 200 {object} dto.RecordedClassResponse
// @Router /teacher/recorded-classes/{id} [put]
func (ctrl *TeacherController) UpdateRecordedClass(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.RecordedClassUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.content.UpdateRecordedClass(identity.ID, id, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRecordedClass godoc
// @Summary Delete a recorded class and its video
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recorded class ID"
// @Success 200 {object} dto.MessageResponse
// @Router /teacher/recorded-classes/{id} [delete]
func (ctrl *TeacherController) DeleteRecordedClass(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.content.DeleteRecordedClass(identity.ID, id); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "recorded class deleted"})
}

// CreateLiveClass godoc
// @Summary Schedule a live class
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LiveClassCreateRequest true "Class details"
// @Success 201 {object} dto.LiveClassResponse
// @Router /teacher/live-classes [post]
func (ctrl *TeacherController) CreateLiveClass(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.LiveClassCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.content.CreateLiveClass(identity.ID, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LiveClasses godoc
// @Summary Live classes scheduled by this teacher
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LiveClassResponse
// @Router /teacher/live-classes [get]
func (ctrl *TeacherController) LiveClasses(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.content.TeacherLiveClasses(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateLiveClass godoc
// @Summary Edit a live class
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Live class ID"
// @Param request body dto.LiveClassUpdateRequest true "New details"
// @Success 200 {object} dto.LiveClassResponse
// @Router /teacher/live-classes/{id} [put]
func (ctrl *TeacherController) UpdateLiveClass(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.LiveClassUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.content.UpdateLiveClass(identity.ID, id, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteLiveClass godoc
// @Summary Cancel a live class
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path int true "Live class ID"
// @Success 200 {object} dto.MessageResponse
// @Router /teacher/live-classes/{id} [delete]
func (ctrl *TeacherController) DeleteLiveClass(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.content.DeleteLiveClass(identity.ID, id); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "live class deleted"})
}

// CreateExam godoc
// @Summary Create an exam with questions
// @Description Questions missing text or a correct option are dropped; at least one complete question is required.
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExamCreateRequest true "Exam and questions"
// @Success 201 {object} dto.ExamResponse
// @Router /teacher/exams [post]
func (ctrl *TeacherController) CreateExam(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.ExamCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.exams.Create(identity.ID, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Exams godoc
// @Summary Exams created by this teacher
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamResponse
// @Router /teacher/exams [get]
func (ctrl *TeacherController) Exams(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.exams.TeacherExams(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exam godoc
// @Summary One exam with its questions and answers
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Router /teacher/exams/{id} [get]
func (ctrl *TeacherController) Exam(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.exams.Get(identity.ID, id)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteExam godoc
// @Summary Delete an exam and everything recorded against it
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Router /teacher/exams/{id} [delete]
func (ctrl *TeacherController) DeleteExam(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.exams.Delete(identity.ID, id); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "exam deleted"})
}

// MarkAttendance godoc
// @Summary Mark today's attendance for a batch of students
// @Description Re-marking a student on the same day overwrites the earlier status.
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AttendanceMarkRequest true "Per-student statuses"
// @Success 200 {object} dto.MessageResponse
// @Router /teacher/attendance [post]
func (ctrl *TeacherController) MarkAttendance(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.AttendanceMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.attendance.MarkToday(identity.ID, req); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "attendance saved"})
}

// ProgressTable godoc
// @Summary Completion percentages for every student in the teacher's courses
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentProgressRow
// @Router /teacher/progress [get]
func (ctrl *TeacherController) ProgressTable(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.progress.TeacherTable(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StudentProgress godoc
// @Summary One student's progress in the courses this teacher runs
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.ProgressSummaryResponse
// @Failure 403 {object} dto.ErrorResponse "Student shares no course with this teacher"
// @Router /teacher/progress/{id} [get]
func (ctrl *TeacherController) StudentProgress(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	studentID, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.progress.TeacherStudentSummary(identity.ID, studentID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Feedbacks godoc
// @Summary Feedback addressed to this teacher
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FeedbackResponse
// @Router /teacher/feedback [get]
func (ctrl *TeacherController) Feedbacks(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.feedback.TeacherFeedbacks(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReplyFeedback godoc
// @Summary Reply to a feedback message
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Param request body dto.FeedbackReplyRequest true "Reply text"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 403 {object} dto.ErrorResponse "Feedback addressed to another teacher"
// @Router /teacher/feedback/{id}/reply [post]
func (ctrl *TeacherController) ReplyFeedback(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	id, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.FeedbackReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.feedback.Reply(identity.ID, id, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
