package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trannghia/learnhub/internal/controller"
	"github.com/trannghia/learnhub/internal/dto"
	"github.com/trannghia/learnhub/internal/middleware"
	"github.com/trannghia/learnhub/internal/service"
)

// StudentController serves every student-facing route. The student id always
// comes from the authenticated identity, never from the request.
type StudentController struct {
	dashboard  service.DashboardService
	content    service.ContentService
	attendance service.AttendanceService
	progress   service.ProgressService
	exams      service.ExamService
	feedback   service.FeedbackService
	enrollment service.EnrollmentService
}

func NewStudentController(
	dashboard service.DashboardService,
	content service.ContentService,
	attendance service.AttendanceService,
	progress service.ProgressService,
	exams service.ExamService,
	feedback service.FeedbackService,
	enrollment service.EnrollmentService,
) *StudentController {
	return &StudentController{
		dashboard:  dashboard,
		content:    content,
		attendance: attendance,
		progress:   progress,
		exams:      exams,
		feedback:   feedback,
		enrollment: enrollment,
	}
}

// Dashboard godoc
// @Summary Student landing page data
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentDashboardResponse
// @Router /student/dashboard [get]
func (ctrl *StudentController) Dashboard(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.dashboard.StudentDashboard(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile godoc
// @Summary Student profile with enrollments
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentProfileResponse
// @Router /student/profile [get]
func (ctrl *StudentController) Profile(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.dashboard.StudentProfile(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary Update the student's own profile
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentProfileUpdateRequest true "Profile fields"
// @Success 200 {object} dto.StudentProfileResponse
// @Router /student/profile [put]
func (ctrl *StudentController) UpdateProfile(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.StudentProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.dashboard.UpdateStudentProfile(identity.ID, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Courses godoc
// @Summary Courses the student is enrolled in
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Router /student/courses [get]
func (ctrl *StudentController) Courses(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	profile, err := ctrl.dashboard.StudentProfile(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile.Courses)
}

// EnrollCourse godoc
// @Summary Enroll the student in a course
// @Description Enrolling in a course the student already belongs to is a no-op.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /student/courses/{id}/enroll [post]
func (ctrl *StudentController) EnrollCourse(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	courseID, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	already, err := ctrl.enrollment.EnrollOne(identity.ID, courseID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	msg := "enrolled"
	if already {
		msg = "already enrolled"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

// Materials godoc
// @Summary Study materials across the student's courses
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MaterialResponse
// @Router /student/materials [get]
func (ctrl *StudentController) Materials(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.content.StudentMaterials(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordedClasses godoc
// @Summary Recorded classes across the student's courses
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RecordedClassResponse
// @Router /student/recorded-classes [get]
func (ctrl *StudentController) RecordedClasses(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.content.StudentRecordedClasses(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LiveClasses godoc
// @Summary Scheduled live classes across the student's courses
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LiveClassResponse
// @Router /student/live-classes [get]
func (ctrl *StudentController) LiveClasses(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.content.StudentLiveClasses(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exams godoc
// @Summary Exams available to the student, with attempt status
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamSummaryResponse
// @Router /student/exams [get]
func (ctrl *StudentController) Exams(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.exams.StudentExams(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AttendExam godoc
// @Summary Open an exam for taking
// @Description Returns the questions without answers. Reattending clears earlier answers and results.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamAttendResponse
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in the exam's course"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /student/exams/{id}/attend [post]
func (ctrl *StudentController) AttendExam(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	examID, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.exams.Attend(identity.ID, examID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitExam godoc
// @Summary Submit exam answers for grading
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param request body dto.ExamSubmitRequest true "Answers keyed by question id"
// @Success 200 {object} dto.ExamResultResponse
// @Router /student/exams/{id}/submit [post]
func (ctrl *StudentController) SubmitExam(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	examID, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ExamSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.exams.Submit(identity.ID, examID, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExamResult godoc
// @Summary The student's graded result for one exam
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 404 {object} dto.ErrorResponse "No result yet"
// @Router /student/exams/{id}/result [get]
func (ctrl *StudentController) ExamResult(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	examID, ok := controller.UintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.exams.Result(identity.ID, examID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Progress godoc
// @Summary The student's completion summary
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProgressSummaryResponse
// @Router /student/progress [get]
func (ctrl *StudentController) Progress(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.progress.Summary(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProgress godoc
// @Summary Mark a content item complete or incomplete
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProgressUpdateRequest true "Item reference and completion flag"
// @Success 200 {object} dto.ProgressItem
// @Failure 400 {object} dto.ErrorResponse "Unknown content kind"
// @Failure 404 {object} dto.ErrorResponse "Content item not found"
// @Router /student/progress [post]
func (ctrl *StudentController) UpdateProgress(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.ProgressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.progress.SetCompletion(identity.ID, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Attendance godoc
// @Summary The student's attendance history and percentage
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AttendanceSummaryResponse
// @Router /student/attendance [get]
func (ctrl *StudentController) Attendance(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.attendance.Summary(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitFeedback godoc
// @Summary Send feedback to one of the student's teachers
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FeedbackCreateRequest true "Teacher and message"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse "Teacher does not teach any of the student's courses"
// @Router /student/feedback [post]
func (ctrl *StudentController) SubmitFeedback(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req dto.FeedbackCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.feedback.Submit(identity.ID, req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Feedbacks godoc
// @Summary The student's sent feedback with any replies
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FeedbackResponse
// @Router /student/feedback [get]
func (ctrl *StudentController) Feedbacks(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	resp, err := ctrl.feedback.StudentFeedbacks(identity.ID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
