package dto

// StudentRegisterRequest doubles as the enrollment form: posting again with a
// registered email enrolls that student into the listed courses.
type StudentRegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Age       int    `json:"age" binding:"required,min=10,max=100"`
	Grade     string `json:"grade" binding:"required"`
	CourseIDs []uint `json:"course_ids" binding:"required,min=1"`
}

// TeacherRegisterRequest arrives as multipart form data so the profile photo
// can ride along.
type TeacherRegisterRequest struct {
	Name              string `form:"name" binding:"required"`
	Email             string `form:"email" binding:"required,email"`
	Password          string `form:"password" binding:"required,min=6"`
	Qualifications    string `form:"qualifications" binding:"required"`
	Availability      string `form:"availability" binding:"required"`
	YearsOfExperience int    `form:"years_of_experience" binding:"min=0,max=50"`
	Contact           string `form:"contact" binding:"required,len=10,numeric"`
	Place             string `form:"place" binding:"required"`
	CourseID          *uint  `form:"course_id"`
	SecondCourseID    *uint  `form:"second_course_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}
