package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrCourseNameTaken    = errors.New("a course with this name already exists")
	ErrForbidden          = errors.New("not allowed to access this resource")
	ErrNotEnrolled        = errors.New("student is not enrolled in a course taught by this teacher")
	ErrUnknownContentKind = errors.New("unknown content kind")
	ErrNoQuestions        = errors.New("exam needs at least one complete question")
)
