package courses

import "fmt"

type ErrCourseNotFound struct {
	CRN	int
}

func (e *ErrCourseNotFound) Error() string {
	return fmt.Sprintf("course with crn = %d not found", e.CRN)
}

type ErrInvalidCourse struct {
	Message	string
}

func (e *ErrInvalidCourse) Error() string {
	return fmt.Sprintf("invalid course: %s", e.Message)
}
