package members

import "fmt"

type ErrEmployeeNotFound struct {
	ID	string
}

func (e *ErrEmployeeNotFound) Error() string {
	return fmt.Sprintf("employee with id = \"%s\" not found", e.ID)
}

type ErrStudentNotFound struct {
	ID	string
}

func (e *ErrStudentNotFound) Error() string {
	return fmt.Sprintf("student with id = \"%s\" not found", e.ID)
}

type ErrInvalidMember struct {
	Message	string
}

func (e *ErrInvalidMember) Error() string {
	return fmt.Sprintf("invalid member: %s", e.Message)
}

type ErrCourseLimitReached struct {
	ID	string
}

func (e *ErrCourseLimitReached) Error() string {
	return fmt.Sprintf("student with id = \"%s\" is already registered for %d courses", e.ID, MaxCoursesPerStudent)
}

type ErrBalanceTooHigh struct {
	ID		string
	Balance	float64
}

func (e *ErrBalanceTooHigh) Error() string {
	return fmt.Sprintf("balance of student with id = \"%s\" (%v) is too high to register for more courses", e.ID, e.Balance)
}

type ErrInvalidSelection struct {
	Selection	int
	Count		int
}

func (e *ErrInvalidSelection) Error() string {
	return fmt.Sprintf("selection %d is out of range [1, %d]", e.Selection, e.Count)
}
