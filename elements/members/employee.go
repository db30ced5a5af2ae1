package members

import (
	"github.com/DAv10195/campus_registry/elements/courses"
	"github.com/DAv10195/campus_registry/idgen"
	"github.com/DAv10195/campus_registry/store"
	"github.com/DAv10195/campus_registry/util/dates"
)

// employee. Assigned courses are embedded as full snapshots taken at
// assignment time. Salary is derived from the number of assigned courses and
// is recomputed on every assignment change, never trusted on its own
type Employee struct {
	Person
	Department	string				`json:"Department"`
	Courses		[]courses.Course	`json:"Courses"`
	Salary		int					`json:"Salary"`
}

func (e *Employee) recomputeSalary() {
	e.Salary = BaseSalary + len(e.Courses) * PerCourseBonus
}

// create a new employee with a freshly drawn member id and append it to the
// employee store
func NewEmployee(name string, dob dates.Date, address Address, department string) (*Employee, error) {
	employee := &Employee{
		Person: Person{Name: name, DOB: dob, Address: address},
		Department: department,
		Courses: []courses.Course{},
	}
	employee.recomputeSalary()
	if err := validate.Struct(employee); err != nil {
		return nil, &ErrInvalidMember{err.Error()}
	}
	id, err := idgen.NextMemberID()
	if err != nil {
		return nil, err
	}
	employee.ID = id
	records, err := store.Records[Employee](store.Employees)
	if err != nil {
		return nil, err
	}
	if err := store.Overwrite(store.Employees, append(records, *employee)); err != nil {
		return nil, err
	}
	logger.Debugf("employee \"%s\" (id = %s) added", employee.Name, employee.ID)
	return employee, nil
}

// return all persisted employees
func ListEmployees() ([]Employee, error) {
	return store.Records[Employee](store.Employees)
}

// return the employee with the given member id if it exists
func GetEmployee(id string) (*Employee, error) {
	records, err := store.Records[Employee](store.Employees)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			employee := record
			return &employee, nil
		}
	}
	return nil, &ErrEmployeeNotFound{id}
}

// AssignCourse embeds a snapshot of the course with the given CRN into the
// courses of the employee with the given member id and recomputes the salary.
// The same course may be assigned to the same employee more than once, each
// assignment counting towards the salary
func AssignCourse(memberID string, crn int) (*courses.Course, error) {
	employees, err := store.Records[Employee](store.Employees)
	if err != nil {
		return nil, err
	}
	employeeIndex := -1
	for i := range employees {
		if employees[i].ID == memberID {
			employeeIndex = i
			break
		}
	}
	if employeeIndex < 0 {
		return nil, &ErrEmployeeNotFound{memberID}
	}
	course, err := courses.GetByCRN(crn)
	if err != nil {
		return nil, err
	}
	employees[employeeIndex].Courses = append(employees[employeeIndex].Courses, *course)
	employees[employeeIndex].recomputeSalary()
	if err := store.Overwrite(store.Employees, employees); err != nil {
		return nil, err
	}
	logger.Debugf("course \"%s\" (crn = %d) assigned to employee %s", course.Subject, course.CRN, memberID)
	return course, nil
}

// UnassignCourse removes the course at the given 1 based selection from the
// courses of the employee with the given member id, recomputes the salary and
// returns the removed course
func UnassignCourse(memberID string, selection int) (*courses.Course, error) {
	employees, err := store.Records[Employee](store.Employees)
	if err != nil {
		return nil, err
	}
	employeeIndex := -1
	for i := range employees {
		if employees[i].ID == memberID {
			employeeIndex = i
			break
		}
	}
	if employeeIndex < 0 {
		return nil, &ErrEmployeeNotFound{memberID}
	}
	assigned := employees[employeeIndex].Courses
	if selection < 1 || selection > len(assigned) {
		return nil, &ErrInvalidSelection{selection, len(assigned)}
	}
	removed := assigned[selection - 1]
	employees[employeeIndex].Courses = append(assigned[:selection - 1], assigned[selection:]...)
	employees[employeeIndex].recomputeSalary()
	if err := store.Overwrite(store.Employees, employees); err != nil {
		return nil, err
	}
	logger.Debugf("course \"%s\" (crn = %d) unassigned from employee %s", removed.Subject, removed.CRN, memberID)
	return &removed, nil
}
