package members

import (
	"github.com/DAv10195/campus_registry/elements/courses"
	"github.com/DAv10195/campus_registry/idgen"
	"github.com/DAv10195/campus_registry/store"
	"github.com/DAv10195/campus_registry/util/dates"
)

// student. Registered courses are kept as subject strings only, and the
// balance accrues the cost of every registered course
type Student struct {
	Person
	Courses	[]string	`json:"Courses"`
	Balance	float64		`json:"Balance"`
}

// create a new student with a freshly drawn member id, no registered courses
// and a zero balance, and append it to the student store
func NewStudent(name string, dob dates.Date, address Address) (*Student, error) {
	student := &Student{
		Person: Person{Name: name, DOB: dob, Address: address},
		Courses: []string{},
	}
	if err := validate.Struct(student); err != nil {
		return nil, &ErrInvalidMember{err.Error()}
	}
	id, err := idgen.NextMemberID()
	if err != nil {
		return nil, err
	}
	student.ID = id
	records, err := store.Records[Student](store.Students)
	if err != nil {
		return nil, err
	}
	if err := store.Overwrite(store.Students, append(records, *student)); err != nil {
		return nil, err
	}
	logger.Debugf("student \"%s\" (id = %s) added", student.Name, student.ID)
	return student, nil
}

// return all persisted students
func ListStudents() ([]Student, error) {
	return store.Records[Student](store.Students)
}

// return the student with the given member id if it exists
func GetStudent(id string) (*Student, error) {
	records, err := store.Records[Student](store.Students)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			student := record
			return &student, nil
		}
	}
	return nil, &ErrStudentNotFound{id}
}

// RegisterCourse registers the student with the given member id for the course
// with the given CRN, appending the course subject to the student's courses
// and adding the course cost to the balance. Registration is refused when the
// student already holds the maximal number of courses, or when the balance
// already reached the ceiling before adding the new cost
func RegisterCourse(memberID string, crn int) (*courses.Course, error) {
	students, err := store.Records[Student](store.Students)
	if err != nil {
		return nil, err
	}
	studentIndex := -1
	for i := range students {
		if students[i].ID == memberID {
			studentIndex = i
			break
		}
	}
	if studentIndex < 0 {
		return nil, &ErrStudentNotFound{memberID}
	}
	if len(students[studentIndex].Courses) >= MaxCoursesPerStudent {
		return nil, &ErrCourseLimitReached{memberID}
	}
	if students[studentIndex].Balance >= MaxBalanceForRegistration {
		return nil, &ErrBalanceTooHigh{memberID, students[studentIndex].Balance}
	}
	course, err := courses.GetByCRN(crn)
	if err != nil {
		return nil, err
	}
	students[studentIndex].Courses = append(students[studentIndex].Courses, course.Subject)
	students[studentIndex].Balance += course.Cost
	if err := store.Overwrite(store.Students, students); err != nil {
		return nil, err
	}
	logger.Debugf("student %s registered for course \"%s\" (crn = %d)", memberID, course.Subject, course.CRN)
	return course, nil
}

// UnregisterCourse removes the subject at the given 1 based selection from the
// courses of the student with the given member id and deducts the cost of the
// first course whose subject equals the removed one. When no course with that
// subject exists anymore the balance is left unchanged, but the removal is
// persisted regardless
func UnregisterCourse(memberID string, selection int) (string, error) {
	students, err := store.Records[Student](store.Students)
	if err != nil {
		return "", err
	}
	studentIndex := -1
	for i := range students {
		if students[i].ID == memberID {
			studentIndex = i
			break
		}
	}
	if studentIndex < 0 {
		return "", &ErrStudentNotFound{memberID}
	}
	registered := students[studentIndex].Courses
	if selection < 1 || selection > len(registered) {
		return "", &ErrInvalidSelection{selection, len(registered)}
	}
	subject := registered[selection - 1]
	students[studentIndex].Courses = append(registered[:selection - 1], registered[selection:]...)
	cost, found, err := courses.CostBySubject(subject)
	if err != nil {
		logger.WithError(err).Warnf("error looking up the cost of \"%s\", leaving the balance of student %s unchanged", subject, memberID)
	} else if found {
		students[studentIndex].Balance -= cost
	} else {
		logger.Warnf("no course with subject \"%s\" exists anymore, leaving the balance of student %s unchanged", subject, memberID)
	}
	if err := store.Overwrite(store.Students, students); err != nil {
		return "", err
	}
	logger.Debugf("student %s unregistered from course \"%s\"", memberID, subject)
	return subject, nil
}
