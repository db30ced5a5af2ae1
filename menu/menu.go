// the interactive console menus. Every action collects its input, invokes the
// catalog or relationship operation behind it, reports the outcome and returns
// control to the enclosing menu loop
package menu

import (
	"context"
	"github.com/DAv10195/campus_registry/elements/courses"
	"github.com/DAv10195/campus_registry/elements/members"
	"github.com/DAv10195/campus_registry/util/containers"
	"github.com/DAv10195/campus_registry/util/dates"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"strconv"
)

var logger = logrus.WithField("component", "menu")

var (
	mainMenuChoices      = containers.NewStringSet("1", "2", "3", "4")
	adminMenuChoices     = containers.NewStringSet("1", "2", "3", "4", "5", "6", "7", "8")
	professorMenuChoices = containers.NewStringSet("1", "2", "3", "4")
	studentMenuChoices   = containers.NewStringSet("1", "2", "3", "4", "5")
)

// Menu drives the interactive console
type Menu struct {
	in		InputReader
	out		io.Writer
	styles	styles
}

// New returns a menu reading from the given reader and writing to the given
// writer
func New(in InputReader, out io.Writer, colored bool) *Menu {
	return &Menu{in, out, newStyles(colored)}
}

// NewStdioMenu returns a menu over standard input and output, styled only when
// standard output is a terminal
func NewStdioMenu() *Menu {
	return New(NewStdinReader(), os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
}

// Run drives the main menu loop until the user exits, input is exhausted or
// the given context is cancelled
func (m *Menu) Run(ctx context.Context) error {
	logger.Debug("menu loop starting")
	for {
		select {
		case <- ctx.Done():
			return ctx.Err()
		default:
		}
		m.println(m.styles.MainMenu, "\n--- Main Menu ---")
		m.println(m.styles.MainMenu, "1. Admin")
		m.println(m.styles.MainMenu, "2. Professor")
		m.println(m.styles.MainMenu, "3. Student")
		m.println(m.styles.MainMenu, "4. Exit")
		choice, err := m.prompt(m.styles.MainMenu, "Enter your choice:")
		if err != nil {
			return err
		}
		if !mainMenuChoices.Contains(choice) {
			m.println(m.styles.Error, "Invalid choice. Please try again.")
			continue
		}
		switch choice {
		case "1":
			if err := m.adminLoop(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.professorLoop(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.studentLoop(ctx); err != nil {
				return err
			}
		case "4":
			m.println(m.styles.MainMenu, "Thank you for using this program!")
			return nil
		}
	}
}

func (m *Menu) adminLoop(ctx context.Context) error {
	for {
		select {
		case <- ctx.Done():
			return ctx.Err()
		default:
		}
		m.println(m.styles.SubMenu, "\n--- Admin Menu ---")
		m.println(m.styles.SubMenu, "1. Add Employee")
		m.println(m.styles.SubMenu, "2. Add Student")
		m.println(m.styles.SubMenu, "3. Add Course")
		m.println(m.styles.SubMenu, "4. View Employees")
		m.println(m.styles.SubMenu, "5. View Students")
		m.println(m.styles.SubMenu, "6. View Courses")
		m.println(m.styles.SubMenu, "7. Assign Course to Employee")
		m.println(m.styles.SubMenu, "8. Back to Main Menu")
		choice, err := m.prompt(m.styles.SubMenu, "Enter your choice:")
		if err != nil {
			return err
		}
		if !adminMenuChoices.Contains(choice) {
			m.println(m.styles.Error, "Invalid choice. Please try again.")
			continue
		}
		var actionErr error
		switch choice {
		case "1":
			actionErr = m.addEmployee()
		case "2":
			actionErr = m.addStudent()
		case "3":
			actionErr = m.addCourse()
		case "4":
			actionErr = m.viewEmployees()
		case "5":
			actionErr = m.viewStudents()
		case "6":
			actionErr = m.viewCourses()
		case "7":
			actionErr = m.assignCourse()
		case "8":
			return nil
		}
		if actionErr != nil {
			return actionErr
		}
	}
}

func (m *Menu) professorLoop(ctx context.Context) error {
	memberID, err := m.prompt(m.styles.SubMenu, "Enter your member ID:")
	if err != nil {
		return err
	}
	for {
		select {
		case <- ctx.Done():
			return ctx.Err()
		default:
		}
		m.println(m.styles.SubMenu, "\n--- Professor Menu ---")
		m.println(m.styles.SubMenu, "1. View Schedule (Assigned Courses)")
		m.println(m.styles.SubMenu, "2. Unassign Course")
		m.println(m.styles.SubMenu, "3. View Monthly Salary")
		m.println(m.styles.SubMenu, "4. Back to Main Menu")
		choice, err := m.prompt(m.styles.SubMenu, "Enter your choice:")
		if err != nil {
			return err
		}
		if !professorMenuChoices.Contains(choice) {
			m.println(m.styles.Error, "Invalid choice. Please try again.")
			continue
		}
		var actionErr error
		switch choice {
		case "1":
			actionErr = m.viewProfessorSchedule(memberID)
		case "2":
			actionErr = m.unassignCourse(memberID)
		case "3":
			actionErr = m.viewMonthlySalary(memberID)
		case "4":
			return nil
		}
		if actionErr != nil {
			return actionErr
		}
	}
}

func (m *Menu) studentLoop(ctx context.Context) error {
	memberID, err := m.prompt(m.styles.SubMenu, "Enter your member ID:")
	if err != nil {
		return err
	}
	for {
		select {
		case <- ctx.Done():
			return ctx.Err()
		default:
		}
		m.println(m.styles.SubMenu, "\n--- Student Menu ---")
		m.println(m.styles.SubMenu, "1. View Courses")
		m.println(m.styles.SubMenu, "2. Check Balance")
		m.println(m.styles.SubMenu, "3. Register for Course")
		m.println(m.styles.SubMenu, "4. Unregister from Course")
		m.println(m.styles.SubMenu, "5. Back to Main Menu")
		choice, err := m.prompt(m.styles.SubMenu, "Enter your choice:")
		if err != nil {
			return err
		}
		if !studentMenuChoices.Contains(choice) {
			m.println(m.styles.Error, "Invalid choice. Please try again.")
			continue
		}
		var actionErr error
		switch choice {
		case "1":
			actionErr = m.viewStudentCourses(memberID)
		case "2":
			actionErr = m.checkStudentBalance(memberID)
		case "3":
			actionErr = m.registerForCourse(memberID)
		case "4":
			actionErr = m.unregisterFromCourse(memberID)
		case "5":
			return nil
		}
		if actionErr != nil {
			return actionErr
		}
	}
}

func formatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}

func courseRow(course courses.Course) []string {
	return []string{
		course.Subject,
		strconv.Itoa(course.CRN),
		course.StartDate.String(),
		course.EndDate.String(),
		course.StartTime,
		course.EndTime,
		formatCost(course.Cost),
	}
}

func (m *Menu) addEmployee() error {
	m.println(m.styles.SubMenu, "\n--- Add Employee ---")
	name, err := m.prompt(m.styles.SubMenu, "Enter name:")
	if err != nil {
		return err
	}
	dobInput, err := m.prompt(m.styles.SubMenu, "Enter DOB (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	dob, parseErr := dates.Parse(dobInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid date. Please use the YYYY-MM-DD format.")
		return nil
	}
	address, err := m.promptAddress()
	if err != nil {
		return err
	}
	department, err := m.prompt(m.styles.SubMenu, "Enter department:")
	if err != nil {
		return err
	}
	if _, opErr := members.NewEmployee(name, dob, *address, department); opErr != nil {
		m.println(m.styles.Error, "Error adding employee: %v", opErr)
		return nil
	}
	m.println(m.styles.Success, "Employee added successfully!")
	return nil
}

func (m *Menu) addStudent() error {
	m.println(m.styles.SubMenu, "\n--- Add Student ---")
	name, err := m.prompt(m.styles.SubMenu, "Enter name:")
	if err != nil {
		return err
	}
	dobInput, err := m.prompt(m.styles.SubMenu, "Enter DOB (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	dob, parseErr := dates.Parse(dobInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid date. Please use the YYYY-MM-DD format.")
		return nil
	}
	address, err := m.promptAddress()
	if err != nil {
		return err
	}
	if _, opErr := members.NewStudent(name, dob, *address); opErr != nil {
		m.println(m.styles.Error, "Error adding student: %v", opErr)
		return nil
	}
	m.println(m.styles.Success, "Student added successfully!")
	return nil
}

func (m *Menu) promptAddress() (*members.Address, error) {
	city, err := m.prompt(m.styles.SubMenu, "Enter city:")
	if err != nil {
		return nil, err
	}
	country, err := m.prompt(m.styles.SubMenu, "Enter country:")
	if err != nil {
		return nil, err
	}
	zipCode, err := m.prompt(m.styles.SubMenu, "Enter zip code:")
	if err != nil {
		return nil, err
	}
	return &members.Address{City: city, Country: country, ZipCode: zipCode}, nil
}

func (m *Menu) addCourse() error {
	m.println(m.styles.SubMenu, "\n--- Add Course ---")
	subject, err := m.prompt(m.styles.SubMenu, "Enter subject:")
	if err != nil {
		return err
	}
	startDateInput, err := m.prompt(m.styles.SubMenu, "Enter start date (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	startDate, parseErr := dates.Parse(startDateInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid date. Please use the YYYY-MM-DD format.")
		return nil
	}
	endDateInput, err := m.prompt(m.styles.SubMenu, "Enter end date (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	endDate, parseErr := dates.Parse(endDateInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid date. Please use the YYYY-MM-DD format.")
		return nil
	}
	startTime, err := m.prompt(m.styles.SubMenu, "Enter start time (HH:MM):")
	if err != nil {
		return err
	}
	endTime, err := m.prompt(m.styles.SubMenu, "Enter end time (HH:MM):")
	if err != nil {
		return err
	}
	costInput, err := m.prompt(m.styles.SubMenu, "Enter cost:")
	if err != nil {
		return err
	}
	cost, parseErr := strconv.ParseFloat(costInput, 64)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid cost. Please enter a number.")
		return nil
	}
	if _, opErr := courses.New(subject, startDate, endDate, startTime, endTime, cost); opErr != nil {
		m.println(m.styles.Error, "Error adding course: %v", opErr)
		return nil
	}
	m.println(m.styles.Success, "Course added successfully!")
	return nil
}

func (m *Menu) viewEmployees() error {
	m.println(m.styles.SubMenu, "\n--- View Employees ---")
	employees, err := members.ListEmployees()
	if err != nil {
		m.println(m.styles.Error, "Error listing employees: %v", err)
		return nil
	}
	if len(employees) == 0 {
		m.println(m.styles.Content, "No employees found.")
		return nil
	}
	var rows [][]string
	for _, employee := range employees {
		rows = append(rows, []string{
			employee.Name,
			employee.ID,
			employee.DOB.String(),
			employee.Address.City,
			employee.Address.Country,
			employee.Address.ZipCode,
			employee.Department,
			strconv.Itoa(len(employee.Courses)),
			strconv.Itoa(employee.Salary),
		})
	}
	m.renderTable([]string{"Name", "ID", "DOB", "City", "Country", "Zip Code", "Department", "Courses Assigned", "Salary"}, rows)
	return nil
}

func (m *Menu) viewStudents() error {
	m.println(m.styles.SubMenu, "\n--- View Students ---")
	students, err := members.ListStudents()
	if err != nil {
		m.println(m.styles.Error, "Error listing students: %v", err)
		return nil
	}
	if len(students) == 0 {
		m.println(m.styles.Content, "No students found.")
		return nil
	}
	var rows [][]string
	for _, student := range students {
		rows = append(rows, []string{
			student.Name,
			student.ID,
			student.DOB.String(),
			student.Address.City,
			student.Address.Country,
			student.Address.ZipCode,
			strconv.Itoa(len(student.Courses)),
			formatCost(student.Balance),
		})
	}
	m.renderTable([]string{"Name", "ID", "DOB", "City", "Country", "Zip Code", "Courses Enrolled", "Balance"}, rows)
	return nil
}

func (m *Menu) viewCourses() error {
	m.println(m.styles.SubMenu, "\n--- View Courses ---")
	listed, err := courses.List()
	if err != nil {
		m.println(m.styles.Error, "Error listing courses: %v", err)
		return nil
	}
	if len(listed) == 0 {
		m.println(m.styles.Content, "No courses found.")
		return nil
	}
	var rows [][]string
	for _, course := range listed {
		rows = append(rows, courseRow(course))
	}
	m.renderTable([]string{"Subject", "CRN", "Start Date", "End Date", "Start Time", "End Time", "Cost"}, rows)
	return nil
}

func (m *Menu) assignCourse() error {
	m.println(m.styles.SubMenu, "\n--- Assign Course to Employee ---")
	memberID, err := m.prompt(m.styles.SubMenu, "Enter employee's member ID:")
	if err != nil {
		return err
	}
	employee, opErr := members.GetEmployee(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Employee not found.")
		return nil
	}
	crnInput, err := m.prompt(m.styles.SubMenu, "Enter the CRN of the course to assign:")
	if err != nil {
		return err
	}
	crn, parseErr := strconv.Atoi(crnInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid input. Please enter a valid CRN.")
		return nil
	}
	course, opErr := members.AssignCourse(memberID, crn)
	if opErr != nil {
		if _, ok := opErr.(*courses.ErrCourseNotFound); ok {
			m.println(m.styles.Error, "Course not found.")
		} else {
			m.println(m.styles.Error, "Error assigning course: %v", opErr)
		}
		return nil
	}
	m.println(m.styles.Success, "Course %s assigned to %s.", course.Subject, employee.Name)
	return nil
}

func (m *Menu) viewProfessorSchedule(memberID string) error {
	m.println(m.styles.SubMenu, "\n--- Professor Schedule ---")
	employee, opErr := members.GetEmployee(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Professor not found.")
		return nil
	}
	if len(employee.Courses) == 0 {
		m.println(m.styles.Content, "You have no assigned courses.")
		return nil
	}
	var rows [][]string
	for _, course := range employee.Courses {
		rows = append(rows, []string{
			course.Subject,
			strconv.Itoa(course.CRN),
			course.StartDate.String(),
			course.EndDate.String(),
			course.StartTime,
			course.EndTime,
		})
	}
	m.renderTable([]string{"Subject", "CRN", "Start Date", "End Date", "Start Time", "End Time"}, rows)
	return nil
}

func (m *Menu) unassignCourse(memberID string) error {
	m.println(m.styles.SubMenu, "\n--- Unassign Course ---")
	employee, opErr := members.GetEmployee(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Professor not found.")
		return nil
	}
	if len(employee.Courses) == 0 {
		m.println(m.styles.Content, "You have no assigned courses to unassign.")
		return nil
	}
	m.println(m.styles.Header, "Your Assigned Courses:")
	var rows [][]string
	for i, course := range employee.Courses {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			course.Subject,
			strconv.Itoa(course.CRN),
			course.StartDate.String(),
			course.EndDate.String(),
			course.StartTime,
			course.EndTime,
		})
	}
	m.renderTable([]string{"#", "Subject", "CRN", "Start Date", "End Date", "Start Time", "End Time"}, rows)
	selectionInput, err := m.prompt(m.styles.SubMenu, "Enter the number of the course to unassign:")
	if err != nil {
		return err
	}
	selection, parseErr := strconv.Atoi(selectionInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid input. Please enter a number.")
		return nil
	}
	removed, opErr := members.UnassignCourse(memberID, selection)
	if opErr != nil {
		if _, ok := opErr.(*members.ErrInvalidSelection); ok {
			m.println(m.styles.Error, "Invalid course number.")
		} else {
			m.println(m.styles.Error, "Error unassigning course: %v", opErr)
		}
		return nil
	}
	m.println(m.styles.Success, "Course %s unassigned successfully.", removed.Subject)
	return nil
}

func (m *Menu) viewMonthlySalary(memberID string) error {
	m.println(m.styles.SubMenu, "\n--- Monthly Salary ---")
	employee, opErr := members.GetEmployee(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Professor not found.")
		return nil
	}
	m.println(m.styles.Content, "Your Monthly Salary: $%d", employee.Salary)
	return nil
}

func (m *Menu) viewStudentCourses(memberID string) error {
	m.println(m.styles.SubMenu, "\n--- Student Courses ---")
	student, opErr := members.GetStudent(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Student not found.")
		return nil
	}
	if len(student.Courses) == 0 {
		m.println(m.styles.Content, "You have no courses.")
		return nil
	}
	var rows [][]string
	for i, subject := range student.Courses {
		rows = append(rows, []string{strconv.Itoa(i + 1), subject})
	}
	m.renderTable([]string{"#", "Course"}, rows)
	return nil
}

func (m *Menu) checkStudentBalance(memberID string) error {
	m.println(m.styles.SubMenu, "\n--- Student Balance ---")
	student, opErr := members.GetStudent(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Student not found.")
		return nil
	}
	m.println(m.styles.Content, "Your Balance: $%s", formatCost(student.Balance))
	return nil
}

func (m *Menu) registerForCourse(memberID string) error {
	m.println(m.styles.SubMenu, "\n--- Register for Course ---")
	student, opErr := members.GetStudent(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Student not found.")
		return nil
	}
	if len(student.Courses) >= members.MaxCoursesPerStudent {
		m.println(m.styles.Error, "You cannot register for more than %d courses.", members.MaxCoursesPerStudent)
		return nil
	}
	if student.Balance >= members.MaxBalanceForRegistration {
		m.println(m.styles.Error, "Your balance is too high to register for more courses.")
		return nil
	}
	if err := m.viewCourses(); err != nil {
		return err
	}
	crnInput, err := m.prompt(m.styles.SubMenu, "Enter the CRN of the course you want to register for:")
	if err != nil {
		return err
	}
	crn, parseErr := strconv.Atoi(crnInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid input. Please enter a valid CRN.")
		return nil
	}
	if _, opErr := members.RegisterCourse(memberID, crn); opErr != nil {
		if _, ok := opErr.(*courses.ErrCourseNotFound); ok {
			m.println(m.styles.Error, "Course not found.")
		} else {
			m.println(m.styles.Error, "Error registering for course: %v", opErr)
		}
		return nil
	}
	m.println(m.styles.Success, "Course registered successfully!")
	return nil
}

func (m *Menu) unregisterFromCourse(memberID string) error {
	m.println(m.styles.SubMenu, "\n--- Unregister from Course ---")
	student, opErr := members.GetStudent(memberID)
	if opErr != nil {
		m.println(m.styles.Error, "Student not found.")
		return nil
	}
	if len(student.Courses) == 0 {
		m.println(m.styles.Content, "You have no courses to unregister.")
		return nil
	}
	m.println(m.styles.Header, "Your Enrolled Courses:")
	var rows [][]string
	for i, subject := range student.Courses {
		rows = append(rows, []string{strconv.Itoa(i + 1), subject})
	}
	m.renderTable([]string{"#", "Course"}, rows)
	selectionInput, err := m.prompt(m.styles.SubMenu, "Enter the number of the course to unregister:")
	if err != nil {
		return err
	}
	selection, parseErr := strconv.Atoi(selectionInput)
	if parseErr != nil {
		m.println(m.styles.Error, "Invalid input. Please enter a number.")
		return nil
	}
	subject, opErr := members.UnregisterCourse(memberID, selection)
	if opErr != nil {
		if _, ok := opErr.(*members.ErrInvalidSelection); ok {
			m.println(m.styles.Error, "Invalid course number.")
		} else {
			m.println(m.styles.Error, "Error unregistering from course: %v", opErr)
		}
		return nil
	}
	m.println(m.styles.Success, "Course %s unregistered successfully.", subject)
	return nil
}
