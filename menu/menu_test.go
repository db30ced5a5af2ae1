package menu

import (
	"bytes"
	"context"
	"github.com/DAv10195/campus_registry/elements/courses"
	"github.com/DAv10195/campus_registry/elements/members"
	"github.com/DAv10195/campus_registry/idgen"
	"github.com/DAv10195/campus_registry/store"
	"github.com/DAv10195/campus_registry/util/dates"
	"io"
	"strings"
	"testing"
)

type scriptedReader struct {
	lines	[]string
	index	int
}

func (r *scriptedReader) ReadLine() (string, error) {
	if r.index >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.index]
	r.index++
	return line, nil
}

func initForTest() func() {
	storeCleanup := store.InitForTest()
	idgenCleanup := idgen.InitForTest()
	return func() {
		idgenCleanup()
		storeCleanup()
	}
}

func runScript(t *testing.T, lines ...string) string {
	out := &bytes.Buffer{}
	m := New(&scriptedReader{lines: lines}, out, false)
	if err := m.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestAdminAddAndViewCourse(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	output := runScript(t,
		"1",			// admin
		"3",			// add course
		"Math101", "2024-01-01", "2024-05-01", "09:00", "10:00", "500",
		"6",			// view courses
		"8",			// back to main menu
		"4",			// exit
	)
	if !strings.Contains(output, "Course added successfully!") {
		t.Fatalf("expected the output to report a successful course addition:\n%s", output)
	}
	if !strings.Contains(output, "Math101") || !strings.Contains(output, "1001") {
		t.Fatalf("expected the course listing to show the added course:\n%s", output)
	}
	listed, err := courses.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 persisted course but got %d", len(listed))
	}
}

func TestInvalidMenuChoice(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	output := runScript(t, "9", "4")
	if !strings.Contains(output, "Invalid choice. Please try again.") {
		t.Fatalf("expected the output to report an invalid choice:\n%s", output)
	}
}

func TestStudentRegisterFlow(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	startDate, err := dates.Parse("2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	endDate, err := dates.Parse("2024-05-01")
	if err != nil {
		t.Fatal(err)
	}
	course, err := courses.New("Math101", startDate, endDate, "09:00", "10:00", 500)
	if err != nil {
		t.Fatal(err)
	}
	dob, err := dates.Parse("2002-07-20")
	if err != nil {
		t.Fatal(err)
	}
	student, err := members.NewStudent("Jane Doe", dob, members.Address{City: "Boston", Country: "USA", ZipCode: "02101"})
	if err != nil {
		t.Fatal(err)
	}
	output := runScript(t,
		"3",			// student
		student.ID,
		"3",			// register for course
		"1001",
		"2",			// check balance
		"5",			// back to main menu
		"4",			// exit
	)
	if !strings.Contains(output, "Course registered successfully!") {
		t.Fatalf("expected the output to report a successful registration:\n%s", output)
	}
	if !strings.Contains(output, "Your Balance: $500") {
		t.Fatalf("expected the output to show the accrued balance:\n%s", output)
	}
	registered, err := members.GetStudent(student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(registered.Courses) != 1 || registered.Courses[0] != course.Subject {
		t.Fatalf("expected the student to be registered for %s but got %v", course.Subject, registered.Courses)
	}
}

func TestProfessorNotFound(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	output := runScript(t,
		"2",			// professor
		"MEM9999",
		"3",			// view monthly salary
		"4",			// back to main menu
		"4",			// exit
	)
	if !strings.Contains(output, "Professor not found.") {
		t.Fatalf("expected the output to report a missing professor:\n%s", output)
	}
}
