package courses

import (
	"github.com/DAv10195/campus_registry/idgen"
	"github.com/DAv10195/campus_registry/store"
	"github.com/DAv10195/campus_registry/util/dates"
	"testing"
)

func initForTest() func() {
	storeCleanup := store.InitForTest()
	idgenCleanup := idgen.InitForTest()
	return func() {
		idgenCleanup()
		storeCleanup()
	}
}

func mustParseDate(t *testing.T, s string) dates.Date {
	d, err := dates.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestNewCourse(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	course, err := New("Math101", mustParseDate(t, "2024-01-01"), mustParseDate(t, "2024-05-01"), "09:00", "10:00", 500)
	if err != nil {
		t.Fatal(err)
	}
	if course.CRN != 1001 {
		t.Fatalf("expected the first course to get crn 1001 but got %d", course.CRN)
	}
	listed, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 persisted course but got %d", len(listed))
	}
	if listed[0] != *course {
		t.Fatalf("persisted course (%+v) differs from the created one (%+v)", listed[0], *course)
	}
}

func TestNewCourseValidation(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	if _, err := New("", mustParseDate(t, "2024-01-01"), mustParseDate(t, "2024-05-01"), "09:00", "10:00", 500); err == nil {
		t.Fatal("expected an error creating a course without a subject")
	}
	if _, err := New("Math101", mustParseDate(t, "2024-01-01"), mustParseDate(t, "2024-05-01"), "09:00", "10:00", -1); err == nil {
		t.Fatal("expected an error creating a course with a negative cost")
	}
	listed, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no courses to be persisted after failed validations but got %d", len(listed))
	}
}

func TestGetByCRN(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	created, err := New("Math101", mustParseDate(t, "2024-01-01"), mustParseDate(t, "2024-05-01"), "09:00", "10:00", 500)
	if err != nil {
		t.Fatal(err)
	}
	course, err := GetByCRN(created.CRN)
	if err != nil {
		t.Fatal(err)
	}
	if course.Subject != "Math101" {
		t.Fatalf("expected to get the \"Math101\" course but got \"%s\"", course.Subject)
	}
	if _, err := GetByCRN(9999); err == nil {
		t.Fatal("expected an error getting a course with an unknown crn")
	} else if _, ok := err.(*ErrCourseNotFound); !ok {
		t.Fatalf("expected ErrCourseNotFound but got %T", err)
	}
}

func TestCostBySubject(t *testing.T) {
	cleanup := initForTest()
	defer cleanup()
	if _, err := New("Math101", mustParseDate(t, "2024-01-01"), mustParseDate(t, "2024-05-01"), "09:00", "10:00", 500); err != nil {
		t.Fatal(err)
	}
	if _, err := New("Math101", mustParseDate(t, "2024-06-01"), mustParseDate(t, "2024-09-01"), "11:00", "12:00", 750); err != nil {
		t.Fatal(err)
	}
	cost, found, err := CostBySubject("Math101")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected to find a course with the \"Math101\" subject")
	}
	if cost != 500 {
		t.Fatalf("expected the cost of the first matching course (500) but got %v", cost)
	}
	_, found, err = CostBySubject("Phys201")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("found a course with the \"Phys201\" subject although none was added")
	}
}
