package store

import (
	"os"
	"testing"
)

const mock = "mock"

type mockRecord struct {
	Name	string	`json:"Name"`
	Count	int		`json:"Count"`
	Cost	float64	`json:"Cost"`
}

func TestOverwriteAndRecordsRoundTrip(t *testing.T) {
	cleanup := InitForTest()
	defer cleanup()
	written := []mockRecord{
		{Name: "Math101", Count: 1, Cost: 500},
		{Name: "Phys201", Count: 2, Cost: 750.5},
	}
	if err := Overwrite(mock, written); err != nil {
		t.Fatal(err)
	}
	read, err := Records[mockRecord](mock)
	if err != nil {
		t.Fatal(err)
	}
	if len(read) != len(written) {
		t.Fatalf("expected %d records but got %d", len(written), len(read))
	}
	for i := range written {
		if read[i] != written[i] {
			t.Fatalf("record %d read from the store (%+v) differs from the one written (%+v)", i, read[i], written[i])
		}
	}
}

func TestRecordsOfMissingStore(t *testing.T) {
	cleanup := InitForTest()
	defer cleanup()
	records, err := Records[mockRecord]("no_such_collection")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records from a missing store but got %d", len(records))
	}
}

func TestRecordsOfEmptyStore(t *testing.T) {
	cleanup := InitForTest()
	defer cleanup()
	if err := Overwrite(mock, []mockRecord{}); err != nil {
		t.Fatal(err)
	}
	records, err := Records[mockRecord](mock)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records from an empty store but got %d", len(records))
	}
}

func TestRecordsOfMalformedStore(t *testing.T) {
	cleanup := InitForTest()
	defer cleanup()
	if err := os.WriteFile(storeFilePath(mock), []byte("{\"Name\": \"Math101\"}\nnot a json record\n"), filePerms); err != nil {
		t.Fatal(err)
	}
	records, err := Records[mockRecord](mock)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected a malformed store to be treated as empty but got %d records", len(records))
	}
}

func TestOverwriteReplacesPriorContent(t *testing.T) {
	cleanup := InitForTest()
	defer cleanup()
	if err := Overwrite(mock, []mockRecord{{Name: "Math101"}, {Name: "Phys201"}}); err != nil {
		t.Fatal(err)
	}
	if err := Overwrite(mock, []mockRecord{{Name: "Chem301"}}); err != nil {
		t.Fatal(err)
	}
	records, err := Records[mockRecord](mock)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Name != "Chem301" {
		t.Fatalf("expected the store to contain only the last written records but got %+v", records)
	}
}

func TestNotInitialized(t *testing.T) {
	dir = ""
	if _, err := Records[mockRecord](mock); err == nil {
		t.Fatal("expected an error when reading from uninitialized stores")
	}
	if err := Overwrite(mock, []mockRecord{}); err == nil {
		t.Fatal("expected an error when writing to uninitialized stores")
	}
}
