package containers

import (
	"strings"
	"testing"
)

func TestStringSet_Add(t *testing.T) {
	set := NewStringSet()
	set.Add("math")
	if !set.Contains("math") {
		t.Fatal("\"math\" should be in the set but it's not")
	}
	set.Add("math")
	if set.NumberOfElements() != 1 {
		t.Fatalf("set has number of elements != 1")
	}
}

func TestStringSet_Remove(t *testing.T) {
	set := NewStringSet("math")
	set.Remove("math")
	if set.Contains("math") {
		t.Fatalf("\"math\" is in the set although it shouldn't be")
	}
	if set.NumberOfElements() != 0 {
		t.Fatalf("set has number of elements != 0")
	}
}

func TestStringSet_Slice(t *testing.T) {
	math, physics, chemistry := "math", "physics", "chemistry"
	set := NewStringSet(math, physics, chemistry)
	slice := set.Slice()
	if len(slice) != 3 {
		t.Fatalf("slice from set has number of elements != 3")
	}
	m := make(map[string]bool)
	m[math] = false
	m[physics] = false
	m[chemistry] = false
	for _, element := range slice {
		m[element] = true
	}
	for k, v := range m {
		if v != true {
			t.Fatalf("%s wasn't included in the slice generated from the set although it was in the set", k)
		}
	}
}

func TestStringSet_String(t *testing.T) {
	math, physics := "math", "physics"
	set := NewStringSet(math, physics)
	setStr := set.String()
	if !strings.Contains(setStr, math) {
		t.Fatalf("%s doesn't contain %s", setStr, math)
	}
	if !strings.Contains(setStr, physics) {
		t.Fatalf("%s doesn't contain %s", setStr, physics)
	}
}
