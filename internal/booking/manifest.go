package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flyawayhq/flyaway/internal/domain"
)

type Field string

const (
	FieldName   Field = "name"
	FieldAge    Field = "age"
	FieldGender Field = "gender"
)

// Entry is one passenger's raw form input. Age stays a string until
// validation so a bad value is reported per passenger instead of lost on
// input.
type Entry struct {
	Name   string
	Age    string
	Gender string
}

// Manifest collects the passenger list for a single booking submission.
type Manifest struct {
	entries []Entry
}

// NewManifest starts with one blank passenger.
func NewManifest() *Manifest {
	return &Manifest{entries: make([]Entry, 1)}
}

// SetCount resizes the manifest to n entries, clamped to a minimum of 1.
// Growth appends blank entries; shrinking truncates. Surviving entries keep
// their index and content.
func (m *Manifest) SetCount(n int) {
	if n < 1 {
		n = 1
	}
	if n <= len(m.entries) {
		m.entries = m.entries[:n]
		return
	}
	grown := make([]Entry, n)
	copy(grown, m.entries)
	m.entries = grown
}

func (m *Manifest) Count() int {
	return len(m.entries)
}

// SetField updates one field of one entry. An out-of-range index is a
// programming error and is rejected outright.
func (m *Manifest) SetField(index int, field Field, value string) error {
	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("passenger index %d out of range [0,%d)", index, len(m.entries))
	}
	switch field {
	case FieldName:
		m.entries[index].Name = value
	case FieldAge:
		m.entries[index].Age = value
	case FieldGender:
		m.entries[index].Gender = value
	default:
		return fmt.Errorf("unknown passenger field %q", field)
	}
	return nil
}

func (m *Manifest) Entries() []Entry {
	return m.entries
}

// Validate checks every entry for a non-empty name, a positive-integer age
// and a non-empty gender, reporting the first offending passenger by its
// 1-based position.
func (m *Manifest) Validate() error {
	for i, e := range m.entries {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Age) == "" || strings.TrimSpace(e.Gender) == "" {
			return fmt.Errorf("please fill all fields for passenger %d", i+1)
		}
		age, err := strconv.Atoi(strings.TrimSpace(e.Age))
		if err != nil || age <= 0 {
			return fmt.Errorf("passenger %d needs a valid age", i+1)
		}
	}
	return nil
}

// Passengers maps validated entries to their wire form.
func (m *Manifest) Passengers() ([]domain.Passenger, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	passengers := make([]domain.Passenger, len(m.entries))
	for i, e := range m.entries {
		age, _ := strconv.Atoi(strings.TrimSpace(e.Age))
		passengers[i] = domain.Passenger{
			Name:   strings.TrimSpace(e.Name),
			Age:    age,
			Gender: strings.TrimSpace(e.Gender),
		}
	}
	return passengers, nil
}
