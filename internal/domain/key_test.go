package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestCompositeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts []any
		want  string
	}{
		{"term", []any{2019, "autumn"}, "2019,autumn"},
		{"course", []any{2019, "autumn", "CSE", 142}, "2019,autumn,CSE,142"},
		{"single", []any{"current"}, "current"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompositeKey(tt.parts...); got != tt.want {
				t.Errorf("CompositeKey(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestNormalizeQuarter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"autumn", "autumn", false},
		{" Winter ", "winter", false},
		{"SPRING", "spring", false},
		{"summer", "summer", false},
		{"fall", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeQuarter(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("NormalizeQuarter(%q) err = %v, want ErrValidation", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeQuarter(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeQuarter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTermKey_String(t *testing.T) {
	t.Parallel()

	if got := (TermKey{}).String(); got != "current" {
		t.Errorf("zero TermKey = %q, want current", got)
	}
	if got := (TermKey{Year: 2020, Quarter: "winter"}).String(); got != "2020,winter" {
		t.Errorf("TermKey = %q, want 2020,winter", got)
	}
}

func TestNewTermKey_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewTermKey(0, "autumn"); !errors.Is(err, ErrValidation) {
		t.Errorf("year 0: err = %v, want ErrValidation", err)
	}
	if _, err := NewTermKey(2019, "fall"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad quarter: err = %v, want ErrValidation", err)
	}
	k, err := NewTermKey(2019, "Autumn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.IsCurrent() {
		t.Error("explicit term should not be current")
	}
}

func TestSectionKey_String(t *testing.T) {
	t.Parallel()

	k, err := NewSectionKey(2019, "autumn", "cse", 142, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := k.String(); got != "2019,autumn,CSE,142/A" {
		t.Errorf("SectionKey = %q, want 2019,autumn,CSE,142/A", got)
	}
	if got := k.Course().String(); got != "2019,autumn,CSE,142" {
		t.Errorf("Course() = %q, want 2019,autumn,CSE,142", got)
	}
}

func TestNewCourseKey_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewCourseKey(2019, "autumn", "  ", 142); !errors.Is(err, ErrValidation) {
		t.Errorf("empty curriculum: err = %v, want ErrValidation", err)
	}
	if _, err := NewCourseKey(2019, "autumn", "CSE", 0); !errors.Is(err, ErrValidation) {
		t.Errorf("course number 0: err = %v, want ErrValidation", err)
	}
	k, err := NewCourseKey(2019, "autumn", "b e", 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.Curriculum != "B E" {
		t.Errorf("curriculum = %q, want %q", k.Curriculum, "B E")
	}
	if k.Term() != (TermKey{Year: 2019, Quarter: "autumn"}) {
		t.Errorf("Term() = %+v", k.Term())
	}
}

func TestNewCourseKey_ReportsEveryField(t *testing.T) {
	t.Parallel()

	_, err := NewCourseKey(0, "fall", " ", -1)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	var fields []string
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	want := []string{"Year", "Quarter", "Curriculum", "CourseNumber"}
	if strings.Join(fields, ",") != strings.Join(want, ",") {
		t.Errorf("fields = %v, want %v", fields, want)
	}
}

func TestNewTermKey_SingleFieldMessage(t *testing.T) {
	t.Parallel()

	_, err := NewTermKey(0, "spring")
	if err == nil || err.Error() != "validation: Year: must be positive" {
		t.Errorf("err = %v, want validation: Year: must be positive", err)
	}
}
