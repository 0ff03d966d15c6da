package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CurrentTermKey is the key SWS uses for the term in session.
const CurrentTermKey = "current"

// Quarters accepted by SWS, in academic-year order.
var Quarters = []string{"autumn", "winter", "spring", "summer"}

// CompositeKey joins key parts with commas, the separator SWS uses in
// resource paths such as term/2019,autumn.json.
func CompositeKey(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, ",")
}

// NormalizeQuarter lowercases and trims a quarter name and checks it against
// the known quarters.
func NormalizeQuarter(q string) (string, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	for _, known := range Quarters {
		if q == known {
			return q, nil
		}
	}
	return "", NewValidationError("Quarter", fmt.Sprintf("unknown quarter %q", q))
}

// TermKey identifies a term. The zero value is the current term.
type TermKey struct {
	Year    int
	Quarter string
}

// IsCurrent reports whether k refers to the current term.
func (k TermKey) IsCurrent() bool {
	return k.Year == 0 && k.Quarter == ""
}

func (k TermKey) String() string {
	if k.IsCurrent() {
		return CurrentTermKey
	}
	return CompositeKey(k.Year, k.Quarter)
}

// NewTermKey validates year and quarter and returns a normalized key.
func NewTermKey(year int, quarter string) (TermKey, error) {
	var errs []FieldError
	if year <= 0 {
		errs = append(errs, FieldError{Field: "Year", Message: "must be positive"})
	}
	q, err := NormalizeQuarter(quarter)
	errs = appendFieldErrors(errs, err)
	if len(errs) > 0 {
		return TermKey{}, NewValidationErrors(errs)
	}
	return TermKey{Year: year, Quarter: q}, nil
}

// appendFieldErrors adds the field errors carried by err, if any.
func appendFieldErrors(errs []FieldError, err error) []FieldError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	}
	return errs
}

// CourseKey identifies a course offering in a term. Its fields are exposed on
// the Course type as Key, mirroring the arguments it was fetched with.
type CourseKey struct {
	Year         int    `json:"Year"`
	Quarter      string `json:"Quarter"`
	Curriculum   string `json:"Curriculum"`
	CourseNumber int    `json:"CourseNumber"`
}

func (k CourseKey) String() string {
	return CompositeKey(k.Year, k.Quarter, k.Curriculum, k.CourseNumber)
}

// Term returns the key of the term the course is offered in.
func (k CourseKey) Term() TermKey {
	return TermKey{Year: k.Year, Quarter: k.Quarter}
}

// NewCourseKey validates and normalizes course key parts.
func NewCourseKey(year int, quarter, curriculum string, courseNumber int) (CourseKey, error) {
	tk, err := NewTermKey(year, quarter)
	errs := appendFieldErrors(nil, err)
	curriculum = strings.ToUpper(strings.TrimSpace(curriculum))
	if curriculum == "" {
		errs = append(errs, FieldError{Field: "Curriculum", Message: "required"})
	}
	if courseNumber <= 0 {
		errs = append(errs, FieldError{Field: "CourseNumber", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return CourseKey{}, NewValidationErrors(errs)
	}
	return CourseKey{Year: tk.Year, Quarter: tk.Quarter, Curriculum: curriculum, CourseNumber: courseNumber}, nil
}

// SectionKey identifies a single section of a course offering.
type SectionKey struct {
	Year           int    `json:"Year"`
	Quarter        string `json:"Quarter"`
	CurriculumAbbr string `json:"CurriculumAbbr"`
	CourseNumber   int    `json:"CourseNumber"`
	SectionID      string `json:"SectionId"`
}

// String renders the key the way SWS addresses sections:
// 2019,autumn,CSE,142/A.
func (k SectionKey) String() string {
	return CompositeKey(k.Year, k.Quarter, k.CurriculumAbbr, fmt.Sprintf("%d/%s", k.CourseNumber, k.SectionID))
}

// Course returns the key of the course the section belongs to.
func (k SectionKey) Course() CourseKey {
	return CourseKey{Year: k.Year, Quarter: k.Quarter, Curriculum: k.CurriculumAbbr, CourseNumber: k.CourseNumber}
}

// NewSectionKey validates and normalizes section key parts.
func NewSectionKey(year int, quarter, curriculum string, courseNumber int, sectionID string) (SectionKey, error) {
	ck, err := NewCourseKey(year, quarter, curriculum, courseNumber)
	errs := appendFieldErrors(nil, err)
	sectionID = strings.ToUpper(strings.TrimSpace(sectionID))
	if sectionID == "" {
		errs = append(errs, FieldError{Field: "SectionId", Message: "required"})
	}
	if len(errs) > 0 {
		return SectionKey{}, NewValidationErrors(errs)
	}
	return SectionKey{
		Year:           ck.Year,
		Quarter:        ck.Quarter,
		CurriculumAbbr: ck.Curriculum,
		CourseNumber:   ck.CourseNumber,
		SectionID:      sectionID,
	}, nil
}
