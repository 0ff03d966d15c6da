package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCurriculumSearchParams_Values(t *testing.T) {
	t.Parallel()

	p := CurriculumSearchParams{
		Year:                   ptr(2019),
		Quarter:                ptr("autumn"),
		DepartmentAbbreviation: ptr("CSE"),
	}

	assert.Equal(t, url.Values{
		"year":                    {"2019"},
		"quarter":                 {"autumn"},
		"department_abbreviation": {"CSE"},
	}, p.Values())
}

func TestSearchParams_EmptyEmitsNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CurriculumSearchParams{}.Values())
	assert.Empty(t, CourseSearchParams{}.Values())
	assert.Empty(t, SectionSearchParams{}.Values())
	assert.Empty(t, PersonSearchParams{}.Values())
	assert.Empty(t, CollegeSearchParams{}.Values())
	assert.Empty(t, RegistrationSearchParams{}.Values())
}

func TestCourseSearchParams_Values(t *testing.T) {
	t.Parallel()

	p := CourseSearchParams{
		Year:                          ptr(2020),
		Quarter:                       ptr("winter"),
		CourseTitleStartsWith:         ptr("Intro"),
		ExcludeCoursesWithoutSections: ptr("true"),
	}

	v := p.Values()
	assert.Equal(t, "Intro", v.Get("course_title_starts"))
	assert.Equal(t, "true", v.Get("exclude_courses_without_sections"))
	assert.Len(t, v, 4)
}

func TestRegistrationSearchParams_Values(t *testing.T) {
	t.Parallel()

	p := RegistrationSearchParams{
		IsActive:             ptr(false),
		TranscriptableCourse: ptr(true),
		RegID:                ptr("ABC"),
	}

	v := p.Values()
	assert.Equal(t, "false", v.Get("is_active"))
	assert.Equal(t, "true", v.Get("transcriptable_course"))
	assert.Equal(t, "ABC", v.Get("reg_id"))
}

func TestPersonSearchParams_Values(t *testing.T) {
	t.Parallel()

	v := PersonSearchParams{NetID: ptr("javerage"), StudentNumber: ptr("1033334")}.Values()
	assert.Equal(t, "net_id=javerage&student_number=1033334", v.Encode())
}
