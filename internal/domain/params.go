package domain

import (
	"net/url"
	"strconv"
)

// queryBuilder collects only the parameters that were set.
type queryBuilder url.Values

func (q queryBuilder) setString(name string, v *string) {
	if v != nil {
		url.Values(q).Set(name, *v)
	}
}

func (q queryBuilder) setInt(name string, v *int) {
	if v != nil {
		url.Values(q).Set(name, strconv.Itoa(*v))
	}
}

func (q queryBuilder) setBool(name string, v *bool) {
	if v != nil {
		url.Values(q).Set(name, strconv.FormatBool(*v))
	}
}

// CurriculumSearchParams filters curriculum.json.
type CurriculumSearchParams struct {
	Year                   *int
	Quarter                *string
	FutureTerms            *int
	CollegeAbbreviation    *string
	DepartmentAbbreviation *string
	PageStart              *int
	PageSize               *int
}

func (p CurriculumSearchParams) Values() url.Values {
	q := queryBuilder{}
	q.setInt("year", p.Year)
	q.setString("quarter", p.Quarter)
	q.setInt("future_terms", p.FutureTerms)
	q.setString("college_abbreviation", p.CollegeAbbreviation)
	q.setString("department_abbreviation", p.DepartmentAbbreviation)
	q.setInt("page_start", p.PageStart)
	q.setInt("page_size", p.PageSize)
	return url.Values(q)
}

// CourseSearchParams filters course.json.
type CourseSearchParams struct {
	ChangedSinceDate              *string
	CourseNumber                  *string
	CourseTitleContains           *string
	CourseTitleStartsWith         *string
	CurriculumAbbreviation        *string
	FutureTerms                   *string
	PageSize                      *int
	PageStart                     *int
	Quarter                       *string
	TranscriptableCourse          *string
	Year                          *int
	ExcludeCoursesWithoutSections *string
}

func (p CourseSearchParams) Values() url.Values {
	q := queryBuilder{}
	q.setString("changed_since_date", p.ChangedSinceDate)
	q.setString("course_number", p.CourseNumber)
	q.setString("course_title_contains", p.CourseTitleContains)
	q.setString("course_title_starts", p.CourseTitleStartsWith)
	q.setString("curriculum_abbreviation", p.CurriculumAbbreviation)
	q.setString("future_terms", p.FutureTerms)
	q.setInt("page_size", p.PageSize)
	q.setInt("page_start", p.PageStart)
	q.setString("quarter", p.Quarter)
	q.setString("transcriptable_course", p.TranscriptableCourse)
	q.setInt("year", p.Year)
	q.setString("exclude_courses_without_sections", p.ExcludeCoursesWithoutSections)
	return url.Values(q)
}

// SectionSearchParams filters section.json.
type SectionSearchParams struct {
	Year                   *int
	Quarter                *string
	CourseNumber           *int
	CurriculumAbbreviation *string
	FutureTerms            *string
	RegID                  *string
	SearchBy               *string
	IncludeSecondaries     *string
	ChangedSinceDate       *string
	TranscriptableCourse   *string
	PageStart              *int
	PageSize               *int
	FacilityCode           *string
	RoomNumber             *string
	SLN                    *string
}

func (p SectionSearchParams) Values() url.Values {
	q := queryBuilder{}
	q.setInt("year", p.Year)
	q.setString("quarter", p.Quarter)
	q.setInt("course_number", p.CourseNumber)
	q.setString("curriculum_abbreviation", p.CurriculumAbbreviation)
	q.setString("future_terms", p.FutureTerms)
	q.setString("reg_id", p.RegID)
	q.setString("search_by", p.SearchBy)
	q.setString("include_secondaries", p.IncludeSecondaries)
	q.setString("changed_since_date", p.ChangedSinceDate)
	q.setString("transcriptable_course", p.TranscriptableCourse)
	q.setInt("page_start", p.PageStart)
	q.setInt("page_size", p.PageSize)
	q.setString("facility_code", p.FacilityCode)
	q.setString("room_number", p.RoomNumber)
	q.setString("sln", p.SLN)
	return url.Values(q)
}

// PersonSearchParams filters person.json.
type PersonSearchParams struct {
	EmployeeID       *string
	NetID            *string
	RegID            *string
	StudentNumber    *string
	StudentSystemKey *string
}

func (p PersonSearchParams) Values() url.Values {
	q := queryBuilder{}
	q.setString("employee_id", p.EmployeeID)
	q.setString("net_id", p.NetID)
	q.setString("reg_id", p.RegID)
	q.setString("student_number", p.StudentNumber)
	q.setString("student_system_key", p.StudentSystemKey)
	return url.Values(q)
}

// CollegeSearchParams filters college.json.
type CollegeSearchParams struct {
	CampusShortName *string
	Quarter         *string
	Year            *int
	FutureTerms     *int
	PageSize        *int
	PageStart       *int
}

func (p CollegeSearchParams) Values() url.Values {
	q := queryBuilder{}
	q.setString("campus_short_name", p.CampusShortName)
	q.setString("quarter", p.Quarter)
	q.setInt("year", p.Year)
	q.setInt("future_terms", p.FutureTerms)
	q.setInt("page_size", p.PageSize)
	q.setInt("page_start", p.PageStart)
	return url.Values(q)
}

// RegistrationSearchParams filters registration.json.
type RegistrationSearchParams struct {
	ChangedSinceDate       *string
	CourseNumber           *int
	CurriculumAbbreviation *string
	InstructorRegID        *string
	IsActive               *bool
	Quarter                *string
	RegID                  *string
	SectionID              *string
	TranscriptableCourse   *bool
	Year                   *int
	PageSize               *int
	PageStart              *int
}

func (p RegistrationSearchParams) Values() url.Values {
	q := queryBuilder{}
	q.setString("changed_since_date", p.ChangedSinceDate)
	q.setInt("course_number", p.CourseNumber)
	q.setString("curriculum_abbreviation", p.CurriculumAbbreviation)
	q.setString("instructor_reg_id", p.InstructorRegID)
	q.setBool("is_active", p.IsActive)
	q.setString("quarter", p.Quarter)
	q.setString("reg_id", p.RegID)
	q.setString("section_id", p.SectionID)
	q.setBool("transcriptable_course", p.TranscriptableCourse)
	q.setInt("year", p.Year)
	q.setInt("page_size", p.PageSize)
	q.setInt("page_start", p.PageStart)
	return url.Values(q)
}
