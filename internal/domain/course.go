package domain

import "strconv"

// Curriculum is a subject area (CSE, MATH, ...) offered in a term.
type Curriculum struct {
	Year                         int    `json:"Year"`
	Quarter                      string `json:"Quarter"`
	CurriculumAbbreviation       string `json:"CurriculumAbbreviation"`
	CurriculumName               string `json:"CurriculumName"`
	CurriculumFullName           string `json:"CurriculumFullName"`
	DepartmentAbbreviation       string `json:"DepartmentAbbreviation"`
	CollegeAbbreviation          string `json:"CollegeAbbreviation"`
	TimeScheduleLinkAbbreviation string `json:"TimeScheduleLinkAbbreviation"`
}

// CurriculumSearchResult is the response of curriculum.json.
type CurriculumSearchResult struct {
	Page
	Curricula []Curriculum `json:"Curricula"`
}

// CourseCurriculum is the curriculum block embedded in course resources.
type CourseCurriculum struct {
	CurriculumAbbreviation       string `json:"CurriculumAbbreviation"`
	CurriculumName               string `json:"CurriculumName"`
	TimeScheduleLinkAbbreviation string `json:"TimeScheduleLinkAbbreviation"`
}

// Course is a course offering. Key is not part of the SWS payload; it is set
// to the arguments the course was fetched with.
type Course struct {
	Key                CourseKey        `json:"-"`
	Curriculum         CourseCurriculum `json:"Curriculum"`
	CourseNumber       string           `json:"CourseNumber"`
	CourseTitle        string           `json:"CourseTitle"`
	CourseTitleLong    string           `json:"CourseTitleLong"`
	CourseDescription  string           `json:"CourseDescription"`
	CourseCampus       string           `json:"CourseCampus"`
	CourseCollege      string           `json:"CourseCollege"`
	CourseComment      string           `json:"CourseComment"`
	CreditControl      string           `json:"CreditControl"`
	GradingSystem      string           `json:"GradingSystem"`
	MinimumTermCredit  float64          `json:"MinimumTermCredit"`
	MaximumTermCredit  float64          `json:"MaximumTermCredit"`
	FirstEffectiveTerm *TermRef         `json:"FirstEffectiveTerm"`
	LastEffectiveTerm  *TermRef         `json:"LastEffectiveTerm"`
}

// CourseRef is a course row in search results.
type CourseRef struct {
	Year                   int    `json:"Year"`
	Quarter                string `json:"Quarter"`
	CurriculumAbbreviation string `json:"CurriculumAbbreviation"`
	CourseNumber           string `json:"CourseNumber"`
	CourseTitle            string `json:"CourseTitle"`
	CourseTitleLong        string `json:"CourseTitleLong"`
	Href                   string `json:"Href"`
}

// Key builds the key of the referenced course.
func (r CourseRef) Key() (CourseKey, error) {
	n, err := strconv.Atoi(r.CourseNumber)
	if err != nil {
		return CourseKey{}, NewValidationError("CourseNumber", "not numeric: "+r.CourseNumber)
	}
	return NewCourseKey(r.Year, r.Quarter, r.CurriculumAbbreviation, n)
}

// CourseSearchResult is the response of course.json.
type CourseSearchResult struct {
	Page
	Courses []CourseRef `json:"Courses"`
}
