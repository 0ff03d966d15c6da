package domain

import "strconv"

// Section is one section of a course offering. Key is set to the arguments
// the section was fetched with.
type Section struct {
	Key                              SectionKey       `json:"-"`
	Curriculum                       CourseCurriculum `json:"Curriculum"`
	CourseNumber                     string           `json:"CourseNumber"`
	SectionID                        string           `json:"SectionID"`
	SectionType                      string           `json:"SectionType"`
	SLN                              string           `json:"SLN"`
	CourseTitle                      string           `json:"CourseTitle"`
	CourseTitleLong                  string           `json:"CourseTitleLong"`
	CourseDescription                string           `json:"CourseDescription"`
	PrimarySection                   *SectionRef      `json:"PrimarySection"`
	Meetings                         []Meeting        `json:"Meetings"`
	CurrentEnrollment                int              `json:"CurrentEnrollment"`
	LimitEstimateEnrollment          int              `json:"LimitEstimateEnrollment"`
	LimitEstimateEnrollmentIndicator string           `json:"LimitEstimateEnrollmentIndicator"`
	Auditors                         int              `json:"Auditors"`
	DeleteFlag                       string           `json:"DeleteFlag"`
	IndependentStudy                 bool             `json:"IndependentStudy"`
	InstituteName                    string           `json:"InstituteName"`
	ClassWebsiteURL                  string           `json:"ClassWebsiteUrl"`
	StartDate                        string           `json:"StartDate"`
	EndDate                          string           `json:"EndDate"`
	SecondaryGradingOption           bool             `json:"SecondaryGradingOption"`
	ServiceLearning                  bool             `json:"ServiceLearning"`
	RoomsToBeArranged                bool             `json:"RoomsToBeArranged"`
	AddCodeRequired                  bool             `json:"AddCodeRequired"`
	FacultyCodeRequired              bool             `json:"FacultyCodeRequired"`
}

// SectionRef is the abbreviated section SWS embeds in searches,
// registrations and primary-section links.
type SectionRef struct {
	Year                   int    `json:"Year"`
	Quarter                string `json:"Quarter"`
	CurriculumAbbreviation string `json:"CurriculumAbbreviation"`
	CourseNumber           string `json:"CourseNumber"`
	SectionID              string `json:"SectionID"`
	Href                   string `json:"Href"`
}

// Key builds the key of the referenced section.
func (r SectionRef) Key() (SectionKey, error) {
	n, err := strconv.Atoi(r.CourseNumber)
	if err != nil {
		return SectionKey{}, NewValidationError("CourseNumber", "not numeric: "+r.CourseNumber)
	}
	return NewSectionKey(r.Year, r.Quarter, r.CurriculumAbbreviation, n, r.SectionID)
}

// DaysOfWeek is SWS's meeting-days block.
type DaysOfWeek struct {
	Text string `json:"Text"`
}

// Meeting is a scheduled meeting pattern of a section.
type Meeting struct {
	MeetingIndex         string       `json:"MeetingIndex"`
	MeetingType          string       `json:"MeetingType"`
	DaysOfWeek           DaysOfWeek   `json:"DaysOfWeek"`
	StartTime            string       `json:"StartTime"`
	EndTime              string       `json:"EndTime"`
	Building             string       `json:"Building"`
	RoomNumber           string       `json:"RoomNumber"`
	BuildingToBeArranged bool         `json:"BuildingToBeArranged"`
	RoomToBeArranged     bool         `json:"RoomToBeArranged"`
	Instructors          []Instructor `json:"Instructors"`
}

// Instructor links a meeting to a person.
type Instructor struct {
	Person          PersonRef `json:"Person"`
	PercentInvolved int       `json:"PercentInvolved"`
	TSPrint         bool      `json:"TSPrint"`
}

// SectionSearchResult is the response of section.json.
type SectionSearchResult struct {
	Page
	Sections []SectionRef `json:"Sections"`
}
