package domain

// Registration is a person's registration in a section.
type Registration struct {
	Person        PersonRef  `json:"Person"`
	Section       SectionRef `json:"Section"`
	IsActive      bool       `json:"IsActive"`
	IsCredit      bool       `json:"IsCredit"`
	Auditor       bool       `json:"Auditor"`
	Credits       string     `json:"Credits"`
	DuplicateCode string     `json:"DuplicateCode"`
	RequestStatus string     `json:"RequestStatus"`
	RequestDate   string     `json:"RequestDate"`
	Grade         string     `json:"Grade"`
	Href          string     `json:"Href"`
}

// RegistrationSearchResult is the response of registration.json.
type RegistrationSearchResult struct {
	Page
	Registrations []Registration `json:"Registrations"`
}

// Major is a major or minor declared on an enrollment.
type Major struct {
	MajorAbbreviation string `json:"MajorAbbreviation"`
	MajorName         string `json:"MajorName"`
	MajorFullName     string `json:"MajorFullName"`
	DegreeName        string `json:"DegreeName"`
	DegreeLevel       int    `json:"DegreeLevel"`
	Campus            string `json:"Campus"`
}

// Enrollment is a student's enrollment record for one term.
type Enrollment struct {
	Term            TermRef        `json:"Term"`
	Person          PersonRef      `json:"Person"`
	ClassLevel      string         `json:"ClassLevel"`
	ClassCode       int            `json:"ClassCode"`
	Majors          []Major        `json:"Majors"`
	Minors          []Major        `json:"Minors"`
	Registrations   []Registration `json:"Registrations"`
	QtrGradePoints  float64        `json:"QtrGradePoints"`
	QtrGradedAttmp  float64        `json:"QtrGradedAttmp"`
	QtrNonGrdEarned float64        `json:"QtrNonGrdEarned"`
	Href            string         `json:"Href"`
}

// EnrollmentRef is an enrollment row in enrollment search results.
type EnrollmentRef struct {
	Year    int    `json:"Year"`
	Quarter string `json:"Quarter"`
	RegID   string `json:"RegID"`
	Href    string `json:"Href"`
}

// EnrollmentSearchResult is the response of enrollment.json.
type EnrollmentSearchResult struct {
	Page
	Enrollments []EnrollmentRef `json:"Enrollments"`
}
