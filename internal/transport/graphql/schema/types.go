package schema

import (
	"github.com/graphql-go/graphql"

	"github.com/heartmarshall/swsgraph/internal/domain"
)

var termDates = []string{
	"FirstDay", "LastDayOfClasses", "LastAddDay", "LastDropDay", "CensusDay",
	"ATermLastDay", "BTermFirstDay", "LastFinalExamDay", "GradeSubmissionDeadline",
}

func (b *builder) termFields() graphql.Fields {
	return merge(
		graphql.Fields{
			"Year":     {Type: graphql.Int},
			"Quarter":  {Type: graphql.String},
			"Next":     {Type: b.baseTerm},
			"Previous": {Type: b.baseTerm},
		},
		scalars(graphql.String, termDates...),
	)
}

func (b *builder) baseTermFields() graphql.Fields {
	return graphql.Fields{
		"Year":    {Type: graphql.Int},
		"Quarter": {Type: graphql.String},
		"Href":    {Type: graphql.String},
		"Term": {
			Type:        b.term,
			Description: "The full term.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				ref, ok := sourceAs[domain.TermRef](p.Source)
				if !ok {
					return nil, nil
				}
				return loadThunk(p.Context, loaders(p).Term, ref.Key()), nil
			},
		},
	}
}

// termOf loads the term identified by year and quarter, or resolves to null
// when the parent carries no usable term.
func termOf(p graphql.ResolveParams, year int, quarter string) (interface{}, error) {
	key, err := domain.NewTermKey(year, quarter)
	if err != nil {
		return nil, nil
	}
	return loadThunk(p.Context, loaders(p).Term, key), nil
}

func (b *builder) curriculumFields() graphql.Fields {
	return merge(
		graphql.Fields{"Year": {Type: graphql.Int}},
		scalars(graphql.String,
			"Quarter", "CurriculumAbbreviation", "CurriculumName", "CurriculumFullName",
			"DepartmentAbbreviation", "CollegeAbbreviation", "TimeScheduleLinkAbbreviation",
		),
		graphql.Fields{
			"Term": {
				Type: b.term,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, ok := sourceAs[domain.Curriculum](p.Source)
					if !ok {
						return nil, nil
					}
					return termOf(p, c.Year, c.Quarter)
				},
			},
			"Courses": {
				Type:        b.courseSearch,
				Description: "Courses offered under this curriculum in its term.",
				Args: graphql.FieldConfigArgument{
					"PageSize":  {Type: graphql.Int},
					"PageStart": {Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, ok := sourceAs[domain.Curriculum](p.Source)
					if !ok || c.CurriculumAbbreviation == "" {
						return nil, nil
					}
					params := domain.CourseSearchParams{
						CurriculumAbbreviation: &c.CurriculumAbbreviation,
						PageSize:               argInt(p.Args, "PageSize"),
						PageStart:              argInt(p.Args, "PageStart"),
					}
					if c.Year > 0 {
						params.Year = &c.Year
					}
					if c.Quarter != "" {
						params.Quarter = &c.Quarter
					}
					return goThunk(func() (*domain.CourseSearchResult, error) {
						return b.src.SearchCourse(p.Context, params)
					}), nil
				},
			},
		},
	)
}

func (b *builder) curriculumSearchFields() graphql.Fields {
	return merge(pageFields(), graphql.Fields{
		"Curricula": {Type: graphql.NewList(b.curriculum)},
	})
}

// courseCurriculumFields flattens the curriculum block courses and sections
// embed.
func courseCurriculumFields[T any](get func(T) domain.CourseCurriculum) graphql.Fields {
	field := func(pick func(domain.CourseCurriculum) string) *graphql.Field {
		return &graphql.Field{
			Type:    graphql.String,
			Resolve: resolveFrom(func(v T) any { return pick(get(v)) }),
		}
	}
	return graphql.Fields{
		"CurriculumAbbreviation": field(func(c domain.CourseCurriculum) string { return c.CurriculumAbbreviation }),
		"CurriculumName":         field(func(c domain.CourseCurriculum) string { return c.CurriculumName }),
		"TimeScheduleLinkAbbreviation": field(func(c domain.CourseCurriculum) string {
			return c.TimeScheduleLinkAbbreviation
		}),
	}
}

func (b *builder) courseFields() graphql.Fields {
	return merge(
		graphql.Fields{
			"Key":                {Type: b.courseKey, Description: "The arguments the course was fetched with."},
			"MinimumTermCredit":  {Type: graphql.Float},
			"MaximumTermCredit":  {Type: graphql.Float},
			"FirstEffectiveTerm": {Type: b.baseTerm},
			"LastEffectiveTerm":  {Type: b.baseTerm},
		},
		scalars(graphql.String,
			"CourseNumber", "CourseTitle", "CourseTitleLong", "CourseDescription", "CourseCampus",
			"CourseCollege", "CourseComment", "CreditControl", "GradingSystem",
		),
		courseCurriculumFields(func(c domain.Course) domain.CourseCurriculum { return c.Curriculum }),
		graphql.Fields{
			"Term": {
				Type: b.term,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, ok := sourceAs[domain.Course](p.Source)
					if !ok || c.Key.Year == 0 {
						return nil, nil
					}
					return loadThunk(p.Context, loaders(p).Term, c.Key.Term()), nil
				},
			},
			"Sections": {
				Type:        b.sectionSearch,
				Description: "Sections of this course offering.",
				Args: graphql.FieldConfigArgument{
					"IncludeSecondaries": {Type: graphql.String},
					"PageSize":           {Type: graphql.Int},
					"PageStart":          {Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, ok := sourceAs[domain.Course](p.Source)
					if !ok || c.Key == (domain.CourseKey{}) {
						return nil, nil
					}
					k := c.Key
					params := domain.SectionSearchParams{
						Year:                   &k.Year,
						Quarter:                &k.Quarter,
						CurriculumAbbreviation: &k.Curriculum,
						CourseNumber:           &k.CourseNumber,
						IncludeSecondaries:     argString(p.Args, "IncludeSecondaries"),
						PageSize:               argInt(p.Args, "PageSize"),
						PageStart:              argInt(p.Args, "PageStart"),
					}
					return goThunk(func() (*domain.SectionSearchResult, error) {
						return b.src.SearchSection(p.Context, params)
					}), nil
				},
			},
		},
	)
}

func (b *builder) courseKeyFields() graphql.Fields {
	return graphql.Fields{
		"Year":         {Type: graphql.Int},
		"Quarter":      {Type: graphql.String},
		"Curriculum":   {Type: graphql.String},
		"CourseNumber": {Type: graphql.Int},
	}
}

func (b *builder) courseRefFields() graphql.Fields {
	return merge(
		graphql.Fields{"Year": {Type: graphql.Int}},
		scalars(graphql.String,
			"Quarter", "CurriculumAbbreviation", "CourseNumber", "CourseTitle", "CourseTitleLong", "Href",
		),
		graphql.Fields{
			"Course": {
				Type: b.course,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ref, ok := sourceAs[domain.CourseRef](p.Source)
					if !ok {
						return nil, nil
					}
					key, err := ref.Key()
					if err != nil {
						return nil, err
					}
					return loadThunk(p.Context, loaders(p).Course, key), nil
				},
			},
		},
	)
}

func (b *builder) courseSearchFields() graphql.Fields {
	return merge(pageFields(), graphql.Fields{
		"Courses": {Type: graphql.NewList(b.courseRef)},
	})
}

func (b *builder) sectionFields() graphql.Fields {
	return merge(
		graphql.Fields{
			"Key":            {Type: b.sectionKey, Description: "The arguments the section was fetched with."},
			"PrimarySection": {Type: b.baseSection},
			"Meetings":       {Type: graphql.NewList(b.meeting)},
		},
		scalars(graphql.String,
			"CourseNumber", "SectionID", "SectionType", "SLN", "CourseTitle", "CourseTitleLong",
			"CourseDescription", "LimitEstimateEnrollmentIndicator", "DeleteFlag", "InstituteName",
			"ClassWebsiteUrl", "StartDate", "EndDate",
		),
		scalars(graphql.Int, "CurrentEnrollment", "LimitEstimateEnrollment", "Auditors"),
		scalars(graphql.Boolean,
			"IndependentStudy", "SecondaryGradingOption", "ServiceLearning", "RoomsToBeArranged",
			"AddCodeRequired", "FacultyCodeRequired",
		),
		courseCurriculumFields(func(s domain.Section) domain.CourseCurriculum { return s.Curriculum }),
		graphql.Fields{
			"Course": {
				Type: b.course,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, ok := sourceAs[domain.Section](p.Source)
					if !ok || s.Key == (domain.SectionKey{}) {
						return nil, nil
					}
					return loadThunk(p.Context, loaders(p).Course, s.Key.Course()), nil
				},
			},
			"Term": {
				Type: b.term,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, ok := sourceAs[domain.Section](p.Source)
					if !ok {
						return nil, nil
					}
					return termOf(p, s.Key.Year, s.Key.Quarter)
				},
			},
		},
	)
}

func (b *builder) sectionKeyFields() graphql.Fields {
	return graphql.Fields{
		"Year":           {Type: graphql.Int},
		"Quarter":        {Type: graphql.String},
		"CurriculumAbbr": {Type: graphql.String},
		"CourseNumber":   {Type: graphql.Int},
		"SectionId":      {Type: graphql.String},
	}
}

// sectionOf loads the section a reference points at.
func sectionOf(p graphql.ResolveParams, ref domain.SectionRef) (interface{}, error) {
	key, err := ref.Key()
	if err != nil {
		return nil, err
	}
	return loadThunk(p.Context, loaders(p).Section, key), nil
}

func (b *builder) baseSectionFields() graphql.Fields {
	return merge(
		graphql.Fields{"Year": {Type: graphql.Int}},
		scalars(graphql.String, "Quarter", "CurriculumAbbreviation", "CourseNumber", "SectionID", "Href"),
		graphql.Fields{
			"Section": {
				Type: b.section,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ref, ok := sourceAs[domain.SectionRef](p.Source)
					if !ok {
						return nil, nil
					}
					return sectionOf(p, ref)
				},
			},
		},
	)
}

func (b *builder) meetingFields() graphql.Fields {
	return merge(
		scalars(graphql.String, "MeetingIndex", "MeetingType", "StartTime", "EndTime", "Building", "RoomNumber"),
		scalars(graphql.Boolean, "BuildingToBeArranged", "RoomToBeArranged"),
		graphql.Fields{
			"DaysOfWeek": {
				Type:    graphql.String,
				Resolve: resolveFrom(func(m domain.Meeting) any { return m.DaysOfWeek.Text }),
			},
			"Instructors": {Type: graphql.NewList(b.instructor)},
		},
	)
}

func (b *builder) instructorFields() graphql.Fields {
	return graphql.Fields{
		"RegID": {
			Type:    graphql.String,
			Resolve: resolveFrom(func(i domain.Instructor) any { return i.Person.RegID }),
		},
		"Name": {
			Type:    graphql.String,
			Resolve: resolveFrom(func(i domain.Instructor) any { return i.Person.Name }),
		},
		"PercentInvolved": {Type: graphql.Int},
		"TSPrint":         {Type: graphql.Boolean},
		"Person": {
			Type: b.person,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				i, ok := sourceAs[domain.Instructor](p.Source)
				if !ok {
					return nil, nil
				}
				return personOf(p, i.Person.RegID)
			},
		},
	}
}

func (b *builder) sectionSearchFields() graphql.Fields {
	return merge(pageFields(), graphql.Fields{
		"Sections": {Type: graphql.NewList(b.baseSection)},
	})
}

// personOf loads a person by regid, or resolves to null for a blank regid.
func personOf(p graphql.ResolveParams, regID string) (interface{}, error) {
	if regID == "" {
		return nil, nil
	}
	return loadThunk(p.Context, loaders(p).Person, regID), nil
}

func (b *builder) personFields() graphql.Fields {
	return merge(
		scalars(graphql.String,
			"RegID", "UWNetID", "Name", "FirstName", "LastName", "StudentName", "StudentNumber",
			"StudentSystemKey", "EmployeeID", "Email", "Href",
		),
		graphql.Fields{
			"DirectoryRelease": {Type: graphql.Boolean},
			"Enrollments": {
				Type:        b.enrollmentSearch,
				Description: "All enrollments of this person.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					person, ok := sourceAs[domain.Person](p.Source)
					if !ok || person.RegID == "" {
						return nil, nil
					}
					return loadThunk(p.Context, loaders(p).Enrollment, person.RegID), nil
				},
			},
		},
	)
}

func (b *builder) personRefFields() graphql.Fields {
	return merge(
		scalars(graphql.String, "RegID", "Name", "Href"),
		graphql.Fields{
			"Person": {
				Type: b.person,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ref, ok := sourceAs[domain.PersonRef](p.Source)
					if !ok {
						return nil, nil
					}
					return personOf(p, ref.RegID)
				},
			},
		},
	)
}

func (b *builder) personSearchFields() graphql.Fields {
	return merge(pageFields(), graphql.Fields{
		"Persons": {Type: graphql.NewList(b.personRef)},
	})
}

func (b *builder) collegeFields() graphql.Fields {
	return scalars(graphql.String,
		"CampusShortName", "CollegeAbbreviation", "CollegeName", "CollegeFullName",
		"CollegeFullNameTitleCased", "CollegeShortName", "Href",
	)
}

func (b *builder) collegeSearchFields() graphql.Fields {
	return merge(pageFields(), graphql.Fields{
		"Colleges": {Type: graphql.NewList(b.college)},
	})
}

func (b *builder) registrationFields() graphql.Fields {
	return merge(
		scalars(graphql.Boolean, "IsActive", "IsCredit", "Auditor"),
		scalars(graphql.String, "Credits", "DuplicateCode", "RequestStatus", "RequestDate", "Grade", "Href"),
		graphql.Fields{
			"RegID": {
				Type:    graphql.String,
				Resolve: resolveFrom(func(r domain.Registration) any { return r.Person.RegID }),
			},
			"BaseSection": {
				Type:    b.baseSection,
				Resolve: resolveFrom(func(r domain.Registration) any { return r.Section }),
			},
			"Person": {
				Type: b.person,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, ok := sourceAs[domain.Registration](p.Source)
					if !ok {
						return nil, nil
					}
					return personOf(p, r.Person.RegID)
				},
			},
			"Section": {
				Type: b.section,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, ok := sourceAs[domain.Registration](p.Source)
					if !ok {
						return nil, nil
					}
					return sectionOf(p, r.Section)
				},
			},
		},
	)
}

func (b *builder) registrationSearchFields() graphql.Fields {
	return merge(pageFields(), graphql.Fields{
		"Registrations": {Type: graphql.NewList(b.registration)},
	})
}

func (b *builder) enrollmentFields() graphql.Fields {
	return merge(
		scalars(graphql.Float, "QtrGradePoints", "QtrGradedAttmp", "QtrNonGrdEarned"),
		graphql.Fields{
			"Year": {
				Type:    graphql.Int,
				Resolve: resolveFrom(func(e domain.Enrollment) any { return e.Term.Year }),
			},
			"Quarter": {
				Type:    graphql.String,
				Resolve: resolveFrom(func(e domain.Enrollment) any { return e.Term.Quarter }),
			},
			"RegID": {
				Type:    graphql.String,
				Resolve: resolveFrom(func(e domain.Enrollment) any { return e.Person.RegID }),
			},
			"ClassLevel":    {Type: graphql.String},
			"ClassCode":     {Type: graphql.Int},
			"Majors":        {Type: graphql.NewList(b.major)},
			"Minors":        {Type: graphql.NewList(b.major)},
			"Registrations": {Type: graphql.NewList(b.registration)},
			"Href":          {Type: graphql.String},
			"Term": {
				Type: b.term,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, ok := sourceAs[domain.Enrollment](p.Source)
					if !ok {
						return nil, nil
					}
					return termOf(p, e.Term.Year, e.Term.Quarter)
				},
			},
			"Person": {
				Type: b.person,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, ok := sourceAs[domain.Enrollment](p.Source)
					if !ok {
						return nil, nil
					}
					return personOf(p, e.Person.RegID)
				},
			},
		},
	)
}

func (b *builder) enrollmentRefFields() graphql.Fields {
	return graphql.Fields{
		"Year":    {Type: graphql.Int},
		"Quarter": {Type: graphql.String},
		"RegID":   {Type: graphql.String},
		"Href":    {Type: graphql.String},
		"Enrollment": {
			Type: b.enrollment,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				ref, ok := sourceAs[domain.EnrollmentRef](p.Source)
				if !ok || ref.RegID == "" {
					return nil, nil
				}
				return goThunk(func() (*domain.Enrollment, error) {
					return b.src.GetEnrollment(p.Context, ref.Year, ref.Quarter, ref.RegID)
				}), nil
			},
		},
	}
}

func (b *builder) enrollmentSearchFields() graphql.Fields {
	return merge(pageFields(), graphql.Fields{
		"Enrollments": {Type: graphql.NewList(b.enrollmentRef)},
	})
}

func (b *builder) majorFields() graphql.Fields {
	return merge(
		scalars(graphql.String, "MajorAbbreviation", "MajorName", "MajorFullName", "DegreeName", "Campus"),
		graphql.Fields{"DegreeLevel": {Type: graphql.Int}},
	)
}
