package schema

import (
	"github.com/graphql-go/graphql"

	"github.com/heartmarshall/swsgraph/internal/domain"
)

var (
	requiredInt    = graphql.NewNonNull(graphql.Int)
	requiredString = graphql.NewNonNull(graphql.String)
)

func (b *builder) queryFields() graphql.Fields {
	return graphql.Fields{
		"GetTerm": {
			Type: b.term,
			Args: graphql.FieldConfigArgument{
				"Year":    {Type: requiredInt},
				"Quarter": {Type: requiredString},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				key, err := termArgs(p.Args)
				if err != nil {
					return nil, err
				}
				return loadThunk(p.Context, loaders(p).Term, key), nil
			},
		},
		"GetTermCurrent": {
			Type: b.term,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return loadThunk(p.Context, loaders(p).Term, domain.TermKey{}), nil
			},
		},
		"CurriculumSearch": {
			Type: b.curriculumSearch,
			Args: graphql.FieldConfigArgument{
				"Year":                {Type: graphql.Int},
				"Quarter":             {Type: graphql.String},
				"FutureTerms":         {Type: graphql.Int},
				"CollegeAbbreviation": {Type: graphql.String},
				"DeptAbbr":            {Type: graphql.String},
				"PageStart":           {Type: graphql.Int},
				"PageSize":            {Type: graphql.Int},
			},
			Resolve: b.searchCurriculum,
		},
		"GetCurriculum": {
			Type: b.curriculum,
			Args: graphql.FieldConfigArgument{
				"Year":     {Type: requiredInt},
				"Quarter":  {Type: requiredString},
				"DeptAbbr": {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				key, err := termArgs(p.Args)
				if err != nil {
					return nil, err
				}
				var dept string
				if d := argString(p.Args, "DeptAbbr"); d != nil {
					dept = *d
				}
				return b.src.GetCurriculum(p.Context, key.Year, key.Quarter, dept)
			},
		},
		"CourseSearch": {
			Type: b.courseSearch,
			Args: graphql.FieldConfigArgument{
				"ChangedSinceDate":              {Type: graphql.String},
				"CourseNumber":                  {Type: graphql.String},
				"CourseTitleContains":           {Type: graphql.String},
				"CourseTitleStartsWith":         {Type: graphql.String},
				"CurriculumAbbr":                {Type: graphql.String},
				"FutureTerms":                   {Type: graphql.String},
				"PageSize":                      {Type: graphql.Int},
				"PageStart":                     {Type: graphql.Int},
				"Quarter":                       {Type: requiredString},
				"TranscriptableCourse":          {Type: graphql.String},
				"Year":                          {Type: requiredInt},
				"ExcludeCoursesWithoutSections": {Type: graphql.String},
			},
			Resolve: b.searchCourse,
		},
		"GetCourse": {
			Type: b.course,
			Args: graphql.FieldConfigArgument{
				"Year":         {Type: requiredInt},
				"Quarter":      {Type: requiredString},
				"Curriculum":   {Type: requiredString},
				"CourseNumber": {Type: requiredInt},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				year, _ := p.Args["Year"].(int)
				quarter, _ := p.Args["Quarter"].(string)
				curriculum, _ := p.Args["Curriculum"].(string)
				number, _ := p.Args["CourseNumber"].(int)
				key, err := domain.NewCourseKey(year, quarter, curriculum, number)
				if err != nil {
					return nil, err
				}
				return loadThunk(p.Context, loaders(p).Course, key), nil
			},
		},
		"GetSection": {
			Type: b.section,
			Args: graphql.FieldConfigArgument{
				"Year":           {Type: requiredInt},
				"Quarter":        {Type: requiredString},
				"CurriculumAbbr": {Type: requiredString},
				"CourseNumber":   {Type: requiredInt},
				"SectionId":      {Type: requiredString},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				year, _ := p.Args["Year"].(int)
				quarter, _ := p.Args["Quarter"].(string)
				curriculum, _ := p.Args["CurriculumAbbr"].(string)
				number, _ := p.Args["CourseNumber"].(int)
				section, _ := p.Args["SectionId"].(string)
				key, err := domain.NewSectionKey(year, quarter, curriculum, number, section)
				if err != nil {
					return nil, err
				}
				return loadThunk(p.Context, loaders(p).Section, key), nil
			},
		},
		"SectionSearch": {
			Type: b.sectionSearch,
			Args: graphql.FieldConfigArgument{
				"Year":                 {Type: requiredInt},
				"Quarter":              {Type: requiredString},
				"CourseNumber":         {Type: requiredInt},
				"CurriculumAbbr":       {Type: requiredString},
				"FutureTerms":          {Type: graphql.String},
				"RegId":                {Type: graphql.String},
				"SearchBy":             {Type: graphql.String},
				"IncludeSecondaries":   {Type: graphql.String},
				"ChangedSinceDate":     {Type: graphql.String},
				"TranscriptableCourse": {Type: graphql.String},
				"PageStart":            {Type: graphql.Int},
				"PageSize":             {Type: graphql.Int},
				"FacilityCode":         {Type: graphql.String},
				"RoomNumber":           {Type: graphql.String},
				"Sln":                  {Type: graphql.String},
			},
			Resolve: b.searchSection,
		},
		"GetSWSPerson": {
			Type: b.person,
			Args: graphql.FieldConfigArgument{
				"ID": {Type: graphql.String, Description: "UW regid."},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := argRequired(p.Args, "ID")
				if err != nil {
					return nil, err
				}
				return loadThunk(p.Context, loaders(p).Person, id), nil
			},
		},
		"SWSPersonSearch": {
			Type: b.personSearch,
			Args: graphql.FieldConfigArgument{
				"EmployeeID":       {Type: graphql.String},
				"UWNetID":          {Type: graphql.String},
				"UWRegID":          {Type: graphql.String},
				"StudentNumber":    {Type: graphql.String},
				"StudentSystemKey": {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return b.src.SearchPerson(p.Context, domain.PersonSearchParams{
					EmployeeID:       argString(p.Args, "EmployeeID"),
					NetID:            argString(p.Args, "UWNetID"),
					RegID:            argString(p.Args, "UWRegID"),
					StudentNumber:    argString(p.Args, "StudentNumber"),
					StudentSystemKey: argString(p.Args, "StudentSystemKey"),
				})
			},
		},
		"CollegeSearch": {
			Type: b.collegeSearch,
			Args: graphql.FieldConfigArgument{
				"CampusShortName": {Type: graphql.String},
				"Quarter":         {Type: graphql.String},
				"Year":            {Type: graphql.Int},
				"FutureTerms":     {Type: graphql.Int},
				"CurrentTerm":     {Type: graphql.Boolean, Description: "Search the term in session, overriding Year and Quarter."},
				"PageSize":        {Type: graphql.Int},
				"PageStart":       {Type: graphql.Int},
			},
			Resolve: b.searchCollege,
		},
		"GetCollege": {
			Type: b.college,
			Args: graphql.FieldConfigArgument{
				"CollegeAbbreviation": {Type: requiredString},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				abbr, err := argRequired(p.Args, "CollegeAbbreviation")
				if err != nil {
					return nil, err
				}
				return b.src.GetCollege(p.Context, abbr)
			},
		},
		"SearchRegistration": {
			Type: b.registrationSearch,
			Args: graphql.FieldConfigArgument{
				"ChangedSince":         {Type: graphql.String},
				"CourseNumber":         {Type: graphql.Int},
				"CurriculumAbbr":       {Type: graphql.String},
				"InstructorRegID":      {Type: graphql.String},
				"ActiveRegistration":   {Type: graphql.Boolean},
				"Quarter":              {Type: graphql.String},
				"RegID":                {Type: graphql.String},
				"SectionID":            {Type: graphql.String},
				"TranscriptableCourse": {Type: graphql.Boolean},
				"Year":                 {Type: graphql.Int},
				"PageSize":             {Type: graphql.Int},
				"PageStart":            {Type: graphql.Int},
			},
			Resolve: b.searchRegistration,
		},
		"SearchEnrollment": {
			Type: b.enrollmentSearch,
			Args: graphql.FieldConfigArgument{
				"RegID": {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				regID, err := argRequired(p.Args, "RegID")
				if err != nil {
					return nil, err
				}
				return loadThunk(p.Context, loaders(p).Enrollment, regID), nil
			},
		},
		"GetEnrollment": {
			Type: b.enrollment,
			Args: graphql.FieldConfigArgument{
				"RegID":   {Type: requiredString},
				"Year":    {Type: requiredInt},
				"Quarter": {Type: requiredString},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				key, err := termArgs(p.Args)
				if err != nil {
					return nil, err
				}
				regID, err := argRequired(p.Args, "RegID")
				if err != nil {
					return nil, err
				}
				return b.src.GetEnrollment(p.Context, key.Year, key.Quarter, regID)
			},
		},
	}
}

func (b *builder) searchCurriculum(p graphql.ResolveParams) (interface{}, error) {
	quarter, err := argQuarter(p.Args, "Quarter")
	if err != nil {
		return nil, err
	}
	return b.src.SearchCurriculum(p.Context, domain.CurriculumSearchParams{
		Year:                   argInt(p.Args, "Year"),
		Quarter:                quarter,
		FutureTerms:            argInt(p.Args, "FutureTerms"),
		CollegeAbbreviation:    argString(p.Args, "CollegeAbbreviation"),
		DepartmentAbbreviation: argString(p.Args, "DeptAbbr"),
		PageStart:              argInt(p.Args, "PageStart"),
		PageSize:               argInt(p.Args, "PageSize"),
	})
}

func (b *builder) searchCourse(p graphql.ResolveParams) (interface{}, error) {
	key, err := termArgs(p.Args)
	if err != nil {
		return nil, err
	}
	return b.src.SearchCourse(p.Context, domain.CourseSearchParams{
		Year:                          &key.Year,
		Quarter:                       &key.Quarter,
		ChangedSinceDate:              argString(p.Args, "ChangedSinceDate"),
		CourseNumber:                  argString(p.Args, "CourseNumber"),
		CourseTitleContains:           argString(p.Args, "CourseTitleContains"),
		CourseTitleStartsWith:         argString(p.Args, "CourseTitleStartsWith"),
		CurriculumAbbreviation:        argString(p.Args, "CurriculumAbbr"),
		FutureTerms:                   argString(p.Args, "FutureTerms"),
		PageSize:                      argInt(p.Args, "PageSize"),
		PageStart:                     argInt(p.Args, "PageStart"),
		TranscriptableCourse:          argString(p.Args, "TranscriptableCourse"),
		ExcludeCoursesWithoutSections: argString(p.Args, "ExcludeCoursesWithoutSections"),
	})
}

func (b *builder) searchSection(p graphql.ResolveParams) (interface{}, error) {
	year, _ := p.Args["Year"].(int)
	quarter, _ := p.Args["Quarter"].(string)
	curriculum, _ := p.Args["CurriculumAbbr"].(string)
	number, _ := p.Args["CourseNumber"].(int)
	key, err := domain.NewCourseKey(year, quarter, curriculum, number)
	if err != nil {
		return nil, err
	}
	return b.src.SearchSection(p.Context, domain.SectionSearchParams{
		Year:                   &key.Year,
		Quarter:                &key.Quarter,
		CourseNumber:           &key.CourseNumber,
		CurriculumAbbreviation: &key.Curriculum,
		FutureTerms:            argString(p.Args, "FutureTerms"),
		RegID:                  argString(p.Args, "RegId"),
		SearchBy:               argString(p.Args, "SearchBy"),
		IncludeSecondaries:     argString(p.Args, "IncludeSecondaries"),
		ChangedSinceDate:       argString(p.Args, "ChangedSinceDate"),
		TranscriptableCourse:   argString(p.Args, "TranscriptableCourse"),
		PageStart:              argInt(p.Args, "PageStart"),
		PageSize:               argInt(p.Args, "PageSize"),
		FacilityCode:           argString(p.Args, "FacilityCode"),
		RoomNumber:             argString(p.Args, "RoomNumber"),
		SLN:                    argString(p.Args, "Sln"),
	})
}

// searchCollege pins the search to the term in session when CurrentTerm is
// set, waiting for the term before calling SWS.
func (b *builder) searchCollege(p graphql.ResolveParams) (interface{}, error) {
	quarter, err := argQuarter(p.Args, "Quarter")
	if err != nil {
		return nil, err
	}
	params := domain.CollegeSearchParams{
		CampusShortName: argString(p.Args, "CampusShortName"),
		Quarter:         quarter,
		Year:            argInt(p.Args, "Year"),
		FutureTerms:     argInt(p.Args, "FutureTerms"),
		PageSize:        argInt(p.Args, "PageSize"),
		PageStart:       argInt(p.Args, "PageStart"),
	}
	if current, _ := p.Args["CurrentTerm"].(bool); !current {
		return b.src.SearchCollege(p.Context, params)
	}

	wait := loaders(p).Term.Load(p.Context, domain.TermKey{})
	return func() (interface{}, error) {
		term, err := wait()
		if err != nil {
			return nil, err
		}
		key := term.Key()
		params.Year = &key.Year
		params.Quarter = &key.Quarter
		b.log.DebugContext(p.Context, "college search pinned to current term",
			"year", key.Year, "quarter", key.Quarter)
		return b.src.SearchCollege(p.Context, params)
	}, nil
}

func (b *builder) searchRegistration(p graphql.ResolveParams) (interface{}, error) {
	quarter, err := argQuarter(p.Args, "Quarter")
	if err != nil {
		return nil, err
	}
	return b.src.SearchRegistration(p.Context, domain.RegistrationSearchParams{
		ChangedSinceDate:       argString(p.Args, "ChangedSince"),
		CourseNumber:           argInt(p.Args, "CourseNumber"),
		CurriculumAbbreviation: argString(p.Args, "CurriculumAbbr"),
		InstructorRegID:        argString(p.Args, "InstructorRegID"),
		IsActive:               argBool(p.Args, "ActiveRegistration"),
		Quarter:                quarter,
		RegID:                  argString(p.Args, "RegID"),
		SectionID:              argString(p.Args, "SectionID"),
		TranscriptableCourse:   argBool(p.Args, "TranscriptableCourse"),
		Year:                   argInt(p.Args, "Year"),
		PageSize:               argInt(p.Args, "PageSize"),
		PageStart:              argInt(p.Args, "PageStart"),
	})
}
