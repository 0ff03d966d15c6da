// Package schema builds the GraphQL type graph over SWS. Entity lookups go
// through the request's DataLoaders; searches pass straight through to SWS.
package schema

import (
	"context"
	"log/slog"

	"github.com/graphql-go/graphql"

	"github.com/heartmarshall/swsgraph/internal/domain"
)

// Source is the pass-through part of the SWS client used by root and nested
// search fields. *sws.Client implements it.
type Source interface {
	SearchCurriculum(ctx context.Context, p domain.CurriculumSearchParams) (*domain.CurriculumSearchResult, error)
	GetCurriculum(ctx context.Context, year int, quarter, deptAbbr string) (*domain.Curriculum, error)
	SearchCourse(ctx context.Context, p domain.CourseSearchParams) (*domain.CourseSearchResult, error)
	SearchSection(ctx context.Context, p domain.SectionSearchParams) (*domain.SectionSearchResult, error)
	SearchPerson(ctx context.Context, p domain.PersonSearchParams) (*domain.PersonSearchResult, error)
	SearchCollege(ctx context.Context, p domain.CollegeSearchParams) (*domain.CollegeSearchResult, error)
	GetCollege(ctx context.Context, abbr string) (*domain.College, error)
	SearchRegistration(ctx context.Context, p domain.RegistrationSearchParams) (*domain.RegistrationSearchResult, error)
	GetEnrollment(ctx context.Context, year int, quarter, regID string) (*domain.Enrollment, error)
}

type builder struct {
	src Source
	log *slog.Logger

	term               *graphql.Object
	baseTerm           *graphql.Object
	curriculum         *graphql.Object
	curriculumSearch   *graphql.Object
	course             *graphql.Object
	courseKey          *graphql.Object
	courseRef          *graphql.Object
	courseSearch       *graphql.Object
	section            *graphql.Object
	sectionKey         *graphql.Object
	baseSection        *graphql.Object
	meeting            *graphql.Object
	instructor         *graphql.Object
	sectionSearch      *graphql.Object
	person             *graphql.Object
	personRef          *graphql.Object
	personSearch       *graphql.Object
	college            *graphql.Object
	collegeSearch      *graphql.Object
	registration       *graphql.Object
	registrationSearch *graphql.Object
	enrollment         *graphql.Object
	enrollmentRef      *graphql.Object
	enrollmentSearch   *graphql.Object
	major              *graphql.Object
}

// New builds the executable schema. Resolvers expect the request context to
// carry DataLoaders (see dataloader.Middleware).
func New(src Source, logger *slog.Logger) (graphql.Schema, error) {
	b := &builder{src: src, log: logger.With("component", "graphql.schema")}
	b.defineTypes()
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: b.queryFields(),
		}),
	})
}

// object declares a type whose fields are built lazily, so types may refer
// to each other in cycles (Term.Next -> BaseTerm.Term -> Term).
func object(name, desc string, fields func() graphql.Fields) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        name,
		Description: desc,
		Fields:      graphql.FieldsThunk(fields),
	})
}

func (b *builder) defineTypes() {
	b.term = object("Term", "An academic quarter.", b.termFields)
	b.baseTerm = object("BaseTerm", "A reference to a term.", b.baseTermFields)
	b.curriculum = object("Curriculum", "A subject area offered in a term.", b.curriculumFields)
	b.curriculumSearch = object("CurriculumSearch", "", b.curriculumSearchFields)
	b.course = object("Course", "A course offering in a term.", b.courseFields)
	b.courseKey = object("CourseKey", "The arguments a course was fetched with.", b.courseKeyFields)
	b.courseRef = object("CourseRef", "A course row in search results.", b.courseRefFields)
	b.courseSearch = object("CourseSearch", "", b.courseSearchFields)
	b.section = object("Section", "A section of a course offering.", b.sectionFields)
	b.sectionKey = object("SectionKey", "The arguments a section was fetched with.", b.sectionKeyFields)
	b.baseSection = object("BaseSection", "A reference to a section.", b.baseSectionFields)
	b.meeting = object("Meeting", "", b.meetingFields)
	b.instructor = object("Instructor", "", b.instructorFields)
	b.sectionSearch = object("SectionSearch", "", b.sectionSearchFields)
	b.person = object("SWSPerson", "A person known to SWS.", b.personFields)
	b.personRef = object("SWSPersonRef", "A reference to an SWS person.", b.personRefFields)
	b.personSearch = object("SWSPersonSearch", "", b.personSearchFields)
	b.college = object("College", "", b.collegeFields)
	b.collegeSearch = object("CollegeSearch", "", b.collegeSearchFields)
	b.registration = object("Registration", "A person's registration in a section.", b.registrationFields)
	b.registrationSearch = object("RegistrationSearch", "", b.registrationSearchFields)
	b.enrollment = object("Enrollment", "A student's enrollment for one term.", b.enrollmentFields)
	b.enrollmentRef = object("EnrollmentRef", "", b.enrollmentRefFields)
	b.enrollmentSearch = object("EnrollmentSearch", "", b.enrollmentSearchFields)
	b.major = object("Major", "A declared major or minor.", b.majorFields)
}
