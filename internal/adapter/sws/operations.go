package sws

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/swsgraph/internal/domain"
)

// GetTerm fetches term/{year,quarter}.json, or term/current.json for the
// zero key.
func (c *Client) GetTerm(ctx context.Context, key domain.TermKey) (*domain.Term, error) {
	var t domain.Term
	if err := c.get(ctx, "term/"+keyPath(key.String())+".json", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// SearchCurriculum searches curriculum.json. Rows without a term inherit the
// year and quarter that were searched.
func (c *Client) SearchCurriculum(ctx context.Context, p domain.CurriculumSearchParams) (*domain.CurriculumSearchResult, error) {
	var res domain.CurriculumSearchResult
	if err := c.get(ctx, "curriculum.json", p.Values(), &res); err != nil {
		return nil, err
	}
	for i := range res.Curricula {
		cur := &res.Curricula[i]
		if cur.Year == 0 && p.Year != nil {
			cur.Year = *p.Year
		}
		if cur.Quarter == "" && p.Quarter != nil {
			cur.Quarter = *p.Quarter
		}
	}
	return &res, nil
}

// GetCurriculum returns the curriculum of a department in a term: the row
// whose department or curriculum abbreviation matches deptAbbr, or the first
// row SWS returned.
func (c *Client) GetCurriculum(ctx context.Context, year int, quarter, deptAbbr string) (*domain.Curriculum, error) {
	p := domain.CurriculumSearchParams{Year: &year, Quarter: &quarter}
	if deptAbbr != "" {
		p.DepartmentAbbreviation = &deptAbbr
	}

	res, err := c.SearchCurriculum(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(res.Curricula) == 0 {
		return nil, fmt.Errorf("sws: curriculum %s: %w", domain.CompositeKey(year, quarter, deptAbbr), domain.ErrNotFound)
	}

	for i := range res.Curricula {
		cur := &res.Curricula[i]
		if strings.EqualFold(cur.DepartmentAbbreviation, deptAbbr) || strings.EqualFold(cur.CurriculumAbbreviation, deptAbbr) {
			return cur, nil
		}
	}
	return &res.Curricula[0], nil
}

// SearchCourse searches course.json.
func (c *Client) SearchCourse(ctx context.Context, p domain.CourseSearchParams) (*domain.CourseSearchResult, error) {
	var res domain.CourseSearchResult
	if err := c.get(ctx, "course.json", p.Values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetCourse fetches one course offering. The result's Key is set to key.
func (c *Client) GetCourse(ctx context.Context, key domain.CourseKey) (*domain.Course, error) {
	var course domain.Course
	if err := c.get(ctx, "course/"+keyPath(key.String())+".json", nil, &course); err != nil {
		return nil, err
	}
	course.Key = key
	return &course, nil
}

// GetSection fetches one section; sections live under the course resource
// as course/{year,quarter,curriculum,number/section}.json. The result's Key
// is set to key.
func (c *Client) GetSection(ctx context.Context, key domain.SectionKey) (*domain.Section, error) {
	var sec domain.Section
	if err := c.get(ctx, "course/"+keyPath(key.String())+".json", nil, &sec); err != nil {
		return nil, err
	}
	sec.Key = key
	return &sec, nil
}

// SearchSection searches section.json.
func (c *Client) SearchSection(ctx context.Context, p domain.SectionSearchParams) (*domain.SectionSearchResult, error) {
	var res domain.SectionSearchResult
	if err := c.get(ctx, "section.json", p.Values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetPerson fetches person/{regid}.json.
func (c *Client) GetPerson(ctx context.Context, regID string) (*domain.Person, error) {
	if strings.TrimSpace(regID) == "" {
		return nil, domain.NewValidationError("RegID", "required")
	}
	var person domain.Person
	if err := c.get(ctx, "person/"+url.PathEscape(regID)+".json", nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// SearchPerson searches person.json.
func (c *Client) SearchPerson(ctx context.Context, p domain.PersonSearchParams) (*domain.PersonSearchResult, error) {
	var res domain.PersonSearchResult
	if err := c.get(ctx, "person.json", p.Values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchCollege searches college.json.
func (c *Client) SearchCollege(ctx context.Context, p domain.CollegeSearchParams) (*domain.CollegeSearchResult, error) {
	var res domain.CollegeSearchResult
	if err := c.get(ctx, "college.json", p.Values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetCollege fetches college/{abbr}.json.
func (c *Client) GetCollege(ctx context.Context, abbr string) (*domain.College, error) {
	if strings.TrimSpace(abbr) == "" {
		return nil, domain.NewValidationError("CollegeAbbreviation", "required")
	}
	var college domain.College
	if err := c.get(ctx, "college/"+url.PathEscape(abbr)+".json", nil, &college); err != nil {
		return nil, err
	}
	return &college, nil
}

// SearchRegistration searches registration.json.
func (c *Client) SearchRegistration(ctx context.Context, p domain.RegistrationSearchParams) (*domain.RegistrationSearchResult, error) {
	var res domain.RegistrationSearchResult
	if err := c.get(ctx, "registration.json", p.Values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchEnrollment lists a student's enrollments. Rows without a reg id
// inherit the one searched.
func (c *Client) SearchEnrollment(ctx context.Context, regID string) (*domain.EnrollmentSearchResult, error) {
	if strings.TrimSpace(regID) == "" {
		return nil, domain.NewValidationError("RegID", "required")
	}
	var res domain.EnrollmentSearchResult
	if err := c.get(ctx, "enrollment.json", url.Values{"reg_id": {regID}}, &res); err != nil {
		return nil, err
	}
	for i := range res.Enrollments {
		if res.Enrollments[i].RegID == "" {
			res.Enrollments[i].RegID = regID
		}
	}
	return &res, nil
}

// GetEnrollment fetches enrollment/{year},{quarter},{regid}.json.
func (c *Client) GetEnrollment(ctx context.Context, year int, quarter, regID string) (*domain.Enrollment, error) {
	if strings.TrimSpace(regID) == "" {
		return nil, domain.NewValidationError("RegID", "required")
	}
	key := keyPath(domain.CompositeKey(strconv.Itoa(year), quarter, regID))
	var e domain.Enrollment
	if err := c.get(ctx, "enrollment/"+key+".json", nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
