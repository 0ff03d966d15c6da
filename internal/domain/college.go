package domain

// College is an academic college of a campus.
type College struct {
	CampusShortName           string `json:"CampusShortName"`
	CollegeAbbreviation       string `json:"CollegeAbbreviation"`
	CollegeName               string `json:"CollegeName"`
	CollegeFullName           string `json:"CollegeFullName"`
	CollegeFullNameTitleCased string `json:"CollegeFullNameTitleCased"`
	CollegeShortName          string `json:"CollegeShortName"`
	Href                      string `json:"Href"`
}

// CollegeSearchResult is the response of college.json.
type CollegeSearchResult struct {
	Page
	Colleges []College `json:"Colleges"`
}
