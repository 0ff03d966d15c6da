package domain

// Person is an SWS person resource.
type Person struct {
	RegID            string `json:"RegID"`
	UWNetID          string `json:"UWNetID"`
	Name             string `json:"Name"`
	FirstName        string `json:"FirstName"`
	LastName         string `json:"LastName"`
	StudentName      string `json:"StudentName"`
	StudentNumber    string `json:"StudentNumber"`
	StudentSystemKey string `json:"StudentSystemKey"`
	EmployeeID       string `json:"EmployeeID"`
	Email            string `json:"Email"`
	DirectoryRelease bool   `json:"DirectoryRelease"`
	Href             string `json:"Href"`
}

// PersonRef is the abbreviated person SWS embeds in other resources.
type PersonRef struct {
	RegID string `json:"RegID"`
	Name  string `json:"Name"`
	Href  string `json:"Href"`
}

// PersonSearchResult is the response of person.json.
type PersonSearchResult struct {
	Page
	Persons []PersonRef `json:"Persons"`
}
