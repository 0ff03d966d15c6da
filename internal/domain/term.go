package domain

// Term is an academic quarter as described by SWS term resources.
type Term struct {
	Year                    int      `json:"Year"`
	Quarter                 string   `json:"Quarter"`
	FirstDay                string   `json:"FirstDay"`
	LastDayOfClasses        string   `json:"LastDayOfClasses"`
	LastAddDay              string   `json:"LastAddDay"`
	LastDropDay             string   `json:"LastDropDay"`
	CensusDay               string   `json:"CensusDay"`
	ATermLastDay            string   `json:"ATermLastDay"`
	BTermFirstDay           string   `json:"BTermFirstDay"`
	LastFinalExamDay        string   `json:"LastFinalExamDay"`
	GradeSubmissionDeadline string   `json:"GradeSubmissionDeadline"`
	Next                    *TermRef `json:"Next"`
	Previous                *TermRef `json:"Previous"`
}

// Key returns the key the term can be fetched again by.
func (t Term) Key() TermKey {
	return TermRef{Year: t.Year, Quarter: t.Quarter}.Key()
}

// TermRef is the abbreviated term SWS embeds in other resources.
type TermRef struct {
	Year    int    `json:"Year"`
	Quarter string `json:"Quarter"`
	Href    string `json:"Href"`
}

// Key returns the referenced term's key, normalizing the quarter.
func (r TermRef) Key() TermKey {
	q, err := NormalizeQuarter(r.Quarter)
	if err != nil {
		q = r.Quarter
	}
	return TermKey{Year: r.Year, Quarter: q}
}
