package domain

// JobSummary is what a single listing card gives us before any detail fetch.
type JobSummary struct {
	Title       string
	CompanyName string
	Link        string // canonical: query string stripped
	PostedText  string // free text, e.g. "3 hours ago"
}

// JobDetail holds the parts of a job page the classifier looks at.
type JobDetail struct {
	Description string // full description text, lowercased
	QualText    string // list items mentioning "year", lowercased
}

type RejectReason string

const (
	RejectStale      RejectReason = "stale"
	RejectFilter     RejectReason = "filter"
	RejectExperience RejectReason = "experience"
)

// Decision is the classifier's verdict for one card.
type Decision struct {
	Job      JobSummary
	Accepted bool
	Reason   RejectReason // empty when accepted
	Note     string       // human-readable detail for logs
}

func Accept(j JobSummary) Decision {
	return Decision{Job: j, Accepted: true}
}

func Reject(j JobSummary, r RejectReason, note string) Decision {
	return Decision{Job: j, Reason: r, Note: note}
}
