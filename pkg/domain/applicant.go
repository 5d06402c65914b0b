package domain

import "time"

// Applicant extends a User with job-seeker state. Skills, experience and
// education entries are owned exclusively by the applicant and replaced
// wholesale on update; there are no partial-diff updates.
type Applicant struct {
	UserID     UserID `json:"userId"`
	ResumeLink string `json:"resumeLink"`

	CreatedAt time.Time `json:"createdAt"`
}

// Experience is a single work-history entry. When Current is true the entry
// represents an ongoing role and EndDate must be nil; the profile
// synchronizer enforces this rather than trusting input.
type Experience struct {
	Employer    string     `json:"employer"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// Education is a single education-history entry.
type Education struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	GPA         string     `json:"gpa,omitempty"`
}
