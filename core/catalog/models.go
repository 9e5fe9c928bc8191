package catalog

import (
	"strings"
	"time"

	"github.com/edupathpro/edupath/core"
)

// Item types, shared with bookmarks/applications.
const (
	ItemTypeCollege     = "college"
	ItemTypeCourse      = "course"
	ItemTypeScholarship = "scholarship"
	ItemTypeCareer      = "career"
	ItemTypeResource    = "resource"
)

// Resource types
const (
	ResourceEbook   = "ebook"
	ResourceVideo   = "video"
	ResourceCourse  = "course"
	ResourceWebsite = "website"
)

type (
	Location struct {
		District string `json:"district" bson:"district"`
		State    string `json:"state" bson:"state"`
		Pincode  string `json:"pincode,omitempty" bson:"pincode,omitempty"`
	}

	// CourseOffering is a course as offered by a specific college.
	CourseOffering struct {
		ID       string `json:"id" bson:"id"`
		Name     string `json:"name" bson:"name"`
		Duration string `json:"duration" bson:"duration"`
		Degree   string `json:"degree" bson:"degree"`
	}

	College struct {
		ID         string           `json:"id" bson:"_id"`
		Name       string           `json:"name" bson:"name"`
		Location   Location         `json:"location" bson:"location"`
		Courses    []CourseOffering `json:"courses" bson:"courses"`
		// Fees maps a course id to its yearly fee in INR.
		Fees map[string]int `json:"fees" bson:"fees"`
		// Cutoffs maps a course id to per-category cutoff scores.
		Cutoffs      map[string]map[string]float64 `json:"cutoffs" bson:"cutoffs"`
		Facilities   []string                      `json:"facilities" bson:"facilities"`
		IsGovernment bool                          `json:"is_government" bson:"isGovernment"`
	}

	Pathway struct {
		Title       string `json:"title" bson:"title"`
		Description string `json:"description,omitempty" bson:"description,omitempty"`
	}

	Course struct {
		ID          string    `json:"id" bson:"_id"`
		Name        string    `json:"name" bson:"name"`
		ShortName   string    `json:"short_name" bson:"shortName"`
		Field       string    `json:"field" bson:"field"` // free-text field label, eg. "Engineering"
		Duration    string    `json:"duration" bson:"duration"`
		Eligibility string    `json:"eligibility" bson:"eligibility"`
		Streams     []string  `json:"streams" bson:"streams"`
		Fee         int       `json:"fee" bson:"fee"`
		Rating      float64   `json:"rating" bson:"rating"`
		Provider    string    `json:"provider" bson:"provider"`
		CareerPaths []Pathway `json:"career_paths,omitempty" bson:"careerPaths,omitempty"`
	}

	ScholarshipEligibility struct {
		Categories    []string `json:"categories" bson:"categories"`
		Classes       []string `json:"classes" bson:"classes"`
		IncomeCeiling int      `json:"income_ceiling,omitempty" bson:"incomeCeiling,omitempty"`
	}

	Scholarship struct {
		ID                  string                 `json:"id" bson:"_id"`
		Name                string                 `json:"name" bson:"name"`
		Description         string                 `json:"description" bson:"description"`
		Amount              string                 `json:"amount" bson:"amount"`
		Eligibility         ScholarshipEligibility `json:"eligibility" bson:"eligibility"`
		ApplicationDeadline time.Time              `json:"application_deadline" bson:"applicationDeadline"`
		ApplicationLink     string                 `json:"application_link" bson:"applicationLink"`
		Provider            string                 `json:"provider" bson:"provider"`
	}

	SalaryRange struct {
		Min int `json:"min" bson:"min"` // INR per annum
		Max int `json:"max" bson:"max"`
	}

	JobRole struct {
		Title     string      `json:"title" bson:"title"`
		Salary    SalaryRange `json:"salary" bson:"salary"`
		Skills    []string    `json:"skills" bson:"skills"`
		Employers []string    `json:"employers" bson:"employers"`
	}

	CareerPath struct {
		ID              string      `json:"id" bson:"_id"`
		Title           string      `json:"title" bson:"title"`
		Field           string      `json:"field" bson:"field"`
		Description     string      `json:"description" bson:"description"`
		Salary          SalaryRange `json:"salary" bson:"salary"`
		JobRoles        []JobRole   `json:"job_roles" bson:"jobRoles"`
		HigherEducation []string    `json:"higher_education,omitempty" bson:"higherEducation,omitempty"`
		GovernmentExams []string    `json:"government_exams,omitempty" bson:"governmentExams,omitempty"`
	}

	Resource struct {
		ID          string   `json:"id" bson:"_id"`
		Title       string   `json:"title" bson:"title"`
		Description string   `json:"description" bson:"description"`
		Type        string   `json:"type" bson:"type"` // ebook | video | course | website
		Category    string   `json:"category" bson:"category"`
		Subjects    []string `json:"subjects" bson:"subjects"`
		URL         string   `json:"url" bson:"url"`
		Verified    bool     `json:"verified" bson:"verified"`
	}
)

// Query filters. Matching is applied in memory after retrieval; every set
// field must match (AND), Search matches case-insensitively on display fields.

type CollegeFilter struct {
	Search     string `query:"search"`
	State      string `query:"state"`
	District   string `query:"district"`
	CourseID   string `query:"course"`
	Government *bool  `query:"government"`
}

func (f *CollegeFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.State = core.CleanString(f.State)
	f.District = core.CleanString(f.District)
	f.CourseID = core.CleanString(f.CourseID)
}

func (f CollegeFilter) Match(c College) bool {
	if f.Search != "" && !containsFold(f.Search, c.Name, c.Location.District, c.Location.State) {
		return false
	}
	if f.State != "" && !strings.EqualFold(f.State, c.Location.State) {
		return false
	}
	if f.District != "" && !strings.EqualFold(f.District, c.Location.District) {
		return false
	}
	if f.CourseID != "" {
		var offered bool
		for _, co := range c.Courses {
			if co.ID == f.CourseID {
				offered = true
				break
			}
		}
		if !offered {
			return false
		}
	}
	if f.Government != nil && c.IsGovernment != *f.Government {
		return false
	}
	return true
}

type CourseFilter struct {
	Search string `query:"search"`
	Stream string `query:"stream"`
	Field  string `query:"field"`
}

func (f *CourseFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Stream = core.CleanString(f.Stream)
	f.Field = core.CleanString(f.Field)
}

func (f CourseFilter) Match(c Course) bool {
	if f.Search != "" && !containsFold(f.Search, c.Name, c.ShortName, c.Field, c.Provider) {
		return false
	}
	if f.Stream != "" {
		var tagged bool
		for _, s := range c.Streams {
			if strings.EqualFold(s, f.Stream) {
				tagged = true
				break
			}
		}
		if !tagged {
			return false
		}
	}
	if f.Field != "" && !strings.EqualFold(f.Field, c.Field) {
		return false
	}
	return true
}

type ScholarshipFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Class    string `query:"class"`
	Status   string `query:"status"` // expired | urgent | active
}

func (f *ScholarshipFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Category = core.CleanString(f.Category, true /* lower */)
	f.Class = core.CleanString(f.Class, true /* lower */)
	f.Status = core.CleanString(f.Status, true /* lower */)
}

func (f ScholarshipFilter) Match(s Scholarship, now time.Time) bool {
	if f.Search != "" && !containsFold(f.Search, s.Name, s.Description, s.Provider) {
		return false
	}
	if f.Category != "" && !containsAnyFold(f.Category, s.Eligibility.Categories) {
		return false
	}
	if f.Class != "" && !containsAnyFold(f.Class, s.Eligibility.Classes) {
		return false
	}
	if f.Status != "" && string(s.Status(now)) != f.Status {
		return false
	}
	return true
}

type CareerFilter struct {
	Search string `query:"search"`
	Field  string `query:"field"`
}

func (f *CareerFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Field = core.CleanString(f.Field)
}

func (f CareerFilter) Match(c CareerPath) bool {
	if f.Search != "" && !containsFold(f.Search, c.Title, c.Field, c.Description) {
		return false
	}
	if f.Field != "" && !strings.EqualFold(f.Field, c.Field) {
		return false
	}
	return true
}

type ResourceFilter struct {
	Search   string `query:"search"`
	Type     string `query:"type"`
	Category string `query:"category"`
	Subject  string `query:"subject"`
	Verified *bool  `query:"verified"`
}

func (f *ResourceFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Type = core.CleanString(f.Type, true /* lower */)
	f.Category = core.CleanString(f.Category)
	f.Subject = core.CleanString(f.Subject)
}

func (f ResourceFilter) Match(r Resource) bool {
	if f.Search != "" && !containsFold(f.Search, r.Title, r.Description, r.Category) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(f.Type, r.Type) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(f.Category, r.Category) {
		return false
	}
	if f.Subject != "" && !containsAnyFold(f.Subject, r.Subjects) {
		return false
	}
	if f.Verified != nil && r.Verified != *f.Verified {
		return false
	}
	return true
}

// containsFold reports whether any of the candidates contains `search`,
// case-insensitively.
func containsFold(search string, candidates ...string) bool {
	search = strings.ToLower(search)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), search) {
			return true
		}
	}
	return false
}

// containsAnyFold reports whether `val` equals any of the values,
// case-insensitively.
func containsAnyFold(val string, values []string) bool {
	for _, v := range values {
		if strings.EqualFold(v, val) {
			return true
		}
	}
	return false
}
