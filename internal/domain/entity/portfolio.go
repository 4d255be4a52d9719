// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// Project categories recognized by the gallery filter. CategoryAll is a
// meta-category matching every project and is never stored on a project.
const (
	CategoryCybersecurity  = "Cybersecurity"
	CategoryAI             = "AI"
	CategoryCloudComputing = "Cloud Computing"
	CategoryFullStack      = "Full Stack"
	CategoryOther          = "Other"
	CategoryAll            = "All"
)

// migratedSkillLevel is assigned to skills stored in the legacy flat-string
// form, which carries no proficiency information.
const migratedSkillLevel = 50

// ContactInfo is the flat contact record on the portfolio document.
// Email is required by convention; everything else is optional.
type ContactInfo struct {
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	ResumeLink string `json:"resumeLink,omitempty"`
}

// Experience is one entry in the work history.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Years       string `json:"years"`
	Description string `json:"description"`
}

// Project is one entry in the projects gallery.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	TechUsed    []string `json:"techUsed"`
	Challenges  string   `json:"challenges,omitempty"`
	LiveLink    string   `json:"liveLink,omitempty"`
	GithubLink  string   `json:"githubLink,omitempty"`
}

// Course is one entry in the courses/certifications list.
type Course struct {
	Name        string `json:"name"`
	Certificate string `json:"certificate"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Skill is a named skill with a 0-100 proficiency level.
//
// Older documents stored skills as plain strings. UnmarshalJSON accepts both
// shapes so that legacy documents decode cleanly; the record form is written
// back on the next save, which migrates the document in place.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// UnmarshalJSON decodes either the legacy flat-string form or the record form.
func (s *Skill) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		s.Level = migratedSkillLevel

		return nil
	}

	type skillRecord Skill
	var rec skillRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*s = Skill(rec)

	return nil
}

// TrackedInterest is a topic the owner follows, shown as a linked card.
type TrackedInterest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

// BlogPost is one entry in the blog section.
type BlogPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// PortfolioDocument is the single aggregate holding all publicly displayed
// content. Exactly one exists per deployment.
type PortfolioDocument struct {
	About            string             `json:"about"`
	Contact          ContactInfo        `json:"contact"`
	Experience       []Experience       `json:"experience"`
	Projects         []Project          `json:"projects"`
	Courses          []Course           `json:"courses"`
	Skills           map[string][]Skill `json:"skills"`
	Achievements     []string           `json:"achievements"`
	TrackedInterests []TrackedInterest  `json:"trackedInterests"`
	BlogPosts        []BlogPost         `json:"blogPosts"`
	ProfileImage     string             `json:"profileImage"`
}

// Normalize enforces the document invariants: every array-valued field is a
// non-nil sequence and ProfileImage resolves to something displayable.
// Renderers need no null-checks beyond this.
func (d *PortfolioDocument) Normalize(placeholderImage string) {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Images == nil {
			d.Projects[i].Images = []string{}
		}
		if d.Projects[i].TechUsed == nil {
			d.Projects[i].TechUsed = []string{}
		}
	}
	if d.Courses == nil {
		d.Courses = []Course{}
	}
	if d.Skills == nil {
		d.Skills = map[string][]Skill{}
	}
	for category, skills := range d.Skills {
		if skills == nil {
			d.Skills[category] = []Skill{}
		}
	}
	if d.Achievements == nil {
		d.Achievements = []string{}
	}
	if d.TrackedInterests == nil {
		d.TrackedInterests = []TrackedInterest{}
	}
	if d.BlogPosts == nil {
		d.BlogPosts = []BlogPost{}
	}
	for i := range d.BlogPosts {
		if d.BlogPosts[i].Tags == nil {
			d.BlogPosts[i].Tags = []string{}
		}
	}
	if d.ProfileImage == "" {
		d.ProfileImage = placeholderImage
	}
}

// ProjectsByCategory returns the projects matching the given category label.
// CategoryAll (and the empty string) match everything.
func (d *PortfolioDocument) ProjectsByCategory(category string) []Project {
	if category == "" || category == CategoryAll {
		return d.Projects
	}

	matched := make([]Project, 0, len(d.Projects))
	for _, p := range d.Projects {
		if p.Category == category {
			matched = append(matched, p)
		}
	}

	return matched
}

// DefaultDocument returns the document seeded on first run when no portfolio
// exists yet. All sequences are present and empty.
func DefaultDocument(placeholderImage string) *PortfolioDocument {
	doc := &PortfolioDocument{
		About: "Welcome! This portfolio has not been filled in yet.",
		Contact: ContactInfo{
			Email: "owner@example.com",
		},
	}
	doc.Normalize(placeholderImage)

	return doc
}
