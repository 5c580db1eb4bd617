package models

// SkillType groups skills on the about section
type SkillType string

const (
	SkillTypeFrontend SkillType = "frontend"
	SkillTypeBackend  SkillType = "backend"
	SkillTypeDevOps   SkillType = "devops"
	SkillTypeSoft     SkillType = "soft"
)

type Skill struct {
	Name string    `json:"name"`
	Type SkillType `json:"type"`
}

// EntryType separates work history from education
type EntryType string

const (
	EntryTypeWork      EntryType = "work"
	EntryTypeEducation EntryType = "education"
)

type Milestone struct {
	Year        string    `json:"year"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        EntryType `json:"type"`
}

type ExperienceItem struct {
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Type         EntryType `json:"type"`
}

// Project is a showcase entry
type Project struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	LongDescription string   `json:"longDescription"`
	Tags            []string `json:"tags"`
	LiveLink        string   `json:"liveLink"`
	GithubLink      string   `json:"githubLink"`
	Features        []string `json:"features"`
}

// HasTag reports whether the project is labelled with tag
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TechCategory is one tab of the tech stack section
type TechCategory string

const (
	TechCategoryFrontend TechCategory = "frontend"
	TechCategoryBackend  TechCategory = "backend"
	TechCategoryDevOps   TechCategory = "devops"
	TechCategoryTools    TechCategory = "tools"
)

// TechItem is a technology with years of experience
type TechItem struct {
	Name       string       `json:"name"`
	Icon       string       `json:"icon"`
	Experience float64      `json:"experience"`
	Category   TechCategory `json:"category"`
}

type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Image   string `json:"image"`
	Quote   string `json:"quote"`
	Rating  int    `json:"rating"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RepositoryStats is live GitHub data for a showcase project
type RepositoryStats struct {
	FullName      string `json:"fullName"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	Stars         int    `json:"stars"`
	Forks         int    `json:"forks"`
	OpenIssues    int    `json:"openIssues"`
	DefaultBranch string `json:"defaultBranch"`
	PushedAt      string `json:"pushedAt,omitempty"`
	HTMLURL       string `json:"htmlUrl"`
}
