// Package content holds the static portfolio data and the pure selections made over it.
package content

import (
	"sort"

	"github.com/ytareq/portfolio/internal/models"
)

// Skills returns every skill, or only those of the given type when t is set
func Skills(t models.SkillType) []models.Skill {
	if t == "" {
		return clone(skills)
	}
	out := make([]models.Skill, 0, len(skills))
	for _, s := range skills {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

func Milestones() []models.Milestone {
	return clone(milestones)
}

func Experience() []models.ExperienceItem {
	return clone(experience)
}

// FilterProjects returns the projects tagged with tag, or all of them for an empty tag
func FilterProjects(tag string) []models.Project {
	if tag == "" {
		return clone(projects)
	}
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// ProjectTags returns the sorted set of tags used by any project
func ProjectTags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range projects {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

// ProjectByID looks up a showcase project
func ProjectByID(id int) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// TechByCategory returns the items of one tech stack tab, or all items for an empty category
func TechByCategory(category models.TechCategory) []models.TechItem {
	if category == "" {
		return clone(techStack)
	}
	out := make([]models.TechItem, 0, len(techStack))
	for _, item := range techStack {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// TechCategories lists the tabs in display order
func TechCategories() []models.TechCategory {
	return []models.TechCategory{
		models.TechCategoryFrontend,
		models.TechCategoryBackend,
		models.TechCategoryDevOps,
		models.TechCategoryTools,
	}
}

func Testimonials() []models.Testimonial {
	return clone(testimonials)
}

func FAQs() []models.FAQ {
	return clone(faqs)
}

// clone copies the top-level slice so callers can reorder or append freely
func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
