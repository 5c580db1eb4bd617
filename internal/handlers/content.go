package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ytareq/portfolio/internal/content"
	"github.com/ytareq/portfolio/internal/models"
	"github.com/ytareq/portfolio/internal/services"
)

// RepositoryStatsProvider fetches live data for a project's GitHub link
type RepositoryStatsProvider interface {
	RepositoryStats(ctx context.Context, githubLink string) (*models.RepositoryStats, error)
}

// ContentHandler serves the static portfolio sections
type ContentHandler struct {
	github RepositoryStatsProvider
}

func NewContentHandler(github RepositoryStatsProvider) *ContentHandler {
	return &ContentHandler{github: github}
}

// Profile returns the about section: skills, milestones and hero phrases
func (h *ContentHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"heroPhrases": content.HeroPhrases,
		"skills":      content.Skills(""),
		"milestones":  content.Milestones(),
	})
}

func (h *ContentHandler) Skills(c *gin.Context) {
	skillType := models.SkillType(c.Query("type"))
	switch skillType {
	case "", models.SkillTypeFrontend, models.SkillTypeBackend, models.SkillTypeDevOps, models.SkillTypeSoft:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown skill type"})
		return
	}
	c.JSON(http.StatusOK, content.Skills(skillType))
}

func (h *ContentHandler) Experience(c *gin.Context) {
	c.JSON(http.StatusOK, content.Experience())
}

// Projects returns the projects carrying ?tag=, or all of them
func (h *ContentHandler) Projects(c *gin.Context) {
	c.JSON(http.StatusOK, content.FilterProjects(c.Query("tag")))
}

func (h *ContentHandler) ProjectTags(c *gin.Context) {
	c.JSON(http.StatusOK, content.ProjectTags())
}

func (h *ContentHandler) Project(c *gin.Context) {
	project, ok := h.lookupProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

// ProjectRepository returns GitHub stats for the project's repository
func (h *ContentHandler) ProjectRepository(c *gin.Context) {
	project, ok := h.lookupProject(c)
	if !ok {
		return
	}

	stats, err := h.github.RepositoryStats(c.Request.Context(), project.GithubLink)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, stats)
	case errors.Is(err, services.ErrInvalidRepositoryLink), errors.Is(err, services.ErrRepositoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Repository not available"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch repository stats"})
	}
}

func (h *ContentHandler) lookupProject(c *gin.Context) (models.Project, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return models.Project{}, false
	}

	project, ok := content.ProjectByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return models.Project{}, false
	}
	return project, true
}

// Tech returns one tab of the tech stack, or every item without ?category=
func (h *ContentHandler) Tech(c *gin.Context) {
	category := models.TechCategory(c.Query("category"))
	if category != "" && !isTechCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tech category"})
		return
	}
	c.JSON(http.StatusOK, content.TechByCategory(category))
}

func isTechCategory(category models.TechCategory) bool {
	for _, known := range content.TechCategories() {
		if known == category {
			return true
		}
	}
	return false
}

func (h *ContentHandler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, content.Testimonials())
}

func (h *ContentHandler) FAQs(c *gin.Context) {
	c.JSON(http.StatusOK, content.FAQs())
}
