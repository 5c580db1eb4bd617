package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/ytareq/portfolio/internal/models"
	"golang.org/x/oauth2"
)

var (
	// ErrInvalidRepositoryLink is returned for links that are not github.com/<owner>/<repo>
	ErrInvalidRepositoryLink = errors.New("not a GitHub repository link")
	// ErrRepositoryNotFound is returned when GitHub does not know the repository
	ErrRepositoryNotFound = errors.New("repository not found")
)

const statsCacheTTL = 10 * time.Minute

type cachedStats struct {
	stats     *models.RepositoryStats
	fetchedAt time.Time
}

// GitHubService looks up live repository data for showcase projects
type GitHubService struct {
	client *github.Client
	mu     sync.Mutex
	cache  map[string]cachedStats
	now    func() time.Time
}

// NewGitHubService creates a GitHub client, authenticated when token is set
func NewGitHubService(token string) *GitHubService {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return NewGitHubServiceWithClient(github.NewClient(httpClient))
}

// NewGitHubServiceWithClient wraps an existing go-github client
func NewGitHubServiceWithClient(client *github.Client) *GitHubService {
	return &GitHubService{
		client: client,
		cache:  make(map[string]cachedStats),
		now:    time.Now,
	}
}

// ParseRepositoryLink extracts owner and repository name from a GitHub URL
func ParseRepositoryLink(link string) (string, string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", "", ErrInvalidRepositoryLink
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return "", "", ErrInvalidRepositoryLink
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidRepositoryLink
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// RepositoryStats returns stars, forks and activity for the repository
// behind githubLink. Results are cached for a few minutes.
func (s *GitHubService) RepositoryStats(ctx context.Context, githubLink string) (*models.RepositoryStats, error) {
	owner, name, err := ParseRepositoryLink(githubLink)
	if err != nil {
		return nil, err
	}
	key := strings.ToLower(owner + "/" + name)

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok && s.now().Sub(cached.fetchedAt) < statsCacheTTL {
		return cached.stats, nil
	}

	repo, resp, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, name, err)
	}

	stats := &models.RepositoryStats{
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Language:      repo.GetLanguage(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
	}
	if repo.PushedAt != nil {
		stats.PushedAt = repo.GetPushedAt().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	s.cache[key] = cachedStats{stats: stats, fetchedAt: s.now()}
	s.mu.Unlock()

	return stats, nil
}
