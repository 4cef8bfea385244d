package source

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"

	"cppstyle/internal/github"
)

// GitHubSource reads C++ files from a GitHub repository at a given ref,
// without cloning. Discovery lists the git tree recursively; reads fetch
// individual blobs, deduplicated by SHA so identical files cost a single
// API request.
type GitHubSource struct {
	client *github.Client
	budget *github.RequestBudget
	owner  string
	repo   string
	ref    string

	group singleflight.Group
}

// ParseRepo splits an "owner/name" spec.
func ParseRepo(spec string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimSpace(spec), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: want owner/name", spec)
	}
	return parts[0], parts[1], nil
}

func NewGitHubSource(client *github.Client, budget *github.RequestBudget, repoSpec, ref string) (*GitHubSource, error) {
	if client == nil {
		return nil, fmt.Errorf("github source: client is nil")
	}
	if budget == nil {
		budget = github.NewRequestBudget()
	}
	owner, name, err := ParseRepo(repoSpec)
	if err != nil {
		return nil, err
	}
	return &GitHubSource{
		client: client,
		budget: budget,
		owner:  owner,
		repo:   name,
		ref:    ref,
	}, nil
}

func (s *GitHubSource) Discover(ctx context.Context) ([]FileRef, error) {
	ref := s.ref
	if ref == "" {
		var err error
		ref, err = s.defaultBranch(ctx)
		if err != nil {
			return nil, err
		}
	}

	if err := s.budget.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	tree, resp, err := s.client.Client.Git.GetTree(ctx, s.owner, s.repo, ref, true)
	if resp != nil {
		s.budget.UpdateFromResponse(resp.Response)
	}
	if err != nil {
		return nil, fmt.Errorf("listing tree of %s/%s@%s: %w", s.owner, s.repo, ref, err)
	}

	var refs []FileRef
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		path := entry.GetPath()
		if !IsCXXFile(path) {
			continue
		}
		refs = append(refs, FileRef{Path: path, SHA: entry.GetSHA()})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })

	if tree.GetTruncated() {
		return refs, fmt.Errorf("tree listing for %s/%s@%s was truncated by the API", s.owner, s.repo, ref)
	}
	return refs, nil
}

func (s *GitHubSource) Read(ctx context.Context, ref FileRef) ([]byte, error) {
	if ref.SHA == "" {
		return nil, fmt.Errorf("github source: file %q has no blob SHA", ref.Path)
	}

	v, err, _ := s.group.Do(ref.SHA, func() (any, error) {
		if err := s.budget.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		content, resp, err := s.client.Client.Git.GetBlobRaw(ctx, s.owner, s.repo, ref.SHA)
		if resp != nil {
			s.budget.UpdateFromResponse(resp.Response)
		}
		if err != nil {
			return nil, fmt.Errorf("fetching blob %s (%s): %w", ref.SHA, ref.Path, err)
		}
		return content, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *GitHubSource) defaultBranch(ctx context.Context) (string, error) {
	if err := s.budget.Acquire(ctx, 1); err != nil {
		return "", err
	}
	repo, resp, err := s.client.Client.Repositories.Get(ctx, s.owner, s.repo)
	if resp != nil {
		s.budget.UpdateFromResponse(resp.Response)
	}
	if err != nil {
		return "", fmt.Errorf("resolving default branch of %s/%s: %w", s.owner, s.repo, err)
	}
	branch := repo.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf("repository %s/%s has no default branch", s.owner, s.repo)
	}
	return branch, nil
}
