package engine

import (
	"context"
	"fmt"
	"os"

	"cppstyle/internal/config"
	gh "cppstyle/internal/github"
	"cppstyle/internal/source"
)

// ResolveSource builds the file source for a run: a GitHub tree when
// --github-repo is set, local filesystem discovery otherwise.
func ResolveSource(ctx context.Context, cfg *config.Config) (source.Source, error) {
	if cfg.Targeting.GitHubRepo == "" {
		return source.NewLocalSource(cfg.Targeting.Paths)
	}

	token, tokenSource, err := gh.ResolveAuthToken(ctx, cfg.Targeting.Token)
	if err != nil {
		return nil, fmt.Errorf("resolving GitHub token: %w", err)
	}
	if cfg.Runtime.Verbose {
		if token == "" {
			fmt.Fprintln(os.Stderr, "[verbose] github: no token found, proceeding unauthenticated")
		} else {
			fmt.Fprintf(os.Stderr, "[verbose] github: using token from %s\n", tokenSource)
		}
	}

	client, err := gh.NewClient(ctx, token, gh.WithVerbose(cfg.Runtime.Verbose, os.Stderr))
	if err != nil {
		return nil, err
	}
	return source.NewGitHubSource(client, gh.NewRequestBudget(), cfg.Targeting.GitHubRepo, cfg.Targeting.Ref)
}
