package github

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

// AuthTokenSource names where a resolved token came from, for verbose
// diagnostics. The token itself is never logged.
type AuthTokenSource string

const (
	AuthTokenSourceExplicit AuthTokenSource = "explicit"
	AuthTokenSourceEnv      AuthTokenSource = "env:GITHUB_TOKEN"
	AuthTokenSourceGHCLI    AuthTokenSource = "gh"
)

// ResolveAuthToken picks a GitHub token: an explicit --token value wins,
// then GITHUB_TOKEN, then whatever `gh auth token` yields. An empty token
// with a nil error means unauthenticated access.
func ResolveAuthToken(ctx context.Context, explicit string) (string, AuthTokenSource, error) {
	if tok := strings.TrimSpace(explicit); tok != "" {
		return tok, AuthTokenSourceExplicit, nil
	}
	if tok := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); tok != "" {
		return tok, AuthTokenSourceEnv, nil
	}
	tok, err := ghCLIToken(ctx)
	if err != nil {
		return "", "", err
	}
	if tok != "" {
		return tok, AuthTokenSourceGHCLI, nil
	}
	return "", "", nil
}

// ghCLIToken asks the gh CLI for its stored token. A missing gh binary or a
// logged-out gh is not an error, just the absence of a token.
func ghCLIToken(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("gh"); err != nil {
		return "", nil
	}

	// Bound the subprocess so a wedged credential helper cannot stall a run.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "gh", "auth", "token", "-h", "github.com")
	cmd.Env = append(envWithout("GH_PAGER="), "GH_PAGER=cat")
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		// gh output is not surfaced; it may reference account details.
		return "", nil
	}

	tok := strings.TrimSpace(string(out))
	if tok == "" {
		return "", nil
	}
	if strings.ContainsAny(tok, " \t\n\r") {
		return "", errors.New("invalid token returned by gh: contains whitespace")
	}
	return tok, nil
}

func envWithout(prefix string) []string {
	env := os.Environ()
	kept := env[:0]
	for _, entry := range env {
		if !strings.HasPrefix(entry, prefix) {
			kept = append(kept, entry)
		}
	}
	return kept
}
