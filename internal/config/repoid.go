package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// RepoID returns an 8 hex character identifier for repo, derived from its
// origin URL, or from its common git directory when there is no origin.
// Clones of the same remote share an ID wherever they live on disk.
func RepoID(ctx context.Context, repo Repository) string {
	input, ok := repo.OriginURL(ctx)
	if !ok {
		input = repo.CommonDir()
	}

	sum := sha256.Sum256([]byte(NormalizeURL(input)))
	return hex.EncodeToString(sum[:4])
}

// NormalizeURL lower-cases url and strips surrounding whitespace and any
// trailing "/" or ".git", so equivalent spellings of a remote compare equal.
// NormalizeURL(NormalizeURL(u)) == NormalizeURL(u).
func NormalizeURL(url string) string {
	s := strings.ToLower(url)
	for {
		trimmed := strings.TrimSpace(s)
		trimmed = strings.TrimSuffix(trimmed, "/")
		trimmed = strings.TrimSuffix(trimmed, ".git")
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
