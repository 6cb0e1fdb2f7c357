// Package worktree maps branch names onto worktree directory names.
package worktree

import "strings"

// Slug turns a branch name into a single path segment by replacing every
// "/" with "-". "feature/login" becomes "feature-login".
func Slug(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}
