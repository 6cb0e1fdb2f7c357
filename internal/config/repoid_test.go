package config

import (
	"context"
	"regexp"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/user/repo.git", "https://github.com/user/repo"},
		{"git@github.com:user/repo.git/", "git@github.com:user/repo"},
		{"  https://GitHub.com/User/Repo  ", "https://github.com/user/repo"},
		{"https://github.com/user/repo/", "https://github.com/user/repo"},
		{"https://github.com/user/repo", "https://github.com/user/repo"},
		{"/home/u/src/app/.git", "/home/u/src/app"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeURL(tt.url); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://github.com/user/repo.git",
		"git@github.com:user/repo.git/",
		"repo.git/.git",
		"repo.GIT",
		"repo.git//",
		"repo / ",
		" .git ",
		"/",
		"Mixed/Case.Git/",
		"ssh://git@host:22/a/b.git.git",
	}

	for _, in := range inputs {
		once := NormalizeURL(in)
		if twice := NormalizeURL(once); twice != once {
			t.Errorf("NormalizeURL not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestRepoID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	hexID := regexp.MustCompile(`^[0-9a-f]{8}$`)

	a := &fakeRepo{root: "/src/app", commonDir: "/src/app/.git", origin: "https://github.com/user/app.git"}
	b := &fakeRepo{root: "/elsewhere/renamed", commonDir: "/elsewhere/renamed/.git", origin: "https://github.com/User/app/"}
	other := &fakeRepo{root: "/src/app", commonDir: "/src/app/.git", origin: "https://gitlab.com/user/app.git"}
	local := &fakeRepo{root: "/src/app", commonDir: "/src/app/.git"}

	idA := RepoID(ctx, a)
	if !hexID.MatchString(idA) {
		t.Fatalf("RepoID() = %q, want 8 hex characters", idA)
	}
	if idA != RepoID(ctx, a) {
		t.Error("RepoID is not deterministic")
	}
	if idB := RepoID(ctx, b); idB != idA {
		t.Errorf("RepoID for same remote at different path = %q, want %q", idB, idA)
	}
	if idOther := RepoID(ctx, other); idOther == idA {
		t.Errorf("RepoID for different remote = %q, want different from %q", idOther, idA)
	}

	// Without an origin the common directory identifies the repository.
	// NormalizeURL strips the trailing .git of the common dir path.
	if got, want := RepoID(ctx, local), RepoID(ctx, &fakeRepo{origin: "/src/app"}); got != want {
		t.Errorf("RepoID without origin = %q, want hash of common dir %q", got, want)
	}
}
