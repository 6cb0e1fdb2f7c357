// Package git discovers and queries the git repository workty runs in.
//
// [Discover] resolves the working tree root and the common git directory
// (shared by every linked worktree) into an immutable [Repo]. All further
// queries go through a [Backend]: [ExecBackend] shells out to the git CLI,
// which keeps user configuration such as credential helpers and
// includes in effect; [GoGitBackend] answers the same queries in-process.
//
// # Queries
//
//   - [Repo.OriginURL], [Repo.DefaultBranch], [Repo.BranchExists]: absence is
//     a normal answer, so failures degrade to "not found".
//   - [Repo.IsAncestor]: a failed lookup is an error, distinct from false.
//   - [Repo.Run], [Repo.RunIn]: arbitrary subcommands for callers.
//
// Failed invocations are reported as [*CommandError], carrying the
// subcommand and git's trimmed stderr. Discovery failures wrap
// [ErrNotARepository].
package git
