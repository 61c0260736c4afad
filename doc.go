// Package pathkit provides an immutable, always-absolute filesystem path
// value and safe operations around it for command-line tooling.
//
// The central type is [Path]: a normalized absolute path constructed through
// [New]. Because Path is a plain value, derivations like [Path.Parent] and
// [Path.Join] produce new values and existing values never change, so paths
// can be shared freely across goroutines without synchronization.
//
// Operations are grouped by the guarantees they make:
//
//   - Pure path algebra (Parent, Join, Split, Base, Ext, RelativeTo) never
//     touches the filesystem.
//   - Inspectors (Exists, IsFile, IsDir, IsSymlink, ...) query the live
//     filesystem and report absence instead of failing; each returns the
//     receiver plus a presence flag so results chain.
//   - Iteration (List, Walk, Glob, Lines) is lazy and pull-based. Iterators
//     hold their directory or file handle only while being consumed and
//     release it on exhaustion, early break, or error.
//   - Mutators (MoveTo, CopyInto, Remove, MkDir, WriteText, ...) change
//     filesystem state with explicit overwrite policies and propagate every
//     unexpected failure as a code-tagged error from the errors subpackage.
//
// The filesystem itself is the only shared mutable state; pathkit applies no
// locking across it. Two callers racing to move or write the same destination
// race at the OS level, and callers needing atomicity across multiple calls
// must add their own coordination.
package pathkit
