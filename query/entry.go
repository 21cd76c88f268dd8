package query

import (
	"os"
	"time"
)

// Entry represents one candidate file during query execution. The
// walker builds entries from the filesystem; tests construct them
// directly. Paths always use forward slashes, so terms never need to
// normalize an entry's path (normalization applies only to
// user-supplied patterns).
type Entry struct {
	// CName is the entry's basename, exact case.
	CName string
	// Path is the entry's path relative to the query root.
	Path string
	Size int64
	Mode os.FileMode
	// MTime is the entry's modification time.
	MTime time.Time
	// Exists reports whether the entry was present when the walker
	// visited it. Entries constructed from a successful stat always
	// exist; the flag is here for the "exists" term.
	Exists bool
	// Empty reports a zero-length file or a directory with no entries.
	Empty bool
}

// Context carries per-evaluation state: the compiled query and the
// projection of the current entry that terms cannot derive from the
// entry alone.
type Context struct {
	query     *Query
	wholeName string
}

// NewContext creates the evaluation context for a single entry.
func NewContext(q *Query, wholeName string) *Context {
	return &Context{query: q, wholeName: wholeName}
}

// Query returns the compiled query being evaluated.
func (ctx *Context) Query() *Query {
	return ctx.query
}

// WholeName returns the current entry's full path relative to the
// query root. The returned path is already separator-canonicalized.
func (ctx *Context) WholeName() string {
	return ctx.wholeName
}
