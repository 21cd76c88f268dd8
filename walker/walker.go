// Package walker walks a filesystem tree and evaluates a compiled
// query against every entry it finds.
package walker

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/qianniaoge/watchman/query"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxdepth is the default maxdepth value, set to the max value
// an int32 can take.
const DefaultMaxdepth = 1<<31 - 1

// Options control a walk.
type Options struct {
	// Maxdepth bounds how far below the root the walker descends.
	// Entries directly under the root are at depth 1.
	Maxdepth int
	// Parallel is the number of goroutines evaluating the query.
	// Values below 1 mean sequential evaluation.
	Parallel int
}

// NewOptions creates an Options object with the default values.
func NewOptions() Options {
	return Options{
		Maxdepth: DefaultMaxdepth,
		Parallel: 1,
	}
}

// Walk returns all entries under root that satisfy the query, sorted
// by path. Directory listings are gathered sequentially in sorted
// order; query evaluation fans out over a worker pool, which is safe
// because a compiled query is immutable. Cancellation is checked
// between entries, never inside an evaluation.
func Walk(ctx context.Context, root string, q *query.Query, opts Options) ([]query.Entry, error) {
	entries, err := collect(ctx, root, opts.Maxdepth)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"query":   q.ID,
		"entries": len(entries),
	}).Debugf("Walked %v", root)

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}
	p := newPool(parallel)
	var mux sync.Mutex
	var matches []query.Entry
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			p.Finish()
			return nil, err
		}
		entry := e
		p.Submit(func() {
			defer p.Done()
			ectx := query.NewContext(q, entry.Path)
			if q.Expr.Evaluate(ectx, entry) {
				mux.Lock()
				matches = append(matches, entry)
				mux.Unlock()
			}
		})
	}
	p.Finish()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Path < matches[j].Path
	})
	return matches, nil
}

// collect gathers every entry under root, excluding root itself. Paths
// are relative to root and always use forward slashes.
func collect(ctx context.Context, root string, maxdepth int) ([]query.Entry, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, errors.Wrapf(err, "could not stat the query root %v", root)
	}
	var entries []query.Entry
	_, err := walk(ctx, root, "", 1, maxdepth, &entries)
	return entries, err
}

// walk appends every entry under dir to entries and returns how many
// immediate children dir has, which the caller uses to mark empty
// directories.
func walk(ctx context.Context, dir string, relDir string, depth int, maxdepth int, entries *[]query.Entry) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, "could not get children of %v", dir)
	}
	if depth > maxdepth {
		return len(children), nil
	}
	// os.ReadDir sorts by filename, which keeps the ordering consistent.
	for _, child := range children {
		childPath := filepath.Join(dir, child.Name())
		relPath := child.Name()
		if relDir != "" {
			relPath = relDir + "/" + child.Name()
		}

		info, err := os.Lstat(childPath)
		if err != nil {
			// The child disappeared between the listing and the stat.
			// Record it as a nonexistent entry rather than failing the
			// whole walk.
			if os.IsNotExist(err) {
				*entries = append(*entries, query.Entry{
					CName: child.Name(),
					Path:  relPath,
				})
				continue
			}
			return 0, errors.Wrapf(err, "could not stat %v", childPath)
		}

		entry := query.Entry{
			CName:  child.Name(),
			Path:   relPath,
			Size:   info.Size(),
			Mode:   info.Mode(),
			MTime:  info.ModTime(),
			Exists: true,
			Empty:  info.Size() == 0,
		}
		if info.IsDir() {
			*entries = append(*entries, entry)
			idx := len(*entries) - 1
			childCount, err := walk(ctx, childPath, relPath, depth+1, maxdepth, entries)
			if err != nil {
				return 0, err
			}
			(*entries)[idx].Empty = childCount == 0
			continue
		}
		*entries = append(*entries, entry)
	}
	return len(children), nil
}
