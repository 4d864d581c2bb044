// Package search locates a single named file under an unknown part of a filesystem
// without indexing it.
//
// The search trusts the tail end of the goal's path to be predictable: a priority
// list such as ["bin", "jdk*", "java*", "program*"] says the goal most likely sits in
// a "bin" directory, inside something named like "jdk", and so on. Every root is
// first searched depth-first along priority-matching directories only. When every
// such descent fails, the whole frontier is widened by one directory level (skipping
// excluded names) and each new directory gets its own priority descent. Widening
// repeats until the goal is found or no directories remain.
//
// Basic usage:
//
//	props, err := search.NewProperties("javac.exe",
//	    []string{"bin", "jdk*", "java*", "program*"},
//	    []string{"windows*", "driver*"})
//	if err != nil {
//	    return err
//	}
//	s := search.NewSearcher(props, search.NewOSFS(search.OSOptions{FollowSymlinks: true}))
//	res, err := s.Search(ctx)
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Println(res.Path)
//	}
//
// Not finding the goal is a normal outcome reported through Result.Found, never an error.
package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a search.
type Result struct {
	// Path is the located file. Empty when Found is false.
	Path string
	// Found reports whether the goal was located.
	Found bool
	// Roots are the directories the frontier was seeded with.
	Roots []string
	// Rounds is the number of times the frontier was widened.
	Rounds int
	// Listings is the number of directory listings performed.
	Listings int64
	// Duration is the wall time of the search.
	Duration time.Duration
}

// Searcher drives the widening loop over the filesystem roots.
type Searcher struct {
	props    *Properties
	fs       FS
	observer Observer
	workers  int
}

// SearcherOption customizes a Searcher.
type SearcherOption func(*Searcher)

// WithObserver sets the progress observer. Nil is ignored.
func WithObserver(o Observer) SearcherOption {
	return func(s *Searcher) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithWorkers sets how many frontier nodes are searched concurrently in each pass.
// Values below 2 keep the search sequential. The result is the same either way.
func WithWorkers(n int) SearcherOption {
	return func(s *Searcher) {
		s.workers = n
	}
}

// NewSearcher creates a Searcher. It panics if props or fsys is nil.
func NewSearcher(props *Properties, fsys FS, opts ...SearcherOption) *Searcher {
	if props == nil {
		panic("search properties cannot be nil")
	}
	if fsys == nil {
		panic("filesystem cannot be nil")
	}

	s := &Searcher{
		props:    props,
		fs:       fsys,
		observer: NopObserver{},
		workers:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// step is one expansion applied to a frontier node.
type step func(ctx context.Context, n *Node) (string, bool)

func priorityStep(ctx context.Context, n *Node) (string, bool) {
	return n.ExpandPriority(ctx)
}

func expandStep(ctx context.Context, n *Node) (string, bool) {
	return n.Expand(ctx)
}

// Search runs until the goal is found, the filesystem is exhausted or ctx is done.
// The error is non-nil only when the roots cannot be enumerated or ctx ends the search.
func (s *Searcher) Search(ctx context.Context) (Result, error) {
	start := time.Now()

	roots, err := s.fs.Roots()
	if err != nil {
		return Result{}, fmt.Errorf("failed to enumerate roots: %w", err)
	}

	w := &walker{props: s.props, fs: s.fs, observer: s.observer}
	frontier := make([]*Node, 0, len(roots))
	for _, root := range roots {
		frontier = append(frontier, newNode(w, root))
	}

	s.observer.SearchStarted(s.props.Goal(), roots)

	result := func(rounds int) Result {
		return Result{Roots: roots, Rounds: rounds, Listings: w.listings.Load(), Duration: time.Since(start)}
	}
	found := func(rounds int, path string) (Result, error) {
		res := result(rounds)
		res.Path = path
		res.Found = true
		s.observer.GoalFound(path)
		return res, nil
	}

	rounds := 0
	for len(frontier) > 0 {
		if goal, ok := s.pass(ctx, frontier, priorityStep); ok {
			return found(rounds, goal)
		}
		if err := ctx.Err(); err != nil {
			return result(rounds), fmt.Errorf("search interrupted: %w", err)
		}

		if goal, ok := s.pass(ctx, frontier, expandStep); ok {
			return found(rounds, goal)
		}
		if err := ctx.Err(); err != nil {
			return result(rounds), fmt.Errorf("search interrupted: %w", err)
		}

		var next []*Node
		for _, n := range frontier {
			next = append(next, n.Children()...)
		}
		rounds++
		s.observer.FrontierWidened(rounds, len(next))
		frontier = next
	}

	s.observer.SearchExhausted(rounds)
	return result(rounds), nil
}

// pass applies fn to every frontier node in order and returns the first hit.
func (s *Searcher) pass(ctx context.Context, frontier []*Node, fn step) (string, bool) {
	if s.workers < 2 || len(frontier) < 2 {
		for _, n := range frontier {
			if goal, ok := fn(ctx, n); ok {
				return goal, true
			}
		}
		return "", false
	}
	return s.parallelPass(ctx, frontier, fn)
}

// parallelPass runs fn on up to s.workers nodes at a time. A hit at position i cancels
// every position after i, while earlier positions run to completion; the lowest
// position with a hit wins, exactly as in a sequential pass.
func (s *Searcher) parallelPass(ctx context.Context, frontier []*Node, fn step) (string, bool) {
	ctxs := make([]context.Context, len(frontier))
	cancels := make([]context.CancelFunc, len(frontier))
	for i := range frontier {
		ctxs[i], cancels[i] = context.WithCancel(ctx)
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	goals := make([]string, len(frontier))
	winner := len(frontier)
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, n := range frontier {
		i, n := i, n
		g.Go(func() error {
			mu.Lock()
			skip := i > winner
			mu.Unlock()
			if skip {
				return nil
			}

			goal, ok := fn(ctxs[i], n)
			if !ok {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			goals[i] = goal
			if i < winner {
				winner = i
				for j := i + 1; j < len(cancels); j++ {
					cancels[j]()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if winner < len(frontier) {
		return goals[winner], true
	}
	return "", false
}
