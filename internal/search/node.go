package search

import (
	"context"
	"sync/atomic"
)

// walker holds what every Node of one search shares. Nodes reference it instead of
// their parent, so the node graph stays a strict tree.
type walker struct {
	props    *Properties
	fs       FS
	observer Observer
	listings atomic.Int64
}

// list returns the entries of dir, or nil when the directory cannot be read.
func (w *walker) list(dir string) []Entry {
	w.listings.Add(1)
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.observer.ListFailed(dir, err)
		return nil
	}
	return entries
}

// Node is the search state of one directory.
//
// It owns two independent expansions of its directory, each listing it once:
// ExpandPriority descends depth-first into the children matching priority patterns,
// Expand collects the non-excluded children that seed the next, wider frontier.
// A Node is not safe for concurrent use.
type Node struct {
	w    *walker
	path string

	priorityDone bool
	expanded     bool

	// buckets[rank] holds the children matching priorities[rank], in listing order.
	// Dropped once the priority descent fails.
	buckets [][]*Node
	// tried records the paths of bucket children whose descent failed, so Expand
	// does not descend into them a second time.
	tried map[string]struct{}

	children []*Node
}

// NewNode creates the node for dir. A nil observer is replaced by NopObserver.
func NewNode(dir string, props *Properties, fsys FS, observer Observer) *Node {
	if observer == nil {
		observer = NopObserver{}
	}
	return newNode(&walker{props: props, fs: fsys, observer: observer}, dir)
}

func newNode(w *walker, dir string) *Node {
	return &Node{w: w, path: dir}
}

// Path returns the directory this node represents.
func (n *Node) Path() string {
	return n.path
}

// PriorityAttempted reports whether ExpandPriority has already run.
func (n *Node) PriorityAttempted() bool {
	return n.priorityDone
}

// Expanded reports whether Expand has already run.
func (n *Node) Expanded() bool {
	return n.expanded
}

// ExpandPriority searches the directory and, depth-first, its priority-matching
// subdirectories. Buckets are visited in rank order and the first hit wins. Only the
// first call does any work; later calls return false without touching the filesystem.
//
// A goal file directly inside the directory wins over every subdirectory.
func (n *Node) ExpandPriority(ctx context.Context) (string, bool) {
	if n.priorityDone {
		return "", false
	}
	n.priorityDone = true

	if ctx.Err() != nil {
		return "", false
	}

	goal := n.populatePriority()
	if goal != "" {
		n.buckets = nil
		return goal, true
	}

	for _, bucket := range n.buckets {
		for _, child := range bucket {
			if found, ok := child.ExpandPriority(ctx); ok {
				return found, true
			}
			if ctx.Err() != nil {
				return "", false
			}
			n.markTried(child)
		}
	}

	n.buckets = nil
	return "", false
}

// populatePriority lists the directory once, fills the buckets and returns the goal
// path if the goal file sits directly inside it. With several candidates the last
// one listed wins.
func (n *Node) populatePriority() string {
	props := n.w.props
	var goal string

	type slot struct {
		rank int
		path string
	}
	seen := make(map[slot]struct{})

	for _, e := range n.w.list(n.path) {
		if e.Hidden {
			continue
		}
		if !e.IsDir {
			if props.isGoal(e.Name) {
				goal = e.Path
			}
			continue
		}
		for _, rank := range props.ranks(e.Name) {
			if _, dup := seen[slot{rank, e.Path}]; dup {
				continue
			}
			seen[slot{rank, e.Path}] = struct{}{}
			n.addToBucket(rank, newNode(n.w, e.Path))
		}
	}
	return goal
}

func (n *Node) addToBucket(rank int, child *Node) {
	if n.buckets == nil {
		n.buckets = make([][]*Node, len(n.w.props.priorities))
	}
	n.buckets[rank] = append(n.buckets[rank], child)
}

func (n *Node) markTried(child *Node) {
	if n.tried == nil {
		n.tried = make(map[string]struct{})
	}
	n.tried[child.path] = struct{}{}
}

// Expand lists the directory's non-excluded subdirectories as plain children and runs
// the priority descent on each child that has not had one yet. Exclusions apply here
// only, never to ExpandPriority.
//
// Expand must be called at most once, after ExpandPriority; a second call panics.
func (n *Node) Expand(ctx context.Context) (string, bool) {
	if n.expanded {
		panic(ErrAlreadyExpanded)
	}
	n.expanded = true
	n.children = make([]*Node, 0)

	if ctx.Err() != nil {
		return "", false
	}

	for _, e := range n.w.list(n.path) {
		if e.Hidden || !e.IsDir {
			continue
		}
		if n.w.props.excluded(e.Name) {
			continue
		}
		child := newNode(n.w, e.Path)
		if _, ok := n.tried[e.Path]; ok {
			child.priorityDone = true
		}
		n.children = append(n.children, child)
	}
	n.tried = nil

	for _, child := range n.children {
		if child.priorityDone {
			continue
		}
		if found, ok := child.ExpandPriority(ctx); ok {
			return found, true
		}
		if ctx.Err() != nil {
			return "", false
		}
	}
	return "", false
}

// Children returns the plain children collected by Expand. Calling it before Expand
// panics.
func (n *Node) Children() []*Node {
	if !n.expanded {
		panic(ErrNotExpanded)
	}
	return n.children
}
