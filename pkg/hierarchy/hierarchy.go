package hierarchy

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrDuplicateKey is returned when two linkable entities share a key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrSelfParent is returned when an entity names itself as its parent.
	ErrSelfParent = errors.New("entity is its own parent")
	// ErrCycle is returned when parent links form a loop that never reaches a root.
	ErrCycle = errors.New("parent cycle")
	// ErrIncompleteLinker is returned when a required callback is nil.
	ErrIncompleteLinker = errors.New("linker is missing a callback")
)

// Linker converts a flat sequence of entities into a forest of nodes in a
// single left-to-right pass.
//
// E is the caller's entity type, K the identifier type and N the node type
// the caller wants in the resulting tree. Node and Key return false to drop
// an entity; ParentKey returns false to mark the entity as an explicit root.
// Attach is called once per parent/child link, in the order the links are
// discovered.
type Linker[E any, K comparable, N any] struct {
	Node      func(E) (N, bool)
	Key       func(E) (K, bool)
	ParentKey func(E) (K, bool)
	Attach    func(parent, child N)

	// Normalize, when set, canonicalises every key and parent key before
	// lookup. Use it for keys that compare by something other than ==,
	// e.g. strings.ToLower for case-insensitive identifiers.
	Normalize func(K) K
}

// Report describes the outcome of a Link call.
type Report[N any] struct {
	// Roots holds explicit roots in input order followed by nodes whose
	// parent never appeared.
	Roots []N

	Explicit   int // entities without a parent key
	Unresolved int // entities whose parent key was never registered
	Skipped    int // entities dropped by Node or Key
	Linked     int // Attach calls
}

// Build is shorthand for a Linker without key normalisation.
func Build[E any, K comparable, N any](
	entities []E,
	node func(E) (N, bool),
	key func(E) (K, bool),
	parentKey func(E) (K, bool),
	attach func(parent, child N),
) ([]N, error) {
	l := Linker[E, K, N]{Node: node, Key: key, ParentKey: parentKey, Attach: attach}
	return l.Link(entities)
}

// Link links the entities of a slice and returns the root nodes.
func (l *Linker[E, K, N]) Link(entities []E) ([]N, error) {
	rep, err := l.LinkReport(slices.Values(entities), len(entities))
	if err != nil {
		return nil, err
	}
	return rep.Roots, nil
}

// LinkSeq links the entities yielded by seq and returns the root nodes.
// sizeHint presizes the key table; pass 0 when unknown.
func (l *Linker[E, K, N]) LinkSeq(seq iter.Seq[E], sizeHint int) ([]N, error) {
	rep, err := l.LinkReport(seq, sizeHint)
	if err != nil {
		return nil, err
	}
	return rep.Roots, nil
}

// LinkReport is LinkSeq returning the full Report.
func (l *Linker[E, K, N]) LinkReport(seq iter.Seq[E], sizeHint int) (Report[N], error) {
	if l.Node == nil || l.Key == nil || l.ParentKey == nil || l.Attach == nil {
		return Report[N]{}, fmt.Errorf("link: %w", ErrIncompleteLinker)
	}
	if sizeHint < 0 {
		sizeHint = 0
	}

	b := newBuilder(l, sizeHint)
	var err error
	for e := range seq {
		if err = b.add(e); err != nil {
			break
		}
	}
	if err != nil {
		return Report[N]{}, fmt.Errorf("link: %w", err)
	}
	if err := b.checkCycles(); err != nil {
		return Report[N]{}, fmt.Errorf("link: %w", err)
	}
	return b.report(), nil
}

// entry is the per-key bookkeeping for a registered node.
type entry[K comparable, N any] struct {
	node      N
	parent    K
	hasParent bool
}

// orphanRoom holds nodes waiting for a parent key that has not been seen yet.
type orphanRoom[N any] struct {
	nodes  []N
	closed bool // parent arrived; nodes were attached
}

type builder[E any, K comparable, N any] struct {
	l *Linker[E, K, N]

	registered map[K]*entry[K, N]
	orphanage  map[K]*orphanRoom[N]
	// rooms remembers orphan rooms in first-seen order so unresolved
	// orphans are flushed deterministically.
	rooms    []*orphanRoom[N]
	explicit []N

	skipped int
	linked  int
}

func newBuilder[E any, K comparable, N any](l *Linker[E, K, N], sizeHint int) *builder[E, K, N] {
	return &builder[E, K, N]{
		l:          l,
		registered: make(map[K]*entry[K, N], sizeHint),
		orphanage:  make(map[K]*orphanRoom[N]),
	}
}

func (b *builder[E, K, N]) norm(k K) K {
	if b.l.Normalize == nil {
		return k
	}
	return b.l.Normalize(k)
}

func (b *builder[E, K, N]) add(e E) error {
	node, ok := b.l.Node(e)
	if !ok {
		b.skipped++
		return nil
	}
	key, ok := b.l.Key(e)
	if !ok {
		b.skipped++
		return nil
	}
	key = b.norm(key)
	if _, dup := b.registered[key]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	ent := &entry[K, N]{node: node}
	if parent, ok := b.l.ParentKey(e); ok {
		parent = b.norm(parent)
		if parent == key {
			return fmt.Errorf("%w: %v", ErrSelfParent, key)
		}
		ent.parent, ent.hasParent = parent, true

		if p, found := b.registered[parent]; found {
			b.attach(p.node, node)
		} else {
			room, exists := b.orphanage[parent]
			if !exists {
				room = &orphanRoom[N]{}
				b.orphanage[parent] = room
				b.rooms = append(b.rooms, room)
			}
			room.nodes = append(room.nodes, node)
		}
	} else {
		b.explicit = append(b.explicit, node)
	}

	// Reconcile anyone who was waiting for this key.
	if room, exists := b.orphanage[key]; exists {
		for _, child := range room.nodes {
			b.attach(node, child)
		}
		room.closed = true
		delete(b.orphanage, key)
	}

	b.registered[key] = ent
	return nil
}

func (b *builder[E, K, N]) attach(parent, child N) {
	b.l.Attach(parent, child)
	b.linked++
}

// checkCycles verifies every registered node reaches either an explicit
// root or an unresolved parent key by following parent links. Each key is
// resolved at most once.
func (b *builder[E, K, N]) checkCycles() error {
	const (
		visiting uint8 = iota + 1
		done
	)
	state := make(map[K]uint8, len(b.registered))
	var path []K

	for start := range b.registered {
		if state[start] == done {
			continue
		}
		path = path[:0]
		k := start
	walk:
		for {
			switch state[k] {
			case done:
				break walk
			case visiting:
				return fmt.Errorf("%w through key %v", ErrCycle, k)
			}
			ent, ok := b.registered[k]
			if !ok {
				// Unresolved parent key: the chain ends at an orphan root.
				break walk
			}
			state[k] = visiting
			path = append(path, k)
			if !ent.hasParent {
				break walk
			}
			k = ent.parent
		}
		for _, p := range path {
			state[p] = done
		}
	}
	return nil
}

func (b *builder[E, K, N]) report() Report[N] {
	roots := make([]N, 0, len(b.explicit))
	roots = append(roots, b.explicit...)
	unresolved := 0
	for _, room := range b.rooms {
		if room.closed {
			continue
		}
		roots = append(roots, room.nodes...)
		unresolved += len(room.nodes)
	}
	return Report[N]{
		Roots:      roots,
		Explicit:   len(b.explicit),
		Unresolved: unresolved,
		Skipped:    b.skipped,
		Linked:     b.linked,
	}
}
