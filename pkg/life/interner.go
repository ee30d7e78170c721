package life

import (
	"sync"
	"weak"

	"github.com/dolthub/maphash"
)

// shardCount controls how many independently-locked buckets the interner
// splits its table into. Picking a shard by hash keeps contention low
// without requiring a lock-free table.
const shardCount = 256

// nodeKey is the structural identity of a node, independent of its
// memoized next-generation pointer: (height, alive) for a leaf, or
// (height, nw, ne, sw, se) for an inner node. Because children are
// themselves canonical, comparing an inner key is just four pointer
// comparisons.
type nodeKey struct {
	height         uint8
	alive          bool
	nw, ne, sw, se *Node
}

type internerShard struct {
	mu sync.Mutex
	m  map[nodeKey]weak.Pointer[Node]
}

// interner is a sharded hash-cons table mapping structural keys to their
// canonical *Node. Entries are held as weak pointers, so a canonical node
// with no other live references is free to be collected and, if its key
// is ever seen again, rebuilt — this is the "optional sweep" spec.md §5
// allows, obtained from weak.Pointer instead of an explicit GC pass.
type interner struct {
	hasher maphash.Hasher[nodeKey]
	shards [shardCount]internerShard
}

func newInterner() *interner {
	in := &interner{hasher: maphash.NewHasher[nodeKey]()}
	for i := range in.shards {
		in.shards[i].m = make(map[nodeKey]weak.Pointer[Node])
	}

	return in
}

// globalInterner is the single process-wide hash-cons table. The table
// lives for the whole process (its entries may be collected as described
// above); there is no per-Tree interner and no explicit teardown beyond
// process exit.
var globalInterner = newInterner()

// intern returns the canonical node for k: the existing instance if one is
// still live, or the result of build, recorded for future lookups.
//
// intern is idempotent: two calls with equal keys return the same *Node,
// which is the core hash-consing guarantee the rest of the package relies
// on for O(1) child comparison and structural sharing.
func (in *interner) intern(k nodeKey, build func() *Node) *Node {
	shard := &in.shards[in.hasher.Hash(k)%shardCount]

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if wp, ok := shard.m[k]; ok {
		if n := wp.Value(); n != nil {
			return n
		}
	}

	n := build()
	shard.m[k] = weak.Make(n)

	return n
}
