package fbx

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// uidProbeLimit bounds collision probing. Hitting it means the id space
// around the candidate is saturated, which does not happen outside of
// adversarial input; the export fails rather than emit a duplicate.
const uidProbeLimit = 1 << 20

// UIDRegistry allocates stable 64-bit identifiers for scene keys.
// Lookups are memoized and injective: the same key always yields the
// same id, distinct keys never share one. One registry serves exactly
// one export; it is not safe for concurrent use.
type UIDRegistry struct {
	byKey map[interface{}]uint64
	byUID map[uint64]interface{}
}

func NewUIDRegistry() *UIDRegistry {
	return &UIDRegistry{
		byKey: map[interface{}]uint64{},
		byUID: map[uint64]interface{}{},
	}
}

// ID returns the identifier for key, allocating one on first use.
// Keys already representable as a non-negative 64-bit value are used
// verbatim so readers can correlate records with the source data;
// string keys are hashed. Collisions probe upward when the candidate
// sits in the lower half of the id space and downward otherwise.
func (r *UIDRegistry) ID(key interface{}) (uint64, error) {
	if uid, ok := r.byKey[key]; ok {
		return uid, nil
	}
	var uid uint64
	switch k := key.(type) {
	case uint64:
		uid = k
	case uint:
		uid = uint64(k)
	case int:
		if k >= 0 {
			uid = uint64(k)
		} else {
			uid = xxhash.Sum64String(strconv.Itoa(k))
		}
	case int64:
		if k >= 0 {
			uid = uint64(k)
		} else {
			uid = xxhash.Sum64String(strconv.FormatInt(k, 10))
		}
	case string:
		uid = xxhash.Sum64String(k)
	default:
		return 0, errors.Errorf("fbx: unsupported uid key type %T", key)
	}

	up := uid < 1<<63
	probes := 0
	for {
		if _, used := r.byUID[uid]; !used {
			break
		}
		probes++
		if probes > uidProbeLimit {
			return 0, errors.Errorf("fbx: uid space exhausted near %d (key %v)", uid, key)
		}
		if up {
			uid++
		} else {
			uid--
		}
	}
	r.byKey[key] = uid
	r.byUID[uid] = key
	return uid, nil
}

// Key returns the key that owns uid, if any.
func (r *UIDRegistry) Key(uid uint64) (interface{}, bool) {
	k, ok := r.byUID[uid]
	return k, ok
}

// Len reports how many ids have been allocated.
func (r *UIDRegistry) Len() int {
	return len(r.byKey)
}
