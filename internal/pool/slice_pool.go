package pool

import (
	"reflect"
	"sync"
)

// GetSlice retrieves and resizes a []T from a pool shared by every caller
// instantiating GetSlice with that T, returning a slice with length exactly
// size. If the pooled slice has insufficient capacity a new one is
// allocated. The caller must invoke the returned cleanup function (normally
// via defer) to return the backing array to the pool.
//
// This generalizes the three hand-written int64/float64/string slice pools
// into one implementation, so any element type shares the same growth
// logic. The codec does not use it: codec.Reader allocates its
// identifier-index arrays (one of *ledger.Account, one of
// *ledger.Commodity) with make, and the commodity array stays referenced
// by the journal's CommodityTable after Parse returns.
//
// Example:
//
//	accounts, cleanup := pool.GetSlice[*ledger.Account](accountCount)
//	defer cleanup()
func GetSlice[T any](size int) ([]T, func()) {
	sp := slicePoolFor[T]()

	ptr, _ := sp.Get().(*[]T)
	if ptr == nil {
		s := make([]T, 0)
		ptr = &s
	}

	s := (*ptr)[:0]
	if cap(s) < size {
		s = make([]T, size)
	} else {
		s = s[:size]

		var zero T
		for i := range s {
			s[i] = zero
		}
	}
	*ptr = s

	return s, func() {
		sp.Put(ptr)
	}
}

// slicePoolRegistry holds one *sync.Pool per distinct T, created lazily on
// first use and shared by every subsequent call with that type parameter.
var slicePoolRegistry sync.Map // reflect.Type -> *sync.Pool

func slicePoolFor[T any]() *sync.Pool {
	key := reflect.TypeOf((*T)(nil))

	if v, ok := slicePoolRegistry.Load(key); ok {
		return v.(*sync.Pool)
	}

	sp := &sync.Pool{
		New: func() any {
			s := make([]T, 0)
			return &s
		},
	}

	actual, _ := slicePoolRegistry.LoadOrStore(key, sp)

	return actual.(*sync.Pool)
}
