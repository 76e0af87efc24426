package core

import (
	"sync"

	"github.com/solverkit/admmgraph/weight"
)

// exchangeBuf is the scratch buffer a factor's Minimizer reads incoming
// messages from and writes outgoing messages into, in the edge order
// declared at CreateFactor (spec.md §4.3's WeightedValueExchange). It is
// pooled — factors are swept in parallel, each borrowing one buffer for
// the duration of a single minimizer call and returning it before the
// next factor on that worker picks one up.
type exchangeBuf struct {
	slots []weight.Value
}

var exchangePool = sync.Pool{
	New: func() any { return &exchangeBuf{} },
}

// getExchange borrows a buffer sized to n slots, zeroing any leftover
// content from a previous, larger borrow.
func getExchange(n int) *exchangeBuf {
	buf := exchangePool.Get().(*exchangeBuf)
	if cap(buf.slots) < n {
		buf.slots = make([]weight.Value, n)
	} else {
		buf.slots = buf.slots[:n]
		for i := range buf.slots {
			buf.slots[i] = weight.Value{}
		}
	}

	return buf
}

// putExchange returns buf to the pool.
func putExchange(buf *exchangeBuf) {
	exchangePool.Put(buf)
}
