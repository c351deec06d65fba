package eq

import (
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-peq/dsp/eq/internal/kernel"
	"github.com/cwbudde/algo-peq/internal/freelist"
	"github.com/cwbudde/algo-peq/internal/store"
)

// Handle identifies one pooled filter state. A handle equals the position
// of its state in the pool storage and stays the same for the life of that
// state, including across recycling.
type Handle int

// NoHandle is returned alongside an error from Acquire.
const NoHandle Handle = -1

// History is the carried-over signal of a handle, most recent sample first.
type History struct {
	Raw       [2]float64
	Processed [2]float64
}

// Snapshot is a read-only copy of a handle's state.
type Snapshot struct {
	Handle       Handle
	Spectrum     Spectrum
	Coefficients Coefficients
	History      History
}

// Stats summarizes pool occupancy.
type Stats struct {
	Allocated   int // states created since the storage was last built
	Free        int // states waiting in the free-list
	Outstanding int // Allocated - Free
}

type state struct {
	handle   Handle
	spectrum Spectrum
	coeffs   Coefficients
	hist     kernel.History
	inUse    bool
}

// Pool owns the filter states behind handles. The zero value is not usable;
// create pools with NewPool.
type Pool struct {
	cfg    PoolConfig
	states *store.Store[*state]
	free   *freelist.Queue[*state]
}

// NewPool returns an empty pool. Storage is allocated on the first Acquire.
func NewPool(opts ...PoolOption) *Pool {
	return &Pool{cfg: ApplyPoolOptions(opts...)}
}

// Acquire returns a handle to a zeroed filter state. Released handles are
// reused first, oldest release first.
func (p *Pool) Acquire() (Handle, error) {
	if p.states == nil {
		p.states = store.New[*state](p.cfg.CapacityHint, p.cfg.MaxHandles)
		p.free = freelist.New[*state]()
		p.cfg.Logger.Debug("eq: pool storage built",
			"capacity", p.states.Cap(), "limit", p.states.Limit())
	}

	if st, ok := p.free.PopFront(); ok {
		*st = state{handle: st.handle, inUse: true}
		return st.handle, nil
	}

	st := &state{handle: Handle(p.states.Len()), inUse: true}
	if _, err := p.states.Append(st); err != nil {
		p.cfg.Logger.Debug("eq: pool exhausted", "allocated", p.states.Len())
		return NoHandle, errors.Wrapf(ErrPoolExhausted, "%v", err)
	}

	return st.handle, nil
}

// Release returns h to the pool. When every allocated handle has been
// returned the pool drops its storage and the next Acquire starts over at
// handle 0. Releasing a handle that is not live returns ErrInvalidHandle and
// leaves the pool unchanged.
func (p *Pool) Release(h Handle) error {
	st, err := p.lookup(h)
	if err != nil {
		return err
	}

	st.inUse = false
	p.free.PushBack(st)

	if p.free.Len() == p.states.Len() {
		p.teardown()
	}

	return nil
}

// Reset clears the history of h. The cached spectrum and coefficients are
// kept.
func (p *Pool) Reset(h Handle) error {
	st, err := p.lookup(h)
	if err != nil {
		return err
	}
	st.hist = kernel.History{}
	return nil
}

// Snapshot returns a copy of the state behind h.
func (p *Pool) Snapshot(h Handle) (Snapshot, error) {
	st, err := p.lookup(h)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Handle:       st.handle,
		Spectrum:     st.spectrum,
		Coefficients: st.coeffs,
		History:      History(st.hist),
	}, nil
}

// Stats reports current pool occupancy.
func (p *Pool) Stats() Stats {
	if p.states == nil {
		return Stats{}
	}
	allocated, free := p.states.Len(), p.free.Len()
	return Stats{
		Allocated:   allocated,
		Free:        free,
		Outstanding: allocated - free,
	}
}

func (p *Pool) lookup(h Handle) (*state, error) {
	if p.states == nil {
		return nil, errors.Wrapf(ErrInvalidHandle, "handle %d: pool is empty", h)
	}
	st, ok := p.states.Get(int(h))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHandle, "handle %d: out of range", h)
	}
	if !st.inUse {
		return nil, errors.Wrapf(ErrInvalidHandle, "handle %d: already released", h)
	}
	return st, nil
}

func (p *Pool) teardown() {
	n := p.states.Len()
	p.states.Release()
	p.states = nil
	p.free = nil
	p.cfg.Logger.Debug("eq: pool storage released", "states", n)
}
