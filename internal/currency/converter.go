package currency

import (
	"context"
	"sync"
)

const defaultAmount = "100"

// Snapshot is the converter's state at one instant.
type Snapshot struct {
	From    Code
	To      Code
	Amount  string
	Result  *Result
	Error   string
	Loading bool
}

// Converter is the per-workspace currency widget. Conversions are numbered;
// only the newest one issued may update the stored result, error and loading
// flag, so a slow earlier response never overwrites a later one.
type Converter struct {
	rater Rater

	mu      sync.Mutex
	from    Code
	to      Code
	amount  string
	result  *Result
	errMsg  string
	loading bool
	seq     uint64
}

// NewConverter starts at 100 USD → INR.
func NewConverter(rater Rater) *Converter {
	return &Converter{
		rater:  rater,
		from:   USD,
		to:     INR,
		amount: defaultAmount,
	}
}

func (c *Converter) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Converter) snapshotLocked() Snapshot {
	s := Snapshot{
		From:    c.from,
		To:      c.to,
		Amount:  c.amount,
		Error:   c.errMsg,
		Loading: c.loading,
	}
	if c.result != nil {
		r := *c.result
		s.Result = &r
	}
	return s
}

// SetAmount stores the typed amount without converting.
func (c *Converter) SetAmount(amount string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.amount = amount
	return c.snapshotLocked()
}

// Swap exchanges the two currencies. It does not convert; the stored result
// stays until the next conversion.
func (c *Converter) Swap() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.from, c.to = c.to, c.from
	return c.snapshotLocked()
}

// SetFrom selects the source currency and converts.
func (c *Converter) SetFrom(ctx context.Context, code Code) (Result, error) {
	c.mu.Lock()
	c.from = code
	c.mu.Unlock()
	return c.Convert(ctx)
}

// SetTo selects the target currency and converts.
func (c *Converter) SetTo(ctx context.Context, code Code) (Result, error) {
	c.mu.Lock()
	c.to = code
	c.mu.Unlock()
	return c.Convert(ctx)
}

// Convert runs one conversion with the current selection and returns its
// own outcome. The lock is not held while the request is in flight.
func (c *Converter) Convert(ctx context.Context) (Result, error) {
	return c.Start()(ctx)
}

// Start issues a conversion for the current selection and marks the
// converter loading, but leaves the request to the returned func. Callers
// that run it in the background still see loading in the next snapshot.
func (c *Converter) Start() func(context.Context) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	seq := c.seq
	req := Request{From: c.from, To: c.to, Amount: c.amount}

	if _, err := ParseAmount(req.Amount); err != nil {
		c.errMsg = Message(err)
		c.loading = false
		return func(context.Context) (Result, error) { return Result{}, err }
	}

	c.loading = true
	c.errMsg = ""

	return func(ctx context.Context) (Result, error) {
		res, err := c.rater.Convert(ctx, req)
		return c.finish(seq, res, err)
	}
}

// finish stores the outcome of conversion seq unless a newer one was issued.
func (c *Converter) finish(seq uint64, res Result, err error) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return res, err
	}

	c.loading = false
	if err != nil {
		c.errMsg = Message(err)
		c.result = nil
		return res, err
	}

	c.result = &res
	c.errMsg = ""
	return res, nil
}
