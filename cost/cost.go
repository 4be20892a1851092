// Package cost tracks token usage and spend across CLI invocations. The
// CLI reports its own cost in the result event; the tracker sums those
// reports and can also estimate from token counts when a run reports none.
package cost

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/modelkit/claudecode/provider"
)

// Pricing holds per-million-token prices for a model.
type Pricing struct {
	InputPerMillion  decimal.Decimal
	OutputPerMillion decimal.Decimal
}

// DefaultPricing maps model aliases to their published prices. Aliases not
// listed estimate to zero; the CLI-reported cost is still summed.
var DefaultPricing = map[string]Pricing{
	"opus":   {InputPerMillion: decimal.NewFromInt(15), OutputPerMillion: decimal.NewFromInt(75)},
	"sonnet": {InputPerMillion: decimal.NewFromInt(3), OutputPerMillion: decimal.NewFromInt(15)},
	"haiku":  {InputPerMillion: decimal.RequireFromString("0.25"), OutputPerMillion: decimal.RequireFromString("1.25")},
}

var million = decimal.NewFromInt(1_000_000)

// Entry is the accumulated usage for one model alias.
type Entry struct {
	Usage       provider.TokenUsage
	Requests    int
	ReportedUSD decimal.Decimal
}

// Tracker accumulates usage and spend per model alias. Safe for
// concurrent use.
type Tracker struct {
	mu      sync.RWMutex
	pricing map[string]Pricing
	totals  map[string]Entry
}

// NewTracker creates a tracker using DefaultPricing.
func NewTracker() *Tracker {
	return NewTrackerWithPricing(DefaultPricing)
}

// NewTrackerWithPricing creates a tracker with a custom price table.
func NewTrackerWithPricing(pricing map[string]Pricing) *Tracker {
	p := make(map[string]Pricing, len(pricing))
	for k, v := range pricing {
		p[k] = v
	}
	return &Tracker{
		pricing: p,
		totals:  make(map[string]Entry),
	}
}

// Record adds one response's usage and reported cost under the alias.
func (t *Tracker) Record(alias string, resp *provider.Response) {
	if resp == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.totals[alias]
	e.Usage.Add(resp.Usage)
	e.Requests++
	if resp.CostUSD > 0 {
		e.ReportedUSD = e.ReportedUSD.Add(decimal.NewFromFloat(resp.CostUSD))
	}
	t.totals[alias] = e
}

// Entry returns the accumulated entry for one alias.
func (t *Tracker) Entry(alias string) Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[alias]
}

// Summary returns a copy of all accumulated entries.
func (t *Tracker) Summary() map[string]Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]Entry, len(t.totals))
	for k, v := range t.totals {
		out[k] = v
	}
	return out
}

// TotalUsage aggregates token usage across all aliases.
func (t *Tracker) TotalUsage() provider.TokenUsage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total provider.TokenUsage
	for _, e := range t.totals {
		total.Add(e.Usage)
	}
	return total
}

// ReportedUSD sums the CLI-reported spend across all aliases.
func (t *Tracker) ReportedUSD() decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := decimal.Zero
	for _, e := range t.totals {
		total = total.Add(e.ReportedUSD)
	}
	return total
}

// EstimatedUSD prices the accumulated tokens against the price table.
// Aliases without pricing contribute nothing.
func (t *Tracker) EstimatedUSD() decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := decimal.Zero
	for alias, e := range t.totals {
		total = total.Add(t.estimate(alias, e.Usage))
	}
	return total
}

// EstimatedUSDByAlias prices each alias's tokens separately.
func (t *Tracker) EstimatedUSDByAlias() map[string]decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]decimal.Decimal, len(t.totals))
	for alias, e := range t.totals {
		out[alias] = t.estimate(alias, e.Usage)
	}
	return out
}

func (t *Tracker) estimate(alias string, u provider.TokenUsage) decimal.Decimal {
	prices, ok := t.pricing[alias]
	if !ok {
		return decimal.Zero
	}
	in := decimal.NewFromInt(int64(u.InputTokens)).Mul(prices.InputPerMillion).Div(million)
	out := decimal.NewFromInt(int64(u.OutputTokens)).Mul(prices.OutputPerMillion).Div(million)
	return in.Add(out)
}

// Reset clears all accumulated entries.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[string]Entry)
}
