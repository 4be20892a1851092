package cost

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/claudecode/provider"
)

func response(input, output int, costUSD float64) *provider.Response {
	return &provider.Response{
		Usage:   provider.TokenUsage{InputTokens: input, OutputTokens: output},
		CostUSD: costUSD,
	}
}

func TestRecordAccumulates(t *testing.T) {
	tr := NewTracker()

	tr.Record("sonnet", response(100, 50, 0.001))
	tr.Record("sonnet", response(200, 100, 0.002))
	tr.Record("opus", response(10, 5, 0.01))

	sonnet := tr.Entry("sonnet")
	assert.Equal(t, 300, sonnet.Usage.InputTokens)
	assert.Equal(t, 150, sonnet.Usage.OutputTokens)
	assert.Equal(t, 2, sonnet.Requests)
	assert.True(t, sonnet.ReportedUSD.Equal(decimal.RequireFromString("0.003")),
		"reported = %s", sonnet.ReportedUSD)

	total := tr.TotalUsage()
	assert.Equal(t, 310, total.InputTokens)
	assert.Equal(t, 155, total.OutputTokens)
}

func TestReportedUSDExact(t *testing.T) {
	tr := NewTracker()

	// 0.1 + 0.2 must sum to exactly 0.3.
	tr.Record("sonnet", response(0, 0, 0.1))
	tr.Record("sonnet", response(0, 0, 0.2))

	assert.True(t, tr.ReportedUSD().Equal(decimal.RequireFromString("0.3")),
		"reported = %s", tr.ReportedUSD())
}

func TestEstimatedUSD(t *testing.T) {
	tr := NewTracker()

	// 1M input at $3 + 1M output at $15.
	tr.Record("sonnet", response(1_000_000, 1_000_000, 0))

	assert.True(t, tr.EstimatedUSD().Equal(decimal.NewFromInt(18)),
		"estimated = %s", tr.EstimatedUSD())

	byAlias := tr.EstimatedUSDByAlias()
	require.Contains(t, byAlias, "sonnet")
	assert.True(t, byAlias["sonnet"].Equal(decimal.NewFromInt(18)))
}

func TestEstimatedUSDUnknownAlias(t *testing.T) {
	tr := NewTracker()
	tr.Record("some-preset-model", response(1_000_000, 0, 0.5))

	assert.True(t, tr.EstimatedUSD().IsZero())
	assert.True(t, tr.ReportedUSD().Equal(decimal.RequireFromString("0.5")))
}

func TestCustomPricing(t *testing.T) {
	tr := NewTrackerWithPricing(map[string]Pricing{
		"flat": {InputPerMillion: decimal.NewFromInt(1), OutputPerMillion: decimal.NewFromInt(1)},
	})
	tr.Record("flat", response(500_000, 500_000, 0))

	assert.True(t, tr.EstimatedUSD().Equal(decimal.NewFromInt(1)))
}

func TestRecordNilResponse(t *testing.T) {
	tr := NewTracker()
	tr.Record("sonnet", nil)

	assert.Equal(t, 0, tr.Entry("sonnet").Requests)
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.Record("sonnet", response(10, 5, 0.1))
	tr.Reset()

	assert.Empty(t, tr.Summary())
	assert.True(t, tr.ReportedUSD().IsZero())
}

func TestConcurrentRecording(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record("sonnet", response(10, 5, 0.001))
		}()
	}
	wg.Wait()

	entry := tr.Entry("sonnet")
	assert.Equal(t, 50, entry.Requests)
	assert.Equal(t, 500, entry.Usage.InputTokens)
}
