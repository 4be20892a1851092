package sdk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/claudecode/events"
	"github.com/modelkit/claudecode/provider"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, "0.1.8", info.Version)
	assert.Equal(t, "2024-01-20", info.LastImport)
	assert.Equal(t, "2024-04-20", info.NextReview)

	// The record is fixed regardless of CLI availability.
	_ = Available()
	assert.Equal(t, info, GetInfo())
}

func TestAccessorsNeverPanic(t *testing.T) {
	// Whatever this machine has installed, resolution must degrade, not fail.
	available := Available()
	path := CLIPath()
	version := CLIVersion()

	if !available {
		assert.Empty(t, path)
		assert.Nil(t, version)
	} else {
		assert.NotEmpty(t, path)
	}
}

func TestQueryPlaceholderReportsUnavailable(t *testing.T) {
	SetQuery(nil) // ensure placeholder
	q := Query()
	require.NotNil(t, q)

	_, err := q(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, provider.ErrSDKUnavailable)
}

func TestSetQueryBindsAndRestores(t *testing.T) {
	called := false
	SetQuery(func(ctx context.Context, prompt string, settings provider.Settings) ([]*events.Message, error) {
		called = true
		return nil, errors.New("transport stub")
	})
	t.Cleanup(func() { SetQuery(nil) })

	_, err := Query()(context.Background(), "hello", nil)
	assert.True(t, called)
	assert.EqualError(t, err, "transport stub")

	SetQuery(nil)
	_, err = Query()(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, provider.ErrSDKUnavailable)
}
