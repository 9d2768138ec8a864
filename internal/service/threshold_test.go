package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockroom/internal/service"
)

func TestThresholdTableFor(t *testing.T) {
	table := service.DefaultThresholds()

	assert.Equal(t, 100, table.For("Single Segment"))
	assert.Equal(t, 100, table.For("Multi Segment"))
	assert.Equal(t, 5, table.For("LAPOTHARA"))
	assert.Equal(t, 5, table.For(""))
	assert.Equal(t, 5, table.For("Unknown"))
}

func TestThresholdTableIsLow(t *testing.T) {
	table := service.DefaultThresholds()

	assert.True(t, table.IsLow(4, "LAPOTHARA"))
	assert.False(t, table.IsLow(5, "LAPOTHARA"))
	assert.True(t, table.IsLow(99, "Single Segment"))
	assert.False(t, table.IsLow(100, "Single Segment"))
	assert.False(t, table.IsLow(150, "Multi Segment"))
}

func TestThresholdTableWithDefault(t *testing.T) {
	table := service.DefaultThresholds().WithDefault(20)

	assert.Equal(t, 20, table.For("LAPOTHARA"))
	// Per-category overrides survive a caller-supplied default.
	assert.Equal(t, 100, table.For("Single Segment"))

	// Non-positive values leave the table untouched.
	unchanged := service.DefaultThresholds().WithDefault(0)
	assert.Equal(t, 5, unchanged.For("LAPOTHARA"))
}
