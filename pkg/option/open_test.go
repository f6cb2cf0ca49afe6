package option

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
)

func TestNewProbeOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := NewProbeOptions()
		assert.Equal(t, int64(16), o.StartSector)
		assert.Equal(t, 64, o.MaxSectors)
		assert.Equal(t, 0, o.ReadRetries)
		assert.False(t, o.Logger.Enabled())
	})

	t.Run("overrides apply in order", func(t *testing.T) {
		o := NewProbeOptions(
			WithStartSector(32),
			WithMaxSectors(8),
			WithMaxSectors(12),
			WithReadRetries(3),
			WithLogger(logr.Discard()),
		)
		assert.Equal(t, int64(32), o.StartSector)
		assert.Equal(t, 12, o.MaxSectors)
		assert.Equal(t, 3, o.ReadRetries)
	})
}
