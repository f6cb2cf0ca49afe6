package option

import (
	"github.com/bgrewell/iso-probe/pkg/consts"
	"github.com/go-logr/logr"
)

// ProbeOptions controls how an image's volume descriptor sequence is located and walked.
type ProbeOptions struct {
	// Absolute sector where the volume descriptor sequence begins.
	StartSector int64
	// Upper bound on sectors walked before the sequence is considered too long.
	MaxSectors int
	// Number of times a failed sector read is retried before the error is returned.
	ReadRetries int
	Logger      logr.Logger
}

type ProbeOption func(*ProbeOptions)

// DefaultProbeOptions returns the options used when none are supplied: sequence at sector 16, 64 sector bound, no
// retries, and a discarding logger.
func DefaultProbeOptions() *ProbeOptions {
	return &ProbeOptions{
		StartSector: consts.ISO9660_SYSTEM_AREA_SECTORS,
		MaxSectors:  consts.DEFAULT_MAX_DESCRIPTOR_SECTORS,
		ReadRetries: 0,
		Logger:      logr.Discard(),
	}
}

// NewProbeOptions applies opts over the defaults.
func NewProbeOptions(opts ...ProbeOption) *ProbeOptions {
	o := DefaultProbeOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func WithLogger(logger logr.Logger) ProbeOption {
	return func(o *ProbeOptions) {
		o.Logger = logger
	}
}

// WithStartSector overrides the absolute sector of the first volume descriptor. Useful for images carved out of
// a larger device or for multi-session discs.
func WithStartSector(sector int64) ProbeOption {
	return func(o *ProbeOptions) {
		o.StartSector = sector
	}
}

func WithMaxSectors(max int) ProbeOption {
	return func(o *ProbeOptions) {
		o.MaxSectors = max
	}
}

// WithReadRetries sets how many times a sector read that fails with anything other than end of data is retried.
func WithReadRetries(retries int) ProbeOption {
	return func(o *ProbeOptions) {
		o.ReadRetries = retries
	}
}
