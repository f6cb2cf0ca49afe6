package sector

import (
	"errors"
	"fmt"
	"io"

	"github.com/bgrewell/iso-probe/pkg/consts"
	"github.com/bgrewell/iso-probe/pkg/logging"
	"github.com/bgrewell/iso-probe/pkg/option"
	"github.com/go-logr/logr"
)

// ErrEndOfData signals that no sector exists at the requested index.
var ErrEndOfData = errors.New("end of sector data")

// Provider supplies raw sectors relative to the start of the volume descriptor area; index 0 is the first
// descriptor sector. A sector is normally consts.ISO9660_SECTOR_SIZE bytes, a shorter slice means a short read at
// the end of the image. ErrEndOfData means there is nothing at index at all.
type Provider interface {
	ReadSector(index int) ([]byte, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(index int) ([]byte, error)

func (f ProviderFunc) ReadSector(index int) ([]byte, error) {
	return f(index)
}

// NewReaderProvider returns a Provider reading from an image through reader, starting at options.StartSector.
func NewReaderProvider(reader io.ReaderAt, options *option.ProbeOptions) *ReaderProvider {
	if options == nil {
		options = option.DefaultProbeOptions()
	}
	return &ReaderProvider{
		reader:  reader,
		options: options,
		logger:  options.Logger.WithName("sector"),
	}
}

// ReaderProvider reads sectors from an io.ReaderAt. It retries failed reads up to options.ReadRetries times and
// never seeks, so a single reader can back any number of providers.
type ReaderProvider struct {
	reader  io.ReaderAt
	options *option.ProbeOptions
	logger  logr.Logger
}

// Offset returns the absolute byte offset of the sector at index.
func (p *ReaderProvider) Offset(index int) int64 {
	return (p.options.StartSector + int64(index)) * consts.ISO9660_SECTOR_SIZE
}

func (p *ReaderProvider) ReadSector(index int) ([]byte, error) {
	if index < 0 {
		return nil, fmt.Errorf("invalid sector index %d", index)
	}

	offset := p.Offset(index)
	buf := make([]byte, consts.ISO9660_SECTOR_SIZE)

	var lastErr error
	for attempt := 0; attempt <= p.options.ReadRetries; attempt++ {
		n, err := p.reader.ReadAt(buf, offset)
		if n == len(buf) {
			p.logger.V(logging.LEVEL_TRACE).Info("Read sector", "index", index, "offset", offset)
			return buf, nil
		}
		if errors.Is(err, io.EOF) {
			if n == 0 {
				p.logger.V(logging.LEVEL_DEBUG).Info("Reached end of image", "index", index, "offset", offset)
				return nil, ErrEndOfData
			}
			p.logger.V(logging.LEVEL_DEBUG).Info("Short read at end of image", "index", index, "offset", offset, "bytes", n)
			return buf[:n], nil
		}
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		lastErr = err
		if attempt < p.options.ReadRetries {
			p.logger.V(logging.LEVEL_DEBUG).Info("Retrying sector read", "index", index, "attempt", attempt+1, "error", err.Error())
		}
	}

	p.logger.Error(lastErr, "Failed to read sector", "index", index, "offset", offset)
	return nil, fmt.Errorf("failed to read sector %d at offset %d: %w", index, offset, lastErr)
}

// MemoryProvider serves sectors from an in-memory copy of the volume descriptor area.
type MemoryProvider []byte

func (m MemoryProvider) ReadSector(index int) ([]byte, error) {
	if index < 0 {
		return nil, fmt.Errorf("invalid sector index %d", index)
	}
	start := index * consts.ISO9660_SECTOR_SIZE
	if start >= len(m) {
		return nil, ErrEndOfData
	}
	end := start + consts.ISO9660_SECTOR_SIZE
	if end > len(m) {
		end = len(m)
	}
	return m[start:end], nil
}
