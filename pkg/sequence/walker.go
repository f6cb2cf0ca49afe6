package sequence

import (
	"errors"
	"fmt"

	"github.com/bgrewell/iso-probe/pkg/consts"
	"github.com/bgrewell/iso-probe/pkg/descriptor"
	"github.com/bgrewell/iso-probe/pkg/sector"
)

// state is private to a single Walk call.
type state struct {
	insideExtendedArea bool
	udfDetected        bool
	terminated         bool
	sectorsConsumed    int
}

// NewWalker returns a Walker reading descriptor sectors from provider. A maxSectors of zero or less selects
// consts.DEFAULT_MAX_DESCRIPTOR_SECTORS.
func NewWalker(provider sector.Provider, maxSectors int) *Walker {
	if maxSectors <= 0 {
		maxSectors = consts.DEFAULT_MAX_DESCRIPTOR_SECTORS
	}
	return &Walker{provider: provider, maxSectors: maxSectors}
}

// Walker classifies a volume descriptor sequence. It holds no per-walk state, so one Walker may be used for
// concurrent walks as long as its provider allows concurrent reads.
type Walker struct {
	provider   sector.Provider
	maxSectors int
}

// MaxSectors returns the sector bound applied to each walk.
func (w *Walker) MaxSectors() int {
	return w.maxSectors
}

// Walk reads sectors from index 0 until a terminator, end of data, a malformed sector, or the sector bound.
//
// The returned Result is never nil and holds everything gathered before the walk stopped, including when an error
// is returned. Errors are:
//   - ErrNoDescriptorsFound when data ends before the first valid header,
//   - *MalformedSequenceError when a sector's header fails to decode,
//   - ErrSequenceTooLong when no terminator appears within the bound,
//   - a wrapped provider error for any read failure other than sector.ErrEndOfData.
//
// Running out of data after at least one descriptor is not an error; Result.Terminated is false in that case.
func (w *Walker) Walk() (*Result, error) {
	st := &state{}
	result := newResult()

	for st.sectorsConsumed < w.maxSectors {
		index := st.sectorsConsumed

		buf, err := w.provider.ReadSector(index)
		if err != nil {
			if errors.Is(err, sector.ErrEndOfData) {
				return result, st.exhausted()
			}
			return result, fmt.Errorf("failed to read volume descriptor sector %d: %w", index, err)
		}

		header, _, err := descriptor.DecodeHeader(buf)
		if err != nil {
			if errors.Is(err, descriptor.ErrIncomplete) {
				return result, st.exhausted()
			}
			return result, &MalformedSequenceError{Index: index, Err: err}
		}

		st.apply(index, header, result)
		st.sectorsConsumed++
		result.DescriptorCount = st.sectorsConsumed

		if st.terminated {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: no terminator within %d sectors", ErrSequenceTooLong, w.maxSectors)
}

// Walk is shorthand for NewWalker(provider, maxSectors).Walk().
func Walk(provider sector.Provider, maxSectors int) (*Result, error) {
	return NewWalker(provider, maxSectors).Walk()
}

func (st *state) exhausted() error {
	if st.sectorsConsumed == 0 {
		return ErrNoDescriptorsFound
	}
	return nil
}

// apply folds one decoded header into the state and result. Identifier rules run before the terminator check so a
// terminator's own identifier still counts.
func (st *state) apply(index int, header descriptor.VolumeDescriptorHeader, result *Result) {
	result.Descriptors = append(result.Descriptors, Entry{Index: index, Header: header})

	id := header.Identifier()
	switch {
	case id.IsISO9660():
		if !result.HasISO9660 {
			result.HasISO9660 = true
			result.ISO9660Sector = index
		}
	case id.IsExtendedAreaStart():
		st.insideExtendedArea = true
	case id.IsExtendedAreaEnd():
		st.insideExtendedArea = false
	case id.IsUDF():
		// NSR markers only count inside the BEA01/TEA01 bracket.
		if st.insideExtendedArea && !st.udfDetected {
			st.udfDetected = true
			result.HasUDF = true
			result.UDFSector = index
			result.UDFIdentifier = id
		}
	}

	if header.IsTerminator() {
		st.terminated = true
		result.Terminated = true
	}
}
