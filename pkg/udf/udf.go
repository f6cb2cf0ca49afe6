package udf

import (
	"fmt"

	"github.com/bgrewell/iso-probe/pkg/descriptor"
	"github.com/bgrewell/iso-probe/pkg/sequence"
)

// Bridge describes the UDF volume recognition marker found in a descriptor sequence. Only presence and position
// are known; UDF descriptors themselves are not parsed.
type Bridge struct {
	Identifier descriptor.VolumeDescriptorIdentifier `json:"identifier"`
	// Sector index of the NSR descriptor relative to the start of the descriptor sequence.
	Sector int `json:"sector"`
	// Absolute sector of the NSR descriptor on the image.
	AbsoluteSector int64 `json:"absolute_sector"`
}

// FromResult extracts the UDF marker from a walk result. startSector is the absolute sector the walk began at.
// It returns false when the result holds no authoritative UDF marker.
func FromResult(res *sequence.Result, startSector int64) (*Bridge, bool) {
	if res == nil || !res.HasUDF || res.UDFSector < 0 {
		return nil, false
	}
	return &Bridge{
		Identifier:     res.UDFIdentifier,
		Sector:         res.UDFSector,
		AbsoluteSector: startSector + int64(res.UDFSector),
	}, true
}

// ECMA167Edition returns the ECMA-167 edition signalled by the NSR identifier: 2 for NSR02, 3 for NSR03.
func (b *Bridge) ECMA167Edition() int {
	switch b.Identifier {
	case descriptor.IdentifierNSR02:
		return 2
	case descriptor.IdentifierNSR03:
		return 3
	}
	return 0
}

// Revisions returns the range of UDF revisions that use the bridge's NSR identifier.
func (b *Bridge) Revisions() string {
	switch b.ECMA167Edition() {
	case 2:
		return "1.02-1.50"
	case 3:
		return "2.00+"
	}
	return "unknown"
}

func (b *Bridge) String() string {
	return fmt.Sprintf("UDF %s (%s) at sector %d", b.Revisions(), b.Identifier, b.AbsoluteSector)
}
