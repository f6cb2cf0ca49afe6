package testing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bgrewell/iso-probe/pkg/consts"
	"github.com/bgrewell/iso-probe/pkg/descriptor"
)

// payloadFill is written over bytes 7-2047 of generated sectors so nothing can depend on a zeroed payload.
const payloadFill = 0xA5

// D is shorthand for building a header in fixture tables.
func D(t descriptor.VolumeDescriptorType, id descriptor.VolumeDescriptorIdentifier) descriptor.VolumeDescriptorHeader {
	return descriptor.VolumeDescriptorHeader{VolumeDescriptorType: t, StandardIdentifier: id}
}

// RawSector returns a full sector whose first seven bytes are header, verbatim.
func RawSector(header [consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte) []byte {
	s := make([]byte, consts.ISO9660_SECTOR_SIZE)
	copy(s, header[:])
	for i := consts.ISO9660_VOLUME_DESC_HEADER_SIZE; i < len(s); i++ {
		s[i] = payloadFill
	}
	return s
}

// Sector returns a full sector holding the encoded header. It panics on an invalid header since fixtures are
// fixed at compile time.
func Sector(h descriptor.VolumeDescriptorHeader) []byte {
	raw, err := h.Marshal()
	if err != nil {
		panic(fmt.Sprintf("invalid fixture header %v: %v", h, err))
	}
	return RawSector(raw)
}

// Sequence concatenates one sector per header.
func Sequence(headers ...descriptor.VolumeDescriptorHeader) []byte {
	out := make([]byte, 0, len(headers)*consts.ISO9660_SECTOR_SIZE)
	for _, h := range headers {
		out = append(out, Sector(h)...)
	}
	return out
}

// SampleHeaders is the descriptor layout of sectors 16-21 of a real installer disc: a normal ISO 9660 set,
// terminated, followed by a UDF volume recognition sequence that is never reached.
func SampleHeaders() []descriptor.VolumeDescriptorHeader {
	return []descriptor.VolumeDescriptorHeader{
		D(descriptor.VolumeDescriptorPrimary, descriptor.IdentifierCD001),
		D(descriptor.VolumeDescriptorBootRecord, descriptor.IdentifierCD001),
		D(descriptor.VolumeDescriptorSetTerminator, descriptor.IdentifierCD001),
		D(descriptor.VolumeDescriptorBootRecord, descriptor.IdentifierBEA01),
		D(descriptor.VolumeDescriptorBootRecord, descriptor.IdentifierNSR02),
		D(descriptor.VolumeDescriptorBootRecord, descriptor.IdentifierTEA01),
	}
}

// BridgeHeaders is a minimal ISO 9660 / UDF bridge sequence with the recognition sequence before the terminator.
func BridgeHeaders() []descriptor.VolumeDescriptorHeader {
	return []descriptor.VolumeDescriptorHeader{
		D(descriptor.VolumeDescriptorPrimary, descriptor.IdentifierCD001),
		D(descriptor.VolumeDescriptorBootRecord, descriptor.IdentifierBEA01),
		D(descriptor.VolumeDescriptorBootRecord, descriptor.IdentifierNSR02),
		D(descriptor.VolumeDescriptorBootRecord, descriptor.IdentifierTEA01),
		D(descriptor.VolumeDescriptorSetTerminator, descriptor.IdentifierCD001),
	}
}

// Image prepends an empty system area to a descriptor sequence so it sits at sector 16.
func Image(sequence []byte) []byte {
	sa := make([]byte, consts.ISO9660_SYSTEM_AREA_SECTORS*consts.ISO9660_SECTOR_SIZE)
	return append(sa, sequence...)
}

// WriteImage writes Image(sequence) to dir/name and returns the full path.
func WriteImage(dir, name string, sequence []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Image(sequence), 0o644); err != nil {
		return "", fmt.Errorf("failed to write fixture image %s: %w", path, err)
	}
	return path, nil
}
