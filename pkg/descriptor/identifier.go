package descriptor

import (
	"unicode/utf8"

	"github.com/bgrewell/iso-probe/pkg/consts"
)

// VolumeDescriptorIdentifier is the 5 byte standard identifier carried in bytes 1-5 of every volume descriptor.
// Only the six identifiers below are recognized.
type VolumeDescriptorIdentifier string

const (
	// IdentifierCD001 indicates that the volume contains an ISO 9660 file system.
	IdentifierCD001 VolumeDescriptorIdentifier = consts.ISO9660_STD_IDENTIFIER
	// IdentifierBEA01 marks the beginning of the extended descriptor area.
	IdentifierBEA01 VolumeDescriptorIdentifier = consts.EXTENDED_AREA_BEGIN_IDENTIFIER
	// IdentifierNSR02 indicates a UDF file system (ECMA-167 2nd edition).
	IdentifierNSR02 VolumeDescriptorIdentifier = consts.UDF_NSR02_IDENTIFIER
	// IdentifierNSR03 indicates a UDF file system (ECMA-167 3rd edition).
	IdentifierNSR03 VolumeDescriptorIdentifier = consts.UDF_NSR03_IDENTIFIER
	// IdentifierBOOT2 carries boot loader location and entry point information.
	IdentifierBOOT2 VolumeDescriptorIdentifier = consts.BOOT2_IDENTIFIER
	// IdentifierTEA01 marks the end of the extended descriptor area.
	IdentifierTEA01 VolumeDescriptorIdentifier = consts.EXTENDED_AREA_END_IDENTIFIER
)

var knownIdentifiers = map[VolumeDescriptorIdentifier]struct{}{
	IdentifierCD001: {},
	IdentifierBEA01: {},
	IdentifierNSR02: {},
	IdentifierNSR03: {},
	IdentifierBOOT2: {},
	IdentifierTEA01: {},
}

// ParseVolumeDescriptorIdentifier converts exactly five raw bytes into a known identifier. The match is exact and
// case-sensitive; no trimming of padding is done.
func ParseVolumeDescriptorIdentifier(raw []byte) (VolumeDescriptorIdentifier, error) {
	if len(raw) != consts.ISO9660_VOLUME_DESC_IDENTIFIER_SIZE {
		return "", &DecodeError{Field: FieldIdentifier, Offset: 1, Value: cloneBytes(raw), Err: ErrIncomplete}
	}
	if !utf8.Valid(raw) {
		return "", &DecodeError{Field: FieldIdentifier, Offset: 1, Value: cloneBytes(raw), Err: ErrInvalidIdentifierEncoding}
	}
	id := VolumeDescriptorIdentifier(raw)
	if !id.Valid() {
		return "", &DecodeError{Field: FieldIdentifier, Offset: 1, Value: cloneBytes(raw), Err: ErrUnknownIdentifier}
	}
	return id, nil
}

// Valid reports whether id is one of the known identifiers.
func (id VolumeDescriptorIdentifier) Valid() bool {
	_, ok := knownIdentifiers[id]
	return ok
}

// IsISO9660 reports whether id is the ISO 9660 standard identifier.
func (id VolumeDescriptorIdentifier) IsISO9660() bool {
	return id == IdentifierCD001
}

// IsUDF reports whether id is one of the NSR markers that signal a UDF file system.
func (id VolumeDescriptorIdentifier) IsUDF() bool {
	return id == IdentifierNSR02 || id == IdentifierNSR03
}

// IsExtendedAreaStart reports whether id opens the extended descriptor area.
func (id VolumeDescriptorIdentifier) IsExtendedAreaStart() bool {
	return id == IdentifierBEA01
}

// IsExtendedAreaEnd reports whether id closes the extended descriptor area.
func (id VolumeDescriptorIdentifier) IsExtendedAreaEnd() bool {
	return id == IdentifierTEA01
}

func (id VolumeDescriptorIdentifier) String() string {
	return string(id)
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
