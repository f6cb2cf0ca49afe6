package descriptor

import (
	"fmt"

	"github.com/bgrewell/iso-probe/pkg/consts"
)

// VolumeDescriptorHeader is the 7 byte header that starts every volume descriptor sector:
//
//	| byte 0     type
//	| bytes 1-5  standard identifier
//	| byte 6     version, always 1
//
// The version is validated on decode and not stored.
type VolumeDescriptorHeader struct {
	VolumeDescriptorType VolumeDescriptorType       `json:"volume_descriptor_type"`
	StandardIdentifier   VolumeDescriptorIdentifier `json:"standard_identifier"`
}

func (h VolumeDescriptorHeader) Type() VolumeDescriptorType {
	return h.VolumeDescriptorType
}

func (h VolumeDescriptorHeader) Identifier() VolumeDescriptorIdentifier {
	return h.StandardIdentifier
}

func (h VolumeDescriptorHeader) IsTerminator() bool {
	return h.VolumeDescriptorType == VolumeDescriptorSetTerminator
}

func (h VolumeDescriptorHeader) String() string {
	return fmt.Sprintf("%s/%s", h.VolumeDescriptorType, h.StandardIdentifier)
}

// DecodeHeader decodes a header from the start of data and returns it together with the number of bytes consumed.
// Only the first 7 bytes are read. If fewer are available ErrIncomplete is returned; otherwise a failing field is
// reported as a *DecodeError wrapping one of the structural sentinel errors. Fields are checked in on-disk order.
func DecodeHeader(data []byte) (VolumeDescriptorHeader, int, error) {
	if len(data) < consts.ISO9660_VOLUME_DESC_HEADER_SIZE {
		return VolumeDescriptorHeader{}, 0, ErrIncomplete
	}

	vdType, err := ParseVolumeDescriptorType(data[0])
	if err != nil {
		return VolumeDescriptorHeader{}, 0, err
	}

	id, err := ParseVolumeDescriptorIdentifier(data[1:6])
	if err != nil {
		return VolumeDescriptorHeader{}, 0, err
	}

	if data[6] != consts.ISO9660_VOLUME_DESC_VERSION {
		return VolumeDescriptorHeader{}, 0, &DecodeError{Field: FieldVersion, Offset: 6, Value: []byte{data[6]}, Err: ErrUnsupportedVersion}
	}

	return VolumeDescriptorHeader{VolumeDescriptorType: vdType, StandardIdentifier: id}, consts.ISO9660_VOLUME_DESC_HEADER_SIZE, nil
}

// Marshal converts the header into its 7-byte on-disk representation.
func (h VolumeDescriptorHeader) Marshal() ([consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte, error) {
	var buf [consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte

	if !h.VolumeDescriptorType.Valid() {
		return buf, fmt.Errorf("cannot marshal header: %w: %d", ErrInvalidDescriptorType, byte(h.VolumeDescriptorType))
	}
	if !h.StandardIdentifier.Valid() {
		return buf, fmt.Errorf("cannot marshal header: %w: %q", ErrUnknownIdentifier, string(h.StandardIdentifier))
	}

	// Byte 0: Volume Descriptor Type.
	buf[0] = byte(h.VolumeDescriptorType)
	// Bytes 1-5: Standard Identifier, always exactly 5 bytes for a known identifier.
	copy(buf[1:6], string(h.StandardIdentifier))
	// Byte 6: Volume Descriptor Version.
	buf[6] = consts.ISO9660_VOLUME_DESC_VERSION

	return buf, nil
}

// UnmarshalBinary decodes the header from data, ignoring anything past the first 7 bytes.
func (h *VolumeDescriptorHeader) UnmarshalBinary(data []byte) error {
	decoded, _, err := DecodeHeader(data)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}
