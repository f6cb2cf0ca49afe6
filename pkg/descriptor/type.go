package descriptor

import "fmt"

// VolumeDescriptorType represents the type of volume descriptor in the ISO 9660 standard.
//
//	| 0 = Boot Record
//	| 1 = Primary
//	| 2 = Supplementary
//	| 3 = Partition
//	| 4 - 254 = Reserved
//	| 255 = Terminator
type VolumeDescriptorType byte

const (
	// VolumeDescriptorBootRecord indicates a Boot Record (type 0).
	VolumeDescriptorBootRecord VolumeDescriptorType = 0x00

	// VolumeDescriptorPrimary indicates a Primary Volume Descriptor (type 1).
	VolumeDescriptorPrimary VolumeDescriptorType = 0x01

	// VolumeDescriptorSupplementary indicates a Supplementary Volume Descriptor (type 2).
	VolumeDescriptorSupplementary VolumeDescriptorType = 0x02

	// VolumeDescriptorPartition indicates a Partition Volume Descriptor (type 3).
	VolumeDescriptorPartition VolumeDescriptorType = 0x03

	// VolumeDescriptorSetTerminator indicates the Volume Descriptor Set Terminator (type 255).
	VolumeDescriptorSetTerminator VolumeDescriptorType = 0xFF
)

// ParseVolumeDescriptorType converts a raw type byte into a VolumeDescriptorType. Reserved values (4-254) are
// rejected with ErrInvalidDescriptorType.
func ParseVolumeDescriptorType(b byte) (VolumeDescriptorType, error) {
	t := VolumeDescriptorType(b)
	if !t.Valid() {
		return 0, &DecodeError{Field: FieldType, Offset: 0, Value: []byte{b}, Err: ErrInvalidDescriptorType}
	}
	return t, nil
}

// Valid reports whether t is one of the five defined descriptor types.
func (t VolumeDescriptorType) Valid() bool {
	switch t {
	case VolumeDescriptorBootRecord,
		VolumeDescriptorPrimary,
		VolumeDescriptorSupplementary,
		VolumeDescriptorPartition,
		VolumeDescriptorSetTerminator:
		return true
	}
	return false
}

func (t VolumeDescriptorType) String() string {
	switch t {
	case VolumeDescriptorBootRecord:
		return "Boot"
	case VolumeDescriptorPrimary:
		return "Primary"
	case VolumeDescriptorSupplementary:
		return "Supplementary"
	case VolumeDescriptorPartition:
		return "Partition"
	case VolumeDescriptorSetTerminator:
		return "Terminator"
	default:
		return fmt.Sprintf("Reserved(%d)", byte(t))
	}
}
