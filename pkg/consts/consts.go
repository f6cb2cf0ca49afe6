package consts

const (
	// Number of system area sectors preceding the volume descriptor sequence.
	ISO9660_SYSTEM_AREA_SECTORS = 16

	// ISO9660 default sector size.
	ISO9660_SECTOR_SIZE = 2048

	// ISO9660 volume descriptor header size (type + identifier + version).
	ISO9660_VOLUME_DESC_HEADER_SIZE = 7

	// Length of the standard identifier inside the header.
	ISO9660_VOLUME_DESC_IDENTIFIER_SIZE = 5

	// ISO9660 volume descriptor version (always 1).
	ISO9660_VOLUME_DESC_VERSION = 1

	// Default upper bound on sectors walked before giving up on a terminator. The descriptor area is
	// conventionally tens of sectors at most, 64 sectors is 128 KiB.
	DEFAULT_MAX_DESCRIPTOR_SECTORS = 64

	// Standard ISO9660 identifier.
	ISO9660_STD_IDENTIFIER = "CD001"

	// Extended area (ECMA-167 volume recognition sequence) identifiers.
	EXTENDED_AREA_BEGIN_IDENTIFIER = "BEA01"
	EXTENDED_AREA_END_IDENTIFIER   = "TEA01"

	// UDF (NSR) identifiers.
	UDF_NSR02_IDENTIFIER = "NSR02"
	UDF_NSR03_IDENTIFIER = "NSR03"

	// Boot descriptor identifier.
	BOOT2_IDENTIFIER = "BOOT2"

	// UDF default sector size.
	UDF_SECTOR_SIZE = 2048
)
