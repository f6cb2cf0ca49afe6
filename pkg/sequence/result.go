package sequence

import (
	"strings"

	"github.com/bgrewell/iso-probe/pkg/descriptor"
)

// Entry is a decoded header together with its sector index relative to the start of the sequence.
type Entry struct {
	Index  int                               `json:"index"`
	Header descriptor.VolumeDescriptorHeader `json:"header"`
}

// Result is the classification of a volume descriptor sequence.
type Result struct {
	HasISO9660      bool `json:"has_iso9660"`
	HasUDF          bool `json:"has_udf"`
	DescriptorCount int  `json:"descriptor_count"`
	// Terminated is false when the walk ended at end of data instead of at a terminator.
	Terminated bool `json:"terminated"`
	// ISO9660Sector is the index of the first CD001 descriptor, -1 when there is none.
	ISO9660Sector int `json:"iso9660_sector"`
	// UDFSector is the index of the first NSR descriptor inside the extended area, -1 when there is none.
	UDFSector     int                                   `json:"udf_sector"`
	UDFIdentifier descriptor.VolumeDescriptorIdentifier `json:"udf_identifier,omitempty"`
	Descriptors   []Entry                               `json:"descriptors"`
}

func newResult() *Result {
	return &Result{
		ISO9660Sector: -1,
		UDFSector:     -1,
		Descriptors:   []Entry{},
	}
}

// Filesystems returns a short summary such as "ISO9660+UDF", or "none".
func (r *Result) Filesystems() string {
	var names []string
	if r.HasISO9660 {
		names = append(names, "ISO9660")
	}
	if r.HasUDF {
		names = append(names, "UDF")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}
