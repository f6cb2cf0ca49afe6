package iso

import (
	"fmt"
	"io"
	"os"

	"github.com/bgrewell/iso-probe/pkg/logging"
	"github.com/bgrewell/iso-probe/pkg/option"
	"github.com/bgrewell/iso-probe/pkg/sector"
	"github.com/bgrewell/iso-probe/pkg/sequence"
	"github.com/bgrewell/iso-probe/pkg/udf"
)

// Report is the outcome of probing an image.
type Report struct {
	*sequence.Result
	Path        string      `json:"path,omitempty"`
	StartSector int64       `json:"start_sector"`
	UDF         *udf.Bridge `json:"udf,omitempty"`
}

// Probe opens the image at location and classifies its volume descriptor sequence.
func Probe(location string, opts ...option.ProbeOption) (*Report, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	report, err := ProbeReader(f, opts...)
	if report != nil {
		report.Path = location
	}
	if err != nil {
		return report, fmt.Errorf("failed to probe %s: %w", location, err)
	}
	return report, nil
}

// ProbeReader classifies the volume descriptor sequence of the image behind reader. The returned Report is non-nil
// whenever the walk started, and on error holds what was gathered before the failure.
func ProbeReader(reader io.ReaderAt, opts ...option.ProbeOption) (*Report, error) {
	options := option.NewProbeOptions(opts...)
	logger := options.Logger.WithName("probe")

	if options.StartSector < 0 {
		return nil, fmt.Errorf("invalid start sector %d", options.StartSector)
	}

	logger.V(logging.LEVEL_DEBUG).Info("Walking volume descriptor sequence", "startSector", options.StartSector, "maxSectors", options.MaxSectors)

	provider := sector.NewReaderProvider(reader, options)
	result, err := sequence.NewWalker(provider, options.MaxSectors).Walk()

	report := &Report{Result: result, StartSector: options.StartSector}
	if bridge, ok := udf.FromResult(result, options.StartSector); ok {
		report.UDF = bridge
	}

	if err != nil {
		logger.V(logging.LEVEL_DEBUG).Info("Volume descriptor sequence walk failed", "descriptors", result.DescriptorCount, "error", err.Error())
		return report, err
	}

	for _, e := range result.Descriptors {
		logger.V(logging.LEVEL_TRACE).Info("Volume descriptor", "index", e.Index, "type", e.Header.Type().String(), "identifier", e.Header.Identifier().String())
	}
	logger.Info("Classified image", "filesystems", result.Filesystems(), "descriptors", result.DescriptorCount, "terminated", result.Terminated)

	return report, nil
}
