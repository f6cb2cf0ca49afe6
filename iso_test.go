package iso

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	isotest "github.com/bgrewell/iso-probe/internal/testing"
	"github.com/bgrewell/iso-probe/pkg/descriptor"
	"github.com/bgrewell/iso-probe/pkg/logging"
	"github.com/bgrewell/iso-probe/pkg/option"
	"github.com/bgrewell/iso-probe/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	t.Run("bridge image on disk", func(t *testing.T) {
		path, err := isotest.WriteImage(t.TempDir(), "bridge.iso", isotest.Sequence(isotest.BridgeHeaders()...))
		require.NoError(t, err)

		report, err := Probe(path)
		require.NoError(t, err)
		assert.Equal(t, path, report.Path)
		assert.True(t, report.HasISO9660)
		assert.True(t, report.HasUDF)
		assert.Equal(t, 5, report.DescriptorCount)
		require.NotNil(t, report.UDF)
		assert.Equal(t, int64(18), report.UDF.AbsoluteSector)
	})

	t.Run("sample image", func(t *testing.T) {
		path, err := isotest.WriteImage(t.TempDir(), "sample.iso", isotest.Sequence(isotest.SampleHeaders()...))
		require.NoError(t, err)

		report, err := Probe(path)
		require.NoError(t, err)
		assert.True(t, report.HasISO9660)
		assert.False(t, report.HasUDF)
		assert.Nil(t, report.UDF)
		assert.Equal(t, 3, report.DescriptorCount)
	})

	t.Run("missing file", func(t *testing.T) {
		report, err := Probe(t.TempDir() + "/missing.iso")
		require.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("image smaller than the system area", func(t *testing.T) {
		report, err := ProbeReader(bytes.NewReader(make([]byte, 4096)))
		require.ErrorIs(t, err, sequence.ErrNoDescriptorsFound)
		require.NotNil(t, report)
		assert.Equal(t, 0, report.DescriptorCount)
	})

	t.Run("malformed error carries the sector and partial result", func(t *testing.T) {
		path, err := isotest.WriteImage(t.TempDir(), "bad.iso", append(
			isotest.Sequence(isotest.BridgeHeaders()[:2]...),
			isotest.RawSector([7]byte{0x01, 'N', 'S', 'R', '0', '2', 0x00})...,
		))
		require.NoError(t, err)

		report, err := Probe(path)
		var malformed *sequence.MalformedSequenceError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, 2, malformed.Index)
		assert.ErrorIs(t, err, descriptor.ErrUnsupportedVersion)
		assert.Equal(t, 2, report.DescriptorCount)
		assert.Equal(t, path, report.Path)
	})
}

func TestProbeReaderOptions(t *testing.T) {
	t.Run("start sector zero for a bare sequence", func(t *testing.T) {
		seq := isotest.Sequence(isotest.BridgeHeaders()...)
		report, err := ProbeReader(bytes.NewReader(seq), option.WithStartSector(0))
		require.NoError(t, err)
		assert.True(t, report.HasUDF)
		assert.Equal(t, int64(2), report.UDF.AbsoluteSector)
	})

	t.Run("max sectors bound", func(t *testing.T) {
		image := isotest.Image(isotest.Sequence(isotest.BridgeHeaders()...))
		_, err := ProbeReader(bytes.NewReader(image), option.WithMaxSectors(3))
		require.ErrorIs(t, err, sequence.ErrSequenceTooLong)
	})

	t.Run("negative start sector", func(t *testing.T) {
		_, err := ProbeReader(bytes.NewReader(nil), option.WithStartSector(-1))
		require.Error(t, err)
	})

	t.Run("logs the classification", func(t *testing.T) {
		buf := &bytes.Buffer{}
		image := isotest.Image(isotest.Sequence(isotest.BridgeHeaders()...))
		_, err := ProbeReader(bytes.NewReader(image), option.WithLogger(logging.NewSimpleLogger(buf, logging.LEVEL_TRACE, false)))
		require.NoError(t, err)

		out := buf.String()
		assert.True(t, strings.Contains(out, "[probe] Classified image"), out)
		assert.Contains(t, out, "filesystems: ISO9660+UDF")
		assert.Contains(t, out, "[sector] Read sector")
	})
}
