package goreefcore

import (
	"github.com/golang/snappy"
	"github.com/reefdb/goreefcore/reefdx"
)

type CompressionManagerDefault struct {
	compressionEnabled  bool
	compressionMinSize  int
	compressionMinRatio float64

	// Some users require the ability to disable decompressing values. e.g. if they read docs from
	// the server and then want to store them compressed as a backup.
	disableDecompression bool
}

func NewCompressionManagerDefault(config CompressionConfig) *CompressionManagerDefault {
	minSize := 32
	if config.MinSize > 0 {
		minSize = config.MinSize
	}

	minRatio := 0.83
	if config.MinRatio > 0 {
		minRatio = config.MinRatio
	}

	return &CompressionManagerDefault{
		compressionEnabled:   config.EnableCompression,
		compressionMinSize:   minSize,
		compressionMinRatio:  minRatio,
		disableDecompression: config.DisableDecompression,
	}
}

func (cmd *CompressionManagerDefault) Compress(supportsSnappy bool, datatype reefdx.DatatypeFlag, value []byte) ([]byte, reefdx.DatatypeFlag, error) {
	if !cmd.compressionEnabled || !supportsSnappy {
		return value, datatype, nil
	}

	// If the packet is already compressed then we don't want to compress it again.
	if (datatype & reefdx.DatatypeFlagCompressed) != 0 {
		return value, datatype, nil
	}

	packetSize := len(value)
	// Only compress values that are large enough to worthwhile.
	if packetSize <= cmd.compressionMinSize {
		return value, datatype, nil
	}

	compressedValue := snappy.Encode(nil, value)
	// Only return the compressed value if the ratio of compressed:original is small enough.
	if float64(len(compressedValue))/float64(packetSize) > cmd.compressionMinRatio {
		return value, datatype, nil
	}

	return compressedValue, datatype | reefdx.DatatypeFlagCompressed, nil
}

func (cmd *CompressionManagerDefault) Decompress(datatype reefdx.DatatypeFlag, value []byte) ([]byte, reefdx.DatatypeFlag, error) {
	if cmd.disableDecompression {
		return value, datatype, nil
	}

	if (datatype & reefdx.DatatypeFlagCompressed) == 0 {
		return value, datatype, nil
	}

	newValue, err := snappy.Decode(nil, value)
	if err != nil {
		return nil, 0, err
	}

	return newValue, datatype & ^reefdx.DatatypeFlagCompressed, nil
}
