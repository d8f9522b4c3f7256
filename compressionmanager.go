package goreefcore

import "github.com/reefdb/goreefcore/reefdx"

type CompressionConfig struct {
	EnableCompression    bool
	DisableDecompression bool
	MinSize              int
	MinRatio             float64
}

type CompressionManager interface {
	Compress(bool, reefdx.DatatypeFlag, []byte) ([]byte, reefdx.DatatypeFlag, error)
	Decompress(reefdx.DatatypeFlag, []byte) ([]byte, reefdx.DatatypeFlag, error)
}
