package p10

import (
	"dario.cat/mergo"
)

// ReaderConfig bounds the resources a Reader is willing to spend on a
// single stream. Zero-value fields are filled in from DefaultReaderConfig
// by NewReader.
type ReaderConfig struct {
	// MaxTokenSize caps the number of bytes carried in a single
	// DataElementValueBytes chunk. Larger element values are split across
	// multiple chunks.
	MaxTokenSize uint32

	// MaxStringSize caps the length in bytes of any single string-VR
	// value. Exceeding it produces a MaximumExceeded error.
	MaxStringSize uint32

	// MaxSequenceDepth caps how many SequenceStart/SequenceItemStart
	// frames may be open at once. Exceeding it produces a
	// MaximumExceeded error rather than growing the frame stack without
	// bound.
	MaxSequenceDepth int

	// RequireOrderedDataElements rejects a data set whose top-level
	// elements are not in strictly ascending tag order (sequence items
	// are exempt: item content order is whatever the writer produced).
	RequireOrderedDataElements bool
}

// DefaultReaderConfig returns the documented defaults applied to any field
// left at its zero value in a caller-supplied ReaderConfig.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		MaxTokenSize:               1 << 20, // 1 MiB
		MaxStringSize:              1 << 24, // 16 MiB
		MaxSequenceDepth:           64,
		RequireOrderedDataElements: true,
	}
}

// mergeReaderConfig fills zero-valued numeric fields of cfg from the
// defaults via mergo. RequireOrderedDataElements is not passed through
// mergo: its default is true, and mergo cannot distinguish a caller's
// explicit false from an unset bool, so it would silently force the field
// back to true. NewReader callers who want unordered elements accepted must
// set RequireOrderedDataElements on the config they pass in; it is applied
// as given.
func mergeReaderConfig(cfg ReaderConfig) ReaderConfig {
	requireOrdered := cfg.RequireOrderedDataElements
	merged := cfg
	_ = mergo.Merge(&merged, DefaultReaderConfig())
	merged.RequireOrderedDataElements = requireOrdered
	return merged
}

// WriterConfig controls the shape of the bytes a Writer produces.
type WriterConfig struct {
	// SuppressPreamble skips writing the 128-byte zero preamble and
	// "DICM" prefix. Used for streams embedded inside another container
	// (e.g. a DICOMDIR directory record) that supplies its own framing.
	SuppressPreamble bool

	// Preamble overrides the default all-zero 128-byte preamble. Must be
	// exactly 128 bytes long if set; ignored when SuppressPreamble is true.
	Preamble []byte

	// Deflate compresses the data set (everything after File Meta
	// Information) with raw DEFLATE, for the Deflated Explicit VR Little
	// Endian transfer syntax.
	Deflate bool

	// TransferSyntaxUID overrides the transfer syntax that File Meta
	// Information declares and that the data set is encoded with. Left
	// empty, the Writer uses the FileMetaInformation token's
	// TransferSyntaxUID; if that is empty too, WriteToken returns an error.
	TransferSyntaxUID string

	// ImplementationClassUID and ImplementationVersionName populate File
	// Meta Information elements (0002,0012) and (0002,0013).
	ImplementationClassUID    string
	ImplementationVersionName string
}

// DefaultWriterConfig returns the documented defaults applied to any field
// left at its zero value in a caller-supplied WriterConfig.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		SuppressPreamble:          false,
		ImplementationClassUID:    "1.2.826.0.1.3680043.10.1451.9000",
		ImplementationVersionName: "DCMX_1_0",
	}
}

func mergeWriterConfig(cfg WriterConfig) WriterConfig {
	merged := cfg
	_ = mergo.Merge(&merged, DefaultWriterConfig())
	return merged
}
