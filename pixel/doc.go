// Package pixel assembles DICOM pixel data into per-frame byte slices and
// dispatches compressed frames to a registered codec.
//
// Native (uncompressed) pixel data is split into frames using Rows,
// Columns, BitsAllocated and NumberOfFrames; 1-bit-allocated data is
// unpacked bit by bit, since frame boundaries need not fall on byte
// boundaries. Encapsulated pixel data is split into frames from whichever
// mapping the data set provides, in priority order: the Extended Offset
// Table, then a 1:1 mapping when NumberOfFrames equals the fragment count,
// then the Basic Offset Table, then (failing all of those) one frame
// holding every fragment.
//
// Compressed frame bytes are left undecoded unless a CodecRegistry entry is
// registered for the transfer syntax; this package ships one, RLE Lossless
// (PS3.5 Annex G), under pixel/rle.
package pixel
