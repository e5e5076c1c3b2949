// Package p10 implements the DICOM Part 10 streaming engine: a pull-based
// reader and writer that exchange data as a token stream rather than a
// parsed tree, plus transforms (Filter, Insert, pixel-data frame assembly,
// Print) and a Builder that folds tokens into a *dataset.DataSet.
//
// The Reader and Writer never block on I/O themselves. Callers push bytes
// in with WriteBytes and pull tokens out with ReadTokens; when the buffered
// input cannot yet produce a token, ReadTokens reports ErrNeedMoreData and
// the caller supplies more bytes. This keeps memory bounded by the caller's
// own buffering choices rather than by the engine reading an entire file
// into memory up front.
package p10
