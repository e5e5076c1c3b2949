package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAttribute indicates a required pixel-geometry attribute
	// (Rows, Columns, BitsAllocated, ...) is absent from the data set.
	ErrMissingAttribute = errors.New("missing required pixel attribute")

	// ErrInvalidPixelData indicates pixel data bytes are malformed or
	// inconsistent with the data set's declared geometry.
	ErrInvalidPixelData = errors.New("invalid pixel data")

	// ErrUnsupportedTransferSyntax indicates no codec is registered for a
	// transfer syntax a caller asked to decode.
	ErrUnsupportedTransferSyntax = errors.New("unsupported transfer syntax")
)

// MissingAttributeError wraps ErrMissingAttribute with which attribute was
// missing.
type MissingAttributeError struct {
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingAttribute.Error(), e.Attribute)
}

func (e *MissingAttributeError) Unwrap() error {
	return ErrMissingAttribute
}

// InvalidPixelDataError wraps ErrInvalidPixelData with what was wrong.
type InvalidPixelDataError struct {
	Details string
}

func (e *InvalidPixelDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPixelData.Error(), e.Details)
}

func (e *InvalidPixelDataError) Unwrap() error {
	return ErrInvalidPixelData
}

// TransferSyntaxError wraps ErrUnsupportedTransferSyntax with the UID that
// had no registered codec.
type TransferSyntaxError struct {
	UID string
}

func (e *TransferSyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedTransferSyntax.Error(), e.UID)
}

func (e *TransferSyntaxError) Unwrap() error {
	return ErrUnsupportedTransferSyntax
}
