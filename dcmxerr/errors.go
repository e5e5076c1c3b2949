// Package dcmxerr defines the error taxonomy shared by every dcmx component.
//
// Every non-recoverable failure surfaced by the reader, builder, transforms,
// and writer is one of the variants below, so callers can dispatch on the
// concrete type with errors.As rather than string-matching.
package dcmxerr

import (
	"errors"
	"fmt"

	"github.com/dcmxlabs/dcmx/dcmpath"
)

// ErrNeedMoreData is not part of the error taxonomy: it is the control-flow
// sentinel a Reader returns to signal suspension (the "DataRequired"
// condition), not failure. Callers test for it with errors.Is.
var ErrNeedMoreData = errors.New("dcmx: need more data")

// MaxSizeKind identifies which configured limit a MaximumExceeded error
// reports against.
type MaxSizeKind int

const (
	TokenSize MaxSizeKind = iota
	StringSize
	SequenceDepth
)

func (k MaxSizeKind) String() string {
	switch k {
	case TokenSize:
		return "token size"
	case StringSize:
		return "string size"
	case SequenceDepth:
		return "sequence depth"
	default:
		return "unknown limit"
	}
}

// DataInvalid reports malformed bytes, a bad VR, an out-of-order tag, or an
// unexpected item/delimiter, together with the data-set path at which it was
// detected.
type DataInvalid struct {
	Details string
	Path    dcmpath.Path
}

func (e *DataInvalid) Error() string {
	if e.Path.Len() == 0 {
		return fmt.Sprintf("data invalid: %s", e.Details)
	}
	return fmt.Sprintf("data invalid at %s: %s", e.Path.String(), e.Details)
}

// MaximumExceeded reports a configured limit (token size, string size, or
// sequence depth) crossed during parsing.
type MaximumExceeded struct {
	Kind  MaxSizeKind
	Limit int
}

func (e *MaximumExceeded) Error() string {
	return fmt.Sprintf("maximum exceeded: %s limit of %d crossed", e.Kind, e.Limit)
}

// TransferSyntaxNotSupported reports a retired or unknown transfer syntax
// UID (anything other than Explicit VR Big Endian among the retired set).
type TransferSyntaxNotSupported struct {
	UID string
}

func (e *TransferSyntaxNotSupported) Error() string {
	return fmt.Sprintf("transfer syntax not supported: %q", e.UID)
}

// PrematureEnd reports that the input ended inside an element or sequence.
type PrematureEnd struct {
	Path dcmpath.Path
}

func (e *PrematureEnd) Error() string {
	return fmt.Sprintf("premature end of input at %s", e.Path.String())
}

// OtherError wraps structured-value parse failures: invalid PersonName
// component counts, DS/IS numeric overflow, DateTime field-ordering
// violations, and similar domain-level rejections that aren't byte-level
// parsing errors.
type OtherError struct {
	Details string
}

func (e *OtherError) Error() string {
	return fmt.Sprintf("invalid value: %s", e.Details)
}

// WriteError reports that the writer rejected a token: a bracket violation,
// an out-of-order tag, or an unserialisable value.
type WriteError struct {
	Details string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error: %s", e.Details)
}

// ExternalSinkError wraps an I/O error produced by a caller-supplied sink or
// source (a file, a network connection, anything outside the core).
type ExternalSinkError struct {
	Details string
	Cause   error
}

func (e *ExternalSinkError) Error() string {
	return fmt.Sprintf("external sink error: %s: %v", e.Details, e.Cause)
}

func (e *ExternalSinkError) Unwrap() error {
	return e.Cause
}

// TagInfo is the minimal dictionary lookup a failure renderer needs to name
// an offending tag without importing the tag package (which would create an
// import cycle, since tag itself can surface DataInvalid during dictionary
// misses).
type TagInfo struct {
	Tag  string
	Name string
}

// Report renders a failure per the fixed schema in spec.md §7: a task
// description, a human-readable detail, optionally the offending tag with
// its dictionary name, and the data-set path.
type Report struct {
	Task string
	Err  error
	Tag  *TagInfo
	Path dcmpath.Path
}

func (r Report) String() string {
	s := fmt.Sprintf("%s: %v", r.Task, r.Err)
	if r.Tag != nil {
		s += fmt.Sprintf(" [%s %s]", r.Tag.Tag, r.Tag.Name)
	}
	if r.Path.Len() > 0 {
		s += fmt.Sprintf(" at %s", r.Path.String())
	}
	return s
}
