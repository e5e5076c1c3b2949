package p10

import (
	"encoding/binary"

	"github.com/dcmxlabs/dcmx/dcmxerr"
	"github.com/dcmxlabs/dcmx/uid"
)

// transferSyntax is the resolved decoding configuration for a transfer
// syntax UID: byte order, VR encoding, and whether pixel data is carried in
// encapsulated (fragment) form rather than as a single contiguous value.
type transferSyntax struct {
	uid             string
	explicitVR      bool
	byteOrder       binary.ByteOrder
	encapsulated    bool
	deflated        bool
}

func resolveTransferSyntax(transferSyntaxUID string) (transferSyntax, error) {
	switch transferSyntaxUID {
	case "1.2.840.10008.1.2":
		return transferSyntax{uid: transferSyntaxUID, explicitVR: false, byteOrder: binary.LittleEndian}, nil
	case uid.ExplicitVRLittleEndian.String():
		return transferSyntax{uid: transferSyntaxUID, explicitVR: true, byteOrder: binary.LittleEndian}, nil
	case uid.ExplicitVRBigEndian.String():
		return transferSyntax{uid: transferSyntaxUID, explicitVR: true, byteOrder: binary.BigEndian}, nil
	case uid.DeflatedExplicitVRLittleEndian.String():
		return transferSyntax{uid: transferSyntaxUID, explicitVR: true, byteOrder: binary.LittleEndian, deflated: true}, nil
	}

	if uid.UsesEncapsulatedPixelData(transferSyntaxUID) || isKnownCompressedTransferSyntax(transferSyntaxUID) {
		return transferSyntax{uid: transferSyntaxUID, explicitVR: true, byteOrder: binary.LittleEndian, encapsulated: true}, nil
	}

	return transferSyntax{}, &dcmxerr.TransferSyntaxNotSupported{UID: transferSyntaxUID}
}

// isKnownCompressedTransferSyntax recognizes the compressed transfer syntax
// UIDs that always carry pixel data in encapsulated form, beyond the ones
// uid.UsesEncapsulatedPixelData already flags.
func isKnownCompressedTransferSyntax(transferSyntaxUID string) bool {
	switch transferSyntaxUID {
	case "1.2.840.10008.1.2.5", // RLE Lossless
		"1.2.840.10008.1.2.4.50", // JPEG Baseline
		"1.2.840.10008.1.2.4.51",
		"1.2.840.10008.1.2.4.57",
		"1.2.840.10008.1.2.4.70",
		"1.2.840.10008.1.2.4.90", // JPEG 2000
		"1.2.840.10008.1.2.4.91",
		"1.2.840.10008.1.2.4.201", // HTJ2K
		"1.2.840.10008.1.2.4.203":
		return true
	default:
		return false
	}
}
