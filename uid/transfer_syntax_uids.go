package uid

// Transfer Syntax UID constants for the syntaxes this module dispatches on
// directly: the mandatory uncompressed/deflated forms the core decodes
// natively, plus the compressed forms recognised by the codec-dispatch
// contract in package pixel.
var (
	// ImplicitVRLittleEndian is the DICOM default transfer syntax.
	ImplicitVRLittleEndian = MustParse("1.2.840.10008.1.2")

	// ExplicitVRLittleEndian is the transfer syntax File Meta Information
	// always uses, and the most common main-dataset encoding.
	ExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1")

	// EncapsulatedUncompressedExplicitVRLittleEndian carries pixel data in
	// encapsulated (fragmented) framing despite being otherwise uncompressed.
	EncapsulatedUncompressedExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1.98")

	// DeflatedExplicitVRLittleEndian wraps the dataset bytes (not the File
	// Meta Information) in a raw DEFLATE stream.
	DeflatedExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1.99")

	// ExplicitVRBigEndian is retired but still encountered in legacy data.
	//
	// Deprecated: retired by the DICOM standard.
	ExplicitVRBigEndian = MustParse("1.2.840.10008.1.2.2")

	JPEGBaseline8Bit                      = MustParse("1.2.840.10008.1.2.4.50")
	JPEGExtended12Bit                     = MustParse("1.2.840.10008.1.2.4.51")
	JPEGLosslessNonHierarchical           = MustParse("1.2.840.10008.1.2.4.57")
	JPEGLosslessNonHierarchicalFirstOrder = MustParse("1.2.840.10008.1.2.4.70")
	JPEGLSLossless                        = MustParse("1.2.840.10008.1.2.4.80")
	JPEGLSNearLossless                    = MustParse("1.2.840.10008.1.2.4.81")
	JPEG2000Lossless                      = MustParse("1.2.840.10008.1.2.4.90")
	JPEG2000                              = MustParse("1.2.840.10008.1.2.4.91")
	JPEG2000MultiComponentLossless        = MustParse("1.2.840.10008.1.2.4.92")
	JPEG2000MultiComponent                = MustParse("1.2.840.10008.1.2.4.93")
	MPEG2MainProfileMainLevel             = MustParse("1.2.840.10008.1.2.4.100")
	MPEG4AVCH264HighProfileLevel41        = MustParse("1.2.840.10008.1.2.4.102")
	HighThroughputJPEG2000Lossless        = MustParse("1.2.840.10008.1.2.4.201")
	HighThroughputJPEG2000RPCLLossless    = MustParse("1.2.840.10008.1.2.4.202")
	HighThroughputJPEG2000                = MustParse("1.2.840.10008.1.2.4.203")
	RLELossless                           = MustParse("1.2.840.10008.1.2.5")
	RFC2557MIMEEncapsulation              = MustParse("1.2.840.10008.1.2.6.1")
	DeflatedImageFrameCompression         = MustParse("1.2.840.10008.1.2.8.1")
	Papyrus3ImplicitVRLittleEndian        = MustParse("1.2.840.10008.1.20")
)

// encapsulatedPixelDataTransferSyntaxes are the transfer syntaxes whose
// Pixel Data element is always encoded as a sequence of items (the
// encapsulated/fragmented form), regardless of compression.
var encapsulatedPixelDataTransferSyntaxes = map[string]bool{
	EncapsulatedUncompressedExplicitVRLittleEndian.String(): true,
	JPEGBaseline8Bit.String():                              true,
	JPEGExtended12Bit.String():                             true,
	JPEGLosslessNonHierarchical.String():                   true,
	JPEGLosslessNonHierarchicalFirstOrder.String():         true,
	JPEGLSLossless.String():                                true,
	JPEGLSNearLossless.String():                            true,
	JPEG2000Lossless.String():                              true,
	JPEG2000.String():                                      true,
	JPEG2000MultiComponentLossless.String():                true,
	JPEG2000MultiComponent.String():                        true,
	MPEG2MainProfileMainLevel.String():                     true,
	MPEG4AVCH264HighProfileLevel41.String():                true,
	HighThroughputJPEG2000Lossless.String():                true,
	HighThroughputJPEG2000RPCLLossless.String():            true,
	HighThroughputJPEG2000.String():                        true,
	RLELossless.String():                                   true,
}

// UsesEncapsulatedPixelData returns true if the given transfer syntax UID
// encodes Pixel Data (7FE0,0010) as a sequence of items rather than a
// single native value.
func UsesEncapsulatedPixelData(transferSyntaxUID string) bool {
	return encapsulatedPixelDataTransferSyntaxes[transferSyntaxUID]
}
