package uid

// SOP Class UID constants for the storage SOP classes exercised by the
// sample data sets and the AIT (Airport Imaging/Threat Detection) test
// fixtures. See values.go for the backing dictionary Info.
var (
	CTImageStorage                                    = MustParse("1.2.840.10008.5.1.4.1.1.2")
	EnhancedCTImageStorage                            = MustParse("1.2.840.10008.5.1.4.1.1.2.1")
	MRImageStorage                                    = MustParse("1.2.840.10008.5.1.4.1.1.4")
	EnhancedMRImageStorage                            = MustParse("1.2.840.10008.5.1.4.1.1.4.1")
	ComputedRadiographyImageStorage                   = MustParse("1.2.840.10008.5.1.4.1.1.1")
	DigitalXRayImageStorageForPresentation            = MustParse("1.2.840.10008.5.1.4.1.1.1.1")
	DigitalXRayImageStorageForProcessing              = MustParse("1.2.840.10008.5.1.4.1.1.1.1.1")
	DigitalMammographyXRayImageStorageForPresentation = MustParse("1.2.840.10008.5.1.4.1.1.1.2")
	DigitalIntraOralXRayImageStorageForPresentation   = MustParse("1.2.840.10008.5.1.4.1.1.1.3")
	UltrasoundImageStorage                            = MustParse("1.2.840.10008.5.1.4.1.1.6.1")
	XRayAngiographicImageStorage                      = MustParse("1.2.840.10008.5.1.4.1.1.12.1")
	XRayRadiofluoroscopicImageStorage                 = MustParse("1.2.840.10008.5.1.4.1.1.12.2")
	SecondaryCaptureImageStorage                      = MustParse("1.2.840.10008.5.1.4.1.1.7")
	NuclearMedicineImageStorage                       = MustParse("1.2.840.10008.5.1.4.1.1.20")
	PositronEmissionTomographyImageStorage            = MustParse("1.2.840.10008.5.1.4.1.1.128")
	RTImageStorage                                    = MustParse("1.2.840.10008.5.1.4.1.1.481.1")
	RawDataStorage                                    = MustParse("1.2.840.10008.5.1.4.1.1.66")
	EncapsulatedPDFStorage                            = MustParse("1.2.840.10008.5.1.4.1.1.104.1")
	VLPhotographicImageStorage                        = MustParse("1.2.840.10008.5.1.4.1.1.77.1.4")

	// AIT (Airport Imaging/Threat Detection), PS3.3 Supplement 66.
	AITDeviceRadiographyImageStorageForPresentation = MustParse("1.2.840.10008.5.1.4.1.1.501.1")
	AITDeviceRadiographyImageStorageForProcessing   = MustParse("1.2.840.10008.5.1.4.1.1.501.2.1")

	DigitalXRayImageStorageMetaSOPClassForProcessing = MustParse("1.2.840.10008.5.1.4.1.1.1.1.1.1")
)
