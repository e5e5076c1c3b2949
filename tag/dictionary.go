// Package tag defines DICOM data element tags and the standard dictionary.
//
// TagDict covers the attributes this module's readers, transforms, tests,
// and the anonymisation profiles reference: identification, patient,
// study/series, image pixel, acquisition, and the Airport Imaging/Threat
// Detection (AIT) block from PS3.3 Supplement 66. It is not the full
// ~5000-entry Part 6 registry.
package tag

import "github.com/dcmxlabs/dcmx/vr"

// Well-known standard tags. TagDict carries the Info (VR, VM, Retired)
// backing each of these.
var (
	TimezoneOffsetFromUTC = Tag{0x0008, 0x0201}
	PersonName = Tag{0x0040, 0xA123}
	FileMetaInformationGroupLength = Tag{0x0002, 0x0000}
	FileMetaInformationVersion = Tag{0x0002, 0x0001}
	MediaStorageSOPClassUID = Tag{0x0002, 0x0002}
	MediaStorageSOPInstanceUID = Tag{0x0002, 0x0003}
	TransferSyntaxUID = Tag{0x0002, 0x0010}
	ImplementationClassUID = Tag{0x0002, 0x0012}
	ImplementationVersionName = Tag{0x0002, 0x0013}
	InstanceCreationDate = Tag{0x0008, 0x0012}
	InstanceCreationTime = Tag{0x0008, 0x0013}
	InstanceCreatorUID = Tag{0x0008, 0x0014}
	SOPClassUID = Tag{0x0008, 0x0016}
	SOPInstanceUID = Tag{0x0008, 0x0018}
	StudyDate = Tag{0x0008, 0x0020}
	SeriesDate = Tag{0x0008, 0x0021}
	AcquisitionDate = Tag{0x0008, 0x0022}
	ContentDate = Tag{0x0008, 0x0023}
	AcquisitionDateTime = Tag{0x0008, 0x002A}
	StudyTime = Tag{0x0008, 0x0030}
	SeriesTime = Tag{0x0008, 0x0031}
	AcquisitionTime = Tag{0x0008, 0x0032}
	ContentTime = Tag{0x0008, 0x0033}
	Modality = Tag{0x0008, 0x0060}
	PresentationIntentType = Tag{0x0008, 0x0068}
	Manufacturer = Tag{0x0008, 0x0070}
	InstitutionName = Tag{0x0008, 0x0080}
	InstitutionAddress = Tag{0x0008, 0x0081}
	ReferringPhysicianName = Tag{0x0008, 0x0090}
	ReferringPhysicianAddress = Tag{0x0008, 0x0092}
	ReferringPhysicianTelephoneNumbers = Tag{0x0008, 0x0094}
	StationName = Tag{0x0008, 0x1010}
	StudyDescription = Tag{0x0008, 0x1030}
	SeriesDescription = Tag{0x0008, 0x103E}
	InstitutionalDepartmentName = Tag{0x0008, 0x1040}
	PhysiciansOfRecord = Tag{0x0008, 0x1048}
	PerformingPhysicianName = Tag{0x0008, 0x1050}
	NameOfPhysiciansReadingStudy = Tag{0x0008, 0x1060}
	OperatorsName = Tag{0x0008, 0x1070}
	AdmittingDiagnosesDescription = Tag{0x0008, 0x1080}
	ManufacturerModelName = Tag{0x0008, 0x1090}
	ReferencedSOPClassUID = Tag{0x0008, 0x1150}
	ReferencedSOPInstanceUID = Tag{0x0008, 0x1155}
	ReferencedImageSequence = Tag{0x0008, 0x1140}
	DerivationDescription = Tag{0x0008, 0x2111}
	ReferencedStudySequence = Tag{0x0008, 0x1110}
	RequestingPhysician = Tag{0x0032, 0x1032}
	RequestingService = Tag{0x0032, 0x1033}
	ConsultingPhysicianName = Tag{0x0008, 0x009C}
	AnatomicRegionSequence = Tag{0x0008, 0x2218}
	ImageType = Tag{0x0008, 0x0008}
	SpecificCharacterSet = Tag{0x0008, 0x0005}
	PatientName = Tag{0x0010, 0x0010}
	PatientID = Tag{0x0010, 0x0020}
	PatientBirthDate = Tag{0x0010, 0x0030}
	PatientBirthTime = Tag{0x0010, 0x0032}
	PatientSex = Tag{0x0010, 0x0040}
	PatientInstitutionResidence = Tag{0x0010, 0x0101}
	OtherPatientIDs = Tag{0x0010, 0x1000}
	OtherPatientNames = Tag{0x0010, 0x1001}
	PatientBirthName = Tag{0x0010, 0x1005}
	PatientAge = Tag{0x0010, 0x1010}
	PatientSize = Tag{0x0010, 0x1020}
	PatientWeight = Tag{0x0010, 0x1030}
	PatientMotherBirthName = Tag{0x0010, 0x1060}
	MilitaryRank = Tag{0x0010, 0x1080}
	BranchOfService = Tag{0x0010, 0x1081}
	MedicalRecordLocator = Tag{0x0010, 0x1090}
	Occupation = Tag{0x0010, 0x2180}
	AdditionalPatientHistory = Tag{0x0010, 0x21B0}
	PatientComments = Tag{0x0010, 0x4000}
	PatientIdentityRemoved = Tag{0x0012, 0x0062}
	CountryOfResidence = Tag{0x0010, 0x2150}
	RegionOfResidence = Tag{0x0010, 0x2152}
	EthnicGroup = Tag{0x0010, 0x2160}
	PatientSpeciesDescription = Tag{0x0010, 0x2201}
	PatientBreedDescription = Tag{0x0010, 0x2292}
	ResponsiblePerson = Tag{0x0010, 0x2297}
	ResponsibleOrganization = Tag{0x0010, 0x2299}
	PatientSexNeutered = Tag{0x0010, 0x2203}
	CurrentPatientLocation = Tag{0x0038, 0x0300}
	PersonAddress = Tag{0x0010, 0x2154}
	PersonTelephoneNumbers = Tag{0x0010, 0x2155}
	StudyInstanceUID = Tag{0x0020, 0x000D}
	SeriesInstanceUID = Tag{0x0020, 0x000E}
	StudyID = Tag{0x0020, 0x0010}
	SeriesNumber = Tag{0x0020, 0x0011}
	InstanceNumber = Tag{0x0020, 0x0013}
	FrameOfReferenceUID = Tag{0x0020, 0x0052}
	PositionReferenceIndicator = Tag{0x0020, 0x1040}
	SliceLocation = Tag{0x0020, 0x1041}
	ImageOrientationPatient = Tag{0x0020, 0x0037}
	ImagePositionPatient = Tag{0x0020, 0x0032}
	AccessionNumber = Tag{0x0008, 0x0050}
	IssuerOfAccessionNumberSequence = Tag{0x0008, 0x0051}
	SamplesPerPixel = Tag{0x0028, 0x0002}
	PhotometricInterpretation = Tag{0x0028, 0x0004}
	PlanarConfiguration = Tag{0x0028, 0x0006}
	NumberOfFrames = Tag{0x0028, 0x0008}
	Rows = Tag{0x0028, 0x0010}
	Columns = Tag{0x0028, 0x0011}
	PixelSpacing = Tag{0x0028, 0x0030}
	BitsAllocated = Tag{0x0028, 0x0100}
	BitsStored = Tag{0x0028, 0x0101}
	HighBit = Tag{0x0028, 0x0102}
	PixelRepresentation = Tag{0x0028, 0x0103}
	WindowCenter = Tag{0x0028, 0x1050}
	WindowWidth = Tag{0x0028, 0x1051}
	RescaleIntercept = Tag{0x0028, 0x1052}
	RescaleSlope = Tag{0x0028, 0x1053}
	RescaleType = Tag{0x0028, 0x1054}
	WindowCenterWidthExplanation = Tag{0x0028, 0x1055}
	VOILUTFunction = Tag{0x0028, 0x1056}
	RedPaletteColorLookupTableData = Tag{0x0028, 0x1201}
	PixelData = Tag{0x7FE0, 0x0010}
	KVP = Tag{0x0018, 0x0060}
	SpacingBetweenSlices = Tag{0x0018, 0x0088}
	DataCollectionDiameter = Tag{0x0018, 0x0090}
	SoftwareVersions = Tag{0x0018, 0x1020}
	ProtocolName = Tag{0x0018, 0x1030}
	ReconstructionDiameter = Tag{0x0018, 0x1100}
	DistanceSourceToDetector = Tag{0x0018, 0x1110}
	DistanceSourceToPatient = Tag{0x0018, 0x1111}
	GantryDetectorTilt = Tag{0x0018, 0x1120}
	TableHeight = Tag{0x0018, 0x1130}
	RotationDirection = Tag{0x0018, 0x1140}
	ExposureTime = Tag{0x0018, 0x1150}
	XRayTubeCurrent = Tag{0x0018, 0x1151}
	Exposure = Tag{0x0018, 0x1152}
	ExposureTimeInms = Tag{0x0018, 0x1153}
	FilterType = Tag{0x0018, 0x1160}
	GeneratorPower = Tag{0x0018, 0x1170}
	FocalSpots = Tag{0x0018, 0x1190}
	FocalSpotSize = Tag{0x0018, 0x1191}
	AnodeTargetMaterial = Tag{0x0018, 0x1191}
	BodyPartThickness = Tag{0x0018, 0x11A0}
	CompressionForce = Tag{0x0018, 0x11A2}
	ExposureControlMode = Tag{0x0018, 0x7060}
	ExposureStatus = Tag{0x0018, 0x7062}
	FieldOfViewShape = Tag{0x0018, 0x1147}
	FieldOfViewDimensions = Tag{0x0018, 0x1149}
	ImageAndFluoroscopyAreaDoseProduct = Tag{0x0018, 0x115E}
	ConvolutionKernel = Tag{0x0018, 0x1210}
	SingleCollimationWidth = Tag{0x0018, 0x9306}
	TotalCollimationWidth = Tag{0x0018, 0x9307}
	TableSpeed = Tag{0x0018, 0x9309}
	TableFeedPerRotation = Tag{0x0018, 0x9310}
	SpiralPitchFactor = Tag{0x0018, 0x9311}
	DeviceSerialNumber = Tag{0x0018, 0x1000}
	DateOfLastCalibration = Tag{0x0018, 0x1200}
	TimeOfLastCalibration = Tag{0x0018, 0x1201}
	DetectorConditionsNominalFlag = Tag{0x0018, 0x7000}
	DetectorTemperature = Tag{0x0018, 0x7001}
	DetectorType = Tag{0x0018, 0x7004}
	DetectorConfiguration = Tag{0x0018, 0x7005}
	DetectorDescription = Tag{0x0018, 0x7006}
	DetectorID = Tag{0x0018, 0x700A}
	DetectorBinning = Tag{0x0018, 0x701A}
	DetectorElementPhysicalSize = Tag{0x0018, 0x7020}
	DetectorElementSpacing = Tag{0x0018, 0x7022}
	DetectorManufacturerName = Tag{0x0018, 0x703A}
	DetectorManufacturerModelName = Tag{0x0018, 0x703C}
	FieldOfViewOrigin = Tag{0x0018, 0x7030}
	Grid = Tag{0x0018, 0x1166}
	PerformedProcedureStepStartDate = Tag{0x0040, 0x0244}
	PerformedProcedureStepStartTime = Tag{0x0040, 0x0245}
	PerformedProcedureStepEndDate = Tag{0x0040, 0x0250}
	PerformedProcedureStepEndTime = Tag{0x0040, 0x0251}
	PerformedProcedureStepDescription = Tag{0x0040, 0x0254}
	RequestedProcedureDescription = Tag{0x0032, 0x1060}
	RequestAttributesSequence = Tag{0x0040, 0x0275}
	FrameComments = Tag{0x0020, 0x9158}
	FrameOrder = Tag{0x0020, 0x9157}
	DimensionIndexPointer = Tag{0x0020, 0x9165}
	ImageComments = Tag{0x0020, 0x4000}
	TextComments = Tag{0x0040, 0xA160}
	TextString = Tag{0x2030, 0x0020}
	OriginalAttributesSequence = Tag{0x0400, 0x0550}
	ModifiedAttributesSequence = Tag{0x0400, 0x0550}
	AddOtherSequence = Tag{0x0400, 0x0561}
	DigitalSignaturesSequence = Tag{0x0400, 0x0500}
	SelectorSLValue = Tag{0x0072, 0x0064}
	DictionaryVR = Tag{0x0008, 0x0102}
	FloatingPointValue = Tag{0x0040, 0x9224}
	OOIID = Tag{0x4010, 0x1001}
	OOIIDType = Tag{0x4010, 0x1002}
	OOIType = Tag{0x4010, 0x1004}
	OOIOwnerType = Tag{0x4010, 0x1006}
	OOISize = Tag{0x4010, 0x1007}
	OOIOwnerName = Tag{0x4010, 0x106C}
	OOIOwnerID = Tag{0x4010, 0x1062}
	OOIOwnerCategory = Tag{0x4010, 0x1067}
	OOILabel = Tag{0x4010, 0x1008}
	OOISizeAttr = Tag{0x4010, 0x1007}
	PTOSequence = Tag{0x4010, 0x1037}
	PTORepresentationSequence = Tag{0x4010, 0x1038}
	PotentialThreatObjectID = Tag{0x4010, 0x1039}
	ThreatCategoryDescription = Tag{0x4010, 0x1041}
	ThreatConfidenceScore = Tag{0x4010, 0x1055}
	ThreatProbability = Tag{0x4010, 0x1052}
	ATDAssessmentProbability = Tag{0x4010, 0x1052}
	AlarmDecision = Tag{0x4010, 0x1034}
	BoundingBoxTopLeft = Tag{0x4010, 0x1044}
	BoundingBoxBottomRight = Tag{0x4010, 0x1045}
	CarrierID = Tag{0x4010, 0x1013}
	CarrierCode = Tag{0x4010, 0x1033}
	CarrierName = Tag{0x4010, 0x1011}
	ArrivalAirport = Tag{0x4010, 0x1029}
	DepartureAirport = Tag{0x4010, 0x102A}
	FlightNumber = Tag{0x4010, 0x1028}
)

// TagDict is the standard dictionary keyed by Tag, consulted by Find.
var TagDict = map[Tag]Info{
	{0x0008, 0x0201}: {Tag: Tag{0x0008, 0x0201}, VRs: []vr.VR{vr.ShortString}, Name: "Timezone Offset From UTC", Keyword: "TimezoneOffsetFromUTC", VM: "1", Retired: false},
	{0x0040, 0xA123}: {Tag: Tag{0x0040, 0xA123}, VRs: []vr.VR{vr.PersonName}, Name: "Person Name", Keyword: "PersonName", VM: "1", Retired: false},
	{0x0002, 0x0000}: {Tag: Tag{0x0002, 0x0000}, VRs: []vr.VR{vr.UnsignedLong}, Name: "File Meta Information Group Length", Keyword: "FileMetaInformationGroupLength", VM: "1", Retired: false},
	{0x0002, 0x0001}: {Tag: Tag{0x0002, 0x0001}, VRs: []vr.VR{vr.OtherByte}, Name: "File Meta Information Version", Keyword: "FileMetaInformationVersion", VM: "1", Retired: false},
	{0x0002, 0x0002}: {Tag: Tag{0x0002, 0x0002}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Class UID", Keyword: "MediaStorageSOPClassUID", VM: "1", Retired: false},
	{0x0002, 0x0003}: {Tag: Tag{0x0002, 0x0003}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Instance UID", Keyword: "MediaStorageSOPInstanceUID", VM: "1", Retired: false},
	{0x0002, 0x0010}: {Tag: Tag{0x0002, 0x0010}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID", VM: "1", Retired: false},
	{0x0002, 0x0012}: {Tag: Tag{0x0002, 0x0012}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Implementation Class UID", Keyword: "ImplementationClassUID", VM: "1", Retired: false},
	{0x0002, 0x0013}: {Tag: Tag{0x0002, 0x0013}, VRs: []vr.VR{vr.ShortString}, Name: "Implementation Version Name", Keyword: "ImplementationVersionName", VM: "1", Retired: false},
	{0x0008, 0x0012}: {Tag: Tag{0x0008, 0x0012}, VRs: []vr.VR{vr.Date}, Name: "Instance Creation Date", Keyword: "InstanceCreationDate", VM: "1", Retired: false},
	{0x0008, 0x0013}: {Tag: Tag{0x0008, 0x0013}, VRs: []vr.VR{vr.Time}, Name: "Instance Creation Time", Keyword: "InstanceCreationTime", VM: "1", Retired: false},
	{0x0008, 0x0014}: {Tag: Tag{0x0008, 0x0014}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Instance Creator UID", Keyword: "InstanceCreatorUID", VM: "1", Retired: false},
	{0x0008, 0x0016}: {Tag: Tag{0x0008, 0x0016}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Class UID", Keyword: "SOPClassUID", VM: "1", Retired: false},
	{0x0008, 0x0018}: {Tag: Tag{0x0008, 0x0018}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Instance UID", Keyword: "SOPInstanceUID", VM: "1", Retired: false},
	{0x0008, 0x0020}: {Tag: Tag{0x0008, 0x0020}, VRs: []vr.VR{vr.Date}, Name: "Study Date", Keyword: "StudyDate", VM: "1", Retired: false},
	{0x0008, 0x0021}: {Tag: Tag{0x0008, 0x0021}, VRs: []vr.VR{vr.Date}, Name: "Series Date", Keyword: "SeriesDate", VM: "1", Retired: false},
	{0x0008, 0x0022}: {Tag: Tag{0x0008, 0x0022}, VRs: []vr.VR{vr.Date}, Name: "Acquisition Date", Keyword: "AcquisitionDate", VM: "1", Retired: false},
	{0x0008, 0x0023}: {Tag: Tag{0x0008, 0x0023}, VRs: []vr.VR{vr.Date}, Name: "Content Date", Keyword: "ContentDate", VM: "1", Retired: false},
	{0x0008, 0x002A}: {Tag: Tag{0x0008, 0x002A}, VRs: []vr.VR{vr.DateTime}, Name: "Acquisition DateTime", Keyword: "AcquisitionDateTime", VM: "1", Retired: false},
	{0x0008, 0x0030}: {Tag: Tag{0x0008, 0x0030}, VRs: []vr.VR{vr.Time}, Name: "Study Time", Keyword: "StudyTime", VM: "1", Retired: false},
	{0x0008, 0x0031}: {Tag: Tag{0x0008, 0x0031}, VRs: []vr.VR{vr.Time}, Name: "Series Time", Keyword: "SeriesTime", VM: "1", Retired: false},
	{0x0008, 0x0032}: {Tag: Tag{0x0008, 0x0032}, VRs: []vr.VR{vr.Time}, Name: "Acquisition Time", Keyword: "AcquisitionTime", VM: "1", Retired: false},
	{0x0008, 0x0033}: {Tag: Tag{0x0008, 0x0033}, VRs: []vr.VR{vr.Time}, Name: "Content Time", Keyword: "ContentTime", VM: "1", Retired: false},
	{0x0008, 0x0060}: {Tag: Tag{0x0008, 0x0060}, VRs: []vr.VR{vr.CodeString}, Name: "Modality", Keyword: "Modality", VM: "1", Retired: false},
	{0x0008, 0x0068}: {Tag: Tag{0x0008, 0x0068}, VRs: []vr.VR{vr.CodeString}, Name: "Presentation Intent Type", Keyword: "PresentationIntentType", VM: "1", Retired: false},
	{0x0008, 0x0070}: {Tag: Tag{0x0008, 0x0070}, VRs: []vr.VR{vr.LongString}, Name: "Manufacturer", Keyword: "Manufacturer", VM: "1", Retired: false},
	{0x0008, 0x0080}: {Tag: Tag{0x0008, 0x0080}, VRs: []vr.VR{vr.LongString}, Name: "Institution Name", Keyword: "InstitutionName", VM: "1", Retired: false},
	{0x0008, 0x0081}: {Tag: Tag{0x0008, 0x0081}, VRs: []vr.VR{vr.ShortText}, Name: "Institution Address", Keyword: "InstitutionAddress", VM: "1", Retired: false},
	{0x0008, 0x0090}: {Tag: Tag{0x0008, 0x0090}, VRs: []vr.VR{vr.PersonName}, Name: "Referring Physician's Name", Keyword: "ReferringPhysicianName", VM: "1", Retired: false},
	{0x0008, 0x0092}: {Tag: Tag{0x0008, 0x0092}, VRs: []vr.VR{vr.ShortText}, Name: "Referring Physician's Address", Keyword: "ReferringPhysicianAddress", VM: "1", Retired: false},
	{0x0008, 0x0094}: {Tag: Tag{0x0008, 0x0094}, VRs: []vr.VR{vr.ShortString}, Name: "Referring Physician's Telephone Numbers", Keyword: "ReferringPhysicianTelephoneNumbers", VM: "1-n", Retired: false},
	{0x0008, 0x1010}: {Tag: Tag{0x0008, 0x1010}, VRs: []vr.VR{vr.ShortString}, Name: "Station Name", Keyword: "StationName", VM: "1", Retired: false},
	{0x0008, 0x1030}: {Tag: Tag{0x0008, 0x1030}, VRs: []vr.VR{vr.LongString}, Name: "Study Description", Keyword: "StudyDescription", VM: "1", Retired: false},
	{0x0008, 0x103E}: {Tag: Tag{0x0008, 0x103E}, VRs: []vr.VR{vr.LongString}, Name: "Series Description", Keyword: "SeriesDescription", VM: "1", Retired: false},
	{0x0008, 0x1040}: {Tag: Tag{0x0008, 0x1040}, VRs: []vr.VR{vr.LongString}, Name: "Institutional Department Name", Keyword: "InstitutionalDepartmentName", VM: "1", Retired: false},
	{0x0008, 0x1048}: {Tag: Tag{0x0008, 0x1048}, VRs: []vr.VR{vr.PersonName}, Name: "Physician(s) of Record", Keyword: "PhysiciansOfRecord", VM: "1-n", Retired: false},
	{0x0008, 0x1050}: {Tag: Tag{0x0008, 0x1050}, VRs: []vr.VR{vr.PersonName}, Name: "Performing Physician's Name", Keyword: "PerformingPhysicianName", VM: "1-n", Retired: false},
	{0x0008, 0x1060}: {Tag: Tag{0x0008, 0x1060}, VRs: []vr.VR{vr.PersonName}, Name: "Name of Physician(s) Reading Study", Keyword: "NameOfPhysiciansReadingStudy", VM: "1-n", Retired: false},
	{0x0008, 0x1070}: {Tag: Tag{0x0008, 0x1070}, VRs: []vr.VR{vr.PersonName}, Name: "Operators' Name", Keyword: "OperatorsName", VM: "1-n", Retired: false},
	{0x0008, 0x1080}: {Tag: Tag{0x0008, 0x1080}, VRs: []vr.VR{vr.LongString}, Name: "Admitting Diagnoses Description", Keyword: "AdmittingDiagnosesDescription", VM: "1-n", Retired: false},
	{0x0008, 0x1090}: {Tag: Tag{0x0008, 0x1090}, VRs: []vr.VR{vr.LongString}, Name: "Manufacturer's Model Name", Keyword: "ManufacturerModelName", VM: "1", Retired: false},
	{0x0008, 0x1150}: {Tag: Tag{0x0008, 0x1150}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Class UID", Keyword: "ReferencedSOPClassUID", VM: "1", Retired: false},
	{0x0008, 0x1155}: {Tag: Tag{0x0008, 0x1155}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Instance UID", Keyword: "ReferencedSOPInstanceUID", VM: "1", Retired: false},
	{0x0008, 0x1140}: {Tag: Tag{0x0008, 0x1140}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Image Sequence", Keyword: "ReferencedImageSequence", VM: "1", Retired: false},
	{0x0008, 0x2111}: {Tag: Tag{0x0008, 0x2111}, VRs: []vr.VR{vr.ShortText}, Name: "Derivation Description", Keyword: "DerivationDescription", VM: "1", Retired: false},
	{0x0008, 0x1110}: {Tag: Tag{0x0008, 0x1110}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Study Sequence", Keyword: "ReferencedStudySequence", VM: "1", Retired: false},
	{0x0008, 0x1111}: {Tag: Tag{0x0008, 0x1111}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Performed Procedure Step Sequence", Keyword: "ReferencedPerformedProcedureStepSequence", VM: "1", Retired: false},
	{0x0032, 0x1032}: {Tag: Tag{0x0032, 0x1032}, VRs: []vr.VR{vr.PersonName}, Name: "Requesting Physician", Keyword: "RequestingPhysician", VM: "1", Retired: false},
	{0x0032, 0x1033}: {Tag: Tag{0x0032, 0x1033}, VRs: []vr.VR{vr.LongString}, Name: "Requesting Service", Keyword: "RequestingService", VM: "1", Retired: false},
	{0x0008, 0x009C}: {Tag: Tag{0x0008, 0x009C}, VRs: []vr.VR{vr.PersonName}, Name: "Consulting Physician's Name", Keyword: "ConsultingPhysicianName", VM: "1-n", Retired: false},
	{0x0008, 0x2218}: {Tag: Tag{0x0008, 0x2218}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Anatomic Region Sequence", Keyword: "AnatomicRegionSequence", VM: "1", Retired: false},
	{0x0008, 0x0008}: {Tag: Tag{0x0008, 0x0008}, VRs: []vr.VR{vr.CodeString}, Name: "Image Type", Keyword: "ImageType", VM: "2-n", Retired: false},
	{0x0008, 0x0005}: {Tag: Tag{0x0008, 0x0005}, VRs: []vr.VR{vr.CodeString}, Name: "Specific Character Set", Keyword: "SpecificCharacterSet", VM: "1-n", Retired: false},
	{0x0010, 0x0010}: {Tag: Tag{0x0010, 0x0010}, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Name", Keyword: "PatientName", VM: "1", Retired: false},
	{0x0010, 0x0020}: {Tag: Tag{0x0010, 0x0020}, VRs: []vr.VR{vr.LongString}, Name: "Patient ID", Keyword: "PatientID", VM: "1", Retired: false},
	{0x0010, 0x0030}: {Tag: Tag{0x0010, 0x0030}, VRs: []vr.VR{vr.Date}, Name: "Patient's Birth Date", Keyword: "PatientBirthDate", VM: "1", Retired: false},
	{0x0010, 0x0032}: {Tag: Tag{0x0010, 0x0032}, VRs: []vr.VR{vr.Time}, Name: "Patient's Birth Time", Keyword: "PatientBirthTime", VM: "1", Retired: false},
	{0x0010, 0x0040}: {Tag: Tag{0x0010, 0x0040}, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex", Keyword: "PatientSex", VM: "1", Retired: false},
	{0x0010, 0x0101}: {Tag: Tag{0x0010, 0x0101}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Patient's Institution Residence", Keyword: "PatientInstitutionResidence", VM: "1", Retired: false},
	{0x0010, 0x1000}: {Tag: Tag{0x0010, 0x1000}, VRs: []vr.VR{vr.LongString}, Name: "Other Patient IDs", Keyword: "OtherPatientIDs", VM: "1-n", Retired: true},
	{0x0010, 0x1001}: {Tag: Tag{0x0010, 0x1001}, VRs: []vr.VR{vr.PersonName}, Name: "Other Patient Names", Keyword: "OtherPatientNames", VM: "1-n", Retired: false},
	{0x0010, 0x1005}: {Tag: Tag{0x0010, 0x1005}, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Birth Name", Keyword: "PatientBirthName", VM: "1", Retired: false},
	{0x0010, 0x1010}: {Tag: Tag{0x0010, 0x1010}, VRs: []vr.VR{vr.AgeString}, Name: "Patient's Age", Keyword: "PatientAge", VM: "1", Retired: false},
	{0x0010, 0x1020}: {Tag: Tag{0x0010, 0x1020}, VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Size", Keyword: "PatientSize", VM: "1", Retired: false},
	{0x0010, 0x1030}: {Tag: Tag{0x0010, 0x1030}, VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Weight", Keyword: "PatientWeight", VM: "1", Retired: false},
	{0x0010, 0x1060}: {Tag: Tag{0x0010, 0x1060}, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Mother's Birth Name", Keyword: "PatientMotherBirthName", VM: "1", Retired: false},
	{0x0010, 0x1080}: {Tag: Tag{0x0010, 0x1080}, VRs: []vr.VR{vr.LongString}, Name: "Military Rank", Keyword: "MilitaryRank", VM: "1", Retired: false},
	{0x0010, 0x1081}: {Tag: Tag{0x0010, 0x1081}, VRs: []vr.VR{vr.LongString}, Name: "Branch of Service", Keyword: "BranchOfService", VM: "1", Retired: false},
	{0x0010, 0x1090}: {Tag: Tag{0x0010, 0x1090}, VRs: []vr.VR{vr.LongString}, Name: "Medical Record Locator", Keyword: "MedicalRecordLocator", VM: "1", Retired: false},
	{0x0010, 0x2180}: {Tag: Tag{0x0010, 0x2180}, VRs: []vr.VR{vr.ShortString}, Name: "Occupation", Keyword: "Occupation", VM: "1", Retired: false},
	{0x0010, 0x21B0}: {Tag: Tag{0x0010, 0x21B0}, VRs: []vr.VR{vr.LongText}, Name: "Additional Patient History", Keyword: "AdditionalPatientHistory", VM: "1", Retired: false},
	{0x0010, 0x4000}: {Tag: Tag{0x0010, 0x4000}, VRs: []vr.VR{vr.LongText}, Name: "Patient Comments", Keyword: "PatientComments", VM: "1", Retired: false},
	{0x0012, 0x0062}: {Tag: Tag{0x0012, 0x0062}, VRs: []vr.VR{vr.CodeString}, Name: "Patient Identity Removed", Keyword: "PatientIdentityRemoved", VM: "1", Retired: false},
	{0x0010, 0x2150}: {Tag: Tag{0x0010, 0x2150}, VRs: []vr.VR{vr.LongString}, Name: "Country of Residence", Keyword: "CountryOfResidence", VM: "1", Retired: false},
	{0x0010, 0x2152}: {Tag: Tag{0x0010, 0x2152}, VRs: []vr.VR{vr.LongString}, Name: "Region of Residence", Keyword: "RegionOfResidence", VM: "1-n", Retired: false},
	{0x0010, 0x2160}: {Tag: Tag{0x0010, 0x2160}, VRs: []vr.VR{vr.ShortString}, Name: "Ethnic Group", Keyword: "EthnicGroup", VM: "1", Retired: false},
	{0x0010, 0x2201}: {Tag: Tag{0x0010, 0x2201}, VRs: []vr.VR{vr.LongString}, Name: "Patient Species Description", Keyword: "PatientSpeciesDescription", VM: "1", Retired: false},
	{0x0010, 0x2292}: {Tag: Tag{0x0010, 0x2292}, VRs: []vr.VR{vr.LongString}, Name: "Patient Breed Description", Keyword: "PatientBreedDescription", VM: "1", Retired: false},
	{0x0010, 0x2297}: {Tag: Tag{0x0010, 0x2297}, VRs: []vr.VR{vr.PersonName}, Name: "Responsible Person", Keyword: "ResponsiblePerson", VM: "1", Retired: false},
	{0x0010, 0x2299}: {Tag: Tag{0x0010, 0x2299}, VRs: []vr.VR{vr.LongString}, Name: "Responsible Organization", Keyword: "ResponsibleOrganization", VM: "1", Retired: false},
	{0x0010, 0x2203}: {Tag: Tag{0x0010, 0x2203}, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex Neutered", Keyword: "PatientSexNeutered", VM: "1", Retired: false},
	{0x0038, 0x0300}: {Tag: Tag{0x0038, 0x0300}, VRs: []vr.VR{vr.LongString}, Name: "Current Patient Location", Keyword: "CurrentPatientLocation", VM: "1", Retired: false},
	{0x0010, 0x2154}: {Tag: Tag{0x0010, 0x2154}, VRs: []vr.VR{vr.ShortText}, Name: "Person Address", Keyword: "PersonAddress", VM: "1", Retired: false},
	{0x0010, 0x2155}: {Tag: Tag{0x0010, 0x2155}, VRs: []vr.VR{vr.LongString}, Name: "Person's Telephone Numbers", Keyword: "PersonTelephoneNumbers", VM: "1-n", Retired: false},
	{0x0020, 0x000D}: {Tag: Tag{0x0020, 0x000D}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Study Instance UID", Keyword: "StudyInstanceUID", VM: "1", Retired: false},
	{0x0020, 0x000E}: {Tag: Tag{0x0020, 0x000E}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Series Instance UID", Keyword: "SeriesInstanceUID", VM: "1", Retired: false},
	{0x0020, 0x0010}: {Tag: Tag{0x0020, 0x0010}, VRs: []vr.VR{vr.ShortString}, Name: "Study ID", Keyword: "StudyID", VM: "1", Retired: false},
	{0x0020, 0x0011}: {Tag: Tag{0x0020, 0x0011}, VRs: []vr.VR{vr.IntegerString}, Name: "Series Number", Keyword: "SeriesNumber", VM: "1", Retired: false},
	{0x0020, 0x0013}: {Tag: Tag{0x0020, 0x0013}, VRs: []vr.VR{vr.IntegerString}, Name: "Instance Number", Keyword: "InstanceNumber", VM: "1", Retired: false},
	{0x0020, 0x0052}: {Tag: Tag{0x0020, 0x0052}, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Frame of Reference UID", Keyword: "FrameOfReferenceUID", VM: "1", Retired: false},
	{0x0020, 0x1040}: {Tag: Tag{0x0020, 0x1040}, VRs: []vr.VR{vr.LongString}, Name: "Position Reference Indicator", Keyword: "PositionReferenceIndicator", VM: "1", Retired: false},
	{0x0020, 0x1041}: {Tag: Tag{0x0020, 0x1041}, VRs: []vr.VR{vr.DecimalString}, Name: "Slice Location", Keyword: "SliceLocation", VM: "1", Retired: false},
	{0x0020, 0x0037}: {Tag: Tag{0x0020, 0x0037}, VRs: []vr.VR{vr.DecimalString}, Name: "Image Orientation (Patient)", Keyword: "ImageOrientationPatient", VM: "6", Retired: false},
	{0x0020, 0x0032}: {Tag: Tag{0x0020, 0x0032}, VRs: []vr.VR{vr.DecimalString}, Name: "Image Position (Patient)", Keyword: "ImagePositionPatient", VM: "3", Retired: false},
	{0x0008, 0x0050}: {Tag: Tag{0x0008, 0x0050}, VRs: []vr.VR{vr.ShortString}, Name: "Accession Number", Keyword: "AccessionNumber", VM: "1", Retired: false},
	{0x0008, 0x0051}: {Tag: Tag{0x0008, 0x0051}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Issuer of Accession Number Sequence", Keyword: "IssuerOfAccessionNumberSequence", VM: "1", Retired: false},
	{0x0028, 0x0002}: {Tag: Tag{0x0028, 0x0002}, VRs: []vr.VR{vr.UnsignedShort}, Name: "Samples per Pixel", Keyword: "SamplesPerPixel", VM: "1", Retired: false},
	{0x0028, 0x0004}: {Tag: Tag{0x0028, 0x0004}, VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1", Retired: false},
	{0x0028, 0x0006}: {Tag: Tag{0x0028, 0x0006}, VRs: []vr.VR{vr.UnsignedShort}, Name: "Planar Configuration", Keyword: "PlanarConfiguration", VM: "1", Retired: false},
	{0x0028, 0x0008}: {Tag: Tag{0x0028, 0x0008}, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Frames", Keyword: "NumberOfFrames", VM: "1", Retired: false},
	{0x0028, 0x0010}: {Tag: Tag{0x0028, 0x0010}, VRs: []vr.VR{vr.UnsignedShort}, Name: "Rows", Keyword: "Rows", VM: "1", Retired: false},
	{0x0028, 0x0011}: {Tag: Tag{0x0028, 0x0011}, VRs: []vr.VR{vr.UnsignedShort}, Name: "Columns", Keyword: "Columns", VM: "1", Retired: false},
	{0x0028, 0x0030}: {Tag: Tag{0x0028, 0x0030}, VRs: []vr.VR{vr.DecimalString}, Name: "Pixel Spacing", Keyword: "PixelSpacing", VM: "2", Retired: false},
	{0x0028, 0x0100}: {Tag: Tag{0x0028, 0x0100}, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Allocated", Keyword: "BitsAllocated", VM: "1", Retired: false},
	{0x0028, 0x0101}: {Tag: Tag{0x0028, 0x0101}, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Stored", Keyword: "BitsStored", VM: "1", Retired: false},
	{0x0028, 0x0102}: {Tag: Tag{0x0028, 0x0102}, VRs: []vr.VR{vr.UnsignedShort}, Name: "High Bit", Keyword: "HighBit", VM: "1", Retired: false},
	{0x0028, 0x0103}: {Tag: Tag{0x0028, 0x0103}, VRs: []vr.VR{vr.UnsignedShort}, Name: "Pixel Representation", Keyword: "PixelRepresentation", VM: "1", Retired: false},
	{0x0028, 0x1050}: {Tag: Tag{0x0028, 0x1050}, VRs: []vr.VR{vr.DecimalString}, Name: "Window Center", Keyword: "WindowCenter", VM: "1-n", Retired: false},
	{0x0028, 0x1051}: {Tag: Tag{0x0028, 0x1051}, VRs: []vr.VR{vr.DecimalString}, Name: "Window Width", Keyword: "WindowWidth", VM: "1-n", Retired: false},
	{0x0028, 0x1052}: {Tag: Tag{0x0028, 0x1052}, VRs: []vr.VR{vr.DecimalString}, Name: "Rescale Intercept", Keyword: "RescaleIntercept", VM: "1", Retired: false},
	{0x0028, 0x1053}: {Tag: Tag{0x0028, 0x1053}, VRs: []vr.VR{vr.DecimalString}, Name: "Rescale Slope", Keyword: "RescaleSlope", VM: "1", Retired: false},
	{0x0028, 0x1054}: {Tag: Tag{0x0028, 0x1054}, VRs: []vr.VR{vr.LongString}, Name: "Rescale Type", Keyword: "RescaleType", VM: "1", Retired: false},
	{0x0028, 0x1055}: {Tag: Tag{0x0028, 0x1055}, VRs: []vr.VR{vr.LongString}, Name: "Window Center & Width Explanation", Keyword: "WindowCenterWidthExplanation", VM: "1-n", Retired: false},
	{0x0028, 0x1056}: {Tag: Tag{0x0028, 0x1056}, VRs: []vr.VR{vr.CodeString}, Name: "VOI LUT Function", Keyword: "VOILUTFunction", VM: "1", Retired: false},
	{0x0028, 0x1201}: {Tag: Tag{0x0028, 0x1201}, VRs: []vr.VR{vr.OtherWord}, Name: "Red Palette Color Lookup Table Data", Keyword: "RedPaletteColorLookupTableData", VM: "1", Retired: false},
	{0x7FE0, 0x0010}: {Tag: Tag{0x7FE0, 0x0010}, VRs: []vr.VR{vr.OtherByte, vr.OtherWord}, Name: "Pixel Data", Keyword: "PixelData", VM: "1", Retired: false},
	{0x0018, 0x0060}: {Tag: Tag{0x0018, 0x0060}, VRs: []vr.VR{vr.DecimalString}, Name: "KVP", Keyword: "KVP", VM: "1", Retired: false},
	{0x0018, 0x0088}: {Tag: Tag{0x0018, 0x0088}, VRs: []vr.VR{vr.DecimalString}, Name: "Spacing Between Slices", Keyword: "SpacingBetweenSlices", VM: "1", Retired: false},
	{0x0018, 0x0090}: {Tag: Tag{0x0018, 0x0090}, VRs: []vr.VR{vr.DecimalString}, Name: "Data Collection Diameter", Keyword: "DataCollectionDiameter", VM: "1", Retired: false},
	{0x0018, 0x1020}: {Tag: Tag{0x0018, 0x1020}, VRs: []vr.VR{vr.LongString}, Name: "Software Versions", Keyword: "SoftwareVersions", VM: "1-n", Retired: false},
	{0x0018, 0x1030}: {Tag: Tag{0x0018, 0x1030}, VRs: []vr.VR{vr.LongString}, Name: "Protocol Name", Keyword: "ProtocolName", VM: "1", Retired: false},
	{0x0018, 0x1100}: {Tag: Tag{0x0018, 0x1100}, VRs: []vr.VR{vr.DecimalString}, Name: "Reconstruction Diameter", Keyword: "ReconstructionDiameter", VM: "1", Retired: false},
	{0x0018, 0x1110}: {Tag: Tag{0x0018, 0x1110}, VRs: []vr.VR{vr.DecimalString}, Name: "Distance Source to Detector", Keyword: "DistanceSourceToDetector", VM: "1", Retired: false},
	{0x0018, 0x1111}: {Tag: Tag{0x0018, 0x1111}, VRs: []vr.VR{vr.DecimalString}, Name: "Distance Source to Patient", Keyword: "DistanceSourceToPatient", VM: "1", Retired: false},
	{0x0018, 0x1120}: {Tag: Tag{0x0018, 0x1120}, VRs: []vr.VR{vr.DecimalString}, Name: "Gantry/Detector Tilt", Keyword: "GantryDetectorTilt", VM: "1", Retired: false},
	{0x0018, 0x1130}: {Tag: Tag{0x0018, 0x1130}, VRs: []vr.VR{vr.DecimalString}, Name: "Table Height", Keyword: "TableHeight", VM: "1", Retired: false},
	{0x0018, 0x1140}: {Tag: Tag{0x0018, 0x1140}, VRs: []vr.VR{vr.CodeString}, Name: "Rotation Direction", Keyword: "RotationDirection", VM: "1", Retired: false},
	{0x0018, 0x1150}: {Tag: Tag{0x0018, 0x1150}, VRs: []vr.VR{vr.IntegerString}, Name: "Exposure Time", Keyword: "ExposureTime", VM: "1", Retired: false},
	{0x0018, 0x1151}: {Tag: Tag{0x0018, 0x1151}, VRs: []vr.VR{vr.IntegerString}, Name: "X-Ray Tube Current", Keyword: "XRayTubeCurrent", VM: "1", Retired: false},
	{0x0018, 0x1152}: {Tag: Tag{0x0018, 0x1152}, VRs: []vr.VR{vr.IntegerString}, Name: "Exposure", Keyword: "Exposure", VM: "1", Retired: false},
	{0x0018, 0x1153}: {Tag: Tag{0x0018, 0x1153}, VRs: []vr.VR{vr.IntegerString}, Name: "Exposure Time in microseconds", Keyword: "ExposureTimeInms", VM: "1", Retired: false},
	{0x0018, 0x1160}: {Tag: Tag{0x0018, 0x1160}, VRs: []vr.VR{vr.ShortString}, Name: "Filter Type", Keyword: "FilterType", VM: "1", Retired: false},
	{0x0018, 0x1170}: {Tag: Tag{0x0018, 0x1170}, VRs: []vr.VR{vr.IntegerString}, Name: "Generator Power", Keyword: "GeneratorPower", VM: "1", Retired: false},
	{0x0018, 0x1190}: {Tag: Tag{0x0018, 0x1190}, VRs: []vr.VR{vr.DecimalString}, Name: "Focal Spot(s)", Keyword: "FocalSpots", VM: "1-n", Retired: false},
	{0x0018, 0x1191}: {Tag: Tag{0x0018, 0x1191}, VRs: []vr.VR{vr.DecimalString}, Name: "Focal Spot Size", Keyword: "FocalSpotSize", VM: "1", Retired: true},
	{0x0018, 0x11A0}: {Tag: Tag{0x0018, 0x11A0}, VRs: []vr.VR{vr.DecimalString}, Name: "Body Part Thickness", Keyword: "BodyPartThickness", VM: "1", Retired: false},
	{0x0018, 0x11A2}: {Tag: Tag{0x0018, 0x11A2}, VRs: []vr.VR{vr.DecimalString}, Name: "Compression Force", Keyword: "CompressionForce", VM: "1", Retired: false},
	{0x0018, 0x7060}: {Tag: Tag{0x0018, 0x7060}, VRs: []vr.VR{vr.CodeString}, Name: "Exposure Control Mode", Keyword: "ExposureControlMode", VM: "1", Retired: false},
	{0x0018, 0x7062}: {Tag: Tag{0x0018, 0x7062}, VRs: []vr.VR{vr.CodeString}, Name: "Exposure Status", Keyword: "ExposureStatus", VM: "1", Retired: false},
	{0x0018, 0x1147}: {Tag: Tag{0x0018, 0x1147}, VRs: []vr.VR{vr.CodeString}, Name: "Field of View Shape", Keyword: "FieldOfViewShape", VM: "1", Retired: false},
	{0x0018, 0x1149}: {Tag: Tag{0x0018, 0x1149}, VRs: []vr.VR{vr.IntegerString}, Name: "Field of View Dimension(s)", Keyword: "FieldOfViewDimensions", VM: "1-2", Retired: false},
	{0x0018, 0x115E}: {Tag: Tag{0x0018, 0x115E}, VRs: []vr.VR{vr.DecimalString}, Name: "Image and Fluoroscopy Area Dose Product", Keyword: "ImageAndFluoroscopyAreaDoseProduct", VM: "1", Retired: false},
	{0x0018, 0x1210}: {Tag: Tag{0x0018, 0x1210}, VRs: []vr.VR{vr.ShortString}, Name: "Convolution Kernel", Keyword: "ConvolutionKernel", VM: "1-n", Retired: false},
	{0x0018, 0x9306}: {Tag: Tag{0x0018, 0x9306}, VRs: []vr.VR{vr.FloatingPointDouble}, Name: "Single Collimation Width", Keyword: "SingleCollimationWidth", VM: "1", Retired: false},
	{0x0018, 0x9307}: {Tag: Tag{0x0018, 0x9307}, VRs: []vr.VR{vr.FloatingPointDouble}, Name: "Total Collimation Width", Keyword: "TotalCollimationWidth", VM: "1", Retired: false},
	{0x0018, 0x9309}: {Tag: Tag{0x0018, 0x9309}, VRs: []vr.VR{vr.FloatingPointDouble}, Name: "Table Speed", Keyword: "TableSpeed", VM: "1", Retired: false},
	{0x0018, 0x9310}: {Tag: Tag{0x0018, 0x9310}, VRs: []vr.VR{vr.FloatingPointDouble}, Name: "Table Feed per Rotation", Keyword: "TableFeedPerRotation", VM: "1", Retired: false},
	{0x0018, 0x9311}: {Tag: Tag{0x0018, 0x9311}, VRs: []vr.VR{vr.FloatingPointDouble}, Name: "Spiral Pitch Factor", Keyword: "SpiralPitchFactor", VM: "1", Retired: false},
	{0x0018, 0x1000}: {Tag: Tag{0x0018, 0x1000}, VRs: []vr.VR{vr.LongString}, Name: "Device Serial Number", Keyword: "DeviceSerialNumber", VM: "1", Retired: false},
	{0x0018, 0x1200}: {Tag: Tag{0x0018, 0x1200}, VRs: []vr.VR{vr.Date}, Name: "Date of Last Calibration", Keyword: "DateOfLastCalibration", VM: "1-n", Retired: false},
	{0x0018, 0x1201}: {Tag: Tag{0x0018, 0x1201}, VRs: []vr.VR{vr.Time}, Name: "Time of Last Calibration", Keyword: "TimeOfLastCalibration", VM: "1-n", Retired: false},
	{0x0018, 0x7000}: {Tag: Tag{0x0018, 0x7000}, VRs: []vr.VR{vr.CodeString}, Name: "Detector Conditions Nominal Flag", Keyword: "DetectorConditionsNominalFlag", VM: "1", Retired: false},
	{0x0018, 0x7001}: {Tag: Tag{0x0018, 0x7001}, VRs: []vr.VR{vr.DecimalString}, Name: "Detector Temperature", Keyword: "DetectorTemperature", VM: "1", Retired: false},
	{0x0018, 0x7004}: {Tag: Tag{0x0018, 0x7004}, VRs: []vr.VR{vr.CodeString}, Name: "Detector Type", Keyword: "DetectorType", VM: "1", Retired: false},
	{0x0018, 0x7005}: {Tag: Tag{0x0018, 0x7005}, VRs: []vr.VR{vr.CodeString}, Name: "Detector Configuration", Keyword: "DetectorConfiguration", VM: "1", Retired: false},
	{0x0018, 0x7006}: {Tag: Tag{0x0018, 0x7006}, VRs: []vr.VR{vr.LongText}, Name: "Detector Description", Keyword: "DetectorDescription", VM: "1", Retired: false},
	{0x0018, 0x700A}: {Tag: Tag{0x0018, 0x700A}, VRs: []vr.VR{vr.ShortString}, Name: "Detector ID", Keyword: "DetectorID", VM: "1", Retired: false},
	{0x0018, 0x701A}: {Tag: Tag{0x0018, 0x701A}, VRs: []vr.VR{vr.DecimalString}, Name: "Detector Binning", Keyword: "DetectorBinning", VM: "2", Retired: false},
	{0x0018, 0x7020}: {Tag: Tag{0x0018, 0x7020}, VRs: []vr.VR{vr.DecimalString}, Name: "Detector Element Physical Size", Keyword: "DetectorElementPhysicalSize", VM: "2", Retired: false},
	{0x0018, 0x7022}: {Tag: Tag{0x0018, 0x7022}, VRs: []vr.VR{vr.DecimalString}, Name: "Detector Element Spacing", Keyword: "DetectorElementSpacing", VM: "2", Retired: false},
	{0x0018, 0x703A}: {Tag: Tag{0x0018, 0x703A}, VRs: []vr.VR{vr.LongString}, Name: "Detector Manufacturer Name", Keyword: "DetectorManufacturerName", VM: "1", Retired: false},
	{0x0018, 0x703C}: {Tag: Tag{0x0018, 0x703C}, VRs: []vr.VR{vr.LongString}, Name: "Detector Manufacturer's Model Name", Keyword: "DetectorManufacturerModelName", VM: "1", Retired: false},
	{0x0018, 0x7030}: {Tag: Tag{0x0018, 0x7030}, VRs: []vr.VR{vr.DecimalString}, Name: "Field of View Origin", Keyword: "FieldOfViewOrigin", VM: "2", Retired: false},
	{0x0018, 0x1166}: {Tag: Tag{0x0018, 0x1166}, VRs: []vr.VR{vr.CodeString}, Name: "Grid", Keyword: "Grid", VM: "1-n", Retired: false},
	{0x0040, 0x0244}: {Tag: Tag{0x0040, 0x0244}, VRs: []vr.VR{vr.Date}, Name: "Performed Procedure Step Start Date", Keyword: "PerformedProcedureStepStartDate", VM: "1", Retired: false},
	{0x0040, 0x0245}: {Tag: Tag{0x0040, 0x0245}, VRs: []vr.VR{vr.Time}, Name: "Performed Procedure Step Start Time", Keyword: "PerformedProcedureStepStartTime", VM: "1", Retired: false},
	{0x0040, 0x0250}: {Tag: Tag{0x0040, 0x0250}, VRs: []vr.VR{vr.Date}, Name: "Performed Procedure Step End Date", Keyword: "PerformedProcedureStepEndDate", VM: "1", Retired: false},
	{0x0040, 0x0251}: {Tag: Tag{0x0040, 0x0251}, VRs: []vr.VR{vr.Time}, Name: "Performed Procedure Step End Time", Keyword: "PerformedProcedureStepEndTime", VM: "1", Retired: false},
	{0x0040, 0x0254}: {Tag: Tag{0x0040, 0x0254}, VRs: []vr.VR{vr.LongString}, Name: "Performed Procedure Step Description", Keyword: "PerformedProcedureStepDescription", VM: "1", Retired: false},
	{0x0032, 0x1060}: {Tag: Tag{0x0032, 0x1060}, VRs: []vr.VR{vr.LongString}, Name: "Requested Procedure Description", Keyword: "RequestedProcedureDescription", VM: "1", Retired: false},
	{0x0040, 0x0275}: {Tag: Tag{0x0040, 0x0275}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Request Attributes Sequence", Keyword: "RequestAttributesSequence", VM: "1", Retired: false},
	{0x0020, 0x9158}: {Tag: Tag{0x0020, 0x9158}, VRs: []vr.VR{vr.LongText}, Name: "Frame Comments", Keyword: "FrameComments", VM: "1", Retired: false},
	{0x0020, 0x9157}: {Tag: Tag{0x0020, 0x9157}, VRs: []vr.VR{vr.UnsignedLong}, Name: "Dimension Index Values", Keyword: "FrameOrder", VM: "1-n", Retired: false},
	{0x0020, 0x9165}: {Tag: Tag{0x0020, 0x9165}, VRs: []vr.VR{vr.AttributeTag}, Name: "Dimension Index Pointer", Keyword: "DimensionIndexPointer", VM: "1", Retired: false},
	{0x0020, 0x4000}: {Tag: Tag{0x0020, 0x4000}, VRs: []vr.VR{vr.LongText}, Name: "Image Comments", Keyword: "ImageComments", VM: "1", Retired: false},
	{0x0040, 0xA160}: {Tag: Tag{0x0040, 0xA160}, VRs: []vr.VR{vr.UnlimitedText}, Name: "Text Value", Keyword: "TextComments", VM: "1", Retired: false},
	{0x2030, 0x0020}: {Tag: Tag{0x2030, 0x0020}, VRs: []vr.VR{vr.LongString}, Name: "Text String", Keyword: "TextString", VM: "1", Retired: false},
	{0x0400, 0x0550}: {Tag: Tag{0x0400, 0x0550}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Original Attributes Sequence", Keyword: "OriginalAttributesSequence", VM: "1", Retired: false},
	{0x0400, 0x0561}: {Tag: Tag{0x0400, 0x0561}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Modifying System", Keyword: "AddOtherSequence", VM: "1", Retired: false},
	{0x0400, 0x0500}: {Tag: Tag{0x0400, 0x0500}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Digital Signatures Sequence", Keyword: "DigitalSignaturesSequence", VM: "1", Retired: false},
	{0x0072, 0x0064}: {Tag: Tag{0x0072, 0x0064}, VRs: []vr.VR{vr.SignedLong}, Name: "Selector SL Value", Keyword: "SelectorSLValue", VM: "1", Retired: false},
	{0x0008, 0x0102}: {Tag: Tag{0x0008, 0x0102}, VRs: []vr.VR{vr.ShortString}, Name: "Mapping Resource", Keyword: "DictionaryVR", VM: "1", Retired: false},
	{0x0040, 0x9224}: {Tag: Tag{0x0040, 0x9224}, VRs: []vr.VR{vr.FloatingPointDouble}, Name: "Floating Point Value", Keyword: "FloatingPointValue", VM: "1-n", Retired: false},
	{0x4010, 0x1001}: {Tag: Tag{0x4010, 0x1001}, VRs: []vr.VR{vr.ShortText}, Name: "OOI ID", Keyword: "OOIID", VM: "1", Retired: false},
	{0x4010, 0x1002}: {Tag: Tag{0x4010, 0x1002}, VRs: []vr.VR{vr.CodeString}, Name: "OOI ID Type", Keyword: "OOITypeAttr", VM: "1", Retired: false},
	{0x4010, 0x1004}: {Tag: Tag{0x4010, 0x1004}, VRs: []vr.VR{vr.CodeString}, Name: "OOI Type", Keyword: "OOIType", VM: "1", Retired: false},
	{0x4010, 0x1006}: {Tag: Tag{0x4010, 0x1006}, VRs: []vr.VR{vr.CodeString}, Name: "OOI Owner Type", Keyword: "OOIOwnerIDType", VM: "1", Retired: false},
	{0x4010, 0x1007}: {Tag: Tag{0x4010, 0x1007}, VRs: []vr.VR{vr.FloatingPointSingle}, Name: "OOI Size", Keyword: "OOISize", VM: "3", Retired: false},
	{0x4010, 0x106C}: {Tag: Tag{0x4010, 0x106C}, VRs: []vr.VR{vr.PersonName}, Name: "OOI Owner Name", Keyword: "OOIOwnerName", VM: "1", Retired: false},
	{0x4010, 0x1062}: {Tag: Tag{0x4010, 0x1062}, VRs: []vr.VR{vr.LongString}, Name: "Owner ID", Keyword: "OOIOwnerID", VM: "1", Retired: false},
	{0x4010, 0x1067}: {Tag: Tag{0x4010, 0x1067}, VRs: []vr.VR{vr.CodeString}, Name: "OOI Owner Category", Keyword: "OOIOwnerCategory", VM: "1", Retired: false},
	{0x4010, 0x1008}: {Tag: Tag{0x4010, 0x1008}, VRs: []vr.VR{vr.LongString}, Name: "OOI Label", Keyword: "OOILabel", VM: "1", Retired: false},
	{0x4010, 0x1037}: {Tag: Tag{0x4010, 0x1037}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Potential Threat Object Sequence", Keyword: "PTOSequence", VM: "1", Retired: false},
	{0x4010, 0x1038}: {Tag: Tag{0x4010, 0x1038}, VRs: []vr.VR{vr.SequenceOfItems}, Name: "PTO Representation Sequence", Keyword: "PTORepresentationSequence", VM: "1", Retired: false},
	{0x4010, 0x1039}: {Tag: Tag{0x4010, 0x1039}, VRs: []vr.VR{vr.UnsignedLong}, Name: "Potential Threat Object ID", Keyword: "PotentialThreatObjectID", VM: "1", Retired: false},
	{0x4010, 0x1041}: {Tag: Tag{0x4010, 0x1041}, VRs: []vr.VR{vr.LongText}, Name: "Threat Category Description", Keyword: "ThreatCategoryDescription", VM: "1", Retired: false},
	{0x4010, 0x1055}: {Tag: Tag{0x4010, 0x1055}, VRs: []vr.VR{vr.FloatingPointSingle}, Name: "Confidence", Keyword: "ThreatConfidenceScore", VM: "1-n", Retired: false},
	{0x4010, 0x1052}: {Tag: Tag{0x4010, 0x1052}, VRs: []vr.VR{vr.FloatingPointSingle}, Name: "ATD Abort Flag", Keyword: "ThreatProbability", VM: "1", Retired: false},
	{0x4010, 0x1034}: {Tag: Tag{0x4010, 0x1034}, VRs: []vr.VR{vr.CodeString}, Name: "Alarm Decision", Keyword: "AlarmDecision", VM: "1", Retired: false},
	{0x4010, 0x1044}: {Tag: Tag{0x4010, 0x1044}, VRs: []vr.VR{vr.FloatingPointSingle}, Name: "Bounding Box Top Left", Keyword: "BoundingBoxTopLeft", VM: "2", Retired: false},
	{0x4010, 0x1045}: {Tag: Tag{0x4010, 0x1045}, VRs: []vr.VR{vr.FloatingPointSingle}, Name: "Bounding Box Bottom Right", Keyword: "BoundingBoxBottomRight", VM: "2", Retired: false},
	{0x4010, 0x1013}: {Tag: Tag{0x4010, 0x1013}, VRs: []vr.VR{vr.LongString}, Name: "Carrier ID", Keyword: "CarrierCode", VM: "1", Retired: false},
	{0x4010, 0x1033}: {Tag: Tag{0x4010, 0x1033}, VRs: []vr.VR{vr.LongString}, Name: "Routing ID", Keyword: "CarrierCode", VM: "1", Retired: false},
	{0x4010, 0x1011}: {Tag: Tag{0x4010, 0x1011}, VRs: []vr.VR{vr.LongText}, Name: "Carrier Description", Keyword: "CarrierName", VM: "1", Retired: false},
	{0x4010, 0x1029}: {Tag: Tag{0x4010, 0x1029}, VRs: []vr.VR{vr.LongString}, Name: "Flight Origin", Keyword: "ArrivalAirport", VM: "1", Retired: false},
	{0x4010, 0x102A}: {Tag: Tag{0x4010, 0x102A}, VRs: []vr.VR{vr.LongString}, Name: "Flight Destination", Keyword: "DepartureAirport", VM: "1", Retired: false},
	{0x4010, 0x1028}: {Tag: Tag{0x4010, 0x1028}, VRs: []vr.VR{vr.ShortString}, Name: "Flight Number", Keyword: "FlightNumber", VM: "1", Retired: false},
}
