package anonymize

import "github.com/dcmxlabs/dcmx/tag"

// actionTable builds the per-tag action map for cfg.Profile (adding the
// Clean Descriptors actions for ProfileClean), then layers cfg.Options and
// finally cfg.CustomActions on top, in that order, so custom overrides
// always win. ProfileCustom skips both the profile and the Options layer.
// The CleanDescriptors and CleanPixelData options are not read: descriptor
// cleaning follows the profile alone, and pixel data is never cleaned.
//
// Reference: PS3.15 Annex E Table E.1-1, Basic Application Level
// Confidentiality Profile Attributes.
func actionTable(cfg Config) map[tag.Tag]Action {
	actions := make(map[tag.Tag]Action)

	switch cfg.Profile {
	case ProfileCustom:
		// No automatic actions; CustomActions below is the whole table.
	default:
		basicProfile(actions)
		if cfg.Profile == ProfileClean {
			cleanDescriptorsProfile(actions)
		}
		applyOptions(actions, cfg.Options)
	}

	for t, action := range cfg.CustomActions {
		actions[t] = action
	}

	return actions
}

func basicProfile(actions map[tag.Tag]Action) {
	// Patient Module
	actions[tag.PatientName] = ActionDummy
	actions[tag.PatientID] = ActionDummy
	actions[tag.PatientBirthDate] = ActionEmpty
	actions[tag.PatientBirthTime] = ActionRemove
	actions[tag.OtherPatientIDs] = ActionRemove
	actions[tag.OtherPatientNames] = ActionRemove
	actions[tag.PatientBirthName] = ActionRemove
	actions[tag.PatientMotherBirthName] = ActionRemove
	actions[tag.MedicalRecordLocator] = ActionRemove
	actions[tag.EthnicGroup] = ActionRemove
	actions[tag.PatientComments] = ActionRemove
	actions[tag.PatientSpeciesDescription] = ActionRemove
	actions[tag.PatientBreedDescription] = ActionRemove
	actions[tag.ResponsiblePerson] = ActionRemove
	actions[tag.ResponsibleOrganization] = ActionRemove
	actions[tag.PatientIdentityRemoved] = ActionDummy
	actions[tag.PatientSexNeutered] = ActionRemove

	// General Study Module
	actions[tag.StudyInstanceUID] = ActionUID
	actions[tag.StudyDate] = ActionEmpty
	actions[tag.StudyTime] = ActionEmpty
	actions[tag.ReferringPhysicianName] = ActionEmpty
	actions[tag.ReferringPhysicianAddress] = ActionRemove
	actions[tag.ReferringPhysicianTelephoneNumbers] = ActionRemove
	actions[tag.StudyID] = ActionEmpty
	actions[tag.AccessionNumber] = ActionEmpty
	actions[tag.IssuerOfAccessionNumberSequence] = ActionRemove
	actions[tag.StudyDescription] = ActionClean
	actions[tag.PhysiciansOfRecord] = ActionRemove
	actions[tag.NameOfPhysiciansReadingStudy] = ActionRemove
	actions[tag.RequestingPhysician] = ActionRemove
	actions[tag.ConsultingPhysicianName] = ActionRemove
	actions[tag.AdmittingDiagnosesDescription] = ActionRemove

	// General Series Module
	actions[tag.SeriesInstanceUID] = ActionUID
	actions[tag.SeriesDate] = ActionEmpty
	actions[tag.SeriesTime] = ActionEmpty
	actions[tag.SeriesDescription] = ActionClean
	actions[tag.PerformingPhysicianName] = ActionEmpty
	actions[tag.OperatorsName] = ActionEmpty
	actions[tag.ProtocolName] = ActionClean
	actions[tag.RequestAttributesSequence] = ActionRemove

	// General Equipment Module
	actions[tag.InstitutionName] = ActionRemove
	actions[tag.InstitutionAddress] = ActionRemove
	actions[tag.InstitutionalDepartmentName] = ActionRemove
	actions[tag.DeviceSerialNumber] = ActionRemove

	// General Image Module
	actions[tag.SOPInstanceUID] = ActionUID
	actions[tag.AcquisitionDate] = ActionEmpty
	actions[tag.AcquisitionTime] = ActionEmpty
	actions[tag.AcquisitionDateTime] = ActionEmpty
	actions[tag.ContentDate] = ActionEmpty
	actions[tag.ContentTime] = ActionEmpty
	actions[tag.InstanceCreationDate] = ActionEmpty
	actions[tag.InstanceCreationTime] = ActionEmpty
	actions[tag.InstanceCreatorUID] = ActionRemove
	actions[tag.DerivationDescription] = ActionClean

	// SOP Common Module
	actions[tag.TimezoneOffsetFromUTC] = ActionRemove
	actions[tag.DigitalSignaturesSequence] = ActionRemove
	actions[tag.MediaStorageSOPInstanceUID] = ActionUID

	// Miscellaneous identifying attributes scattered across modules
	actions[tag.ImageComments] = ActionRemove
	actions[tag.FrameComments] = ActionRemove
	actions[tag.RequestingService] = ActionRemove
	actions[tag.CurrentPatientLocation] = ActionRemove
	actions[tag.PatientInstitutionResidence] = ActionRemove
	actions[tag.ModifiedAttributesSequence] = ActionRemove
	actions[tag.OriginalAttributesSequence] = ActionRemove
	actions[tag.PersonName] = ActionRemove
	actions[tag.PersonAddress] = ActionRemove
	actions[tag.PersonTelephoneNumbers] = ActionRemove
	actions[tag.TextComments] = ActionRemove
	actions[tag.TextString] = ActionRemove
	actions[tag.AdditionalPatientHistory] = ActionRemove
	actions[tag.Occupation] = ActionRemove
	actions[tag.MilitaryRank] = ActionRemove
	actions[tag.BranchOfService] = ActionRemove
	actions[tag.CountryOfResidence] = ActionRemove
	actions[tag.RegionOfResidence] = ActionRemove
	actions[tag.PerformedProcedureStepStartDate] = ActionEmpty
	actions[tag.PerformedProcedureStepStartTime] = ActionEmpty
	actions[tag.PerformedProcedureStepEndDate] = ActionEmpty
	actions[tag.PerformedProcedureStepEndTime] = ActionEmpty
}

// cleanDescriptorsProfile sets a handful of free-text descriptors to Clean.
// Most are already Clean in basicProfile; the changes are ImageComments,
// which basicProfile removes, and RequestedProcedureDescription and
// PerformedProcedureStepDescription, which basicProfile leaves unchanged.
func cleanDescriptorsProfile(actions map[tag.Tag]Action) {
	actions[tag.StudyDescription] = ActionClean
	actions[tag.SeriesDescription] = ActionClean
	actions[tag.ProtocolName] = ActionClean
	actions[tag.DerivationDescription] = ActionClean
	actions[tag.ImageComments] = ActionClean
	actions[tag.RequestedProcedureDescription] = ActionClean
	actions[tag.PerformedProcedureStepDescription] = ActionClean
}

// applyOptions layers Options on top of the base profile's actions. Order
// matters: later assignments win, matching the teacher profile's
// straight-line if-chain.
func applyOptions(actions map[tag.Tag]Action, opts Options) {
	if opts.RetainDeviceIdentity {
		actions[tag.InstitutionName] = ActionKeep
		actions[tag.StationName] = ActionKeep
		actions[tag.DeviceSerialNumber] = ActionKeep
		actions[tag.InstitutionalDepartmentName] = ActionKeep
	}

	if opts.RetainPatientCharacteristics {
		actions[tag.PatientAge] = ActionKeep
		actions[tag.PatientSex] = ActionKeep
		actions[tag.PatientSize] = ActionKeep
		actions[tag.PatientWeight] = ActionKeep
	} else {
		actions[tag.PatientAge] = ActionEmpty
		actions[tag.PatientSex] = ActionEmpty
		actions[tag.PatientSize] = ActionRemove
		actions[tag.PatientWeight] = ActionRemove
	}

	if opts.RetainUIDs {
		actions[tag.StudyInstanceUID] = ActionKeep
		actions[tag.SeriesInstanceUID] = ActionKeep
		actions[tag.SOPInstanceUID] = ActionKeep
		actions[tag.MediaStorageSOPInstanceUID] = ActionKeep
	}

	if opts.RetainLongitudinalTemporalInfo {
		for _, t := range []tag.Tag{
			tag.StudyDate, tag.StudyTime,
			tag.SeriesDate, tag.SeriesTime,
			tag.AcquisitionDate, tag.AcquisitionTime, tag.AcquisitionDateTime,
			tag.ContentDate, tag.ContentTime,
		} {
			actions[t] = ActionCallback
		}
	}
}
