package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		uid       string
		wantFound bool
		wantInfo  Info
	}{
		{
			name:      "valid transfer syntax",
			uid:       "1.2.840.10008.1.2",
			wantFound: true,
			wantInfo: Info{
				UID:  "1.2.840.10008.1.2",
				Name: "Implicit VR Little Endian",
				Type: TypeTransferSyntax,
				Info: "Default Transfer Syntax for DICOM",
			},
		},
		{
			name:      "valid SOP class",
			uid:       "1.2.840.10008.5.1.4.1.1.2",
			wantFound: true,
			wantInfo: Info{
				UID:  "1.2.840.10008.5.1.4.1.1.2",
				Name: "CT Image Storage",
				Type: TypeSOPClass,
			},
		},
		{
			name:      "retired UID",
			uid:       "1.2.840.10008.1.2.2",
			wantFound: true,
			wantInfo: Info{
				UID:     "1.2.840.10008.1.2.2",
				Name:    "Explicit VR Big Endian",
				Type:    TypeTransferSyntax,
				Retired: true,
			},
		},
		{name: "unknown UID", uid: "1.2.3.4.5.6.7.8.9", wantFound: false, wantInfo: Info{}},
		{name: "empty string", uid: "", wantFound: false, wantInfo: Info{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, found := Lookup(tt.uid)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantInfo, info)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		uid      string
		wantName string
	}{
		{name: "transfer syntax", uid: "1.2.840.10008.1.2.1", wantName: "Explicit VR Little Endian"},
		{name: "SOP class", uid: "1.2.840.10008.5.1.4.1.1.4", wantName: "MR Image Storage"},
		{name: "unknown UID", uid: "1.2.3.4.5", wantName: ""},
		{name: "empty string", uid: "", wantName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, Name(tt.uid))
		})
	}
}

func TestIsRetired(t *testing.T) {
	tests := []struct {
		name        string
		uid         string
		wantRetired bool
	}{
		{name: "retired transfer syntax", uid: "1.2.840.10008.1.2.2", wantRetired: true},
		{name: "active transfer syntax", uid: "1.2.840.10008.1.2", wantRetired: false},
		{name: "active SOP class", uid: "1.2.840.10008.5.1.4.1.1.2", wantRetired: false},
		{name: "unknown UID", uid: "1.2.3.4.5", wantRetired: false},
		{name: "empty string", uid: "", wantRetired: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRetired, IsRetired(tt.uid))
		})
	}
}

func TestGetType(t *testing.T) {
	tests := []struct {
		name     string
		uid      string
		wantType Type
	}{
		{name: "transfer syntax", uid: "1.2.840.10008.1.2", wantType: TypeTransferSyntax},
		{name: "SOP class", uid: "1.2.840.10008.5.1.4.1.1.2", wantType: TypeSOPClass},
		{name: "unknown UID", uid: "1.2.3.4.5", wantType: ""},
		{name: "empty string", uid: "", wantType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, GetType(tt.uid))
		})
	}
}

func TestIsTransferSyntax(t *testing.T) {
	tests := []struct {
		name           string
		uid            string
		wantTransferSx bool
	}{
		{name: "implicit VR little endian", uid: "1.2.840.10008.1.2", wantTransferSx: true},
		{name: "explicit VR little endian", uid: "1.2.840.10008.1.2.1", wantTransferSx: true},
		{name: "JPEG baseline", uid: "1.2.840.10008.1.2.4.50", wantTransferSx: true},
		{name: "RLE lossless", uid: "1.2.840.10008.1.2.5", wantTransferSx: true},
		{name: "SOP class (not transfer syntax)", uid: "1.2.840.10008.5.1.4.1.1.2", wantTransferSx: false},
		{name: "unknown UID", uid: "1.2.3.4.5", wantTransferSx: false},
		{name: "empty string", uid: "", wantTransferSx: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTransferSx, IsTransferSyntax(tt.uid))
		})
	}
}

func TestIsSOPClass(t *testing.T) {
	tests := []struct {
		name         string
		uid          string
		wantSOPClass bool
	}{
		{name: "CT image storage", uid: "1.2.840.10008.5.1.4.1.1.2", wantSOPClass: true},
		{name: "MR image storage", uid: "1.2.840.10008.5.1.4.1.1.4", wantSOPClass: true},
		{name: "transfer syntax (not SOP class)", uid: "1.2.840.10008.1.2", wantSOPClass: false},
		{name: "unknown UID", uid: "1.2.3.4.5", wantSOPClass: false},
		{name: "empty string", uid: "", wantSOPClass: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSOPClass, IsSOPClass(tt.uid))
		})
	}
}

// TestUIDMapCompleteness verifies that every exported UID constant used
// elsewhere in this module resolves in the dictionary.
func TestUIDMapCompleteness(t *testing.T) {
	exportedUIDs := []struct {
		name string
		uid  UID
	}{
		{"ImplicitVRLittleEndian", ImplicitVRLittleEndian},
		{"ExplicitVRLittleEndian", ExplicitVRLittleEndian},
		{"ExplicitVRBigEndian", ExplicitVRBigEndian},
		{"DeflatedExplicitVRLittleEndian", DeflatedExplicitVRLittleEndian},
		{"JPEGBaseline8Bit", JPEGBaseline8Bit},
		{"JPEGExtended12Bit", JPEGExtended12Bit},
		{"JPEGLosslessNonHierarchical", JPEGLosslessNonHierarchical},
		{"JPEGLosslessNonHierarchicalFirstOrder", JPEGLosslessNonHierarchicalFirstOrder},
		{"JPEGLSLossless", JPEGLSLossless},
		{"JPEGLSNearLossless", JPEGLSNearLossless},
		{"JPEG2000Lossless", JPEG2000Lossless},
		{"JPEG2000", JPEG2000},
		{"RLELossless", RLELossless},
		{"ComputedRadiographyImageStorage", ComputedRadiographyImageStorage},
		{"CTImageStorage", CTImageStorage},
		{"MRImageStorage", MRImageStorage},
		{"SecondaryCaptureImageStorage", SecondaryCaptureImageStorage},
		{"AITDeviceRadiographyImageStorageForPresentation", AITDeviceRadiographyImageStorageForPresentation},
	}

	for _, tt := range exportedUIDs {
		t.Run(tt.name, func(t *testing.T) {
			_, found := Lookup(tt.uid.String())
			assert.True(t, found, "exported UID %s not found in uidMap", tt.name)
		})
	}
}

// TestUIDMapStatistics checks coverage against this module's curated
// dictionary rather than the full several-hundred-entry Part 6 registry
// (see DESIGN.md).
func TestUIDMapStatistics(t *testing.T) {
	assert.Greater(t, len(uidMap), 30, "uidMap should contain a useful minimum of entries")

	var transferSyntaxCount, sopClassCount, retiredCount int
	for _, info := range uidMap {
		switch info.Type {
		case TypeTransferSyntax:
			transferSyntaxCount++
		case TypeSOPClass, TypeMetaSOPClass:
			sopClassCount++
		}
		if info.Retired {
			retiredCount++
		}
	}

	assert.Greater(t, transferSyntaxCount, 15, "should have a useful minimum of transfer syntaxes")
	assert.Greater(t, sopClassCount, 10, "should have a useful minimum of SOP classes")
	assert.Greater(t, retiredCount, 0, "should have at least one retired UID")
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		uid      string
		wantErr  bool
		wantInfo Info
	}{
		{
			name: "valid transfer syntax",
			uid:  "1.2.840.10008.1.2",
			wantInfo: Info{
				UID: "1.2.840.10008.1.2", Name: "Implicit VR Little Endian",
				Type: TypeTransferSyntax, Info: "Default Transfer Syntax for DICOM",
			},
		},
		{
			name: "valid SOP class",
			uid:  "1.2.840.10008.5.1.4.1.1.2",
			wantInfo: Info{
				UID: "1.2.840.10008.5.1.4.1.1.2", Name: "CT Image Storage", Type: TypeSOPClass,
			},
		},
		{name: "unknown UID", uid: "1.2.3.4.5.6.7.8.9", wantErr: true},
		{name: "empty string", uid: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Find(tt.uid)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantInfo, info)
		})
	}
}

func TestFindByName(t *testing.T) {
	tests := []struct {
		name     string
		uidName  string
		wantErr  bool
		wantUID  string
		wantType Type
	}{
		{name: "transfer syntax", uidName: "Implicit VR Little Endian", wantUID: "1.2.840.10008.1.2", wantType: TypeTransferSyntax},
		{name: "SOP class", uidName: "CT Image Storage", wantUID: "1.2.840.10008.5.1.4.1.1.2", wantType: TypeSOPClass},
		{name: "unknown name", uidName: "Nonexistent UID Name", wantErr: true},
		{name: "empty string", uidName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := FindByName(tt.uidName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantUID, info.UID)
			assert.Equal(t, tt.wantType, info.Type)
			assert.Equal(t, tt.uidName, info.Name)
		})
	}
}

func TestFindAllByType(t *testing.T) {
	tests := []struct {
		name    string
		uidType Type
		wantMin int
	}{
		{name: "transfer syntaxes", uidType: TypeTransferSyntax, wantMin: 15},
		{name: "SOP classes", uidType: TypeSOPClass, wantMin: 10},
		{name: "nonexistent type", uidType: Type("Nonexistent Type"), wantMin: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := FindAllByType(tt.uidType)
			assert.GreaterOrEqual(t, len(results), tt.wantMin)
			for _, info := range results {
				assert.Equal(t, tt.uidType, info.Type)
			}
		})
	}
}
