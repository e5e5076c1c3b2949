// Package anonymize implements DICOM PS3.15 de-identification as a
// streaming token transform: Transform computes, from a parsed data set and
// a profile, the tags to drop and the replacement elements to insert, then
// folds both into a single transform with the same AddToken shape as every
// other p10 transform so it composes directly into a reader/writer
// pipeline.
//
// Value replacement (Dummy, Empty, Clean, UID, Hash, Callback) only applies
// at the root data-set level, matching p10.Insert's own scope: nested
// occurrences of the same tags inside sequence items pass through
// unchanged unless they also match a blanket removal rule (private tags,
// overlays, curves), which apply at any depth.
package anonymize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/p10"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/uid"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
)

// Profile is a DICOM PS3.15 de-identification profile.
type Profile int

const (
	// ProfileBasic is the Basic Application Level Confidentiality Profile (PS3.15 E.1).
	ProfileBasic Profile = iota
	// ProfileClean is Basic plus Clean Descriptors. Pixel data is not cleaned.
	ProfileClean
	// ProfileRetainUIDs is Basic but keeps original UIDs, for longitudinal studies.
	ProfileRetainUIDs
	// ProfileRetainDeviceIdentity is Basic but keeps device/institution attributes.
	ProfileRetainDeviceIdentity
	// ProfileCustom applies only the actions named in Config.CustomActions.
	ProfileCustom
)

// Action is the Table E.1-1 action to take for one attribute.
type Action int

const (
	ActionKeep     Action = iota // K - unchanged
	ActionRemove                 // X - deleted
	ActionEmpty                  // Z - zero-length
	ActionDummy                  // D - replaced with a non-identifying but VR-valid value
	ActionClean                  // C - replaced, preserving clinical meaning
	ActionUID                    // U - replaced with a freshly generated UID
	ActionHash                   // one-way hash, stable across elements sharing a value
	ActionCallback                // caller-supplied replacement
)

// Options configures behavior the base profile alone does not determine.
type Options struct {
	RetainUIDs                     bool
	RetainDeviceIdentity           bool
	RetainPatientCharacteristics   bool
	RetainLongitudinalTemporalInfo bool
	CleanPixelData                 bool
	CleanDescriptors               bool
	RemovePrivateTags              bool
	RemoveOverlays                 bool
	RemoveCurves                   bool
}

// Config is the complete configuration for a Transform.
type Config struct {
	Profile Profile
	Options Options

	PatientName     string
	PatientID       string
	InstitutionName string

	// CustomActions overrides or extends the profile's per-tag actions.
	CustomActions map[tag.Tag]Action
	// Callbacks supplies the replacement element for any tag mapped to
	// ActionCallback.
	Callbacks map[tag.Tag]func(*element.Element) (*element.Element, error)
}

func defaultOptionsForProfile(profile Profile) Options {
	switch profile {
	case ProfileBasic:
		return Options{RemovePrivateTags: true}
	case ProfileClean:
		return Options{RemovePrivateTags: true, CleanPixelData: true, CleanDescriptors: true}
	case ProfileRetainUIDs:
		return Options{RemovePrivateTags: true, RetainUIDs: true}
	case ProfileRetainDeviceIdentity:
		return Options{RemovePrivateTags: true, RetainDeviceIdentity: true}
	default:
		return Options{}
	}
}

// NewConfig builds a Config for profile with its default Options and
// "ANONYMOUS" as both the PatientName and PatientID replacement. An empty
// PatientName or PatientID also falls back to "ANONYMOUS" at apply time.
func NewConfig(profile Profile) Config {
	return Config{
		Profile:     profile,
		Options:     defaultOptionsForProfile(profile),
		PatientName: "ANONYMOUS",
		PatientID:   "ANONYMOUS",
	}
}

// Transform is a p10 token transform that applies de-identification to a
// root-level token stream: it drops every element an action table marks
// for removal, and replaces every element marked for value substitution,
// while passing all other tokens through unchanged.
type Transform struct {
	filter *p10.Filter
	insert *p10.Insert
}

// NewTransform computes the drop set and replacement elements for ds under
// cfg, and returns the streaming transform that applies them. ds is
// consulted only to decide which tags are present and to source values
// for Clean/Hash (which read the original text); the returned Transform
// does not retain ds.
func NewTransform(ds *dataset.DataSet, cfg Config) (*Transform, error) {
	actions := actionTable(cfg)

	var toDrop []tag.Tag
	var toInsert []*element.Element

	for _, elem := range ds.Elements() {
		t := elem.Tag()
		action, explicit := actions[t]
		if !explicit {
			if isPrivateTag(t) && cfg.Options.RemovePrivateTags {
				action = ActionRemove
			} else {
				action = ActionKeep
			}
		}

		switch action {
		case ActionKeep:
			continue
		case ActionRemove:
			toDrop = append(toDrop, t)
			continue
		}

		replacement, err := applyAction(elem, action, cfg)
		if err != nil {
			return nil, fmt.Errorf("anonymize: tag %s: %w", t, err)
		}
		toDrop = append(toDrop, t)
		if replacement != nil {
			toInsert = append(toInsert, replacement)
		}
	}

	dropSet := make(map[tag.Tag]bool, len(toDrop))
	for _, t := range toDrop {
		dropSet[t] = true
	}

	filter := p10.NewFilter(func(t tag.Tag, _ vr.VR, _ uint32, path dcmpath.Path) bool {
		if path.Len() != 1 {
			return !(blanketRemove(t, cfg.Options) || (cfg.Options.RemovePrivateTags && isPrivateTag(t)))
		}
		return !(dropSet[t] || blanketRemove(t, cfg.Options))
	}, false)

	insertDS, err := dataset.NewDataSetWithElements(toInsert)
	if err != nil {
		return nil, fmt.Errorf("anonymize: building replacement set: %w", err)
	}

	return &Transform{filter: filter, insert: p10.NewInsert(insertDS)}, nil
}

// AddToken folds tok through the drop filter and then the replacement
// insert, returning whatever tokens the caller should forward downstream.
func (tr *Transform) AddToken(tok p10.Token) ([]p10.Token, error) {
	dropped, err := tr.filter.AddToken(tok)
	if err != nil {
		return nil, err
	}
	var out []p10.Token
	for _, d := range dropped {
		inserted, err := tr.insert.AddToken(d)
		if err != nil {
			return nil, err
		}
		out = append(out, inserted...)
	}
	return out, nil
}

func blanketRemove(t tag.Tag, opts Options) bool {
	if opts.RemoveOverlays && t.Group&0xFF00 == 0x6000 {
		return true
	}
	if opts.RemoveCurves && t.Group&0xFF00 == 0x5000 {
		return true
	}
	return false
}

func isPrivateTag(t tag.Tag) bool {
	return t.Group%2 == 1
}

// applyAction computes the replacement element for elem under action. A
// nil element (which only a Callback can return) means the element is
// dropped with nothing put back; a replacement value that cannot be
// constructed is returned as an error.
func applyAction(elem *element.Element, action Action, cfg Config) (*element.Element, error) {
	switch action {
	case ActionEmpty:
		return replaceWithEmpty(elem)
	case ActionDummy:
		return replaceWithDummy(elem, cfg)
	case ActionClean:
		return cleanElement(elem)
	case ActionUID:
		return replaceUID(elem)
	case ActionHash:
		return hashElement(elem)
	case ActionCallback:
		cb, ok := cfg.Callbacks[elem.Tag()]
		if !ok {
			return nil, fmt.Errorf("no callback registered for tag %s", elem.Tag())
		}
		return cb(elem)
	default:
		return nil, fmt.Errorf("unhandled action %d", action)
	}
}

func replaceWithEmpty(elem *element.Element) (*element.Element, error) {
	var val value.Value
	var err error

	switch elem.VR() {
	case vr.IntegerString:
		val, err = value.NewIntValue(vr.IntegerString, nil)
	case vr.DecimalString:
		val, err = value.NewFloatValue(vr.DecimalString, nil)
	default:
		if elem.VR().IsStringType() {
			val, err = value.NewStringValue(elem.VR(), []string{""})
		} else {
			val, err = value.NewBytesValue(elem.VR(), []byte{})
		}
	}
	if err != nil {
		return nil, fmt.Errorf("empty value: %w", err)
	}
	return element.NewElement(elem.Tag(), elem.VR(), val)
}

func replaceWithDummy(elem *element.Element, cfg Config) (*element.Element, error) {
	var val value.Value
	var err error

	switch elem.Tag() {
	case tag.PatientName:
		val, err = value.NewStringValue(vr.PersonName, []string{orDefault(cfg.PatientName, "ANONYMOUS")})
	case tag.PatientID:
		val, err = value.NewStringValue(vr.LongString, []string{orDefault(cfg.PatientID, "ANONYMOUS")})
	case tag.InstitutionName:
		val, err = value.NewStringValue(vr.LongString, []string{orDefault(cfg.InstitutionName, "REMOVED")})
	case tag.PatientIdentityRemoved:
		val, err = value.NewStringValue(vr.CodeString, []string{"YES"})
	default:
		switch elem.VR() {
		case vr.PersonName:
			val, err = value.NewStringValue(vr.PersonName, []string{"ANONYMOUS"})
		case vr.Date:
			val, err = value.NewStringValue(vr.Date, []string{"19000101"})
		case vr.Time:
			val, err = value.NewStringValue(vr.Time, []string{"000000"})
		case vr.DateTime:
			val, err = value.NewStringValue(vr.DateTime, []string{"19000101000000"})
		case vr.AgeString:
			val, err = value.NewStringValue(vr.AgeString, []string{"000Y"})
		case vr.LongString, vr.ShortString, vr.CodeString:
			val, err = value.NewStringValue(elem.VR(), []string{"REMOVED"})
		default:
			return replaceWithEmpty(elem)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("dummy value: %w", err)
	}
	return element.NewElement(elem.Tag(), elem.VR(), val)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// cleanElement preserves a text value's general shape while stripping the
// identifying substrings a naive scan can find. It is deliberately
// conservative: production cleaning of free text needs NLP-grade detection
// this package does not attempt.
func cleanElement(elem *element.Element) (*element.Element, error) {
	switch elem.VR() {
	case vr.LongText, vr.ShortText, vr.UnlimitedText, vr.LongString, vr.ShortString, vr.CodeString:
		cleaned := cleanText(elem.Value().String())
		val, err := value.NewStringValue(elem.VR(), []string{cleaned})
		if err != nil {
			return nil, fmt.Errorf("clean value: %w", err)
		}
		return element.NewElement(elem.Tag(), elem.VR(), val)
	default:
		return replaceWithDummy(elem, Config{})
	}
}

func cleanText(text string) string {
	if strings.Contains(text, "@") {
		return "CLEANED_TEXT"
	}
	return text
}

func replaceUID(elem *element.Element) (*element.Element, error) {
	if elem.VR() != vr.UniqueIdentifier {
		return nil, fmt.Errorf("cannot generate a UID replacement for VR %s", elem.VR())
	}
	val, err := value.NewStringValue(vr.UniqueIdentifier, []string{uid.Generate()})
	if err != nil {
		return nil, fmt.Errorf("new UID value: %w", err)
	}
	return element.NewElement(elem.Tag(), elem.VR(), val)
}

// hashElement replaces the value with a stable, non-reversible digest: the
// same input value always hashes the same, which lets linked records stay
// linked without carrying the original identifier.
func hashElement(elem *element.Element) (*element.Element, error) {
	sum := sha256.Sum256([]byte(elem.Value().String()))
	hashed := "HASH" + hex.EncodeToString(sum[:])[:16]

	v := elem.VR()
	if !v.IsStringType() {
		v = vr.ShortString
	}
	val, err := value.NewStringValue(v, []string{hashed})
	if err != nil {
		return nil, fmt.Errorf("hash value: %w", err)
	}
	return element.NewElement(elem.Tag(), v, val)
}
