// Package charset decodes DICOM string values using the encodings named by
// a (0008,0005) SpecificCharacterSet element, including the ISO 2022
// code-extension technique multi-valued SpecificCharacterSet uses to switch
// between character sets mid-string (PS3.5 6.1.2.3 / Annex D).
package charset

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// htmlEncodingNames maps a DICOM "Defined Term" for SpecificCharacterSet to
// the golang.org/x/text/encoding/htmlindex name that decodes it. "" means
// 7-bit ASCII, which htmlindex has no entry for.
var htmlEncodingNames = map[string]string{
	"":                "",
	"ISO_IR 6":        "",
	"ISO 2022 IR 6":   "",
	"ISO_IR 100":      "iso-8859-1",
	"ISO 2022 IR 100": "iso-8859-1",
	"ISO_IR 101":      "iso-8859-2",
	"ISO 2022 IR 101": "iso-8859-2",
	"ISO_IR 109":      "iso-8859-3",
	"ISO 2022 IR 109": "iso-8859-3",
	"ISO_IR 110":      "iso-8859-4",
	"ISO 2022 IR 110": "iso-8859-4",
	"ISO_IR 126":      "iso-ir-126",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO_IR 127":      "iso-ir-127",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO_IR 138":      "iso-ir-138",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO_IR 144":      "iso-ir-144",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO_IR 148":      "iso-ir-148",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO_IR 13":       "shift_jis",
	"ISO 2022 IR 13":  "shift_jis",
	"ISO 2022 IR 149": "euc-kr",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO_IR 166":      "iso-ir-166",
	"ISO 2022 IR 166": "iso-ir-166",
	"ISO_IR 192":      "utf-8",
	"GB18030":         "utf-8",
}

// escapeDesignators maps the bytes following ESC (excluding the leading
// ESC itself) to the DICOM Defined Term the designation switches to, for
// the single-byte G0/G1 code extensions SpecificCharacterSet commonly uses.
// Multi-byte (Kanji) designations (ESC followed by '$') are not in this
// map: matchEscape consumes and discards them without changing the active
// decoder, since golang.org/x/text has no standalone JIS X 0208/0212 G0/G1
// component decoder distinct from the full iso-2022-jp transform.
var escapeDesignators = map[string]string{
	"(B": "ISO_IR 6",
	"(J": "ISO_IR 13",
	")I": "ISO 2022 IR 13",
	",A": "ISO_IR 100",
	"-A": "ISO_IR 100",
	"-B": "ISO_IR 101",
	"-C": "ISO_IR 109",
	"-D": "ISO_IR 110",
	"-F": "ISO_IR 126",
	"-G": "ISO_IR 127",
	"-H": "ISO_IR 138",
	"-M": "ISO_IR 144",
	"-L": "ISO_IR 148",
}

// CodingSystem holds the decoder to use for each of the three DICOM coding
// system roles a PN (Person Name) value's component groups may use.
// Non-PN VRs always use Alphabetic. See PS3.5 6.2.
type CodingSystem struct {
	Alphabetic  *encoding.Decoder
	Ideographic *encoding.Decoder
	Phonetic    *encoding.Decoder
}

// ParseSpecificCharacterSet resolves the (0008,0005) value's terms into a
// CodingSystem, one decoder per PN component group in declared order. A nil
// decoder for a role means "decode as 7-bit ASCII" (no transformation).
func ParseSpecificCharacterSet(terms []string) (CodingSystem, error) {
	var decoders []*encoding.Decoder
	for _, name := range terms {
		d, err := decoderFor(name)
		if err != nil {
			return CodingSystem{}, err
		}
		decoders = append(decoders, d)
	}

	switch len(decoders) {
	case 0:
		return CodingSystem{}, nil
	case 1:
		return CodingSystem{Alphabetic: decoders[0], Ideographic: decoders[0], Phonetic: decoders[0]}, nil
	case 2:
		return CodingSystem{Alphabetic: decoders[0], Ideographic: decoders[1], Phonetic: decoders[1]}, nil
	default:
		return CodingSystem{Alphabetic: decoders[0], Ideographic: decoders[1], Phonetic: decoders[2]}, nil
	}
}

func decoderFor(term string) (*encoding.Decoder, error) {
	htmlName, ok := htmlEncodingNames[term]
	if !ok {
		return nil, fmt.Errorf("charset: unrecognized SpecificCharacterSet term %q", term)
	}
	if htmlName == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(htmlName)
	if err != nil {
		return nil, fmt.Errorf("charset: encoding %q (for %q) not registered: %w", htmlName, term, err)
	}
	return enc.NewDecoder(), nil
}

// Decode converts data, encoded per the SpecificCharacterSet terms declared
// by cs, into a UTF-8 string. When terms designate more than one coding
// system (the ISO 2022 code-extension technique), ESC sequences within data
// switch the active decoder; runs of bytes between escape sequences are
// decoded with whichever decoder is currently active, starting from the
// first declared term's decoder (ISO_IR 6 / ASCII if terms is empty).
func Decode(data []byte, terms []string) (string, error) {
	cs, err := ParseSpecificCharacterSet(terms)
	if err != nil {
		return "", err
	}
	if len(terms) <= 1 {
		return decodeRun(cs.Alphabetic, data)
	}
	return decodeWithEscapes(data, terms)
}

// decodeWithEscapes implements the ISO 2022 G0/G1 designation-switching
// state machine: active starts as the first declared term, and every ESC
// sequence recognized in escapeDesignators switches active to the term it
// names for the bytes that follow, up to the next escape sequence or end of
// data. A multi-byte (Kanji) designator, ESC followed by '$', is removed
// from the data and leaves the active decoder unchanged. Any other ESC
// byte is kept in the run and handed to the active decoder.
func decodeWithEscapes(data []byte, terms []string) (string, error) {
	active := terms[0]
	decoderCache := make(map[string]*encoding.Decoder)
	getDecoder := func(term string) (*encoding.Decoder, error) {
		if d, ok := decoderCache[term]; ok {
			return d, nil
		}
		d, err := decoderFor(term)
		if err != nil {
			return nil, err
		}
		decoderCache[term] = d
		return d, nil
	}

	var out []byte
	var run []byte
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		d, err := getDecoder(active)
		if err != nil {
			return err
		}
		s, err := decodeRun(d, run)
		if err != nil {
			return err
		}
		out = append(out, s...)
		run = run[:0]
		return nil
	}

	for i := 0; i < len(data); {
		if data[i] == 0x1B {
			seq, newActive, consumed := matchEscape(data[i+1:])
			if seq != "" {
				if err := flush(); err != nil {
					return "", err
				}
				if newActive != "" {
					active = newActive
				}
				i += 1 + consumed
				continue
			}
		}
		run = append(run, data[i])
		i++
	}
	if err := flush(); err != nil {
		return "", err
	}
	return string(out), nil
}

// matchEscape inspects the bytes immediately after an ESC (0x1B) byte
// against escapeDesignators's two-byte single-byte-set designators. It
// returns the matched sequence, the Defined Term it designates (empty if
// recognized but not a designator this package maps, e.g. multi-byte sets),
// and how many bytes (after the ESC) were consumed.
func matchEscape(rest []byte) (seq string, term string, consumed int) {
	if len(rest) >= 2 {
		key := string(rest[:2])
		if t, ok := escapeDesignators[key]; ok {
			return key, t, 2
		}
	}
	if len(rest) >= 3 && rest[0] == '$' {
		// Multi-byte G0 designators (e.g. "$(B" JIS X 0208, "$(D" JIS X
		// 0212): consumed but left unmapped, see doc comment above.
		return string(rest[:3]), "", 3
	}
	if len(rest) >= 2 && rest[0] == '$' {
		return string(rest[:2]), "", 2
	}
	return "", "", 0
}

func decodeRun(d *encoding.Decoder, data []byte) (string, error) {
	if d == nil {
		return string(data), nil
	}
	out, err := d.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("charset: decode error: %w", err)
	}
	return string(out), nil
}
