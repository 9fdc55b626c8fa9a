package midi2

import "github.com/robert-malhotra/go-midi2/internal/bits"

// Attribute slots of the Note On and Note Off kinds. The attribute
// type rides in byte 4 of the first word; its payload occupies the low
// half of the second word.
var (
	attributeTypeField = field{start: 24, end: 31, width: 8}
	attributeDataField = field{start: 48, end: 63, width: 16}
	pitchField         = field{start: 48, end: 54, width: 7}
	pitchFractionField = field{start: 55, end: 63, width: 9}
)

// AttributeType tags the per-note attribute carried by Note On and
// Note Off messages. Codes above 0x3 are not defined.
type AttributeType uint8

const (
	AttributeTypeNone         AttributeType = 0x0
	AttributeTypeManufacturer AttributeType = 0x1
	AttributeTypeProfile      AttributeType = 0x2
	AttributeTypePitch79      AttributeType = 0x3
)

func (t AttributeType) String() string {
	switch t {
	case AttributeTypeNone:
		return "None"
	case AttributeTypeManufacturer:
		return "Manufacturer"
	case AttributeTypeProfile:
		return "Profile"
	case AttributeTypePitch79:
		return "Pitch79"
	}
	return "Unknown"
}

// AttributeData is the raw 16-bit attribute payload; any value is
// legal.
type AttributeData uint16

// Pitch is the 7-bit note number half of a pitch 7.9 attribute.
type Pitch uint8

// NewPitch validates that v fits the 7-bit pitch field.
func NewPitch(v uint8) (Pitch, error) {
	if err := boundedUint(uint64(v), 7); err != nil {
		return 0, err
	}
	return Pitch(v), nil
}

// PitchFraction is the 9-bit fractional half of a pitch 7.9 attribute.
type PitchFraction uint16

// NewPitchFraction validates that v fits the 9-bit fraction field.
func NewPitchFraction(v uint16) (PitchFraction, error) {
	if err := boundedUint(uint64(v), 9); err != nil {
		return 0, err
	}
	return PitchFraction(v), nil
}

// Attribute is the tagged per-note attribute of a Note On or Note Off
// message. The concrete type is one of NoAttribute,
// ManufacturerAttribute, ProfileAttribute, or PitchAttribute.
type Attribute interface {
	attributeType() AttributeType
	writeAttribute(w bits.Window)
}

// NoAttribute is the attribute variant carrying no payload.
type NoAttribute struct{}

func (NoAttribute) attributeType() AttributeType { return AttributeTypeNone }

func (NoAttribute) writeAttribute(w bits.Window) {
	attributeTypeField.write(w, uint32(AttributeTypeNone))
	attributeDataField.write(w, 0)
}

// ManufacturerAttribute carries manufacturer-specific attribute data.
type ManufacturerAttribute struct {
	Data AttributeData
}

func (ManufacturerAttribute) attributeType() AttributeType { return AttributeTypeManufacturer }

func (a ManufacturerAttribute) writeAttribute(w bits.Window) {
	attributeTypeField.write(w, uint32(AttributeTypeManufacturer))
	attributeDataField.write(w, uint32(a.Data))
}

// ProfileAttribute carries profile-specific attribute data.
type ProfileAttribute struct {
	Data AttributeData
}

func (ProfileAttribute) attributeType() AttributeType { return AttributeTypeProfile }

func (a ProfileAttribute) writeAttribute(w bits.Window) {
	attributeTypeField.write(w, uint32(AttributeTypeProfile))
	attributeDataField.write(w, uint32(a.Data))
}

// PitchAttribute carries a pitch 7.9 value: a 7-bit note number and a
// 9-bit fraction of a semitone.
type PitchAttribute struct {
	Pitch    Pitch
	Fraction PitchFraction
}

func (PitchAttribute) attributeType() AttributeType { return AttributeTypePitch79 }

func (a PitchAttribute) writeAttribute(w bits.Window) {
	attributeTypeField.write(w, uint32(AttributeTypePitch79))
	pitchField.write(w, uint32(a.Pitch))
	pitchFractionField.write(w, uint32(a.Fraction))
}

// readAttribute decodes the attribute composite: the type tag first,
// then whichever payload sub-fields the tag selects. Either the whole
// value is produced or the read fails; no partial attribute is ever
// returned.
func readAttribute(w bits.Window) (Attribute, error) {
	code := attributeTypeField.load(w)
	switch AttributeType(code) {
	case AttributeTypeNone:
		return NoAttribute{}, nil
	case AttributeTypeManufacturer:
		return ManufacturerAttribute{Data: AttributeData(attributeDataField.load(w))}, nil
	case AttributeTypeProfile:
		return ProfileAttribute{Data: AttributeData(attributeDataField.load(w))}, nil
	case AttributeTypePitch79:
		p, err := pitchField.read(w)
		if err != nil {
			return nil, err
		}
		f, err := pitchFractionField.read(w)
		if err != nil {
			return nil, err
		}
		return PitchAttribute{Pitch: Pitch(p), Fraction: PitchFraction(f)}, nil
	}
	return nil, &ConversionError{Code: uint8(code)}
}
