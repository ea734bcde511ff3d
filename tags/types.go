package tags

// Section names inside the vendor <Data> block, in search order.
const (
	SectionImage    = "Image"
	SectionLens     = "Lens"
	SectionShooting = "Shooting"
)

// Sections lists the fixed sections of the data block in the order their
// fields appear in a record.
var Sections = []string{SectionImage, SectionLens, SectionShooting}

// FieldDef declares one metadata field: where it lives in the data block
// and how its value is encoded. Adding a field means adding one row to
// Fields; extraction and decoding are driven entirely by this table.
type FieldDef struct {
	Key     string // record key, e.g. "OriginalImageSize_Width"
	Section string // section the field belongs to
	Tag     string // outer tag name
	SubTag  string // nested sub-tag holding the value, if any
	Wrapper string // enclosing container tag searched first, if any
	Double  bool   // value is the bit pattern of an IEEE 754 double
}

// ScaleDef is a unit conversion applied to a field after double decoding.
type ScaleDef struct {
	Divisor float64
	Suffix  string
}
