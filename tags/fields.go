package tags

// Fields is the known field set of the instrument's metadata block, in
// vendor declaration order: Image, then Lens, then Shooting.
var Fields = []FieldDef{
	// Image section
	{Key: "Comment", Section: SectionImage, Tag: "Comment"},
	{Key: "OriginalImageSize_Width", Section: SectionImage, Tag: "OriginalImageSize", SubTag: "Width"},
	{Key: "OriginalImageSize_Height", Section: SectionImage, Tag: "OriginalImageSize", SubTag: "Height"},
	{Key: "SavingImageSize_Width", Section: SectionImage, Tag: "SavingImageSize", SubTag: "Width"},
	{Key: "SavingImageSize_Height", Section: SectionImage, Tag: "SavingImageSize", SubTag: "Height"},
	{Key: "DigitalZoom", Section: SectionImage, Tag: "DigitalZoom"},
	{Key: "Calibration", Section: SectionImage, Tag: "Calibration", Double: true},
	{Key: "Focus", Section: SectionImage, Tag: "Focus", Double: true},
	{Key: "PatchNumber", Section: SectionImage, Tag: "PatchNumber"},

	// Lens section
	{Key: "LensName", Section: SectionLens, Tag: "LensName"},
	{Key: "Magnification", Section: SectionLens, Tag: "Magnification"},
	{Key: "NumericalAperture", Section: SectionLens, Tag: "NumericalAperture", Double: true},
	{Key: "WorkingDistance", Section: SectionLens, Tag: "WorkingDistance", Double: true},
	{Key: "LiquidImmersion", Section: SectionLens, Tag: "LiquidImmersion"},
	{Key: "RevolverPosition", Section: SectionLens, Tag: "RevolverPosition"},

	// Shooting section
	{Key: "StageLocationX", Section: SectionShooting, Tag: "StageLocationX"},
	{Key: "StageLocationY", Section: SectionShooting, Tag: "StageLocationY"},
	{Key: "StageLocationZ", Section: SectionShooting, Tag: "StageLocationZ"},
	{Key: "Channel", Section: SectionShooting, Tag: "Channel"},
	{Key: "Observation", Section: SectionShooting, Tag: "Observation"},
	{Key: "PseudoColor", Section: SectionShooting, Tag: "PseudoColor", Wrapper: "Parameter"},
	// Sample files carry this tag as "Binnin", one character short.
	// Kept verbatim until confirmed against more vendor samples.
	{Key: "Binning", Section: SectionShooting, Tag: "Binnin", Wrapper: "Parameter"},
	{Key: "ExposureTime_Numerator", Section: SectionShooting, Tag: "ExposureTime", SubTag: "Numerator"},
	{Key: "ExposureTime_Denominator", Section: SectionShooting, Tag: "ExposureTime", SubTag: "Denominator"},
	{Key: "PixelMode", Section: SectionShooting, Tag: "PixelMode", Wrapper: "Parameter"},
	{Key: "CameraGain", Section: SectionShooting, Tag: "CameraGain", Wrapper: "Parameter"},
	{Key: "CameraHardwareGain", Section: SectionShooting, Tag: "CameraHardwareGain", Wrapper: "Parameter"},
}

// Scales maps record keys to unit conversions applied after double
// decoding. Calibration is stored in nm/pixel and reported in um/pixel.
var Scales = map[string]ScaleDef{
	"Calibration": {Divisor: 1000, Suffix: "um/pixel"},
}

// SectionFields returns the declared fields of one section, in order.
func SectionFields(section string) []FieldDef {
	var defs []FieldDef
	for _, def := range Fields {
		if def.Section == section {
			defs = append(defs, def)
		}
	}
	return defs
}
