package tags

import "testing"

func TestFieldTableSanity(t *testing.T) {
	valid := make(map[string]bool, len(Sections))
	for _, s := range Sections {
		valid[s] = true
	}

	seen := make(map[string]bool, len(Fields))
	for _, def := range Fields {
		if def.Key == "" || def.Tag == "" {
			t.Errorf("field %+v missing key or tag", def)
		}
		if seen[def.Key] {
			t.Errorf("duplicate field key %s", def.Key)
		}
		seen[def.Key] = true
		if !valid[def.Section] {
			t.Errorf("field %s has unknown section %s", def.Key, def.Section)
		}
	}
}

func TestFieldTableSectionOrder(t *testing.T) {
	// Fields must be declared Image, then Lens, then Shooting.
	rank := map[string]int{SectionImage: 0, SectionLens: 1, SectionShooting: 2}
	last := 0
	for _, def := range Fields {
		r := rank[def.Section]
		if r < last {
			t.Fatalf("field %s out of section order", def.Key)
		}
		last = r
	}
}

func TestScalesReferToDoubleFields(t *testing.T) {
	byKey := make(map[string]FieldDef, len(Fields))
	for _, def := range Fields {
		byKey[def.Key] = def
	}
	for key, scale := range Scales {
		def, ok := byKey[key]
		if !ok {
			t.Errorf("scale for unknown field %s", key)
			continue
		}
		if !def.Double {
			t.Errorf("scale for non-double field %s", key)
		}
		if scale.Divisor == 0 {
			t.Errorf("scale for %s has zero divisor", key)
		}
	}
}

func TestSectionFields(t *testing.T) {
	counts := map[string]int{SectionImage: 9, SectionLens: 6, SectionShooting: 12}
	for section, want := range counts {
		if got := len(SectionFields(section)); got != want {
			t.Errorf("%s has %d fields, expected %d", section, got, want)
		}
	}
}
