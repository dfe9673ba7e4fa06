package ingest

import (
	"bytes"
	"strings"
	"testing"
)

func TestBandFor(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{0, "0-10"},
		{9.99, "0-10"},
		{10, "10-25"},
		{24.99, "10-25"},
		{25, "25-50"},
		{50, "50+"},
		{1234.56, "50+"},
	}
	for _, c := range cases {
		if got := bandFor(c.price); got != c.want {
			t.Errorf("bandFor(%v) = %q, want %q", c.price, got, c.want)
		}
	}
}

func TestSummaryWriteOrdering(t *testing.T) {
	records := []ProductRecord{
		{Category: "Higiene", Brand: "Pet Shop", Price: 5},
		{Category: "Brinquedos", Brand: "Ferplast", Price: 30},
		{Category: "Brinquedos", Brand: "Pet Shop", Price: 60},
	}
	var buf bytes.Buffer
	Summarize(records).Write(&buf, VariantFull)
	out := buf.String()

	// Categories and brands come out lexicographically, bands in declared order.
	if strings.Index(out, "Brinquedos") > strings.Index(out, "Higiene") {
		t.Error("categories not in lexicographic order")
	}
	if strings.Index(out, "Ferplast") > strings.Index(out, "Pet Shop") {
		t.Error("brands not in lexicographic order")
	}
	if strings.Index(out, "R$ 0-10") > strings.Index(out, "R$ 25-50") {
		t.Error("bands not in declared order")
	}
	if !strings.Contains(out, "Total de produtos: 3") {
		t.Errorf("missing total in %q", out)
	}

	// Simplified variant has no brand section.
	buf.Reset()
	Summarize(records).Write(&buf, VariantSimple)
	if strings.Contains(buf.String(), "Marcas:") {
		t.Error("simple variant must not report brands")
	}
}
