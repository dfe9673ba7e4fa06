package ingest

import (
	"strings"
	"testing"
)

const fixtureCSV = `id,description,unit_price,promo_price,cost,margin,cadastro
,PRODUTOS PET,,,,,
2,Pente Dourado,"R$ 0,00",,"R$ 1,00",50%,ok
3,"Comedouro Anti-Formiga 1,5L","R$ 1.234,56",,"R$ 2,00",150%,ok
4,Bola Gato Azul,"R$ 20,00","R$ 15,00","R$ 5,00",200%,OK
5,Escova de Pelos,12.50,,"R$ 3,00",10%,
`

func TestPipelineEndToEnd(t *testing.T) {
	p := New(VariantSimple)
	records, err := p.Process(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatal(err)
	}

	// 5 rows: one header, one zero-price, three products.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	wantNames := []string{"Comedouro Anti-Formiga 1,5L", "Bola Gato Azul", "Escova de Pelos"}
	for i, rec := range records {
		if rec.ID != i+1 {
			t.Errorf("record %d: id = %d, want %d", i, rec.ID, i+1)
		}
		if rec.Name != wantNames[i] {
			t.Errorf("record %d: name = %q, want %q", i, rec.Name, wantNames[i])
		}
	}

	// Comma-formatted currency with thousands separator.
	if records[0].Price != 1234.56 {
		t.Errorf("price = %v, want 1234.56", records[0].Price)
	}
	// Promo undercuts unit price.
	if records[1].Price != 15 || records[1].OriginalPrice == nil || *records[1].OriginalPrice != 20 {
		t.Errorf("promo record = %+v", records[1])
	}
	// Dot-decimal input parsed as-is.
	if records[2].Price != 12.5 {
		t.Errorf("price = %v, want 12.5", records[2].Price)
	}

	sum := Summarize(records)
	if sum.Total != 3 {
		t.Errorf("summary total = %d, want 3", sum.Total)
	}
	catTotal := 0
	for _, n := range sum.Categories {
		catTotal += n
	}
	if catTotal != 3 {
		t.Errorf("category counts sum to %d, want 3", catTotal)
	}
	if sum.Bands["50+"] != 1 || sum.Bands["10-25"] != 2 {
		t.Errorf("bands = %v", sum.Bands)
	}
}

func TestPipelineIdsSkipRejectedRows(t *testing.T) {
	// Removing a rejected row must not change downstream ids.
	withNoise := `id,description,unit_price,promo_price,cost,margin,cadastro
1,Bola Azul,"R$ 10,00",,,,
,SEPARADOR,,,,,
2,Pente Fino,"R$ 12,00",,,,
`
	withoutNoise := `id,description,unit_price,promo_price,cost,margin,cadastro
1,Bola Azul,"R$ 10,00",,,,
2,Pente Fino,"R$ 12,00",,,,
`
	p := New(VariantSimple)
	a, err := p.Process(strings.NewReader(withNoise))
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Process(strings.NewReader(withoutNoise))
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("got %d and %d records, want 2 and 2", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].ID != i+1 {
			t.Errorf("ids diverge at %d: %d vs %d", i, a[i].ID, b[i].ID)
		}
	}
}

func TestPipelineFullVariant(t *testing.T) {
	csv := `id,description,unit_price,promo_price,cost,margin,cadastro,NCM
7,Caixa Transporte Ferplast,"R$ 99,90",,"R$ 40,00",120%,ok,39269090
,Sem Identificador,"R$ 5,00",,,,ok,
`
	p := New(VariantFull)
	records, err := p.Process(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Brand != "Ferplast" {
		t.Errorf("brand = %q, want Ferplast", rec.Brand)
	}
	if rec.Category != "Transporte" {
		t.Errorf("category = %q", rec.Category)
	}
	if rec.Stock != 3 { // cost above 30
		t.Errorf("stock = %d, want 3", rec.Stock)
	}
}

func TestPipelineMissingFile(t *testing.T) {
	if _, err := New(VariantSimple).ProcessFile("testdata/does-not-exist.csv"); err == nil {
		t.Error("missing source file must be a hard error")
	}
}
