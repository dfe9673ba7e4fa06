package ingest

import "testing"

func TestBuildRecordPriceSelection(t *testing.T) {
	f := NormalizedFields{Name: "Bola Azul", UnitPrice: 20, PromoPrice: 15}
	rec, ok := BuildRecord(1, f, RawRow{}, VariantSimple)
	if !ok {
		t.Fatal("record should be emitted")
	}
	if rec.Price != 15 {
		t.Errorf("price = %v, want 15", rec.Price)
	}
	if rec.OriginalPrice == nil || *rec.OriginalPrice != 20 {
		t.Errorf("originalPrice = %v, want 20", rec.OriginalPrice)
	}

	// Promo above unit price is ignored and leaves no originalPrice.
	f.PromoPrice = 25
	rec, ok = BuildRecord(1, f, RawRow{}, VariantSimple)
	if !ok {
		t.Fatal("record should be emitted")
	}
	if rec.Price != 20 {
		t.Errorf("price = %v, want 20", rec.Price)
	}
	if rec.OriginalPrice != nil {
		t.Errorf("originalPrice = %v, want absent", *rec.OriginalPrice)
	}
}

func TestBuildRecordDropsNonPositivePrice(t *testing.T) {
	f := NormalizedFields{Name: "Bola Azul"}
	if _, ok := BuildRecord(1, f, RawRow{}, VariantSimple); ok {
		t.Error("zero-price record should be dropped")
	}
	// A promo with no unit price never applies, so the row still drops.
	f.PromoPrice = 5
	if _, ok := BuildRecord(1, f, RawRow{}, VariantSimple); ok {
		t.Error("promo without unit price should be dropped")
	}
}

func TestBuildRecordDerivedFields(t *testing.T) {
	f := NormalizedFields{Name: "Ração Gato 1kg", UnitPrice: 10.5, Cost: 3.14159, Margin: 151}
	rec, ok := BuildRecord(7, f, RawRow{"cadastro": "OK"}, VariantFull)
	if !ok {
		t.Fatal("record should be emitted")
	}
	if rec.ID != 7 {
		t.Errorf("id = %d, want 7", rec.ID)
	}
	if rec.Slug != "racao-gato-1kg" {
		t.Errorf("slug = %q", rec.Slug)
	}
	if rec.Image != "/images/products/racao-gato-1kg.jpg" {
		t.Errorf("image = %q", rec.Image)
	}
	if rec.Cost != 3.14 {
		t.Errorf("cost = %v, want 3.14", rec.Cost)
	}
	if !rec.Featured {
		t.Error("margin 151 should be featured")
	}
	if !rec.Active {
		t.Error("cadastro OK should be active")
	}
	if rec.Stock != 15 || !rec.InStock {
		t.Errorf("stock = %d inStock = %v", rec.Stock, rec.InStock)
	}
	if rec.Category != "Acessórios para Gato" {
		t.Errorf("category = %q", rec.Category)
	}
	if rec.CreatedAt != catalogTimestamp || rec.UpdatedAt != catalogTimestamp {
		t.Error("timestamps must be the fixed constant")
	}
}

func TestBuildRecordFeaturedThreshold(t *testing.T) {
	f := NormalizedFields{Name: "Bola", UnitPrice: 10, Margin: 150}
	rec, _ := BuildRecord(1, f, RawRow{}, VariantSimple)
	if rec.Featured {
		t.Error("margin exactly 150 is not featured")
	}
}

func TestBuildRecordTagsByVariant(t *testing.T) {
	f := NormalizedFields{Name: "Caixa Ferplast", UnitPrice: 10}

	rec, _ := BuildRecord(1, f, RawRow{}, VariantFull)
	want := []string{"transporte", "ferplast", "pet", "animal"}
	if len(rec.Tags) != len(want) {
		t.Fatalf("full tags = %v", rec.Tags)
	}
	for i := range want {
		if rec.Tags[i] != want[i] {
			t.Errorf("full tags[%d] = %q, want %q", i, rec.Tags[i], want[i])
		}
	}

	rec, _ = BuildRecord(1, f, RawRow{}, VariantSimple)
	if len(rec.Tags) != 3 || rec.Tags[0] != "transporte" {
		t.Errorf("simple tags = %v", rec.Tags)
	}
	if rec.Brand != DefaultBrand {
		t.Errorf("simple variant brand = %q, want %q", rec.Brand, DefaultBrand)
	}
}

func TestCleanName(t *testing.T) {
	if got := CleanName("Ração\nGato   Premium "); got != "Ração Gato Premium" {
		t.Errorf("CleanName = %q", got)
	}
}
