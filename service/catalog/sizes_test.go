package catalog

import (
	"errors"
	"reflect"
	"testing"

	entity "vitrine.GO/model/entity/catalog"
)

func productWithVariants(names ...string) *entity.Product {
	p := &entity.Product{ID: "p", Name: "Vestido", Price: 100}
	for i, name := range names {
		p.Items = append(p.Items, entity.Item{
			ItemID: string(rune('a' + i)),
			Name:   name,
			Sellers: []entity.Seller{
				{CommercialOffer: entity.CommercialOffer{Price: 100, ListPrice: 100}},
			},
		})
	}
	return p
}

func TestSizeFromItemName(t *testing.T) {
	cases := []struct {
		name string
		want Size
		ok   bool
	}{
		{"Vestido P", "P", true},
		{"Vestido M", "M", true},
		{"Vestido 40", "40", true},
		{"Calça GG", "GG", true},
		{"Blusa PP", "PP", true},
		{"Saia 140", "", false},     // 40 must be a whole token
		{"Tamanho único", "", false},
		{"Vestido M 40", "40", true}, // numeric pattern wins
	}
	for _, tc := range cases {
		got, ok := SizeFromItemName(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("SizeFromItemName(%q) = %q, %v; want %q, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAvailableSizes_SourceOrder(t *testing.T) {
	p := productWithVariants("Vestido P", "Vestido M", "Vestido 40")
	got := AvailableSizes(p)
	want := []Size{"P", "M", "40"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSizes = %v, want %v", got, want)
	}
}

func TestAvailableSizes_UnpricedVariantExcluded(t *testing.T) {
	p := productWithVariants("Vestido P", "Vestido M")
	p.Items[1].Sellers[0].CommercialOffer.Price = 0
	got := AvailableSizes(p)
	if !reflect.DeepEqual(got, []Size{"P"}) {
		t.Errorf("AvailableSizes = %v, want [P]", got)
	}
}

func TestAvailableSizes_UnmatchedVariantOmitted(t *testing.T) {
	p := productWithVariants("Tamanho único", "Vestido 38")
	got := AvailableSizes(p)
	if !reflect.DeepEqual(got, []Size{"38"}) {
		t.Errorf("AvailableSizes = %v, want [38]", got)
	}
}

func TestAvailableSizes_NotDeduplicated(t *testing.T) {
	p := productWithVariants("Vestido P", "Vestido P Longo")
	got := AvailableSizes(p)
	if !reflect.DeepEqual(got, []Size{"P", "P"}) {
		t.Errorf("AvailableSizes = %v, want [P P] (callers deduplicate)", got)
	}
}

func TestSizeOrder(t *testing.T) {
	cases := map[Size]int{"PP": 0, "P": 1, "M": 2, "G": 3, "GG": 4, "34": 5, "40": 8, "56": 16}
	for size, want := range cases {
		got, err := SizeOrder(size)
		if err != nil {
			t.Fatalf("SizeOrder(%q): %v", size, err)
		}
		if got != want {
			t.Errorf("SizeOrder(%q) = %d, want %d", size, got, want)
		}
	}
}

func TestSizeOrder_InvalidSize(t *testing.T) {
	_, err := SizeOrder("XL")
	if err == nil {
		t.Fatal("SizeOrder(XL): want error")
	}
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}

func TestSortSizes(t *testing.T) {
	sizes := []Size{"40", "M", "P"}
	SortSizes(sizes)
	want := []Size{"P", "M", "40"}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("SortSizes = %v, want %v", sizes, want)
	}
}

func TestUniqueSizes(t *testing.T) {
	got := UniqueSizes([]Size{"P", "M", "P", "40", "M"})
	want := []Size{"P", "M", "40"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueSizes = %v, want %v", got, want)
	}
}
