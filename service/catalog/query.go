package catalog

import (
	"sort"
	"strings"

	entity "vitrine.GO/model/entity/catalog"
)

// SortType selects the ordering of a product listing.
type SortType string

const (
	SortNone            SortType = ""
	SortHighestPrice    SortType = "highest-price"
	SortLowestPrice     SortType = "lowest-price"
	SortBiggestDiscount SortType = "biggest-discount"
)

// ParseSortType maps a query-string value to a SortType. Unknown values
// fall back to SortNone.
func ParseSortType(s string) SortType {
	switch SortType(s) {
	case SortHighestPrice, SortLowestPrice, SortBiggestDiscount:
		return SortType(s)
	default:
		return SortNone
	}
}

// MaterialsSentinel is the category selection that matches products by
// material labels instead of category labels.
const MaterialsSentinel = "MATERIAIS"

// FilterByCategories keeps products matching ANY of the selected
// categories (OR semantics). An empty selection passes everything through.
// The MATERIAIS sentinel keeps products with at least one material label;
// any other selection matches case-insensitively as a substring of the
// product's category labels.
func FilterByCategories(products []*entity.Product, selected []string) []*entity.Product {
	if len(selected) == 0 {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if matchesAnyCategory(p, selected) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAnyCategory(p *entity.Product, selected []string) bool {
	for _, sel := range selected {
		if sel == MaterialsSentinel {
			if len(p.Materials) > 0 {
				return true
			}
			continue
		}
		lowSel := strings.ToLower(sel)
		for _, cat := range p.Categories {
			if strings.Contains(strings.ToLower(cat), lowSel) {
				return true
			}
		}
	}
	return false
}

// FilterBySizes keeps products whose available sizes intersect the
// selection (OR semantics). A nil or empty selection passes everything
// through.
func FilterBySizes(products []*entity.Product, sizes []Size) []*entity.Product {
	if len(sizes) == 0 {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		available := AvailableSizes(p)
		if hasAnySize(available, sizes) {
			out = append(out, p)
		}
	}
	return out
}

func hasAnySize(available, wanted []Size) bool {
	for _, w := range wanted {
		for _, a := range available {
			if a == w {
				return true
			}
		}
	}
	return false
}

// SortProducts returns a sorted copy of products. SortNone is the
// identity: the input slice is returned unchanged, preserving original
// order exactly. The sort is stable so equal keys keep their filter order.
func SortProducts(products []*entity.Product, sortType SortType) []*entity.Product {
	if sortType == SortNone {
		return products
	}
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch sortType {
		case SortHighestPrice:
			return a.Price > b.Price
		case SortLowestPrice:
			return a.Price < b.Price
		case SortBiggestDiscount:
			return DiscountPercent(a.Price, a.ListPrice()) > DiscountPercent(b.Price, b.ListPrice())
		default:
			return false
		}
	})
	return sorted
}

// Query composes the display pipeline in its contractual order:
// category filter → size filter → sort.
func Query(products []*entity.Product, categories []string, sizes []Size, sortType SortType) []*entity.Product {
	filtered := FilterByCategories(products, categories)
	filtered = FilterBySizes(filtered, sizes)
	return SortProducts(filtered, sortType)
}
