package catalog

import (
	"fmt"
	"regexp"
	"sort"

	entity "vitrine.GO/model/entity/catalog"
)

// Size is a canonical size label: letter sizes PP..GG or numeric sizes
// 34..56 in steps of 2. Sizes are not stored on variants, they are inferred
// from the free-text variant name.
type Size string

// LetterSizes and NumericSizes list the full vocabulary in ordinal order.
var LetterSizes = []Size{"PP", "P", "M", "G", "GG"}

var NumericSizes = []Size{"34", "36", "38", "40", "42", "44", "46", "48", "50", "52", "54", "56"}

var sizeOrdinals = map[Size]int{
	"PP": 0, "P": 1, "M": 2, "G": 3, "GG": 4,
	"34": 5, "36": 6, "38": 7, "40": 8, "42": 9, "44": 10,
	"46": 11, "48": 12, "50": 13, "52": 14, "54": 15, "56": 16,
}

// ErrInvalidSize is returned when a size label is outside the vocabulary.
var ErrInvalidSize = fmt.Errorf("invalid size")

var (
	// Numeric pattern is tried first; whole-token match only, so "140" is
	// not read as size 40.
	numericSizeRe = regexp.MustCompile(`\b(34|36|38|40|42|44|46|48|50|52|54|56)\b`)
	// Longest alternatives first so "GG" and "PP" win over "G" and "P".
	letterSizeRe = regexp.MustCompile(`(PP|GG|P|M|G)`)
)

// SizeFromItemName extracts a size from a variant name. Names matching
// neither pattern have no derivable size.
func SizeFromItemName(name string) (Size, bool) {
	if m := numericSizeRe.FindString(name); m != "" {
		return Size(m), true
	}
	if m := letterSizeRe.FindString(name); m != "" {
		return Size(m), true
	}
	return "", false
}

// AvailableSizes returns the sizes of every variant that has a positively
// priced first offer, in variant order. The result is not deduplicated;
// callers needing a unique set must deduplicate (see UniqueSizes).
func AvailableSizes(p *entity.Product) []Size {
	var sizes []Size
	for i := range p.Items {
		item := &p.Items[i]
		if len(item.Sellers) == 0 || item.Sellers[0].CommercialOffer.Price <= 0 {
			continue
		}
		if size, ok := SizeFromItemName(item.Name); ok {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

// SizeOrder returns the fixed ordinal of a size (PP=0 … 56=16). A size
// outside the vocabulary is a precondition violation and yields ErrInvalidSize.
func SizeOrder(s Size) (int, error) {
	ord, ok := sizeOrdinals[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, string(s))
	}
	return ord, nil
}

// IsValidSize reports whether a label belongs to the size vocabulary.
func IsValidSize(s Size) bool {
	_, ok := sizeOrdinals[s]
	return ok
}

// SortSizes orders sizes in place by their fixed ordinal. Unknown sizes
// sort last (callers are expected to validate first).
func SortSizes(sizes []Size) {
	sort.SliceStable(sizes, func(i, j int) bool {
		oa, errA := SizeOrder(sizes[i])
		ob, errB := SizeOrder(sizes[j])
		if errA != nil {
			return false
		}
		if errB != nil {
			return true
		}
		return oa < ob
	})
}

// UniqueSizes deduplicates sizes preserving first occurrence.
func UniqueSizes(sizes []Size) []Size {
	seen := make(map[Size]bool, len(sizes))
	out := make([]Size, 0, len(sizes))
	for _, s := range sizes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
