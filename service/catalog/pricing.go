package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	entity "vitrine.GO/model/entity/catalog"
)

// InstallmentDisplay is the installment line shown under a price tag
// ("3x de R$ 43,30 sem juros").
type InstallmentDisplay struct {
	Number int     `json:"number"`
	Value  float64 `json:"value"`
}

// Installments selects the display option among the first variant's first
// offer installments: the greatest installment count among zero-interest
// options, seeded with the first listed option. Nil when the offer carries
// no installments or the chosen option lacks a usable count or value.
func Installments(p *entity.Product) *InstallmentDisplay {
	offer, ok := p.FirstOffer()
	if !ok || len(offer.Installments) == 0 {
		return nil
	}
	max := offer.Installments[0]
	for _, cur := range offer.Installments[1:] {
		if cur.NumberOfInstallments > max.NumberOfInstallments && cur.InterestRate == 0 {
			max = cur
		}
	}
	if max.NumberOfInstallments == 0 || max.Value == 0 {
		return nil
	}
	return &InstallmentDisplay{Number: max.NumberOfInstallments, Value: max.Value}
}

// DiscountPercent computes the discount implied by a list price. Used for
// the biggest-discount sort only; never rounded for display.
func DiscountPercent(price, listPrice float64) float64 {
	if listPrice == 0 {
		return 0
	}
	return (listPrice - price) / listPrice * 100
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders a price the Brazilian way: comma decimal separator,
// period thousands separator, exactly two fraction digits (1234.5 → "1.234,50").
func FormatPrice(price float64) string {
	return ptBR.Sprint(number.Decimal(price, number.Scale(2)))
}

// ProductImages returns the first variant's gallery. When there is more
// than one image the trailing one is dropped — the export appends the
// thumbnail again at the end.
func ProductImages(p *entity.Product) []entity.Image {
	if len(p.Items) == 0 {
		return nil
	}
	images := p.Items[0].Images
	if len(images) > 1 {
		return images[:len(images)-1]
	}
	return images
}
