package catalog

import (
	entity "vitrine.GO/model/entity/catalog"
)

// Normalize converts a raw catalog record into the display-ready Product
// shape. Records without a variant, without a seller on the first variant
// or without a positive first-offer price are dropped: the second return
// is false and no error is raised, because unpriced/out-of-stock records
// are expected noise in a catalog export.
func Normalize(raw *entity.RawProduct) (entity.Product, bool) {
	offer, ok := raw.FirstOffer()
	if !ok || offer.Price <= 0 {
		return entity.Product{}, false
	}

	items := make([]entity.Item, 0, len(raw.Items))
	for _, ri := range raw.Items {
		items = append(items, normalizeItem(ri))
	}

	return entity.Product{
		ID:          raw.ProductID,
		Name:        raw.ProductName,
		Price:       offer.Price,
		Description: raw.Description,
		Categories:  raw.Categories,
		Materials:   raw.Materials,
		Items:       items,
	}, true
}

func normalizeItem(ri entity.RawItem) entity.Item {
	images := make([]entity.Image, 0, len(ri.Images))
	for _, img := range ri.Images {
		images = append(images, entity.Image{ImageURL: img.ImageURL, ImageLabel: img.ImageLabel})
	}

	sellers := make([]entity.Seller, 0, len(ri.Sellers))
	for _, rs := range ri.Sellers {
		sellers = append(sellers, entity.Seller{CommercialOffer: normalizeOffer(rs.CommercialOffer)})
	}

	return entity.Item{
		ItemID:  ri.ItemID,
		Name:    ri.Name,
		Images:  images,
		Sellers: sellers,
	}
}

func normalizeOffer(ro entity.RawOffer) entity.CommercialOffer {
	listPrice := ro.ListPrice
	if listPrice == 0 {
		// Absent list price means "no discount", not an error.
		listPrice = ro.Price
	}
	installments := make([]entity.Installment, 0, len(ro.Installments))
	for _, inst := range ro.Installments {
		installments = append(installments, entity.Installment{
			Value:                inst.Value,
			InterestRate:         inst.InterestRate,
			NumberOfInstallments: inst.NumberOfInstallments,
			PaymentSystemName:    inst.PaymentSystemName,
		})
	}
	return entity.CommercialOffer{
		Price:        ro.Price,
		ListPrice:    listPrice,
		Installments: installments,
	}
}
