package resolvers

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	gqlmodels "vitrine.GO/graphql/models"
	entity "vitrine.GO/model/entity/catalog"
	contentEntity "vitrine.GO/model/entity/content"
	"vitrine.GO/service/catalog"
)

// productToModel flattens a normalized product plus its derived display
// values into a map and decodes it into the GraphQL model.
func productToModel(p *entity.Product) (*gqlmodels.Product, error) {
	sizes := catalog.AvailableSizes(p)
	sizeStrs := make([]string, len(sizes))
	for i, s := range sizes {
		sizeStrs[i] = string(s)
	}

	gallery := catalog.ProductImages(p)
	images := make([]map[string]interface{}, 0, len(gallery))
	for _, img := range gallery {
		images = append(images, map[string]interface{}{
			"image_url":   img.ImageURL,
			"image_label": img.ImageLabel,
		})
	}

	var installments map[string]interface{}
	if d := catalog.Installments(p); d != nil {
		installments = map[string]interface{}{
			"number": d.Number,
			"value":  d.Value,
		}
	}

	flat := map[string]interface{}{
		"id":           p.ID,
		"name":         p.Name,
		"price":        p.Price,
		"price_text":   catalog.FormatPrice(p.Price),
		"list_price":   p.ListPrice(),
		"description":  p.Description,
		"categories":   emptyIfNil(p.Categories),
		"materials":    emptyIfNil(p.Materials),
		"sizes":        sizeStrs,
		"images":       images,
		"installments": installments,
	}

	var out gqlmodels.Product
	if err := decodeModel(flat, &out); err != nil {
		return nil, fmt.Errorf("map product %s: %w", p.ID, err)
	}
	return &out, nil
}

func bannerToModel(b contentEntity.Banner) (*gqlmodels.Banner, error) {
	flat := map[string]interface{}{
		"image_url":        b.ImageURL,
		"mobile_image_url": b.MobileImageURL,
		"link":             b.Link,
		"title":            b.Title,
	}
	var out gqlmodels.Banner
	if err := decodeModel(flat, &out); err != nil {
		return nil, fmt.Errorf("map banner: %w", err)
	}
	return &out, nil
}

func decodeModel(flat map[string]interface{}, result interface{}) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return dec.Decode(flat)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
