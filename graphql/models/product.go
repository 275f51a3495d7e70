package models

// GraphQL view models. Numeric GraphQL fields are int32/float64 as
// graphql-go requires; mapstructure tags drive the entity-to-model decode
// in the resolvers package.
type Product struct {
	ID           string        `json:"id" mapstructure:"id"`
	Name         string        `json:"name" mapstructure:"name"`
	Price        float64       `json:"price" mapstructure:"price"`
	PriceText    string        `json:"priceText" mapstructure:"price_text"`
	ListPrice    float64       `json:"listPrice" mapstructure:"list_price"`
	Description  string        `json:"description" mapstructure:"description"`
	Categories   []string      `json:"categories" mapstructure:"categories"`
	Materials    []string      `json:"materials" mapstructure:"materials"`
	Sizes        []string      `json:"sizes" mapstructure:"sizes"`
	Images       []*Image      `json:"images" mapstructure:"images"`
	Installments *Installments `json:"installments,omitempty" mapstructure:"installments"`
}

type Image struct {
	ImageURL   string `json:"imageUrl" mapstructure:"image_url"`
	ImageLabel string `json:"imageLabel" mapstructure:"image_label"`
}

type Installments struct {
	Number int32   `json:"number" mapstructure:"number"`
	Value  float64 `json:"value" mapstructure:"value"`
}

type ProductPage struct {
	Products    []*Product `json:"products"`
	HasMore     bool       `json:"hasMore"`
	CurrentPage int32      `json:"currentPage"`
}

type Banner struct {
	ImageURL       string `json:"imageUrl" mapstructure:"image_url"`
	MobileImageURL string `json:"mobileImageUrl" mapstructure:"mobile_image_url"`
	Link           string `json:"link" mapstructure:"link"`
	Title          string `json:"title" mapstructure:"title"`
}
