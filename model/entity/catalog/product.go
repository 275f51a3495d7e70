package catalog

// Product is the normalized, display-ready product shape. Immutable after
// normalization; shared by reference between the catalog service, the query
// pipeline and cart line items.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Materials   []string `json:"materials,omitempty"`
	Items       []Item   `json:"items"`
}

// Item is a sellable variant of a product. Size information is embedded in
// the free-text Name and extracted by pattern match (see service/catalog).
type Item struct {
	ItemID  string   `json:"itemId"`
	Name    string   `json:"name"`
	Images  []Image  `json:"images"`
	Sellers []Seller `json:"sellers"`
}

type Image struct {
	ImageURL   string `json:"imageUrl"`
	ImageLabel string `json:"imageLabel"`
}

// Seller keeps the export schema's wire spelling for the offer key so the
// normalized product serializes the way storefront clients already expect.
type Seller struct {
	CommercialOffer CommercialOffer `json:"commertialOffer"`
}

type CommercialOffer struct {
	Price        float64       `json:"Price"`
	ListPrice    float64       `json:"ListPrice"`
	Installments []Installment `json:"Installments"`
}

type Installment struct {
	Value                float64 `json:"Value"`
	InterestRate         float64 `json:"InterestRate"`
	NumberOfInstallments int     `json:"NumberOfInstallments"`
	PaymentSystemName    string  `json:"PaymentSystemName"`
}

// FirstOffer returns the first seller's offer of the first item, if any.
func (p *Product) FirstOffer() (CommercialOffer, bool) {
	if len(p.Items) == 0 || len(p.Items[0].Sellers) == 0 {
		return CommercialOffer{}, false
	}
	return p.Items[0].Sellers[0].CommercialOffer, true
}

// ListPrice returns the first offer's list price, falling back to the
// canonical price when the offer is missing.
func (p *Product) ListPrice() float64 {
	if offer, ok := p.FirstOffer(); ok {
		return offer.ListPrice
	}
	return p.Price
}
