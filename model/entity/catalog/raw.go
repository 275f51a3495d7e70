package catalog

// Raw catalog records as exported by the commerce platform. Field names
// follow the export schema verbatim, including the misspelled
// "commertialOffer" key.
type RawProduct struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	Materials   []string  `json:"materials"`
	Items       []RawItem `json:"items"`
}

type RawItem struct {
	ItemID  string      `json:"itemId"`
	Name    string      `json:"name"`
	Images  []RawImage  `json:"images"`
	Sellers []RawSeller `json:"sellers"`
}

type RawImage struct {
	ImageURL   string `json:"imageUrl"`
	ImageLabel string `json:"imageLabel"`
}

type RawSeller struct {
	CommercialOffer RawOffer `json:"commertialOffer"`
}

type RawOffer struct {
	Price        float64          `json:"Price"`
	ListPrice    float64          `json:"ListPrice"`
	Installments []RawInstallment `json:"Installments"`
}

type RawInstallment struct {
	Value                float64 `json:"Value"`
	InterestRate         float64 `json:"InterestRate"`
	NumberOfInstallments int     `json:"NumberOfInstallments"`
	PaymentSystemName    string  `json:"PaymentSystemName"`
}

// FirstOffer returns the first seller's offer of the first item, if any.
func (p *RawProduct) FirstOffer() (RawOffer, bool) {
	if len(p.Items) == 0 || len(p.Items[0].Sellers) == 0 {
		return RawOffer{}, false
	}
	return p.Items[0].Sellers[0].CommercialOffer, true
}
