package content

// Banner is a promotional banner record, consumed as-is from the bundled
// content snapshot (no transformation logic).
type Banner struct {
	ImageURL       string `json:"imageUrl"`
	MobileImageURL string `json:"mobileImageUrl"`
	Link           string `json:"link"`
	Title          string `json:"title"`
}
