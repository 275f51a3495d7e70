package content

// MenuSection is one top-level entry of the navigation taxonomy.
type MenuSection struct {
	Label      string         `json:"label"`
	Link       string         `json:"link,omitempty"`
	Categories []MenuCategory `json:"categories,omitempty"`
}

// MenuCategory groups menu items under a section title (e.g. "ROUPAS",
// "ACESSÓRIOS").
type MenuCategory struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

type MenuItem struct {
	Label string `json:"label"`
	Link  string `json:"link,omitempty"`
}
