package content

import (
	"encoding/json"
	"fmt"
	"os"

	entity "vitrine.GO/model/entity/content"
)

// Sections excluded from the category filter. Accessory categories are
// browseable from the menu but never offered as listing filters.
var excludedSectionTitle = "ACESSÓRIOS"

var excludedLabels = map[string]bool{
	"BOLSAS":     true,
	"CALÇADOS":   true,
	"CINTO":      true,
	"COLAR":      true,
	"ANEL":       true,
	"BRINCO":     true,
	"LINGERIE":   true,
	"LOUNGEWEAR": true,
}

// Service serves the static content snapshots: the promotional banner and
// the menu taxonomy. Both are consumed as-is from bundled JSON files.
type Service struct {
	banners []entity.Banner
	menu    []entity.MenuSection
}

func NewService() *Service {
	return &Service{}
}

// LoadFiles reads the banner and menu snapshots.
func (s *Service) LoadFiles(bannerPath, menuPath string) error {
	if err := loadJSON(bannerPath, &s.banners); err != nil {
		return err
	}
	return loadJSON(menuPath, &s.menu)
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse content %s: %w", path, err)
	}
	return nil
}

// Banner returns the active promotional banner (the snapshot's first
// record) or false when none is configured.
func (s *Service) Banner() (entity.Banner, bool) {
	if len(s.banners) == 0 {
		return entity.Banner{}, false
	}
	return s.banners[0], true
}

// Menu returns the full navigation taxonomy.
func (s *Service) Menu() []entity.MenuSection {
	return s.menu
}

// CategoryOptions flattens the taxonomy into the filter label list,
// skipping the accessories section and the fixed accessory label denylist.
// The MATERIAIS sentinel comes from the taxonomy itself, like any label.
func (s *Service) CategoryOptions() []string {
	var labels []string
	for _, section := range s.menu {
		for _, cat := range section.Categories {
			if cat.Title == excludedSectionTitle {
				continue
			}
			for _, item := range cat.Items {
				if excludedLabels[item.Label] {
					continue
				}
				labels = append(labels, item.Label)
			}
		}
	}
	return labels
}
