package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	entity "vitrine.GO/model/entity/catalog"
	catalogService "vitrine.GO/service/catalog"
)

var validateFile string

var catalogValidateCmd = &cobra.Command{
	Use:   "catalog:validate",
	Short: "Validate a catalog snapshot file and report dropped records",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()

		data, err := os.ReadFile(validateFile)
		if err != nil {
			fmt.Printf("Failed to read catalog: %v\n", err)
			os.Exit(1)
		}
		var records []entity.RawProduct
		if err := json.Unmarshal(data, &records); err != nil {
			fmt.Printf("Failed to parse catalog: %v\n", err)
			os.Exit(1)
		}

		valid, unsized := 0, 0
		var drops []string
		for i := range records {
			p, ok := catalogService.Normalize(&records[i])
			if !ok {
				drops = append(drops, dropReason(&records[i]))
				continue
			}
			valid++
			if len(catalogService.AvailableSizes(&p)) == 0 {
				unsized++
			}
		}

		for _, d := range drops {
			fmt.Printf("  [drop] %s\n", d)
		}

		fmt.Printf(`
=== Catalog Report ===
Records:         %d
Valid:           %d
Dropped:         %d
Without sizes:   %d
Pages (size %d): %d
Elapsed:         %s
`, len(records), valid, len(drops), unsized,
			catalogService.DefaultPageSize,
			(valid+catalogService.DefaultPageSize-1)/catalogService.DefaultPageSize,
			time.Since(start))
	},
}

func dropReason(raw *entity.RawProduct) string {
	switch {
	case len(raw.Items) == 0:
		return fmt.Sprintf("%s (%s): no item variants", raw.ProductID, raw.ProductName)
	case len(raw.Items[0].Sellers) == 0:
		return fmt.Sprintf("%s (%s): no sellers on first variant", raw.ProductID, raw.ProductName)
	default:
		return fmt.Sprintf("%s (%s): non-positive price", raw.ProductID, raw.ProductName)
	}
}

func init() {
	catalogValidateCmd.Flags().StringVarP(&validateFile, "file", "f", "data/products.json", "Catalog snapshot file to validate")
	rootCmd.AddCommand(catalogValidateCmd)
}
