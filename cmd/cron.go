package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vitrine.GO/config"
	"vitrine.GO/cron"
	"vitrine.GO/cron/jobs"
	cartService "vitrine.GO/service/cart"
	catalogService "vitrine.GO/service/catalog"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		wireJobs()

		if jobName != "" {
			name := strings.ToLower(jobName)
			if cronJob, ok := config.CronJobs[name]; ok {
				fmt.Printf("Running cron job: %s\n", jobName)
				cronJob.Job(args...)
				return
			}
			if j, ok := cron.Jobs()[name]; ok {
				fmt.Printf("Running cron job: %s\n", jobName)
				j.Run(args...)
				return
			}
			fmt.Printf("Unknown job: %s\n", jobName)
			os.Exit(1)
		}
		fmt.Println("Starting cron scheduler...")
		c := cron.StartCron()
		defer c.Stop()
		fmt.Println("Cron scheduler started. Press Ctrl+C to exit.")
		select {} // Block forever
	},
}

// The scheduler process gets its own catalog service and session store;
// jobs running here refresh the catalog file in place.
func wireJobs() {
	svc := catalogService.NewService(config.AppConfig.PageSize)
	if err := svc.LoadFile(config.AppConfig.CatalogPath); err != nil {
		fmt.Printf("Warning: catalog not loaded: %v\n", err)
	}
	jobs.Wire(svc, config.AppConfig.CatalogPath, cartService.NewSessionStore())
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
