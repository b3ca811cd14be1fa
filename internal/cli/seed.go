package cli

import (
	"log"

	"github.com/spf13/cobra"

	"quiz-backend/internal/config"
	"quiz-backend/internal/infra/postgres"
)

// NewSeedCmd loads the sample catalog into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	var (
		clear    bool
		attempts int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample questions and optional mock attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}
			db, err := openBunDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			report, err := postgres.NewSeeder(db).Seed(cmd.Context(), postgres.SeedOptions{
				Clear:    clear,
				Attempts: attempts,
			})
			if err != nil {
				return err
			}
			if report.ConfigCreated {
				log.Printf("created quiz configuration")
			}
			log.Printf("questions: %d created, %d already present", report.QuestionsCreated, report.QuestionsSkipped)
			if report.AttemptsCreated > 0 {
				log.Printf("mock attempts: %d created", report.AttemptsCreated)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "delete existing quiz data first")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "number of mock attempts to generate")
	return cmd
}
