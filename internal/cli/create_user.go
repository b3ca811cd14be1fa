package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"quiz-backend/internal/app"
	"quiz-backend/internal/auth"
	"quiz-backend/internal/config"
	"quiz-backend/internal/infra/memory"
	"quiz-backend/internal/infra/postgres"
)

// NewCreateUserCmd creates an account directly in Postgres, typically a staff one.
func NewCreateUserCmd(configPath *string) *cobra.Command {
	var (
		reg   app.Registration
		staff bool
	)
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}
			pool, err := connectPool(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			// Only CreateUser runs here, so no token store or real signing setup is needed.
			service := app.NewAuthService(postgres.NewUserRepository(pool), memory.NewTokenRevoker(), auth.NewIssuer(cfg.Auth.JWTSecret, 0, 0))
			user, err := service.CreateUser(cmd.Context(), reg, staff)
			if err != nil {
				return err
			}
			log.Printf("created user %q (id=%d, staff=%t)", user.Username, user.ID, user.IsStaff)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.Username, "username", "", "username")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password (min 8 characters)")
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "last name")
	cmd.Flags().BoolVar(&staff, "staff", false, "grant staff access")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
