package tenantcli

import (
	"errors"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/agenthub/hub/internal/config"
	"github.com/agenthub/hub/internal/db"
	"github.com/agenthub/hub/internal/log"
)

var (
	ErrTenantIDRequired   = errors.New("tenant id is required")
	ErrTenantSlugRequired = errors.New("tenant slug is required")
	ErrTenantNameRequired = errors.New("tenant name is required")
	ErrTierRequired       = errors.New("tier is required")
)

// Cmd builds the `hub tenant` command group. The database connection is
// opened once in the group's PersistentPreRunE so every subcommand shares
// it.
func Cmd(buildInfo string) *cobra.Command {
	factory := &CommandFactory{}

	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "AgentHub Tenant CLI",
		Long:  "Command line interface to provision and manage tenants.",
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return oops.In("tenantcli").Wrapf(err, "failed to load config")
			}

			log.Setup(cfg.Logging.Level)

			dbCon, err := db.StartDB(c.Context(), cfg)
			if err != nil {
				return oops.In("tenantcli").Wrapf(err, "failed to initialise db connection")
			}

			*factory = *NewCommandFactory(dbCon, cfg)

			return nil
		},
	}

	createCmd := factory.NewCreateTenantCmd()
	createCmd.Flags().StringP("name", "n", "", "Tenant display name")
	createCmd.Flags().StringP("slug", "s", "", "Tenant slug")
	createCmd.Flags().StringP("tier", "t", "", "Subscription tier")
	cmd.AddCommand(createCmd)

	getCmd := factory.NewGetTenantCmd()
	getCmd.Flags().StringP("id", "i", "", "Tenant id")
	cmd.AddCommand(getCmd)

	listCmd := factory.NewListTenantsCmd()
	listCmd.Flags().BoolP("all", "a", false, "Include deactivated tenants")
	cmd.AddCommand(listCmd)

	updateTierCmd := factory.NewUpdateTierCmd()
	updateTierCmd.Flags().StringP("id", "i", "", "Tenant id")
	updateTierCmd.Flags().StringP("tier", "t", "", "Subscription tier")
	cmd.AddCommand(updateTierCmd)

	for _, event := range []string{"activate", "suspend", "resume", "deactivate"} {
		statusCmd := factory.NewStatusEventCmd(event)
		statusCmd.Flags().StringP("id", "i", "", "Tenant id")
		cmd.AddCommand(statusCmd)
	}

	return cmd
}
