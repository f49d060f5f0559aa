package tenantcli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
)

func (f *CommandFactory) NewCreateTenantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Provision a new tenant. Usage: hub tenant create -n [name] -s [slug] -t [tier]",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			slug, _ := cmd.Flags().GetString("slug")
			tier, _ := cmd.Flags().GetString("tier")

			if name == "" {
				cmd.Println("Tenant name is required")
				return ErrTenantNameRequired
			}

			if slug == "" {
				cmd.Println("Tenant slug is required")
				return ErrTenantSlugRequired
			}

			tenant, err := f.tenant.Provision(cmd.Context(), name, slug, model.Tier(tier))
			if err != nil {
				cmd.Printf("Failed to provision tenant: %v\n", err)
				return err
			}

			cmd.Printf("Tenant provisioned: %s (schema %s)\n", tenant.ID, tenant.SchemaName)

			return nil
		},
	}
}

func (f *CommandFactory) NewGetTenantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get tenant by id. Usage: hub tenant get -i [tenant id]",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetString("id")
			if id == "" {
				cmd.Println("Tenant id is required")
				return ErrTenantIDRequired
			}

			tenant, err := repo.GetTenantByID(cmd.Context(), f.r, id)
			if err != nil {
				cmd.Printf("Tenant with id %s not found\n", id)
				return err
			}

			return printJSON(cmd, tenant)
		},
	}
}

const listBatchSize = 50

// NewListTenantsCmd streams tenants in batches so large installations do
// not load every row at once. Deactivated tenants are skipped unless --all
// is set.
func (f *CommandFactory) NewListTenantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tenants. Usage: hub tenant list [--all]",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			includeInactive, _ := cmd.Flags().GetBool("all")

			query := repo.NewQuery().
				Order(repo.OrderField{Field: repo.SlugField, Direction: repo.Asc})

			if !includeInactive {
				ck := repo.NewCompositeKey().
					Where(repo.StatusField, model.TenantStatusInactive, repo.NotEq)
				query = query.Where(repo.NewCompositeKeyGroup(ck))
			}

			total := 0

			err := repo.ProcessInBatch(cmd.Context(), f.r, query, listBatchSize,
				func(tenants []*model.Tenant) error {
					if len(tenants) == 0 {
						return nil
					}

					total += len(tenants)

					return printJSON(cmd, tenants)
				})
			if err != nil {
				cmd.Printf("Failed to list tenants: %v\n", err)
				return err
			}

			cmd.Printf("%d tenants\n", total)

			return nil
		},
	}
}

func (f *CommandFactory) NewUpdateTierCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-tier",
		Short: "Change a tenant's subscription tier. Usage: hub tenant update-tier -i [tenant id] -t [tier]",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetString("id")
			tier, _ := cmd.Flags().GetString("tier")

			if id == "" {
				cmd.Println("Tenant id is required")
				return ErrTenantIDRequired
			}

			if tier == "" {
				cmd.Println("Tier is required")
				return ErrTierRequired
			}

			tenant, err := f.tenant.UpdateTier(cmd.Context(), id, model.Tier(tier))
			if err != nil {
				cmd.Printf("Failed to update tier: %v\n", err)
				return err
			}

			return printJSON(cmd, tenant)
		},
	}
}

// NewStatusEventCmd builds one subcommand per lifecycle event so invalid
// transitions surface as command errors.
func (f *CommandFactory) NewStatusEventCmd(event string) *cobra.Command {
	return &cobra.Command{
		Use:   event,
		Short: "Apply the " + event + " lifecycle event to a tenant. Usage: hub tenant " + event + " -i [tenant id]",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetString("id")
			if id == "" {
				cmd.Println("Tenant id is required")
				return ErrTenantIDRequired
			}

			tenant, err := f.tenant.ChangeStatus(cmd.Context(), id, event)
			if err != nil {
				cmd.Printf("Failed to apply %s: %v\n", event, err)
				return err
			}

			cmd.Printf("Tenant %s is now %s\n", tenant.ID, tenant.Status)

			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(out))

	return nil
}
