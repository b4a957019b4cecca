package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"doblink/internal/app"
	"doblink/internal/config"
	"doblink/internal/logger"
	"doblink/internal/middleware"
	"doblink/internal/models"
)

type cli struct {
	cfg     *config.Config
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "registryctl",
		Short: "Operate a doblink investment registry",
		Long: `registryctl runs registry operations against the store selected by
STORE_BACKEND, using the same configuration as the API server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			logger.Init(cfg.Env)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Operation timeout")

	root.AddCommand(c.initCmd(), c.adminCmd(), c.tokenCmd(), c.statsCmd(), c.statusCmd())
	return root
}

// withApp runs fn against a freshly wired App and closes it afterwards.
func (c *cli) withApp(fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	a, err := app.New(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func (c *cli) initCmd() *cobra.Command {
	var admin string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Designate the admin and install the default token",
		Long: `init designates the registry admin and installs the default token
configuration. Running it on an initialized registry replaces the admin and
resets the token, but keeps every recorded investment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(admin)
			if err != nil {
				return err
			}
			return c.withApp(func(ctx context.Context, a *app.App) error {
				if err := a.Registry.Init(ctx, addr, addr); err != nil {
					return err
				}
				a.Audit.Log(addr, "INIT_REGISTRY", "registry", "", "", map[string]any{"source": "registryctl"})
				cfg, err := a.Registry.GetTokenInfo(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"admin": addr, "token": cfg})
			})
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "Admin account address")
	_ = cmd.MarkFlagRequired("admin")
	return cmd
}

func (c *cli) adminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Print the registry admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(func(ctx context.Context, a *app.App) error {
				admin, err := a.Registry.GetAdmin(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"admin": admin})
			})
		},
	}
}

func (c *cli) tokenCmd() *cobra.Command {
	var (
		address string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an API access token for an address",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(address)
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = c.cfg.JWTExpirationDur
			}
			token, err := middleware.GenerateAccessToken(c.cfg.JWTSecret, addr, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "Account address the token identifies")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default JWT_EXPIRES_IN)")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print investment statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(func(ctx context.Context, a *app.App) error {
				stats, err := a.Registry.GetStats(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			})
		},
	}
}

func (c *cli) statusCmd() *cobra.Command {
	var (
		id     uint32
		status string
		caller string
	)
	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Change the status of an investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			newStatus, err := models.ParseInvestmentStatus(status)
			if err != nil {
				return err
			}
			if caller == "" {
				caller = c.cfg.AdminAddress
			}
			addr, err := parseAddress(caller)
			if err != nil {
				return err
			}
			return c.withApp(func(ctx context.Context, a *app.App) error {
				inv, err := a.Registry.UpdateInvestmentStatus(ctx, addr, id, newStatus)
				if err != nil {
					return err
				}
				a.Audit.Log(addr, "UPDATE_INVESTMENT_STATUS", "investment", fmt.Sprint(id), "",
					map[string]any{"status": newStatus, "source": "registryctl"})
				return printJSON(cmd.OutOrStdout(), inv)
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Investment ID")
	cmd.Flags().StringVar(&status, "status", "", "New status: pending, completed, or failed")
	cmd.Flags().StringVar(&caller, "as", "", "Caller address (default ADMIN_ADDRESS)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func parseAddress(s string) (models.Address, error) {
	if !models.IsValidAddress(s) {
		return "", fmt.Errorf("invalid account address %q", s)
	}
	return models.Address(s), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
