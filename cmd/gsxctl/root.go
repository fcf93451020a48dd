package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danmuck/gsxws/internal/config"
	"github.com/danmuck/gsxws/internal/gsx"
	"github.com/danmuck/gsxws/internal/observability"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	language    string
	timezone    string
	environment string
	region      string
	locale      string
	metricsAddr string
	serial      string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "gsxctl USER_ID PASSWORD SOLD_TO",
		Short: "GSX web services client",
		Long: `gsxctl opens a GSX session, optionally runs a warranty check and
closes the session again. The comptia subcommand prints defect codes.

Environments: pr (production), it (integration), ut (user testing)
Regions:      am, emea, apac, la`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args[0], args[2])
			if err != nil {
				return err
			}
			stop, err := opts.serveMetrics(cmd)
			if err != nil {
				return err
			}
			defer stop()
			return withSession(cmd, cfg, args[1], func(ctx context.Context, client *gsx.Client) error {
				fmt.Fprintf(cmd.OutOrStdout(), "session open (%s)\n", client.Endpoint())
				return printWarranty(ctx, cmd, client, opts.serial)
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML config file")
	flags.StringVar(&opts.language, "language", "en", "session language code")
	flags.StringVar(&opts.timezone, "timezone", "CEST", "session time zone")
	flags.StringVar(&opts.environment, "environment", "pr", "pr, it or ut")
	flags.StringVar(&opts.region, "region", "emea", "am, emea, apac or la")
	flags.StringVar(&opts.locale, "locale", gsx.DefaultLocale, "payload date/time locale")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	cmd.Flags().StringVar(&opts.serial, "serial", "", "print the warranty status of this serial number")

	cmd.AddCommand(newClassifyCmd(), newInitConfigCmd(), newCompTIACmd(&opts))
	return cmd
}

// serveMetrics starts the metrics listener; stop shuts it down.
func (o rootOptions) serveMetrics(cmd *cobra.Command) (stop func(), err error) {
	if o.metricsAddr == "" {
		return func() {}, nil
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	if _, err := observability.Serve(ctx, o.metricsAddr); err != nil {
		cancel()
		return nil, err
	}
	return cancel, nil
}

// resolve loads the config file when given and lets explicitly set flags
// override it.
func (o rootOptions) resolve(cmd *cobra.Command, userID, soldTo string) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	overrides := []struct {
		flag string
		val  string
		dst  *string
	}{
		{"language", o.language, &cfg.Language},
		{"timezone", o.timezone, &cfg.Timezone},
		{"environment", o.environment, &cfg.Environment},
		{"region", o.region, &cfg.Region},
		{"locale", o.locale, &cfg.Locale},
	}
	for _, ov := range overrides {
		if o.configPath == "" || cmd.Flags().Changed(ov.flag) {
			*ov.dst = ov.val
		}
	}
	cfg.UserID = userID
	cfg.SoldTo = soldTo
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// withSession connects, runs fn and logs out again, also when fn fails.
func withSession(cmd *cobra.Command, cfg config.Config, password string, fn func(context.Context, *gsx.Client) error) error {
	clientOpts, err := cfg.ClientOptions()
	if err != nil {
		return err
	}
	client, err := gsx.New(clientOpts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	if _, err := client.Connect(ctx, cfg.Credentials(password)); err != nil {
		return err
	}
	defer func() {
		if err := client.Logout(context.Background()); err != nil {
			log.Warn().Err(err).Msg("logout failed")
		}
	}()
	return fn(ctx, client)
}

func printWarranty(ctx context.Context, cmd *cobra.Command, client *gsx.Client, serial string) error {
	if serial == "" {
		return nil
	}
	res, err := client.WarrantyStatus(ctx, serial)
	if err != nil {
		return err
	}
	if !res.Report.OK() {
		log.Warn().Err(res.Report.Err()).Msg("warranty status kept raw values")
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res.Value)
}
