package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "bank",
		Short:         "Bank account demo",
		Long:          `Opens saver, current and business accounts and shows how each applies deposits and withdrawals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (json, console), overrides LOG_FORMAT")

	rootCmd.AddCommand(demoCmd(flags), simulateCmd(flags))
	return rootCmd
}

// app is the wired service a command runs against.
type app struct {
	accounts *usecase.AccountUseCase
	registry *prometheus.Registry
	log      zerolog.Logger
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.LogFormat = flags.logFormat
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry, cfg.MetricsNamespace)

	accounts := usecase.NewAccountUseCase(
		memory.NewAccountRepository(),
		memory.NewULIDGenerator(),
		recorder,
		log,
	)

	return &app{accounts: accounts, registry: registry, log: log}, nil
}

func demoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open one account of each kind and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}
}

var demoAccounts = []usecase.OpenAccountInput{
	{Kind: domain.KindSaver, Name: "John Doe", Balance: decimal.NewFromInt(1000), InterestRate: decimal.RequireFromString("0.05")},
	{Kind: domain.KindCurrent, Name: "Jane Doe", Balance: decimal.NewFromInt(5000), Limit: decimal.NewFromInt(500)},
	{Kind: domain.KindBusiness, Name: "Jane Doe", Balance: decimal.NewFromInt(5000), Limit: decimal.NewFromInt(1000)},
}

func runDemo(cmd *cobra.Command, flags *globalFlags) error {
	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	for _, input := range demoAccounts {
		record, err := a.accounts.OpenAccount(ctx, input)
		if err != nil {
			return fmt.Errorf("open %s account: %w", input.Kind, err)
		}
		fmt.Fprintln(out, record.Account)
	}
	return nil
}

type simulateOptions struct {
	kind        string
	name        string
	balance     string
	rate        string
	limit       string
	ops         []string
	showMetrics bool
}

func simulateCmd(flags *globalFlags) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Open an account and apply deposits and withdrawals in order",
		Example: `  bank simulate --kind current --name "Jane Doe" --balance 5000 --limit 500 --op withdraw=5400
  bank simulate --kind saver --name "John Doe" --balance 1000 --rate 0.05 --op deposit=100 --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", string(domain.KindStandard), "Account kind (standard, saver, current, business)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Account holder name")
	cmd.Flags().StringVar(&opts.balance, "balance", "0", "Opening balance")
	cmd.Flags().StringVar(&opts.rate, "rate", "0", "Interest rate for saver accounts")
	cmd.Flags().StringVar(&opts.limit, "limit", "0", "Overdraft or credit limit for current and business accounts")
	cmd.Flags().StringArrayVar(&opts.ops, "op", nil, "Operation to apply, deposit=AMOUNT or withdraw=AMOUNT (repeatable)")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "Print collected metrics after the run")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type operation struct {
	name   string
	amount decimal.Decimal
}

func parseOperation(s string) (operation, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return operation{}, fmt.Errorf("invalid operation %q: expected NAME=AMOUNT", s)
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name != usecase.OperationDeposit && name != usecase.OperationWithdraw {
		return operation{}, fmt.Errorf("invalid operation %q: unknown operation %q", s, name)
	}

	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return operation{}, err
	}

	return operation{name: name, amount: amount}, nil
}

func parseInput(opts *simulateOptions) (usecase.OpenAccountInput, []operation, error) {
	kind, err := domain.ParseKind(opts.kind)
	if err != nil {
		return usecase.OpenAccountInput{}, nil, err
	}

	input := usecase.OpenAccountInput{Kind: kind, Name: opts.name}
	for _, field := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{opts.balance, &input.Balance},
		{opts.rate, &input.InterestRate},
		{opts.limit, &input.Limit},
	} {
		if *field.dst, err = domain.ParseAmount(field.raw); err != nil {
			return usecase.OpenAccountInput{}, nil, err
		}
	}

	ops := make([]operation, 0, len(opts.ops))
	for _, s := range opts.ops {
		op, err := parseOperation(s)
		if err != nil {
			return usecase.OpenAccountInput{}, nil, err
		}
		ops = append(ops, op)
	}

	return input, ops, nil
}

func runSimulate(cmd *cobra.Command, flags *globalFlags, opts *simulateOptions) error {
	input, ops, err := parseInput(opts)
	if err != nil {
		return err
	}

	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	record, err := a.accounts.OpenAccount(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, record.Account)

	runErr := func() error {
		for _, op := range ops {
			var err error
			switch op.name {
			case usecase.OperationDeposit:
				_, err = a.accounts.Deposit(ctx, record.ID, op.amount)
			case usecase.OperationWithdraw:
				_, err = a.accounts.Withdraw(ctx, record.ID, op.amount)
			}
			if err != nil {
				return fmt.Errorf("%s %s: %w", op.name, op.amount, err)
			}
			fmt.Fprintf(out, "%s %s -> %s\n", op.name, op.amount, record.Account)
		}
		return nil
	}()

	if opts.showMetrics {
		if err := writeMetrics(cmd, a.registry); err != nil {
			a.log.Error().Err(err).Msg("failed to write metrics")
		}
	}

	return runErr
}

func writeMetrics(cmd *cobra.Command, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(cmd.OutOrStdout(), expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
