package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"stripe_testbed/internal/config"
	"stripe_testbed/internal/usecase"

	"github.com/spf13/cobra"
)

// UseCaseFactory builds the operations for one invocation from its config.
type UseCaseFactory func(ctx context.Context, cfg *config.Config) (usecase.IStripeTestbedUseCase, error)

// App holds what the commands need from the process. Each Execute call
// builds a fresh command tree, so nothing here is mutated by a run.
type App struct {
	Version    string
	Out        io.Writer
	Err        io.Writer
	NewUseCase UseCaseFactory
	// ConfigureLogging runs after flags are parsed.
	ConfigureLogging func(verbose bool) error
	// ReportError receives remote and unexpected failures.
	ReportError func(err error)
}

type options struct {
	configPath  string
	amount      int64
	currency    string
	email       string
	name        string
	description string
	paymentID   string
	limit       int64
	customer    string
	json        bool
	verbose     bool
}

func NewRootCommand(app *App) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "stripe-testbed <operation> [flags]",
		Short: "Stripe payment API testbed",
		Long: `stripe-testbed exercises the Stripe test-mode API from the command line.

Operations: ` + strings.Join(usecase.Operations, " | ") + `

Amounts are integers in the currency's smallest unit (e.g. cents).`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("an operation is required (one of: %s)", strings.Join(usecase.Operations, ", "))
			}
			return usageErrorf("unknown operation %q (one of: %s)", args[0], strings.Join(usecase.Operations, ", "))
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.ConfigureLogging != nil {
				return app.ConfigureLogging(o.verbose)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "Path to configuration file (default: $"+config.EnvConfigPath+" or "+config.DefaultPath+")")
	flags.Int64Var(&o.amount, "amount", 1000, "Amount for the payment in smallest currency unit (e.g., cents)")
	flags.StringVar(&o.currency, "currency", "chf", "Currency for the payment (e.g., chf, usd)")
	flags.StringVar(&o.email, "email", "", "Customer email (required for create-customer)")
	flags.StringVar(&o.name, "name", "", "Customer name (required for create-customer)")
	flags.StringVar(&o.description, "description", "", "Customer description (optional for create-customer)")
	flags.StringVar(&o.paymentID, "payment-id", "", "Payment Intent ID (required for create-refund and payment-details)")
	flags.Int64Var(&o.limit, "limit", 5, "Limit for listing operations")
	flags.StringVar(&o.customer, "customer", "", "Customer ID to scope list-methods")
	flags.BoolVar(&o.json, "json", false, "Print the result as JSON")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(
		app.createPaymentCmd(o),
		app.getBalanceCmd(o),
		app.listPaymentsCmd(o),
		app.createCustomerCmd(o),
		app.createRefundCmd(o),
		app.listMethodsCmd(o),
		app.paymentDetailsCmd(o),
		app.configCmd(o),
		app.versionCmd(),
	)
	root.Version = app.Version
	return root
}

// Execute runs one invocation and returns the process exit code.
func Execute(ctx context.Context, app *App, args []string) int {
	root := NewRootCommand(app)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	code := ExitCode(err)
	fmt.Fprintln(app.Err, "Error:", err)
	if code == ExitUsage {
		fmt.Fprintln(app.Err, "Run 'stripe-testbed --help' for usage.")
	}
	if (code == ExitRemote || code == ExitFailure) && app.ReportError != nil {
		app.ReportError(err)
	}
	return code
}

// open loads the config and builds the operations. It runs only after the
// request has been validated.
func (a *App) open(ctx context.Context, o *options) (usecase.IStripeTestbedUseCase, error) {
	cfg, err := config.Load(config.ResolvePath(o.configPath))
	if err != nil {
		return nil, err
	}
	return a.NewUseCase(ctx, cfg)
}
