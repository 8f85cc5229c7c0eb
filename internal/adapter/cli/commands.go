package cli

import (
	"fmt"

	"stripe_testbed/internal/config"
	"stripe_testbed/internal/domain/entities"
	"stripe_testbed/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *App) createPaymentCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   usecase.OperationCreatePayment,
		Short: "Create a payment (PaymentIntent) and wait for confirmation",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := entities.PaymentRequest{Amount: o.amount, Currency: o.currency}
			if err := usecase.Validate(&req); err != nil {
				return err
			}
			uc, err := a.open(cmd.Context(), o)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			var observer usecase.PollObserver = usecase.NopObserver{}
			if !o.json {
				p.printf("Creating a payment of %d %s...\n", req.Amount, req.Currency)
				observer = p
			}
			result, err := uc.CreatePayment(cmd.Context(), req, observer)
			if err != nil {
				return err
			}
			if o.json {
				return p.json(result)
			}
			p.paymentResult(result)
			p.disclaimer()
			p.printf("\nPayment Intent id: %s\n", result.Intent.ID)
			return nil
		},
	}
}

func (a *App) getBalanceCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   usecase.OperationGetBalance,
		Short: "Retrieve the current balance",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.open(cmd.Context(), o)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if !o.json {
				p.printf("Retrieving current balance...\n")
			}
			balance, err := uc.GetBalance(cmd.Context())
			if err != nil {
				return err
			}
			if o.json {
				return p.json(balance)
			}
			p.balance(balance)
			p.disclaimer()
			return nil
		},
	}
}

func (a *App) listPaymentsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   usecase.OperationListPayments,
		Short: "List recent payment intents, newest first",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := entities.ListRequest{Limit: o.limit}
			if err := usecase.Validate(&req); err != nil {
				return err
			}
			uc, err := a.open(cmd.Context(), o)
			if err != nil {
				return err
			}
			payments, err := uc.ListPayments(cmd.Context(), req)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if o.json {
				return p.json(payments)
			}
			p.payments(payments)
			p.disclaimer()
			return nil
		},
	}
}

func (a *App) createCustomerCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   usecase.OperationCreateCustomer,
		Short: "Create a customer (requires --email and --name)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := entities.CustomerRequest{Email: o.email, Name: o.name, Description: o.description}
			if err := usecase.Validate(&req); err != nil {
				return err
			}
			uc, err := a.open(cmd.Context(), o)
			if err != nil {
				return err
			}
			customer, err := uc.CreateCustomer(cmd.Context(), req)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if o.json {
				return p.json(customer)
			}
			p.customer(customer)
			p.disclaimer()
			return nil
		},
	}
}

func (a *App) createRefundCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   usecase.OperationCreateRefund,
		Short: "Refund the latest charge of a payment intent (requires --payment-id)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := entities.RefundRequest{PaymentIntentID: o.paymentID}
			if err := usecase.Validate(&req); err != nil {
				return err
			}
			uc, err := a.open(cmd.Context(), o)
			if err != nil {
				return err
			}
			result, err := uc.CreateRefund(cmd.Context(), req)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if o.json {
				return p.json(result)
			}
			p.refund(result)
			p.disclaimer()
			return nil
		},
	}
}

func (a *App) listMethodsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   usecase.OperationListMethods,
		Short: "List card payment methods (optionally for --customer)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := entities.MethodListRequest{CustomerID: o.customer, Limit: o.limit}
			if err := usecase.Validate(&req); err != nil {
				return err
			}
			uc, err := a.open(cmd.Context(), o)
			if err != nil {
				return err
			}
			methods, err := uc.ListPaymentMethods(cmd.Context(), req)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if o.json {
				return p.json(methods)
			}
			p.paymentMethods(methods)
			p.disclaimer()
			return nil
		},
	}
}

func (a *App) paymentDetailsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   usecase.OperationPaymentDetails,
		Short: "Show a payment with its charge and balance transaction (requires --payment-id)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := entities.PaymentDetailsRequest{PaymentIntentID: o.paymentID}
			if err := usecase.Validate(&req); err != nil {
				return err
			}
			uc, err := a.open(cmd.Context(), o)
			if err != nil {
				return err
			}
			pi, err := uc.GetPaymentDetails(cmd.Context(), req.PaymentIntentID)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if o.json {
				return p.json(pi)
			}
			p.paymentDetails(pi)
			p.disclaimer()
			return nil
		},
	}
}

func (a *App) configCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration with the API key redacted",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ResolvePath(o.configPath)
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			redacted := cfg.Redacted()
			p := newPrinter(cmd.OutOrStdout())
			if o.json {
				return p.json(redacted)
			}
			out, err := yaml.Marshal(redacted)
			if err != nil {
				return err
			}
			p.printf("# %s\n%s", path, out)
			return nil
		},
	})
	return cmd
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "stripe-testbed %s\n", a.Version)
			return nil
		},
	}
}
