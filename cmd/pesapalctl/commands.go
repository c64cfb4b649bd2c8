package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"pesapal_gateway/internal/config"
	"pesapal_gateway/pkg/pesapal"

	"github.com/spf13/cobra"
)

var errRequestFailed = errors.New("request failed")

// app carries what every subcommand shares. newClient is swapped in tests.
type app struct {
	out       io.Writer
	logs      io.Writer
	format    string
	baseURL   string
	newClient func() (*pesapal.Client, error)
}

func newApp(out, logs io.Writer) *app {
	a := &app{out: out, logs: logs}
	a.newClient = a.clientFromConfig
	return a
}

func (a *app) clientFromConfig() (*pesapal.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Pesapal.ConsumerKey) == "" || strings.TrimSpace(cfg.Pesapal.ConsumerSecret) == "" {
		return nil, config.ErrMissingCredentials
	}
	clientCfg := cfg.PesapalClientConfig()
	if a.baseURL != "" {
		clientCfg.BaseURL = a.baseURL
	}
	clientCfg.Logger = log.New(a.logs, "", log.LstdFlags)
	return pesapal.NewClient(clientCfg), nil
}

// finish prints the result and turns an unsuccessful one into an error so
// the process exits non-zero.
func (a *app) finish(v any, success bool, errMsg string) error {
	if err := writeOutput(a.out, a.format, v); err != nil {
		return err
	}
	if !success {
		return fmt.Errorf("%w: %s", errRequestFailed, errMsg)
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pesapalctl",
		Short:         "pesapalctl - PesaPal v3 API client",
		Long:          "Calls the PesaPal v3 API with credentials from PESAPAL_* environment variables or the file named by PESAPAL_CONFIG_FILE.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(a.out)
	rootCmd.PersistentFlags().StringVarP(&a.format, "output", "o", formatJSON, "Output format (json, yaml)")
	rootCmd.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "Override the gateway base url")

	rootCmd.AddCommand(tokenCmd(a))
	rootCmd.AddCommand(ipnCmd(a))
	rootCmd.AddCommand(orderCmd(a))
	rootCmd.AddCommand(statusCmd(a))
	rootCmd.AddCommand(refundCmd(a))
	rootCmd.AddCommand(bootstrapCmd(a))

	return rootCmd
}

func tokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Request an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			st := client.EnsureValidToken(cmd.Context())
			out := struct {
				pesapal.TokenStatus
				ExpiryDate string `json:"expiryDate,omitempty"`
			}{TokenStatus: st}
			if tok := client.Token(); tok != nil {
				out.ExpiryDate = tok.ExpiryDate
			}
			return a.finish(out, st.Success, st.Err)
		},
	}
}

func ipnCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipn",
		Short: "Manage IPN urls",
	}

	register := &cobra.Command{
		Use:   "register [url]",
		Short: "Register an IPN url (defaults to PESAPAL_IPN_URL)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			ipnURL := ""
			if len(args) == 1 {
				ipnURL = args[0]
			}
			notificationType, _ := cmd.Flags().GetString("type")
			res := client.RegisterIPN(cmd.Context(), ipnURL, notificationType)
			return a.finish(res, res.Success, res.Err)
		},
	}
	register.Flags().StringP("type", "t", pesapal.DefaultNotificationType, "Notification type (GET, POST)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered IPN urls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			res := client.ListIPNs(cmd.Context())
			return a.finish(res, res.Success, res.Err)
		},
	}

	cmd.AddCommand(register, list)
	return cmd
}

func orderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Submit payment orders",
	}

	var details pesapal.PaymentDetails
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit an order using the first registered IPN url",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if details.ID == "" || details.Amount <= 0 || details.Description == "" {
				return errors.New("--id, --amount and --description are required")
			}
			client, err := a.newClient()
			if err != nil {
				return err
			}
			// A fresh process has no cached endpoints; load them first.
			if res := client.ListIPNs(cmd.Context()); !res.Success {
				return a.finish(res, false, res.Err)
			}
			res := client.SubmitOrder(cmd.Context(), details, details.ID, details.Description)
			return a.finish(res, res.Success, res.Err)
		},
	}
	f := submit.Flags()
	f.StringVar(&details.ID, "id", "", "Merchant reference")
	f.Float64Var(&details.Amount, "amount", 0, "Amount to charge")
	f.StringVar(&details.Currency, "currency", "", "Currency (defaults to PESAPAL_CURRENCY)")
	f.StringVar(&details.Description, "description", "", "Order description")
	f.StringVar(&details.CallbackURL, "callback-url", "", "Callback url when PESAPAL_CALLBACK_URL is unset")
	f.StringVar(&details.BillingAddress.EmailAddress, "email", "", "Customer email")
	f.StringVar(&details.BillingAddress.PhoneNumber, "phone", "", "Customer phone number")
	f.StringVar(&details.BillingAddress.FirstName, "first-name", "", "Customer first name")
	f.StringVar(&details.BillingAddress.LastName, "last-name", "", "Customer last name")

	cmd.AddCommand(submit)
	return cmd
}

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status [order-tracking-id]",
		Short: "Get the status of a transaction",
		Long:  "Get the status of a transaction. Exits non-zero on gateway errors; pending or failed payments are reported, not treated as errors.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			res := client.GetTransactionStatus(cmd.Context(), args[0])
			return a.finish(res, res.Err == "", res.Err)
		},
	}
}

func refundCmd(a *app) *cobra.Command {
	var req pesapal.RefundRequest
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Request a refund for a confirmed payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.ConfirmationCode == "" || req.Amount == "" || req.Username == "" || req.Remarks == "" {
				return errors.New("--confirmation-code, --amount, --username and --remarks are required")
			}
			client, err := a.newClient()
			if err != nil {
				return err
			}
			res := client.RequestRefund(cmd.Context(), req)
			return a.finish(res, res.Success, res.Err)
		},
	}
	cmd.Flags().StringVar(&req.ConfirmationCode, "confirmation-code", "", "Confirmation code of the payment")
	cmd.Flags().StringVar(&req.Amount, "amount", "", "Amount to refund")
	cmd.Flags().StringVar(&req.Username, "username", "", "Who requested the refund")
	cmd.Flags().StringVar(&req.Remarks, "remarks", "", "Reason for the refund")
	return cmd
}

func bootstrapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Register PESAPAL_IPN_URL and list IPN urls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			res := client.Run(cmd.Context())
			out := struct {
				pesapal.Result
				Endpoints []pesapal.IPNEndpoint `json:"endpoints"`
			}{Result: res, Endpoints: client.IPNs()}
			return a.finish(out, res.Success, res.Err)
		},
	}
}
