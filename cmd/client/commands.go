package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/services"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/session"
)

func (a *app) commands() []*cli.Command {
	coinFlag := &cli.StringFlag{Name: "coin", Usage: "the coin symbol, e.g. USDT", Required: true}
	networkFlag := &cli.StringFlag{Name: "network", Usage: "the withdrawal network, e.g. TRC20"}
	fileFlag := &cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "file with one address or address,amount per line", Required: true}

	return []*cli.Command{
		{
			Name:  "login",
			Usage: "tests an API key pair and stores it",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "key", Usage: "the exchange API key", Required: true},
				&cli.StringFlag{Name: "secret", Usage: "the exchange API secret", Required: true},
			},
			Action: a.login,
		},
		{
			Name:   "logout",
			Usage:  "removes the stored API key pair",
			Action: a.logout,
		},
		{
			Name:   "whoami",
			Usage:  "shows the stored API key, masked",
			Action: a.whoami,
		},
		{
			Name:   "coins",
			Usage:  "lists the known coins and their networks",
			Action: a.coins,
		},
		{
			Name:   "balance",
			Usage:  "shows the balance and withdrawal fee of a coin",
			Flags:  []cli.Flag{coinFlag, networkFlag},
			Action: a.balance,
		},
		{
			Name:   "deposit-address",
			Usage:  "shows the deposit address of a coin",
			Flags:  []cli.Flag{coinFlag, networkFlag},
			Action: a.depositAddress,
		},
		{
			Name:      "withdrawal-status",
			Usage:     "shows the status of a withdrawal",
			ArgsUsage: "<withdrawal id>",
			Action:    a.withdrawalStatus,
		},
		{
			Name:   "validate",
			Usage:  "checks a list of addresses for a coin",
			Flags:  []cli.Flag{coinFlag, fileFlag},
			Action: a.validate,
		},
		{
			Name:  "withdraw",
			Usage: "sends one withdrawal per address in the file",
			Flags: []cli.Flag{
				coinFlag,
				networkFlag,
				fileFlag,
				&cli.StringFlag{Name: "amount", Usage: "amount for every row, overriding amounts in the file"},
				&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
			},
			Action: a.withdraw,
		},
	}
}

func (a *app) login(c *cli.Context) error {
	creds := models.Credentials{APIKey: c.String("key"), APISecret: c.String("secret")}

	check, err := a.publicClient().TestCredentials(c.Context, creds)
	if err != nil {
		return err
	}
	if !check.Valid {
		return fmt.Errorf("credentials rejected: %s", check.Error)
	}

	if err := a.store.Save(c.Context, creds); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n", check.Message)
	if check.Balance != nil {
		fmt.Fprintf(a.out, "USDT balance: %s\n", check.Balance.String())
	}
	fmt.Fprintf(a.out, "Saved credentials for %s\n", creds.MaskedKey())
	return nil
}

func (a *app) logout(c *cli.Context) error {
	if err := a.store.Clear(c.Context); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) whoami(c *cli.Context) error {
	creds, ok := a.store.Load(c.Context)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "API key %s\n", creds.MaskedKey())
	return nil
}

func (a *app) coins(c *cli.Context) error {
	coins, err := a.publicClient().Coins(c.Context)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tNETWORKS")
	for _, coin := range coins {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", coin.Symbol, coin.Name, strings.Join(coin.Networks, ", "))
	}
	return tw.Flush()
}

func (a *app) balance(c *cli.Context) error {
	api, err := a.apiClient(c.Context)
	if err != nil {
		return err
	}

	sel := models.NewSelection(c.String("coin"), c.String("network"))
	snap := services.NewBalanceFeeService(api, api).Fetch(c.Context, sel)
	if snap.Error != "" {
		return errors.New(snap.Error)
	}

	fmt.Fprintf(a.out, "Balance: %s %s\n", formatAmount(snap.Balance), sel.Coin)
	fmt.Fprintf(a.out, "Withdrawal fee (%s): %s %s\n", sel.Network, formatAmount(snap.Fee), sel.Coin)
	return nil
}

func (a *app) depositAddress(c *cli.Context) error {
	api, err := a.apiClient(c.Context)
	if err != nil {
		return err
	}

	addr, err := api.DepositAddress(c.Context, c.String("coin"), c.String("network"))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Address: %s\n", addr.Address)
	if addr.Tag != "" {
		fmt.Fprintf(a.out, "Tag: %s\n", addr.Tag)
	}
	return nil
}

func (a *app) withdrawalStatus(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("withdrawal id is required")
	}

	api, err := a.apiClient(c.Context)
	if err != nil {
		return err
	}

	info, err := api.WithdrawalStatus(c.Context, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Status: %s\n", info.Status)
	if raw, ok := info.Raw.(json.RawMessage); ok && len(raw) > 0 {
		fmt.Fprintf(a.out, "Details: %s\n", raw)
	}
	return nil
}

func (a *app) validate(c *cli.Context) error {
	rows, err := readRows(c.String("file"))
	if err != nil {
		return err
	}

	addresses := make([]string, len(rows))
	for i, r := range rows {
		addresses[i] = r.Address
	}

	verdicts, err := a.publicClient().ValidateAddresses(c.Context, c.String("coin"), addresses)
	if err != nil {
		return err
	}

	invalid := 0
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDRESS\tVALID\tERROR")
	for _, v := range verdicts {
		if !v.IsValidAddress {
			invalid++
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\n", v.Address, v.IsValidAddress, v.AddressError)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d of %d addresses are valid\n", len(verdicts)-invalid, len(verdicts))
	return nil
}

func (a *app) withdraw(c *cli.Context) error {
	ctx := c.Context

	api, err := a.apiClient(ctx)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("read addresses: %w", err)
	}

	sess := session.New(services.NewBalanceFeeService(api, api))
	if _, err := sess.Select(ctx, c.String("coin"), c.String("network")); err != nil {
		return err
	}
	sel := sess.Selection()

	if err := sess.SetAddresses(string(text)); err != nil {
		return err
	}
	if c.IsSet("amount") {
		amount, err := decimal.NewFromString(c.String("amount"))
		if err != nil {
			return fmt.Errorf("invalid amount %q", c.String("amount"))
		}
		if err := sess.SetAllAmounts(amount); err != nil {
			return err
		}
	}

	snap := sess.Snapshot()
	if snap.Error != "" {
		return fmt.Errorf("failed to load balance and fee: %s", snap.Error)
	}

	if err := a.printRows(sess.Rows()); err != nil {
		return err
	}
	totals := sess.Totals()
	fmt.Fprintf(a.out, "\n%s on %s: %d withdrawals, amount %s, fees %s, total %s, balance %s\n",
		sel.Coin, sel.Network, totals.Count, totals.Amount, totals.Fees, totals.Grand, formatAmount(snap.Balance))

	if totals.Count == 0 {
		return errors.New("nothing to withdraw: every row needs a valid address and a positive amount")
	}
	if sess.ExceedsBalance() {
		return fmt.Errorf("insufficient balance: need %s %s, have %s", totals.Grand, sel.Coin, formatAmount(snap.Balance))
	}

	if !c.Bool("yes") && !a.confirm(fmt.Sprintf("Send %d withdrawals totalling %s %s?", totals.Count, totals.Grand, sel.Coin)) {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}

	results := services.NewBatchOrchestrator(api, a.cfg.BatchDelay, nil).Run(ctx, sess.Eligible(), sel)
	sess.ApplyResults(results)

	fmt.Fprintln(a.out)
	if err := a.printRows(sess.Rows()); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Status == models.StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d withdrawals failed", failed, len(results))
	}
	fmt.Fprintf(a.out, "%d withdrawals submitted\n", len(results))
	return nil
}

func (a *app) printRows(rows []models.WithdrawalRow) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tADDRESS\tAMOUNT\tSTATUS\tWITHDRAWAL ID\tERROR")
	for i, r := range rows {
		status := string(r.Status)
		if status == "" {
			status = "-"
		}
		errText := r.Error
		if !r.IsValidAddress {
			errText = r.AddressError
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, r.Address, r.Amount, status, r.WithdrawalID, errText)
	}
	return tw.Flush()
}

func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func readRows(path string) ([]models.WithdrawalRow, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read addresses: %w", err)
	}
	return session.ParseRows(string(text))
}

func formatAmount(d *decimal.Decimal) string {
	if d == nil {
		return "unknown"
	}
	return d.String()
}
