package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/config"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/session"
	"github.com/crakton/cashworxs-admin-sub000/internal/export"
	"github.com/crakton/cashworxs-admin-sub000/internal/forms"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/stores"
)

type dependencies struct {
	cfg     *config.Config
	logger  logger.Logger
	session *session.Session

	auth          *stores.AuthStore
	invoices      *stores.InvoiceStore
	payments      *stores.PaymentStore
	fees          *stores.FeeStore
	taxes         *stores.TaxStore
	orgs          *stores.OrganizationStore
	idConfigs     *stores.IdentityConfigStore
	users         *stores.UserStore
	notifications *stores.NotificationStore
	activities    *stores.ActivityStore
	dashboard     *stores.DashboardStore
}

func newApp(d *dependencies) *cli.App {
	return &cli.App{
		Name:  "admin-console",
		Usage: "Cashworxs platform administration",
		Commands: []*cli.Command{
			loginCommand(d),
			logoutCommand(d),
			whoamiCommand(d),
			dashboardCommand(d),
			invoicesCommand(d),
			paymentsCommand(d),
			feesCommand(d),
			taxesCommand(d),
			orgsCommand(d),
			usersCommand(d),
			notificationsCommand(d),
			activityCommand(d),
		},
	}
}

func (d *dependencies) dateFormat() string {
	if d.cfg.Export.DateFormat != "" {
		return d.cfg.Export.DateFormat
	}
	return "2006-01-02 15:04"
}

// ==========================
// Auth
// ==========================

func loginCommand(d *dependencies) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in with phone number and password",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "phone", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			user, err := d.auth.Login(c.Context, forms.LoginForm{
				Phone:    c.String("phone"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
}

func logoutCommand(d *dependencies) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Sign out and discard the stored token",
		Action: func(c *cli.Context) error {
			if err := d.auth.Logout(c.Context); err != nil {
				// The local session is already cleared; the revoke failure
				// is informational.
				d.logger.Warn("Backend logout failed", map[string]interface{}{"error": err.Error()})
			}
			fmt.Fprintln(c.App.Writer, "Signed out.")
			return nil
		},
	}
}

func whoamiCommand(d *dependencies) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in user",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "refresh", Usage: "fetch from the backend instead of the stored copy"},
		},
		Action: func(c *cli.Context) error {
			if !d.session.Authenticated() {
				fmt.Fprintln(c.App.Writer, "Not signed in.")
				return nil
			}
			var user *models.User
			var err error
			if c.Bool("refresh") {
				user, err = d.auth.CurrentUser(c.Context)
			} else {
				user, err = d.auth.StoredUser()
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", user.Name, user.Phone, user.Role)
			return nil
		},
	}
}

// ==========================
// Dashboard
// ==========================

func dashboardCommand(d *dependencies) *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Show platform aggregate statistics",
		Action: func(c *cli.Context) error {
			stats, err := d.dashboard.Stats(c.Context)
			if err != nil {
				return err
			}
			w := c.App.Writer
			fmt.Fprintf(w, "Invoices:      %d (%d pending, %d overdue)\n",
				stats.TotalInvoices, stats.PendingInvoices, stats.OverdueInvoices)
			fmt.Fprintf(w, "Payments:      %d\n", stats.TotalPayments)
			fmt.Fprintf(w, "Organizations: %d\n", stats.TotalOrganizations)
			fmt.Fprintf(w, "Users:         %d\n", stats.TotalUsers)
			fmt.Fprintf(w, "Revenue:       %s total, %s this month\n",
				export.Amount(stats.RevenueTotal), export.Amount(stats.RevenueMonth))
			return nil
		},
	}
}

// ==========================
// Invoices
// ==========================

func invoiceColumns(dateFormat string) []export.Column[models.Invoice] {
	return []export.Column[models.Invoice]{
		{Header: "ID", Value: func(i models.Invoice) string { return i.ID.String() }},
		{Header: "Payer", Value: func(i models.Invoice) string { return i.PayerName }},
		{Header: "Amount", Value: func(i models.Invoice) string { return export.Amount(i.Amount) }},
		{Header: "Status", Value: func(i models.Invoice) string { return i.Status.Label() }},
		{Header: "Created", Value: func(i models.Invoice) string { return export.Date(i.CreatedAt, dateFormat) }},
	}
}

func invoicesCommand(d *dependencies) *cli.Command {
	return &cli.Command{
		Name:  "invoices",
		Usage: "Manage platform invoices",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags(),
				Action: func(c *cli.Context) error {
					if err := d.invoices.FetchAll(c.Context); err != nil {
						return err
					}
					ctl, err := controlsFromFlags(c,
						[]func(models.Invoice) string{
							func(i models.Invoice) string { return i.PayerName },
							func(i models.Invoice) string { return i.Email },
							func(i models.Invoice) string { return i.Phone },
						},
						func(i models.Invoice) int { return int(i.Status) },
						func(i models.Invoice) time.Time { return i.CreatedAt },
					)
					if err != nil {
						return err
					}
					return renderList(c, ctl, d.invoices.Items(), invoiceColumns(d.dateFormat()), d.cfg.Export.Dir)
				},
			},
			{
				Name:      "get",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if err := d.invoices.FetchOne(c.Context, c.Args().First()); err != nil {
						return err
					}
					inv := d.invoices.Current()
					w := c.App.Writer
					fmt.Fprintf(w, "Invoice %s\n", inv.ID)
					fmt.Fprintf(w, "  Payer:  %s\n", inv.PayerName)
					fmt.Fprintf(w, "  Amount: %s\n", export.Amount(inv.Amount))
					fmt.Fprintf(w, "  Status: %s\n", inv.Status.Label())
					for _, item := range inv.Items {
						fmt.Fprintf(w, "  - %s x%d @ %s\n", item.Description, item.Quantity, export.Amount(item.UnitCost))
					}
					return nil
				},
			},
			{
				Name: "create",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "payer", Required: true},
					&cli.Float64Flag{Name: "amount", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "note"},
				},
				Action: func(c *cli.Context) error {
					inv, err := d.invoices.CreateInvoice(c.Context, models.InvoicePayload{
						PayerName: c.String("payer"),
						Amount:    c.Float64("amount"),
						Email:     c.String("email"),
						Phone:     c.String("phone"),
						Note:      c.String("note"),
						Status:    models.InvoicePending,
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created invoice %s\n", inv.ID)
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "payer", Required: true},
					&cli.Float64Flag{Name: "amount", Required: true},
					&cli.IntFlag{Name: "status", Value: int(models.InvoicePending)},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "note"},
				},
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("id argument is required")
					}
					inv, err := d.invoices.UpdateInvoice(c.Context, id, models.InvoicePayload{
						PayerName: c.String("payer"),
						Amount:    c.Float64("amount"),
						Status:    models.InvoiceStatus(c.Int("status")),
						Email:     c.String("email"),
						Phone:     c.String("phone"),
						Note:      c.String("note"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Updated invoice %s\n", inv.ID)
					return nil
				},
			},
			deleteSubcommand("invoice", func(c *cli.Context, id string) error {
				return d.invoices.Delete(c.Context, id)
			}),
		},
	}
}

// ==========================
// Payments
// ==========================

func paymentsCommand(d *dependencies) *cli.Command {
	columns := func() []export.Column[models.Payment] {
		return []export.Column[models.Payment]{
			{Header: "ID", Value: func(p models.Payment) string { return p.ID.String() }},
			{Header: "Receipt", Value: func(p models.Payment) string { return p.ReceiptNumber }},
			{Header: "Payer", Value: func(p models.Payment) string { return p.PayerName }},
			{Header: "Amount", Value: func(p models.Payment) string { return export.Amount(p.Amount) }},
			{Header: "Status", Value: func(p models.Payment) string { return p.Status.Label() }},
			{Header: "Created", Value: func(p models.Payment) string { return export.Date(p.CreatedAt, d.dateFormat()) }},
		}
	}
	return &cli.Command{
		Name:  "payments",
		Usage: "Inspect platform payments",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags(),
				Action: func(c *cli.Context) error {
					if err := d.payments.FetchAll(c.Context); err != nil {
						return err
					}
					ctl, err := controlsFromFlags(c,
						[]func(models.Payment) string{
							func(p models.Payment) string { return p.PayerName },
							func(p models.Payment) string { return p.ReceiptNumber },
						},
						func(p models.Payment) int { return int(p.Status) },
						func(p models.Payment) time.Time { return p.CreatedAt },
					)
					if err != nil {
						return err
					}
					if err := renderList(c, ctl, d.payments.Items(), columns(), d.cfg.Export.Dir); err != nil {
						return err
					}
					pending, completed, failed := d.payments.CountByStatus()
					fmt.Fprintf(c.App.Writer, "Totals: %d pending, %d completed, %d failed\n",
						pending, completed, failed)
					return nil
				},
			},
			{
				Name:      "get",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if err := d.payments.FetchOne(c.Context, c.Args().First()); err != nil {
						return err
					}
					p := d.payments.Current()
					w := c.App.Writer
					fmt.Fprintf(w, "Payment %s\n", p.ID)
					fmt.Fprintf(w, "  Receipt: %s\n", p.ReceiptNumber)
					fmt.Fprintf(w, "  Amount:  %s\n", export.Amount(p.Amount))
					fmt.Fprintf(w, "  Status:  %s\n", p.Status.Label())
					if len(p.Provider) > 0 {
						fmt.Fprintf(w, "  Provider payload: %s\n", string(p.Provider))
					}
					return nil
				},
			},
		},
	}
}

// ==========================
// Fee and tax services
// ==========================

func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "type", Required: true},
		&cli.StringFlag{Name: "state", Required: true},
		&cli.BoolFlag{Name: "active", Value: true},
		&cli.StringFlag{Name: "org"},
		&cli.StringFlag{Name: "payment-type"},
	}
}

func feesCommand(d *dependencies) *cli.Command {
	columns := func() []export.Column[models.FeeService] {
		return []export.Column[models.FeeService]{
			{Header: "ID", Value: func(f models.FeeService) string { return f.ID.String() }},
			{Header: "Name", Value: func(f models.FeeService) string { return f.Name }},
			{Header: "State", Value: func(f models.FeeService) string { return f.State }},
			{Header: "Amount", Value: func(f models.FeeService) string { return f.Amount }},
			{Header: "Active", Value: func(f models.FeeService) string { return strconv.FormatBool(f.Active()) }},
		}
	}
	return &cli.Command{
		Name:  "fees",
		Usage: "Manage fee services",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags(),
				Action: func(c *cli.Context) error {
					if err := d.fees.FetchAll(c.Context); err != nil {
						return err
					}
					ctl, err := controlsFromFlags(c,
						[]func(models.FeeService) string{
							func(f models.FeeService) string { return f.Name },
							func(f models.FeeService) string { return f.State },
						},
						func(f models.FeeService) int { return f.Status },
						func(f models.FeeService) time.Time { return f.CreatedAt },
					)
					if err != nil {
						return err
					}
					return renderList(c, ctl, d.fees.Items(), columns(), d.cfg.Export.Dir)
				},
			},
			{
				Name:  "create",
				Flags: append(serviceFlags(), &cli.StringFlag{Name: "amount", Required: true}),
				Action: func(c *cli.Context) error {
					fee, err := d.fees.CreateFee(c.Context, stores.FeeForm{
						Name:           c.String("name"),
						Type:           c.String("type"),
						State:          c.String("state"),
						Amount:         c.String("amount"),
						Active:         c.Bool("active"),
						OrganizationID: c.String("org"),
						PaymentType:    c.String("payment-type"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created fee %s\n", fee.ID)
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     append(serviceFlags(), &cli.StringFlag{Name: "amount", Required: true}),
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("id argument is required")
					}
					fee, err := d.fees.UpdateFee(c.Context, id, stores.FeeForm{
						Name:           c.String("name"),
						Type:           c.String("type"),
						State:          c.String("state"),
						Amount:         c.String("amount"),
						Active:         c.Bool("active"),
						OrganizationID: c.String("org"),
						PaymentType:    c.String("payment-type"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Updated fee %s\n", fee.ID)
					return nil
				},
			},
			deleteSubcommand("fee", func(c *cli.Context, id string) error {
				return d.fees.Delete(c.Context, id)
			}),
		},
	}
}

func taxesCommand(d *dependencies) *cli.Command {
	columns := func() []export.Column[models.TaxService] {
		return []export.Column[models.TaxService]{
			{Header: "ID", Value: func(t models.TaxService) string { return t.ID.String() }},
			{Header: "Name", Value: func(t models.TaxService) string { return t.Name }},
			{Header: "State", Value: func(t models.TaxService) string { return t.State }},
			{Header: "Amount", Value: func(t models.TaxService) string { return t.Amount }},
			{Header: "Active", Value: func(t models.TaxService) string { return strconv.FormatBool(t.Active()) }},
		}
	}
	return &cli.Command{
		Name:  "taxes",
		Usage: "Manage tax services",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags(),
				Action: func(c *cli.Context) error {
					if err := d.taxes.FetchAll(c.Context); err != nil {
						return err
					}
					ctl, err := controlsFromFlags(c,
						[]func(models.TaxService) string{
							func(t models.TaxService) string { return t.Name },
							func(t models.TaxService) string { return t.State },
						},
						func(t models.TaxService) int { return t.Status },
						func(t models.TaxService) time.Time { return t.CreatedAt },
					)
					if err != nil {
						return err
					}
					return renderList(c, ctl, d.taxes.Items(), columns(), d.cfg.Export.Dir)
				},
			},
			{
				Name:  "create",
				Flags: append(serviceFlags(), &cli.Float64Flag{Name: "amount", Required: true}),
				Action: func(c *cli.Context) error {
					tax, err := d.taxes.CreateTax(c.Context, stores.TaxForm{
						Name:           c.String("name"),
						Type:           c.String("type"),
						State:          c.String("state"),
						Amount:         c.Float64("amount"),
						Active:         c.Bool("active"),
						OrganizationID: c.String("org"),
						PaymentType:    c.String("payment-type"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created tax %s\n", tax.ID)
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     append(serviceFlags(), &cli.Float64Flag{Name: "amount", Required: true}),
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("id argument is required")
					}
					tax, err := d.taxes.UpdateTax(c.Context, id, stores.TaxForm{
						Name:           c.String("name"),
						Type:           c.String("type"),
						State:          c.String("state"),
						Amount:         c.Float64("amount"),
						Active:         c.Bool("active"),
						OrganizationID: c.String("org"),
						PaymentType:    c.String("payment-type"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Updated tax %s\n", tax.ID)
					return nil
				},
			},
			deleteSubcommand("tax", func(c *cli.Context, id string) error {
				return d.taxes.Delete(c.Context, id)
			}),
		},
	}
}

// ==========================
// Organizations and identity configs
// ==========================

func orgsCommand(d *dependencies) *cli.Command {
	columns := func() []export.Column[models.Organization] {
		return []export.Column[models.Organization]{
			{Header: "ID", Value: func(o models.Organization) string { return o.ID.String() }},
			{Header: "Name", Value: func(o models.Organization) string { return o.Name }},
			{Header: "Type", Value: func(o models.Organization) string { return o.Type }},
			{Header: "Fees", Value: func(o models.Organization) string { return strconv.Itoa(len(o.Fees)) }},
			{Header: "Taxes", Value: func(o models.Organization) string { return strconv.Itoa(len(o.Taxes)) }},
		}
	}
	return &cli.Command{
		Name:  "orgs",
		Usage: "Manage organizations and their identity form configs",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags(),
				Action: func(c *cli.Context) error {
					if err := d.orgs.FetchAll(c.Context); err != nil {
						return err
					}
					ctl, err := controlsFromFlags(c,
						[]func(models.Organization) string{
							func(o models.Organization) string { return o.Name },
							func(o models.Organization) string { return o.Type },
						},
						nil,
						func(o models.Organization) time.Time { return o.CreatedAt },
					)
					if err != nil {
						return err
					}
					return renderList(c, ctl, d.orgs.Items(), columns(), d.cfg.Export.Dir)
				},
			},
			{
				Name: "create",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "type", Value: models.OrgGovernment},
				},
				Action: func(c *cli.Context) error {
					org, err := d.orgs.CreateOrganization(c.Context, c.String("name"), c.String("type"))
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created organization %s\n", org.ID)
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "type", Value: models.OrgGovernment},
				},
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("id argument is required")
					}
					org, err := d.orgs.UpdateOrganization(c.Context, id, c.String("name"), c.String("type"))
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Updated organization %s\n", org.ID)
					return nil
				},
			},
			deleteSubcommand("organization", func(c *cli.Context, id string) error {
				return d.orgs.DeleteOrganization(c.Context, id)
			}),
			idConfigsCommand(d),
		},
	}
}

func idConfigsCommand(d *dependencies) *cli.Command {
	orgFlag := &cli.StringFlag{Name: "org", Required: true, Usage: "organization id"}
	return &cli.Command{
		Name:  "id-configs",
		Usage: "Manage an organization's identity verification fields",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{orgFlag},
				Action: func(c *cli.Context) error {
					res := d.idConfigs.For(c.String("org"))
					if err := res.FetchAll(c.Context); err != nil {
						return err
					}
					configs := res.Items()
					if len(configs) == 0 {
						fmt.Fprintln(c.App.Writer, "No records found.")
						return nil
					}
					for _, cfg := range configs {
						required := ""
						if cfg.Required {
							required = " (required)"
						}
						fmt.Fprintf(c.App.Writer, "%s\t%s\t%s%s\n", cfg.ID, cfg.Label, cfg.Type, required)
					}
					return nil
				},
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					orgFlag,
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "label", Required: true},
					&cli.StringFlag{Name: "type", Value: string(models.FieldText)},
					&cli.BoolFlag{Name: "required"},
					&cli.IntFlag{Name: "sort-order"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := d.idConfigs.CreateConfig(c.Context, c.String("org"), stores.ConfigForm{
						Name:      c.String("name"),
						Label:     c.String("label"),
						Type:      models.IdentityFieldType(c.String("type")),
						Required:  c.Bool("required"),
						Active:    true,
						SortOrder: c.Int("sort-order"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created field config %s\n", cfg.ID)
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<config-id>",
				Flags: []cli.Flag{
					orgFlag,
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "label", Required: true},
					&cli.StringFlag{Name: "type", Value: string(models.FieldText)},
					&cli.BoolFlag{Name: "required"},
					&cli.BoolFlag{Name: "active", Value: true},
					&cli.IntFlag{Name: "sort-order"},
				},
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("config id argument is required")
					}
					cfg, err := d.idConfigs.UpdateConfig(c.Context, c.String("org"), id, stores.ConfigForm{
						Name:      c.String("name"),
						Label:     c.String("label"),
						Type:      models.IdentityFieldType(c.String("type")),
						Required:  c.Bool("required"),
						Active:    c.Bool("active"),
						SortOrder: c.Int("sort-order"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Updated field config %s\n", cfg.ID)
					return nil
				},
			},
			{
				Name:      "remove",
				ArgsUsage: "<config-id>",
				Flags:     []cli.Flag{orgFlag, &cli.BoolFlag{Name: "yes", Aliases: []string{"y"}}},
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("config id argument is required")
					}
					if !confirm(c, "field config "+id) {
						fmt.Fprintln(c.App.Writer, "Aborted.")
						return nil
					}
					return d.idConfigs.DeleteConfig(c.Context, c.String("org"), id)
				},
			},
		},
	}
}

// ==========================
// Users
// ==========================

func usersCommand(d *dependencies) *cli.Command {
	columns := func() []export.Column[models.User] {
		return []export.Column[models.User]{
			{Header: "ID", Value: func(u models.User) string { return u.ID.String() }},
			{Header: "Name", Value: func(u models.User) string { return u.Name }},
			{Header: "Phone", Value: func(u models.User) string { return u.Phone }},
			{Header: "Role", Value: func(u models.User) string { return u.Role }},
			{Header: "State", Value: func(u models.User) string { return u.State }},
		}
	}
	return &cli.Command{
		Name:  "users",
		Usage: "Manage platform users",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: listFlags(),
				Action: func(c *cli.Context) error {
					if err := d.users.FetchAll(c.Context); err != nil {
						return err
					}
					ctl, err := controlsFromFlags(c,
						[]func(models.User) string{
							func(u models.User) string { return u.Name },
							func(u models.User) string { return u.Phone },
							func(u models.User) string { return u.Email },
						},
						nil,
						func(u models.User) time.Time { return u.CreatedAt },
					)
					if err != nil {
						return err
					}
					return renderList(c, ctl, d.users.Items(), columns(), d.cfg.Export.Dir)
				},
			},
			{
				Name: "create",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "phone", Required: true},
					&cli.StringFlag{Name: "role", Value: models.RoleOperator},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "state"},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(c *cli.Context) error {
					user, err := d.users.CreateUser(c.Context, models.UserPayload{
						Name:     c.String("name"),
						Phone:    c.String("phone"),
						Role:     c.String("role"),
						Email:    c.String("email"),
						State:    c.String("state"),
						Password: c.String("password"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created user %s\n", user.ID)
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "phone", Required: true},
					&cli.StringFlag{Name: "role", Value: models.RoleOperator},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "state"},
				},
				Action: func(c *cli.Context) error {
					id := c.Args().First()
					if id == "" {
						return fmt.Errorf("id argument is required")
					}
					user, err := d.users.UpdateUser(c.Context, id, models.UserPayload{
						Name:  c.String("name"),
						Phone: c.String("phone"),
						Role:  c.String("role"),
						Email: c.String("email"),
						State: c.String("state"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Updated user %s\n", user.ID)
					return nil
				},
			},
			{
				Name:  "states",
				Usage: "List assignable states",
				Action: func(c *cli.Context) error {
					states, err := d.users.States(c.Context)
					if err != nil {
						return err
					}
					for _, s := range states {
						fmt.Fprintln(c.App.Writer, s)
					}
					return nil
				},
			},
			deleteSubcommand("user", func(c *cli.Context, id string) error {
				return d.users.Delete(c.Context, id)
			}),
		},
	}
}

// ==========================
// Notifications and activity
// ==========================

func notificationsCommand(d *dependencies) *cli.Command {
	return &cli.Command{
		Name:  "notifications",
		Usage: "Broadcast and review notifications",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					if err := d.notifications.FetchAll(c.Context); err != nil {
						return err
					}
					return printNotifications(c, d, d.notifications.Items())
				},
			},
			{
				Name:  "mine",
				Usage: "Show notifications addressed to the signed-in user",
				Action: func(c *cli.Context) error {
					items, err := d.notifications.Mine(c.Context)
					if err != nil {
						return err
					}
					return printNotifications(c, d, items)
				},
			},
			{
				Name: "send",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "message", Required: true},
					&cli.StringFlag{Name: "type", Value: models.NotifyAdmin},
					&cli.StringFlag{Name: "state"},
					&cli.StringFlag{Name: "user"},
				},
				Action: func(c *cli.Context) error {
					n, err := d.notifications.Broadcast(c.Context, forms.NotificationForm{
						Title:   c.String("title"),
						Message: c.String("message"),
						Type:    c.String("type"),
						State:   c.String("state"),
						UserID:  c.String("user"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Sent notification %s\n", n.ID)
					return nil
				},
			},
		},
	}
}

func printNotifications(c *cli.Context, d *dependencies, items []models.Notification) error {
	if len(items) == 0 {
		fmt.Fprintln(c.App.Writer, "No records found.")
		return nil
	}
	for _, n := range items {
		fmt.Fprintf(c.App.Writer, "[%s] %s: %s (%s)\n",
			export.Date(n.CreatedAt, d.dateFormat()), n.Title, n.Message, n.Type)
	}
	return nil
}

func activityCommand(d *dependencies) *cli.Command {
	return &cli.Command{
		Name:  "activity",
		Usage: "Show the user activity feed",
		Flags: listFlags(),
		Action: func(c *cli.Context) error {
			if err := d.activities.FetchAll(c.Context); err != nil {
				return err
			}
			ctl, err := controlsFromFlags(c,
				[]func(models.Activity) string{
					func(a models.Activity) string { return a.UserName },
					func(a models.Activity) string { return a.Action },
				},
				nil,
				func(a models.Activity) time.Time { return a.CreatedAt },
			)
			if err != nil {
				return err
			}
			columns := []export.Column[models.Activity]{
				{Header: "When", Value: func(a models.Activity) string { return export.Date(a.CreatedAt, d.dateFormat()) }},
				{Header: "User", Value: func(a models.Activity) string { return a.UserName }},
				{Header: "Action", Value: func(a models.Activity) string { return a.Action }},
				{Header: "Details", Value: func(a models.Activity) string { return a.Details }},
			}
			return renderList(c, ctl, d.activities.Items(), columns, d.cfg.Export.Dir)
		},
	}
}

// deleteSubcommand builds the shared delete-with-confirmation command.
func deleteSubcommand(what string, del func(*cli.Context, string) error) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("id argument is required")
			}
			if !confirm(c, what+" "+id) {
				fmt.Fprintln(c.App.Writer, "Aborted.")
				return nil
			}
			if err := del(c, id); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Deleted %s %s\n", what, id)
			return nil
		},
	}
}
