package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ippctl/ippctl/internal/config"
	"github.com/ippctl/ippctl/internal/ipp"
	"github.com/ippctl/ippctl/internal/monitor"
)

// Command flags
var (
	printerName    string
	printerHost    string
	printerPort    int
	printerTLS     bool
	printerPath    string
	requestingUser string
	authUser       string
	askPassword    bool
	timeoutSecs    int
	pollInterval   int
	addNickname    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&printerName, "printer", "", "Registered printer name (see 'ippctl add')")
	rootCmd.PersistentFlags().StringVar(&printerHost, "host", "", "Printer hostname or IP (skips the registry)")
	rootCmd.PersistentFlags().IntVar(&printerPort, "port", 631, "IPP port")
	rootCmd.PersistentFlags().BoolVar(&printerTLS, "tls", false, "Use TLS (ipps)")
	rootCmd.PersistentFlags().StringVar(&printerPath, "path", "/ipp/print", "Queue path, e.g. /printers/office on CUPS")
	rootCmd.PersistentFlags().StringVar(&requestingUser, "user", "", "Value for requesting-user-name")
	rootCmd.PersistentFlags().StringVar(&authUser, "auth-user", "", "HTTP Basic auth username for admin operations")
	rootCmd.PersistentFlags().BoolVar(&askPassword, "ask-password", false, "Prompt for the HTTP Basic auth password")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 10, "Request timeout in seconds")

	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(holdCmd)
	rootCmd.AddCommand(releaseCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(printersCmd)
}

// target is the resolved printer a command operates on.
type target struct {
	endpoint ipp.Endpoint
	name     string // Registry name, empty for ad hoc targets
	user     string // requesting-user-name
	authUser string
}

// resolveTarget determines the printer endpoint from --host flags or the
// --printer registry entry. Explicit flags always win over registry values.
func resolveTarget(cmd *cobra.Command) (*target, error) {
	registry, err := config.Load()
	if err != nil {
		return nil, err
	}

	t := &target{user: registry.RequestingUser()}

	switch {
	case printerHost != "":
		t.endpoint = ipp.Endpoint{
			Host:     printerHost,
			Port:     printerPort,
			TLS:      printerTLS,
			BasePath: printerPath,
		}
	case printerName != "":
		p := registry.GetPrinter(printerName)
		if p == nil {
			return nil, fmt.Errorf("printer %q not found in registry (add it with 'ippctl add')", printerName)
		}
		t.name = printerName
		t.endpoint = p.Endpoint()
		t.authUser = p.Username
		if cmd.Flags().Changed("port") {
			t.endpoint.Port = printerPort
		}
		if cmd.Flags().Changed("tls") {
			t.endpoint.TLS = printerTLS
		}
		if cmd.Flags().Changed("path") {
			t.endpoint.BasePath = printerPath
		}
	default:
		return nil, fmt.Errorf("no printer selected: use --host or --printer")
	}

	if requestingUser != "" {
		t.user = requestingUser
	}
	if authUser != "" {
		t.authUser = authUser
	}

	return t, nil
}

// newClient builds the IPP client for a resolved target, prompting for the
// Basic auth password when requested.
func newClient(t *target) (*ipp.Client, error) {
	client := ipp.NewClient(t.endpoint)
	client.RequestingUser = t.user
	client.SetTimeout(time.Duration(timeoutSecs) * time.Second)

	if askPassword {
		if t.authUser == "" {
			return nil, fmt.Errorf("--ask-password requires --auth-user or a registry username")
		}
		fmt.Fprintf(os.Stderr, "Password for %s: ", t.authUser)
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		client.SetAuth(t.authUser, string(pw))
	}

	return client, nil
}

// runPrinterOp runs a printer-scoped operation and reports the outcome.
func runPrinterOp(cmd *cobra.Command, op func(*ipp.Client) ipp.Result) error {
	t, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	client, err := newClient(t)
	if err != nil {
		return err
	}
	return report(t, op(client))
}

// runJobOp parses the job id argument and runs a job-scoped operation.
func runJobOp(cmd *cobra.Command, arg string, op func(*ipp.Client, int32) ipp.Result) error {
	jobID, err := strconv.ParseInt(arg, 10, 32)
	if err != nil || jobID <= 0 {
		return fmt.Errorf("invalid job id %q: must be a positive integer", arg)
	}

	t, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	client, err := newClient(t)
	if err != nil {
		return err
	}
	return report(t, op(client, int32(jobID)))
}

// report prints the operation outcome and records last contact for
// registered printers. A failed operation leaves printer state untouched,
// so the caller is pointed at 'status' rather than told to retry blindly.
func report(t *target, result ipp.Result) error {
	if result.OK {
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ %s succeeded on %s", result.Op, t.endpoint.PrinterURI())))
		touchRegistry(t.name)
		return nil
	}

	fmt.Println(errorStyle.Render(fmt.Sprintf("✗ %s failed", result.Op)))
	fmt.Printf("  %s\n", mutedStyle.Render(result.Err.Error()))
	if ipp.IsTransportError(result.Err) {
		fmt.Printf("  %s\n", mutedStyle.Render("Check reachability with 'ippctl status'."))
	}
	return fmt.Errorf("%s failed", result.Op)
}

// touchRegistry records a successful contact for a registered printer.
// Registry write problems are not worth failing a successful operation over.
func touchRegistry(name string) {
	if name == "" {
		return
	}
	registry, err := config.Load()
	if err != nil {
		return
	}
	registry.TouchPrinter(name)
	_ = registry.Save()
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the printer",
	Long: `Pause the printer so it stops scheduling jobs.

Queued jobs stay in the queue and resume printing after 'ippctl resume'.
Most servers require authentication for this operation; use --auth-user
together with --ask-password.`,
	Example: `  ippctl pause --host printer.local
  ippctl pause --printer office --auth-user admin --ask-password`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrinterOp(cmd, (*ipp.Client).PausePrinter)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused printer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrinterOp(cmd, (*ipp.Client).ResumePrinter)
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Cancel all jobs on the printer",
	Long: `Cancel every job on the printer in one operation.

This cannot be undone; purged jobs must be resubmitted.`,
	Example: `  ippctl purge --printer office --auth-user admin --ask-password`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrinterOp(cmd, (*ipp.Client).PurgeJobs)
	},
}

var holdCmd = &cobra.Command{
	Use:   "hold <job-id>",
	Short: "Hold a pending job",
	Long: `Place a pending job in the held state so it will not print until
released with 'ippctl release'.`,
	Example: `  ippctl hold 42 --host printer.local`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobOp(cmd, args[0], (*ipp.Client).HoldJob)
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release <job-id>",
	Short: "Release a held job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobOp(cmd, args[0], (*ipp.Client).ReleaseJob)
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <job-id>",
	Short: "Cancel a job",
	Long: `Cancel a single job. Works on pending, held, and processing jobs;
completed jobs cannot be cancelled.`,
	Example: `  ippctl cancel 42 --printer office`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobOp(cmd, args[0], (*ipp.Client).CancelJob)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe printer reachability",
	Long: `Probe the printer's IPP endpoint once and report whether it is
reachable. Use 'ippctl watch' for continuous monitoring.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTarget(cmd)
		if err != nil {
			return err
		}

		status := monitor.NewHTTPFetcher(t.endpoint).Fetch()
		fmt.Println(renderStatus(t.endpoint, status))
		if !status.Reachable {
			return fmt.Errorf("printer unreachable")
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor printer reachability continuously",
	Long: `Poll the printer's IPP endpoint on an interval and show the latest
status in a live view. Press q to quit.`,
	Example: `  ippctl watch --printer office
  ippctl watch --host printer.local --interval 10`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&pollInterval, "interval", 0, "Poll interval in seconds (default from registry preferences)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	t, err := resolveTarget(cmd)
	if err != nil {
		return err
	}

	interval := pollInterval
	if interval <= 0 {
		registry, err := config.Load()
		if err == nil && registry.Preferences != nil && registry.Preferences.PollInterval > 0 {
			interval = registry.Preferences.PollInterval
		} else {
			interval = config.DefaultPollInterval
		}
	}

	poller := monitor.NewPoller(monitor.NewHTTPFetcher(t.endpoint), time.Duration(interval)*time.Second)
	poller.Start()
	defer poller.Stop()

	p := tea.NewProgram(newWatchModel(t.endpoint, poller, interval))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a printer in the config file",
	Long: `Store a printer under a name so later commands can use --printer
instead of repeating --host flags. Passwords are never stored.`,
	Example: `  ippctl add office --host cups.lan --port 631 --path /printers/office --auth-user admin
  ippctl add lobby --host printer.local --tls`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addNickname, "nickname", "", "Display name for the printer")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if printerHost == "" {
		return fmt.Errorf("--host is required")
	}

	registry, err := config.Load()
	if err != nil {
		return err
	}

	registry.SetPrinter(args[0], &config.Printer{
		Host:     printerHost,
		Port:     printerPort,
		TLS:      printerTLS,
		BasePath: printerPath,
		Username: authUser,
		Nickname: addNickname,
	})

	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("Registered printer %q (%s)\n", args[0], registry.GetPrinter(args[0]).Endpoint().PrinterURI())
	return nil
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a printer from the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.Load()
		if err != nil {
			return err
		}
		if !registry.RemovePrinter(args[0]) {
			return fmt.Errorf("printer %q not found in registry", args[0])
		}
		if err := registry.Save(); err != nil {
			return err
		}
		fmt.Printf("Removed printer %q\n", args[0])
		return nil
	},
}

var printersCmd = &cobra.Command{
	Use:   "printers",
	Short: "List registered printers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.Load()
		if err != nil {
			return err
		}

		if len(registry.Printers) == 0 {
			fmt.Println("No printers registered. Add one with 'ippctl add <name> --host <host>'.")
			return nil
		}

		names := make([]string, 0, len(registry.Printers))
		for name := range registry.Printers {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			p := registry.GetPrinter(name)
			fmt.Println(headerStyle.Render(name))
			if p.Nickname != "" {
				fmt.Printf("  Nickname:  %s\n", p.Nickname)
			}
			fmt.Printf("  URI:       %s\n", p.Endpoint().PrinterURI())
			if p.Username != "" {
				fmt.Printf("  Auth user: %s\n", p.Username)
			}
			if !p.LastSeen.IsZero() {
				fmt.Printf("  Last seen: %s\n", p.LastSeen.Format(time.RFC1123))
			}
			fmt.Println()
		}
		return nil
	},
}
