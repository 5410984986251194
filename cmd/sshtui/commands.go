package main

import (
	"fmt"

	"sshTui/internal/sshconfig"
	"sshTui/internal/ui"
	"sshTui/internal/utils"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "sshtui",
		Short:        "Browse, edit and connect to hosts from your SSH config",
		Long:         "sshtui lists the Host blocks of an SSH client config, edits them in place without touching anything else in the file, and hands off to ssh to connect.",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, runTUI)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "preferences file (default ~/.config/ssh-tui/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.sshConfig, "ssh-config", "F", "", "SSH config file to edit (default ~/.ssh/config)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newAddCmd(opts),
		newRemoveCmd(opts),
		newConnectCmd(opts),
		newRestoreCmd(opts),
	)

	return rootCmd
}

func withApp(opts *options, run func(*app) error) error {
	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return run(a)
}

func newListCmd(opts *options) *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the hosts defined in the SSH config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				entries, err := a.store.Load()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if namesOnly {
					for _, e := range entries {
						fmt.Fprintln(out, e.Host)
					}
					return nil
				}
				if len(entries) == 0 {
					fmt.Fprintf(out, "No hosts in %s\n", utils.CollapseHome(a.store.Path()))
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{e.Host, e.HostName, e.User, e.Port, e.IdentityFile})
				}
				fmt.Fprintln(out, ui.CreateLipglossTable(
					[]string{"Host", "HostName", "User", "Port", "IdentityFile"},
					rows,
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print only the host aliases")

	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <host>",
		Short: "Show the values ssh would use for a host, including inherited ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				text, err := a.store.ReadText()
				if err != nil {
					return err
				}
				eff, err := sshconfig.Resolve(text, args[0])
				if err != nil {
					return err
				}
				if eff.IsZero() {
					return fmt.Errorf("no configuration applies to %q", args[0])
				}

				out := cmd.OutOrStdout()
				for _, kv := range [][2]string{
					{"HostName", eff.HostName},
					{"User", eff.User},
					{"Port", eff.Port},
					{"IdentityFile", eff.IdentityFile},
					{"ProxyCommand", eff.ProxyCommand},
				} {
					if kv[1] != "" {
						fmt.Fprintf(out, "%-13s %s\n", kv[0], kv[1])
					}
				}
				return nil
			})
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var (
		entry sshconfig.HostEntry
		force bool
	)

	cmd := &cobra.Command{
		Use:   "add <host>",
		Short: "Add a host block",
		Long:  "Add a host block to the SSH config. With --force an existing block of the same name is replaced, keeping the directives sshtui does not manage.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry.Host = args[0]
			return withApp(opts, func(a *app) error {
				var err error
				if force {
					err = upsertKeepingExtra(a.store, entry)
				} else {
					err = a.store.Add(entry)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Host '%s' saved to %s\n", entry.Host, utils.CollapseHome(a.store.Path()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&entry.HostName, "hostname", "", "real host name or address (required)")
	cmd.Flags().StringVarP(&entry.User, "user", "u", "", "login user")
	cmd.Flags().StringVarP(&entry.Port, "port", "p", "", "port")
	cmd.Flags().StringVarP(&entry.IdentityFile, "identity", "i", "", "identity file")
	cmd.Flags().StringVar(&entry.ProxyCommand, "proxy-command", "", "proxy command")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing host of the same name")
	_ = cmd.MarkFlagRequired("hostname")

	return cmd
}

// upsertKeepingExtra carries the unmanaged lines of an existing block over
// to the replacement.
func upsertKeepingExtra(store *sshconfig.Store, entry sshconfig.HostEntry) error {
	entries, err := store.Load()
	if err != nil {
		return err
	}
	if existing, ok := sshconfig.Find(entries, entry.Host); ok {
		entry.Extra = existing.Extra
	}
	return store.Upsert(entry)
}

func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <host>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a host block",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				if err := a.store.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Host '%s' removed\n", args[0])
				return nil
			})
		},
	}
}

func newConnectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "connect <host>",
		Aliases: []string{"ssh"},
		Short:   "Connect to a host with the system ssh client",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				result, err := a.conn.Connect(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), result)
				return nil
			})
		},
	}
}

func newRestoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the SSH config from the backup taken before the last change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				if err := a.store.Restore(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n",
					utils.CollapseHome(a.store.Path()), utils.CollapseHome(a.store.BackupPath()))
				return nil
			})
		},
	}
}
