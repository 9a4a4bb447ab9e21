package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ogomes/farol/internal/config"
	"github.com/ogomes/farol/internal/db"
	"github.com/ogomes/farol/internal/seed"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBResetCmd())
	cmd.AddCommand(newDBSeedCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the Farol database",
		Long:  "Creates the Farol database if needed and migrates all tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Farol config file")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	gormDB, err := initDatabase(cmd, cfg)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	fmt.Fprintln(out, "\nFarol database initialized successfully.")
	return nil
}

// initDatabase creates (mysql) or opens (sqlite) the configured database
// and returns a connection to it.
func initDatabase(cmd *cobra.Command, cfg *config.Config) (*gorm.DB, error) {
	out := cmd.OutOrStdout()

	switch cfg.Database.Driver {
	case "sqlite":
		gormDB, err := db.ConnectSQLite(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "Using SQLite database at %s\n", cfg.Database.Path)
		return gormDB, nil

	case "mysql":
		maybePromptPassword(cmd, cfg)

		adminDB, err := db.ConnectAdmin(cfg.Database.Host, cfg.Database.Port,
			cfg.Database.User, cfg.Database.Password)
		if err != nil {
			return nil, fmt.Errorf("connect to MySQL at %s:%d: %w", cfg.Database.Host, cfg.Database.Port, err)
		}
		if err := db.CreateDatabase(adminDB, cfg.Database.Name); err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "Database %s ready on %s:%d\n", cfg.Database.Name, cfg.Database.Host, cfg.Database.Port)

		return db.Connect(cfg.Database.Host, cfg.Database.Port,
			cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// maybePromptPassword asks for the MySQL password on the terminal when the
// config leaves it empty. Non-interactive runs keep the empty password.
func maybePromptPassword(cmd *cobra.Command, cfg *config.Config) {
	if cfg.Database.Password != "" {
		return
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Password for %s@%s: ", cfg.Database.User, cfg.Database.Host)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return
	}
	cfg.Database.Password = string(pw)
}

func newDBResetCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and re-initialize the Farol database",
		Long: `Drops the Farol database and re-creates it empty.

All requirements and status updates are deleted. Re-seed with
"farol db seed" afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Farol config file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string, skipConfirm bool) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	target := cfg.Database.Name
	if cfg.Database.Driver == "sqlite" {
		target = cfg.Database.Path
	}

	if !skipConfirm {
		if !confirmReset(cmd, target) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	switch cfg.Database.Driver {
	case "sqlite":
		if err := os.Remove(cfg.Database.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", cfg.Database.Path, err)
		}
		fmt.Fprintf(out, "Removed %s\n", cfg.Database.Path)

	case "mysql":
		maybePromptPassword(cmd, cfg)

		adminDB, err := db.ConnectAdmin(cfg.Database.Host, cfg.Database.Port,
			cfg.Database.User, cfg.Database.Password)
		if err != nil {
			return fmt.Errorf("connect to MySQL at %s:%d: %w", cfg.Database.Host, cfg.Database.Port, err)
		}
		if err := db.DropDatabase(adminDB, cfg.Database.Name); err != nil {
			return err
		}
		fmt.Fprintf(out, "Dropped database %s\n", cfg.Database.Name)

	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	gormDB, err := initDatabase(cmd, cfg)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	fmt.Fprintln(out, "\nFarol database reset successfully.")
	return nil
}

func newDBSeedCmd() *cobra.Command {
	var (
		configPath string
		dataPath   string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the requirement checklist from a JSON file",
		Long: `Loads requirements from a JSON array into the database.

When the requirements table is already populated, seeding is skipped
unless --force is given; --force replaces the whole checklist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBSeed(cmd, configPath, dataPath, force)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Farol config file")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "seed-data.json", "path to requirements JSON file")
	cmd.Flags().BoolVar(&force, "force", false, "replace existing requirements")
	return cmd
}

func runDBSeed(cmd *cobra.Command, configPath, dataPath string, force bool) error {
	out := cmd.OutOrStdout()

	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}

	result, err := seed.Run(gormDB, dataPath, force)
	if err != nil {
		return err
	}
	if result.Skipped {
		fmt.Fprintln(out, "Requirements already present; use --force to replace them.")
		return nil
	}
	fmt.Fprintf(out, "Loaded %d requirements from %s\n", result.Loaded, dataPath)
	return nil
}

func confirmReset(cmd *cobra.Command, target string) bool {
	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()

	fmt.Fprintf(out, "WARNING: This will permanently delete all data in %q.\n", target)
	fmt.Fprintln(out, "This action cannot be undone.")
	fmt.Fprintln(out)
	fmt.Fprint(out, "Type \"yes\" to confirm: ")

	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()) == "yes"
	}
	return false
}
