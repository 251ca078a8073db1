package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/cli/backups"
	"github.com/julianstephens/praxis/internal/cli/data"
	"github.com/julianstephens/praxis/internal/cli/entries"
	"github.com/julianstephens/praxis/internal/cli/settings"
	"github.com/julianstephens/praxis/internal/cli/system"
	"github.com/julianstephens/praxis/internal/config"
	"github.com/julianstephens/praxis/internal/constants"
	perrors "github.com/julianstephens/praxis/internal/errors"
	"github.com/julianstephens/praxis/internal/keyring"
	"github.com/julianstephens/praxis/internal/logger"
	"github.com/julianstephens/praxis/internal/storage"
	"github.com/julianstephens/praxis/internal/storage/postgres"
)

var CLI struct {
	Version      kong.VersionFlag
	Config       string `help:"Store path (.db for SQLite, .json for a plain file) or PostgreSQL connection string. Credentials must NOT be embedded; use the keyring, ${env_conn} or .pgpass instead. Defaults to ${default_config}."`
	SettingsFile string `name:"settings-file" help:"Settings file. Defaults to settings.yaml next to the default store." type:"path"`
	Debug        bool   `help:"Log debug output to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize praxis storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Checkin entries.CheckInCmd `cmd:"" help:"Save a check-in."`
	Plan    entries.PlanCmd    `cmd:"" help:"Save or draft a plan."`
	History entries.HistoryCmd `cmd:"" help:"Show recent entries."`

	Export data.ExportCmd `cmd:"" help:"Write all entries to a dated export file."`
	Import data.ImportCmd `cmd:"" help:"Merge entries from an export file."`
	Wipe   data.WipeCmd   `cmd:"" help:"Delete all entries."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage local store backups."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Settings settings.SettingsCmd `cmd:"" help:"View or update settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily check-ins and small plans"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"env_conn":       constants.EnvDBConnection,
		},
	)

	env := config.LoadEnv()
	configDir := filepath.Dir(cli.ExpandPath(constants.DefaultConfigPath))

	if err := logger.Init(logger.Config{Debug: CLI.Debug || env.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	settingsPath := CLI.SettingsFile
	if settingsPath == "" {
		settingsPath = filepath.Join(configDir, constants.DefaultSettingsFile)
	}
	prefs, err := config.Load(settingsPath)
	if err != nil {
		perrors.Fatal(err)
	}
	prefs.ExportDir = cli.ExpandPath(prefs.ExportDir)

	target, err := resolveStore(CLI.Config, env)
	if err != nil {
		perrors.Fatalf("failed to resolve store: %w", err)
	}
	store := storage.New(target)
	logger.Debug("Using store", "path", store.GetConfigPath())

	lockDir := configDir
	if storage.IsLocalFile(store) {
		lockDir = filepath.Dir(store.GetConfigPath())
	}

	appCtx := &cli.Context{
		Store:        store,
		Settings:     prefs,
		SettingsPath: settingsPath,
		LockDir:      lockDir,
	}

	err = ctx.Run(appCtx)
	appCtx.Close()
	perrors.Fatal(err)
}

// resolveStore picks the store location: --config, then the environment,
// then the keyring, then the default SQLite path.
func resolveStore(flag string, env config.Env) (string, error) {
	if flag != "" {
		if postgres.IsConnString(flag) || postgres.IsDSN(flag) {
			if _, err := postgres.ValidateConnString(flag); err != nil {
				if errors.Is(err, postgres.ErrEmbeddedCredentials) {
					return "", fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed on the command line; use 'praxis keyring set', %s or .pgpass", constants.EnvDBConnection)
				}
				return "", err
			}
			return flag, nil
		}
		return cli.ExpandPath(flag), nil
	}

	if env.DBConnection != "" {
		return cli.ExpandPath(env.DBConnection), nil
	}

	conn, err := keyring.Default().Get()
	switch {
	case err == nil:
		return conn, nil
	case errors.Is(err, keyring.ErrNotFound):
	default:
		logger.Debug("Keyring lookup failed", "error", err)
	}

	return cli.ExpandPath(constants.DefaultConfigPath), nil
}
