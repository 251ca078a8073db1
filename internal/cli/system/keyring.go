package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/praxis/internal/cli"
	"github.com/julianstephens/praxis/internal/keyring"
	"github.com/julianstephens/praxis/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	conn := cmd.ConnectionString
	if !postgres.IsConnString(conn) && !postgres.IsDSN(conn) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(conn); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// The keyring is encrypted, so a password is acceptable here.
		ctx.Println("⚠️  Warning: Connection string contains embedded credentials.")
		ctx.Println("   It will be stored as-is in the OS keyring.")
	}

	if err := keyring.Default().Set(conn); err != nil {
		return err
	}

	ctx.Println("✓ Connection string stored in OS keyring")
	return nil
}

type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	conn, err := keyring.Default().Get()
	if errors.Is(err, keyring.ErrNotFound) {
		return errors.New("no connection string found in keyring. Use 'praxis keyring set' to store one")
	}
	if err != nil {
		return err
	}

	ctx.Println(MaskPassword(conn))
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.Default().Delete()
	if errors.Is(err, keyring.ErrNotFound) {
		return errors.New("no connection string found in keyring")
	}
	if err != nil {
		return err
	}

	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

// MaskPassword hides the password in URL or DSN connection strings.
func MaskPassword(conn string) string {
	if postgres.IsConnString(conn) {
		idx := strings.Index(conn, "://")
		rest := conn[idx+3:]
		if at := strings.LastIndex(rest, "@"); at != -1 {
			userInfo := rest[:at]
			if colon := strings.Index(userInfo, ":"); colon != -1 {
				return conn[:idx+3] + userInfo[:colon] + ":****" + rest[at:]
			}
		}
		return conn
	}

	parts := strings.Fields(conn)
	for i, part := range parts {
		if strings.HasPrefix(strings.ToLower(part), "password=") {
			parts[i] = "password=****"
		}
	}
	return strings.Join(parts, " ")
}
