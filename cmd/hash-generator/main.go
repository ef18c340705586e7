// Package main prints bcrypt hashes for fixture passwords and checks them
// against the hash stored with the registered test user.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/thunderdome-fixtures/internal/auth"
	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/spf13/cobra"
)

func main() {
	if err := newHashCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hash-generator: %v\n", err)
		os.Exit(1)
	}
}

func newHashCmd() *cobra.Command {
	fx := domain.RegisteredUserFixture()

	var (
		password string
		cost     int
		check    bool
	)

	cmd := &cobra.Command{
		Use:           "hash-generator",
		Short:         "Generate or check the bcrypt hash of a fixture password",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if check {
				return checkFixtureHash(cmd.OutOrStdout(), fx.HashedPassword, password)
			}
			return generate(cmd.OutOrStdout(), password, cost)
		},
	}

	cmd.Flags().StringVar(&password, "password", fx.Password, "plaintext password to hash")
	cmd.Flags().IntVar(&cost, "cost", 10, "bcrypt cost")
	cmd.Flags().BoolVar(&check, "check", false, "verify the password against the registered fixture hash")

	return cmd
}

func generate(w io.Writer, password string, cost int) error {
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Password: %s\nHash: %s\n", password, hash)
	return err
}

func checkFixtureHash(w io.Writer, hash, password string) error {
	err := auth.NewBcryptVerifier().Compare(hash, password)
	if errors.Is(err, auth.ErrPasswordMismatch) {
		return fmt.Errorf("password %q does not match fixture hash", password)
	}
	if err != nil {
		return err
	}

	cost, err := auth.HashCost(hash)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "OK: fixture hash matches (cost %d)\n", cost)
	return err
}
