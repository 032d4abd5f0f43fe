package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

func newSessionCmd(a *app) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or clear the administrator session flag",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether an administrator session is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(store slot.Store) error {
				session := core.NewSessionFlag(store, a.logger)
				if err := session.Hydrate(cmd.Context()); err != nil {
					return err
				}
				if session.IsAdmin() {
					fmt.Fprintln(cmd.OutOrStdout(), "admin session: active")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "admin session: inactive")
				}
				return nil
			})
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the administrator session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(store slot.Store) error {
				session := core.NewSessionFlag(store, a.logger)
				if err := session.Hydrate(cmd.Context()); err != nil {
					return err
				}
				if err := session.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "admin session cleared")
				return nil
			})
		},
	}

	sessionCmd.AddCommand(statusCmd, logoutCmd)
	return sessionCmd
}
