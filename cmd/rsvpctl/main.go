package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quannhg/graduation-invitation/internal/rsvp"
	"github.com/quannhg/graduation-invitation/internal/services"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		endpoint string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:           "rsvpctl",
		Short:         "Talk to the invitation's Apps Script endpoint directly",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&endpoint, "endpoint", os.Getenv("APPS_SCRIPT_URL"), "Apps Script web app URL (defaults to APPS_SCRIPT_URL)")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "Request timeout")

	client := func() (*services.AppsScriptClient, error) {
		c := services.NewAppsScriptClient(endpoint, timeout)
		if !c.Configured() {
			return nil, services.ErrEndpointNotConfigured
		}
		return c, nil
	}

	cmd.AddCommand(newLookupCommand(client))
	cmd.AddCommand(newSubmitCommand(client))
	return cmd
}

func newLookupCommand(client func() (*services.AppsScriptClient, error)) *cobra.Command {
	var inviter string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Fetch the personalization record for an inviter token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			res, err := c.Lookup(cmd.Context(), inviter)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVar(&inviter, "inviter", "", "Inviter token from the invitation link")
	_ = cmd.MarkFlagRequired("inviter")
	return cmd
}

func newSubmitCommand(client func() (*services.AppsScriptClient, error)) *cobra.Command {
	var (
		name       string
		attendance string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Record an RSVP on behalf of a guest",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := rsvp.FormInput{
				Name:       name,
				Attendance: rsvp.AttendanceFromForm(rsvp.AttendanceRadio, attendance),
			}
			if err := rsvp.Validate(in, nil); err != nil {
				var verrs rsvp.ValidationErrors
				if errors.As(err, &verrs) {
					return fmt.Errorf("invalid rsvp: %w", verrs)
				}
				return err
			}

			c, err := client()
			if err != nil {
				return err
			}
			sub := rsvp.BuildSubmission(in, nil, time.Now())
			if err := c.Submit(cmd.Context(), sub); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %s (%s) at %s\n", sub.Name, sub.Attendance, sub.Timestamp)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Guest name")
	cmd.Flags().StringVar(&attendance, "attendance", "", "yes or no")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("attendance")
	return cmd
}
