package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/snapshot"
)

func newProfileCommand(dataDir *string) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile and preferences",
	}
	profileCmd.AddCommand(newProfileShowCommand(dataDir))
	profileCmd.AddCommand(newProfileSetCommand(dataDir))
	return profileCmd
}

func newProfileShowCommand(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			u := rt.snap.User
			cmd.Printf("Name:          %s\n", u.Name)
			if u.Email != "" {
				cmd.Printf("Email:         %s\n", u.Email)
			}
			cmd.Printf("Currency:      %s\n", u.Preferences.Currency)
			cmd.Printf("Theme:         %s\n", u.Preferences.Theme)
			cmd.Printf("Notifications: %t\n", u.Preferences.Notifications)
			return nil
		},
	}
}

func newProfileSetCommand(dataDir *string) *cobra.Command {
	var currency string
	var theme string
	var notifications bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update preferences; only the flags given change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*dataDir)
			if err != nil {
				return err
			}

			var patch snapshot.PreferencesPatch
			if cmd.Flags().Changed("currency") {
				patch.Currency = &currency
			}
			if cmd.Flags().Changed("theme") {
				th := model.Theme(strings.ToLower(theme))
				if th != model.ThemeLight && th != model.ThemeDark {
					return fmt.Errorf("unknown theme %q (light or dark)", theme)
				}
				patch.Theme = &th
			}
			if cmd.Flags().Changed("notifications") {
				patch.Notifications = &notifications
			}
			if patch.Currency == nil && patch.Theme == nil && patch.Notifications == nil {
				return fmt.Errorf("nothing to change; pass --currency, --theme, or --notifications")
			}

			next := rt.snap.SetPreferences(patch)
			rt.cfg.SetPreferences(next.User.Preferences)
			if err := config.Save(filepath.Join(rt.dir, config.FileName), rt.cfg); err != nil {
				return err
			}

			if err := rt.apply(next, "profile.set", "preferences updated", rt.cfg.Profile.ID); err != nil {
				return err
			}

			p := next.User.Preferences
			cmd.Printf("Preferences: currency=%s theme=%s notifications=%t\n", p.Currency, p.Theme, p.Notifications)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "display currency code")
	cmd.Flags().StringVar(&theme, "theme", "", "light or dark")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "enable notifications")

	return cmd
}
