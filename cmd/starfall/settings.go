package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/i18n"
	"github.com/vovakirdan/starfall/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or edit the settings file",
	Long: `Show or change the values the Settings screen edits.

Examples:
  starfall settings show
  starfall settings set master_volume 60
  starfall settings set language es`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every setting",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func settingsFile(cmd *cobra.Command) (*settings.File, settings.Settings, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, settings.Settings{}, err
	}
	values := settings.Default()
	if cfg.DefaultLanguage != "" {
		values.Language = cfg.DefaultLanguage
	}
	f := settings.NewFile(cfg.SettingsPath, nil)
	f.Load(&values)
	return f, values, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	f, values, err := settingsFile(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("# %s\n", f.Path())
	for _, key := range settings.Keys {
		v, _ := values.Get(key)
		fmt.Printf("%s=%s\n", key, v)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	f, values, err := settingsFile(cmd)
	if err != nil {
		return err
	}
	key, value := args[0], args[1]
	if key == "language" {
		if !i18n.Default().Has(value) {
			return fmt.Errorf("%w: %q (have %v)", i18n.ErrUnknownLanguage, value, i18n.Default().Languages())
		}
	}
	if err := values.Set(key, value); err != nil {
		if errors.Is(err, settings.ErrUnknownKey) {
			return fmt.Errorf("%w (keys: %v)", err, settings.Keys)
		}
		return err
	}
	if !f.Save(values) {
		return fmt.Errorf("cannot write %s", f.Path())
	}
	v, _ := values.Get(key)
	fmt.Printf("%s=%s\n", key, v)
	return nil
}
