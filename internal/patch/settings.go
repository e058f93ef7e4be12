package patch

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings resolves run configuration with the usual precedence: flag,
// then environment (PBXPATCH_CONFIG, PBXPATCH_PROJECT), then default.
type Settings struct {
	v *viper.Viper
}

// NewSettings creates a Settings with defaults and env binding in place.
func NewSettings() *Settings {
	v := viper.New()
	v.SetDefault("config", DefaultPlanFile)
	v.SetDefault("project", "")
	v.SetEnvPrefix("PBXPATCH")
	v.AutomaticEnv()
	return &Settings{v: v}
}

// Bind ties a command's config/project flags into the resolution chain.
// Flags the command does not define are skipped.
func (s *Settings) Bind(cmd *cobra.Command) error {
	for _, name := range []string{"config", "project"} {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := s.v.BindPFlag(name, f); err != nil {
			return err
		}
	}
	return nil
}

// PlanPath returns the plan file location.
func (s *Settings) PlanPath() string {
	return s.v.GetString("config")
}

// ProjectOverride returns a manifest path that takes precedence over the
// plan's project field, or empty when none was given.
func (s *Settings) ProjectOverride() string {
	return s.v.GetString("project")
}
