package patch

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()

	if got := s.PlanPath(); got != DefaultPlanFile {
		t.Errorf("PlanPath() = %q, want %q", got, DefaultPlanFile)
	}
	if got := s.ProjectOverride(); got != "" {
		t.Errorf("ProjectOverride() = %q, want empty", got)
	}
}

func TestSettingsEnvOverride(t *testing.T) {
	t.Setenv("PBXPATCH_CONFIG", "ci/plan.yml")
	t.Setenv("PBXPATCH_PROJECT", "ci/project.pbxproj")

	s := NewSettings()

	if got := s.PlanPath(); got != "ci/plan.yml" {
		t.Errorf("PlanPath() = %q, want ci/plan.yml", got)
	}
	if got := s.ProjectOverride(); got != "ci/project.pbxproj" {
		t.Errorf("ProjectOverride() = %q, want ci/project.pbxproj", got)
	}
}

func TestSettingsFlagOverride(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", DefaultPlanFile, "")
	cmd.Flags().String("project", "", "")
	if err := cmd.Flags().Set("config", "other.yml"); err != nil {
		t.Fatalf("flag set failed: %v", err)
	}

	s := NewSettings()
	if err := s.Bind(cmd); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if got := s.PlanPath(); got != "other.yml" {
		t.Errorf("PlanPath() = %q, want other.yml", got)
	}
	if got := s.ProjectOverride(); got != "" {
		t.Errorf("ProjectOverride() = %q, want empty", got)
	}
}

func TestSettingsFlagBeatsEnv(t *testing.T) {
	t.Setenv("PBXPATCH_CONFIG", "env.yml")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", DefaultPlanFile, "")
	if err := cmd.Flags().Set("config", "flag.yml"); err != nil {
		t.Fatalf("flag set failed: %v", err)
	}

	s := NewSettings()
	if err := s.Bind(cmd); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if got := s.PlanPath(); got != "flag.yml" {
		t.Errorf("PlanPath() = %q, want flag.yml", got)
	}
}

func TestSettingsBindWithoutFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "bare"}

	s := NewSettings()
	if err := s.Bind(cmd); err != nil {
		t.Fatalf("Bind failed on a flagless command: %v", err)
	}
	if got := s.PlanPath(); got != DefaultPlanFile {
		t.Errorf("PlanPath() = %q, want %q", got, DefaultPlanFile)
	}
}
