package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.Strategy != "bronze" {
		t.Errorf("expected bronze strategy, got %q", c.Strategy)
	}
	if c.EarlyTurns != 7 || c.LateTurns != 12 || c.ArmyThreshold != 30 {
		t.Errorf("unexpected thresholds: %d/%d/%d", c.EarlyTurns, c.LateTurns, c.ArmyThreshold)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HEXBOT_STRATEGY", "tiered")
	t.Setenv("HEXBOT_EARLY_TURNS", "5")
	t.Setenv("HEXBOT_LATE_TURNS", "notanumber")
	t.Setenv("HEXBOT_SHOW_MESSAGE", "true")
	t.Setenv("HEXBOT_HARVEST_WEIGHT", "7")

	c := Load()
	if c.Strategy != "tiered" {
		t.Errorf("expected tiered, got %q", c.Strategy)
	}
	if c.EarlyTurns != 5 {
		t.Errorf("expected early turns 5, got %d", c.EarlyTurns)
	}
	if c.LateTurns != 12 {
		t.Errorf("invalid int should fall back to 12, got %d", c.LateTurns)
	}
	if !c.ShowMsg {
		t.Error("expected ShowMsg true")
	}
	if c.Weights.Harvest != 7 {
		t.Errorf("expected harvest weight 7, got %d", c.Weights.Harvest)
	}
}

func TestGuardExpr(t *testing.T) {
	c := Default()
	c.ArmyThreshold = 45
	if got := c.GuardExpr(); !strings.Contains(got, "MyArmy < 45") {
		t.Errorf("default guard should use the threshold, got %q", got)
	}
	c.Guard = "Turn > 3"
	if got := c.GuardExpr(); got != "Turn > 3" {
		t.Errorf("expected override, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.LateTurns = 3
	c.Weights.Harvest = 0
	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "late turns") || !strings.Contains(msg, "harvest weight") {
		t.Errorf("expected both problems reported, got %q", msg)
	}
}
