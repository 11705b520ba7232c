package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds bot configuration loaded from environment variables.
type Config struct {
	Strategy   string
	RefereeURL string
	ShowMsg    bool

	// Turn thresholds of the tiered policy: early while turn < EarlyTurns,
	// late once turn >= LateTurns.
	EarlyTurns int
	LateTurns  int

	// ArmyThreshold is the owned-army size below which the bronze policy
	// keeps seeking eggs.
	ArmyThreshold int
	// Guard overrides the bronze policy's expression. Empty means the
	// default built from ArmyThreshold.
	Guard string

	Weights Weights
}

// Weights are the LINE strengths used by each strategy.
type Weights struct {
	Nest          int
	Harvest       int
	EarlyEgg      int
	MidEgg        int
	MidCrystal    int
	LateCrystal   int
	LateSecondary int
	Richest       int
	EggsFirstEgg  int
	EggsFirstLate int
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Strategy:      "bronze",
		EarlyTurns:    7,
		LateTurns:     12,
		ArmyThreshold: 30,
		Weights: Weights{
			Nest:          10,
			Harvest:       20,
			EarlyEgg:      10,
			MidEgg:        4,
			MidCrystal:    10,
			LateCrystal:   10,
			LateSecondary: 2,
			Richest:       1,
			EggsFirstEgg:  1,
			EggsFirstLate: 2,
		},
	}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	d := Default()
	return &Config{
		Strategy:      envOrDefault("HEXBOT_STRATEGY", d.Strategy),
		RefereeURL:    envOrDefault("HEXBOT_REFEREE_URL", ""),
		ShowMsg:       envBoolOrDefault("HEXBOT_SHOW_MESSAGE", false),
		EarlyTurns:    envIntOrDefault("HEXBOT_EARLY_TURNS", d.EarlyTurns),
		LateTurns:     envIntOrDefault("HEXBOT_LATE_TURNS", d.LateTurns),
		ArmyThreshold: envIntOrDefault("HEXBOT_ARMY_THRESHOLD", d.ArmyThreshold),
		Guard:         envOrDefault("HEXBOT_GUARD", ""),
		Weights: Weights{
			Nest:          envIntOrDefault("HEXBOT_NEST_WEIGHT", d.Weights.Nest),
			Harvest:       envIntOrDefault("HEXBOT_HARVEST_WEIGHT", d.Weights.Harvest),
			EarlyEgg:      envIntOrDefault("HEXBOT_EARLY_EGG_WEIGHT", d.Weights.EarlyEgg),
			MidEgg:        envIntOrDefault("HEXBOT_MID_EGG_WEIGHT", d.Weights.MidEgg),
			MidCrystal:    envIntOrDefault("HEXBOT_MID_CRYSTAL_WEIGHT", d.Weights.MidCrystal),
			LateCrystal:   envIntOrDefault("HEXBOT_LATE_CRYSTAL_WEIGHT", d.Weights.LateCrystal),
			LateSecondary: envIntOrDefault("HEXBOT_LATE_SECONDARY_WEIGHT", d.Weights.LateSecondary),
			Richest:       envIntOrDefault("HEXBOT_RICHEST_WEIGHT", d.Weights.Richest),
			EggsFirstEgg:  envIntOrDefault("HEXBOT_EGGS_FIRST_EGG_WEIGHT", d.Weights.EggsFirstEgg),
			EggsFirstLate: envIntOrDefault("HEXBOT_EGGS_FIRST_LATE_WEIGHT", d.Weights.EggsFirstLate),
		},
	}
}

// GuardExpr returns the bronze guard expression.
func (c *Config) GuardExpr() string {
	if c.Guard != "" {
		return c.Guard
	}
	return fmt.Sprintf("DestroyedEggs < 1 && (!ArmyKnown || MyArmy < %d)", c.ArmyThreshold)
}

// Validate checks that thresholds and weights are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.EarlyTurns < 1 {
		errs = append(errs, fmt.Errorf("early turns must be >= 1, got %d", c.EarlyTurns))
	}
	if c.LateTurns < c.EarlyTurns {
		errs = append(errs, fmt.Errorf("late turns (%d) must not be below early turns (%d)", c.LateTurns, c.EarlyTurns))
	}
	if c.ArmyThreshold < 0 {
		errs = append(errs, fmt.Errorf("army threshold must be >= 0, got %d", c.ArmyThreshold))
	}
	w := c.Weights
	for name, v := range map[string]int{
		"nest": w.Nest, "harvest": w.Harvest, "early egg": w.EarlyEgg,
		"mid egg": w.MidEgg, "mid crystal": w.MidCrystal, "late crystal": w.LateCrystal,
		"late secondary": w.LateSecondary, "richest": w.Richest,
		"eggs-first egg": w.EggsFirstEgg, "eggs-first late": w.EggsFirstLate,
	} {
		if v < 1 {
			errs = append(errs, fmt.Errorf("%s weight must be positive, got %d", name, v))
		}
	}
	return errors.Join(errs...)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBoolOrDefault(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
