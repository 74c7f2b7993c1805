// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algex/format"
	"github.com/katalvlaran/algex/numeric"
)

// ErrBadConfig wraps every configuration failure: unreadable file, invalid
// YAML, or field values the numeric/format packages reject.
var ErrBadConfig = errors.New("config: invalid configuration")

// Settings is the YAML shape of an algex configuration.
type Settings struct {
	// Mode is the numeric policy name: "exact" or "approximate".
	Mode string `yaml:"mode"`

	// DecimalPlaces is the rounding and rendering digit budget (≥ 0).
	DecimalPlaces int `yaml:"decimal_places"`

	// Tolerance is the approximate-mode equality tolerance (≥ 0, finite).
	Tolerance float64 `yaml:"tolerance"`

	// Format is the output style: "auto", "fraction", or "float".
	Format string `yaml:"format"`
}

// Default returns the settings in force when no file is given.
func Default() Settings {
	return Settings{
		Mode:          numeric.Exact.String(),
		DecimalPlaces: numeric.DefaultDecimalPlaces,
		Tolerance:     numeric.DefaultTolerance,
		Format:        format.Auto.String(),
	}
}

// Load reads path, overlays it on Default, and validates the result.
// Stage 1 (Read): os.ReadFile.
// Stage 2 (Decode): strict YAML unmarshal into the defaults.
// Stage 3 (Validate): every field must convert through NumericMode and
// FormatMode.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("Load: %v: %w", err, ErrBadConfig)
	}

	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("Load: %s: %v: %w", path, err, ErrBadConfig)
	}

	if err = s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks that every field converts into its typed counterpart.
func (s Settings) Validate() error {
	if _, err := s.NumericMode(); err != nil {
		return err
	}
	if _, err := s.FormatMode(); err != nil {
		return err
	}

	return nil
}

// NumericMode converts the numeric fields into a numeric.Mode.
func (s Settings) NumericMode() (numeric.Mode, error) {
	kind, err := numeric.ParseKind(s.Mode)
	if err != nil {
		return numeric.Mode{}, fmt.Errorf("mode: %v: %w", err, ErrBadConfig)
	}

	m, err := numeric.NewMode(kind,
		numeric.WithDecimalPlaces(s.DecimalPlaces),
		numeric.WithTolerance(s.Tolerance))
	if err != nil {
		return numeric.Mode{}, fmt.Errorf("mode: %v: %w", err, ErrBadConfig)
	}

	return m, nil
}

// FormatMode converts the format field into a format.Mode.
func (s Settings) FormatMode() (format.Mode, error) {
	m, err := format.ParseMode(s.Format)
	if err != nil {
		return 0, fmt.Errorf("format: %v: %w", err, ErrBadConfig)
	}

	return m, nil
}
