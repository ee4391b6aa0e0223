// Package config loads the hovergrid YAML configuration.
//
// Every field has a default (see Default), so a config file only needs the
// values it changes:
//
//	grid:
//	  columns: 3
//	effect:
//	  multiplier: 4
//	  time_scale: 1
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/phanxgames/hovergrid/effect"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
	Assets AssetsConfig `yaml:"assets"`
	Effect EffectConfig `yaml:"effect"`
	Debug  bool         `yaml:"debug"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
	// Background is a hex color, "#rrggbb".
	Background string `yaml:"background"`
}

// GridConfig describes the media grid layout.
type GridConfig struct {
	Count    int     `yaml:"count"`
	Columns  int     `yaml:"columns"`
	CellSize float64 `yaml:"cell_size"`
	Gap      float64 `yaml:"gap"`
	// ImageScale is the image size relative to its cell.
	ImageScale float64 `yaml:"image_scale"`
	// AltFontSize sizes the caption drawn over placeholder images; 0 hides it.
	AltFontSize float64 `yaml:"alt_font_size"`
}

// AssetsConfig locates the numbered images.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// EffectConfig holds the hover sequence parameters. Durations are in
// seconds, angles in degrees.
type EffectConfig struct {
	Multiplier       float64 `yaml:"multiplier"`
	OutDuration      float32 `yaml:"out_duration"`
	ReturnDuration   float32 `yaml:"return_duration"`
	ReturnOverlap    float32 `yaml:"return_overlap"`
	RotationRange    float64 `yaml:"rotation_range"`
	RotationDuration float32 `yaml:"rotation_duration"`
	RotationRepeat   int     `yaml:"rotation_repeat"`
	TimeScale        float32 `yaml:"time_scale"`
	OutEase          string  `yaml:"out_ease"`
	ReturnEase       string  `yaml:"return_ease"`
	RotationEase     string  `yaml:"rotation_ease"`
	// Seed fixes the rotation angles when non-zero.
	Seed uint64 `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := effect.DefaultParams()
	return Config{
		Window: WindowConfig{
			Title:      "hovergrid",
			Width:      960,
			Height:     720,
			Background: "#111114",
		},
		Grid: GridConfig{
			Count:       12,
			Columns:     4,
			CellSize:    180,
			Gap:         24,
			ImageScale:  0.9,
			AltFontSize: 16,
		},
		Assets: AssetsConfig{Dir: "images"},
		Effect: EffectConfig{
			Multiplier:       p.Multiplier,
			OutDuration:      p.OutDuration,
			ReturnDuration:   p.ReturnDuration,
			ReturnOverlap:    p.ReturnOverlap,
			RotationRange:    p.RotationMax,
			RotationDuration: p.RotationDuration,
			RotationRepeat:   p.RotationRepeat,
			TimeScale:        p.TimeScale,
			OutEase:          "out_cubic",
			ReturnEase:       "out_quad",
			RotationEase:     "in_out_quart",
		},
	}
}

// Load reads the YAML file at path over Default. A missing file is not an
// error; the defaults are returned as is. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		errs = append(errs, err)
	}
	if c.Grid.Count <= 0 || c.Grid.Count > 99 {
		errs = append(errs, fmt.Errorf("grid count %d must be in 1..99", c.Grid.Count))
	}
	if c.Grid.Columns <= 0 {
		errs = append(errs, fmt.Errorf("grid columns %d must be positive", c.Grid.Columns))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid cell_size %v must be positive", c.Grid.CellSize))
	}
	if c.Grid.Gap < 0 {
		errs = append(errs, fmt.Errorf("grid gap %v must not be negative", c.Grid.Gap))
	}
	if c.Grid.ImageScale <= 0 || c.Grid.ImageScale > 1 {
		errs = append(errs, fmt.Errorf("grid image_scale %v must be in (0, 1]", c.Grid.ImageScale))
	}
	if c.Grid.AltFontSize < 0 {
		errs = append(errs, fmt.Errorf("grid alt_font_size %v must not be negative", c.Grid.AltFontSize))
	}
	e := c.Effect
	if e.OutDuration <= 0 || e.ReturnDuration <= 0 || e.RotationDuration <= 0 {
		errs = append(errs, errors.New("effect durations must be positive"))
	}
	if e.ReturnOverlap < 0 {
		errs = append(errs, fmt.Errorf("effect return_overlap %v must not be negative", e.ReturnOverlap))
	}
	if e.RotationRange < 0 || e.RotationRange >= 180 {
		errs = append(errs, fmt.Errorf("effect rotation_range %v must be in [0, 180)", e.RotationRange))
	}
	if e.RotationRepeat < 0 {
		errs = append(errs, fmt.Errorf("effect rotation_repeat %d must not be negative", e.RotationRepeat))
	}
	if e.TimeScale <= 0 {
		errs = append(errs, fmt.Errorf("effect time_scale %v must be positive", e.TimeScale))
	}
	for _, name := range []string{e.OutEase, e.ReturnEase, e.RotationEase} {
		if _, err := effect.EaseByName(name); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Params converts the effect section into sequence parameters. The rotation
// range is symmetric around zero. Call Validate first; unknown ease names
// fall back to the defaults.
func (e EffectConfig) Params() effect.Params {
	p := effect.DefaultParams()
	p.Multiplier = e.Multiplier
	p.OutDuration = e.OutDuration
	p.ReturnDuration = e.ReturnDuration
	p.ReturnOverlap = e.ReturnOverlap
	p.RotationMin = -e.RotationRange
	p.RotationMax = e.RotationRange
	p.RotationDuration = e.RotationDuration
	p.RotationRepeat = e.RotationRepeat
	p.TimeScale = e.TimeScale
	if fn, err := effect.EaseByName(e.OutEase); err == nil {
		p.OutEase = fn
	}
	if fn, err := effect.EaseByName(e.ReturnEase); err == nil {
		p.ReturnEase = fn
	}
	if fn, err := effect.EaseByName(e.RotationEase); err == nil {
		p.RotationEase = fn
	}
	return p
}
