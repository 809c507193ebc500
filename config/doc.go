// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Values the file leaves unset fall back to the documented defaults, which
// match the visual tuning of the reference deployment (a ±60-minute filter
// window and the [0,25] / [3,50] radius presets).
package config
