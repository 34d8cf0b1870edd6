// Package config provides configuration management for the flowmind CLI.
//
// # Configuration File
//
// The configuration file is named config.yaml and is searched for in the
// working directory and then in ~/.config/flowmind (FLOWMIND_CONFIG_DIR
// overrides the latter):
//
//	version: 1
//	output: output.json
//	report_format: text     # text, json, yaml
//	input_format: auto      # auto, json, yaml, toml
//	render:
//	  direction: TD         # TD, LR, BT, RL
//	draft:
//	  name: FlowMind Draft
//	  language: en
//	  preview_length: 200
//
// Every key can be overridden from the environment with the FLOWMIND_
// prefix, e.g. FLOWMIND_OUTPUT or FLOWMIND_RENDER_DIRECTION. A .env file in
// the working directory is read by [Init].
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//
// Loaded configurations are validated automatically; [Validate] returns
// every problem as a [FieldError].
package config
