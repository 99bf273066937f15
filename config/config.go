package config

var (
	JSONOutput bool
	Normalize  bool
	TLD        string
	Strict     bool
)
