package cli

import "strconv"

// Flags that map onto config keys
var (
	flagAddr          string
	flagFormat        string
	flagFailOn        string
	flagMaxCodeLength int
	flagMaxTokens     int
	flagTimeout       int
	flagNoRedact      bool
)

// buildOverrides collects the config keys set on the command line.
func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagAddr != "" {
		m["addr"] = flagAddr
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailOn != "" {
		m["failOn"] = flagFailOn
	}
	if flagMaxCodeLength > 0 {
		m["maxCodeLength"] = strconv.Itoa(flagMaxCodeLength)
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = strconv.Itoa(flagMaxTokens)
	}
	if flagTimeout > 0 {
		m["backendTimeoutSeconds"] = strconv.Itoa(flagTimeout)
	}
	if flagNoRedact {
		m["redactSecrets"] = "false"
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	if flagLogFormat != "" {
		m["logFormat"] = flagLogFormat
	}
	return m
}
