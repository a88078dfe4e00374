package config

import "strings"

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigMemoPrefix = ConfigPrefix + delimiter + "memo"

	ConfigMemoMemoizer = ConfigMemoPrefix + delimiter + "memoizer"
	ConfigMemoTable    = ConfigMemoPrefix + delimiter + "table"
	ConfigMemoKeys     = ConfigMemoPrefix + delimiter + "keys"

	ConfigLogPrefix = ConfigPrefix + delimiter + "log"

	ConfigLogLevel = ConfigLogPrefix + delimiter + "level"
	ConfigLogTrail = ConfigLogPrefix + delimiter + "trail"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MEMO_"

// envKeys maps each dotted key to the short name used in env vars and YAML.
var envKeys = map[string]string{
	ConfigMemoMemoizer: "memoizer",
	ConfigMemoTable:    "table",
	ConfigMemoKeys:     "keys",
	ConfigLogLevel:     "log_level",
	ConfigLogTrail:     "trail",
}

// EnvVarName returns the environment variable overriding key, e.g.
// "log_level" -> "MEMO_LOG_LEVEL". Dotted keys are accepted too.
func EnvVarName(key string) string {
	if short, ok := envKeys[key]; ok {
		key = short
	}
	return EnvPrefix + strings.ToUpper(key)
}
