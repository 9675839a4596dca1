package domain

import (
	"regexp"
	"strings"
)

const (
	// PortKey is the only numeric field; it is emitted unquoted as uint16_t.
	PortKey = "MQTT_PORT"

	TopicKey     = "MQTT_TOPIC_TEXT"
	DefaultTopic = "esp32/rgb/text"
)

// RequiredKeys must be present and non-empty. Order is the order used when
// reporting missing keys.
var RequiredKeys = []string{
	"WIFI_SSID",
	"WIFI_PASSWORD",
	"MQTT_HOST",
	PortKey,
	"MQTT_USERNAME",
	"MQTT_PASSWORD",
	"GITHUB_OWNER",
	"GITHUB_REPO",
}

// Default is a fallback applied when Key is absent or empty.
type Default struct {
	Key   string
	Value string
}

// OptionalDefaults lists keys that may be omitted from the environment file.
var OptionalDefaults = []Default{
	{Key: TopicKey, Value: DefaultTopic},
}

var rePort = regexp.MustCompile(`^[0-9]+$`)

// ApplyDefaults returns a copy of env with every optional default filled in.
func ApplyDefaults(env *Env) *Env {
	out := env.Clone()
	for _, d := range OptionalDefaults {
		if out.Value(d.Key) == "" {
			out.Set(d.Key, d.Value)
		}
	}
	return out
}

// MissingKeys returns the required keys that are absent or empty, in
// required-key order.
func MissingKeys(env *Env) []string {
	var missing []string
	for _, k := range RequiredKeys {
		if env.Value(k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// ValidatePort reports whether s is one or more ASCII decimal digits.
func ValidatePort(s string) bool {
	return rePort.MatchString(s)
}

// Validate checks required keys first (reporting all of them at once) and
// then the port format.
func Validate(env *Env) error {
	if missing := MissingKeys(env); len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}

	if !ValidatePort(env.Value(PortKey)) {
		return &Error{
			Kind: KindInvalidValue,
			Msg:  PortKey + " must be an integer.",
		}
	}
	return nil
}

// HeaderKeys is every key that ends up in the generated header.
func HeaderKeys() []string {
	keys := make([]string, 0, len(RequiredKeys)+len(OptionalDefaults))
	keys = append(keys, RequiredKeys...)
	for _, d := range OptionalDefaults {
		keys = append(keys, d.Key)
	}
	return keys
}

// IsSensitiveKey reports whether values under k should be masked on display.
func IsSensitiveKey(k string) bool {
	kk := strings.ToLower(k)
	return strings.Contains(kk, "token") ||
		strings.Contains(kk, "secret") ||
		strings.Contains(kk, "password")
}
