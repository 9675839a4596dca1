package template

import (
	"strings"

	"github.com/aalvaropc/fwkit/internal/domain"
)

// headerTemplate is the exact layout of include/Secrets.h. MQTT_PORT is the
// only unquoted value.
const headerTemplate = `#pragma once
#include <stdint.h>

static const char *WIFI_SSID = "{{WIFI_SSID}}";
static const char *WIFI_PASSWORD = "{{WIFI_PASSWORD}}";
static const char *MQTT_HOST = "{{MQTT_HOST}}";
static const uint16_t MQTT_PORT = {{MQTT_PORT}};
static const char *MQTT_USERNAME = "{{MQTT_USERNAME}}";
static const char *MQTT_PASSWORD = "{{MQTT_PASSWORD}}";
static const char *MQTT_TOPIC_TEXT = "{{MQTT_TOPIC_TEXT}}";
static const char *GITHUB_OWNER = "{{GITHUB_OWNER}}";
static const char *GITHUB_REPO = "{{GITHUB_REPO}}";
`

// EscapeC escapes s for use inside a double-quoted C string literal.
// Backslashes must be doubled before quotes are escaped.
func EscapeC(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// RenderHeader renders the secrets header from a validated environment.
// Callers must run domain.Validate first; the port is emitted verbatim.
func RenderHeader(env *domain.Env) ([]byte, error) {
	out, err := RenderString(headerTemplate, env.Vars(), WithFilter(func(key, value string) string {
		if key == domain.PortKey {
			return value
		}
		return EscapeC(value)
	}))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
