package console

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/fwkit/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// Diagnose turns err into the lines shown to the user. example names the
// template file users are told to copy (".env.example").
func Diagnose(err error, example string) []string {
	if err == nil {
		return nil
	}
	if example == "" {
		example = ".env.example"
	}
	guidance := "Copy " + example + " to .env and fill in values."

	var me *domain.MissingKeysError
	if errors.As(err, &me) {
		return []string{
			"Missing required keys in .env: " + strings.Join(me.Keys, ", "),
			guidance,
		}
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return []string{de.Msg}
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		base := "file"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}

		switch oe.Kind {
		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "dotenv.") {
				return []string{base + " file not found at project root.", guidance}
			}
			if strings.HasPrefix(oe.Op, "projectfinder.findroot") {
				return []string{"Project root not found (no fwkit.yaml or platformio.ini)."}
			}
			return []string{base + " not found."}

		case domain.KindInvalidConfig:
			if line := extractLine(err.Error()); line != "" {
				return []string{"Invalid config at " + base + " line " + line + "."}
			}
			return []string{"Invalid config at " + base + ": " + rootCause(oe)}

		default:
			return []string{oe.Op + " failed: " + rootCause(oe)}
		}
	}

	return []string{err.Error()}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func rootCause(oe *domain.OpError) string {
	if oe.Err == nil {
		return string(oe.Kind)
	}
	return oe.Err.Error()
}
