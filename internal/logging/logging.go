package logging

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/godbus/dbus/v5"

	"github.com/example/screenaccess/internal/protocol"
)

var debugEnabled atomic.Bool

// EnableDebug turns on verbose debug logging for the application lifecycle.
func EnableDebug() {
	debugEnabled.Store(true)
	log.Printf("[DEBUG] debug logging enabled")
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	log.Printf("[DEBUG] "+format, args...)
}

// LogBusCall emits detailed information about an outbound portal method
// call when debugging is enabled. Sensitive option values such as
// handle tokens are masked prior to logging.
func LogBusCall(method string, path dbus.ObjectPath, options protocol.Vardict) {
	if !DebugEnabled() {
		return
	}

	log.Printf("[DEBUG] bus call %s on %s", method, path)
	if len(options) > 0 {
		log.Printf("[DEBUG] --> call options: %s", FormatVardict(options))
	}
}

// LogSignal emits detailed information about an inbound bus signal when
// debugging is enabled.
func LogSignal(sig *dbus.Signal) {
	if !DebugEnabled() || sig == nil {
		return
	}

	log.Printf("[DEBUG] bus signal %s from %s on %s", sig.Name, sig.Sender, sig.Path)
	if len(sig.Body) > 0 {
		log.Printf("[DEBUG] <-- signal body: %s", describeBody(sig.Body))
	}
}

func describeBody(body []interface{}) string {
	parts := make([]string, 0, len(body))
	for _, item := range body {
		if results, ok := item.(protocol.Vardict); ok {
			parts = append(parts, FormatVardict(results))
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, ", ")
}

// FormatVardict renders a results vardict with deterministic key order,
// masking values stored under sensitive keys.
func FormatVardict(results protocol.Vardict) string {
	keys := make([]string, 0, len(results))
	for key := range results {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for idx, key := range keys {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(sanitizeSensitiveValue(key, fmt.Sprintf("%v", results[key].Value())))
	}
	b.WriteString("}")
	return b.String()
}

func isSensitiveKey(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "token"),
		strings.Contains(lower, "secret"):
		return true
	default:
		return false
	}
}

func sanitizeSensitiveValue(name, value string) string {
	if value == "" {
		return value
	}
	if isSensitiveKey(name) {
		return MaskIdentifier(value)
	}
	return value
}

// MaskIdentifier obscures sensitive identifiers leaving only the last four characters visible.
func MaskIdentifier(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(trimmed)-4) + trimmed[len(trimmed)-4:]
}
