// Package engine decides what a file should be renamed to. It dispatches on
// the user's rename mode and composes the extractor, the template renderer
// and the rule engine into one strategy call. Everything here is pure
// string work: no I/O, no filesystem, no transport.
package engine

import (
	"strings"

	"github.com/renamebot/renamed/internal/config"
	"github.com/renamebot/renamed/internal/metrics"
	"github.com/renamebot/renamed/internal/models"
	"github.com/renamebot/renamed/internal/parser"
	"github.com/renamebot/renamed/internal/render"
	"github.com/renamebot/renamed/internal/rules"
)

// ComputeName resolves the new name for filename under cfg. The boolean
// reports whether a name was computed: manual mode returns ("", false)
// because the user supplies the name out of band. Unrecognized mode values
// dispatch as auto. A panic anywhere below is recovered into the original
// filename, so callers never crash on a pathological input.
func ComputeName(filename string, cfg models.RenameConfig) (name string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger := config.GetLogger()
			logger.Error().
				Interface("panic", r).
				Str("filename", filename).
				Msg("Rename computation recovered, keeping original name")
			metrics.EngineRecoveriesTotal.Inc()
			name, ok = filename, true
		}
	}()

	switch cfg.Mode {
	case models.ModeManual:
		return "", false
	case models.ModeReplace:
		return rules.Apply(filename, cfg.Rules), true
	default:
		tokens := parser.Extract(filename)
		_, ext := parser.SplitExtension(filename)
		return render.Render(cfg.Template, tokens, ext), true
	}
}

// Preview returns what ComputeName would produce, with manual mode shown
// as an explicit marker instead of an empty string.
func Preview(filename string, cfg models.RenameConfig) string {
	name, ok := ComputeName(filename, cfg)
	if !ok {
		return "[Manual: " + filename + "]"
	}
	return name
}

// FinalizeManual normalizes a user-typed replacement name against the file
// it renames: surrounding whitespace is dropped, a blank entry keeps the
// original filename, and the original extension is appended when the entry
// does not already end with it (compared case-insensitively).
func FinalizeManual(input, originalFilename string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		return originalFilename
	}

	_, ext := parser.SplitExtension(originalFilename)
	if ext != "" && !hasSuffixFold(name, ext) {
		name += ext
	}
	return name
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
