// Package gate decides whether a build step may proceed past reconciliation.
package gate

import (
	"strings"

	"webui-strings/internal/reconcile"
)

// FixHint points operators at the self-fix tool.
const FixHint = "Run `webui-strings fix <frontend-dir>` to update the catalog, then rerun the build."

// Decision is the gate's verdict on one reconciliation result.
type Decision struct {
	// Proceed is false when generation must not run.
	Proceed bool
	// Diagnostics is the operator-facing report, empty when nothing to say.
	Diagnostics string
}

// Evaluate blocks the build iff there are unresolved additions or
// modifications: generated tables would otherwise silently omit live strings
// or collide on identifiers. Stale catalog entries are cleanup debt, not a
// correctness hazard, so they are reported without blocking.
func Evaluate(r reconcile.Result) Decision {
	additions := r.ReportAdditions()
	modifications := r.ReportModifications()
	removals := r.ReportRemovals()

	var parts []string
	for _, p := range []string{additions, modifications, removals} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	blocked := additions != "" || modifications != ""
	if blocked {
		parts = append(parts, FixHint)
	}

	return Decision{
		Proceed:     !blocked,
		Diagnostics: strings.Join(parts, "\n"),
	}
}
