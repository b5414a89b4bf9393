package effect

import "laneclash/internal/dsl"

// FireTriggered parses script and invokes every non-status, non-marker
// token tagged with trigger, in script order, against ctx. It returns a
// diagnostic string per unknown effect name encountered — callers decide whether/where to log them.
func FireTriggered(script string, trigger dsl.Trigger, ctx *Context) []string {
	var diagnostics []string
	for _, inv := range dsl.Parse(script) {
		if inv.Trigger != trigger {
			continue
		}
		if inv.IsStatus {
			continue
		}
		if inv.Name == "action_effect" {
			continue
		}
		handler, ok := Lookup(inv.Name)
		if !ok {
			diagnostics = append(diagnostics, "unknown effect token: "+inv.Name)
			continue
		}
		handler(inv.Value, ctx)
	}
	return diagnostics
}

// IsActionEffectDeferred reports whether script declares the action_effect
// marker, meaning its non-marker tokens should fire at Active Response
// resolution instead of at play time.
func IsActionEffectDeferred(script string) bool {
	return dsl.HasToken(script, "action_effect")
}

// FireAllNonStatus fires every non-status token in script regardless of
// trigger, used by Active Response resolution.
func FireAllNonStatus(script string, ctx *Context) []string {
	var diagnostics []string
	for _, inv := range dsl.Parse(script) {
		if inv.IsStatus || inv.Name == "action_effect" {
			continue
		}
		handler, ok := Lookup(inv.Name)
		if !ok {
			diagnostics = append(diagnostics, "unknown effect token: "+inv.Name)
			continue
		}
		handler(inv.Value, ctx)
	}
	return diagnostics
}
