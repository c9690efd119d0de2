package middleware

import (
	"strings"
	"testing"
)

func TestBuildContentSecurityPolicyAllowsInlineStylesAndDataImages(t *testing.T) {
	policy := buildContentSecurityPolicy()
	directives := parseContentSecurityPolicy(policy)

	checks := map[string]string{
		"style-src": "'unsafe-inline'",
		"img-src":   "data:",
	}
	for directive, required := range checks {
		values, ok := directives[directive]
		if !ok {
			t.Fatalf("expected %s directive in policy: %s", directive, policy)
		}
		if _, allowed := values[required]; !allowed {
			t.Fatalf("expected %s to allow %s, policy: %s", directive, required, policy)
		}
	}
}

func parseContentSecurityPolicy(policy string) map[string]map[string]struct{} {
	result := make(map[string]map[string]struct{})

	for _, directive := range strings.Split(policy, ";") {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		parts := strings.Fields(directive)
		if len(parts) == 0 {
			continue
		}

		name := parts[0]
		values := make(map[string]struct{}, len(parts)-1)
		for _, value := range parts[1:] {
			values[value] = struct{}{}
		}

		result[name] = values
	}

	return result
}
