package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                                "/",
		"/metrics":                        "/metrics",
		"/v1/auth/login":                  "/v1/auth/login",
		"/v1/auth/navigation/42":          "/v1/auth/navigation/:spa_id",
		"/v1/auth/navigation/42/extra":    "/v1/auth/navigation/42/extra",
		"/v1/auth/spa-status/7":           "/v1/auth/spa-status/:spa_id",
		"/v1/auth/spa-status/7?verbose=1": "/v1/auth/spa-status/:spa_id",
		"/v1/auth/verify":                 "/v1/auth/verify",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}
