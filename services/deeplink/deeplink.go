// Package deeplink builds the platform handoff URL that moves a finished
// onboarding session into the mobile app.
package deeplink

import (
	"encoding/base64"
	"fmt"
)

// Generator produces app handoff URLs. The embedded token is a reversible
// base64 encoding of the profile identifier; it identifies, it does not
// authenticate. Integrators must swap it for a real credential before
// treating the link as trusted input.
type Generator struct {
	Scheme string
	Source string
}

// HandoffLinks bundles the deep link with the store fallbacks the renderer
// uses when the app is not installed.
type HandoffLinks struct {
	DeepLink     string `json:"deepLink"`
	PlayStoreURL string `json:"playStoreUrl"`
	AppStoreURL  string `json:"appStoreUrl"`
}

// Generate is deterministic: identical profile IDs yield identical URLs.
func (g Generator) Generate(profileID string) string {
	token := base64.StdEncoding.EncodeToString([]byte(profileID))
	return fmt.Sprintf("%s://login?token=%s&source=%s", g.Scheme, token, g.Source)
}

// DecodeToken reverses Generate's token encoding. It exists for the
// renderer's preview and for tests; it is not a verification step.
func DecodeToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("malformed handoff token: %w", err)
	}
	return string(raw), nil
}
