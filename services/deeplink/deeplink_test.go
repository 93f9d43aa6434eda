package deeplink

import "testing"

func TestGenerate_Deterministic(t *testing.T) {
	g := Generator{Scheme: "lillia", Source: "web_onboarding"}

	first := g.Generate("USER_abc123")
	second := g.Generate("USER_abc123")
	if first != second {
		t.Errorf("identical inputs must yield identical URLs: %q != %q", first, second)
	}

	other := g.Generate("USER_def456")
	if other == first {
		t.Error("different profiles must yield different URLs")
	}
}

func TestGenerate_Format(t *testing.T) {
	g := Generator{Scheme: "lillia", Source: "web_onboarding"}
	url := g.Generate("USER_abc123")

	want := "lillia://login?token=VVNFUl9hYmMxMjM=&source=web_onboarding"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}

func TestDecodeToken_RoundTrip(t *testing.T) {
	g := Generator{Scheme: "lillia", Source: "web_onboarding"}
	url := g.Generate("USER_abc123")

	// token sits between "token=" and "&source".
	const prefix = "lillia://login?token="
	token := url[len(prefix) : len(url)-len("&source=web_onboarding")]

	profileID, err := DecodeToken(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if profileID != "USER_abc123" {
		t.Errorf("decoded %q, want USER_abc123", profileID)
	}

	if _, err := DecodeToken("!!!not-base64!!!"); err == nil {
		t.Error("malformed tokens should fail to decode")
	}
}
