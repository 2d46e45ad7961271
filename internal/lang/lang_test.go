package lang

import "testing"

func TestIsSupported(t *testing.T) {
	for _, code := range []string{"en", "zh", "zh-TW", "ja", "ko"} {
		if !IsSupported(code) {
			t.Fatalf("expected %q to be supported", code)
		}
	}
	for _, code := range []string{"auto", "xx", "EN", ""} {
		if IsSupported(code) {
			t.Fatalf("expected %q to be unsupported", code)
		}
	}
}

func TestMicrosoftCode(t *testing.T) {
	if got := MicrosoftCode("zh"); got != "zh-Hans" {
		t.Fatalf("MicrosoftCode(zh) = %q", got)
	}
	if got := MicrosoftCode("zh-TW"); got != "zh-Hant" {
		t.Fatalf("MicrosoftCode(zh-TW) = %q", got)
	}
	if got := MicrosoftCode("ja"); got != "ja" {
		t.Fatalf("MicrosoftCode(ja) = %q", got)
	}
}

func TestGoogleCode(t *testing.T) {
	if got := GoogleCode("zh"); got != "zh-CN" {
		t.Fatalf("GoogleCode(zh) = %q", got)
	}
	if got := GoogleCode("ko"); got != "ko" {
		t.Fatalf("GoogleCode(ko) = %q", got)
	}
}

func TestName(t *testing.T) {
	if got := Name("de"); got != "German" {
		t.Fatalf("Name(de) = %q", got)
	}
	if got := Name("xx"); got != "xx" {
		t.Fatalf("Name(xx) = %q, want passthrough", got)
	}
}
