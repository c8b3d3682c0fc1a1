package validate

import "testing"

func TestIsPhone(t *testing.T) {
	good := []string{"785-296-2456", "1-785-296-2456", "785-296-2456 ext. 7", "1-785-296-2456 ext. 123"}
	for _, s := range good {
		if !IsPhone(s) {
			t.Errorf("IsPhone(%q) = false, want true", s)
		}
	}
	bad := []string{"(785) 296-2456", "785.296.2456", "785-296-245", "785-296-2456 x7", "785-296-2456\n"}
	for _, s := range bad {
		if IsPhone(s) {
			t.Errorf("IsPhone(%q) = true, want false", s)
		}
	}
}

func TestIsSocial(t *testing.T) {
	if !IsSocial("RepJaneDoe") {
		t.Error("bare handle should pass")
	}
	for _, s := range []string{"@RepJaneDoe", "https://twitter.com/RepJaneDoe", "http://twitter.com/RepJaneDoe"} {
		if IsSocial(s) {
			t.Errorf("IsSocial(%q) = true, want false", s)
		}
	}
}

func TestIsLegacyOpenStates(t *testing.T) {
	if !IsLegacyOpenStates("KSL000123") {
		t.Error("KSL000123 should pass")
	}
	for _, s := range []string{"ksl000123", "KSL00012", "KS000123", "XXL1234567"} {
		if IsLegacyOpenStates(s) {
			t.Errorf("IsLegacyOpenStates(%q) = true, want false", s)
		}
	}
}

func TestIsPersonID(t *testing.T) {
	if !IsPersonID("ocd-person/11111111-2222-3333-4444-555555555555") {
		t.Error("well-formed ocd-person id should pass")
	}
	bad := []string{
		"11111111-2222-3333-4444-555555555555",
		"ocd-organization/11111111-2222-3333-4444-555555555555",
		"ocd-person/not-a-uuid",
		"",
	}
	for _, s := range bad {
		if IsPersonID(s) {
			t.Errorf("IsPersonID(%q) = true, want false", s)
		}
	}
}

func TestIsJurisdictionID(t *testing.T) {
	if !IsJurisdictionID("ocd-jurisdiction/country:us/state:ks/government") {
		t.Error("state jurisdiction should pass")
	}
	if IsJurisdictionID("ocd-jurisdiction/") {
		t.Error("bare prefix should fail")
	}
	if IsJurisdictionID("country:us/state:ks") {
		t.Error("missing prefix should fail")
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("https://example.com") || !IsURL("http://example.com") {
		t.Error("http(s) URLs should pass")
	}
	if IsURL("example.com") || IsURL("ftp://example.com") {
		t.Error("non-http values should fail")
	}
}

func TestIsChamber(t *testing.T) {
	for _, s := range []string{"upper", "lower", "legislature"} {
		if !IsChamber(s) {
			t.Errorf("IsChamber(%q) = false", s)
		}
	}
	if IsChamber("gov") || IsChamber("senate") {
		t.Error("non-chamber values should fail")
	}
}
