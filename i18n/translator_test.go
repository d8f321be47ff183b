package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("duplicate_part", nil); msg != "Element, id and pseudo-element should not occur more then one time inside the selector" {
		t.Fatalf("unexpected english message %q", msg)
	}

	SetLanguage("ja")
	if msg := T("duplicate_part", nil); msg == "" || msg[0] == 'E' {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	if msg := T("duplicate_key", map[string]string{"key": "width"}); msg != "key 'width' duplicated" {
		t.Fatalf("got %q", msg)
	}
}

func TestTranslator_PlaceholderValuesAreLiteral(t *testing.T) {
	data := map[string]string{"category": "{key}", "key": "x"}
	for i := 0; i < 20; i++ {
		if msg := T("unknown_category", data); msg != "unknown selector category: {key}" {
			t.Fatalf("got %q", msg)
		}
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("parse_error", nil); msg != "X:parse_error" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("parse_error", nil); msg != "parse error" {
		t.Fatalf("expected default translator after reset, got %q", msg)
	}
}
