package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"class", KwClass, true},
		{"persistent", KwPersistent, true},
		{"implements", KwImplements, true},
		{"null", NullLit, true},
		{"Class", Invalid, false},
		{"volt", Invalid, false},
	}
	for _, tt := range tests {
		k, ok := LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
			continue
		}
		if ok && k != tt.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, k, tt.kind)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() {
		t.Error("IntLit must be a literal")
	}
	if !(Token{Kind: KwTrue}).IsLiteral() {
		t.Error("true must count as a literal")
	}
	if !(Token{Kind: KwNative}).IsQualifier() {
		t.Error("native must be a qualifier")
	}
	if (Token{Kind: KwClass}).IsQualifier() {
		t.Error("class is not a qualifier")
	}
	if !(Token{Kind: KwSwitch}).IsKeyword() {
		t.Error("switch must be a keyword")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("identifiers are not keywords")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KwFunc, "func"},
		{Arrow, "->"},
		{DotDot, ".."},
		{Ident, "Ident"},
		{EOF, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
