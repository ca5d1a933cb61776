package contestmeta_test

import (
	"testing"

	"ctestwin/internal/contestmeta"
)

func TestResolveExtractedWinsFieldByField(t *testing.T) {
	base := contestmeta.Metadata{Kind: 5, KindSet: true, Key: "allja", Name: "All JA"}
	extracted := contestmeta.Metadata{
		Kind:       14,
		KindSet:    true,
		Provenance: contestmeta.ProvenanceExtracted,
	}

	id := contestmeta.Resolve(base, extracted)
	if id.Kind != 14 {
		t.Fatalf("extracted kind should override provided, got %d", id.Kind)
	}
	if id.Key != "allja" {
		t.Fatalf("absent extracted key should keep provided, got %q", id.Key)
	}
	if id.Name != "All JA" {
		t.Fatalf("absent extracted name should keep provided, got %q", id.Name)
	}
}

func TestResolveDefaultsToUserDefinedMulti(t *testing.T) {
	id := contestmeta.Resolve(contestmeta.Metadata{}, contestmeta.Metadata{})
	if id.Kind != contestmeta.UserDefinedMultiKind {
		t.Fatalf("unresolved kind must default to %d, got %d", contestmeta.UserDefinedMultiKind, id.Kind)
	}
	if id.Key != "custom" {
		t.Fatalf("unresolved key must default to custom, got %q", id.Key)
	}
}

func TestResolveLaterOverlayWins(t *testing.T) {
	base := contestmeta.Metadata{Kind: 1, KindSet: true, Key: "allja"}
	extracted := contestmeta.Metadata{Kind: 14, KindSet: true}
	manual := contestmeta.Metadata{Kind: 30, KindSet: true, Key: "myclub"}

	id := contestmeta.Resolve(base, extracted, manual)
	if id.Kind != 30 || id.Key != "myclub" {
		t.Fatalf("manual overlay should win: %+v", id)
	}
}

func TestResolveDerivesKeyFromName(t *testing.T) {
	id := contestmeta.Resolve(contestmeta.Metadata{Name: "CQ WW DX 2026"})
	if id.Key != "cqwwdx2026" {
		t.Fatalf("unexpected derived key: %q", id.Key)
	}
}

func TestDeriveKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"All JA", "allja"},
		{"6m and down", "6manddown"},
		{"オール東北コンテスト", "custom"},
		{"Field-Day_2026", "field-day_2026"},
		{"", "custom"},
	}
	for _, tc := range cases {
		if got := contestmeta.DeriveKey(tc.name); got != tc.want {
			t.Fatalf("DeriveKey(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
