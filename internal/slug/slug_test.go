package slug

import "testing"

func TestSlugFoldsCaseAndJoinsWords(t *testing.T) {
	got := Slug("Nairobi City")
	want := "nairobi_city"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSlugStripsCombiningMarks(t *testing.T) {
	if got, want := Slug("Köto"), Slug("Koto"); got != want {
		t.Fatalf("Slug(%q) = %q, want it to match Slug(%q) = %q", "Köto", got, "Koto", want)
	}
}

func TestSlugTrimsPunctuation(t *testing.T) {
	got := Slug("  Kajiado / North  ")
	want := "kajiado_north"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
