package reference

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/gsxws/internal/testutil/testlog"
)

func TestDefaultLocales(t *testing.T) {
	testlog.Start(t)
	l := DefaultLocales()
	f, err := l.Formats("en_US")
	if err != nil {
		t.Fatalf("en_US formats: %v", err)
	}
	day := time.Date(2013, 1, 2, 14, 5, 0, 0, time.UTC)
	if got := day.Format(f.Date); got != "01/02/13" {
		t.Fatalf("unexpected en_US date: %q", got)
	}
	if got := day.Format(f.Time); got != "02:05 PM" {
		t.Fatalf("unexpected en_US time: %q", got)
	}
	f, err = l.Formats("de_DE")
	if err != nil {
		t.Fatalf("de_DE formats: %v", err)
	}
	if got := day.Format(f.Date); got != "02.01.13" {
		t.Fatalf("unexpected de_DE date: %q", got)
	}
	if _, err := l.Formats("xx_XX"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestLayout(t *testing.T) {
	testlog.Start(t)
	tests := []struct {
		in   string
		want string
	}{
		{in: "%d-%b-%y %H:%M:%S", want: "02-Jan-06 15:04:05"},
		{in: "%Y-%m-%d", want: "2006-01-02"},
		{in: "%H.%M", want: "15.04"},
		{in: "%d%%", want: "02%"},
	}
	for _, tc := range tests {
		got, err := Layout(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("Layout(%q) = %q,%v want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := Layout("%Q"); !errors.Is(err, ErrUnsupportedToken) {
		t.Fatalf("expected ErrUnsupportedToken, got %v", err)
	}
	if _, err := Layout("%"); !errors.Is(err, ErrUnsupportedToken) {
		t.Fatalf("expected ErrUnsupportedToken, got %v", err)
	}
	for _, in := range []string{"%d 1 %m", "Jan %d", "%I:%M PM", "%d_%m"} {
		if got, err := Layout(in); !errors.Is(err, ErrUnsupportedToken) {
			t.Fatalf("Layout(%q) = %q,%v; expected literal to be rejected", in, got, err)
		}
	}
}

func TestLoadLocalesFromJSON(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "langs.json")
	content := `{"fi_FI": {"df": "%d.%m.%y", "tf": "%H:%M"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l, err := LoadLocales(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l["fi_FI"].Date != "%d.%m.%y" {
		t.Fatalf("unexpected entry: %+v", l["fi_FI"])
	}
}

func TestCodeBook(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "comptia.yaml")
	content := `
symptoms:
  "1":
    "X01": "Display: no image"
    "X00": "Display: flicker"
  "0":
    "001": "No power"
modifiers:
  C: Intermittent
  A: Not Applicable
  B: Continuous
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	book, err := LoadCodeBook(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if comps := book.Components(); len(comps) != 2 || comps[0] != "0" {
		t.Fatalf("unexpected components: %v", comps)
	}
	codes, err := book.SymptomCodes("1")
	if err != nil {
		t.Fatalf("symptoms: %v", err)
	}
	if len(codes) != 2 || codes[0].Code != "X00" {
		t.Fatalf("unexpected symptom codes: %+v", codes)
	}
	mods := book.ModifierCodes()
	if len(mods) != 3 || mods[0].Code != "A" || mods[2].Description != "Intermittent" {
		t.Fatalf("unexpected modifiers: %+v", mods)
	}
	if _, err := book.SymptomCodes("9"); !errors.Is(err, ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
}
