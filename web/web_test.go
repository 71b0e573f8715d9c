package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/honekiti/portfolio/internal/konami"
	"github.com/honekiti/portfolio/internal/profile"
)

func TestNotificationStyles(t *testing.T) {
	tests := []struct {
		kind  Kind
		icon  string
		color string
	}{
		{KindSuccess, "check-circle", "#48bb78"},
		{KindError, "exclamation-circle", "#f56565"},
		{KindInfo, "info-circle", "#4299e1"},
		{Kind("warning"), "info-circle", "#4299e1"},
	}
	for _, tt := range tests {
		n := NewNotification(tt.kind, "hi")
		if n.Icon() != tt.icon || n.Color() != tt.color {
			t.Errorf("%s: icon=%q color=%q, want %q %q", tt.kind, n.Icon(), n.Color(), tt.icon, tt.color)
		}
	}
	if NewNotification("bogus", "x").Kind != KindInfo {
		t.Error("unknown kind should normalize to info")
	}
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		saved, prefers string
		want           Theme
	}{
		{"dark", "", ThemeDark},
		{"light", "dark", ThemeLight},
		{"", "dark", ThemeDark},
		{"", "light", ThemeLight},
		{"", "", ThemeLight},
		{"purple", "dark", ThemeDark},
	}
	for _, tt := range tests {
		if got := ResolveTheme(tt.saved, tt.prefers); got != tt.want {
			t.Errorf("ResolveTheme(%q, %q) = %q, want %q", tt.saved, tt.prefers, got, tt.want)
		}
	}
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Error("Toggle does not flip")
	}
	if ThemeDark.BodyClass() != "dark-theme" || ThemeLight.BodyClass() != "" {
		t.Error("unexpected body class")
	}
}

func TestMarkdown(t *testing.T) {
	got := string(Markdown("**bold** text"))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("Markdown = %q", got)
	}
}

func TestTemplatesRenderIndex(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}

	p := profile.Default()
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "index.html", Page{
		Brand:          "portfolio",
		Profile:        p,
		Nav:            Nav,
		Theme:          ThemeDark,
		QuickQuestions: []string{"研究について教えてください"},
		Footer:         "Copyright",
	})
	if err != nil {
		t.Fatalf("ExecuteTemplate: %v", err)
	}

	html := buf.String()
	for _, want := range []string{p.Basic.Name, p.Contact.Email, p.Projects[2].Name, "dark-theme", `data-level="85"`, "研究について教えてください"} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"js/scripts.js", "css/styles.css"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("missing static asset %s: %v", name, err)
		}
	}
}

func TestScriptForwardsOnlyKonamiKeysOutsideFields(t *testing.T) {
	src, err := fs.ReadFile(Static(), "js/scripts.js")
	if err != nil {
		t.Fatalf("read scripts.js: %v", err)
	}
	js := string(src)

	if !strings.Contains(js, "e.target.closest('input, textarea, select, [contenteditable]')") {
		t.Error("keydown handler must ignore keys typed into form fields")
	}
	for _, code := range konami.Sequence {
		if !strings.Contains(js, "'"+code+"'") {
			t.Errorf("KONAMI_KEYS missing %s", code)
		}
	}
	if !strings.Contains(js, "e.detail.successful") {
		t.Error("theme toggle must only flip the class on a successful request")
	}
}
