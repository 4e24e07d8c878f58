package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test document: %v", err)
	}
	return path
}

func TestFromFile_PlainText(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	// Plain text passes through verbatim, trailing whitespace included.
	content := "The Eiffel Tower is 330 meters tall.\n"
	path := writeDoc(t, "claims.txt", content)

	got, err := e.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got != content {
		t.Errorf("FromFile = %q, want verbatim content", got)
	}
}

func TestFromFile_Markdown(t *testing.T) {
	e := NewExtractor(zap.NewNop())
	content := "# Notes\n\nWater boils at 100C at sea level.\n"

	for _, name := range []string{"notes.md", "notes.markdown"} {
		path := writeDoc(t, name, content)
		got, err := e.FromFile(path)
		if err != nil {
			t.Fatalf("FromFile(%s) failed: %v", name, err)
		}
		if got != content {
			t.Errorf("FromFile(%s) = %q, want verbatim content", name, got)
		}
	}
}

func TestFromFile_HTML(t *testing.T) {
	e := NewExtractor(zap.NewNop())
	page := `<!DOCTYPE html>
<html>
<head><title>Article</title></head>
<body>
<article>
<h1>Moon facts</h1>
<p>The Great Wall of China is visible from the Moon. The Moon orbits the Earth
roughly every 27 days and has no atmosphere to speak of.</p>
<p>Its surface gravity is about one sixth of Earth&#39;s, which is why the
Apollo astronauts bounced rather than walked.</p>
</article>
<script>alert("ignored")</script>
</body>
</html>`
	path := writeDoc(t, "article.html", page)

	got, err := e.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if !strings.Contains(got, "visible from the Moon") {
		t.Errorf("extracted text should contain article body, got %q", got)
	}
	if strings.Contains(got, "<p>") || strings.Contains(got, "alert(") {
		t.Errorf("extracted text should not contain markup or scripts, got %q", got)
	}
}

func TestFromFile_HTMLEntitiesUnescaped(t *testing.T) {
	e := NewExtractor(zap.NewNop())
	path := writeDoc(t, "frag.htm", "<div>AT&amp;T was founded in 1885.</div>")

	got, err := e.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if !strings.Contains(got, "AT&T") {
		t.Errorf("entities should be unescaped, got %q", got)
	}
}

func TestFromFile_UnsupportedFormat(t *testing.T) {
	e := NewExtractor(zap.NewNop())
	path := writeDoc(t, "scan.pdf", "%PDF-1.4")

	_, err := e.FromFile(path)
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	if ufe.Ext != ".pdf" {
		t.Errorf("Ext = %q, want .pdf", ufe.Ext)
	}
}

func TestFromFile_Missing(t *testing.T) {
	e := NewExtractor(zap.NewNop())
	if _, err := e.FromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
