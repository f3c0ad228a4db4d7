package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"

	"praxida/internal/models"
)

type fakeCompleter struct {
	reply      string
	err        error
	userPrompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...model.Option) (string, error) {
	f.userPrompt = userPrompt
	return f.reply, f.err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestAnalyzeTextFileEmbedsContent(t *testing.T) {
	path := writeTempFile(t, "notizen.txt", "Sitzung verlief gut.")
	llm := &fakeCompleter{reply: "Einschätzung"}
	svc := NewService(llm)

	got := svc.Analyze(context.Background(), &models.StoredFile{
		OriginalName: "notizen.txt",
		StoredPath:   path,
		MimeType:     "text/plain",
	})
	if got != "Einschätzung" {
		t.Fatalf("Analyze = %q", got)
	}
	if !strings.Contains(llm.userPrompt, "Sitzung verlief gut.") {
		t.Fatalf("prompt does not embed file content: %q", llm.userPrompt)
	}
	if !strings.Contains(llm.userPrompt, "Analysiere diesen Textinhalt") {
		t.Fatalf("unexpected text prompt: %q", llm.userPrompt)
	}
}

func TestAnalyzeTextContentCapped(t *testing.T) {
	long := strings.Repeat("a", 3000)
	path := writeTempFile(t, "lang.txt", long)
	llm := &fakeCompleter{reply: "ok"}
	svc := NewService(llm)

	svc.Analyze(context.Background(), &models.StoredFile{
		OriginalName: "lang.txt",
		StoredPath:   path,
		MimeType:     "text/plain",
	})
	if !strings.Contains(llm.userPrompt, strings.Repeat("a", maxContentChars)) {
		t.Fatalf("expected %d chars of content in prompt", maxContentChars)
	}
	if strings.Contains(llm.userPrompt, strings.Repeat("a", maxContentChars+1)) {
		t.Fatalf("content not capped at %d chars", maxContentChars)
	}
}

func TestAnalyzeUnreadableTextFile(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	svc := NewService(llm)

	svc.Analyze(context.Background(), &models.StoredFile{
		OriginalName: "weg.txt",
		StoredPath:   filepath.Join(t.TempDir(), "does-not-exist.txt"),
		MimeType:     "text/plain",
	})
	if !strings.Contains(llm.userPrompt, "Konnte nicht gelesen werden") {
		t.Fatalf("expected read-failure prompt, got %q", llm.userPrompt)
	}
	if !strings.Contains(llm.userPrompt, "weg.txt") {
		t.Fatalf("prompt should name the file: %q", llm.userPrompt)
	}
}

func TestAnalyzeImagePrompt(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	svc := NewService(llm)

	svc.Analyze(context.Background(), &models.StoredFile{
		OriginalName: "bild.png",
		StoredPath:   "irrelevant",
		MimeType:     "image/png",
	})
	if !strings.Contains(llm.userPrompt, "therapeutischen Bildanalyse") {
		t.Fatalf("expected image prompt, got %q", llm.userPrompt)
	}
}

func TestAnalyzeDocumentPrompt(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	svc := NewService(llm)

	svc.Analyze(context.Background(), &models.StoredFile{
		OriginalName: "bericht.pdf",
		StoredPath:   "irrelevant",
		MimeType:     "application/pdf",
	})
	if !strings.Contains(llm.userPrompt, "Dokumentenanalyse") {
		t.Fatalf("expected document prompt, got %q", llm.userPrompt)
	}
	if !strings.Contains(llm.userPrompt, "application/pdf") {
		t.Fatalf("prompt should name the media type: %q", llm.userPrompt)
	}
}

func TestAnalyzeWithoutGateway(t *testing.T) {
	svc := NewService(nil)
	got := svc.Analyze(context.Background(), &models.StoredFile{
		OriginalName: "x.pdf",
		StoredPath:   "irrelevant",
		MimeType:     "application/pdf",
	})
	if got != DefaultAnalysis {
		t.Fatalf("Analyze = %q, want default analysis", got)
	}
}

func TestAnalyzeGatewayFailureKeepsDefault(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("boom")}
	svc := NewService(llm)
	got := svc.Analyze(context.Background(), &models.StoredFile{
		OriginalName: "x.pdf",
		StoredPath:   "irrelevant",
		MimeType:     "application/pdf",
	})
	if got != DefaultAnalysis {
		t.Fatalf("Analyze = %q, want default analysis", got)
	}
}
