package analysis

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"praxida/internal/models"
)

const (
	systemPrompt = "Du bist ein KI-Assistent für Therapeuten. " +
		"Analysiere Inhalte aus professioneller, therapeutischer Sicht und gib hilfreiche Einschätzungen auf Deutsch."

	// DefaultAnalysis is served whenever no LLM is configured or the call fails.
	DefaultAnalysis = "Standard-Analyse: Das Dokument wurde erfolgreich hochgeladen und kann für therapeutische Zwecke ausgewertet werden."

	analysisMaxTokens = 800
	maxContentChars   = 2000
)

// Completer is the gateway surface the analysis service depends on.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...model.Option) (string, error)
}

// Service turns a staged upload into an analysis text. File content is only
// embedded for text-like files; images and other documents get generic
// guidance prompts.
type Service struct {
	llm Completer
}

// NewService constructs the analysis service. A nil completer means every
// upload receives the default analysis.
func NewService(llm Completer) *Service {
	return &Service{llm: llm}
}

// Analyze builds the per-file prompt and asks the LLM for an assessment.
// It never fails: read errors degrade the prompt and gateway errors degrade
// the analysis to its default text.
func (s *Service) Analyze(ctx context.Context, file *models.StoredFile) string {
	prompt := s.buildPrompt(file)

	if s.llm == nil {
		return DefaultAnalysis
	}
	out, err := s.llm.Complete(ctx, systemPrompt, prompt, model.WithMaxTokens(analysisMaxTokens))
	if err != nil {
		log.Printf("analysis completion failed, using fallback: %v", err)
		return DefaultAnalysis
	}
	return out
}

func (s *Service) buildPrompt(file *models.StoredFile) string {
	switch {
	case strings.HasPrefix(file.MimeType, "text/") || strings.HasSuffix(file.OriginalName, ".txt"):
		content, err := os.ReadFile(file.StoredPath)
		if err != nil {
			return fmt.Sprintf("Ein Textdokument wurde hochgeladen (%s). Konnte nicht gelesen werden, gib allgemeine Hinweise zur Textanalyse.", file.OriginalName)
		}
		return "Analysiere diesen Textinhalt aus therapeutischer Sicht:\n\n" + truncate(string(content), maxContentChars)
	case strings.HasPrefix(file.MimeType, "image/"):
		return fmt.Sprintf("Ein Bild wurde hochgeladen (%s). Gib allgemeine Hinweise zur therapeutischen Bildanalyse.", file.OriginalName)
	default:
		return fmt.Sprintf("Ein Dokument wurde hochgeladen (%s, %s). Gib Hinweise zur therapeutischen Dokumentenanalyse.", file.OriginalName, file.MimeType)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
