package ejaan

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/ejaan-id/ejaan/internal/customdict"
	"github.com/ejaan-id/ejaan/internal/lexicon"
	"github.com/ejaan-id/ejaan/internal/model"
	"github.com/ejaan-id/ejaan/internal/util"
)

// Server exposes the checker over HTTP. The lexicon is swapped in once
// its background load finishes; checks issued before that run with an
// empty lexicon (fail-open) instead of blocking.
type Server struct {
	lex    atomic.Pointer[lexicon.Lexicon]
	custom *customdict.CustomDict // nil when Redis is not configured
}

// NewServer creates a Server. custom may be nil.
func NewServer(custom *customdict.CustomDict) *Server {
	return &Server{custom: custom}
}

// SetLexicon installs the lexicon snapshot used by subsequent checks.
func (s *Server) SetLexicon(l *lexicon.Lexicon) { s.lex.Store(l) }

// Lexicon returns the current snapshot; nil before a load completes.
func (s *Server) Lexicon() *lexicon.Lexicon { return s.lex.Load() }

// LoadLexicon loads source (file path or URL) and installs the result.
// A failed load leaves the server running on the empty lexicon.
func (s *Server) LoadLexicon(ctx context.Context, source string) {
	l, err := lexicon.Load(ctx, source)
	if err != nil {
		log.Printf("lexicon load failed, spell checks disabled: %v", err)
		return
	}
	s.SetLexicon(l)
	log.Printf("lexicon loaded: %d words", l.Len())
}

// CheckRequest is the HTTP request body for /v1/check.
type CheckRequest struct {
	Text    string         `json:"text"`              // required
	Margins *model.Margins `json:"margins,omitempty"` // optional, centimeters
	Words   []string       `json:"words,omitempty"`   // inline protected words
	Dict    *Dict          `json:"dict,omitempty"`    // user dictionary {"words":[...]}
}

// CheckHandler handles POST /v1/check.
func (s *Server) CheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	dict := s.buildDict(r.Context(), &req)
	res := CheckWithDict(req.Text, s.Lexicon(), req.Margins, dict)

	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Fprint(w, string(out))
}

// buildDict merges inline words, the request dictionary and the shared
// Redis custom dictionary. Returns nil when all three are absent.
func (s *Server) buildDict(ctx context.Context, req *CheckRequest) *Dict {
	var words []string
	words = append(words, req.Words...)
	if req.Dict != nil {
		words = append(words, req.Dict.Words...)
	}
	if s.custom != nil {
		stored, err := s.custom.All(ctx)
		if err != nil {
			log.Printf("custom dict unavailable: %v", err)
		} else {
			words = append(words, stored...)
		}
	}
	if len(words) == 0 {
		return nil
	}
	return NewDict(words...)
}

// CustomWordHandler handles POST /api/v1/custom-word.
func (s *Server) CustomWordHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if s.custom == nil {
		http.Error(w, "custom dictionary not configured", http.StatusServiceUnavailable)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Word == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
		return
	}
	if err := s.custom.Add(r.Context(), req.Word); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// CustomWordDeleteHandler handles DELETE /api/v1/custom-word/{word}.
func (s *Server) CustomWordDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	if s.custom == nil {
		http.Error(w, "custom dictionary not configured", http.StatusServiceUnavailable)
		return
	}
	word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
	if word == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "word is required"})
		return
	}
	if err := s.custom.Remove(r.Context(), word); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HealthHandler handles GET /health.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"service": "ejaan",
		"lexicon": s.Lexicon().Len(),
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

// Routes wires every handler onto a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/check", s.CheckHandler)
	mux.HandleFunc("/api/v1/custom-word", s.CustomWordHandler)
	mux.HandleFunc("/api/v1/custom-word/", s.CustomWordDeleteHandler)
	mux.HandleFunc("/health", s.HealthHandler)
	mux.HandleFunc("/openapi.json", OpenAPIHandler)
	mux.HandleFunc("/", DocsHandler)
	return mux
}
