package api

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"praxida/internal/auth"
	"praxida/internal/config"
	"praxida/internal/models"
	"praxida/internal/service/analysis"
	"praxida/internal/service/chat"
	"praxida/internal/storage"
)

const (
	maxUploadBytes = 10 << 20 // 10 MB

	serviceVersion = "2.0.0"

	integrationProbeDelay = 1500 * time.Millisecond
	complianceCheckCycle  = 30 * 24 * time.Hour
)

// Handler wires HTTP routes to the chat, analysis and upload services.
type Handler struct {
	chat          *chat.Service
	analysis      *analysis.Service
	auth          *auth.Service
	store         *storage.Store
	llmConfigured bool
	publicDir     string

	// demo records, fixed for the lifetime of the process
	clients []models.Client
	plans   []models.TherapyPlan
}

// NewHandler constructs a Handler instance.
func NewHandler(chatSvc *chat.Service, analysisSvc *analysis.Service, authSvc *auth.Service, store *storage.Store, cfg *config.Config) *Handler {
	return &Handler{
		chat:          chatSvc,
		analysis:      analysisSvc,
		auth:          authSvc,
		store:         store,
		llmConfigured: cfg.LLMConfigured(),
		publicDir:     cfg.PublicDir,
		clients:       demoClients(),
		plans:         demoTherapyPlans(time.Now().UTC()),
	}
}

// RegisterRoutes attaches all HTTP routes to the router. Unmatched paths are
// served from the public directory when a matching file exists and answered
// with a JSON 404 otherwise.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/login", h.login)
	api.POST("/chat", h.chatMessage)
	api.POST("/upload", h.upload)
	api.POST("/test-integration", h.testIntegration)
	api.GET("/clients", h.listClients)
	api.GET("/therapy-plans", h.listTherapyPlans)
	api.GET("/dsgvo-status", h.complianceStatus)
	api.GET("/health", h.health)
	router.NoRoute(h.serveStatic)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	_ = c.ShouldBindJSON(&req)
	user, ok := h.auth.Authenticate(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.LoginResponse{Success: false, Message: "Ungültige Anmeldedaten"})
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{Success: true, User: user})
}

// chatMessage never answers with an error status: a malformed body is treated
// as an empty message and gateway failures are absorbed by the service.
func (h *Handler) chatMessage(c *gin.Context) {
	var req models.ChatRequest
	_ = c.ShouldBindJSON(&req)
	reply := h.chat.Reply(c.Request.Context(), req.Message, req.HasAttachments)
	c.JSON(http.StatusOK, models.ChatReply{Reply: reply})
}

// allow-list pattern for upload types. The match is a lenient substring OR
// across extension and declared media type: a mismatch between the two still
// passes when either side matches.
var allowedTypeTokens = []string{"jpeg", "jpg", "png", "pdf", "doc", "docx", "txt"}

func matchesAllowedType(s string) bool {
	for _, token := range allowedTypeTokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

func isAllowedUpload(filename, mimeType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return matchesAllowedType(ext) || matchesAllowedType(strings.ToLower(mimeType))
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keine Datei hochgeladen"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datei zu groß (max. 10MB)"})
		return
	}
	mimeType := file.Header.Get("Content-Type")
	if !isAllowedUpload(file.Filename, mimeType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nicht unterstützter Dateityp"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler bei der Dateianalyse: " + err.Error()})
		return
	}
	stored, err := h.store.Save(src, file.Filename, mimeType)
	_ = src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Fehler bei der Dateianalyse: " + err.Error()})
		return
	}
	// the staged file must not outlive the request, on any exit path
	defer h.store.Remove(stored.StoredPath)

	result := h.analysis.Analyze(c.Request.Context(), stored)
	c.JSON(http.StatusOK, models.UploadResponse{
		Success:  true,
		Filename: stored.OriginalName,
		Analysis: result,
		FileType: stored.MimeType,
	})
}

func (h *Handler) testIntegration(c *gin.Context) {
	var req struct {
		System        string `json:"system"`
		ServerAddress string `json:"serverAddress"`
	}
	_ = c.ShouldBindJSON(&req)

	select {
	case <-c.Request.Context().Done():
		return
	case <-time.After(integrationProbeDelay):
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": models.IntegrationTestResult{
			Connectivity:   true,
			Authentication: true,
			DataSync:       true,
			Encryption:     true,
			System:         req.System,
			Timestamp:      time.Now().UTC(),
		},
		"message": "Verbindung zu " + req.System + " erfolgreich getestet",
	})
}

func (h *Handler) listClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.clients)
}

func (h *Handler) listTherapyPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.plans)
}

func (h *Handler) complianceStatus(c *gin.Context) {
	now := time.Now().UTC()
	c.JSON(http.StatusOK, models.ComplianceReport{
		Compliance: models.Compliance{
			DataEncryption:    true,
			AccessLogs:        true,
			ConsentManagement: true,
			BackupCompliance:  true,
			LastCheck:         now,
		},
		Score:           100,
		Recommendations: []string{},
		NextCheck:       now.Add(complianceCheckCycle),
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   serviceVersion,
		Services: models.ServiceStatus{
			LLM:     h.llmConfigured,
			Uploads: dirExists(h.store.Dir()),
			Static:  dirExists(h.publicDir),
		},
	})
}
