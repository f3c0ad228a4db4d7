package models

import "time"

// User is the demo account profile returned on login.
type User struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Initials    string `json:"initials"`
	Role        string `json:"role"`
}

// LoginResponse wraps the login result.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// Client is one of the demo client records served by GET /api/clients.
type Client struct {
	ID           string `json:"id"`
	Initials     string `json:"initials"`
	Diagnosis    string `json:"diagnosis"`
	Therapy      string `json:"therapy"`
	LastSession  string `json:"lastSession"`
	SessionCount int    `json:"sessionCount"`
	Status       string `json:"status"`
}

// TherapyPlan is one of the demo plan records served by GET /api/therapy-plans.
type TherapyPlan struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Goals     []string  `json:"goals"`
	NextSteps []string  `json:"nextSteps"`
	Created   time.Time `json:"created"`
}

// Compliance holds the individual DSGVO check flags.
type Compliance struct {
	DataEncryption    bool      `json:"dataEncryption"`
	AccessLogs        bool      `json:"accessLogs"`
	ConsentManagement bool      `json:"consentManagement"`
	BackupCompliance  bool      `json:"backupCompliance"`
	LastCheck         time.Time `json:"lastCheck"`
}

// ComplianceReport is the body of GET /api/dsgvo-status.
type ComplianceReport struct {
	Compliance      Compliance `json:"compliance"`
	Score           int        `json:"score"`
	Recommendations []string   `json:"recommendations"`
	NextCheck       time.Time  `json:"nextCheck"`
}

// ServiceStatus reports readiness of the optional subsystems.
type ServiceStatus struct {
	LLM     bool `json:"llm"`
	Uploads bool `json:"uploads"`
	Static  bool `json:"static"`
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version"`
	Services  ServiceStatus `json:"services"`
}

// IntegrationTestResult is the simulated probe outcome for
// POST /api/test-integration.
type IntegrationTestResult struct {
	Connectivity   bool      `json:"connectivity"`
	Authentication bool      `json:"authentication"`
	DataSync       bool      `json:"dataSync"`
	Encryption     bool      `json:"encryption"`
	System         string    `json:"system"`
	Timestamp      time.Time `json:"timestamp"`
}
