package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ContractFile stores metadata about an uploaded contract document.
type ContractFile struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Analysis represents one LLM risk analysis of a contract file. A contract
// has at most one current analysis; re-analyzing replaces the previous row
// and clears the chat history.
type Analysis struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	ContractID      uuid.UUID       `db:"contract_id" json:"contract_id"`
	Status          AnalysisStatus  `db:"status" json:"status"`
	ContractType    string          `db:"contract_type" json:"contract_type"`
	RiskLevel       RiskLevel       `db:"risk_level" json:"risk_level"`
	RiskScore       int             `db:"risk_score" json:"risk_score"`
	Result          json.RawMessage `db:"result" json:"result"`
	ExtractedFields json.RawMessage `db:"extracted_fields" json:"extracted_fields"`
	Entities        json.RawMessage `db:"entities" json:"entities"`
	ModelUsed       string          `db:"model_used" json:"model_used"`
	AnalysisError   string          `db:"analysis_error" json:"analysis_error"`
	CreatedBy       uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	CompletedAt     *time.Time      `db:"completed_at" json:"completed_at"`
}

// ChatMessage is one turn in the per-contract Q&A history.
type ChatMessage struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ContractID uuid.UUID `db:"contract_id" json:"contract_id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Role       ChatRole  `db:"role" json:"role"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// AuditEvent records a contract lifecycle action for the audit trail.
type AuditEvent struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	ContractID uuid.UUID   `db:"contract_id" json:"contract_id"`
	UserID     uuid.UUID   `db:"user_id" json:"user_id"`
	Action     AuditAction `db:"action" json:"action"`
	Detail     string      `db:"detail" json:"detail"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}
