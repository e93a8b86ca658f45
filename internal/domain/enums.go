package domain

// FileType represents the allowed contract file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeTXT:  "text/plain",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"docx": FileTypeDOCX,
	"txt":  FileTypeTXT,
}

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// FileStatus represents the lifecycle of an uploaded contract file.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)

// AnalysisStatus represents the lifecycle of a contract analysis.
type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusRunning   AnalysisStatus = "running"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

// RiskLevel is the coarse risk grade assigned to a contract or clause.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// AuditAction labels an entry in the contract audit trail.
type AuditAction string

const (
	AuditContractUploaded  AuditAction = "contract_uploaded"
	AuditContractDeleted   AuditAction = "contract_deleted"
	AuditAnalysisStarted   AuditAction = "analysis_started"
	AuditAnalysisCompleted AuditAction = "analysis_completed"
	AuditAnalysisFailed    AuditAction = "analysis_failed"
	AuditTemplateGenerated AuditAction = "template_generated"
	AuditReportExported    AuditAction = "report_exported"
)
