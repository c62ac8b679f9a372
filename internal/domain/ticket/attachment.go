package ticket

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// allowedExtensions is the upload allow-list, matched case-insensitively
// against the original filename.
var allowedExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".doc":  true,
	".docx": true,
}

// Attachment is a file uploaded against a ticket. StoredName is the
// collision-resistant name on disk; OriginalName is what the user sent.
type Attachment struct {
	id           uint
	ticketID     uint
	storedName   string
	originalName string
	filePath     string
	fileSize     int64
	mimeType     string
	createdAt    time.Time
}

func NewAttachment(ticketID uint, storedName, originalName, filePath string, fileSize int64, mimeType string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if strings.TrimSpace(originalName) == "" {
		return nil, fmt.Errorf("original filename is required")
	}
	if !AllowedExtension(originalName) {
		return nil, fmt.Errorf("file type not allowed: %s", filepath.Ext(originalName))
	}

	return &Attachment{
		ticketID:     ticketID,
		storedName:   storedName,
		originalName: originalName,
		filePath:     filePath,
		fileSize:     fileSize,
		mimeType:     mimeType,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	storedName, originalName, filePath string,
	fileSize int64,
	mimeType string,
	createdAt time.Time,
) *Attachment {
	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		storedName:   storedName,
		originalName: originalName,
		filePath:     filePath,
		fileSize:     fileSize,
		mimeType:     mimeType,
		createdAt:    createdAt,
	}
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Attachment) ID() uint { return a.id }
func (a *Attachment) TicketID() uint { return a.ticketID }
func (a *Attachment) StoredName() string { return a.storedName }
func (a *Attachment) OriginalName() string { return a.originalName }
func (a *Attachment) FilePath() string { return a.filePath }
func (a *Attachment) FileSize() int64 { return a.fileSize }
func (a *Attachment) MimeType() string { return a.mimeType }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

// AllowedExtension reports whether the filename has an allow-listed extension.
func AllowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}
