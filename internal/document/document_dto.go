package document

type UploadDocumentRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

type DocumentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	FilePath     string `json:"filePath"`
	FileURL      string `json:"fileUrl"`
	FileSize     int64  `json:"fileSize"`
	MimeType     string `json:"mimeType"`
	FileType     string `json:"fileType"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// GroupedDocuments maps fileType to its documents.
type GroupedDocuments map[string][]DocumentResponse
