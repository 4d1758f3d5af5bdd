package profilefile

import "io"

// UploadInput is a file already read off the wire by the handler.
type UploadInput struct {
	OriginalName string
	Size         int64
	ContentType  string
	Body         io.Reader
	FileType     string
	Category     string
	Description  string
}

type ListFilesQuery struct {
	Category string `form:"category"`
	FileType string `form:"fileType"`
}

type UpdateFileInfoRequest struct {
	FileType    *string `json:"fileType"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

type Download struct {
	Body         io.ReadCloser
	Size         int64
	ContentType  string
	OriginalName string
}

type ProfileFileResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	EmployeeName   string  `json:"employeeName,omitempty"`
	EmployeeNumber string  `json:"employeeNumber,omitempty"`
	FileName       string  `json:"fileName"`
	OriginalName   string  `json:"originalName"`
	FilePath       string  `json:"filePath"`
	FileURL        string  `json:"fileUrl"`
	FileSize       int64   `json:"fileSize"`
	MimeType       string  `json:"mimeType"`
	FileType       string  `json:"fileType"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	UploadedBy     string  `json:"uploadedBy"`
	UploadedByName string  `json:"uploadedByName,omitempty"`
	UpdatedBy      *string `json:"updatedBy,omitempty"`
	UploadedAt     string  `json:"uploadedAt"`
	UpdatedAt      string  `json:"updatedAt"`
}
