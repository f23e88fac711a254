package dto

// SaveNoteRequest содержит данные черновика заметки.
// media_url приходит от конвейера вложений; null означает отсутствие вложения.
type SaveNoteRequest struct {
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	MediaURL *string `json:"media_url"`
}

// AttachMediaResponse содержит публичный URL загруженного вложения.
type AttachMediaResponse struct {
	MediaURL string `json:"media_url"`
}
