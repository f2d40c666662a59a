package dto

// FieldCommentRequest stores or clears one field annotation.
type FieldCommentRequest struct {
	Field   string `json:"field" binding:"required"`
	Comment string `json:"comment"`
}
