package dto

// EmailCompletedDTO triggers the attachment mail for a completed request.
// CustomBody overrides the default text when present; ImageName addresses
// the stored label image by its original filename.
type EmailCompletedDTO struct {
	RequestID  string  `json:"request_id" binding:"required"`
	CustomBody *string `json:"custom_body"`
	ImageName  string  `json:"image_name" binding:"required"`
}

// EmailQuoteDTO sends the custom quote text for a request in QuoteSent.
type EmailQuoteDTO struct {
	RequestID  string `json:"request_id" binding:"required"`
	CustomBody string `json:"custom_body" binding:"required"`
}
