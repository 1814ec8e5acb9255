package dto

// QueueWeeklyDigestRequest represents the request to queue a weekly digest email.
type QueueWeeklyDigestRequest struct {
	RecipientEmail string  `json:"recipient_email" binding:"required,email"`
	RecipientName  string  `json:"recipient_name"`
	SalonName      string  `json:"salon_name"`
	Location       *string `json:"location,omitempty"`
}

// QueueWeeklyDigestResponse represents the response after queueing a digest.
type QueueWeeklyDigestResponse struct {
	Data QueueWeeklyDigestData `json:"data"`
}

// QueueWeeklyDigestData holds the queued digest acknowledgement.
type QueueWeeklyDigestData struct {
	Status string `json:"status"`
}
