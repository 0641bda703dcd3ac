package webhook

// AckResponse is the fixed acknowledgement returned for every accepted
// event. Digistore24 retries deliveries that are not answered with 200,
// so the body never varies with the payload content.
type AckResponse struct {
	// Status is always "ok".
	Status string `json:"status"`
}
