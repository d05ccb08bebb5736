package response

// Business status codes carried in the envelope. 0 means success.
const (
	CodeBadRequest     = 400
	CodeUnauthorized   = 401
	CodeNotFound       = 404
	CodeUpstreamFailed = 502
	CodeInternal       = 500
)
