package shared

// TokenHeaderName is the HTTP header carrying the opaque session token on
// authenticated requests.
const TokenHeaderName = "X-Token"
