package common

// AuthorizationHeaderName carries the session token on protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only authorization scheme the API accepts.
const BearerScheme = "Bearer"

// MessageKey is the JSON field every error and acknowledgement body uses.
const MessageKey = "message"
