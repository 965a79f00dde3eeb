package common

// AuthorizationHeaderName carries the admin access token as "Bearer <jwt>".
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "
