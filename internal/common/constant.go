package common

// AuthorizationHeaderName carries the bearer token on inbound API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// RoleAdmin is the only role allowed to delete objects.
const RoleAdmin = "admin"
