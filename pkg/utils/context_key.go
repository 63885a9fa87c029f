package utils

type ContextKey string

const RequestIDKey ContextKey = "requestId"
