package contexthelpers

type contextKey string

const CurrentUserIDContextKey = contextKey("currentUserID")
const TraceIDContextKey = contextKey("traceID")
