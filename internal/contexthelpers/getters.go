package contexthelpers

import (
	"context"
)

// CurrentUserID returns the session-scoped user ID or the empty string when
// the request has no session user.
func CurrentUserID(ctx context.Context) string {
	userID, ok := ctx.Value(CurrentUserIDContextKey).(string)
	if !ok {
		return ""
	}

	return userID
}

func TraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDContextKey).(string)
	if !ok {
		return ""
	}

	return traceID
}
