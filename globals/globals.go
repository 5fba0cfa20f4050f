package globals

import (
	"context"
)

// Context keys
type ContextKey string

const ClientIPKey ContextKey = "clientIP"

var Ctx = context.Background()
