package utils

import (
	"clinicore-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogBusinessEvent records a domain-level event alongside the request trace.
func LogBusinessEvent(log *zap.Logger, event, requestID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}, fields...)
	log.Info("Business event", allFields...)
}
