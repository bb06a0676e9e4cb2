package handlers

import (
	"strconv"
	"strings"

	"foodreview/internal/service"
)

// parsePaginationParams never fails: a missing, non-numeric or non-positive
// value falls back to its default. limit is capped at service.MaxLimit.
func parsePaginationParams(pageStr, limitStr string) (int64, int64) {
	limit := parsePositive(limitStr, service.DefaultLimit)
	if limit > service.MaxLimit {
		limit = service.MaxLimit
	}
	return parsePositive(pageStr, service.DefaultPage), limit
}

func parsePositive(raw string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
