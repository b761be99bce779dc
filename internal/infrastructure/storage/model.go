package storage

import (
	"time"

	"github.com/flightops/rostercore/internal/domain"
)

func solveStatusOf(s string) domain.SolveStatus {
	return domain.SolveStatus(s)
}

func timeFromUnixNano(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}
