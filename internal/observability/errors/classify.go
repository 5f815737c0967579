package errors

import (
	"context"
	goerrors "errors"
	"net"
	"strconv"

	"github.com/learnify/learnify-ui/internal/domain/landing"
)

// Error classes used as metric labels and log attributes.
const (
	ClassNone      = ""
	ClassTimeout   = "timeout"
	ClassCanceled  = "canceled"
	ClassTransport = "transport"
	ClassDecode    = "decode"
	ClassPending   = "pending"
	ClassUnknown   = "unknown"
)

// Classify maps an error onto a small, bounded label set.
// Backend status failures become "status_<code>" (e.g. status_502).
func Classify(err error) string {
	if err == nil {
		return ClassNone
	}

	switch {
	case goerrors.Is(err, landing.ErrLogoutPending):
		return ClassPending
	case goerrors.Is(err, context.DeadlineExceeded):
		return ClassTimeout
	case goerrors.Is(err, context.Canceled):
		return ClassCanceled
	}

	var netErr net.Error
	if goerrors.As(err, &netErr) && netErr.Timeout() {
		return ClassTimeout
	}

	if status := statusOf(err); status != 0 {
		if status >= 200 && status < 300 {
			return ClassDecode
		}
		return "status_" + strconv.Itoa(status)
	}

	var fe *landing.FetchError
	var le *landing.LogoutError
	if goerrors.As(err, &fe) || goerrors.As(err, &le) || netErr != nil {
		return ClassTransport
	}
	return ClassUnknown
}

func statusOf(err error) int {
	var fe *landing.FetchError
	if goerrors.As(err, &fe) {
		return fe.StatusCode
	}
	var le *landing.LogoutError
	if goerrors.As(err, &le) {
		return le.StatusCode
	}
	return 0
}
