package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnify/learnify-ui/internal/domain/landing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ClassNone},
		{name: "pending", err: fmt.Errorf("logout: %w", landing.ErrLogoutPending), want: ClassPending},
		{name: "deadline", err: &landing.FetchError{Cause: context.DeadlineExceeded}, want: ClassTimeout},
		{name: "canceled", err: &landing.LogoutError{Cause: context.Canceled}, want: ClassCanceled},
		{name: "bad gateway", err: &landing.FetchError{StatusCode: 502, Cause: goerrors.New("x")}, want: "status_502"},
		{name: "unauthorized logout", err: &landing.LogoutError{StatusCode: 401}, want: "status_401"},
		{name: "decode on 200", err: &landing.FetchError{StatusCode: 200, Cause: goerrors.New("eof")}, want: ClassDecode},
		{name: "transport", err: &landing.FetchError{Cause: goerrors.New("connection refused")}, want: ClassTransport},
		{name: "other", err: goerrors.New("boom"), want: ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
