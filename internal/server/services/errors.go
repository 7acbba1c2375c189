package services

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// storeErr classifies a repository failure: connectivity problems and
// exceeded deadlines surface as common.ErrorUnavailable so the transport can
// answer 503 instead of hanging or leaking internals. Sentinels pass through.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return common.ErrorUnavailable
	}
	return err
}
