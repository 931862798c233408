package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/frankli0324/go-rest/internal"
	"github.com/frankli0324/go-rest/internal/model"
)

// Logging emits one structured event per call: method, address, status and
// elapsed time. transport failures log at error level and propagate
// untouched.
func Logging(logger zerolog.Logger) internal.Middleware {
	return func(next model.Transport) model.Transport {
		return func(ctx context.Context, address string, req *model.Request) (*model.Response, error) {
			start := time.Now()
			resp, err := next(ctx, address, req)
			if err != nil {
				logger.Error().Err(err).
					Str("method", req.Method).
					Str("address", address).
					Dur("elapsed", time.Since(start)).
					Msg("transport call failed")
				return nil, err
			}
			logger.Debug().
				Str("method", req.Method).
				Str("address", address).
				Int("status", resp.StatusCode).
				Dur("elapsed", time.Since(start)).
				Msg("transport call")
			return resp, nil
		}
	}
}
