package middleware

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
)

// slowRequestThreshold acima do qual a requisição é registrada como lenta
const slowRequestThreshold = 2 * time.Second

// LoggingMiddleware registra informações sobre cada requisição feita pelo cliente resty.
// Os hooks apenas observam: nunca alteram a requisição nem o resultado.
func LoggingMiddleware(client *resty.Client, logger log.Logger) *resty.Client {
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		logger.WithContext(r.Context()).WithFields(log.Fields{
			"method": r.Method,
			"url":    r.URL,
		}).Debug("snap: request started")
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		duration := res.Time()
		fields := log.Fields{
			"method":      res.Request.Method,
			"url":         res.Request.URL,
			"status_code": res.StatusCode(),
			"duration_ms": duration.Milliseconds(),
		}
		entry := logger.WithContext(res.Request.Context()).WithFields(fields)

		msg := fmt.Sprintf("snap: request completed in %s", formatDuration(duration))
		switch {
		case res.StatusCode() >= 500:
			entry.Error(msg)
		case res.StatusCode() >= 300:
			entry.Warn(msg)
		default:
			entry.Debug(msg)
		}

		if duration > slowRequestThreshold {
			entry.Warnf("snap: slow request: %s", duration)
		}
		return nil
	})

	client.OnError(func(r *resty.Request, err error) {
		logger.WithContext(r.Context()).WithError(err).WithFields(log.Fields{
			"method": r.Method,
			"url":    r.URL,
		}).Error("snap: request could not be completed")
	})

	return client
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}
