package tracker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const updatePath = "/api/location/update"

type Pusher interface {
	Push(ctx context.Context, token string, fix Fix) error
}

// HTTPPusher posts fixes with fiber's client. A zero Timeout means the
// request waits as long as the transport allows.
type HTTPPusher struct {
	baseURL string
	Timeout time.Duration
}

func NewHTTPPusher(baseURL string) *HTTPPusher {
	return &HTTPPusher{baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *HTTPPusher) Push(ctx context.Context, token string, fix Fix) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.Post(p.baseURL + updatePath)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	agent.JSON(fix.Input())
	if p.Timeout > 0 {
		agent.Timeout(p.Timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if code < 200 || code >= 300 {
		return &StatusError{StatusCode: code, Body: string(body)}
	}
	return nil
}

// Rejected reports whether err came back from the server rather than from
// the network.
func Rejected(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
