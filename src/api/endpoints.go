package api

import (
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmahmalat/passgen/src/passgen"
)

// Handlers serves password generation over HTTP. The entropy stream r is
// shared across requests (wrap it with passgen.NewLockedReader); each
// request acquires its own scoped Source over it.
type Handlers struct {
	r      io.Reader
	health *passgen.Health
	log    *zap.SugaredLogger
}

func NewHandlers(r io.Reader, h *passgen.Health, log *zap.SugaredLogger) *Handlers {
	return &Handlers{r: r, health: h, log: log}
}

func (h *Handlers) entropyOK(c *gin.Context) bool {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "entropy source unhealthy: missing health monitor")
		return false
	}

	ok, msg, _ := h.health.Snapshot()
	if ok {
		return true
	}

	responder{c}.err(http.StatusServiceUnavailable, "entropy source unhealthy: "+msg)
	return false
}

func (h *Handlers) requestID() (string, error) {
	id, err := passgen.NewUUIDv4(h.r)
	if err != nil && h.health != nil {
		h.health.Set(false, "error fetching random bytes for request id: "+err.Error())
	}
	return id, err
}

/*
handleGenerate enforces:
1. Entropy health check
2. Password generation (NO request id here)
3. Error handling
4. Request id generation ONLY after success
5. JSON vs plaintext response
*/
func (h *Handlers) handleGenerate(
	c *gin.Context,
	work func() (text string, payload gin.H, status int, errMsg string),
) {
	if !h.entropyOK(c) {
		return
	}

	text, payload, status, errMsg := work()
	if errMsg != "" {
		responder{c}.err(status, errMsg)
		return
	}

	requestID, err := h.requestID()
	if err != nil {
		responder{c}.err(http.StatusInternalServerError, "Error generating request id.")
		return
	}

	responder{c}.ok(text, payload, requestID)
}

func APIKeyFromEnv() string { return os.Getenv("API_KEY") }

func CheckHeader(headerName, expectedValue string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth disabled if not configured
		if expectedValue == "" {
			c.Next()
			return
		}

		if c.GetHeader(headerName) != expectedValue {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
