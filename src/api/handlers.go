package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmahmalat/passgen/src/passgen"
)

func queryCount(c *gin.Context, name string, def int) (int, bool) {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || v < 0 || v >= passgen.MaxCategoryLength {
		return 0, false
	}
	return v, true
}

func queryBool(c *gin.Context, name string, def bool) (bool, bool) {
	v, err := strconv.ParseBool(c.DefaultQuery(name, strconv.FormatBool(def)))
	if err != nil {
		return false, false
	}
	return v, true
}

// Password generates one category-based password.
// Counts: letters (8), numbers (4), symbols (4).
// Enables: use_letters, use_numbers, use_symbols (all true).
func (h *Handlers) Password(c *gin.Context) {
	req := passgen.Request{}

	var ok bool
	if req.Letters.Count, ok = queryCount(c, "letters", 8); !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid letters count.")
		return
	}
	if req.Digits.Count, ok = queryCount(c, "numbers", 4); !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid numbers count.")
		return
	}
	if req.Symbols.Count, ok = queryCount(c, "symbols", 4); !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid symbols count.")
		return
	}
	if req.Letters.Enabled, ok = queryBool(c, "use_letters", true); !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid use_letters flag.")
		return
	}
	if req.Digits.Enabled, ok = queryBool(c, "use_numbers", true); !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid use_numbers flag.")
		return
	}
	if req.Symbols.Enabled, ok = queryBool(c, "use_symbols", true); !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid use_symbols flag.")
		return
	}

	h.handleGenerate(c, func() (string, gin.H, int, string) {
		src, err := passgen.AcquireFrom(h.r)
		if err != nil {
			h.markFailure(err)
			return "", nil, http.StatusInternalServerError, "Error acquiring the entropy source."
		}
		defer src.Release()

		res, err := passgen.Generate(src, req)
		if err != nil {
			var verr *passgen.ValidationError
			if errors.As(err, &verr) {
				return "", nil, http.StatusBadRequest, verr.Error()
			}
			h.markFailure(err)
			return "", nil, http.StatusInternalServerError, "Error generating the password."
		}

		return res.Password, gin.H{
			"password": res.Password,
			"length":   res.Length,
			"letters":  res.Letters,
			"numbers":  res.Digits,
			"symbols":  res.Symbols,
		}, 0, ""
	})
}

// Simple generates one password from a single pool (no shuffle).
// Params: length (16), symbols (true).
func (h *Handlers) Simple(c *gin.Context) {
	length, ok := queryCount(c, "length", passgen.DefaultBatchLength)
	if !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid length.")
		return
	}

	includeSymbols, ok := queryBool(c, "symbols", true)
	if !ok {
		responder{c}.err(http.StatusBadRequest, "Invalid symbols flag.")
		return
	}

	h.handleGenerate(c, func() (string, gin.H, int, string) {
		src, err := passgen.AcquireFrom(h.r)
		if err != nil {
			h.markFailure(err)
			return "", nil, http.StatusInternalServerError, "Error acquiring the entropy source."
		}
		defer src.Release()

		pw, err := passgen.GenerateSimple(src, length, includeSymbols)
		if err != nil {
			var verr *passgen.ValidationError
			if errors.As(err, &verr) {
				return "", nil, http.StatusBadRequest, verr.Error()
			}
			h.markFailure(err)
			return "", nil, http.StatusInternalServerError, "Error generating the password."
		}

		return pw, gin.H{
			"password": pw,
			"length":   length,
			"symbols":  includeSymbols,
		}, 0, ""
	})
}

func (h *Handlers) Health(c *gin.Context) {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "UNHEALTHY: missing health monitor")
		return
	}

	ok, msg, t := h.health.Snapshot()
	if ok {
		responder{c}.ok(
			fmt.Sprintf("OK (last checked %s)", t.Format(time.RFC3339)),
			gin.H{"ok": true, "last_checked": t.Format(time.RFC3339)},
			"health-check",
		)
		return
	}

	responder{c}.err(http.StatusServiceUnavailable,
		fmt.Sprintf("UNHEALTHY: %s (last checked %s)", msg, t.Format(time.RFC3339)))
}

func (h *Handlers) markFailure(err error) {
	if h.health != nil {
		h.health.Set(false, "error fetching random bytes: "+err.Error())
	}
	if h.log != nil {
		h.log.Error(err)
	}
}
