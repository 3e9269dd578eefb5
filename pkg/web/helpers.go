package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	// ErrDecode reports a request body that is not valid JSON for the target type.
	ErrDecode = errors.New("invalid JSON body")
	// ErrBodyTooLarge reports a request body over the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		RespondError(w, logger, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	response, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		logger.Error("Error encoding error response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// DecodeJSON reads the whole request body and unmarshals it into dst.
// An empty body leaves dst untouched, as if "{}" had been sent.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// PathParam returns the chi URL parameter key, percent-decoded and trimmed of surrounding whitespace.
func PathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	// chi matches against RawPath when it is set, so the value may still be escaped
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
	}
	return strings.TrimSpace(value)
}
