package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/marga120/mds-application-sub000/internal/config"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/logger"
)

// Envelope is the response shape every collaborator write shares. A
// success=false response is a recoverable business rejection, not an
// exception: the message is surfaced to the operator verbatim.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client talks to the external admissions record system. Transport failures
// are retried transparently by retryablehttp and then surfaced as a generic
// retryable error; the caller's pending edit survives so the operator can
// retry without re-entering data.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	logger  *logger.Logger
}

func NewClient(cfg *config.Configuration, log *logger.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = cfg.Collaborator.Timeout
	rc.RetryMax = cfg.Collaborator.RetryMax
	rc.RetryWaitMin = cfg.Collaborator.RetryWaitMin
	rc.RetryWaitMax = cfg.Collaborator.RetryWaitMax
	rc.Logger = nil

	return &Client{
		http:    rc,
		baseURL: strings.TrimRight(cfg.Collaborator.BaseURL, "/"),
		logger:  log,
	}
}

// Get issues a GET and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	body, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return ierr.WithError(err).
			WithHint("The admissions system returned an unreadable response").
			Mark(ierr.ErrHTTPClient)
	}
	return nil
}

// Put issues a write and interprets the shared {success, message} envelope.
func (c *Client) Put(ctx context.Context, path string, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode the request payload").
			Mark(ierr.ErrSystem)
	}

	body, err := c.send(ctx, http.MethodPut, path, encoded)
	if err != nil {
		return err
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ierr.WithError(err).
			WithHint("The admissions system returned an unreadable response").
			Mark(ierr.ErrHTTPClient)
	}

	if !envelope.Success {
		// surface the collaborator's message verbatim
		return ierr.NewError("collaborator rejected the write").
			WithHint(envelope.Message).
			Mark(ierr.ErrCollaboratorRejected)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrHTTPClient)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("The admissions system is unreachable, please retry").
			Mark(ierr.ErrHTTPClient)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("The admissions system is unreachable, please retry").
			Mark(ierr.ErrHTTPClient)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ierr.NewError("resource not found").
			WithHint("The requested applicant record does not exist").
			Mark(ierr.ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		c.logger.Warnw("collaborator call failed",
			"method", method,
			"path", path,
			"status_code", resp.StatusCode,
		)
		return nil, ierr.NewError("collaborator call failed").
			WithHintf("The admissions system responded with status %d", resp.StatusCode).
			WithReportableDetails(map[string]any{
				"status_code": resp.StatusCode,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	return respBody, nil
}
