package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"firm_site_go/models"
)

// ErrSubmissionFailed matches every error returned by an InquirySubmitter
var ErrSubmissionFailed = errors.New("inquiry submission failed")

// TransportError means the webhook could not be reached or the exchange broke
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach contact webhook: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrSubmissionFailed }

// RejectedError means the webhook answered outside the 2xx range
type RejectedError struct {
	StatusCode int
	Status     string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("contact webhook rejected inquiry: %s", e.Status)
}

func (e *RejectedError) Is(target error) bool { return target == ErrSubmissionFailed }

// InquirySubmitter delivers a contact inquiry to wherever inquiries are handled
type InquirySubmitter interface {
	Submit(ctx context.Context, inquiry models.ContactInquiry) error
}

// maxDrainBytes caps how much of a webhook response body is read before closing
const maxDrainBytes = 64 << 10

// WebhookSubmitter relays inquiries as JSON to an automation webhook.
// It makes exactly one request per call and never retries.
type WebhookSubmitter struct {
	url    string
	client *http.Client
}

// NewWebhookSubmitter creates a submitter for the given endpoint.
// A zero timeout leaves the request bounded only by its context.
func NewWebhookSubmitter(url string, timeout time.Duration) *WebhookSubmitter {
	return &WebhookSubmitter{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Submit posts the inquiry. The response body is drained but never parsed.
func (s *WebhookSubmitter) Submit(ctx context.Context, inquiry models.ContactInquiry) error {
	body, err := EncodeInquiry(inquiry)
	if err != nil {
		return &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RejectedError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return nil
}

// EncodeInquiry renders the webhook payload. HTML escaping is off so values
// such as "Mergers & Acquisitions" go out byte-for-byte.
func EncodeInquiry(inquiry models.ContactInquiry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(inquiry); err != nil {
		return nil, fmt.Errorf("failed to encode inquiry: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
