package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(base string) *resty.Client {
	return resty.New().
		SetBaseURL(base).
		SetTimeout(10 * time.Second).
		SetRedirectPolicy(resty.NoRedirectPolicy())
}

// runAdd submits the create-entry form, the same POST the web page issues.
func runAdd(base, date, category, text string, out io.Writer) error {
	resp, err := newClient(base).R().
		SetFormData(map[string]string{
			"date":     date,
			"category": category,
			"text":     text,
		}).
		Post("/")
	// Resty reports the blocked redirect as an error; the 303 itself is success.
	if err != nil && resp.StatusCode() != http.StatusSeeOther {
		return fmt.Errorf("create entry: %w", err)
	}
	if resp.StatusCode() != http.StatusSeeOther {
		return fmt.Errorf("create entry: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Fprintln(out, "entry created")
	return nil
}

// runHealth prints the health endpoint response.
func runHealth(base string, out io.Writer) error {
	resp, err := newClient(base).R().Get("/api/health")
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	fmt.Fprintln(out, resp.String())
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("service unhealthy: status %d", resp.StatusCode())
	}
	return nil
}
