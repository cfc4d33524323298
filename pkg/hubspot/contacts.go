package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// CreateOrUpdateContact looks a contact up by email, then creates or
// patches it. HubSpot treats email as the contact's natural key, so
// the upsert is safe to repeat.
func (s *service) CreateOrUpdateContact(ctx context.Context, contact Contact) (ContactRecord, error) {
	var zero ContactRecord

	if contact.Email == "" {
		return zero, errors.New("contact email is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, found, err := s.searchByEmail(ctx, contact.Email)
	if err != nil {
		return zero, err
	}

	if !found {
		record, err := s.createContact(ctx, contact)
		if err != nil {
			return zero, err
		}
		record.Created = true
		return record, nil
	}

	return s.updateContact(ctx, existing.ID, contact)
}

func (s *service) searchByEmail(ctx context.Context, email string) (ContactRecord, bool, error) {
	var zero ContactRecord

	reqBody := searchRequest{
		FilterGroups: []filterGroup{
			{
				Filters: []filter{
					{PropertyName: "email", Operator: "EQ", Value: email},
				},
			},
		},
		Limit: 1,
	}

	var resp searchResponse
	err := s.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", reqBody, &resp)
	if err != nil {
		return zero, false, fmt.Errorf("search contact: %w", err)
	}

	if resp.Total == 0 || len(resp.Results) == 0 {
		return zero, false, nil
	}

	return resp.Results[0], true, nil
}

func (s *service) createContact(ctx context.Context, contact Contact) (ContactRecord, error) {
	var record ContactRecord

	err := s.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", upsertRequest{
		Properties: contact.properties(),
	}, &record)
	if err != nil {
		return record, fmt.Errorf("create contact: %w", err)
	}

	s.logger.InfoContext(ctx, "hubspot contact created",
		slog.String("contact_id", record.ID),
	)

	return record, nil
}

func (s *service) updateContact(ctx context.Context, id string, contact Contact) (ContactRecord, error) {
	var record ContactRecord

	err := s.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+id, upsertRequest{
		Properties: contact.properties(),
	}, &record)
	if err != nil {
		return record, fmt.Errorf("update contact: %w", err)
	}

	s.logger.InfoContext(ctx, "hubspot contact updated",
		slog.String("contact_id", record.ID),
	)

	return record, nil
}

func (s *service) do(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.apiBase+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", applicationJSON)
	req.Header.Set("Accept", applicationJSON)
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)

	log := s.logger.With(
		slog.String("method", method),
		slog.String("path", path),
	)

	start := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(start)

	if err != nil {
		log.Error("hubspot request failed",
			slog.Any("error", err),
			slog.Duration("latency", latency),
		)
		return err
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("hubspot non-2xx",
			slog.Int("status", resp.StatusCode),
			slog.String("body_snippet", snippet(respBytes)),
		)
		return &APIError{StatusCode: resp.StatusCode, Body: respBytes}
	}

	if out == nil || len(respBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
