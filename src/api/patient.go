package api

import (
	"context"
	"fmt"

	"curalink-client/src/models"
	"curalink-client/src/schemas"
)

// AnalyzeCondition sends a free-text condition description to the AI
// analysis endpoint and returns the analysis text.
func (c *Client) AnalyzeCondition(ctx context.Context, text string) (string, error) {
	var result schemas.AnalyzeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(schemas.AnalyzeRequest{Text: text}).
		SetResult(&result).
		Post("/api/patient/analyze")
	if err != nil {
		c.logger.WithError(err).Error("Condition analysis request failed")
		return "", fmt.Errorf("condition analysis failed: %w", err)
	}
	if resp.IsError() {
		if msg := remoteMessage(resp); msg != "" {
			return "", fmt.Errorf("condition analysis failed: %s", msg)
		}
		return "", fmt.Errorf("condition analysis failed with status %d", resp.StatusCode())
	}
	if result.Analysis == "" {
		return "No analysis result found.", nil
	}
	return result.Analysis, nil
}

// SaveProfile persists the patient profile on the backend.
func (c *Client) SaveProfile(ctx context.Context, profile models.PatientProfile) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(profile).
		Post("/api/patient/profile")
	if err != nil {
		c.logger.WithError(err).Error("Failed to save patient profile")
		return models.NewRemoteWriteError("save profile", 0, err.Error())
	}
	if resp.IsError() {
		return models.NewRemoteWriteError("save profile", resp.StatusCode(), remoteMessage(resp))
	}
	return nil
}

// FetchProfile loads a previously saved patient profile.
func (c *Client) FetchProfile(ctx context.Context, userID string) (models.PatientProfile, error) {
	var profile models.PatientProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&profile).
		Get("/api/patient/profile/" + userID)
	if err != nil {
		c.logger.WithError(err).Error("Failed to fetch patient profile")
		return models.PatientProfile{}, models.NewRemoteReadError(0, err.Error())
	}
	if resp.IsError() {
		return models.PatientProfile{}, models.NewRemoteReadError(resp.StatusCode(), remoteMessage(resp))
	}
	return profile, nil
}
