package api

import (
	"context"

	"curalink-client/src/models"
	"curalink-client/src/schemas"
)

const trialsPath = "/api/trials"

// ListTrials fetches the full trials collection. Transport failures
// and non-2xx responses are reported as a RemoteReadError; the caller
// decides how to present them.
func (c *Client) ListTrials(ctx context.Context) ([]models.TrialRecord, error) {
	var payload []schemas.TrialPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(trialsPath)
	if err != nil {
		c.logger.WithError(err).Error("Failed to fetch trials")
		return nil, models.NewRemoteReadError(0, err.Error())
	}
	if resp.IsError() {
		return nil, models.NewRemoteReadError(resp.StatusCode(), remoteMessage(resp))
	}
	return schemas.ToRecords(payload), nil
}

// CreateTrial submits a new trial and returns the server-assigned record.
func (c *Client) CreateTrial(ctx context.Context, fields models.TrialFields) (models.TrialRecord, error) {
	var payload schemas.TrialPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(fields.Normalized()).
		SetResult(&payload).
		Post(trialsPath)
	if err != nil {
		c.logger.WithError(err).Error("Failed to create trial")
		return models.TrialRecord{}, models.NewRemoteWriteError("create trial", 0, err.Error())
	}
	if resp.IsError() {
		return models.TrialRecord{}, models.NewRemoteWriteError("create trial", resp.StatusCode(), remoteMessage(resp))
	}
	return payload.ToRecord(), nil
}

// UpdateTrial submits changed fields for an existing record. The
// server is the source of truth for the id's existence.
func (c *Client) UpdateTrial(ctx context.Context, id string, fields models.TrialFields) (models.TrialRecord, error) {
	var payload schemas.TrialPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(fields.Normalized()).
		SetResult(&payload).
		Put(trialsPath + "/" + id)
	if err != nil {
		c.logger.WithError(err).Error("Failed to update trial")
		return models.TrialRecord{}, models.NewRemoteWriteError("update trial", 0, err.Error())
	}
	if resp.IsError() {
		return models.TrialRecord{}, models.NewRemoteWriteError("update trial", resp.StatusCode(), remoteMessage(resp))
	}
	return payload.ToRecord(), nil
}

// DeleteTrial removes a record by id.
func (c *Client) DeleteTrial(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(trialsPath + "/" + id)
	if err != nil {
		c.logger.WithError(err).Error("Failed to delete trial")
		return models.NewRemoteWriteError("delete trial", 0, err.Error())
	}
	if resp.IsError() {
		return models.NewRemoteWriteError("delete trial", resp.StatusCode(), remoteMessage(resp))
	}
	return nil
}
