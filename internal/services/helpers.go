package services

import (
	"context"
	"encoding/json"

	"bookmystars_client/internal/api"
	"bookmystars_client/pkg/apperrors"
)

// callStandard performs a call against an endpoint speaking the standard
// envelope and returns its data on success.
func callStandard(ctx context.Context, client *api.Client, method, path string, body interface{}, domain string) (json.RawMessage, error) {
	resp, err := client.Call(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	env, err := api.DecodeEnvelope(resp)
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, apperrors.ServerError(domain, api.TruncateMessage(env.ErrorMessage(), 250), resp.StatusCode)
	}
	return env.Data, nil
}

// callProfile is callStandard for the style-profile/professionals-profile
// envelope family.
func callProfile(ctx context.Context, client *api.Client, method, path string, body interface{}, domain string) (json.RawMessage, error) {
	resp, err := client.Call(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	env, err := api.DecodeProfileEnvelope(resp)
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, apperrors.ServerError(domain, api.TruncateMessage(env.ErrorMessage(), 250), resp.StatusCode)
	}
	return env.Data, nil
}

// ValidationResult is what the form layer consumes: a flag plus one message
// per failing field. Validation failures never reach the network.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

func validResult() *ValidationResult {
	return &ValidationResult{IsValid: true}
}
