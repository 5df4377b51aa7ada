package api

import "errors"

type UpdateSettingsRequest struct {
	Actor  string             `json:"actor"`
	Fields map[string]float64 `json:"fields"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if r.Actor == "" {
		return errors.New("error.validation.actor.required")
	}
	if len(r.Fields) == 0 {
		return errors.New("error.validation.fields.required")
	}
	return nil
}

type ResetSettingsRequest struct {
	Actor string `json:"actor"`
}

func (r *ResetSettingsRequest) Validate() error {
	if r.Actor == "" {
		return errors.New("error.validation.actor.required")
	}
	return nil
}
