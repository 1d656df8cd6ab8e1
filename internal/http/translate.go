package http

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// maxTextLength bounds ad hoc translation input; longer text belongs in a
// bulk run.
const maxTextLength = 5000

type translatePayload struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

func (p translatePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Text, validation.Required, validation.RuneLength(1, maxTextLength)),
		validation.Field(&p.SourceLang, validation.Required),
		validation.Field(&p.TargetLang, validation.Required),
	)
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Cached         bool   `json:"cached"`
	Skipped        bool   `json:"skipped,omitempty"`
}

func (api *API) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.translator == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload translatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}

	result, err := api.translator.Translate(r.Context(), payload.Text, payload.SourceLang, payload.TargetLang)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{
		TranslatedText: result.TranslatedText,
		Cached:         result.Cached,
		Skipped:        result.Skipped,
	})
}

type bulkTranslatePayload struct {
	Table  string   `json:"table"`
	ID     string   `json:"id"`
	Fields []string `json:"fields,omitempty"`
}

func (p bulkTranslatePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Table, validation.Required),
		validation.Field(&p.ID, validation.Required),
	)
}

type bulkTranslateResponse struct {
	Success          bool   `json:"success"`
	FieldsTranslated int    `json:"fieldsTranslated"`
	LanguagesCount   int    `json:"languagesCount"`
	Status           string `json:"status"`
}

func (api *API) handleBulkTranslate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.bulk == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload bulkTranslatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}
	id, err := parseUUID(payload.ID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}

	report, err := api.bulk.TranslateRecord(r.Context(), payload.Table, id, payload.Fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bulkTranslateResponse{
		Success:          true,
		FieldsTranslated: report.FieldsTranslated,
		LanguagesCount:   report.LanguagesCount,
		Status:           string(report.Status),
	})
}
