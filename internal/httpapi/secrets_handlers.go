package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"jobyaari-engine/internal/config"
	"jobyaari-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setAPIKeyReq struct {
	APIKey string `json:"api_key"`
}

func (h SecretsHandler) account() string {
	return h.CfgVal.Load().(config.Config).LLM.KeyringAccount
}

func (h SecretsHandler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"stored": secrets.HasKeychainEntry(h.account())})
}

func (h SecretsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req setAPIKeyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeInvalidJSON, "invalid json")
		return
	}
	if err := secrets.SetAPIKey(h.account(), req.APIKey); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeKeyStoreFailed, "failed to store api key: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := secrets.DeleteAPIKey(h.account()); err != nil {
		WriteError(w, r, http.StatusInternalServerError, CodeKeyDeleteFailed, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
