package service

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/ontio/explorer-nodes/pkg/app/errors"
	apphttp "github.com/ontio/explorer-nodes/pkg/app/http"
)

const (
	// addressVersion is the base58check version byte of an account address.
	addressVersion = 0x17
	addressLength  = 20

	compressedKeyLength   = 33
	uncompressedKeyLength = 65
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type countResponse struct {
	Count int64 `json:"count"`
}

// RegisterRoutes registers HTTP endpoints for the node service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/v2/nodes", func(r chi.Router) {
		r.Get("/on-chain", apphttp.HandleError(h.onChainInfos))
		r.Get("/on-chain/{public_key}", apphttp.HandleError(h.onChainInfo))
		r.Get("/off-chain", apphttp.HandleError(h.offChainInfos))
		r.Get("/off-chain/{public_key}", apphttp.HandleError(h.offChainInfo))
		r.Get("/bonus-histories", apphttp.HandleError(h.bonusHistories))
		r.Get("/bonuses-with-infos", apphttp.HandleError(h.bonusesWithInfos))
		r.Get("/{public_key}/latest-bonus", apphttp.HandleError(h.latestBonusByPublicKey))
		r.Get("/net", apphttp.HandleError(h.netNodes))
		r.Get("/net/active", apphttp.HandleError(h.activeNetNodes))
		r.Get("/count/sync", apphttp.HandleError(h.syncNodeCount))
		r.Get("/count/candidate", apphttp.HandleError(h.candidateNodeCount))
		r.Get("/count/consensus", apphttp.HandleError(h.consensusNodeCount))
	})
	r.Get("/v2/addresses/{address}/latest-node-bonus", apphttp.HandleError(h.latestBonusByAddress))
}

func (h *HTTP) onChainInfos(w http.ResponseWriter, r *http.Request) error {
	infos, err := h.service.OnChainInfos(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, infos)
	return nil
}

func (h *HTTP) onChainInfo(w http.ResponseWriter, r *http.Request) error {
	publicKey, err := publicKeyParam(r)
	if err != nil {
		return err
	}
	info, err := h.service.OnChainInfo(r.Context(), publicKey)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, info)
	return nil
}

func (h *HTTP) offChainInfos(w http.ResponseWriter, r *http.Request) error {
	infos, err := h.service.OffChainInfos(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, infos)
	return nil
}

func (h *HTTP) offChainInfo(w http.ResponseWriter, r *http.Request) error {
	publicKey, err := publicKeyParam(r)
	if err != nil {
		return err
	}
	info, err := h.service.OffChainInfo(r.Context(), publicKey)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, info)
	return nil
}

func (h *HTTP) bonusHistories(w http.ResponseWriter, r *http.Request) error {
	bonuses, err := h.service.BonusHistories(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, bonuses)
	return nil
}

// bonusesWithInfos serves the merged view; a non-empty name query narrows
// both sides of the merge.
func (h *HTTP) bonusesWithInfos(w http.ResponseWriter, r *http.Request) error {
	name := strings.TrimSpace(r.URL.Query().Get("name"))

	var (
		merged any
		err    error
	)
	if name == "" {
		merged, err = h.service.LatestBonusesWithInfos(r.Context())
	} else {
		merged, err = h.service.SearchOnChainWithBonusByName(r.Context(), name)
	}
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, merged)
	return nil
}

func (h *HTTP) latestBonusByPublicKey(w http.ResponseWriter, r *http.Request) error {
	publicKey, err := publicKeyParam(r)
	if err != nil {
		return err
	}
	bonus, err := h.service.LatestBonusByPublicKey(r.Context(), publicKey)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, bonus)
	return nil
}

func (h *HTTP) latestBonusByAddress(w http.ResponseWriter, r *http.Request) error {
	address := chi.URLParam(r, "address")
	if err := validateAddress(address); err != nil {
		return apperrors.BadRequestError(err, "invalid address")
	}
	bonus, err := h.service.LatestBonusByAddress(r.Context(), address)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, bonus)
	return nil
}

func (h *HTTP) activeNetNodes(w http.ResponseWriter, r *http.Request) error {
	nodes, err := h.service.ActiveNetNodes(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, nodes)
	return nil
}

func (h *HTTP) netNodes(w http.ResponseWriter, r *http.Request) error {
	nodes, err := h.service.NetNodes(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, nodes)
	return nil
}

func (h *HTTP) syncNodeCount(w http.ResponseWriter, r *http.Request) error {
	n, err := h.service.SyncNodeCount(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, countResponse{Count: n})
	return nil
}

func (h *HTTP) candidateNodeCount(w http.ResponseWriter, r *http.Request) error {
	n, err := h.service.CandidateNodeCount(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, countResponse{Count: n})
	return nil
}

func (h *HTTP) consensusNodeCount(w http.ResponseWriter, r *http.Request) error {
	n, err := h.service.ConsensusNodeCount(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, countResponse{Count: n})
	return nil
}

func publicKeyParam(r *http.Request) (string, error) {
	publicKey := chi.URLParam(r, "public_key")
	if err := validatePublicKey(publicKey); err != nil {
		return "", apperrors.BadRequestError(err, "invalid public key")
	}
	return publicKey, nil
}

// validatePublicKey accepts hex-encoded compressed or uncompressed keys.
func validatePublicKey(publicKey string) error {
	if publicKey == "" {
		return errors.New("public key is empty")
	}
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return fmt.Errorf("public key is not hex: %w", err)
	}
	if len(raw) != compressedKeyLength && len(raw) != uncompressedKeyLength {
		return fmt.Errorf("public key has %d bytes, want %d or %d", len(raw), compressedKeyLength, uncompressedKeyLength)
	}
	return nil
}

// validateAddress checks the base58check encoding and version byte.
func validateAddress(address string) error {
	if address == "" {
		return errors.New("address is empty")
	}
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return fmt.Errorf("address is not base58check: %w", err)
	}
	if version != addressVersion {
		return fmt.Errorf("address version %#x, want %#x", version, addressVersion)
	}
	if len(payload) != addressLength {
		return fmt.Errorf("address payload has %d bytes, want %d", len(payload), addressLength)
	}
	return nil
}
