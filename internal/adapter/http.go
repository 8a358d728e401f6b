package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/shielded-nft/internal/config"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/utils"
	"github.com/MKhiriev/shielded-nft/models"
)

const (
	hashHeader       = "HashSHA256"
	viewingKeyHeader = "X-Viewing-Key"
)

type httpRegistryAdapter struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPRegistryAdapter constructs the HTTP/REST implementation of
// [RegistryAdapter]. When hashKey is set every request body is signed with
// the HashSHA256 header.
//
// Returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPRegistryAdapter(cfg config.Adapter, hashKey string, logger *logger.Logger) (RegistryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	return &httpRegistryAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		hashKey: hashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRegistryAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpRegistryAdapter) Mint(ctx context.Context, req models.MintRequest) (models.MintResponse, error) {
	var minted models.MintResponse

	r, err := h.signedRequest(ctx, req)
	if err != nil {
		return minted, err
	}
	resp, err := r.SetResult(&minted).Post("/api/nft/mint")
	if err != nil {
		return minted, fmt.Errorf("mint request: %w", err)
	}

	return minted, mapHTTPError(resp)
}

func (h *httpRegistryAdapter) Transfer(ctx context.Context, id models.AssetID, to string) error {
	req, err := h.signedRequest(ctx, models.TransferRequest{ID: id, To: to})
	if err != nil {
		return err
	}
	resp, err := req.Post("/api/nft/transfer")
	if err != nil {
		return fmt.Errorf("transfer request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRegistryAdapter) View(ctx context.Context, id models.AssetID, key models.ViewingKey) (models.RevealedNFT, error) {
	var nft models.RevealedNFT

	req := h.client.R().SetContext(ctx).SetResult(&nft)
	if key != "" {
		req.SetHeader(viewingKeyHeader, string(key))
	}
	resp, err := req.SetPathParam("id", id.String()).Get("/api/nft/{id}")
	if err != nil {
		return nft, fmt.Errorf("view request: %w", err)
	}

	return nft, mapHTTPError(resp)
}

func (h *httpRegistryAdapter) List(ctx context.Context, owner string) ([]models.RevealedNFT, error) {
	var list models.ListResponse

	req := h.client.R().SetContext(ctx).SetResult(&list)
	if owner != "" {
		req.SetQueryParam("owner", owner)
	}
	resp, err := req.Get("/api/nft/")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.NFTs, nil
}

func (h *httpRegistryAdapter) IssueViewingKey(ctx context.Context, id models.AssetID, owner string) (models.ViewingKey, error) {
	var issued models.ViewingKeyResponse

	req, err := h.signedRequest(ctx, models.ViewingKeyRequest{ID: id, Owner: owner})
	if err != nil {
		return "", err
	}
	resp, err := req.SetResult(&issued).SetPathParam("id", id.String()).Post("/api/nft/{id}/viewing-key")
	if err != nil {
		return "", fmt.Errorf("viewing key request: %w", err)
	}

	return issued.ViewingKey, mapHTTPError(resp)
}

func (h *httpRegistryAdapter) Stake(ctx context.Context, id models.AssetID) error {
	resp, err := h.client.R().SetContext(ctx).SetPathParam("id", id.String()).Post("/api/nft/{id}/stake")
	if err != nil {
		return fmt.Errorf("stake request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRegistryAdapter) Unstake(ctx context.Context, id models.AssetID) error {
	resp, err := h.client.R().SetContext(ctx).SetPathParam("id", id.String()).Post("/api/nft/{id}/unstake")
	if err != nil {
		return fmt.Errorf("unstake request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRegistryAdapter) Airdrop(ctx context.Context, id models.AssetID, recipients []string) (models.AirdropResult, error) {
	var result models.AirdropResult

	req, err := h.signedRequest(ctx, models.AirdropRequest{ID: id, Recipients: recipients})
	if err != nil {
		return result, err
	}
	resp, err := req.SetResult(&result).Post("/api/nft/airdrop")
	if err != nil {
		return result, fmt.Errorf("airdrop request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (h *httpRegistryAdapter) Export(ctx context.Context, id models.AssetID) ([]byte, error) {
	var exported models.ExportResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&exported).
		SetPathParam("id", id.String()).
		Get("/api/ibc/export/{id}")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return exported.Packet, nil
}

func (h *httpRegistryAdapter) Import(ctx context.Context, packet []byte) (models.AssetID, error) {
	var imported models.StatusResponse

	req, err := h.signedRequest(ctx, models.ImportRequest{Packet: packet})
	if err != nil {
		return "", err
	}
	resp, err := req.SetResult(&imported).Post("/api/ibc/import")
	if err != nil {
		return "", fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return imported.ID, nil
}

func (h *httpRegistryAdapter) Close() error {
	return nil
}

// signedRequest prepares a JSON request carrying body. The body is
// serialised here so that the HashSHA256 header covers the exact bytes sent.
func (h *httpRegistryAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(hashHeader, utils.HashHex(payload))
	}

	return req, nil
}
