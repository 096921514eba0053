package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/playforge/wallet-ledger/internal/infra/pgutils"
	"github.com/playforge/wallet-ledger/internal/repos/assets"
	"github.com/playforge/wallet-ledger/internal/repos/ledger"
	"github.com/playforge/wallet-ledger/internal/repos/wallets"
	"github.com/playforge/wallet-ledger/internal/services/wallet"
)

// WalletService is the surface of the wallet service consumed by the HTTP
// layer.
type WalletService interface {
	Execute(ctx context.Context, req wallet.Request) (*wallet.Result, error)
	GetBalance(ctx context.Context, userID string, assetTypeID int64) (*wallets.BalanceView, error)
	GetUserWallets(ctx context.Context, userID string) ([]wallets.BalanceView, error)
	GetTransactionHistory(ctx context.Context, userID string, assetTypeID int64, limit, offset int) ([]ledger.HistoryRow, error)
	GetAssetTypes(ctx context.Context) ([]assets.AssetType, error)
}

// HandlerProvider wraps a WalletService and exposes HTTP handlers.
type HandlerProvider struct {
	svc WalletService
}

func NewHandler(svc WalletService) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, map[string]any{"success": true, "data": v})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// writeDomainError maps service failures to HTTP statuses. Treasury
// misconfiguration is deliberately a 500: the client did nothing wrong.
func writeDomainError(w http.ResponseWriter, err error) {
	var conflict *wallet.IdempotencyConflictError

	switch {
	case errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, wallet.ErrInvalidTransactionType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, wallets.ErrWalletNotFound):
		writeError(w, http.StatusNotFound, "wallet not found")
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, conflict.Error())
	case errors.Is(err, ledger.ErrDuplicateTransaction):
		writeError(w, http.StatusConflict, "duplicate transaction")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient balance")
	case errors.Is(err, wallet.ErrInsufficientTreasury):
		writeError(w, http.StatusConflict, "insufficient system treasury balance")
	case errors.Is(err, pgutils.ErrRetriesExhausted):
		writeError(w, http.StatusServiceUnavailable, "store contention, try again later")
	case errors.Is(err, wallet.ErrTreasuryNotFound):
		slog.Error("treasury wallet missing", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		slog.Error("wallet request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

const (
	maxIdempotencyKeyLen = 255
	maxUserIDLen         = 50
	maxReferenceIDLen    = 100
	maxDescriptionLen    = 500
	maxCreatedByLen      = 50

	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

func parseAssetTypeID(raw string, required bool) (int64, error) {
	if raw == "" {
		if required {
			return 0, errors.New("assetTypeId is required")
		}

		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("assetTypeId must be a positive integer")
	}

	return id, nil
}

type executeRequest struct {
	IdempotencyKey string `json:"idempotencyKey"`
	UserID         string `json:"userId"`
	AssetTypeID    int64  `json:"assetTypeId"`
	Amount         int64  `json:"amount"`
	ReferenceID    string `json:"referenceId"`
	Description    string `json:"description"`
	CreatedBy      string `json:"createdBy"`
}

// validate enforces the input shape before any unit of work opens.
func (req *executeRequest) validate() error {
	switch {
	case req.IdempotencyKey == "":
		return errors.New("idempotencyKey is required")
	case len(req.IdempotencyKey) > maxIdempotencyKeyLen:
		return errors.New("idempotencyKey too long")
	case req.UserID == "":
		return errors.New("userId is required")
	case len(req.UserID) > maxUserIDLen:
		return errors.New("userId too long")
	case req.AssetTypeID <= 0:
		return errors.New("assetTypeId must be a positive integer")
	case req.Amount <= 0:
		return errors.New("amount must be a positive integer")
	case len(req.ReferenceID) > maxReferenceIDLen:
		return errors.New("referenceId too long")
	case len(req.Description) > maxDescriptionLen:
		return errors.New("description too long")
	case req.CreatedBy == "":
		return errors.New("createdBy is required")
	case len(req.CreatedBy) > maxCreatedByLen:
		return errors.New("createdBy too long")
	}

	return nil
}

// --- Handlers ---

type resultEntryJSON struct {
	UserID       string `json:"userId"`
	EntryType    string `json:"entryType"`
	Amount       int64  `json:"amount"`
	BalanceAfter int64  `json:"balanceAfter"`
}

func toEntryJSON(e wallet.ResultEntry) resultEntryJSON {
	return resultEntryJSON{
		UserID:       e.Account.OwnerID(),
		EntryType:    string(e.EntryType),
		Amount:       e.AmountMinor,
		BalanceAfter: e.BalanceAfter,
	}
}

// ExecuteHandler handles POST /api/wallet/{topup|bonus|spend}.
func (h *HandlerProvider) ExecuteHandler(txType wallet.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		defer r.Body.Close()

		var req executeRequest

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		err := dec.Decode(&req)
		if err != nil {
			if errors.Is(err, io.EOF) {
				writeError(w, http.StatusBadRequest, "empty body")
				return
			}

			writeError(w, http.StatusBadRequest, "invalid JSON")

			return
		}

		err = req.validate()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := h.svc.Execute(r.Context(), wallet.Request{
			IdempotencyKey: req.IdempotencyKey,
			Type:           txType,
			UserID:         req.UserID,
			AssetTypeID:    req.AssetTypeID,
			AmountMinor:    req.Amount,
			ReferenceID:    req.ReferenceID,
			Description:    req.Description,
			CreatedBy:      req.CreatedBy,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		status := http.StatusCreated

		message := "Transaction completed successfully"
		if res.Replayed {
			status = http.StatusOK
			message = "Transaction already processed"
		}

		writeData(w, status, map[string]any{
			"transactionId": res.TransactionID,
			"status":        string(res.Status),
			"message":       message,
			"entries":       []resultEntryJSON{toEntryJSON(res.Entries[0]), toEntryJSON(res.Entries[1])},
		})
	}
}

// GetBalanceHandler handles GET /api/wallet/balance?userId=&assetTypeId=.
func (h *HandlerProvider) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" || len(userID) > maxUserIDLen {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	assetTypeID, err := parseAssetTypeID(r.URL.Query().Get("assetTypeId"), true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.svc.GetBalance(r.Context(), userID, assetTypeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"userId":      view.OwnerID,
		"assetTypeId": view.AssetTypeID,
		"assetName":   view.AssetName,
		"symbol":      view.Symbol,
		"decimals":    view.Decimals,
		"balance":     view.Balance,
	})
}

// GetUserWalletsHandler handles GET /api/wallet/wallets/{userId}.
func (h *HandlerProvider) GetUserWalletsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" || len(userID) > maxUserIDLen {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	views, err := h.svc.GetUserWallets(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(views))
	for _, v := range views {
		out = append(out, map[string]any{
			"walletId":    v.WalletID,
			"assetTypeId": v.AssetTypeID,
			"assetName":   v.AssetName,
			"symbol":      v.Symbol,
			"decimals":    v.Decimals,
			"balance":     v.Balance,
		})
	}

	writeData(w, http.StatusOK, out)
}

// GetHistoryHandler handles GET /api/wallet/history.
func (h *HandlerProvider) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID := strings.TrimSpace(q.Get("userId"))
	if userID == "" || len(userID) > maxUserIDLen {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	assetTypeID, err := parseAssetTypeID(q.Get("assetTypeId"), false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := defaultHistoryLimit

	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxHistoryLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
	}

	offset := 0

	if raw := q.Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			writeError(w, http.StatusBadRequest, "offset must be non-negative")
			return
		}
	}

	rows, err := h.svc.GetTransactionHistory(r.Context(), userID, assetTypeID, limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		item := map[string]any{
			"transactionId": row.TransactionID,
			"type":          row.Type,
			"referenceId":   row.ReferenceID,
			"description":   row.Description,
			"status":        row.Status,
			"entryType":     row.EntryType,
			"amount":        row.Amount,
			"balanceAfter":  row.BalanceAfter,
			"assetName":     row.AssetName,
			"symbol":        row.Symbol,
			"createdAt":     row.CreatedAt,
		}
		if row.CompletedAt != nil {
			item["completedAt"] = row.CompletedAt
		}

		out = append(out, item)
	}

	writeData(w, http.StatusOK, out)
}

// GetAssetTypesHandler handles GET /api/wallet/assets.
func (h *HandlerProvider) GetAssetTypesHandler(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.GetAssetTypes(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(types))
	for _, at := range types {
		out = append(out, map[string]any{
			"id":          at.ID,
			"name":        at.Name,
			"symbol":      at.Symbol,
			"description": at.Description,
			"decimals":    at.Decimals,
		})
	}

	writeData(w, http.StatusOK, out)
}
