package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playforge/wallet-ledger/internal/services/wallet"
)

// NewRouter registers all API endpoints. The transaction type of the write
// endpoints is implied by the route, never read from the body.
func NewRouter(svc WalletService) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/wallet", func(r chi.Router) {
		r.Get("/assets", h.GetAssetTypesHandler)
		r.Get("/balance", h.GetBalanceHandler)
		r.Get("/wallets/{userId}", h.GetUserWalletsHandler)
		r.Get("/history", h.GetHistoryHandler)

		r.Post("/topup", h.ExecuteHandler(wallet.TxTopup))
		r.Post("/bonus", h.ExecuteHandler(wallet.TxBonus))
		r.Post("/spend", h.ExecuteHandler(wallet.TxSpend))
	})

	return r
}
