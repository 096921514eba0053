package api

import (
	"fmt"
	"net/http"
	"time"
)

// NewServer creates a configured *http.Server for the wallet API.
func NewServer(port uint16, svc WalletService) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(svc),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
