package http

import (
	"errors"
	"net/http"
	"strings"

	loanDomain "investcore-backend/internal/domain/loan"
	txDomain "investcore-backend/internal/domain/transaction"
	walletDomain "investcore-backend/internal/domain/wallet"
	walletUC "investcore-backend/internal/usecase/wallet"
)

// errorStatus maps domain errors to HTTP codes: missing rows → 404,
// lost-the-race preconditions → 409, caller mistakes → 4xx, anything
// else is a connectivity-class failure → 502.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, walletDomain.ErrNotFound),
		errors.Is(err, txDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loanDomain.ErrAlreadyProcessed),
		errors.Is(err, txDomain.ErrAlreadyProcessed),
		errors.Is(err, walletDomain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, walletDomain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, loanDomain.ErrInvalidInput),
		errors.Is(err, walletUC.ErrInvalidAmount),
		errors.Is(err, walletUC.ErrWrongType),
		errors.Is(err, walletUC.ErrInvalidDecider):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
