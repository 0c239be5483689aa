package errors

import (
	goerrors "errors"
	"net/http"

	domain "vouchers-system/errors"
)

// HTTPStatus maps domain errors onto HTTP response codes for the presenter.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case goerrors.Is(err, domain.ErrOrderNotFound),
		goerrors.Is(err, domain.ErrTemplateNotFound),
		goerrors.Is(err, domain.ErrVoucherNotFound):
		return http.StatusNotFound
	case goerrors.Is(err, domain.ErrFulfilledOrder),
		goerrors.Is(err, domain.ErrVoucherRedeemed),
		goerrors.Is(err, domain.ErrTemplateInUse):
		return http.StatusConflict
	case goerrors.Is(err, domain.ErrVoucherExpired),
		goerrors.Is(err, domain.ErrVoucherNotIssued),
		goerrors.Is(err, domain.ErrNoVoucherItems),
		goerrors.Is(err, domain.ErrProductNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func Message(err error) string {
	if err == nil {
		return ""
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return domain.ErrGeneral.Error()
	}
	return err.Error()
}
