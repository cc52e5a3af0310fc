package user

import (
	"net/http"

	"github.com/ejapp/backend/srvcerr"
)

const ErrCodeEmailAlreadyExists = "email_exists"

func newErrEmailExists() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeEmailAlreadyExists,
		"email already registered",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidCredentials,
		"invalid credentials",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeRefreshTokenExpired = "refresh_token_expired"

func newErrRefreshTokenExpired() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeRefreshTokenExpired,
		"refresh token expired",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeTokenInvalid = "invalid_token"

func newErrTokenInvalid() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeTokenInvalid,
		"not authenticated",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUserNotFound,
		"user not found",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrInternalSE() *srvcerr.Error {
	return srvcerr.ErrInternalSE()
}
