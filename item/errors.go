package item

import (
	"net/http"

	"github.com/ejapp/backend/srvcerr"
)

const ErrCodeTitleEmpty = "title_empty"

func newErrTitleEmpty() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeTitleEmpty,
		"item title cannot be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerr.Error {
	return srvcerr.ErrInternalSE()
}
