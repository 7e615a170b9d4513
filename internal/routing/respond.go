package routing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SystemBuilders/chains/internal/containerservice"
	"github.com/SystemBuilders/chains/internal/list"
	"github.com/SystemBuilders/chains/internal/queue"
	"github.com/SystemBuilders/chains/internal/rpn"
	"github.com/SystemBuilders/chains/internal/stack"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	byteData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(byteData)
}

// writeError maps service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, containerservice.ErrContainerDoesntExist):
		return http.StatusNotFound
	case errors.Is(err, stack.ErrStackEmpty), errors.Is(err, queue.ErrQueueEmpty):
		return http.StatusConflict
	case errors.Is(err, containerservice.ErrEmptyValue),
		errors.Is(err, containerservice.ErrUnknownKind),
		errors.Is(err, list.ErrInvalidArgument),
		errors.Is(err, rpn.ErrEmptyExpression),
		errors.Is(err, rpn.ErrInvalidToken),
		errors.Is(err, rpn.ErrInsufficientOperands),
		errors.Is(err, rpn.ErrTooManyOperands):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
