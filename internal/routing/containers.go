package routing

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/oklog/ulid"

	"github.com/SystemBuilders/chains/internal/containerservice"
)

type insertFunc func(ulid.ULID, string) error

type readFunc func(ulid.ULID) (string, error)

// ValueRequest carries a value to push or enqueue.
type ValueRequest struct {
	Value string `json:"value"`
}

// ValueResponse carries a value read from a container.
type ValueResponse struct {
	Value string `json:"value"`
}

// CreateResponse carries the handle of a new container.
type CreateResponse struct {
	ID string `json:"id"`
}

func create(w http.ResponseWriter, r *http.Request, cs *containerservice.SimpleContainerService, kind containerservice.Kind) {
	id, err := cs.Create(kind)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, CreateResponse{ID: id.String()})
}

func describe(w http.ResponseWriter, r *http.Request, cs *containerservice.SimpleContainerService, kind containerservice.Kind) {
	id, ok := containerID(w, r)
	if !ok {
		return
	}
	desc, err := cs.Describe(kind, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, desc)
}

func drop(w http.ResponseWriter, r *http.Request, cs *containerservice.SimpleContainerService, kind containerservice.Kind) {
	id, ok := containerID(w, r)
	if !ok {
		return
	}
	if err := cs.Drop(kind, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func clearContainer(w http.ResponseWriter, r *http.Request, cs *containerservice.SimpleContainerService, kind containerservice.Kind) {
	id, ok := containerID(w, r)
	if !ok {
		return
	}
	if err := cs.Clear(kind, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// insertValue wraps Push and Enqueue.
func insertValue(w http.ResponseWriter, r *http.Request, insert insertFunc) {
	id, ok := containerID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req ValueRequest
	err = json.Unmarshal(body, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := insert(id, req.Value); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readValue wraps Pop, Peek, Dequeue, PeekHead and PeekTail.
func readValue(w http.ResponseWriter, r *http.Request, read readFunc) {
	id, ok := containerID(w, r)
	if !ok {
		return
	}
	value, err := read(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, ValueResponse{Value: value})
}

func containerID(w http.ResponseWriter, r *http.Request) (ulid.ULID, bool) {
	id, err := ulid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ulid.ULID{}, false
	}
	return id, true
}
