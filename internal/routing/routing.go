package routing

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SystemBuilders/chains/internal/containerservice"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(cs *containerservice.SimpleContainerService, r *mux.Router) *mux.Router {
	for _, kind := range []containerservice.Kind{containerservice.KindStack, containerservice.KindQueue} {
		prefix := "/" + string(kind) + "s"
		r.HandleFunc(prefix, makeCreateHandler(cs, kind)).Methods(http.MethodPost)
		r.HandleFunc(prefix+"/{id}", makeDescribeHandler(cs, kind)).Methods(http.MethodGet)
		r.HandleFunc(prefix+"/{id}", makeDropHandler(cs, kind)).Methods(http.MethodDelete)
		r.HandleFunc(prefix+"/{id}/clear", makeClearHandler(cs, kind)).Methods(http.MethodPost)
	}

	r.HandleFunc("/stacks/{id}/push", makeInsertHandler(cs.Push)).Methods(http.MethodPost)
	r.HandleFunc("/stacks/{id}/pop", makeReadHandler(cs.Pop)).Methods(http.MethodPost)
	r.HandleFunc("/stacks/{id}/peek", makeReadHandler(cs.Peek)).Methods(http.MethodGet)

	r.HandleFunc("/queues/{id}/enqueue", makeInsertHandler(cs.Enqueue)).Methods(http.MethodPost)
	r.HandleFunc("/queues/{id}/dequeue", makeReadHandler(cs.Dequeue)).Methods(http.MethodPost)
	r.HandleFunc("/queues/{id}/head", makeReadHandler(cs.PeekHead)).Methods(http.MethodGet)
	r.HandleFunc("/queues/{id}/tail", makeReadHandler(cs.PeekTail)).Methods(http.MethodGet)

	r.HandleFunc("/eval", makeEvalHandler(cs)).Methods(http.MethodPost)
	return r
}

func makeCreateHandler(cs *containerservice.SimpleContainerService, kind containerservice.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		create(w, r, cs, kind)
	}
}

func makeDescribeHandler(cs *containerservice.SimpleContainerService, kind containerservice.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		describe(w, r, cs, kind)
	}
}

func makeDropHandler(cs *containerservice.SimpleContainerService, kind containerservice.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drop(w, r, cs, kind)
	}
}

func makeClearHandler(cs *containerservice.SimpleContainerService, kind containerservice.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearContainer(w, r, cs, kind)
	}
}

func makeInsertHandler(insert insertFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insertValue(w, r, insert)
	}
}

func makeReadHandler(read readFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readValue(w, r, read)
	}
}

func makeEvalHandler(cs *containerservice.SimpleContainerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eval(w, r, cs)
	}
}
