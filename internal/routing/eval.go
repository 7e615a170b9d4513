package routing

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/SystemBuilders/chains/internal/containerservice"
	"github.com/SystemBuilders/chains/internal/rpn"
)

// EvalRequest carries a postfix expression.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// EvalResponse carries the result of an expression, rendered the same
// way as the command line does it. Non-finite results come out as "+Inf",
// "-Inf" or "NaN".
type EvalResponse struct {
	Result string `json:"result"`
	Cached bool   `json:"cached"`
}

func eval(w http.ResponseWriter, r *http.Request, cs *containerservice.SimpleContainerService) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req EvalRequest
	err = json.Unmarshal(body, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, cached, err := cs.Evaluate(req.Expression)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, EvalResponse{Result: rpn.FormatResult(result), Cached: cached})
}
