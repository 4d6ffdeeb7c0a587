package status

import (
	"net/http"

	"github.com/carson-networks/budget-flow/internal/logging"
)

type Handler struct {
	RulesFile string
}

func NewHandler(rulesFile string) *Handler {
	return &Handler{RulesFile: rulesFile}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logData := logging.GetLogData(req.Context())

	if req.Method != http.MethodGet {
		if logData != nil {
			logData.AddData("error", "status: method not GET")
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if logData != nil {
		logData.AddData("rulesFile", h.RulesFile)
	}
	w.WriteHeader(http.StatusOK)
}
