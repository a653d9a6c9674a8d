package http

import (
	"html"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
)

// root greets the caller and echoes the param1 query parameter, HTML
// escaped. A missing parameter is shown as "undefined".
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	param1 := "undefined"
	if query.Has("param1") {
		param1 = html.EscapeString(query.Get("param1"))
	}

	utils.WriteText(w, "Hello World!<br>Param1 = "+param1, "text/html; charset=utf-8", http.StatusOK)
}
