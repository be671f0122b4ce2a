package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driving"
	"github.com/custodia-labs/onebox/internal/logger"
)

// ContentType is the response content type.
const ContentType = "text/xml; charset=UTF-8"

// Handler serves OneBox queries.
type Handler struct {
	dispatcher driving.Dispatcher
}

// NewHandler creates a handler in front of dispatcher.
func NewHandler(dispatcher driving.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

// ServeHTTP answers GET and HEAD requests with a OneBox document.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body := h.dispatcher.Dispatch(r.Context(), ParamsFromRequest(r))

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, body); err != nil {
		logger.Debug("Writing response: %v", err)
	}
}

// ParamsFromRequest collects query parameters, cookies and the base URL
// of r. Repeated parameters keep their first value.
func ParamsFromRequest(r *http.Request) domain.Params {
	query := r.URL.Query()
	values := make(map[string]string, len(query))
	for name, v := range query {
		if len(v) > 0 {
			values[name] = v[0]
		}
	}

	var cookies []domain.Cookie
	for _, c := range r.Cookies() {
		cookies = append(cookies, domain.Cookie{Name: c.Name, Value: c.Value})
	}

	return domain.Params{
		Values:  values,
		Cookies: cookies,
		BaseURL: BaseURL(r),
	}
}

// BaseURL returns scheme://host/dir/ for r, where dir is the request path
// up to and including its last "/". X-Forwarded-Proto and
// X-Forwarded-Host are honoured.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	dir := r.URL.Path
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		dir = dir[:i+1]
	} else {
		dir = "/"
	}
	if !strings.HasPrefix(dir, "/") {
		dir = "/" + dir
	}
	return scheme + "://" + host + dir
}
