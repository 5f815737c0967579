package httpx

import (
	"errors"
	"net/http"

	"github.com/learnify/learnify-ui/internal/http/ui/viewmodel"
	"github.com/learnify/learnify-ui/internal/i18n"
)

// NotFound renders an HTML 404 for browsers and a JSON error for everything else.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
		return
	}

	layout := h.buildLayout(r, PageMeta{CurrentPage: PageNotFound})
	layout.Title = h.text(r, i18n.MsgErrorNotFound, "Page not found") + " - " + h.Site.Brand
	data := &viewmodel.ErrorPage{
		Layout:    layout,
		Code:      http.StatusNotFound,
		Heading:   h.text(r, i18n.MsgErrorTitle, "Something went wrong"),
		Message:   h.text(r, i18n.MsgErrorNotFound, "Page not found"),
		HomeLabel: h.text(r, i18n.MsgErrorBackHome, "Back to home"),
		HomeURL:   "/",
	}

	if h.T == nil {
		http.Error(w, data.Message, http.StatusNotFound)
		return
	}
	if err := h.T.RenderError(w, r, http.StatusNotFound, data); err != nil {
		h.logger().Error("failed to render not found page", "error", err)
		http.Error(w, data.Message, http.StatusNotFound)
	}
}
