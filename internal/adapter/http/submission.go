package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !h.decode(w, r, &req) {
		return
	}
	s, err := h.svc.Submit(r.Context(), actorFrom(r.Context()), port.SubmitReq{
		CampaignID:    req.CampaignID,
		Platform:      req.Platform,
		VideoLink:     req.VideoLink,
		ViewCount:     req.ViewCount,
		ScreenshotRef: req.ScreenshotRef,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toSubmissionResponse(*s))
}

// handleListSubmissions accepts optional `campaign_id`, `clipper_id` and
// `status` query parameters. Results are narrowed to what the caller may see.
func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.SubmissionFilter{
		CampaignID: q.Get("campaign_id"),
		ClipperID:  q.Get("clipper_id"),
	}
	if s := q.Get("status"); s != "" {
		st, err := domain.ParseSubmissionStatus(s)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		filter.Status = st
	}

	items, err := h.svc.ListSubmissions(r.Context(), actorFrom(r.Context()), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]submissionResponse, 0, len(items))
	for _, s := range items {
		resp = append(resp, toSubmissionResponse(s))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSubmission(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSubmissionResponse(*s))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Approve(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, approveResponse{
		Submission:      toSubmissionResponse(res.Submission),
		RemainingBudget: res.Campaign.RemainingBudget,
	})
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Reject(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSubmissionResponse(*s))
}

func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.MarkPaid(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSubmissionResponse(*s))
}
