package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clip-market/internal/core/domain"
	"clip-market/internal/core/port"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), actorFrom(r.Context()), port.CreateCampaignReq{
		Title:         req.Title,
		Description:   req.Description,
		VideoURL:      req.VideoURL,
		RewardPer1000: req.RewardPer1000,
		Budget:        req.Budget,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleListCampaigns accepts optional `creator_id` and `status` query
// parameters; `mine=true` is a shortcut for the caller's own campaigns.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	actor := actorFrom(r.Context())
	filter := port.CampaignFilter{CreatorID: q.Get("creator_id")}
	if q.Get("mine") == "true" {
		filter.CreatorID = actor.UserID
	}
	if s := q.Get("status"); s != "" {
		st, err := domain.ParseCampaignStatus(s)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		filter.Status = st
	}

	items, err := h.svc.ListCampaigns(r.Context(), actor, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]campaignResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	st, err := domain.ParseCampaignStatus(req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.SetCampaignStatus(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "id"), st)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.CampaignStats(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignStatsResponse{
		Submissions:     st.Submissions,
		Pending:         st.Pending,
		Approved:        st.Approved,
		Rejected:        st.Rejected,
		Spent:           st.Spent,
		RemainingBudget: st.RemainingBudget,
	})
}
