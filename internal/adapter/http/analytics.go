package httpadapter

import "net/http"

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context(), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOverviewResponse(*ov))
}

func (h *Handler) handleClipperStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.ClipperStats(r.Context(), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clipperStatsResponse{
		TotalEarnings:       st.TotalEarnings,
		PendingEarnings:     st.PendingEarnings,
		TotalSubmissions:    st.TotalSubmissions,
		ApprovedSubmissions: st.ApprovedSubmissions,
	})
}
