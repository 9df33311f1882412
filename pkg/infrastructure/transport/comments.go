package transport

import (
	"fmt"
	"net/http"

	"bakery/pkg/domain/model"
)

type commentResponse struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
}

func newCommentResponse(c *model.Comment) commentResponse {
	return commentResponse{ID: c.ID, Message: c.Message, UserID: c.UserID, ProductID: c.ProductID}
}

type commentRequest struct {
	Message string `json:"message"`
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.Comments.ListComments(r.Context(), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]commentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, newCommentResponse(&comments[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.services.Comments.CreateComment(r.Context(), subjectFrom(r.Context()), pathID(r, "id"), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCommentResponse(comment))
}

func (h *Handler) editComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.services.Comments.EditComment(r.Context(), subjectFrom(r.Context()),
		pathID(r, "id"), pathID(r, "commentID"), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCommentResponse(comment))
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := pathID(r, "commentID")
	err := h.services.Comments.DeleteComment(r.Context(), subjectFrom(r.Context()), pathID(r, "id"), commentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Comment %d deleted successfully.", commentID)})
}
