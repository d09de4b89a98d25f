package handler

import (
	"net/http"

	"github.com/taskboard-dev/taskboard/internal/api"
	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}

	roster, err := h.member.Members(boardId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MemberListResponse{
		Success: true,
		Owner:   roster.Owner,
		Members: roster.Members,
	})
}

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.InviteMemberRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	member, err := h.member.Invite(boardId, user.Id, body.Email, domain.Role(body.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.MemberResponse{Success: true, BoardMember: *member})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}
	targetUserId, err := parseIdParam(r, "user")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.member.Remove(boardId, user.Id, targetUserId); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.OkResponse{Success: true, Message: "Member removed"})
}

func (h *Handler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		writeError(w, err)
		return
	}
	targetUserId, err := parseIdParam(r, "user")
	if err != nil {
		writeError(w, err)
		return
	}

	var body api.UpdateMemberRoleRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	member, err := h.member.UpdateRole(boardId, user.Id, targetUserId, domain.Role(body.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MemberResponse{Success: true, BoardMember: *member})
}
