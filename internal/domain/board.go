package domain

import "time"

type Board struct {
	Id        BoardId   `json:"boardID"`
	OwnerId   UserId    `json:"ownerID"`
	Name      BoardName `json:"boardName"`
	CreatedAt time.Time `json:"createdAt"`
}

// BoardsForUser splits a user's boards into the two disjoint sets the
// board list view renders: boards they own and boards shared with them.
// A board never appears in both.
type BoardsForUser struct {
	Owned  []Board `json:"owned"`
	Shared []Board `json:"shared"`
}

// BoardMember links a non-owner user to a board with a role.
// (BoardId, UserId) is unique; the owner never has a row here.
type BoardMember struct {
	Id      MemberId  `json:"memberID"`
	BoardId BoardId   `json:"boardID"`
	UserId  UserId    `json:"userID"`
	Role    Role      `json:"role"`
	AddedAt time.Time `json:"addedAt"`

	User User `json:"user"`
}

// BoardRoster is what the members view renders: the owner surfaced
// separately plus every stored membership row with user identity attached.
type BoardRoster struct {
	Owner   User          `json:"owner"`
	Members []BoardMember `json:"members"`
}
