package domain

import "time"

type Comment struct {
	Id        CommentId `json:"commentID"`
	CardId    CardId    `json:"cardID"`
	AuthorId  UserId    `json:"authorID"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
