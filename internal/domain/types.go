package domain

type (
	Email    = string
	Password = string
	UserId   = int64

	BoardId   = int64
	BoardName = string

	ListId   = int64
	ListName = string

	CardId   = int64
	CardName = string

	CommentId = int64

	MemberId = int64

	// Position orders siblings within their parent container.
	// Values are only meaningful relative to each other; ties are
	// broken by ascending id at read time.
	Position = int64
)
