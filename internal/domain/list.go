package domain

import "time"

type List struct {
	Id        ListId    `json:"listID"`
	BoardId   BoardId   `json:"boardID"`
	Name      ListName  `json:"listName"`
	Position  Position  `json:"position"`
	CreatedAt time.Time `json:"createdAt"`

	// Cards are eagerly attached by the board view, sorted by
	// (position, id). Nil when the list was loaded standalone.
	Cards []Card `json:"cards"`
}
