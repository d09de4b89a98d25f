package domain

import "time"

// CardStatus is the card's workflow state. The workflow is a plain
// bidirectional toggle, there are no other states.
type CardStatus string

const (
	StatusToDo CardStatus = "To Do"
	StatusDone CardStatus = "Done"
)

func ValidCardStatus(s CardStatus) bool {
	return s == StatusToDo || s == StatusDone
}

type Card struct {
	Id          CardId     `json:"cardID"`
	ListId      ListId     `json:"listID"`
	Name        CardName   `json:"cardName"`
	Description string     `json:"description"`
	// DescriptionHTML is the markdown-rendered, sanitized description.
	// Populated on the way out by the service layer, never stored.
	DescriptionHTML string     `json:"descriptionHTML,omitempty"`
	DueDate         *time.Time `json:"dueDate"`
	Status          CardStatus `json:"status"`
	Position        Position   `json:"position"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// CardPatch carries the editable card fields for a full update.
// DueDate semantics: nil clears the due date.
type CardPatch struct {
	Name        CardName
	Description string
	DueDate     *time.Time
	Status      CardStatus
}

// CardPosition is a single entry of a bulk reorder.
type CardPosition struct {
	CardId   CardId   `json:"cardID"`
	Position Position `json:"position"`
}
