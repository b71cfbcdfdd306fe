package bots

import "github.com/silh/garcombot/pkg/sets"

// Audience is who may run a command.
type Audience int

const (
	Everyone Audience = iota
	Waiters
	Kitchen
)

func (a Audience) String() string {
	switch a {
	case Waiters:
		return "waiters"
	case Kitchen:
		return "kitchen"
	default:
		return "everyone"
	}
}

func (a Audience) denial() string {
	if a == Kitchen {
		return "Este comando só pode ser usado no grupo da cozinha."
	}
	return "Este comando só pode ser usado no grupo dos garçons."
}

// AccessList holds the chats allowed to run waiter and kitchen commands.
type AccessList struct {
	waiters sets.Set[int64]
	kitchen sets.Set[int64]
}

func NewAccessList(waiterChats, kitchenChats []int64) *AccessList {
	a := &AccessList{
		waiters: sets.Of(waiterChats...),
		kitchen: sets.Of(kitchenChats...),
	}
	log.Infow("Access lists loaded", "waiterChats", a.waiters.Len(), "kitchenChats", a.kitchen.Len())
	return a
}

func (a *AccessList) Allowed(audience Audience, chatID int64) bool {
	switch audience {
	case Waiters:
		return a.waiters.Contains(chatID)
	case Kitchen:
		return a.kitchen.Contains(chatID)
	default:
		return true
	}
}
