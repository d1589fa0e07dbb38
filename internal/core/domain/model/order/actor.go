package order

import (
	"fmt"

	"mezzo/internal/pkg/errs"
)

// Actor identifies the party performing a lifecycle operation or authoring a
// note. ActorNone doubles as the empty cancelled_by attribution.
type Actor int

const (
	// ActorNone means no party; used when no cancellation is attributed.
	ActorNone Actor = iota

	// ActorCustomer is the ordering customer.
	ActorCustomer

	// ActorOperator is the restaurant operator.
	ActorOperator
)

func getActorStrings() map[Actor]string {
	return map[Actor]string{
		ActorNone:     "",
		ActorCustomer: "customer",
		ActorOperator: "operator",
	}
}

// ActorFromString parses the wire representation of an actor. The empty
// string parses to ActorNone.
func ActorFromString(s string) (Actor, error) {
	for actor, str := range getActorStrings() {
		if str == s {
			return actor, nil
		}
	}
	return ActorNone, errs.NewValueIsInvalidErrorWithCause(
		"actor is invalid", fmt.Errorf("%q is not a valid actor", s))
}

// String returns "customer", "operator", or "" for ActorNone.
func (a Actor) String() string {
	if str, ok := getActorStrings()[a]; ok {
		return str
	}
	return ""
}

// Validate checks that the Actor is a known party (ActorNone included).
func (a Actor) Validate() error {
	if _, ok := getActorStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor is invalid", fmt.Errorf("%d is not a valid actor", a))
	}
	return nil
}
