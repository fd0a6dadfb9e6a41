package dict

import (
	"github.com/fwojciec/worddef"
)

// state tracks where the client is in the protocol exchange. Every reply
// code is interpreted relative to the current state; the same code can be
// routine in one state and a protocol violation in another.
type state int

const (
	stateDisconnected state = iota
	stateAwaitingGreeting
	stateReady
	stateAwaitingReply
	stateClosing
)

func (s state) String() string {
	switch s {
	case stateDisconnected:
		return "disconnected"
	case stateAwaitingGreeting:
		return "awaiting-greeting"
	case stateReady:
		return "ready"
	case stateAwaitingReply:
		return "awaiting-reply"
	case stateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// event classifies what a reply means for the in-flight command.
type event int

const (
	eventNone event = iota
	eventGreeting
	eventDefinitionsFollow
	eventDefinitionText
	eventMatchesFollow
	eventListFollows
	eventOK
	eventNoMatch
	eventServerError
	eventClosed
)

func (e event) String() string {
	switch e {
	case eventGreeting:
		return "greeting"
	case eventDefinitionsFollow:
		return "definitions-follow"
	case eventDefinitionText:
		return "definition-text"
	case eventMatchesFollow:
		return "matches-follow"
	case eventListFollows:
		return "list-follows"
	case eventOK:
		return "ok"
	case eventNoMatch:
		return "no-match"
	case eventServerError:
		return "server-error"
	case eventClosed:
		return "closed"
	default:
		return "none"
	}
}

// transition maps a reply code received in the current state to the next
// state and the event it represents. It is a pure function so every legal
// and illegal code path can be tested without a socket.
func transition(s state, code int) (state, event, error) {
	switch s {
	case stateAwaitingGreeting:
		if code == 220 {
			return stateReady, eventGreeting, nil
		}
		return s, eventNone, worddef.Errorf(worddef.EHANDSHAKE, "server greeting code %d, want 220", code)

	case stateAwaitingReply:
		switch code {
		case 150:
			return stateAwaitingReply, eventDefinitionsFollow, nil
		case 151:
			return stateAwaitingReply, eventDefinitionText, nil
		case 152:
			return stateAwaitingReply, eventMatchesFollow, nil
		case 110, 111:
			return stateAwaitingReply, eventListFollows, nil
		case 250:
			return stateReady, eventOK, nil
		case 552, 554, 555:
			// The no-match family of codes signals an empty result
			// set, not a failure.
			return stateReady, eventNoMatch, nil
		}
		if code >= 400 && code < 600 {
			return stateReady, eventServerError, nil
		}
		return s, eventNone, worddef.Errorf(worddef.EMALFORMED, "unexpected reply code %d in state %s", code, s)

	case stateClosing:
		if code == 221 {
			return stateDisconnected, eventClosed, nil
		}
		return s, eventNone, worddef.Errorf(worddef.EMALFORMED, "unexpected reply code %d in state %s", code, s)
	}

	return s, eventNone, worddef.Errorf(worddef.EINTERNAL, "no reply expected in state %s", s)
}
