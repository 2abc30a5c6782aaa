package handlers

import "podio/services/flow"

// HandlerBundle groups everything the route registration needs.
type HandlerBundle struct {
	// SessionRepo is shared with the step-gate middleware.
	SessionRepo *flow.SessionRepo

	Flow *FlowHandler
}
