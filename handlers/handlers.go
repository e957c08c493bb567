package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Auth     *AuthHandler
	Bookings *BookingHandler
	Orders   *OrderHandler
	Blocked  *BlockedHandler
	Reviews  *ReviewHandler
	Services *ServiceHandler
}
