package middleware

import tele "gopkg.in/telebot.v4"

// Membership reports whether a user currently belongs to the admin set.
// It is consulted on every update so that membership changes made mid-flow
// take effect immediately.
type Membership interface {
	IsAdmin(userID int64) bool
}

// AdminOptions defines how admin-only checks should behave.
type AdminOptions struct {
	Members  Membership
	OnReject tele.HandlerFunc
}

// AdminOnlyMiddleware ensures that only current admins can invoke downstream
// handlers. Non-admins are silently ignored unless OnReject is set.
func AdminOnlyMiddleware(opts AdminOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || opts.Members == nil || !opts.Members.IsAdmin(sender.ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
