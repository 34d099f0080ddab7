package handlers

import "github.com/labstack/echo/v4"

const (
	// OwnerIDContextKey is the context key carrying the resolved ledger owner
	OwnerIDContextKey = "owner_id"

	// placeholderOwnerID stands in for an authenticated identity. Every
	// store and aggregation call still takes the owner as a parameter, so
	// swapping in real session-derived owners touches only this resolver.
	placeholderOwnerID = "demo-user"
)

// ResolveOwner assigns the ledger owner for the request. A deployment with
// authentication would replace this middleware with one that derives the
// owner from the session.
func ResolveOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(OwnerIDContextKey, placeholderOwnerID)
			return next(c)
		}
	}
}

// ownerID extracts the resolved ledger owner from the request context
func ownerID(c echo.Context) string {
	owner, ok := c.Get(OwnerIDContextKey).(string)
	if !ok || owner == "" {
		return placeholderOwnerID
	}
	return owner
}
