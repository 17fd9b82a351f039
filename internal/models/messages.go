package models

// Client-facing messages. Clients match on these strings, so keep them stable.
const (
	MsgNameEmailRequired   = "Name and email are required."
	MsgEmailRegistered     = "Email already registered."
	MsgInvalidEmail        = "Invalid email format."
	MsgSignupSuccess       = "Successful user sign-up."
	MsgUserContentRequired = "User ID and content are required."
	MsgUserNotFound        = "User ID not found."
	MsgPostCreated         = "Successfully created."
	MsgPostNotFound        = "Post ID not found."
	MsgPostDeleted         = "Successful post deletion."
	MsgNoPostsForUser      = "No posts found for this user."
	MsgInternalError       = "Internal Server Error"
	MsgInvalidBody         = "Invalid request body."
	MsgRouteNotFound       = "Not Found"
	MsgTooManyRequests     = "Too many requests, please try again later."
	MsgWelcome             = "Welcome to the API!"
)
