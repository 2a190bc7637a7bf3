// Package reddit provides a content provider adapter for the Reddit data
// API. It authenticates with application-only OAuth2 (client credentials),
// lists an account's newest submissions and comments, and maps the Listing
// responses into domain content items.
package reddit
