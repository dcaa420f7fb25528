// Package api implements the HTTP handlers for the authentication and task
// endpoints, along with the request/response models and error mapping at the
// API boundary.
package api
