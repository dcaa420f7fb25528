// Package domain defines the core business entities (users and tasks) and
// their validation rules.
package domain
