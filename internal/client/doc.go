// Package client provides the command-line front end's API client and the
// persistent session store that stands in for the browser's localStorage.
package client
